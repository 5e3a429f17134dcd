package shift_test

import (
	"github.com/katalvlaran/zshift/matrix"
)

// Fixtures shared across tests.
var (
	baseline2 = [][]float64{{0.9, 0.1}, {0.2, 0.8}}
	observed2 = [][]float64{{0.8, 0.2}, {0.3, 0.7}}

	baseline3 = [][]float64{
		{0.90, 0.08, 0.02},
		{0.05, 0.85, 0.10},
		{0.00, 0.00, 1.00},
	}
)

func dense(rows [][]float64) *matrix.Dense { return matrix.MustFromRows(rows) }

// shiftRows applies f to every cell of rows and renormalizes
// each row, producing an "observed" matrix with a known direction.
func shiftRows(rows [][]float64, f func(p float64) float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = make([]float64, len(r))
		sum := 0.0
		for j, p := range r {
			out[i][j] = f(p)
			sum += out[i][j]
		}
		for j := range out[i] {
			out[i][j] /= sum
		}
	}
	return out
}

// Package matrix_test provides benchmarks for transition-matrix validation
// and averaging, using deterministic random row-stochastic fills.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/zshift/matrix"
)

// benchSizes are the state counts to benchmark.
var benchSizes = []int{8, 32, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkR matrix.Report
)

// stochastic returns an n×n row-stochastic matrix filled from seed.
func stochastic(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		var sum float64
		for j := range rows[i] {
			rows[i][j] = rng.Float64()
			sum += rows[i][j]
		}
		for j := range rows[i] {
			rows[i][j] /= sum
		}
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkValidateStochastic(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := stochastic(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				rep, err := matrix.ValidateStochastic(m, matrix.DefaultRowSumTolerance)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = rep
			}
		})
	}
}

func BenchmarkAverage(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			ms := make([]*matrix.Dense, 12)
			for k := range ms {
				ms[k] = stochastic(b, n, int64(k))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Average(ms)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

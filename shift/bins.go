package shift

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/zshift/matrix"
)

// BinBoundaries holds, per baseline row, numCols+1 non-decreasing
// standard-normal thresholds. Row i maps the latent variable to column j
// when x_i[j] < X ≤ x_i[j+1]. The first entry is −∞ and the last +∞.
type BinBoundaries [][]float64

// ComputeBinBoundaries derives Vasicek thresholds from a baseline matrix.
//
// Implementation:
//   - Stage 1: for each row, accumulate cumulative probabilities prefixed
//     with 0 and clamp them to [0,1] (keeps rows within row-sum tolerance
//     and negative-entry rows well defined).
//   - Stage 2: map each interior cumulative value through Φ⁻¹; 0 maps to −∞
//     and 1 to +∞. A running maximum keeps the row non-decreasing.
//   - Stage 3: pin the endpoints to −∞/+∞ so each row of expected
//     probabilities sums to exactly 1.
//
// Boundaries depend only on the baseline; compute once, reuse for every
// observed matrix.
//
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*c) quantile evaluations.
func ComputeBinBoundaries(stable *matrix.Dense) (BinBoundaries, error) {
	if err := matrix.ValidateNotNil(stable); err != nil {
		return nil, shiftErrorf("ComputeBinBoundaries", err)
	}

	r, c := stable.Rows(), stable.Cols()
	bins := make(BinBoundaries, r)
	for i := 0; i < r; i++ {
		row := stable.RawRow(i)
		x := make([]float64, c+1)
		x[0] = math.Inf(-1)
		cum := 0.0
		for j := 1; j < c; j++ {
			cum += row[j-1]
			x[j] = math.Max(normalQuantile(cum), x[j-1])
		}
		x[c] = math.Inf(1)
		bins[i] = x
	}

	return bins, nil
}

// Rows returns the number of baseline rows the boundaries cover.
func (b BinBoundaries) Rows() int { return len(b) }

// Cols returns the number of "to" states (len of a row minus one).
func (b BinBoundaries) Cols() int {
	if len(b) == 0 {
		return 0
	}

	return len(b[0]) - 1
}

// normalQuantile is Φ⁻¹ with the domain clamped to [0,1].
func normalQuantile(p float64) float64 {
	switch {
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return math.Inf(1)
	default:
		return distuv.UnitNormal.Quantile(p)
	}
}

// normalCDF is Φ; Φ(−∞)=0 and Φ(+∞)=1.
func normalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

package shift

import (
	"math"

	"github.com/katalvlaran/zshift/matrix"
)

// LogitObjective is the "logit" model objective.
//
// For every cell (i,j), with p = clamp(P[i][j]) and q = clamp(Q[i][j]) in
// [ε, 1−ε]:
//
//	L  = ln(p / (1−p))
//	p' = 1 / (1 + e^−(L+z))
//	Loss(z) = Σ (p' − q)²
//
// Baseline logits are computed once at construction.
type LogitObjective struct {
	logits []float64 // clamped baseline log-odds, row-major
	target []float64 // clamped observed probabilities, row-major
}

// NewLogitObjective binds baseline P and observed Q (equal shape).
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrInvalidParameter
// for eps outside (0, 0.5).
// Complexity: O(r*c).
func NewLogitObjective(baseline, observed *matrix.Dense, eps float64) (*LogitObjective, error) {
	if err := matrix.ValidateBinarySameShape(baseline, observed); err != nil {
		return nil, shiftErrorf("NewLogitObjective", err)
	}
	if !(eps > 0 && eps < 0.5) {
		return nil, paramErrorf("epsilon %g must be in (0, 0.5)", eps)
	}

	r, c := baseline.Rows(), baseline.Cols()
	o := &LogitObjective{
		logits: make([]float64, 0, r*c),
		target: make([]float64, 0, r*c),
	}
	for i := 0; i < r; i++ {
		prow, qrow := baseline.RawRow(i), observed.RawRow(i)
		for j := 0; j < c; j++ {
			p := clamp(prow[j], eps)
			o.logits = append(o.logits, math.Log(p/(1-p)))
			o.target = append(o.target, clamp(qrow[j], eps))
		}
	}

	return o, nil
}

// Loss returns Σ (σ(L+z) − q)².
func (o *LogitObjective) Loss(z float64) float64 {
	var sum float64
	for k, l := range o.logits {
		d := sigmoid(l+z) - o.target[k]
		sum += d * d
	}

	return sum
}

// Shifted returns the baseline moved by z in log-odds space, row-major.
func (o *LogitObjective) Shifted(z float64) []float64 {
	out := make([]float64, len(o.logits))
	for k, l := range o.logits {
		out[k] = sigmoid(l + z)
	}

	return out
}

// clamp confines v to [eps, 1−eps].
func clamp(v, eps float64) float64 {
	return math.Min(math.Max(v, eps), 1-eps)
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

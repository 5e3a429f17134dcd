package shift

import (
	"fmt"
	"math"

	"github.com/katalvlaran/zshift/matrix"
)

// VasicekObjective is the "vasicek" model objective.
//
// With thresholds x_i from BinBoundaries, correlation ρ and factor Z:
//
//	adj(X)   = (X − √ρ·Z) / √(1−ρ)
//	E[i][j]  = Φ(adj(x_i[j+1])) − Φ(adj(x_i[j]))
//	Loss(Z)  = Σ (Q[i][j] − E[i][j])²
//
// A positive Z lowers every threshold and moves mass toward higher-index
// columns.
type VasicekObjective struct {
	bins     BinBoundaries
	observed *matrix.Dense
	sqrtRho  float64
	scale    float64 // 1/√(1−ρ)
}

// NewVasicekObjective binds precomputed bins to observed Q with correlation rho.
// Errors: matrix.ErrNilMatrix, ErrShapeMismatch when Q does not match the
// bins' shape, ErrInvalidParameter for rho outside (0,1).
func NewVasicekObjective(bins BinBoundaries, observed *matrix.Dense, rho float64) (*VasicekObjective, error) {
	if err := matrix.ValidateNotNil(observed); err != nil {
		return nil, shiftErrorf("NewVasicekObjective", err)
	}
	if bins.Rows() != observed.Rows() || bins.Cols() != observed.Cols() {
		return nil, shiftErrorf("NewVasicekObjective", fmt.Errorf("%w: bins %dx%d, observed %dx%d",
			ErrShapeMismatch, bins.Rows(), bins.Cols(), observed.Rows(), observed.Cols()))
	}
	if !(rho > 0 && rho < 1) {
		return nil, paramErrorf("rho %g must be in (0, 1)", rho)
	}

	return &VasicekObjective{
		bins:     bins,
		observed: observed,
		sqrtRho:  math.Sqrt(rho),
		scale:    1 / math.Sqrt(1-rho),
	}, nil
}

// Loss returns Σ (Q − E(Z))².
func (o *VasicekObjective) Loss(z float64) float64 {
	var sum float64
	for i, x := range o.bins {
		q := o.observed.RawRow(i)
		prev := o.conditionalCDF(x[0], z)
		for j := range q {
			next := o.conditionalCDF(x[j+1], z)
			d := q[j] - (next - prev)
			sum += d * d
			prev = next
		}
	}

	return sum
}

// Expected returns the model's transition probabilities at factor z.
func (o *VasicekObjective) Expected(z float64) [][]float64 {
	out := make([][]float64, len(o.bins))
	for i, x := range o.bins {
		row := make([]float64, len(x)-1)
		prev := o.conditionalCDF(x[0], z)
		for j := range row {
			next := o.conditionalCDF(x[j+1], z)
			row[j] = next - prev
			prev = next
		}
		out[i] = row
	}

	return out
}

// conditionalCDF is Φ((x − √ρ·z)/√(1−ρ)).
func (o *VasicekObjective) conditionalCDF(x, z float64) float64 {
	return normalCDF((x - o.sqrtRho*z) * o.scale)
}

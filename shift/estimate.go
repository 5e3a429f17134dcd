package shift

import (
	"github.com/katalvlaran/zshift/matrix"
	"github.com/katalvlaran/zshift/optimize"
)

// Estimate is the fitted shift for one observed matrix.
//
//   - Index       — 0-based position of the observed matrix in the request.
//   - Z           — fitted shift (midpoint of the final search bracket).
//   - Loss        — objective value at Z.
//   - Evaluations — objective evaluations spent by the search.
type Estimate struct {
	Index       int
	Z           float64
	Loss        float64
	Evaluations int
}

// EstimateShift fits Z for one (baseline, observed) pair under m.
//
// Neither matrix is row-sum validated here; use Run for the full
// validate → baseline → optimize pipeline.
//
// Errors:
//   - ErrUnknownMethodology, ErrInvalidParameter from option validation.
//   - matrix.ErrNilMatrix, ErrShapeMismatch from objective construction.
func EstimateShift(m Methodology, baseline, observed *matrix.Dense, opts Options) (float64, error) {
	obj, err := NewObjective(m, baseline, nil, observed, opts)
	if err != nil {
		return 0, shiftErrorf("EstimateShift", err)
	}
	est, err := fit(obj, opts)
	if err != nil {
		return 0, shiftErrorf("EstimateShift", err)
	}

	return est.Z, nil
}

// fit minimizes obj over the configured bracket.
func fit(obj Objective, opts Options) (Estimate, error) {
	res, err := optimize.Minimize(obj.Loss, opts.searchOptions())
	if err != nil {
		return Estimate{}, err
	}

	return Estimate{Z: res.X, Loss: res.F, Evaluations: res.Evaluations}, nil
}

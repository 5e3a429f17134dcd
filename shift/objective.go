package shift

import (
	"github.com/katalvlaran/zshift/matrix"
)

// Objective is the squared prediction error of a model as a function of Z.
// Implementations are bound to one (baseline, observed) pair and are
// read-only after construction, so a single value may be evaluated
// concurrently.
type Objective interface {
	Loss(z float64) float64
}

// Compile-time interface checks.
var (
	_ Objective = (*LogitObjective)(nil)
	_ Objective = (*VasicekObjective)(nil)
)

// NewObjective binds the objective selected by m to (baseline, observed).
// bins is used by Vasicek only; when nil it is computed from baseline.
//
// Errors:
//   - ErrUnknownMethodology for an unsupported tag.
//   - ErrInvalidParameter from opts.Validate.
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for bad operands.
func NewObjective(m Methodology, baseline *matrix.Dense, bins BinBoundaries, observed *matrix.Dense, opts Options) (Objective, error) {
	if err := opts.Validate(m); err != nil {
		return nil, err
	}

	switch m {
	case Logit:
		obj, err := NewLogitObjective(baseline, observed, opts.Epsilon)
		if err != nil {
			return nil, err
		}
		return obj, nil
	case Vasicek:
		if bins == nil {
			var err error
			if bins, err = ComputeBinBoundaries(baseline); err != nil {
				return nil, err
			}
		}
		obj, err := NewVasicekObjective(bins, observed, opts.Rho)
		if err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, ErrUnknownMethodology
	}
}

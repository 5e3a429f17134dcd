package shift

import (
	"math"

	"github.com/katalvlaran/zshift/matrix"
	"github.com/katalvlaran/zshift/optimize"
)

// Numeric defaults.
const (
	// DefaultRho is the asset correlation used by the Vasicek model when the
	// caller does not choose one.
	DefaultRho = 0.2

	// DefaultEpsilon clamps logit probabilities to [ε, 1−ε].
	DefaultEpsilon = 1e-10

	// DefaultTolerance is the golden-section stopping width.
	DefaultTolerance = optimize.DefaultTolerance

	// DefaultRowSumTolerance is the accepted |Σrow − 1|.
	DefaultRowSumTolerance = matrix.DefaultRowSumTolerance
)

// Options configures one estimation.
//
// Fields:
//   - Rho       — asset correlation, Vasicek only; must lie in (0,1).
//   - Lower     — lower end of the search bracket.
//   - Upper     — upper end of the search bracket; Lower < Upper.
//   - Tol       — golden-section stopping width (> 0).
//   - RowSumTol — row-stochasticity tolerance (≥ 0).
//   - Epsilon   — logit clamp, in (0, 0.5).
//
// Every field is used as given; start from DefaultOptions and override.
type Options struct {
	Rho       float64
	Lower     float64
	Upper     float64
	Tol       float64
	RowSumTol float64
	Epsilon   float64
}

// DefaultOptions returns the documented defaults for m:
// bracket [−10,10] (logit) or [−5,5] (vasicek), Tol 1e-5, RowSumTol 0.01,
// Epsilon 1e-10, Rho 0.2.
func DefaultOptions(m Methodology) Options {
	lo, hi := m.DefaultBounds()

	return Options{
		Rho:       DefaultRho,
		Lower:     lo,
		Upper:     hi,
		Tol:       DefaultTolerance,
		RowSumTol: DefaultRowSumTolerance,
		Epsilon:   DefaultEpsilon,
	}
}

// Validate checks o for methodology m.
// Errors: ErrUnknownMethodology, ErrInvalidParameter.
func (o Options) Validate(m Methodology) error {
	if !m.Valid() {
		return ErrUnknownMethodology
	}
	if !finite(o.Lower) || !finite(o.Upper) || o.Lower >= o.Upper {
		return paramErrorf("bounds [%g, %g] must be finite with lower < upper", o.Lower, o.Upper)
	}
	if !finite(o.Tol) || o.Tol <= 0 {
		return paramErrorf("tolerance %g must be > 0", o.Tol)
	}
	if !finite(o.RowSumTol) || o.RowSumTol < 0 {
		return paramErrorf("row-sum tolerance %g must be >= 0", o.RowSumTol)
	}
	if m == Logit && !(o.Epsilon > 0 && o.Epsilon < 0.5) {
		return paramErrorf("epsilon %g must be in (0, 0.5)", o.Epsilon)
	}
	if m == Vasicek && !(o.Rho > 0 && o.Rho < 1) {
		return paramErrorf("rho %g must be in (0, 1)", o.Rho)
	}

	return nil
}

// searchOptions maps o onto the optimizer configuration.
func (o Options) searchOptions() optimize.Options {
	return optimize.Options{Lower: o.Lower, Upper: o.Upper, Tol: o.Tol}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

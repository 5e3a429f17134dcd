package optimize

import "errors"

// DefaultTolerance is the bracket width at which the search stops.
const DefaultTolerance = 1e-5

// Func is a scalar objective to minimize.
type Func func(x float64) float64

// Options configures Minimize.
//
// Fields:
//   - Lower, Upper — the search bracket; must be finite with Lower < Upper.
//   - Tol          — stop once Upper−Lower ≤ Tol; must be finite and > 0.
type Options struct {
	Lower float64
	Upper float64
	Tol   float64
}

// DefaultOptions returns Options over [lower, upper] with DefaultTolerance.
func DefaultOptions(lower, upper float64) Options {
	return Options{Lower: lower, Upper: upper, Tol: DefaultTolerance}
}

// Result is the outcome of Minimize.
//
//   - X           — midpoint of the final bracket (the reported argmin).
//   - F           — f(X).
//   - Iterations  — number of bracket reductions performed.
//   - Evaluations — number of calls to f, including the final f(X).
type Result struct {
	X           float64
	F           float64
	Iterations  int
	Evaluations int
}

var (
	// ErrNilFunc indicates a nil objective.
	ErrNilFunc = errors.New("optimize: objective is nil")

	// ErrInvalidBracket indicates a non-finite bracket or Lower >= Upper.
	ErrInvalidBracket = errors.New("optimize: bracket must be finite with lower < upper")

	// ErrInvalidTolerance indicates a non-finite or non-positive tolerance.
	ErrInvalidTolerance = errors.New("optimize: tolerance must be finite and > 0")
)

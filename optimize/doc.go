// Package optimize provides a bounded, derivative-free 1-D minimizer.
//
// What is golden-section search?
//
//	Given a function f that is unimodal on [a, b], golden-section search
//	keeps a bracket that always contains the minimizer and shrinks it by the
//	factor 1/φ (φ = (1+√5)/2) per iteration by comparing f at two interior
//	points. It needs no derivatives and performs a fixed, deterministic
//	number of steps for a given bracket and tolerance.
//
// Usage:
//
//	x, err := optimize.GoldenSection(func(z float64) float64 {
//		return (z - 3) * (z - 3)
//	}, -10, 10, optimize.DefaultTolerance)
//
// Limitations:
//
//   - Unimodality is assumed, never verified. On a multimodal f the result
//     is a local minimum and nothing signals it.
//   - The minimizer is confined to [a, b]; a minimum outside the bracket is
//     reported as the nearest endpoint (within tol).
//
// Performance:
//
//   - Iterations: ⌈log_φ((b−a)/tol)⌉, two evaluations of f each.
package optimize

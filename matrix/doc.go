// Package matrix provides the transition-matrix primitives used by zshift.
//
// The matrix package provides:
//
//   - Dense, a row-major r×c matrix of finite float64 probabilities
//     (rows = "from" states, columns = "to" states).
//   - Validators: row-stochasticity (ValidateStochastic, ValidateAll) and
//     shape checks (ValidateSameShape, ValidateShapes).
//   - Baseline statistics: the elementwise mean of observed matrices (Average).
//
// All operations are pure: inputs are never mutated and results are fresh
// values. Errors are package sentinels (see errors.go) matched with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix

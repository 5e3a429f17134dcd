// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise comparison of transition matrices (model fit checks,
//     baseline drift).
//
// Determinism & Performance:
//   - Flat 0..n-1 loops over the row-major buffers; O(r*c) time, O(1) space.

package matrix

import (
	"math"
)

// AllClose checks elementwise |a−b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if every element satisfies the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Errors: ErrBadTolerance, ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrBadTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	for idx := range a.data {
		if math.Abs(a.data[idx]-b.data[idx]) > atol+rtol*math.Abs(b.data[idx]) {
			return false, nil // early exit on first violation
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a[i,j] − b[i,j]|.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}

	var worst float64
	for idx := range a.data {
		worst = math.Max(worst, math.Abs(a.data[idx]-b.data[idx]))
	}

	return worst, nil
}

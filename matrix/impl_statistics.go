// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the elementwise statistics used to derive a baseline from a
//     collection of observed transition matrices.
//
// Exposed API:
//   - Average(ms)     -> mean matrix      // elementwise arithmetic mean
//   - RowSums(m)      -> []float64        // Σ_j m[i,j] per row
//
// Determinism & Performance:
//   - Fixed k→flat-index accumulation order; results are bitwise reproducible.
//   - Operates on the row-major flat buffers through gonum/floats kernels.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opAverage = "Average"
	opRowSums = "RowSums"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Average returns the elementwise arithmetic mean of a non-empty list of
// equal-shape matrices.
// Implementation:
//   - Stage 1: reject an empty list and nil entries; check every shape against ms[0].
//   - Stage 2: accumulate flat buffers with floats.Add in list order.
//   - Stage 3: scale by 1/k.
//
// Errors:
//   - ErrEmptyInput for len(ms)==0.
//   - ErrNilMatrix, ErrDimensionMismatch from shape validation.
//
// Complexity:
//   - Time O(k*r*c), Space O(r*c) for the result.
//
// Notes:
//   - Inputs are never mutated; the result is a fresh *Dense.
func Average(ms []*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opAverage, ErrEmptyInput)
	}
	if err := ValidateShapes(ms[0], ms); err != nil {
		return nil, matrixErrorf(opAverage, err)
	}

	out := ms[0].Clone()
	for _, m := range ms[1:] {
		floats.Add(out.data, m.data)
	}
	floats.Scale(1/float64(len(ms)), out.data)

	return out, nil
}

// RowSums returns Σ_j m[i,j] for every row i.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func RowSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums := make([]float64, m.r)
	for i := range sums {
		sums[i] = floats.Sum(m.RawRow(i))
	}

	return sums, nil
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors (plus the RowSumError
// carrier) used across the matrix package. Every algorithm returns these
// sentinels, optionally wrapped with an operation tag, and tests match them
// via errors.Is / errors.As. No exported function panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so failures are easy to grep
// for in logs. Context is added with fmt.Errorf("op: %w", ErrX) at call sites.
//
// ERROR PRIORITY (checked in this order by composite validators):
// nil -> shape/NaN -> dimension mismatch -> row-sum violations.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRagged signals that the rows of a [][]float64 literal have different lengths.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands whose shapes must match but don't.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf cell; transition probabilities must be finite.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyInput indicates an operation over an empty list of matrices.
	ErrEmptyInput = errors.New("matrix: empty matrix list")

	// ErrBadTolerance indicates a negative, NaN or infinite tolerance.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite and >= 0")

	// ErrRowSum signals a row whose sum is outside 1±tolerance.
	ErrRowSum = errors.New("matrix: row does not sum to 1")
)

// RowSumError reports the first row-stochasticity violation found by
// ValidateAll. Matrix is the position of the offending matrix in the slice
// handed to ValidateAll, Row the 0-based row index and Sum the observed sum.
// errors.Is(err, ErrRowSum) holds for every *RowSumError.
type RowSumError struct {
	Matrix int
	Row    int
	Sum    float64
}

// Error implements error.
func (e *RowSumError) Error() string {
	return fmt.Sprintf("%v: matrix %d row %d sums to %g", ErrRowSum, e.Matrix, e.Row, e.Sum)
}

// Unwrap exposes ErrRowSum to errors.Is.
func (e *RowSumError) Unwrap() error { return ErrRowSum }

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

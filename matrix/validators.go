// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for transition-matrix checks.
//   - Keep the estimation pipeline minimal by delegating nil/shape/row-sum
//     checks here.
//   - Return plain sentinel errors tagged with the validator name so call
//     sites can match them with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; row scans run in fixed i order.
//   - ValidateStochastic is O(r*c); shape checks are O(1).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultRowSumTolerance is the accepted absolute deviation of a row sum from 1.
const DefaultRowSumTolerance = 0.01

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// Report is the outcome of ValidateStochastic.
// BadRows lists the 0-based indices of every violating row in ascending order;
// it is empty (not nil) when Valid is true.
type Report struct {
	Valid   bool
	BadRows []int
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// validateTolerance rejects NaN, ±Inf and negative tolerances.
func validateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return ErrBadTolerance
	}

	return nil
}

// ValidateStochastic checks row-stochasticity: a row is valid iff
// |Σ_j m[i,j] − 1| ≤ tol.
//
// Inputs:
//   - m: matrix to check.
//   - tol: non-negative absolute tolerance (DefaultRowSumTolerance in the pipeline).
//
// Returns:
//   - Report: Valid plus every violating row index.
//
// Errors:
//   - ErrNilMatrix for a nil matrix, ErrBadTolerance for an invalid tol.
//     A row-sum violation is NOT an error here; it is reported in Report.
//
// Complexity:
//   - Time O(r*c), Space O(#bad rows).
func ValidateStochastic(m *Dense, tol float64) (Report, error) {
	if err := ValidateNotNil(m); err != nil {
		return Report{}, validatorErrorf("ValidateStochastic", err)
	}
	if err := validateTolerance(tol); err != nil {
		return Report{}, validatorErrorf("ValidateStochastic", err)
	}

	bad := make([]int, 0)
	for i := 0; i < m.r; i++ {
		if math.Abs(floats.Sum(m.RawRow(i))-1) > tol {
			bad = append(bad, i)
		}
	}

	return Report{Valid: len(bad) == 0, BadRows: bad}, nil
}

// ValidateAll validates every matrix in order and fails fast on the first
// violating (matrix, row) pair.
//
// Errors:
//   - *RowSumError (errors.Is ErrRowSum) naming the matrix position in ms and
//     the first bad row of that matrix.
//   - ErrNilMatrix / ErrBadTolerance from ValidateStochastic.
//
// Complexity:
//   - Time O(k*r*c) in the worst case, where k = len(ms).
func ValidateAll(ms []*Dense, tol float64) error {
	for k, m := range ms {
		rep, err := ValidateStochastic(m, tol)
		if err != nil {
			return validatorErrorf("ValidateAll", err)
		}
		if !rep.Valid {
			row := rep.BadRows[0]
			return &RowSumError{Matrix: k, Row: row, Sum: floats.Sum(m.RawRow(row))}
		}
	}

	return nil
}

// ValidateShapes ensures every matrix in ms has the shape of ref.
// Errors: ErrNilMatrix, ErrDimensionMismatch (tagged with the offending position).
// Complexity: O(len(ms)).
func ValidateShapes(ref *Dense, ms []*Dense) error {
	if err := ValidateNotNil(ref); err != nil {
		return validatorErrorf("ValidateShapes", err)
	}
	for k, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf("ValidateShapes", err)
		}
		if !ref.SameShape(m) {
			return validatorErrorf("ValidateShapes", &shapeError{index: k, want: [2]int{ref.r, ref.c}, got: [2]int{m.r, m.c}})
		}
	}

	return nil
}

// shapeError annotates ErrDimensionMismatch with the offending shapes.
type shapeError struct {
	index     int
	want, got [2]int
}

func (e *shapeError) Error() string {
	return fmt.Sprintf("%v (matrix %d: want %dx%d, got %dx%d)",
		ErrDimensionMismatch, e.index, e.want[0], e.want[1], e.got[0], e.got[1])
}

func (e *shapeError) Unwrap() error { return ErrDimensionMismatch }

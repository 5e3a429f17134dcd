package shift

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zshift/matrix"
)

var (
	// ErrUnknownMethodology is returned for a tag outside {logit, vasicek}.
	ErrUnknownMethodology = errors.New("shift: unknown methodology")

	// ErrInvalidParameter is returned for out-of-domain options
	// (ρ outside (0,1), bad bounds, tolerance or epsilon).
	ErrInvalidParameter = errors.New("shift: invalid parameter")

	// ErrNoObserved is returned when a request carries no observed matrices.
	ErrNoObserved = errors.New("shift: no observed matrices")

	// ErrShapeMismatch aliases matrix.ErrDimensionMismatch.
	ErrShapeMismatch = matrix.ErrDimensionMismatch

	// ErrRowSumViolation aliases matrix.ErrRowSum; the concrete error is a
	// *matrix.RowSumError carrying the matrix and row.
	ErrRowSumViolation = matrix.ErrRowSum
)

// paramErrorf builds an ErrInvalidParameter with detail.
func paramErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}

// shiftErrorf tags err with an operation name.
func shiftErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

package toep

import (
	"errors"
	"fmt"
)

var (
	// ErrDim indicates operand dimensions that do not agree.
	ErrDim = errors.New("toep: dimension mismatch")
	// ErrRange indicates an entry index beyond the matrix bounds.
	ErrRange = errors.New("toep: index out of range")
	// ErrInvalid indicates a malformed generating vector or diagonal offset.
	ErrInvalid = errors.New("toep: invalid argument")
	// ErrNotSupported indicates an operation that is only defined for square
	// matrices applied to a rectangular one.
	ErrNotSupported = errors.New("toep: operation not supported")
	// ErrSingular indicates a numerically singular operator.
	ErrSingular = errors.New("toep: singular matrix")
)

func errIfNotSquare(op string, rows, cols int) error {
	if rows != cols {
		return fmt.Errorf("%w: %s of %dx%d matrix", ErrNotSupported, op, rows, cols)
	}
	return nil
}

func errIfBadLen(what string, n, want int) error {
	if n != want {
		return fmt.Errorf("%w: %s has length %d, want %d", ErrDim, what, n, want)
	}
	return nil
}

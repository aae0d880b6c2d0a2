// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (possibly wrapped with call-site
// context) and tests check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrap with matrixErrorf("Ctx", ErrX) at the detection site; callers still
// use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative,
	// or that a row set passed to a constructor is ragged.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index (or an index range)
	// is outside valid bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Combine
	// on matrices of different shape or CombineRow with a short vector.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilValue indicates that a nil *big.Rat was supplied where a value is required.
	ErrNilValue = errors.New("matrix: nil value")

	// ErrDivisionByZero is returned when a scalar op divides by zero.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrBadValue is returned by NewFromStrings for a cell that is not a rational literal.
	ErrBadValue = errors.New("matrix: unparsable value")

	// ErrUnknownBackend is returned by New/NewFromRows for an unsupported Backend.
	ErrUnknownBackend = errors.New("matrix: unknown backend")
)

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with a backend method context and cell coordinates.
// Complexity: O(1).
func cellErrorf(backend, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", backend, method, row, col, err)
}

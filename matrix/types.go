// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by both backends.
// This file contains ONLY the public Matrix interface, the Op kernel type and
// the Backend selector. Errors live in errors.go, constructors in api.go.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Op combines x and y into z and returns z, following the math/big receiver
// convention. Method expressions are valid ops:
//
//	(*big.Rat).Add, (*big.Rat).Sub, (*big.Rat).Mul, (*big.Rat).Quo
//
// An Op must be pure: the result depends on x and y only.
type Op func(z, x, y *big.Rat) *big.Rat

// Matrix represents a two-dimensional mutable grid of exact rationals.
// Each method enforces bounds checking and returns errors on misuse.
//
// Ownership: values passed to Set/SetRow/CombineRow are never retained, and
// values returned by At/Row are fresh copies. Mutating them does not affect
// the matrix.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At returns a copy of the element at (i, j).
	// Returns ErrOutOfRange if the indices are invalid.
	At(i, j int) (*big.Rat, error)

	// Set stores a copy of v at (i, j).
	// Returns ErrOutOfRange on invalid indices and ErrNilValue if v is nil.
	Set(i, j int, v *big.Rat) error

	// Clone returns a deep copy with the same backend.
	// Complexity: O(stored cells).
	Clone() Matrix

	// Row returns a materialized copy of row i (length Cols()).
	Row(i int) ([]*big.Rat, error)

	// SetRow overwrites row i with copies of vals; len(vals) must equal Cols().
	SetRow(i int, vals []*big.Rat) error

	// CombineRow sets row[i][j] = op(row[i][j], other[j]) for every column j.
	// len(other) must equal Cols().
	CombineRow(i int, other []*big.Rat, op Op) error

	// ScaleRow sets row[i][j] = op(row[i][j], s) for every column j.
	ScaleRow(i int, s *big.Rat, op Op) error

	// SubScaledRow sets row[dst] -= alpha * row[src] (the pivot elimination step).
	// dst and src may be equal.
	SubScaledRow(dst, src int, alpha *big.Rat) error

	// InsertColumn inserts a column filled with v at index (0 ≤ index ≤ Cols()),
	// shifting later columns right.
	InsertColumn(index int, v *big.Rat) error

	// RemoveColumn deletes column index from every row, shifting later columns left.
	RemoveColumn(index int) error

	// IndexOfMinimum returns the column of the minimum value of row i within the
	// half-open range [lo, hi). Ties are broken by the lowest column.
	// Returns ErrOutOfRange for an invalid row or an empty/invalid range.
	IndexOfMinimum(i, lo, hi int) (int, error)

	// String renders the matrix row by row for debugging.
	String() string
}

// Backend selects the storage layout used by New and NewFromRows.
type Backend int

const (
	// DenseBackend stores every cell (row = ordered slice).
	DenseBackend Backend = iota
	// SparseBackend stores only non-zero cells (row = map column → value).
	SparseBackend
)

// DefaultBackend is the backend used when none is configured.
const DefaultBackend = DenseBackend

// String returns the lower-case backend name ("dense" or "sparse").
func (b Backend) String() string {
	switch b {
	case DenseBackend:
		return "dense"
	case SparseBackend:
		return "sparse"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// ParseBackend maps a (case-insensitive) name to a Backend.
// Returns ErrUnknownBackend for anything other than "dense" or "sparse".
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dense":
		return DenseBackend, nil
	case "sparse":
		return SparseBackend, nil
	default:
		return 0, matrixErrorf("ParseBackend", fmt.Errorf("%q: %w", name, ErrUnknownBackend))
	}
}

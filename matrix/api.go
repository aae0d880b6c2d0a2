// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points (constructors, arithmetic,
//     comparison, float export) on top of the canonical kernels.
//   - Avoid logic duplication: every arithmetic facade delegates to
//     Combine/ScalarCombine with a math/big method expression.

package matrix

import (
	"fmt"
	"math/big"

	"gonum.org/v1/gonum/mat"
)

// ---------- Constructors ----------

// New returns an r×c zero matrix with the requested backend.
// Errors: ErrInvalidDimensions, ErrUnknownBackend.
func New(backend Backend, rows, cols int) (Matrix, error) {
	switch backend {
	case DenseBackend:
		return NewDense(rows, cols)
	case SparseBackend:
		return NewSparse(rows, cols)
	default:
		return nil, matrixErrorf("New", fmt.Errorf("%v: %w", backend, ErrUnknownBackend))
	}
}

// NewFromRows builds a matrix from rows of equal length, copying every value.
// An empty row set yields a 0×0 matrix.
// Errors: ErrInvalidDimensions (ragged rows), ErrNilValue, ErrUnknownBackend.
func NewFromRows(backend Backend, rows [][]*big.Rat) (Matrix, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for _, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf("NewFromRows", ErrInvalidDimensions)
		}
	}
	m, err := New(backend, len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err = m.SetRow(i, row); err != nil {
			return nil, matrixErrorf("NewFromRows", err)
		}
	}

	return m, nil
}

// NewFromStrings parses each cell with big.Rat.SetString ("3", "-2/7", "0.5")
// and builds a matrix. Handy for fixtures and documentation.
func NewFromStrings(backend Backend, rows [][]string) (Matrix, error) {
	vals := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		vals[i] = make([]*big.Rat, len(row))
		for j, s := range row {
			v, ok := new(big.Rat).SetString(s)
			if !ok {
				return nil, matrixErrorf("NewFromStrings", fmt.Errorf("cell (%d,%d) %q: %w", i, j, s, ErrBadValue))
			}
			vals[i][j] = v
		}
	}

	return NewFromRows(backend, vals)
}

// BackendOf reports the backend of m (DefaultBackend for foreign implementations).
func BackendOf(m Matrix) Backend {
	if _, ok := m.(*Sparse); ok {
		return SparseBackend
	}

	return DenseBackend
}

// ---------- Arithmetic (allocating) ----------

// Add returns a + b. Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return Combine(a, b, (*big.Rat).Add) }

// Sub returns a − b. Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return Combine(a, b, (*big.Rat).Sub) }

// Scale returns α·m. Complexity: O(r*c).
func Scale(m Matrix, alpha *big.Rat) (Matrix, error) {
	return ScalarCombine(m, alpha, (*big.Rat).Mul)
}

// Quo returns m / d. Returns ErrDivisionByZero when d is zero.
func Quo(m Matrix, d *big.Rat) (Matrix, error) {
	if d != nil && d.Sign() == 0 {
		return nil, matrixErrorf("Quo", ErrDivisionByZero)
	}

	return ScalarCombine(m, d, (*big.Rat).Quo)
}

// ---------- Arithmetic (in place) ----------

// AddInPlace sets a += b.
func AddInPlace(a, b Matrix) error { return CombineInPlace(a, b, (*big.Rat).Add) }

// SubInPlace sets a −= b.
func SubInPlace(a, b Matrix) error { return CombineInPlace(a, b, (*big.Rat).Sub) }

// ScaleInPlace sets m *= α.
func ScaleInPlace(m Matrix, alpha *big.Rat) error {
	return ScalarCombineInPlace(m, alpha, (*big.Rat).Mul)
}

// QuoInPlace sets m /= d. Returns ErrDivisionByZero when d is zero.
func QuoInPlace(m Matrix, d *big.Rat) error {
	if d != nil && d.Sign() == 0 {
		return matrixErrorf("QuoInPlace", ErrDivisionByZero)
	}

	return ScalarCombineInPlace(m, d, (*big.Rat).Quo)
}

// ---------- Comparison & export ----------

// Equal reports whether a and b have the same shape and exactly equal cells,
// regardless of backend. Nil matrices are equal only to each other.
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		ra, errA := a.Row(i)
		rb, errB := b.Row(i)
		if errA != nil || errB != nil {
			return false
		}
		for j := range ra {
			if ra[j].Cmp(rb[j]) != 0 {
				return false
			}
		}
	}

	return true
}

// Float64 returns a gonum float64 approximation of m, for display and
// cross-checking against floating-point solvers. Exactness is lost.
// A matrix with a zero dimension yields nil, since gonum forbids empty Dense.
func Float64(m Matrix) *mat.Dense {
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		return nil
	}
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil
		}
		for j, v := range row {
			f, _ := v.Float64()
			out.Set(i, j, f)
		}
	}

	return out
}

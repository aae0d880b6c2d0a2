// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the elementwise (matrix ⊕ matrix) and broadcast (matrix ⊕ scalar)
//     kernels shared by every facade in api.go.
//   - In-place kernels mutate their first operand; allocating kernels clone it
//     first, so the result keeps the operand's backend.
//
// Determinism & Performance:
//   - Fixed loop order (row i, then column j).
//   - Sparse fast-path: when both operands are *Sparse and op(0,0) == 0, only
//     the union of stored cells is visited.

package matrix

import "math/big"

// CombineInPlace sets a[i][j] = op(a[i][j], b[i][j]) for every cell.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape), wrapped with "CombineInPlace".
// Complexity: O(r*c), or O(nnz(a)+nnz(b)) on the sparse fast-path.
func CombineInPlace(a, b Matrix, op Op) error {
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf("CombineInPlace", err)
	}

	// Sparse fast-path: implicit zeros stay zero, only touched cells matter.
	if sa, ok := a.(*Sparse); ok {
		if sb, ok := b.(*Sparse); ok && op(new(big.Rat), new(big.Rat), new(big.Rat)).Sign() == 0 {
			combineSparse(sa, sb, op)
			return nil
		}
	}

	// Generic path: materialize each row of b and fold it into a.
	for i := 0; i < a.Rows(); i++ {
		row, err := b.Row(i)
		if err != nil {
			return matrixErrorf("CombineInPlace", err)
		}
		if err = a.CombineRow(i, row, op); err != nil {
			return matrixErrorf("CombineInPlace", err)
		}
	}

	return nil
}

// combineSparse folds b into a over the union of their stored cells.
func combineSparse(a, b *Sparse, op Op) {
	for i := range a.data {
		// Snapshot the column set first; store() mutates a.data[i].
		cols := make([]int, 0, len(a.data[i])+len(b.data[i]))
		for j := range a.data[i] {
			cols = append(cols, j)
		}
		for j := range b.data[i] {
			if _, dup := a.data[i][j]; !dup {
				cols = append(cols, j)
			}
		}
		for _, j := range cols {
			a.store(i, j, op(new(big.Rat), a.get(i, j), b.get(i, j)))
		}
	}
}

// Combine returns a new matrix with out[i][j] = op(a[i][j], b[i][j]).
// The result has a's backend; a and b are left untouched.
func Combine(a, b Matrix, op Op) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Combine", err)
	}
	out := a.Clone()
	if err := CombineInPlace(out, b, op); err != nil {
		return nil, matrixErrorf("Combine", err)
	}

	return out, nil
}

// ScalarCombineInPlace sets m[i][j] = op(m[i][j], s) for every cell.
// Complexity: O(r*c) (dense) or O(nnz) when op(0, s) == 0 (sparse).
func ScalarCombineInPlace(m Matrix, s *big.Rat, op Op) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("ScalarCombineInPlace", err)
	}
	if err := validateValue(s); err != nil {
		return matrixErrorf("ScalarCombineInPlace", err)
	}
	if err := validateScalarOp(s, op); err != nil {
		return matrixErrorf("ScalarCombineInPlace", err)
	}
	for i := 0; i < m.Rows(); i++ {
		if err := m.ScaleRow(i, s, op); err != nil {
			return matrixErrorf("ScalarCombineInPlace", err)
		}
	}

	return nil
}

// ScalarCombine returns a new matrix with out[i][j] = op(m[i][j], s).
func ScalarCombine(m Matrix, s *big.Rat, op Op) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ScalarCombine", err)
	}
	out := m.Clone()
	if err := ScalarCombineInPlace(out, s, op); err != nil {
		return nil, matrixErrorf("ScalarCombine", err)
	}

	return out, nil
}

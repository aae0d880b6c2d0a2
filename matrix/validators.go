// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/index checks here.
//  - Return plain sentinel errors (tag-wrapped) so call sites can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - All checks are pure and allocate nothing on the success path.

package matrix

import "math/big"

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return matrixErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return matrixErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures a row vector has exactly n non-nil entries.
// Complexity: O(n).
func ValidateVecLen(x []*big.Rat, n int) error {
	if len(x) != n {
		return matrixErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	for _, v := range x {
		if v == nil {
			return matrixErrorf("ValidateVecLen", ErrNilValue)
		}
	}

	return nil
}

// validateValue rejects nil scalars.
func validateValue(v *big.Rat) error {
	if v == nil {
		return ErrNilValue
	}

	return nil
}

// validateScalarOp rejects a zero scalar for an op that divides by it.
// A nonzero scalar passes without calling op.
func validateScalarOp(s *big.Rat, op Op) (err error) {
	if s.Sign() != 0 {
		return nil
	}
	defer func() {
		if recover() != nil {
			err = ErrDivisionByZero
		}
	}()
	op(new(big.Rat), big.NewRat(1, 1), s)

	return nil
}

// validateIndex checks 0 ≤ i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateRange checks 0 ≤ lo < hi ≤ n (non-empty half-open range).
func validateRange(lo, hi, n int) error {
	if lo < 0 || hi > n || lo >= hi {
		return ErrOutOfRange
	}

	return nil
}

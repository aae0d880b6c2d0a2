// SPDX-License-Identifier: MIT

package lp

import (
	"math/big"
)

// Literal is a rational factor applied to a named variable.
type Literal struct {
	Factor   *big.Rat
	Variable string
}

// NewLiteral returns factor·variable, copying factor.
func NewLiteral(factor *big.Rat, variable string) Literal {
	return Literal{Factor: new(big.Rat).Set(factor), Variable: variable}
}

// Lit is shorthand for NewLiteral(big.NewRat(num, den), variable).
func Lit(num, den int64, variable string) Literal {
	return Literal{Factor: big.NewRat(num, den), Variable: variable}
}

// Clone returns a deep copy.
func (l Literal) Clone() Literal {
	return NewLiteral(l.factor(), l.Variable)
}

// Equal reports whether both literals have the same variable and factor.
func (l Literal) Equal(o Literal) bool {
	return l.Variable == o.Variable && l.factor().Cmp(o.factor()) == 0
}

// Key identifies the literal by value, e.g. "-1/3x_2".
func (l Literal) Key() string {
	return l.factor().RatString() + l.Variable
}

// String renders the literal with its sign, e.g. "+3x", "-x", "+1/2y".
func (l Literal) String() string {
	f := l.factor()
	switch {
	case f.Cmp(ratOne) == 0:
		return "+" + l.Variable
	case f.Cmp(ratMinusOne) == 0:
		return "-" + l.Variable
	case f.Sign() > 0:
		return "+" + f.RatString() + l.Variable
	default:
		return f.RatString() + l.Variable
	}
}

// factor treats a nil factor as zero.
func (l Literal) factor() *big.Rat {
	if l.Factor == nil {
		return new(big.Rat)
	}

	return l.Factor
}

var (
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
)

// ratOrZero copies r, mapping nil to zero.
func ratOrZero(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(r)
}

// ratCopy copies r, keeping nil as nil (an absent bound).
func ratCopy(r *big.Rat) *big.Rat {
	if r == nil {
		return nil
	}

	return new(big.Rat).Set(r)
}

// ratNeg returns −r, keeping nil as nil.
func ratNeg(r *big.Rat) *big.Rat {
	if r == nil {
		return nil
	}

	return new(big.Rat).Neg(r)
}

// ratEqual compares optional rationals: nil equals nil only.
func ratEqual(a, b *big.Rat) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Cmp(b) == 0
}

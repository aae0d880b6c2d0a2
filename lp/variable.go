// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"math/big"
)

// Variable records the transform applied to a user variable x during
// normalization. The internal value is y = Mult·x + Add, so
//
//	ComputeValue(y) = (y − Add)·Mult
//
// recovers x (Mult is ±1, its own inverse).
type Variable struct {
	Name string
	Mult int
	Add  *big.Rat
}

// NewVariable returns the identity transform for name.
func NewVariable(name string) *Variable {
	return &Variable{Name: name, Mult: 1, Add: new(big.Rat)}
}

// Invert reflects the variable: y' = −y. Both Mult and Add change sign.
func (v *Variable) Invert() {
	v.Mult = -v.Mult
	v.Add = ratOrZero(v.Add)
	v.Add.Neg(v.Add)
}

// Translate shifts the variable: y' = y + n.
func (v *Variable) Translate(n *big.Rat) {
	v.Add = ratOrZero(v.Add)
	v.Add.Add(v.Add, n)
}

// ComputeValue maps a solved internal value back to the user variable.
func (v *Variable) ComputeValue(y *big.Rat) *big.Rat {
	x := new(big.Rat).Sub(y, ratOrZero(v.Add))
	if v.Mult < 0 {
		x.Neg(x)
	}

	return x
}

// Apply maps a user value to the internal value (the inverse of ComputeValue).
func (v *Variable) Apply(x *big.Rat) *big.Rat {
	y := new(big.Rat).Set(x)
	if v.Mult < 0 {
		y.Neg(y)
	}

	return y.Add(y, ratOrZero(v.Add))
}

// Equal compares name and transform.
func (v *Variable) Equal(o *Variable) bool {
	if v == nil || o == nil {
		return v == o
	}

	return v.Name == o.Name && v.Mult == o.Mult && ratOrZero(v.Add).Cmp(ratOrZero(o.Add)) == 0
}

func (v *Variable) String() string {
	return fmt.Sprintf("%s(mult=%d, add=%s)", v.Name, v.Mult, ratOrZero(v.Add).RatString())
}

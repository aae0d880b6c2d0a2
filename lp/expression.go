// SPDX-License-Identifier: MIT

package lp

import (
	"math/big"
	"strings"
)

// Expression is a linear combination of literals plus a constant term,
// optionally enclosed by a left and/or right bound:
//
//	LeftBound ≤ Σ Literals + Constant ≤ RightBound
//
// A nil bound is absent. The objective has no bound; constraints and bounds
// have at least one. Line is the source line, 0 when unknown.
type Expression struct {
	LeftBound  *big.Rat
	RightBound *big.Rat
	Literals   []Literal
	Constant   *big.Rat
	Line       int
}

// NewExpression returns an expression without constant term, copying every value.
func NewExpression(left, right *big.Rat, literals ...Literal) Expression {
	e := Expression{
		LeftBound:  ratCopy(left),
		RightBound: ratCopy(right),
		Literals:   make([]Literal, len(literals)),
		Constant:   new(big.Rat),
	}
	for i, l := range literals {
		e.Literals[i] = l.Clone()
	}

	return e
}

// Clone returns a deep copy. A nil constant becomes zero.
func (e Expression) Clone() Expression {
	c := NewExpression(e.LeftBound, e.RightBound, e.Literals...)
	c.Constant = ratOrZero(e.Constant)
	c.Line = e.Line

	return c
}

// Bounded reports whether at least one bound is present.
func (e Expression) Bounded() bool {
	return e.LeftBound != nil || e.RightBound != nil
}

// Equal compares bounds, constant terms and the literal sets (order-insensitive,
// duplicates ignored). Line is not compared.
func (e Expression) Equal(o Expression) bool {
	if !ratEqual(e.LeftBound, o.LeftBound) || !ratEqual(e.RightBound, o.RightBound) {
		return false
	}
	if ratOrZero(e.Constant).Cmp(ratOrZero(o.Constant)) != 0 {
		return false
	}

	return sameKeys(literalKeys(e.Literals), literalKeys(o.Literals))
}

func literalKeys(ls []Literal) map[string]struct{} {
	keys := make(map[string]struct{}, len(ls))
	for _, l := range ls {
		keys[l.Key()] = struct{}{}
	}

	return keys
}

func sameKeys(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}

	return true
}

// NormalForm rewrites the expression as one-sided "≤" expressions: the left
// bound (if any) gives −expr ≤ −left, emitted first; the right bound (if any)
// gives expr ≤ right. The constant term follows the literals.
func (e Expression) NormalForm() []Expression {
	out := make([]Expression, 0, 2)
	if e.LeftBound != nil {
		neg := Expression{
			RightBound: ratNeg(e.LeftBound),
			Literals:   make([]Literal, len(e.Literals)),
			Constant:   new(big.Rat).Neg(ratOrZero(e.Constant)),
			Line:       e.Line,
		}
		for i, l := range e.Literals {
			neg.Literals[i] = Literal{Factor: new(big.Rat).Neg(l.factor()), Variable: l.Variable}
		}
		out = append(out, neg)
	}
	if e.RightBound != nil {
		pos := e.Clone()
		pos.LeftBound = nil
		out = append(out, pos)
	}

	return out
}

// Eval returns Σ factor·values[variable] + Constant. Missing variables count as zero.
func (e Expression) Eval(values map[string]*big.Rat) *big.Rat {
	sum := ratOrZero(e.Constant)
	term := new(big.Rat)
	for _, l := range e.Literals {
		if v, ok := values[l.Variable]; ok && v != nil {
			sum.Add(sum, term.Mul(l.factor(), v))
		}
	}

	return sum
}

// Satisfied reports whether Eval(values) lies within the bounds.
func (e Expression) Satisfied(values map[string]*big.Rat) bool {
	v := e.Eval(values)
	if e.LeftBound != nil && v.Cmp(e.LeftBound) < 0 {
		return false
	}
	if e.RightBound != nil && v.Cmp(e.RightBound) > 0 {
		return false
	}

	return true
}

// String renders the expression as "left <= +3x -y +2 <= right".
func (e Expression) String() string {
	var sb strings.Builder
	if e.LeftBound != nil {
		sb.WriteString(e.LeftBound.RatString())
		sb.WriteString(" <= ")
	}
	for i, l := range e.Literals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	if c := ratOrZero(e.Constant); c.Sign() != 0 {
		if c.Sign() > 0 {
			sb.WriteString(" +")
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.RatString())
	}
	if e.RightBound != nil {
		sb.WriteString(" <= ")
		sb.WriteString(e.RightBound.RatString())
	}

	return sb.String()
}

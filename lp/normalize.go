// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"math/big"
	"slices"
)

// Normalize validates the program (Check) and rewrites it into standard form:
// NormalizeBounds, NormalizeConstraints, then PullUnconstrainedVariables.
// It must be called once; a second call returns ErrAlreadyNormalized.
func (p *LinearProgram) Normalize() error {
	if p.normalized {
		return ErrAlreadyNormalized
	}
	if err := p.Check(); err != nil {
		return err
	}
	if err := p.NormalizeBounds(); err != nil {
		return fmt.Errorf("Normalize: %w", err)
	}
	p.NormalizeConstraints()
	if err := p.PullUnconstrainedVariables(); err != nil {
		return fmt.Errorf("Normalize: %w", err)
	}
	p.normalized = true

	return nil
}

// Normalized reports whether Normalize has completed.
func (p *LinearProgram) Normalized() bool { return p.normalized }

// expressions returns pointers to the objective and every constraint: the
// expressions rewritten by variable substitutions. Bounds are maintained by
// NormalizeBounds itself.
func (p *LinearProgram) expressions() []*Expression {
	out := make([]*Expression, 0, len(p.SubjectTo)+1)
	out = append(out, &p.Objective)
	for i := range p.SubjectTo {
		out = append(out, &p.SubjectTo[i])
	}

	return out
}

// InvertVariable substitutes x → −x: the variable's transform is reflected
// and every literal on name in the objective and constraints changes sign.
func (p *LinearProgram) InvertVariable(name string) error {
	v, ok := p.Variables[name]
	if !ok {
		return inputErrorf(0, ErrUndeclaredVariable, "%q", name)
	}
	v.Invert()
	for _, e := range p.expressions() {
		for i := range e.Literals {
			if l := &e.Literals[i]; l.Variable == name {
				l.Factor = new(big.Rat).Neg(l.factor())
			}
		}
	}

	return nil
}

// TranslateVariable substitutes x → x − n (the new variable is x + n): the
// transform records the shift and every expression containing name loses
// factor·n from its constant term.
func (p *LinearProgram) TranslateVariable(name string, n *big.Rat) error {
	v, ok := p.Variables[name]
	if !ok {
		return inputErrorf(0, ErrUndeclaredVariable, "%q", name)
	}
	v.Translate(n)
	shift := new(big.Rat)
	for _, e := range p.expressions() {
		for _, l := range e.Literals {
			if l.Variable != name {
				continue
			}
			e.Constant = ratOrZero(e.Constant)
			e.Constant.Sub(e.Constant, shift.Mul(l.factor(), n))
		}
	}

	return nil
}

// NormalizeBounds brings every bounded variable to a range starting at 0:
//   - a variable with a right bound and either no left bound or a right bound
//     ≤ 0 is inverted, the interval [l, r] becoming [−r, −l];
//   - a non-zero left bound l is then removed by translating by −l;
//   - a remaining right bound r is appended to SubjectTo as "v ≤ r".
//
// Bounds is updated to the resulting [0, r] intervals.
func (p *LinearProgram) NormalizeBounds() error {
	for i := range p.Bounds {
		b := &p.Bounds[i]
		if len(b.Literals) != 1 {
			return inputErrorf(b.Line, ErrMalformedBound, "%s", b)
		}
		name := b.Literals[0].Variable
		left, right := ratCopy(b.LeftBound), ratCopy(b.RightBound)

		if right != nil && (left == nil || right.Sign() <= 0) {
			if err := p.InvertVariable(name); err != nil {
				return err
			}
			left, right = ratNeg(right), ratNeg(left)
		}
		if left != nil && left.Sign() != 0 {
			if err := p.TranslateVariable(name, new(big.Rat).Neg(left)); err != nil {
				return err
			}
			if right != nil {
				right.Sub(right, left)
			}
			left = new(big.Rat)
		}
		b.LeftBound, b.RightBound = left, right

		if right != nil {
			c := NewExpression(nil, right, Lit(1, 1, name))
			c.Line = b.Line
			p.SubjectTo = append(p.SubjectTo, c)
		}
	}

	return nil
}

// NormalizeConstraints replaces every constraint by its NormalForm, in order.
func (p *LinearProgram) NormalizeConstraints() {
	out := make([]Expression, 0, 2*len(p.SubjectTo))
	for _, c := range p.SubjectTo {
		out = append(out, c.NormalForm()...)
	}
	p.SubjectTo = out
}

// SplitNames returns the names of the non-negative pair replacing free variable v.
func SplitNames(v string) (pos, neg string) {
	return "_" + v + "_pos", "_" + v + "_neg"
}

// PullUnconstrainedVariables replaces every variable without a bound
// expression by pos − neg, two fresh non-negative variables, in the objective
// and every constraint. The pair takes the free variable's place in Columns and
// is recorded in Unconstrained.
func (p *LinearProgram) PullUnconstrainedVariables() error {
	if len(p.Unconstrained) > 0 {
		return fmt.Errorf("PullUnconstrainedVariables: %w", ErrAlreadyNormalized)
	}
	bounded := make(map[string]bool, len(p.Bounds))
	for _, b := range p.Bounds {
		for _, l := range b.Literals {
			bounded[l.Variable] = true
		}
	}

	columns := make([]string, 0, len(p.Columns))
	for _, name := range p.Columns {
		if bounded[name] {
			columns = append(columns, name)
			continue
		}
		pos, neg := SplitNames(name)
		p.Unconstrained[name] = [2]string{pos, neg}
		p.Variables[pos] = NewVariable(pos)
		p.Variables[neg] = NewVariable(neg)
		columns = append(columns, pos, neg)
		for _, e := range p.expressions() {
			e.Literals = splitLiterals(e.Literals, name, pos, neg)
		}
	}
	p.Columns = columns

	return nil
}

// splitLiterals replaces each f·name by f·pos and −f·neg, keeping order.
func splitLiterals(ls []Literal, name, pos, neg string) []Literal {
	if !slices.ContainsFunc(ls, func(l Literal) bool { return l.Variable == name }) {
		return ls
	}
	out := make([]Literal, 0, len(ls)+1)
	for _, l := range ls {
		if l.Variable != name {
			out = append(out, l)
			continue
		}
		out = append(out,
			Literal{Factor: new(big.Rat).Set(l.factor()), Variable: pos},
			Literal{Factor: new(big.Rat).Neg(l.factor()), Variable: neg},
		)
	}

	return out
}

// PushUnconstrainedVariables undoes PullUnconstrainedVariables on a solved
// assignment keyed by internal names: for each free variable v the split pair
// is removed and values[v] = pos − neg. Missing parts count as zero.
// Returns ErrComplementarity when both parts are positive.
func (p *LinearProgram) PushUnconstrainedVariables(values map[string]*big.Rat) error {
	for _, name := range p.Declared {
		split, ok := p.Unconstrained[name]
		if !ok {
			continue
		}
		pos, neg := ratOrZero(values[split[0]]), ratOrZero(values[split[1]])
		if pos.Sign() > 0 && neg.Sign() > 0 {
			return fmt.Errorf("PushUnconstrainedVariables: %q = %s − %s: %w",
				name, pos.RatString(), neg.RatString(), ErrComplementarity)
		}
		delete(values, split[0])
		delete(values, split[1])
		values[name] = pos.Sub(pos, neg)
	}

	return nil
}

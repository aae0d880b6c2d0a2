// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"strings"
)

// Direction is the optimization sense of the objective.
type Direction int

const (
	// Maximize the objective function.
	Maximize Direction = iota
	// Minimize the objective function.
	Minimize
)

// String returns "MAXIMIZE" or "MINIMIZE", the section keywords of the text format.
func (d Direction) String() string {
	switch d {
	case Maximize:
		return "MAXIMIZE"
	case Minimize:
		return "MINIMIZE"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// LinearProgram is the aggregate model: objective, constraints, bounds and
// variable transforms. It is mutated in place by normalization and must not be
// shared between goroutines.
type LinearProgram struct {
	// Direction of the objective (default Maximize).
	Direction Direction
	// Objective has no bound; its Constant accumulates translations.
	Objective Expression
	// SubjectTo lists constraints; after NormalizeConstraints they only have a right bound.
	SubjectTo []Expression
	// Bounds lists one expression per bounded variable (a single literal with factor 1).
	Bounds []Expression
	// Variables maps every known name (declared and synthesized) to its transform.
	Variables map[string]*Variable
	// Columns lists the structural variables in tableau column order. It starts
	// as the declaration order; free variables are replaced by their split pair.
	Columns []string
	// Declared lists the user variables in declaration order; it never changes.
	Declared []string
	// Unconstrained maps each free variable to its [positive, negative] split names.
	Unconstrained map[string][2]string

	hasObjective bool
	normalized   bool
}

// New returns an empty program.
func New() *LinearProgram {
	return &LinearProgram{
		Variables:     make(map[string]*Variable),
		Unconstrained: make(map[string][2]string),
	}
}

// DeclareVariable registers a user variable. Names must be unique, non-empty
// and must not start with '_'.
func (p *LinearProgram) DeclareVariable(name string) error {
	if name == "" || strings.HasPrefix(name, "_") {
		return inputErrorf(0, ErrReservedName, "%q", name)
	}
	if _, dup := p.Variables[name]; dup {
		return inputErrorf(0, ErrDuplicateVariable, "%q", name)
	}
	p.Variables[name] = NewVariable(name)
	p.Columns = append(p.Columns, name)
	p.Declared = append(p.Declared, name)

	return nil
}

// SetObjective sets the direction and a copy of the objective expression.
func (p *LinearProgram) SetObjective(d Direction, e Expression) {
	p.Direction = d
	p.Objective = e.Clone()
	p.hasObjective = true
}

// AddConstraint appends a copy of e to the constraints.
func (p *LinearProgram) AddConstraint(e Expression) {
	p.SubjectTo = append(p.SubjectTo, e.Clone())
}

// AddBound appends a copy of e to the variable bounds.
func (p *LinearProgram) AddBound(e Expression) {
	p.Bounds = append(p.Bounds, e.Clone())
}

// Check validates the model:
//  1. an objective exists, is unbounded and has literals;
//  2. every constraint has literals and at least one bound;
//  3. every bound is a single literal with factor 1, at most one per variable;
//  4. left ≤ right wherever both bounds are present;
//  5. every literal names a declared variable.
//
// The first violation is returned as an *InputError with the expression's line.
// A declared variable without any bound is valid: it is free.
func (p *LinearProgram) Check() error {
	if !p.hasObjective {
		return inputErrorf(0, ErrNoObjective, "")
	}
	if p.Objective.Bounded() {
		return inputErrorf(p.Objective.Line, ErrObjectiveBounded, "")
	}
	if err := p.checkExpression(p.Objective); err != nil {
		return err
	}

	for _, c := range p.SubjectTo {
		if !c.Bounded() {
			return inputErrorf(c.Line, ErrUnboundedConstraint, "%s", c)
		}
		if err := p.checkExpression(c); err != nil {
			return err
		}
	}

	seen := make(map[string]int, len(p.Bounds))
	for _, b := range p.Bounds {
		if !b.Bounded() {
			return inputErrorf(b.Line, ErrUnboundedConstraint, "%s", b)
		}
		if len(b.Literals) != 1 || b.Literals[0].factor().Cmp(ratOne) != 0 {
			return inputErrorf(b.Line, ErrMalformedBound, "%s", b)
		}
		if err := p.checkExpression(b); err != nil {
			return err
		}
		name := b.Literals[0].Variable
		if prev, dup := seen[name]; dup {
			return inputErrorf(b.Line, ErrDuplicateBound, "%q (first bounded at line %d)", name, prev)
		}
		seen[name] = b.Line
	}

	return nil
}

// checkExpression verifies literals, declared variables and bound order.
func (p *LinearProgram) checkExpression(e Expression) error {
	if len(e.Literals) == 0 {
		return inputErrorf(e.Line, ErrEmptyExpression, "")
	}
	for _, l := range e.Literals {
		if _, ok := p.Variables[l.Variable]; !ok {
			return inputErrorf(e.Line, ErrUndeclaredVariable, "%q", l.Variable)
		}
	}
	if e.LeftBound != nil && e.RightBound != nil && e.LeftBound.Cmp(e.RightBound) > 0 {
		return inputErrorf(e.Line, ErrBoundOrder, "%s > %s", e.LeftBound.RatString(), e.RightBound.RatString())
	}

	return nil
}

// String renders the program in the text format read by package lpfile.
func (p *LinearProgram) String() string {
	var sb strings.Builder
	sb.WriteString(p.Direction.String())
	sb.WriteString("\n")
	sb.WriteString(p.Objective.String())
	sb.WriteString("\nSUBJECT TO\n")
	for _, c := range p.SubjectTo {
		sb.WriteString(c.String())
		sb.WriteString("\n")
	}
	sb.WriteString("BOUNDS\n")
	for _, b := range p.Bounds {
		sb.WriteString(b.String())
		sb.WriteString("\n")
	}
	sb.WriteString("VARIABLES\n")
	for _, name := range p.Columns {
		sb.WriteString(name)
		sb.WriteString("\n")
	}

	return sb.String()
}

// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/exactlp/simplex"
)

// Solution is the optimum of a program, expressed in the user's variables.
type Solution struct {
	// Value of the original objective (constant term and direction included).
	Value *big.Rat
	// Values maps every declared variable to its optimal value.
	Values map[string]*big.Rat
	// Order lists the declared variables in declaration order.
	Order []string
	// Pivots is the number of simplex pivots performed.
	Pivots int
}

// Tableau builds the simplex engine of a normalized program:
//   - one row per constraint "Σ f·v + constant ≤ b", with right-hand side
//     b − constant and a slack column of coefficient 1;
//   - row 0 holds −c to maximize and c to minimize, since the engine maximizes;
//   - structural columns follow Columns and carry their names.
//
// opts are forwarded to simplex.New after the column names.
// Errors: ErrNotNormalized when a constraint still has a left bound.
func (p *LinearProgram) Tableau(opts ...simplex.Option) (*simplex.Simplex, error) {
	n, m := len(p.Columns), len(p.SubjectTo)
	col := make(map[string]int, n)
	for j, name := range p.Columns {
		col[name] = j
	}

	rows := make([][]*big.Rat, m+1)
	for i := range rows {
		rows[i] = make([]*big.Rat, n+m+1)
		for j := range rows[i] {
			rows[i][j] = new(big.Rat)
		}
	}

	sign := big.NewRat(-1, 1)
	if p.Direction == Minimize {
		sign = big.NewRat(1, 1)
	}
	term := new(big.Rat)
	for _, l := range p.Objective.Literals {
		j, ok := col[l.Variable]
		if !ok {
			return nil, fmt.Errorf("Tableau: objective: %w", inputErrorf(p.Objective.Line, ErrUndeclaredVariable, "%q", l.Variable))
		}
		rows[0][j].Add(rows[0][j], term.Mul(sign, l.factor()))
	}

	for i, c := range p.SubjectTo {
		if c.LeftBound != nil || c.RightBound == nil {
			return nil, fmt.Errorf("Tableau: constraint %d (%s): %w", i, c, ErrNotNormalized)
		}
		row := rows[i+1]
		for _, l := range c.Literals {
			j, ok := col[l.Variable]
			if !ok {
				return nil, fmt.Errorf("Tableau: %w", inputErrorf(c.Line, ErrUndeclaredVariable, "%q", l.Variable))
			}
			row[j].Add(row[j], l.factor())
		}
		row[n+i].SetInt64(1)
		row[n+m].Sub(c.RightBound, ratOrZero(c.Constant))
	}

	return simplex.New(rows, append([]simplex.Option{simplex.WithVariableNames(p.Columns...)}, opts...)...)
}

// Solve normalizes the program if needed, runs the two-phase simplex and maps
// the optimum back to the declared variables.
//
// Errors: the *InputError of Check, ErrInfeasible, ErrUnbounded (match with
// errors.Is), or an engine invariant violation.
func (p *LinearProgram) Solve(opts ...simplex.Option) (*Solution, error) {
	if !p.normalized {
		if err := p.Normalize(); err != nil {
			return nil, err
		}
	}
	s, err := p.Tableau(opts...)
	if err != nil {
		return nil, err
	}
	res, err := s.Solve()
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err = res.Err(); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	values := make(map[string]*big.Rat, len(res.Assignment))
	for name, v := range res.Assignment {
		values[name] = v
	}
	if err = p.PushUnconstrainedVariables(values); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	sol := &Solution{
		Value:  new(big.Rat).Set(res.Value),
		Values: make(map[string]*big.Rat, len(p.Declared)),
		Order:  slices.Clone(p.Declared),
		Pivots: res.Pivots,
	}
	if p.Direction == Minimize {
		sol.Value.Neg(sol.Value)
	}
	sol.Value.Add(sol.Value, ratOrZero(p.Objective.Constant))
	for _, name := range p.Declared {
		y, ok := values[name]
		if !ok {
			return nil, fmt.Errorf("Solve: no value for %q: %w", name, simplex.ErrInvariant)
		}
		sol.Values[name] = p.Variables[name].ComputeValue(y)
	}

	return sol, nil
}

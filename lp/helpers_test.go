// SPDX-License-Identifier: MIT

package lp_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exactlp/lp"
)

func rat(s string) *big.Rat {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational fixture: " + s)
	}

	return v
}

func requireRat(t *testing.T, want string, got *big.Rat, msgAndArgs ...any) {
	t.Helper()
	require.NotNil(t, got, msgAndArgs...)
	require.Zerof(t, got.Cmp(rat(want)), "got %s want %s %v", got.RatString(), want, msgAndArgs)
}

// expr builds an expression; empty bound strings mean "absent".
func expr(left, right, constant string, lits ...lp.Literal) lp.Expression {
	var l, r *big.Rat
	if left != "" {
		l = rat(left)
	}
	if right != "" {
		r = rat(right)
	}
	e := lp.NewExpression(l, r, lits...)
	if constant != "" {
		e.Constant = rat(constant)
	}

	return e
}

func requireExpressions(t *testing.T, want, got []lp.Expression) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, want[i].Equal(got[i]), "expression %d: want %s, got %s", i, want[i], got[i])
	}
}

func declare(t *testing.T, p *lp.LinearProgram, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, p.DeclareVariable(n))
	}
}

// getLP has two-sided bounds on both variables and mixed constraints.
func getLP(t *testing.T) *lp.LinearProgram {
	t.Helper()
	p := lp.New()
	declare(t, p, "x_1", "x_2")
	p.AddBound(expr("-3", "-1", "", lp.Lit(1, 1, "x_1")))
	p.AddBound(expr("4", "9", "", lp.Lit(1, 1, "x_2")))
	p.SetObjective(lp.Maximize, expr("", "", "", lp.Lit(4, 1, "x_1"), lp.Lit(-2, 1, "x_2")))
	p.AddConstraint(expr("", "4", "", lp.Lit(-2, 1, "x_1"), lp.Lit(-1, 3, "x_2")))
	p.AddConstraint(expr("1/9", "", "", lp.Lit(3, 1, "x_1"), lp.Lit(1, 1, "x_2")))
	p.AddConstraint(expr("27/42", "11", "", lp.Lit(1, 1, "x_1"), lp.Lit(1, 1, "x_2")))

	return p
}

// getLP2 only has non-negativity bounds.
func getLP2(t *testing.T) *lp.LinearProgram {
	t.Helper()
	p := lp.New()
	declare(t, p, "x_1", "x_2")
	p.AddBound(expr("0", "", "", lp.Lit(1, 1, "x_1")))
	p.AddBound(expr("0", "", "", lp.Lit(1, 1, "x_2")))
	p.SetObjective(lp.Maximize, expr("", "", "", lp.Lit(4, 1, "x_1"), lp.Lit(-2, 1, "x_2")))
	p.AddConstraint(expr("", "4", "", lp.Lit(-2, 1, "x_1"), lp.Lit(-1, 3, "x_2")))
	p.AddConstraint(expr("0", "5", "", lp.Lit(3, 1, "x_1"), lp.Lit(1, 1, "x_2")))

	return p
}

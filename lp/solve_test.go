// SPDX-License-Identifier: MIT

package lp_test

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/exactlp/lp"
	"github.com/katalvlaran/exactlp/matrix"
	"github.com/katalvlaran/exactlp/simplex"
)

// scenario is a program with its expected outcome.
type scenario struct {
	name   string
	build  func(t *testing.T) *lp.LinearProgram
	err    error             // ErrInfeasible / ErrUnbounded, nil when optimal
	value  string            // optimum of the original objective
	values map[string]string // expected assignment
}

func nonNegative(p *lp.LinearProgram, names ...string) {
	for _, n := range names {
		p.AddBound(expr("0", "", "", lp.Lit(1, 1, n)))
	}
}

var scenarios = []scenario{
	{
		name: "three constraints",
		build: func(t *testing.T) *lp.LinearProgram {
			p := lp.New()
			declare(t, p, "x1", "x2", "x3")
			nonNegative(p, "x1", "x2", "x3")
			p.SetObjective(lp.Maximize, expr("", "", "", lp.Lit(5, 1, "x1"), lp.Lit(4, 1, "x2"), lp.Lit(3, 1, "x3")))
			p.AddConstraint(expr("", "5", "", lp.Lit(2, 1, "x1"), lp.Lit(3, 1, "x2"), lp.Lit(1, 1, "x3")))
			p.AddConstraint(expr("", "11", "", lp.Lit(4, 1, "x1"), lp.Lit(1, 1, "x2"), lp.Lit(2, 1, "x3")))
			p.AddConstraint(expr("", "8", "", lp.Lit(3, 1, "x1"), lp.Lit(4, 1, "x2"), lp.Lit(2, 1, "x3")))
			return p
		},
		value:  "13",
		values: map[string]string{"x1": "2", "x2": "0", "x3": "1"},
	},
	{
		name: "infeasible",
		build: func(t *testing.T) *lp.LinearProgram {
			p := lp.New()
			declare(t, p, "x1", "x2")
			nonNegative(p, "x1", "x2")
			p.SetObjective(lp.Minimize, expr("", "", "", lp.Lit(1, 1, "x1"), lp.Lit(1, 1, "x2")))
			p.AddConstraint(expr("", "3", "", lp.Lit(1, 1, "x1"), lp.Lit(1, 1, "x2")))
			p.AddConstraint(expr("4", "", "", lp.Lit(1, 1, "x1")))
			return p
		},
		err: lp.ErrInfeasible,
	},
	{
		name: "unbounded",
		build: func(t *testing.T) *lp.LinearProgram {
			p := lp.New()
			declare(t, p, "x0")
			p.SetObjective(lp.Maximize, expr("", "", "", lp.Lit(1, 1, "x0")))
			p.AddConstraint(expr("4", "", "", lp.Lit(1, 1, "x0")))
			return p
		},
		err: lp.ErrUnbounded,
	},
	{
		name: "free variable",
		build: func(t *testing.T) *lp.LinearProgram {
			p := lp.New()
			declare(t, p, "x", "y")
			p.AddBound(expr("0", "2", "", lp.Lit(1, 1, "y")))
			p.SetObjective(lp.Minimize, expr("", "", "", lp.Lit(1, 1, "x")))
			p.AddConstraint(expr("-3", "", "", lp.Lit(1, 1, "x"), lp.Lit(1, 1, "y")))
			return p
		},
		value:  "-5",
		values: map[string]string{"x": "-5", "y": "2"},
	},
	{
		name: "negative interval maximized",
		build: func(t *testing.T) *lp.LinearProgram {
			p := lp.New()
			declare(t, p, "x1", "x2")
			p.AddBound(expr("-3", "-1", "", lp.Lit(1, 1, "x1")))
			p.AddBound(expr("0", "1", "", lp.Lit(1, 1, "x2")))
			p.SetObjective(lp.Maximize, expr("", "", "", lp.Lit(1, 1, "x1"), lp.Lit(1, 1, "x2")))
			p.AddConstraint(expr("", "5", "", lp.Lit(1, 1, "x1"), lp.Lit(-1, 1, "x2")))
			return p
		},
		value:  "0",
		values: map[string]string{"x1": "-1", "x2": "1"},
	},
	{
		name: "negative interval minimized",
		build: func(t *testing.T) *lp.LinearProgram {
			p := lp.New()
			declare(t, p, "x1", "x2")
			p.AddBound(expr("-3", "-1", "", lp.Lit(1, 1, "x1")))
			p.AddBound(expr("0", "1", "", lp.Lit(1, 1, "x2")))
			p.SetObjective(lp.Minimize, expr("", "", "", lp.Lit(1, 1, "x1"), lp.Lit(1, 1, "x2")))
			p.AddConstraint(expr("", "5", "", lp.Lit(1, 1, "x1"), lp.Lit(-1, 1, "x2")))
			return p
		},
		value:  "-3",
		values: map[string]string{"x1": "-3", "x2": "0"},
	},
	{
		name:   "mixed bounds maximized",
		build:  getLP,
		value:  "-12",
		values: map[string]string{"x_1": "-1", "x_2": "4"},
	},
	{
		name: "mixed bounds minimized",
		build: func(t *testing.T) *lp.LinearProgram {
			p := getLP(t)
			p.Direction = lp.Minimize
			return p
		},
		value:  "-806/27",
		values: map[string]string{"x_1": "-80/27", "x_2": "9"},
	},
	{
		name:   "equality split",
		build:  getLP2,
		value:  "20/3",
		values: map[string]string{"x_1": "5/3", "x_2": "0"},
	},
}

// SolveSuite runs every scenario with one engine configuration.
type SolveSuite struct {
	suite.Suite
	opts []simplex.Option
}

func (s *SolveSuite) TestScenarios() {
	for _, sc := range scenarios {
		s.Run(sc.name, func() {
			t := s.T()
			p := sc.build(t)
			original := sc.build(t)
			sol, err := p.Solve(s.opts...)
			if sc.err != nil {
				require.ErrorIs(t, err, sc.err)
				require.Nil(t, sol)
				return
			}
			require.NoError(t, err)
			requireRat(t, sc.value, sol.Value)
			require.Equal(t, original.Declared, sol.Order)
			require.Len(t, sol.Values, len(sc.values))
			for name, want := range sc.values {
				requireRat(t, want, sol.Values[name], name)
			}
			requireFeasibleOptimum(t, original, sol)
		})
	}
}

func TestSolveSuite(t *testing.T) {
	configs := map[string][]simplex.Option{
		"dense":        {simplex.WithBackend(matrix.DenseBackend)},
		"sparse":       {simplex.WithBackend(matrix.SparseBackend)},
		"sparse-bland": {simplex.WithBackend(matrix.SparseBackend), simplex.WithBlandRule()},
	}
	for name, opts := range configs {
		t.Run(name, func(t *testing.T) {
			suite.Run(t, &SolveSuite{opts: opts})
		})
	}
}

// requireFeasibleOptimum checks a solution against the untouched program:
// every constraint and bound holds and the objective evaluates to the optimum.
func requireFeasibleOptimum(t *testing.T, original *lp.LinearProgram, sol *lp.Solution) {
	t.Helper()
	for _, c := range original.SubjectTo {
		require.True(t, c.Satisfied(sol.Values), "constraint %s at %v", c, sol.Values)
	}
	for _, b := range original.Bounds {
		require.True(t, b.Satisfied(sol.Values), "bound %s at %v", b, sol.Values)
	}
	require.Zero(t, original.Objective.Eval(sol.Values).Cmp(sol.Value), "objective at the solution")
}

func TestSolve_InputErrorSurfaces(t *testing.T) {
	p := lp.New()
	declare(t, p, "x")
	p.SetObjective(lp.Maximize, expr("", "", "", lp.Lit(1, 1, "y")))
	_, err := p.Solve()
	require.ErrorIs(t, err, lp.ErrUndeclaredVariable)
	var ie *lp.InputError
	require.ErrorAs(t, err, &ie)
}

func TestSolve_AfterExplicitNormalize(t *testing.T) {
	p := getLP(t)
	require.NoError(t, p.Normalize())
	sol, err := p.Solve()
	require.NoError(t, err)
	requireRat(t, "-12", sol.Value)
}

// randomProgram draws a small program with integer data. Some variables are
// free, some have one or two bounds; constraints mix ≤, ≥, ranges and equalities.
func randomProgram(t *testing.T, rng *rand.Rand) *lp.LinearProgram {
	t.Helper()
	p := lp.New()
	n := 2 + rng.IntN(3)
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("v%d", i)
	}
	declare(t, p, names...)
	coef := func() int64 { return rng.Int64N(9) - 4 }

	for _, name := range names {
		lo, hi := rng.Int64N(11)-5, rng.Int64N(11)-5
		if lo > hi {
			lo, hi = hi, lo
		}
		switch rng.IntN(4) {
		case 0: // free
		case 1:
			p.AddBound(expr(fmt.Sprint(lo), "", "", lp.Lit(1, 1, name)))
		case 2:
			p.AddBound(expr("", fmt.Sprint(hi), "", lp.Lit(1, 1, name)))
		default:
			p.AddBound(expr(fmt.Sprint(lo), fmt.Sprint(hi), "", lp.Lit(1, 1, name)))
		}
	}

	objective := make([]lp.Literal, 0, n)
	for _, name := range names {
		objective = append(objective, lp.Lit(coef(), 1, name))
	}
	p.SetObjective(lp.Direction(rng.IntN(2)), lp.NewExpression(nil, nil, objective...))

	for c := 0; c < 1+rng.IntN(4); c++ {
		lits := make([]lp.Literal, 0, n)
		for _, name := range names {
			if f := coef(); f != 0 {
				lits = append(lits, lp.Lit(f, 1, name))
			}
		}
		if len(lits) == 0 {
			lits = append(lits, lp.Lit(1, 1, names[0]))
		}
		b := rng.Int64N(21) - 10
		switch rng.IntN(4) {
		case 0:
			p.AddConstraint(lp.NewExpression(nil, big.NewRat(b, 1), lits...))
		case 1:
			p.AddConstraint(lp.NewExpression(big.NewRat(b, 1), nil, lits...))
		case 2:
			p.AddConstraint(lp.NewExpression(big.NewRat(b, 1), big.NewRat(b+rng.Int64N(6), 1), lits...))
		default:
			p.AddConstraint(lp.NewExpression(big.NewRat(b, 1), big.NewRat(b, 1), lits...))
		}
	}

	return p
}

// TestSolve_RandomProgramsAgreeAcrossBackends checks, on random programs, that
// both backends reach the same outcome and that every optimum is feasible for
// the original program and attains the reported value.
func TestSolve_RandomProgramsAgreeAcrossBackends(t *testing.T) {
	for seed := uint64(1); seed <= 150; seed++ {
		build := func() *lp.LinearProgram {
			return randomProgram(t, rand.New(rand.NewPCG(seed, 2024)))
		}
		dense, errDense := build().Solve(simplex.WithBlandRule())
		sparse, errSparse := build().Solve(simplex.WithBlandRule(), simplex.WithBackend(matrix.SparseBackend))

		if errDense != nil {
			require.Error(t, errSparse, "seed %d", seed)
			switch {
			case errors.Is(errDense, lp.ErrInfeasible):
				require.ErrorIs(t, errSparse, lp.ErrInfeasible, "seed %d", seed)
			case errors.Is(errDense, lp.ErrUnbounded):
				require.ErrorIs(t, errSparse, lp.ErrUnbounded, "seed %d", seed)
			default:
				t.Fatalf("seed %d: unexpected error %v", seed, errDense)
			}
			continue
		}
		require.NoError(t, errSparse, "seed %d", seed)
		require.Zero(t, dense.Value.Cmp(sparse.Value), "seed %d: %s vs %s", seed, dense.Value.RatString(), sparse.Value.RatString())
		requireFeasibleOptimum(t, build(), dense)
		requireFeasibleOptimum(t, build(), sparse)
	}
}

// SPDX-License-Identifier: MIT

package lp_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exactlp/lp"
	"github.com/katalvlaran/exactlp/simplex"
)

func TestVariableTransformation(t *testing.T) {
	p := getLP(t)
	require.NoError(t, p.InvertVariable("x_1"))
	require.NoError(t, p.TranslateVariable("x_2", rat("3")))

	require.True(t, p.Objective.Equal(expr("", "", "6", lp.Lit(-4, 1, "x_1"), lp.Lit(-2, 1, "x_2"))))
	requireExpressions(t, []lp.Expression{
		expr("", "4", "1", lp.Lit(2, 1, "x_1"), lp.Lit(-1, 3, "x_2")),
		expr("1/9", "", "-3", lp.Lit(-3, 1, "x_1"), lp.Lit(1, 1, "x_2")),
		expr("27/42", "11", "-3", lp.Lit(-1, 1, "x_1"), lp.Lit(1, 1, "x_2")),
	}, p.SubjectTo)
	require.True(t, p.Variables["x_1"].Equal(&lp.Variable{Name: "x_1", Mult: -1, Add: rat("0")}))
	require.True(t, p.Variables["x_2"].Equal(&lp.Variable{Name: "x_2", Mult: 1, Add: rat("3")}))

	require.ErrorIs(t, p.InvertVariable("nope"), lp.ErrUndeclaredVariable)
	require.ErrorIs(t, p.TranslateVariable("nope", rat("1")), lp.ErrUndeclaredVariable)
}

func TestNormalizeBounds(t *testing.T) {
	p := getLP(t)
	require.NoError(t, p.NormalizeBounds())

	require.True(t, p.Variables["x_1"].Equal(&lp.Variable{Name: "x_1", Mult: -1, Add: rat("-1")}))
	require.True(t, p.Variables["x_2"].Equal(&lp.Variable{Name: "x_2", Mult: 1, Add: rat("-4")}))
	requireExpressions(t, []lp.Expression{
		expr("0", "2", "", lp.Lit(1, 1, "x_1")),
		expr("0", "5", "", lp.Lit(1, 1, "x_2")),
	}, p.Bounds)
	require.True(t, p.Objective.Equal(expr("", "", "-12", lp.Lit(-4, 1, "x_1"), lp.Lit(-2, 1, "x_2"))))
	requireExpressions(t, []lp.Expression{
		expr("", "4", "2/3", lp.Lit(2, 1, "x_1"), lp.Lit(-1, 3, "x_2")),
		expr("1/9", "", "1", lp.Lit(-3, 1, "x_1"), lp.Lit(1, 1, "x_2")),
		expr("27/42", "11", "3", lp.Lit(-1, 1, "x_1"), lp.Lit(1, 1, "x_2")),
		expr("", "2", "", lp.Lit(1, 1, "x_1")),
		expr("", "5", "", lp.Lit(1, 1, "x_2")),
	}, p.SubjectTo)
}

func TestNormalizeBounds_Shapes(t *testing.T) {
	cases := []struct {
		name       string
		left, right string
		mult       int
		add        string
		bound      lp.Expression
		appended   bool
	}{
		{"lower only", "2", "", 1, "-2", expr("0", "", "", lp.Lit(1, 1, "x")), false},
		{"non-negative", "0", "", 1, "0", expr("0", "", "", lp.Lit(1, 1, "x")), false},
		{"upper only", "", "5", -1, "5", expr("0", "", "", lp.Lit(1, 1, "x")), false},
		{"upper non-positive", "", "-2", -1, "-2", expr("0", "", "", lp.Lit(1, 1, "x")), false},
		{"positive interval", "1", "4", 1, "-1", expr("0", "3", "", lp.Lit(1, 1, "x")), true},
		{"straddling zero", "-2", "3", 1, "2", expr("0", "5", "", lp.Lit(1, 1, "x")), true},
		{"fixed", "3", "3", 1, "-3", expr("0", "0", "", lp.Lit(1, 1, "x")), true},
		{"fixed at zero", "0", "0", -1, "0", expr("0", "0", "", lp.Lit(1, 1, "x")), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := lp.New()
			declare(t, p, "x")
			p.SetObjective(lp.Maximize, expr("", "", "", lp.Lit(1, 1, "x")))
			p.AddBound(expr(tc.left, tc.right, "", lp.Lit(1, 1, "x")))
			require.NoError(t, p.NormalizeBounds())

			v := p.Variables["x"]
			require.Equal(t, tc.mult, v.Mult)
			requireRat(t, tc.add, v.Add)
			requireExpressions(t, []lp.Expression{tc.bound}, p.Bounds)
			if tc.appended {
				require.Len(t, p.SubjectTo, 1)
				require.True(t, p.SubjectTo[0].Equal(expr("", tc.bound.RightBound.RatString(), "", lp.Lit(1, 1, "x"))))
			} else {
				require.Empty(t, p.SubjectTo)
			}
			// Every original bound maps into the new interval.
			for _, s := range []string{tc.left, tc.right} {
				if s == "" {
					continue
				}
				y := v.Apply(rat(s))
				require.True(t, tc.bound.Satisfied(map[string]*big.Rat{"x": y}), "bound %s maps to %s", s, y.RatString())
			}
		})
	}
}

func TestNormalizeConstraints(t *testing.T) {
	p := getLP(t)
	p.NormalizeConstraints()
	requireExpressions(t, []lp.Expression{
		expr("", "4", "", lp.Lit(-2, 1, "x_1"), lp.Lit(-1, 3, "x_2")),
		expr("", "-1/9", "", lp.Lit(-3, 1, "x_1"), lp.Lit(-1, 1, "x_2")),
		expr("", "-27/42", "", lp.Lit(-1, 1, "x_1"), lp.Lit(-1, 1, "x_2")),
		expr("", "11", "", lp.Lit(1, 1, "x_1"), lp.Lit(1, 1, "x_2")),
	}, p.SubjectTo)
}

func TestPullPushUnconstrainedVariables(t *testing.T) {
	p := lp.New()
	declare(t, p, "x", "y")
	p.AddBound(expr("0", "2", "", lp.Lit(1, 1, "y")))
	p.SetObjective(lp.Minimize, expr("", "", "", lp.Lit(1, 1, "x")))
	p.AddConstraint(expr("-3", "", "", lp.Lit(1, 1, "x"), lp.Lit(1, 1, "y")))

	require.NoError(t, p.PullUnconstrainedVariables())
	pos, neg := lp.SplitNames("x")
	require.Equal(t, "_x_pos", pos)
	require.Equal(t, "_x_neg", neg)
	require.Equal(t, []string{pos, neg, "y"}, p.Columns)
	require.Equal(t, []string{"x", "y"}, p.Declared)
	require.Equal(t, map[string][2]string{"x": {pos, neg}}, p.Unconstrained)
	require.True(t, p.Objective.Equal(expr("", "", "", lp.Lit(1, 1, pos), lp.Lit(-1, 1, neg))))
	requireExpressions(t, []lp.Expression{
		expr("-3", "", "", lp.Lit(1, 1, pos), lp.Lit(-1, 1, neg), lp.Lit(1, 1, "y")),
	}, p.SubjectTo)
	require.ErrorIs(t, p.PullUnconstrainedVariables(), lp.ErrAlreadyNormalized)

	values := map[string]*big.Rat{pos: rat("0"), neg: rat("5"), "y": rat("2")}
	require.NoError(t, p.PushUnconstrainedVariables(values))
	require.Len(t, values, 2)
	requireRat(t, "-5", values["x"])
	requireRat(t, "2", values["y"])

	values = map[string]*big.Rat{pos: rat("7/2"), "y": rat("0")}
	require.NoError(t, p.PushUnconstrainedVariables(values))
	requireRat(t, "7/2", values["x"])

	values = map[string]*big.Rat{pos: rat("1"), neg: rat("2")}
	require.ErrorIs(t, p.PushUnconstrainedVariables(values), lp.ErrComplementarity)
}

func TestNormalize_Once(t *testing.T) {
	p := getLP(t)
	require.False(t, p.Normalized())
	require.NoError(t, p.Normalize())
	require.True(t, p.Normalized())
	require.ErrorIs(t, p.Normalize(), lp.ErrAlreadyNormalized)

	bad := lp.New()
	require.ErrorIs(t, bad.Normalize(), lp.ErrNoObjective)
	require.False(t, bad.Normalized())
}

func TestTableau(t *testing.T) {
	p := getLP2(t)
	require.NoError(t, p.Normalize())
	s, err := p.Tableau()
	require.NoError(t, err)
	require.Equal(t, 2, s.NbVariables())
	require.Equal(t, 3, s.NbConstraints())
	require.Equal(t, []int{simplex.NoBasis, 2, 3, 4}, s.Basic())
	for j, name := range []string{"x_1", "x_2", "_slack_0", "_slack_1", "_slack_2"} {
		require.Equal(t, name, s.Name(j))
		idx, ok := s.Index(name)
		require.True(t, ok)
		require.Equal(t, j, idx)
	}
	requireTableau(t, s, [][]string{
		{"-4", "2", "0", "0", "0", "0"},
		{"-2", "-1/3", "1", "0", "0", "4"},
		{"-3", "-1", "0", "1", "0", "0"},
		{"3", "1", "0", "0", "1", "5"},
	})

	p = getLP(t)
	require.NoError(t, p.Normalize())
	s, err = p.Tableau()
	require.NoError(t, err)
	requireTableau(t, s, [][]string{
		{"4", "2", "0", "0", "0", "0", "0", "0", "0"},
		{"2", "-1/3", "1", "0", "0", "0", "0", "0", "10/3"},
		{"3", "-1", "0", "1", "0", "0", "0", "0", "8/9"},
		{"1", "-1", "0", "0", "1", "0", "0", "0", "33/14"},
		{"-1", "1", "0", "0", "0", "1", "0", "0", "8"},
		{"1", "0", "0", "0", "0", "0", "1", "0", "2"},
		{"0", "1", "0", "0", "0", "0", "0", "1", "5"},
	})

	raw := getLP(t)
	_, err = raw.Tableau()
	require.ErrorIs(t, err, lp.ErrNotNormalized)
}

func requireTableau(t *testing.T, s *simplex.Simplex, want [][]string) {
	t.Helper()
	m := s.Snapshot().Tableau
	require.Equal(t, len(want), m.Rows())
	for i, row := range want {
		got, err := m.Row(i)
		require.NoError(t, err)
		require.Len(t, got, len(row), "row %d", i)
		for j, c := range row {
			requireRat(t, c, got[j], "cell", i, j)
		}
	}
}

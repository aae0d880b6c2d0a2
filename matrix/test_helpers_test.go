// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the backend tests.
//   • Run every behavioral test against both backends.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exactlp/matrix"
)

// backends lists every storage layout; equivalence tests range over it.
var backends = []matrix.Backend{matrix.DenseBackend, matrix.SparseBackend}

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non fast-path) kernels.
type hide struct{ matrix.Matrix }

// rat parses a rational literal or panics (fixtures are static).
func rat(s string) *big.Rat {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational fixture: " + s)
	}

	return v
}

// rats parses a row of rational literals.
func rats(ss ...string) []*big.Rat {
	out := make([]*big.Rat, len(ss))
	for i, s := range ss {
		out[i] = rat(s)
	}

	return out
}

// mustMatrix builds a matrix from string cells or fails the test.
func mustMatrix(t *testing.T, b matrix.Backend, rows [][]string) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromStrings(b, rows)
	require.NoError(t, err)

	return m
}

// requireCells asserts that m holds exactly the expected cells.
func requireCells(t *testing.T, m matrix.Matrix, want [][]string) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		got, err := m.Row(i)
		require.NoError(t, err)
		require.Len(t, got, len(row), "row %d width", i)
		for j, s := range row {
			require.Zerof(t, got[j].Cmp(rat(s)), "cell (%d,%d): got %s want %s", i, j, got[j].RatString(), s)
		}
	}
}

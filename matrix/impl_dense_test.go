// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exactlp/matrix"
)

func TestNew_InvalidDimensions(t *testing.T) {
	for _, b := range backends {
		_, err := matrix.New(b, -1, 2)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, b.String())
	}
	_, err := matrix.New(matrix.Backend(42), 1, 1)
	require.ErrorIs(t, err, matrix.ErrUnknownBackend)
}

func TestNewFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewFromRows(matrix.DenseBackend, [][]*big.Rat{rats("1", "2"), rats("3")})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewFromStrings_BadCell(t *testing.T) {
	_, err := matrix.NewFromStrings(matrix.SparseBackend, [][]string{{"1", "x"}})
	require.ErrorIs(t, err, matrix.ErrBadValue)
}

func TestAtSet_BoundsAndCopies(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			m, err := matrix.New(b, 2, 3)
			require.NoError(t, err)

			require.NoError(t, m.Set(1, 2, rat("5/3")))
			v, err := m.At(1, 2)
			require.NoError(t, err)
			require.Equal(t, "5/3", v.RatString())

			// Returned values are copies.
			v.SetInt64(99)
			again, _ := m.At(1, 2)
			require.Equal(t, "5/3", again.RatString())

			// Stored values are copies too.
			in := rat("7")
			require.NoError(t, m.Set(0, 0, in))
			in.SetInt64(-1)
			got, _ := m.At(0, 0)
			require.Equal(t, "7", got.RatString())

			_, err = m.At(2, 0)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			err = m.Set(0, 3, rat("1"))
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			err = m.Set(0, 0, nil)
			require.ErrorIs(t, err, matrix.ErrNilValue)
		})
	}
}

func TestInsertColumn_Boundaries(t *testing.T) {
	base := [][]string{{"1", "2", "3"}, {"4", "0", "6"}}
	cases := []struct {
		name  string
		index int
		value string
		want  [][]string
	}{
		{"first", 0, "-1", [][]string{{"-1", "1", "2", "3"}, {"-1", "4", "0", "6"}}},
		{"middle", 1, "0", [][]string{{"1", "0", "2", "3"}, {"4", "0", "0", "6"}}},
		{"last", 3, "1/2", [][]string{{"1", "2", "3", "1/2"}, {"4", "0", "6", "1/2"}}},
	}
	for _, b := range backends {
		for _, tc := range cases {
			t.Run(b.String()+"/"+tc.name, func(t *testing.T) {
				m := mustMatrix(t, b, base)
				require.NoError(t, m.InsertColumn(tc.index, rat(tc.value)))
				require.Equal(t, 4, m.Cols())
				requireCells(t, m, tc.want)
			})
		}
	}
}

func TestRemoveColumn_Boundaries(t *testing.T) {
	base := [][]string{{"1", "0", "3"}, {"0", "5", "6"}}
	cases := []struct {
		name  string
		index int
		want  [][]string
	}{
		{"first", 0, [][]string{{"0", "3"}, {"5", "6"}}},
		{"middle", 1, [][]string{{"1", "3"}, {"0", "6"}}},
		{"last", 2, [][]string{{"1", "0"}, {"0", "5"}}},
	}
	for _, b := range backends {
		for _, tc := range cases {
			t.Run(b.String()+"/"+tc.name, func(t *testing.T) {
				m := mustMatrix(t, b, base)
				require.NoError(t, m.RemoveColumn(tc.index))
				require.Equal(t, 2, m.Cols())
				requireCells(t, m, tc.want)
			})
		}
	}
}

func TestInsertRemoveColumn_OutOfRange(t *testing.T) {
	for _, b := range backends {
		m := mustMatrix(t, b, [][]string{{"1", "2"}})
		require.ErrorIs(t, m.InsertColumn(3, rat("0")), matrix.ErrOutOfRange)
		require.ErrorIs(t, m.InsertColumn(-1, rat("0")), matrix.ErrOutOfRange)
		require.ErrorIs(t, m.RemoveColumn(2), matrix.ErrOutOfRange)
	}
}

func TestInsertThenRemove_RoundTrip(t *testing.T) {
	base := [][]string{{"-5", "-4", "-3", "0"}, {"2", "3", "1", "5"}}
	for _, b := range backends {
		m := mustMatrix(t, b, base)
		require.NoError(t, m.InsertColumn(0, rat("-1")))
		require.NoError(t, m.RemoveColumn(0))
		requireCells(t, m, base)
	}
}

func TestIndexOfMinimum(t *testing.T) {
	cases := []struct {
		name   string
		row    []string
		lo, hi int
		want   int
	}{
		{"negative wins", []string{"3", "-2", "0", "-1"}, 0, 4, 1},
		{"tie lowest index", []string{"1", "-2", "-2", "0"}, 0, 4, 1},
		{"zero is minimum", []string{"3", "0", "5", "0"}, 0, 4, 1},
		{"unstored zero beats positives", []string{"3", "4", "0", "5"}, 0, 4, 2},
		{"range excludes minimum", []string{"-9", "2", "1", "-9"}, 1, 3, 2},
		{"all zeros", []string{"0", "0", "0"}, 0, 3, 0},
		{"single cell", []string{"4", "-1"}, 0, 1, 0},
		{"negative after zeros", []string{"0", "0", "-1/3"}, 0, 3, 2},
		{"zero before equal positives", []string{"2", "2", "0"}, 1, 3, 2},
	}
	for _, b := range backends {
		for _, tc := range cases {
			t.Run(b.String()+"/"+tc.name, func(t *testing.T) {
				m := mustMatrix(t, b, [][]string{tc.row})
				got, err := m.IndexOfMinimum(0, tc.lo, tc.hi)
				require.NoError(t, err)
				require.Equal(t, tc.want, got)
			})
		}
	}
}

func TestIndexOfMinimum_InvalidRange(t *testing.T) {
	for _, b := range backends {
		m := mustMatrix(t, b, [][]string{{"1", "2", "3"}})
		for _, r := range [][2]int{{1, 1}, {2, 1}, {-1, 2}, {0, 4}} {
			_, err := m.IndexOfMinimum(0, r[0], r[1])
			require.Truef(t, errors.Is(err, matrix.ErrOutOfRange), "%v %v", b, r)
		}
		_, err := m.IndexOfMinimum(1, 0, 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
}

func TestRowKernels(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			m := mustMatrix(t, b, [][]string{
				{"-5", "-4", "-3", "0", "0", "0", "0"},
				{"2", "3", "1", "1", "0", "0", "5"},
			})
			// Pivot on (1, 0): normalize the row, then eliminate row 0.
			require.NoError(t, m.ScaleRow(1, rat("2"), (*big.Rat).Quo))
			require.NoError(t, m.SubScaledRow(0, 1, rat("-5")))
			requireCells(t, m, [][]string{
				{"0", "7/2", "-1/2", "5/2", "0", "0", "25/2"},
				{"1", "3/2", "1/2", "1/2", "0", "0", "5/2"},
			})

			require.NoError(t, m.CombineRow(0, rats("0", "-7/2", "1/2", "0", "1", "0", "0"), (*big.Rat).Add))
			requireCells(t, m, [][]string{
				{"0", "0", "0", "5/2", "1", "0", "25/2"},
				{"1", "3/2", "1/2", "1/2", "0", "0", "5/2"},
			})

			// Self-elimination zeroes the row.
			require.NoError(t, m.SubScaledRow(1, 1, rat("1")))
			requireCells(t, m, [][]string{
				{"0", "0", "0", "5/2", "1", "0", "25/2"},
				{"0", "0", "0", "0", "0", "0", "0"},
			})

			require.ErrorIs(t, m.CombineRow(0, rats("1"), (*big.Rat).Add), matrix.ErrDimensionMismatch)
			require.ErrorIs(t, m.SubScaledRow(0, 2, rat("1")), matrix.ErrOutOfRange)
		})
	}
}

func TestRowAndSetRow(t *testing.T) {
	for _, b := range backends {
		m := mustMatrix(t, b, [][]string{{"1", "0"}, {"0", "2"}})
		row, err := m.Row(1)
		require.NoError(t, err)
		row[1].SetInt64(9)
		requireCells(t, m, [][]string{{"1", "0"}, {"0", "2"}})

		require.NoError(t, m.SetRow(0, rats("0", "-3")))
		requireCells(t, m, [][]string{{"0", "-3"}, {"0", "2"}})
		require.ErrorIs(t, m.SetRow(0, rats("1")), matrix.ErrDimensionMismatch)
		require.ErrorIs(t, m.SetRow(0, []*big.Rat{nil, rat("1")}), matrix.ErrNilValue)
	}
}

func TestDense_String(t *testing.T) {
	m := mustMatrix(t, matrix.DenseBackend, [][]string{{"1", "-1/2"}, {"0", "3"}})
	require.Equal(t, "[1, -1/2]\n[0, 3]\n", m.String())
	s := mustMatrix(t, matrix.SparseBackend, [][]string{{"1", "-1/2"}, {"0", "3"}})
	require.Equal(t, m.String(), s.String())
}

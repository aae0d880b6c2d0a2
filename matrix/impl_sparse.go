// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (row-of-maps).
//
// Purpose:
//   - Store only non-zero cells: row i is a map column → value.
//   - Keep the column count explicitly, since trailing zero columns are not stored.
//   - Invariant: no stored value is zero. Every kernel deletes cells that become zero.
//
// Behavior highlights:
//   - Kernels probe op(0, y): when it yields zero, implicit zeros are skipped;
//     otherwise every column of the row is visited. This keeps Sparse exactly
//     equivalent to Dense for arbitrary ops.
//   - IndexOfMinimum treats missing columns as zeros that take part in the search.
//
// Complexity quicksheet:
//   - At/Set: O(1) expected; Clone: O(nnz); SubScaledRow: O(nnz(src));
//   - InsertColumn/RemoveColumn: O(nnz); IndexOfMinimum: O(nnz(row) + hi-lo).

package matrix

import (
	"math/big"
	"strings"
)

// Sparse is a grid of exact rationals storing only non-zero cells.
type Sparse struct {
	c    int
	data []map[int]*big.Rat
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Sparse)(nil)

// NewSparse creates an r×c zero matrix (no cells stored).
// Returns ErrInvalidDimensions when r or c is negative.
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewSparse", ErrInvalidDimensions)
	}
	data := make([]map[int]*big.Rat, rows)
	for i := range data {
		data[i] = make(map[int]*big.Rat)
	}

	return &Sparse{c: cols, data: data}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Sparse) Rows() int { return len(m.data) }

// Cols returns the column count. Complexity: O(1).
func (m *Sparse) Cols() int { return m.c }

// NonZero returns the number of stored cells in row i (0 for an invalid row).
func (m *Sparse) NonZero(i int) int {
	if validateIndex(i, len(m.data)) != nil {
		return 0
	}

	return len(m.data[i])
}

// store writes v into row i at column j, dropping the cell when v is zero.
// v is owned by the matrix after the call.
func (m *Sparse) store(i, j int, v *big.Rat) {
	if v.Sign() == 0 {
		delete(m.data[i], j)
		return
	}
	m.data[i][j] = v
}

// get returns the stored cell or a fresh zero (never nil, never aliased for zeros).
func (m *Sparse) get(i, j int) *big.Rat {
	if v, ok := m.data[i][j]; ok {
		return v
	}

	return new(big.Rat)
}

// At returns a copy of the element at (row, col); missing cells read as zero.
func (m *Sparse) At(row, col int) (*big.Rat, error) {
	if err := m.checkCell(row, col); err != nil {
		return nil, cellErrorf(backendSparse, ctxAt, row, col, err)
	}

	return new(big.Rat).Set(m.get(row, col)), nil
}

// Set stores a copy of v at (row, col); storing zero removes the cell.
func (m *Sparse) Set(row, col int, v *big.Rat) error {
	if err := m.checkCell(row, col); err != nil {
		return cellErrorf(backendSparse, ctxSet, row, col, err)
	}
	if err := validateValue(v); err != nil {
		return cellErrorf(backendSparse, ctxSet, row, col, err)
	}
	m.store(row, col, new(big.Rat).Set(v))

	return nil
}

// checkCell validates both coordinates.
func (m *Sparse) checkCell(row, col int) error {
	if err := validateIndex(row, len(m.data)); err != nil {
		return err
	}

	return validateIndex(col, m.c)
}

// Clone returns a deep copy. Complexity: O(nnz).
func (m *Sparse) Clone() Matrix {
	out := &Sparse{c: m.c, data: make([]map[int]*big.Rat, len(m.data))}
	for i, row := range m.data {
		cp := make(map[int]*big.Rat, len(row))
		for j, v := range row {
			cp[j] = new(big.Rat).Set(v)
		}
		out.data[i] = cp
	}

	return out
}

// Row returns a materialized copy of row i.
// Complexity: O(c).
func (m *Sparse) Row(i int) ([]*big.Rat, error) {
	if err := validateIndex(i, len(m.data)); err != nil {
		return nil, cellErrorf(backendSparse, ctxRow, i, 0, err)
	}
	out := zeroRow(m.c)
	for j, v := range m.data[i] {
		out[j].Set(v)
	}

	return out, nil
}

// SetRow overwrites row i with copies of the non-zero entries of vals.
func (m *Sparse) SetRow(i int, vals []*big.Rat) error {
	if err := validateIndex(i, len(m.data)); err != nil {
		return cellErrorf(backendSparse, ctxSetRow, i, 0, err)
	}
	if err := ValidateVecLen(vals, m.c); err != nil {
		return cellErrorf(backendSparse, ctxSetRow, i, 0, err)
	}
	row := make(map[int]*big.Rat)
	for j, v := range vals {
		if v.Sign() != 0 {
			row[j] = new(big.Rat).Set(v)
		}
	}
	m.data[i] = row

	return nil
}

// CombineRow sets row[i][j] = op(row[i][j], other[j]) for every column.
// Complexity: O(c), since other is a dense vector.
func (m *Sparse) CombineRow(i int, other []*big.Rat, op Op) error {
	if err := validateIndex(i, len(m.data)); err != nil {
		return cellErrorf(backendSparse, ctxCombineRow, i, 0, err)
	}
	if err := ValidateVecLen(other, m.c); err != nil {
		return cellErrorf(backendSparse, ctxCombineRow, i, 0, err)
	}
	for j := 0; j < m.c; j++ {
		m.store(i, j, op(new(big.Rat), m.get(i, j), other[j]))
	}

	return nil
}

// ScaleRow sets row[i][j] = op(row[i][j], s).
// When op(0, s) is zero only stored cells are visited (O(nnz)); otherwise O(c).
func (m *Sparse) ScaleRow(i int, s *big.Rat, op Op) error {
	if err := validateIndex(i, len(m.data)); err != nil {
		return cellErrorf(backendSparse, ctxScaleRow, i, 0, err)
	}
	if err := validateValue(s); err != nil {
		return cellErrorf(backendSparse, ctxScaleRow, i, 0, err)
	}
	if err := validateScalarOp(s, op); err != nil {
		return cellErrorf(backendSparse, ctxScaleRow, i, 0, err)
	}
	scalar := new(big.Rat).Set(s)
	if op(new(big.Rat), new(big.Rat), scalar).Sign() == 0 {
		for j, v := range m.data[i] {
			m.store(i, j, op(new(big.Rat), v, scalar))
		}
		return nil
	}
	for j := 0; j < m.c; j++ {
		m.store(i, j, op(new(big.Rat), m.get(i, j), scalar))
	}

	return nil
}

// SubScaledRow sets row[dst] -= alpha * row[src], visiting only src's stored cells.
// Complexity: O(nnz(src)).
func (m *Sparse) SubScaledRow(dst, src int, alpha *big.Rat) error {
	if err := validateIndex(dst, len(m.data)); err != nil {
		return cellErrorf(backendSparse, ctxSubScaledRow, dst, src, err)
	}
	if err := validateIndex(src, len(m.data)); err != nil {
		return cellErrorf(backendSparse, ctxSubScaledRow, dst, src, err)
	}
	if err := validateValue(alpha); err != nil {
		return cellErrorf(backendSparse, ctxSubScaledRow, dst, src, err)
	}
	if alpha.Sign() == 0 {
		return nil
	}
	a := new(big.Rat).Set(alpha)
	source := m.data[src]
	if dst == src {
		source = make(map[int]*big.Rat, len(m.data[src]))
		for j, v := range m.data[src] {
			source[j] = new(big.Rat).Set(v)
		}
	}
	for j, v := range source {
		cell := new(big.Rat).Mul(a, v)
		m.store(dst, j, cell.Sub(m.get(dst, j), cell))
	}

	return nil
}

// InsertColumn inserts a column filled with v at index, shifting later columns right.
// Complexity: O(nnz + r).
func (m *Sparse) InsertColumn(index int, v *big.Rat) error {
	if index < 0 || index > m.c {
		return cellErrorf(backendSparse, ctxInsertColumn, 0, index, ErrOutOfRange)
	}
	if err := validateValue(v); err != nil {
		return cellErrorf(backendSparse, ctxInsertColumn, 0, index, err)
	}
	for i, row := range m.data {
		shifted := make(map[int]*big.Rat, len(row)+1)
		for j, x := range row {
			if j >= index {
				j++
			}
			shifted[j] = x
		}
		if v.Sign() != 0 {
			shifted[index] = new(big.Rat).Set(v)
		}
		m.data[i] = shifted
	}
	m.c++

	return nil
}

// RemoveColumn deletes column index, shifting later columns left.
// Complexity: O(nnz).
func (m *Sparse) RemoveColumn(index int) error {
	if err := validateIndex(index, m.c); err != nil {
		return cellErrorf(backendSparse, ctxRemoveColumn, 0, index, err)
	}
	for i, row := range m.data {
		shifted := make(map[int]*big.Rat, len(row))
		for j, x := range row {
			switch {
			case j == index:
				continue
			case j > index:
				shifted[j-1] = x
			default:
				shifted[j] = x
			}
		}
		m.data[i] = shifted
	}
	m.c--

	return nil
}

// IndexOfMinimum returns the first minimal column of row i in [lo, hi).
//
// Stored cells are scanned in map order, so ties among them are resolved by
// comparing indices. A missing column in the range is a zero that competes
// with the stored minimum; the lowest such column is found by a linear probe.
func (m *Sparse) IndexOfMinimum(i, lo, hi int) (int, error) {
	if err := validateIndex(i, len(m.data)); err != nil {
		return 0, cellErrorf(backendSparse, ctxIndexOfMin, i, lo, err)
	}
	if err := validateRange(lo, hi, m.c); err != nil {
		return 0, cellErrorf(backendSparse, ctxIndexOfMin, i, lo, err)
	}
	best, stored := -1, 0
	var bestVal *big.Rat
	for j, v := range m.data[i] {
		if j < lo || j >= hi {
			continue
		}
		stored++
		if bestVal == nil {
			best, bestVal = j, v
			continue
		}
		if c := v.Cmp(bestVal); c < 0 || (c == 0 && j < best) {
			best, bestVal = j, v
		}
	}
	if stored == hi-lo {
		return best, nil
	}

	// At least one implicit zero lives in the range: locate the first one.
	zeroCol := lo
	for {
		if _, ok := m.data[i][zeroCol]; !ok {
			break
		}
		zeroCol++
	}
	if bestVal == nil {
		return zeroCol, nil
	}
	switch c := bestVal.Sign(); {
	case c < 0:
		return best, nil
	case c > 0:
		return zeroCol, nil
	default:
		return min(best, zeroCol), nil
	}
}

// String renders the materialized matrix, same layout as Dense.String.
func (m *Sparse) String() string {
	var sb strings.Builder
	for i := range m.data {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.get(i, j).RatString())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

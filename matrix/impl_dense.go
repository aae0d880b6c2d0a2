// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-of-slices) & safe accessors.
//
// Purpose:
//   - Keep every cell materialized: row i is an ordered []*big.Rat of length c.
//   - Column insertion/removal is a per-row slice splice, which is why the
//     storage is row-of-slices rather than one flat buffer.
//   - Guarantee safety at the public surface: methods return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c);
//   - InsertColumn/RemoveColumn: O(r*c); row kernels: O(c).

package matrix

import (
	"math/big"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt           = "At"
	ctxSet          = "Set"
	ctxRow          = "Row"
	ctxSetRow       = "SetRow"
	ctxCombineRow   = "CombineRow"
	ctxScaleRow     = "ScaleRow"
	ctxSubScaledRow = "SubScaledRow"
	ctxInsertColumn = "InsertColumn"
	ctxRemoveColumn = "RemoveColumn"
	ctxIndexOfMin   = "IndexOfMinimum"

	backendDense  = "Dense"
	backendSparse = "Sparse"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a row-major grid of exact rationals.
//   - c holds the column count (kept explicitly so 0-row matrices keep their width).
//   - data[i] is row i; len(data[i]) == c and no entry is nil.
type Dense struct {
	c    int
	data [][]*big.Rat
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// Returns ErrInvalidDimensions when r or c is negative.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}
	data := make([][]*big.Rat, rows)
	for i := range data {
		data[i] = zeroRow(cols)
	}

	return &Dense{c: cols, data: data}, nil
}

// zeroRow allocates n fresh zero rationals.
func zeroRow(n int) []*big.Rat {
	row := make([]*big.Rat, n)
	for j := range row {
		row[j] = new(big.Rat)
	}

	return row
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return len(m.data) }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// At returns a copy of the element at (row, col).
func (m *Dense) At(row, col int) (*big.Rat, error) {
	if err := m.checkCell(row, col); err != nil {
		return nil, cellErrorf(backendDense, ctxAt, row, col, err)
	}

	return new(big.Rat).Set(m.data[row][col]), nil
}

// Set stores a copy of v at (row, col).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	if err := m.checkCell(row, col); err != nil {
		return cellErrorf(backendDense, ctxSet, row, col, err)
	}
	if err := validateValue(v); err != nil {
		return cellErrorf(backendDense, ctxSet, row, col, err)
	}
	m.data[row][col].Set(v)

	return nil
}

// checkCell validates both coordinates.
func (m *Dense) checkCell(row, col int) error {
	if err := validateIndex(row, len(m.data)); err != nil {
		return err
	}

	return validateIndex(col, m.c)
}

// Clone returns a deep copy. Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	out := &Dense{c: m.c, data: make([][]*big.Rat, len(m.data))}
	for i, row := range m.data {
		out.data[i] = copyRow(row)
	}

	return out
}

// copyRow deep-copies a row of rationals.
func copyRow(row []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(row))
	for j, v := range row {
		out[j] = new(big.Rat).Set(v)
	}

	return out
}

// Row returns a deep copy of row i.
func (m *Dense) Row(i int) ([]*big.Rat, error) {
	if err := validateIndex(i, len(m.data)); err != nil {
		return nil, cellErrorf(backendDense, ctxRow, i, 0, err)
	}

	return copyRow(m.data[i]), nil
}

// SetRow overwrites row i with copies of vals.
func (m *Dense) SetRow(i int, vals []*big.Rat) error {
	if err := validateIndex(i, len(m.data)); err != nil {
		return cellErrorf(backendDense, ctxSetRow, i, 0, err)
	}
	if err := ValidateVecLen(vals, m.c); err != nil {
		return cellErrorf(backendDense, ctxSetRow, i, 0, err)
	}
	for j, v := range vals {
		m.data[i][j].Set(v)
	}

	return nil
}

// CombineRow sets row[i][j] = op(row[i][j], other[j]).
// Complexity: O(c).
func (m *Dense) CombineRow(i int, other []*big.Rat, op Op) error {
	if err := validateIndex(i, len(m.data)); err != nil {
		return cellErrorf(backendDense, ctxCombineRow, i, 0, err)
	}
	if err := ValidateVecLen(other, m.c); err != nil {
		return cellErrorf(backendDense, ctxCombineRow, i, 0, err)
	}
	row := m.data[i]
	for j := range row {
		op(row[j], row[j], other[j])
	}

	return nil
}

// ScaleRow sets row[i][j] = op(row[i][j], s).
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, s *big.Rat, op Op) error {
	if err := validateIndex(i, len(m.data)); err != nil {
		return cellErrorf(backendDense, ctxScaleRow, i, 0, err)
	}
	if err := validateValue(s); err != nil {
		return cellErrorf(backendDense, ctxScaleRow, i, 0, err)
	}
	if err := validateScalarOp(s, op); err != nil {
		return cellErrorf(backendDense, ctxScaleRow, i, 0, err)
	}
	// Copy s first: it may alias a cell of this very row.
	scalar := new(big.Rat).Set(s)
	for _, v := range m.data[i] {
		op(v, v, scalar)
	}

	return nil
}

// SubScaledRow sets row[dst] -= alpha * row[src].
// Complexity: O(c).
func (m *Dense) SubScaledRow(dst, src int, alpha *big.Rat) error {
	if err := validateIndex(dst, len(m.data)); err != nil {
		return cellErrorf(backendDense, ctxSubScaledRow, dst, src, err)
	}
	if err := validateIndex(src, len(m.data)); err != nil {
		return cellErrorf(backendDense, ctxSubScaledRow, dst, src, err)
	}
	if err := validateValue(alpha); err != nil {
		return cellErrorf(backendDense, ctxSubScaledRow, dst, src, err)
	}
	if alpha.Sign() == 0 {
		return nil
	}
	a := new(big.Rat).Set(alpha)
	// Snapshot src when it is dst, so the update reads the original values.
	source := m.data[src]
	if dst == src {
		source = copyRow(source)
	}
	tmp := new(big.Rat)
	for j, v := range m.data[dst] {
		if source[j].Sign() == 0 {
			continue
		}
		tmp.Mul(a, source[j])
		v.Sub(v, tmp)
	}

	return nil
}

// InsertColumn inserts a column of copies of v at index, shifting later columns right.
// Complexity: O(r*c).
func (m *Dense) InsertColumn(index int, v *big.Rat) error {
	if index < 0 || index > m.c {
		return cellErrorf(backendDense, ctxInsertColumn, 0, index, ErrOutOfRange)
	}
	if err := validateValue(v); err != nil {
		return cellErrorf(backendDense, ctxInsertColumn, 0, index, err)
	}
	for i, row := range m.data {
		m.data[i] = slices.Insert(row, index, new(big.Rat).Set(v))
	}
	m.c++

	return nil
}

// RemoveColumn deletes column index, shifting later columns left.
// Complexity: O(r*c).
func (m *Dense) RemoveColumn(index int) error {
	if err := validateIndex(index, m.c); err != nil {
		return cellErrorf(backendDense, ctxRemoveColumn, 0, index, err)
	}
	for i, row := range m.data {
		m.data[i] = slices.Delete(row, index, index+1)
	}
	m.c--

	return nil
}

// IndexOfMinimum scans row i over [lo, hi) and returns the first minimal column.
// Complexity: O(hi-lo).
func (m *Dense) IndexOfMinimum(i, lo, hi int) (int, error) {
	if err := validateIndex(i, len(m.data)); err != nil {
		return 0, cellErrorf(backendDense, ctxIndexOfMin, i, lo, err)
	}
	if err := validateRange(lo, hi, m.c); err != nil {
		return 0, cellErrorf(backendDense, ctxIndexOfMin, i, lo, err)
	}
	row := m.data[i]
	best := lo
	for j := lo + 1; j < hi; j++ {
		// Strict comparison keeps the lowest index on ties.
		if row[j].Cmp(row[best]) < 0 {
			best = j
		}
	}

	return best, nil
}

// String implements fmt.Stringer: one bracketed row per line, values in RatString form.
func (m *Dense) String() string {
	var sb strings.Builder
	for _, row := range m.data {
		sb.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(v.RatString())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

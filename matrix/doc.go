// Package matrix provides exact rational grids used as simplex tableaux.
//
// The matrix package provides:
//
//   - Matrix, a uniform interface over a two-dimensional grid of *big.Rat values.
//   - Dense, a row-of-slices backend: every cell is materialized.
//   - Sparse, a row-of-maps backend: only non-zero cells are stored and the
//     column count is kept explicitly.
//   - Elementwise and scalar kernels (allocating and in-place), column
//     insertion/removal and a row "index of minimum" search.
//
// Both backends are behaviorally identical; the choice is made once, when the
// grid is built (see Backend and New), and never switched afterwards.
// Sparse pays off on tableaux where most constraint rows touch few variables.
//
// All public operations return sentinel errors (see errors.go) instead of
// panicking; callers match them with errors.Is.
package matrix

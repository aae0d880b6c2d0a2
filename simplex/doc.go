// Package simplex implements the two-phase tableau simplex method over exact
// rational arithmetic.
//
// A tableau has one objective row (row 0) followed by one row per ≤ constraint,
// and one column per structural variable, one per slack variable, plus the
// right-hand side in the last column. Row 0 stores the negated objective of a
// maximization problem, so the engine always drives it towards non-negative
// reduced costs; the optimum is read from row 0's last column.
//
// Phases:
//
//   - Initial: the tableau as built; the slack columns form the starting basis.
//   - First:   entered only when some right-hand side is negative. An auxiliary
//     column "_phase1_" is inserted at index 0 (−1 in every constraint row) and
//     the most infeasible row is pivoted into it. A non-zero optimum of this
//     auxiliary problem proves infeasibility.
//   - Restored: the auxiliary column is pivoted out and removed, the real
//     objective is put back and re-expressed in the current basis.
//   - Second:  the plain pivot loop on the real objective.
//
// Pivot rules:
//
//   - Entering column: most negative objective coefficient, lowest column on ties
//     (or, with WithBlandRule, the first negative coefficient).
//   - Leaving row: minimum ratio RHS/coefficient over strictly positive
//     coefficients, lowest row on ties (with WithBlandRule, lowest basic column).
//
// Terminal states are returned as a Status (Optimal, Infeasible, Unbounded),
// not as errors; errors are reserved for misuse and broken invariants.
//
// Complexity:
//
//   - Each pivot costs O(rows · cols) rational operations (O(rows · nnz) on the
//     sparse backend).
//   - The number of pivots is exponential in the worst case; the Dantzig rule
//     may cycle on degenerate tableaux, the Bland rule never does.
//
// Example usage:
//
//	s, err := simplex.New(rows, simplex.WithBackend(matrix.SparseBackend))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := s.Solve()
//	if err != nil {
//	    log.Fatal(err) // broken tableau, not a terminal state
//	}
//	if err = res.Err(); err != nil {
//	    fmt.Println(err) // simplex: problem is infeasible / unbounded
//	}
//	fmt.Println(res.Value.RatString(), res.Assignment)
package simplex

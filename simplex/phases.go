// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math/big"
	"slices"
)

// AddVariable inserts the first-phase auxiliary column at index 0, with −1 in
// every constraint row and +1 in the objective row. Every existing column
// shifts right by one; the basis and both name maps shift with it.
func (s *Simplex) AddVariable() error {
	if _, dup := s.index[Phase1Name]; dup {
		return fmt.Errorf("AddVariable: auxiliary column already present: %w", ErrInvariant)
	}
	if err := s.tableau.InsertColumn(0, big.NewRat(-1, 1)); err != nil {
		return fmt.Errorf("AddVariable: %w", err)
	}
	if err := s.tableau.Set(0, 0, big.NewRat(1, 1)); err != nil {
		return fmt.Errorf("AddVariable: %w", err)
	}

	for i := 1; i < len(s.basic); i++ {
		s.basic[i]++
	}
	s.nbVariables++
	s.names = slices.Insert(s.names, 0, Phase1Name)
	for name := range s.index {
		s.index[name]++
	}
	s.index[Phase1Name] = 0

	return nil
}

// RemoveVariable removes the auxiliary column inserted by AddVariable. If the
// auxiliary variable is still basic (necessarily at value 0), it is first
// pivoted out on the first non-zero entry of its row.
//
// Errors: ErrInvariant when column 0 is not the auxiliary column, when the
// auxiliary variable is basic at a non-zero value, or when its row has no
// other non-zero variable entry.
func (s *Simplex) RemoveVariable() error {
	if s.Name(0) != Phase1Name {
		return fmt.Errorf("RemoveVariable: column 0 is %q: %w", s.Name(0), ErrInvariant)
	}
	if row := slices.Index(s.basic, 0); row > 0 {
		b, err := s.tableau.At(row, s.rhs())
		if err != nil {
			return fmt.Errorf("RemoveVariable: %w", err)
		}
		if b.Sign() != 0 {
			return fmt.Errorf("RemoveVariable: auxiliary variable basic at %s: %w", b.RatString(), ErrInvariant)
		}
		col, err := s.firstNonZero(row, 1)
		if err != nil {
			return fmt.Errorf("RemoveVariable: %w", err)
		}
		if err = s.pivot(row, col); err != nil {
			return fmt.Errorf("RemoveVariable: %w", err)
		}
	}

	if err := s.tableau.RemoveColumn(0); err != nil {
		return fmt.Errorf("RemoveVariable: %w", err)
	}
	for i := 1; i < len(s.basic); i++ {
		s.basic[i]--
	}
	s.nbVariables--
	s.names = s.names[1:]
	delete(s.index, Phase1Name)
	for name := range s.index {
		s.index[name]--
	}

	return nil
}

// firstNonZero returns the first variable column ≥ from with a non-zero entry in row.
func (s *Simplex) firstNonZero(row, from int) (int, error) {
	for col := from; col < s.rhs(); col++ {
		v, err := s.tableau.At(row, col)
		if err != nil {
			return -1, err
		}
		if v.Sign() != 0 {
			return col, nil
		}
	}

	return -1, fmt.Errorf("row %d has no non-zero variable entry: %w", row, ErrInvariant)
}

// FirstPhaseLeavingVariable returns the constraint row with the most negative
// right-hand side (lowest row on ties) and a copy of that right-hand side.
// A non-negative value means the slack basis is already feasible. A tableau
// without constraints reports row 0 and value 0.
func (s *Simplex) FirstPhaseLeavingVariable() (int, *big.Rat, error) {
	if s.nbConstraints == 0 {
		return 0, new(big.Rat), nil
	}
	last := s.rhs()
	imin := 1
	vmin, err := s.tableau.At(1, last)
	if err != nil {
		return -1, nil, fmt.Errorf("FirstPhaseLeavingVariable: %w", err)
	}
	for i := 2; i <= s.nbConstraints; i++ {
		v, err := s.tableau.At(i, last)
		if err != nil {
			return -1, nil, fmt.Errorf("FirstPhaseLeavingVariable: %w", err)
		}
		if v.Cmp(vmin) < 0 {
			imin, vmin = i, v
		}
	}

	return imin, vmin, nil
}

// UpdateObjective re-expresses the objective row in the current basis: for
// each basic column c of row r, row 0 −= row0[c] · row r.
func (s *Simplex) UpdateObjective() error {
	for r := 1; r < len(s.basic); r++ {
		f, err := s.tableau.At(0, s.basic[r])
		if err != nil {
			return fmt.Errorf("UpdateObjective: %w", err)
		}
		if f.Sign() == 0 {
			continue
		}
		if err = s.tableau.SubScaledRow(0, r, f); err != nil {
			return fmt.Errorf("UpdateObjective: %w", err)
		}
	}

	return nil
}

// Solve runs both phases and extracts the solution.
//
// The returned error is reserved for broken invariants; Infeasible and
// Unbounded are reported through Result.Status (see Result.Err). Solve is
// meant to be called once: later calls return the first result.
func (s *Simplex) Solve() (*Result, error) {
	if s.result != nil {
		return s.result, nil
	}
	s.notifyPhase(PhaseInitial)

	row, b, err := s.FirstPhaseLeavingVariable()
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if b.Sign() < 0 {
		feasible, err := s.firstPhase(row)
		if err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
		if !feasible {
			return s.finish(&Result{Status: Infeasible, Pivots: s.pivots}), nil
		}
	}

	s.notifyPhase(PhaseSecond)
	st, err := s.RunSimplex()
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if st == Unbounded {
		return s.finish(&Result{Status: Unbounded, Pivots: s.pivots}), nil
	}

	return s.finish(s.extract()), nil
}

// firstPhase finds a feasible basis through the auxiliary column and puts the
// real objective back. It reports false when the problem is infeasible.
func (s *Simplex) firstPhase(row int) (bool, error) {
	objective, err := s.tableau.Row(0)
	if err != nil {
		return false, err
	}
	zero := make([]*big.Rat, s.tableau.Cols())
	for j := range zero {
		zero[j] = new(big.Rat)
	}
	if err = s.tableau.SetRow(0, zero); err != nil {
		return false, err
	}
	if err = s.AddVariable(); err != nil {
		return false, err
	}
	s.notifyPhase(PhaseFirst)

	if err = s.PerformPivot(row, 0); err != nil {
		return false, err
	}
	st, err := s.RunSimplex()
	if err != nil {
		return false, err
	}
	// The auxiliary objective is bounded below by construction.
	if st != Optimal {
		return false, fmt.Errorf("first phase ended %v: %w", st, ErrInvariant)
	}
	if s.Value().Sign() != 0 {
		return false, nil
	}

	if err = s.RemoveVariable(); err != nil {
		return false, err
	}
	if err = s.tableau.SetRow(0, objective); err != nil {
		return false, err
	}
	if err = s.UpdateObjective(); err != nil {
		return false, err
	}
	s.notifyPhase(PhaseRestored)

	return true, nil
}

// extract reads the optimum: basic structural variables take their row's RHS,
// every other structural variable is zero.
func (s *Simplex) extract() *Result {
	res := &Result{
		Status:     Optimal,
		Value:      s.Value(),
		Assignment: make(map[string]*big.Rat, s.nbVariables),
		Pivots:     s.pivots,
	}
	for j := 0; j < s.nbVariables; j++ {
		res.Assignment[s.names[j]] = new(big.Rat)
	}
	for r := 1; r <= s.nbConstraints; r++ {
		if c := s.basic[r]; c < s.nbVariables {
			res.Assignment[s.names[c]], _ = s.tableau.At(r, s.rhs())
		}
	}

	return res
}

// finish caches and logs the result.
func (s *Simplex) finish(res *Result) *Result {
	s.result = res
	attrs := []any{"status", res.Status.String(), "pivots", res.Pivots}
	if res.Value != nil {
		attrs = append(attrs, "value", res.Value.RatString())
	}
	s.cfg.Logger.Info("simplex: done", attrs...)

	return res
}

// notifyPhase logs the transition and forwards a snapshot to the Observer.
func (s *Simplex) notifyPhase(p Phase) {
	s.cfg.Logger.Info("simplex: phase", "phase", p.String(),
		"rows", s.tableau.Rows(), "cols", s.tableau.Cols())
	if s.cfg.Observer != nil {
		s.cfg.Observer.OnPhase(p, s.Snapshot())
	}
}

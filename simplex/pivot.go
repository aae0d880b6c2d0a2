// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math/big"
)

// ChoosePivot selects the entering column and the leaving row.
//
// Returns:
//   - (row, col, Pending, nil) when a pivot is available;
//   - (-1, -1, Optimal, nil) when no reduced cost is negative;
//   - (-1, col, Unbounded, nil) when column col has no positive coefficient.
func (s *Simplex) ChoosePivot() (row, col int, st Status, err error) {
	col, err = s.enteringColumn()
	if err != nil {
		return -1, -1, Optimal, fmt.Errorf("ChoosePivot: %w", err)
	}
	if col < 0 {
		return -1, -1, Optimal, nil
	}
	row, err = s.leavingRow(col)
	if err != nil {
		return -1, col, Optimal, fmt.Errorf("ChoosePivot: %w", err)
	}
	if row < 0 {
		return -1, col, Unbounded, nil
	}

	return row, col, Pending, nil
}

// enteringColumn returns the entering column, or -1 when the tableau is optimal.
func (s *Simplex) enteringColumn() (int, error) {
	last := s.rhs()
	if s.cfg.Bland {
		for j := 0; j < last; j++ {
			v, err := s.tableau.At(0, j)
			if err != nil {
				return -1, err
			}
			if v.Sign() < 0 {
				return j, nil
			}
		}

		return -1, nil
	}

	col, err := s.tableau.IndexOfMinimum(0, 0, last)
	if err != nil {
		return -1, err
	}
	v, err := s.tableau.At(0, col)
	if err != nil {
		return -1, err
	}
	if v.Sign() >= 0 {
		return -1, nil
	}

	return col, nil
}

// leavingRow runs the ratio test on column col, or returns -1 when no row
// has a strictly positive coefficient.
func (s *Simplex) leavingRow(col int) (int, error) {
	last := s.rhs()
	row := -1
	var best *big.Rat
	for r := 1; r <= s.nbConstraints; r++ {
		coef, err := s.tableau.At(r, col)
		if err != nil {
			return -1, err
		}
		if coef.Sign() <= 0 {
			continue
		}
		b, err := s.tableau.At(r, last)
		if err != nil {
			return -1, err
		}
		ratio := b.Quo(b, coef)
		if row < 0 {
			row, best = r, ratio
			continue
		}
		switch c := ratio.Cmp(best); {
		case c < 0:
			row, best = r, ratio
		case c == 0 && s.cfg.Bland && s.basic[r] < s.basic[row]:
			row = r
		}
	}

	return row, nil
}

// PerformPivot makes column col basic in row row: the row is divided by the
// pivot coefficient and col is eliminated from every other row (objective
// included). The Observer is notified after the pivot.
//
// Errors: PivotError (wrapping ErrInvalidPivot) when row is not a constraint
// row, col is not a variable column, or the pivot coefficient is zero.
func (s *Simplex) PerformPivot(row, col int) error {
	p := Pivot{Row: row, Column: col, Entering: s.Name(col)}
	if row >= 1 && row <= s.nbConstraints {
		p.Leaving = s.Name(s.basic[row])
	}
	if err := s.pivot(row, col); err != nil {
		return err
	}
	s.pivots++
	s.cfg.Logger.Debug("simplex: pivot",
		"row", row, "column", col, "entering", p.Entering, "leaving", p.Leaving)
	if s.cfg.Observer != nil {
		s.cfg.Observer.OnPivot(p, s.Snapshot())
	}

	return nil
}

// pivot performs the row operations without notifying anyone.
func (s *Simplex) pivot(row, col int) error {
	if row < 1 || row > s.nbConstraints {
		return PivotError{Row: row, Column: col, Reason: "not a constraint row"}
	}
	if col < 0 || col >= s.rhs() {
		return PivotError{Row: row, Column: col, Reason: "not a variable column"}
	}
	coef, err := s.tableau.At(row, col)
	if err != nil {
		return fmt.Errorf("pivot: %w", err)
	}
	if coef.Sign() == 0 {
		return PivotError{Row: row, Column: col, Reason: "zero coefficient"}
	}

	if err = s.tableau.ScaleRow(row, coef, (*big.Rat).Quo); err != nil {
		return fmt.Errorf("pivot: %w", err)
	}
	for r := 0; r <= s.nbConstraints; r++ {
		if r == row {
			continue
		}
		f, err := s.tableau.At(r, col)
		if err != nil {
			return fmt.Errorf("pivot: %w", err)
		}
		if f.Sign() == 0 {
			continue
		}
		if err = s.tableau.SubScaledRow(r, row, f); err != nil {
			return fmt.Errorf("pivot: %w", err)
		}
	}
	s.basic[row] = col

	return nil
}

// RunSimplex repeats ChoosePivot / PerformPivot until the tableau is Optimal
// or a column proves it Unbounded. The objective value is then Value().
func (s *Simplex) RunSimplex() (Status, error) {
	for {
		row, col, st, err := s.ChoosePivot()
		if err != nil {
			return st, fmt.Errorf("RunSimplex: %w", err)
		}
		if st != Pending {
			return st, nil
		}
		if err = s.PerformPivot(row, col); err != nil {
			return st, fmt.Errorf("RunSimplex: %w", err)
		}
	}
}

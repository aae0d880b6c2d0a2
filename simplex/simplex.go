// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/exactlp/matrix"
)

// Simplex is the engine state: the tableau, the current basis and the
// column ↔ name maps. It is mutated in place by every step and must not be
// shared between goroutines.
type Simplex struct {
	tableau       matrix.Matrix
	nbVariables   int            // structural columns (plus the auxiliary one during the first phase)
	nbConstraints int            // constraint rows (tableau rows − 1)
	basic         []int          // basic[i] = basic column of row i; basic[0] = NoBasis
	names         []string       // names[j] = name of column j, len = cols − 1
	index         map[string]int // inverse of names
	pivots        int
	result        *Result
	cfg           Options
}

// New builds an engine from a raw tableau given as rows. The last nbConstraints
// columns before the RHS must form the starting (slack) basis, i.e. a unit
// matrix over the constraint rows. Every value is copied.
//
// Errors: ErrMalformedTableau (fewer than 2 columns, ragged rows, nil cells,
// a broken slack basis, bad names), matrix.ErrUnknownBackend.
func New(rows [][]*big.Rat, opts ...Option) (*Simplex, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("New: no objective row: %w", ErrMalformedTableau)
	}
	m, err := matrix.NewFromRows(cfg.Backend, rows)
	if err != nil {
		return nil, fmt.Errorf("New: %w: %w", ErrMalformedTableau, err)
	}

	return newEngine(m, cfg)
}

// NewTableau builds an engine from an existing matrix. The matrix is cloned and
// keeps its own backend; WithBackend is ignored.
func NewTableau(m matrix.Matrix, opts ...Option) (*Simplex, error) {
	if m == nil {
		return nil, fmt.Errorf("NewTableau: %w: %w", ErrMalformedTableau, matrix.ErrNilMatrix)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return newEngine(m.Clone(), cfg)
}

// newEngine validates the tableau shape and starting basis, then names columns.
func newEngine(m matrix.Matrix, cfg Options) (*Simplex, error) {
	if m.Rows() == 0 {
		return nil, fmt.Errorf("newEngine: no objective row: %w", ErrMalformedTableau)
	}
	nbConstraints := m.Rows() - 1
	nbVariables := m.Cols() - nbConstraints - 1
	if nbVariables < 0 || m.Cols() < 2 {
		return nil, fmt.Errorf("newEngine: %d×%d tableau has no room for a slack basis: %w",
			m.Rows(), m.Cols(), ErrMalformedTableau)
	}

	s := &Simplex{
		tableau:       m,
		nbVariables:   nbVariables,
		nbConstraints: nbConstraints,
		basic:         make([]int, nbConstraints+1),
		cfg:           cfg,
	}
	s.basic[0] = NoBasis
	for i := 1; i <= nbConstraints; i++ {
		s.basic[i] = nbVariables + i - 1
	}
	if err := s.checkBasis(); err != nil {
		return nil, fmt.Errorf("newEngine: %w: %w", ErrMalformedTableau, err)
	}
	if err := s.nameColumns(cfg.Names); err != nil {
		return nil, err
	}

	return s, nil
}

// nameColumns assigns structural, then slack names and builds the inverse map.
func (s *Simplex) nameColumns(structural []string) error {
	if structural != nil && len(structural) != s.nbVariables {
		return fmt.Errorf("nameColumns: %d names for %d variables: %w",
			len(structural), s.nbVariables, ErrMalformedTableau)
	}
	s.names = make([]string, 0, s.nbVariables+s.nbConstraints)
	for j := 0; j < s.nbVariables; j++ {
		if structural != nil {
			s.names = append(s.names, structural[j])
		} else {
			s.names = append(s.names, fmt.Sprintf("x_%d", j))
		}
	}
	for i := 0; i < s.nbConstraints; i++ {
		s.names = append(s.names, fmt.Sprintf("_slack_%d", i))
	}

	s.index = make(map[string]int, len(s.names))
	for j, name := range s.names {
		if name == "" || name == Phase1Name {
			return fmt.Errorf("nameColumns: reserved name %q: %w", name, ErrMalformedTableau)
		}
		if _, dup := s.index[name]; dup {
			return fmt.Errorf("nameColumns: duplicate name %q: %w", name, ErrMalformedTableau)
		}
		s.index[name] = j
	}

	return nil
}

// checkBasis verifies that each basic column is a unit vector over the
// constraint rows, with its 1 on its own row.
func (s *Simplex) checkBasis() error {
	for i := 1; i <= s.nbConstraints; i++ {
		col := s.basic[i]
		for r := 1; r <= s.nbConstraints; r++ {
			v, err := s.tableau.At(r, col)
			if err != nil {
				return err
			}
			want := 0
			if r == i {
				want = 1
			}
			if v.Cmp(big.NewRat(int64(want), 1)) != 0 {
				return fmt.Errorf("column %d is not a unit vector at row %d (cell (%d,%d) = %s)",
					col, i, r, col, v.RatString())
			}
		}
	}

	return nil
}

// ---------- Accessors ----------

// NbVariables returns the number of structural columns (the auxiliary column
// counts during the first phase).
func (s *Simplex) NbVariables() int { return s.nbVariables }

// NbConstraints returns the number of constraint rows.
func (s *Simplex) NbConstraints() int { return s.nbConstraints }

// Basic returns a copy of the basis; element 0 is NoBasis.
func (s *Simplex) Basic() []int { return slices.Clone(s.basic) }

// Name returns the name of column j, or "" when j is not a variable column.
func (s *Simplex) Name(j int) string {
	if j < 0 || j >= len(s.names) {
		return ""
	}

	return s.names[j]
}

// Index returns the column of a named variable.
func (s *Simplex) Index(name string) (int, bool) {
	j, ok := s.index[name]

	return j, ok
}

// Value returns a copy of row 0's last column: the current objective value.
func (s *Simplex) Value() *big.Rat {
	v, _ := s.tableau.At(0, s.rhs())

	return v
}

// Snapshot returns a deep copy of the current state.
func (s *Simplex) Snapshot() Snapshot {
	return Snapshot{
		Tableau: s.tableau.Clone(),
		Basic:   slices.Clone(s.basic),
		Names:   slices.Clone(s.names),
	}
}

// rhs returns the index of the right-hand side column.
func (s *Simplex) rhs() int { return s.tableau.Cols() - 1 }

// String renders the tableau with its basis, for debugging.
func (s *Simplex) String() string {
	return fmt.Sprintf("nbConstraints: %d\nnbVariables: %d\nbasicVariables: %v\nnames: %v\n%s",
		s.nbConstraints, s.nbVariables, s.basic[1:], s.names, s.tableau)
}

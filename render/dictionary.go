// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/katalvlaran/exactlp/lp"
	"github.com/katalvlaran/exactlp/simplex"
)

var errEmptySnapshot = errors.New("render: snapshot has no tableau")

// equation is one line of a dictionary: basic = terms.
type equation struct {
	basic string
	terms string
}

// dictionary reads a snapshot as "z = row0[rhs] − Σ row0[j]·x_j" and, for each
// constraint row i with basic column b, "x_b = row_i[rhs] − Σ_{j≠b} row_i[j]·x_j".
// name maps column names to their printed form.
func dictionary(snap simplex.Snapshot, name func(string) string) (string, []equation, error) {
	if snap.Tableau == nil {
		return "", nil, errEmptySnapshot
	}
	rows := snap.Tableau.Rows()
	objective, err := terms(snap, 0, simplex.NoBasis, name)
	if err != nil {
		return "", nil, err
	}
	eqs := make([]equation, 0, rows-1)
	for i := 1; i < rows; i++ {
		b := simplex.NoBasis
		if i < len(snap.Basic) {
			b = snap.Basic[i]
		}
		t, err := terms(snap, i, b, name)
		if err != nil {
			return "", nil, err
		}
		eqs = append(eqs, equation{basic: name(snap.Name(b)), terms: t})
	}

	return objective, eqs, nil
}

// terms renders −row[j]·x_j for every non-zero j ≠ skip, then the constant.
func terms(snap simplex.Snapshot, i, skip int, name func(string) string) (string, error) {
	row, err := snap.Tableau.Row(i)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	last := len(row) - 1
	parts := make([]string, 0, len(row))
	for j := 0; j < last; j++ {
		if j == skip || row[j].Sign() == 0 {
			continue
		}
		lit := lp.Literal{Factor: new(big.Rat).Neg(row[j]), Variable: name(snap.Name(j))}
		parts = append(parts, lit.String())
	}
	if c := row[last]; c.Sign() != 0 || len(parts) == 0 {
		s := c.RatString()
		if c.Sign() > 0 {
			s = "+" + s
		}
		parts = append(parts, s)
	}

	return strings.Join(parts, " "), nil
}

func identity(s string) string { return s }

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/exactlp/matrix"
	"github.com/katalvlaran/exactlp/simplex"
)

// Text writes plain-text dictionaries.
type Text struct {
	out errWriter

	// Floats appends a float64 view of the raw tableau to every dictionary.
	Floats bool
}

var _ simplex.Observer = (*Text)(nil)

// NewText returns a Text observer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{out: errWriter{w: w}}
}

// Err returns the first write error.
func (t *Text) Err() error { return t.out.err }

// OnPhase implements simplex.Observer.
func (t *Text) OnPhase(phase simplex.Phase, snap simplex.Snapshot) {
	switch phase {
	case simplex.PhaseInitial:
		t.dictionary(snap)
	case simplex.PhaseFirst:
		t.out.printf("\n# %s\n\n", strings.ToUpper(phase.String()))
		t.dictionary(snap)
	case simplex.PhaseRestored:
		t.out.printf("Remove the variable and put back the objective function:\n")
		t.dictionary(snap)
	case simplex.PhaseSecond:
		t.out.printf("\n# %s\n\n", strings.ToUpper(phase.String()))
	}
}

// OnPivot implements simplex.Observer.
func (t *Text) OnPivot(p simplex.Pivot, snap simplex.Snapshot) {
	t.out.printf("Entering variable: %s\nLeaving variable: %s\n", p.Entering, p.Leaving)
	t.dictionary(snap)
}

func (t *Text) dictionary(snap simplex.Snapshot) {
	objective, eqs, err := dictionary(snap, identity)
	if err != nil {
		if t.out.err == nil {
			t.out.err = err
		}
		return
	}
	t.out.printf("MAXIMIZE\n%s\nSUBJECT TO\n", objective)
	for _, eq := range eqs {
		t.out.printf("%s = %s\n", eq.basic, eq.terms)
	}
	if t.Floats {
		t.out.printf("%v\n", mat.Formatted(matrix.Float64(snap.Tableau), mat.Squeeze()))
	}
	t.out.printf("\n")
}

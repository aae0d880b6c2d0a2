// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"

	"github.com/katalvlaran/exactlp/simplex"
)

// Latex writes every dictionary as an amsmath align* block.
// Begin and End wrap the output into a standalone document.
type Latex struct {
	out errWriter
}

var _ simplex.Observer = (*Latex)(nil)

// NewLatex returns a Latex observer writing to w.
func NewLatex(w io.Writer) *Latex {
	return &Latex{out: errWriter{w: w}}
}

// Err returns the first write error.
func (l *Latex) Err() error { return l.out.err }

// Begin writes the document preamble.
func (l *Latex) Begin() {
	l.out.printf("\\documentclass{article}\n\\usepackage{amsmath}\n\\begin{document}\n\n")
}

// End closes the document.
func (l *Latex) End() {
	l.out.printf("\\end{document}\n")
}

// OnPhase implements simplex.Observer.
func (l *Latex) OnPhase(phase simplex.Phase, snap simplex.Snapshot) {
	switch phase {
	case simplex.PhaseInitial:
		l.dictionary(snap)
	case simplex.PhaseFirst:
		l.out.printf("\\section*{First phase}\n\n")
		l.dictionary(snap)
	case simplex.PhaseRestored:
		l.out.printf("Remove the variable and put back the objective function:\n")
		l.dictionary(snap)
	case simplex.PhaseSecond:
		l.out.printf("\\section*{Second phase}\n\n")
	}
}

// OnPivot implements simplex.Observer.
func (l *Latex) OnPivot(p simplex.Pivot, snap simplex.Snapshot) {
	l.out.printf("Entering variable: $%s$\n\nLeaving variable: $%s$\n\n", escape(p.Entering), escape(p.Leaving))
	l.dictionary(snap)
}

func (l *Latex) dictionary(snap simplex.Snapshot) {
	objective, eqs, err := dictionary(snap, escape)
	if err != nil {
		if l.out.err == nil {
			l.out.err = err
		}
		return
	}
	l.out.printf("\\begin{align*}\n\\text{Maximize}\\\\\n&%s\\\\\n\\text{Subject to}\\\\\n", objective)
	for _, eq := range eqs {
		l.out.printf("%s &= %s\\\\\n", eq.basic, eq.terms)
	}
	l.out.printf("\\end{align*}\n\n")
}

// escape protects the underscores of variable names.
func escape(name string) string {
	return strings.ReplaceAll(name, "_", `\_`)
}

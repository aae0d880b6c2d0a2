// SPDX-License-Identifier: MIT

package render

import "github.com/katalvlaran/exactlp/simplex"

type multi []simplex.Observer

// Multi forwards every event to each non-nil observer, in order.
// It returns nil when no observer is left.
func Multi(observers ...simplex.Observer) simplex.Observer {
	var m multi
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	if len(m) == 0 {
		return nil
	}

	return m
}

func (m multi) OnPhase(phase simplex.Phase, snap simplex.Snapshot) {
	for _, o := range m {
		o.OnPhase(phase, snap)
	}
}

func (m multi) OnPivot(p simplex.Pivot, snap simplex.Snapshot) {
	for _, o := range m {
		o.OnPivot(p, snap)
	}
}

// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/katalvlaran/exactlp/matrix"
)

// Sentinel errors returned by the simplex engine.
var (
	// ErrMalformedTableau indicates a tableau that cannot start the algorithm:
	// ragged or too small, a starting basis that is not a unit matrix, or
	// colliding variable names.
	ErrMalformedTableau = errors.New("simplex: malformed tableau")

	// ErrInvalidPivot indicates a pivot outside the tableau or on a zero entry.
	ErrInvalidPivot = errors.New("simplex: invalid pivot")

	// ErrInvariant indicates an internal inconsistency (a bug, not bad input).
	ErrInvariant = errors.New("simplex: invariant violated")

	// ErrInfeasible is reported by Result.Err for an Infeasible result.
	ErrInfeasible = errors.New("simplex: problem is infeasible")

	// ErrUnbounded is reported by Result.Err for an Unbounded result.
	ErrUnbounded = errors.New("simplex: problem is unbounded")
)

// PivotError describes a rejected pivot position. It wraps ErrInvalidPivot.
type PivotError struct {
	Row, Column int
	Reason      string
}

func (e PivotError) Error() string {
	return fmt.Sprintf("simplex: invalid pivot (%d,%d): %s", e.Row, e.Column, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidPivot.
func (e PivotError) Unwrap() error { return ErrInvalidPivot }

// Reserved column names.
const (
	// Phase1Name names the auxiliary column of the first phase.
	Phase1Name = "_phase1_"

	// NoBasis marks row 0 in a basis slice: the objective row has no basic column.
	NoBasis = -1
)

// Status is the terminal state of a pivot loop or of a full solve.
type Status int

const (
	// Optimal means no reduced cost is negative.
	Optimal Status = iota
	// Infeasible means the first phase ended with a non-zero optimum.
	Infeasible
	// Unbounded means an entering column has no positive coefficient.
	Unbounded
	// Pending is returned by ChoosePivot when a pivot is available.
	// It never appears in a Result.
	Pending
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case Pending:
		return "pending"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Phase identifies the stage reported to an Observer.
type Phase int

const (
	// PhaseInitial is reported once with the tableau as built.
	PhaseInitial Phase = iota
	// PhaseFirst is reported after the auxiliary column has been inserted.
	PhaseFirst
	// PhaseRestored is reported after the auxiliary column has been removed
	// and the real objective re-expressed in the current basis.
	PhaseRestored
	// PhaseSecond is reported when the pivot loop on the real objective starts.
	PhaseSecond
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseFirst:
		return "first phase"
	case PhaseRestored:
		return "restored"
	case PhaseSecond:
		return "second phase"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Pivot describes one basis change.
type Pivot struct {
	Row, Column int
	Entering    string // name of the column entering the basis
	Leaving     string // name of the column previously basic in Row
}

// Snapshot is a deep copy of the engine state, safe to keep and mutate.
type Snapshot struct {
	// Tableau is a clone of the current tableau.
	Tableau matrix.Matrix
	// Basic[i] is the basic column of row i; Basic[0] is NoBasis.
	Basic []int
	// Names[j] is the name of column j (the RHS column has no name).
	Names []string
}

// Name returns the name of column j, or "" for the RHS column.
func (s Snapshot) Name(j int) string {
	if j < 0 || j >= len(s.Names) {
		return ""
	}

	return s.Names[j]
}

// Observer receives the intermediate states of Solve, for display purposes.
// Implementations must not retain assumptions about call counts.
type Observer interface {
	// OnPhase is called at each phase transition.
	OnPhase(phase Phase, snap Snapshot)
	// OnPivot is called after each pivot of the pivot loops.
	OnPivot(p Pivot, snap Snapshot)
}

// Result is the outcome of Solve.
type Result struct {
	Status Status
	// Value is row 0's last column once the second phase is optimal (nil otherwise).
	Value *big.Rat
	// Assignment maps every structural variable to its value (nil unless Optimal).
	// Non-basic variables are zero.
	Assignment map[string]*big.Rat
	// Pivots counts the pivots performed by both phases.
	Pivots int
}

// Err maps terminal states to ErrInfeasible / ErrUnbounded, nil when Optimal.
func (r *Result) Err() error {
	switch r.Status {
	case Infeasible:
		return ErrInfeasible
	case Unbounded:
		return ErrUnbounded
	default:
		return nil
	}
}

// Options configures the engine.
//
// Backend  – storage layout of the tableau (default matrix.DefaultBackend).
// Bland    – use Bland's anti-cycling rule instead of the largest coefficient.
// Observer – receives snapshots of every intermediate tableau (default none).
// Logger   – structured logger; phases at Info, pivots at Debug (default discards).
// Names    – names of the structural columns (default "x_<i>").
type Options struct {
	Backend  matrix.Backend
	Bland    bool
	Observer Observer
	Logger   *slog.Logger
	Names    []string
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithBackend selects the tableau storage layout.
func WithBackend(b matrix.Backend) Option {
	return func(o *Options) {
		o.Backend = b
	}
}

// WithBlandRule enables Bland's rule: the first column with a negative reduced
// cost enters, and ratio-test ties go to the lowest basic column. Results on
// non-degenerate tableaux are the same as with the default rule.
func WithBlandRule() Option {
	return func(o *Options) {
		o.Bland = true
	}
}

// WithObserver registers an Observer. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithLogger sets the structured logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithVariableNames names the structural columns, in column order.
// The count must match the number of structural columns.
func WithVariableNames(names ...string) Option {
	return func(o *Options) {
		o.Names = append([]string(nil), names...)
	}
}

// DefaultOptions returns the engine defaults:
//   - Backend:  matrix.DefaultBackend.
//   - Bland:    false (largest-coefficient rule).
//   - Observer: nil.
//   - Logger:   a logger discarding every record.
//   - Names:    nil ("x_0", "x_1", …).
func DefaultOptions() Options {
	return Options{
		Backend: matrix.DefaultBackend,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// SPDX-License-Identifier: MIT

package lp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/exactlp/simplex"
)

// Sentinel errors for model validation. They reach callers wrapped in *InputError.
var (
	// ErrNoObjective indicates that SetObjective was never called.
	ErrNoObjective = errors.New("lp: no objective function")

	// ErrObjectiveBounded indicates an objective carrying a left or right bound.
	ErrObjectiveBounded = errors.New("lp: objective function must not be bounded")

	// ErrEmptyExpression indicates an objective or constraint without literals.
	ErrEmptyExpression = errors.New("lp: expression has no literal")

	// ErrUnboundedConstraint indicates a constraint or bound with neither a left nor a right bound.
	ErrUnboundedConstraint = errors.New("lp: constraint has no bound")

	// ErrBoundOrder indicates a left bound greater than the right bound.
	ErrBoundOrder = errors.New("lp: left bound exceeds right bound")

	// ErrUndeclaredVariable indicates a literal naming a variable never declared.
	ErrUndeclaredVariable = errors.New("lp: undeclared variable")

	// ErrDuplicateVariable indicates a variable declared twice.
	ErrDuplicateVariable = errors.New("lp: variable declared twice")

	// ErrReservedName indicates an empty variable name or one starting with '_',
	// a prefix reserved for synthesized variables.
	ErrReservedName = errors.New("lp: reserved variable name")

	// ErrMalformedBound indicates a bound expression that is not a single
	// literal with factor 1.
	ErrMalformedBound = errors.New("lp: bound must be a single variable with factor 1")

	// ErrDuplicateBound indicates two bound expressions for the same variable.
	ErrDuplicateBound = errors.New("lp: variable bounded twice")
)

// Lifecycle and solve errors.
var (
	// ErrAlreadyNormalized is returned by a second call to Normalize.
	ErrAlreadyNormalized = errors.New("lp: program already normalized")

	// ErrNotNormalized is returned by Tableau when a constraint still has a left bound.
	ErrNotNormalized = errors.New("lp: program is not in normal form")

	// ErrComplementarity indicates that both parts of a split free variable are positive.
	ErrComplementarity = errors.New("lp: both parts of a free variable are positive")

	// ErrInfeasible is returned by Solve when no point satisfies the constraints.
	ErrInfeasible = simplex.ErrInfeasible

	// ErrUnbounded is returned by Solve when the objective improves without limit.
	ErrUnbounded = simplex.ErrUnbounded
)

// InputError reports an invalid model, with the source line of the offending
// expression (0 when unknown).
type InputError struct {
	Line int
	Err  error
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return e.Err.Error()
}

// Unwrap exposes the sentinel to errors.Is.
func (e *InputError) Unwrap() error { return e.Err }

// inputErrorf builds an *InputError wrapping sentinel with extra detail.
func inputErrorf(line int, sentinel error, format string, args ...any) error {
	if format == "" {
		return &InputError{Line: line, Err: sentinel}
	}

	return &InputError{Line: line, Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)}
}

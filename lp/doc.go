// Package lp models a general-form linear program and reduces it to the
// standard form solved by package simplex.
//
// A LinearProgram is populated by a parser (or by hand) through
// DeclareVariable, SetObjective, AddConstraint and AddBound, validated once by
// Check, rewritten in place by Normalize and solved by Solve.
//
// Normalization, in order:
//
//  1. NormalizeBounds: every bounded variable is reflected (InvertVariable)
//     and/or shifted (TranslateVariable) so that its range starts at 0; a
//     remaining upper bound becomes an explicit "v ≤ u" constraint.
//  2. NormalizeConstraints: every constraint becomes one or two one-sided
//     "expr ≤ b" rows (see Expression.NormalForm).
//  3. PullUnconstrainedVariables: every variable without bounds is replaced by
//     the difference of two non-negative variables "_v_pos" and "_v_neg".
//
// Each Variable records the transform applied to it, so Variable.ComputeValue
// maps a solved internal value back to the user's variable. Solve undoes the
// free-variable split (PushUnconstrainedVariables) before applying it.
//
// All arithmetic is exact (math/big.Rat). Expressions, literals and variables
// are copied on the way in, so callers may reuse their values.
//
// Errors:
//
//   - InputError (wrapping ErrNoObjective, ErrBoundOrder, …) for invalid models,
//     carrying the source line when known.
//   - ErrInfeasible / ErrUnbounded when the solve ends in those states.
//   - ErrAlreadyNormalized when Normalize is called twice.
package lp

// SPDX-License-Identifier: MIT

// Package render prints the intermediate tableaux of a simplex run.
//
// Text and Latex implement simplex.Observer. Each tableau is shown in
// dictionary form: the objective as a function of the non-basic variables,
// then one equation per basic variable.
//
//	MAXIMIZE
//	+5x -4y
//	SUBJECT TO
//	_slack_0 = -2x -3y +5
//
// Pivots are announced with their entering and leaving variables, and the
// first and second phases get their own headings. Observers cannot return
// errors: the first write error is kept and reported by Err.
package render

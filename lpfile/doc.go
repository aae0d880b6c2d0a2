// SPDX-License-Identifier: MIT

// Package lpfile reads and writes linear programs in a small line-oriented
// text format:
//
//	// comments run to the end of the line
//	MAXIMIZE
//	5x + 4y + 3z
//	SUBJECT TO
//	2x + 3y + z <= 5
//	0 <= x - y <= 3/4
//	x + 2.5z = 7
//	BOUNDS
//	x >= 0
//	-1 <= y <= 1
//	VARIABLES
//	x
//	y
//	z
//
// Sections may come in any order; the objective section (MINIMIZE or
// MAXIMIZE) holds exactly one expression. Coefficients are integers, decimals
// or fractions and are kept exact. Whitespace inside an expression is
// ignored. A variable listed in VARIABLES without a line in BOUNDS is free.
//
// Parse returns an *lp.LinearProgram that already passed Check. Malformed
// text yields a *SyntaxError, model errors the *lp.InputError of Check; both
// carry the offending line.
package lpfile

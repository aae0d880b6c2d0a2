// Package exactlp solves linear programs exactly: every coefficient, every
// intermediate tableau and every optimum is a rational number, never a float.
//
// 🚀 What is exactlp?
//
//	A pure-Go two-phase simplex solver that brings together:
//		• Modeling: variables, literals, bounded expressions, objective & constraints
//		• Normalization: bounds shifted to x ≥ 0, free variables split in two
//		• Engine: tableau simplex with a first phase, Dantzig or Bland pivoting
//		• Storage: dense or sparse rational matrices behind one interface
//		• I/O: a small text format, a benchmark generator, text & LaTeX traces
//
// ✨ Why choose exactlp?
//
//   - Exact – math/big rationals end to end, no tolerance tuning
//   - Deterministic – lowest-index tie-breaking, reproducible pivots
//   - Pure Go – no cgo, no solver binaries
//   - Observable – hook an Observer to see every dictionary
//
// Everything is organized under focused subpackages:
//
//	matrix/      Matrix interface over *big.Rat, Dense & Sparse backends
//	simplex/     tableau engine: pivots, phases, Result
//	lp/          LinearProgram model, Check, Normalize, Solve
//	lpfile/      text format reader and benchmark generator
//	render/      text and LaTeX observers
//	cmd/lpsolve  command-line front end
//
// Quick example:
//
//	MAXIMIZE
//	5x + 4y + 3z
//	SUBJECT TO
//	2x + 3y + z <= 5
//	4x + y + 2z <= 11
//	3x + 4y + 2z <= 8
//	BOUNDS
//	x >= 0
//	y >= 0
//	z >= 0
//	VARIABLES
//	x
//	y
//	z
//
//	$ lpsolve sample.lp
//	OPTIMAL
//	value = 13
//	x = 2
//	y = 0
//	z = 1
//
//	go install github.com/katalvlaran/exactlp/cmd/lpsolve@latest
package exactlp

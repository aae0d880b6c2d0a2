// SPDX-License-Identifier: MIT

// Command lpsolve reads a linear program in the lpfile text format and solves
// it exactly with the two-phase simplex method.
//
//	lpsolve [flags] [FILE|-]
//
// Without FILE (or with "-") the program is read from standard input. The
// outcome is printed on standard output:
//
//	OPTIMAL
//	value = 13
//	x = 2
//	...
//
// or a single INFEASIBLE / UNBOUNDED line. Exit status is 0 when the solver
// reached a verdict, 1 for unreadable or invalid programs and 2 for usage or
// configuration errors.
//
// Every flag can also come from a config file (--config) or from an
// environment variable: LPSOLVE_BACKEND, LPSOLVE_BLAND, LPSOLVE_VERBOSE,
// LPSOLVE_FLOATS, LPSOLVE_LATEX, LPSOLVE_LOG_LEVEL, LPSOLVE_LOG_FILE.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/exactlp/lp"
	"github.com/katalvlaran/exactlp/lpfile"
	"github.com/katalvlaran/exactlp/matrix"
	"github.com/katalvlaran/exactlp/render"
	"github.com/katalvlaran/exactlp/simplex"
)

const (
	exitOK = iota
	exitInput
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, rest, err := loadConfig(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "lpsolve: %v\n", err)
		return exitUsage
	}
	if len(rest) > 1 {
		fmt.Fprintf(stderr, "lpsolve: at most one input file, got %d\n", len(rest))
		return exitUsage
	}

	logger, closer := newLogger(cfg.Log, stderr)
	defer closer.Close()

	in, name := stdin, "<stdin>"
	if len(rest) == 1 && rest[0] != "-" {
		f, err := os.Open(rest[0])
		if err != nil {
			fmt.Fprintf(stderr, "lpsolve: %v\n", err)
			return exitInput
		}
		defer f.Close()
		in, name = f, rest[0]
	}

	p, err := lpfile.Parse(in)
	if err != nil {
		fmt.Fprintf(stderr, "lpsolve: %s: %v\n", name, err)
		return exitInput
	}
	logger.Info("program loaded", "input", name,
		"variables", len(p.Declared), "constraints", len(p.SubjectTo), "bounds", len(p.Bounds))

	backend, err := matrix.ParseBackend(cfg.Backend)
	if err != nil {
		fmt.Fprintf(stderr, "lpsolve: %v\n", err)
		return exitUsage
	}
	opts := []simplex.Option{simplex.WithBackend(backend), simplex.WithLogger(logger)}
	if cfg.Bland {
		opts = append(opts, simplex.WithBlandRule())
	}

	var (
		observers []simplex.Observer
		text      *render.Text
		latex     *render.Latex
	)
	if cfg.Verbose {
		text = render.NewText(stdout)
		text.Floats = cfg.Floats
		observers = append(observers, text)
	}
	if cfg.Latex != "" {
		f, err := os.Create(cfg.Latex)
		if err != nil {
			fmt.Fprintf(stderr, "lpsolve: %v\n", err)
			return exitInput
		}
		defer f.Close()
		latex = render.NewLatex(f)
		latex.Begin()
		observers = append(observers, latex)
	}
	opts = append(opts, simplex.WithObserver(render.Multi(observers...)))

	sol, err := p.Solve(opts...)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		fmt.Fprintln(stdout, "INFEASIBLE")
	case errors.Is(err, lp.ErrUnbounded):
		fmt.Fprintln(stdout, "UNBOUNDED")
	case err != nil:
		fmt.Fprintf(stderr, "lpsolve: %s: %v\n", name, err)
		return exitInput
	default:
		fmt.Fprintf(stdout, "OPTIMAL\nvalue = %s\n", sol.Value.RatString())
		for _, v := range sol.Order {
			fmt.Fprintf(stdout, "%s = %s\n", v, sol.Values[v].RatString())
		}
		logger.Info("solved", "value", sol.Value.RatString(), "pivots", sol.Pivots)
	}

	if text != nil && text.Err() != nil {
		logger.Warn("verbose output failed", "error", text.Err())
	}
	if latex != nil {
		latex.End()
		if err := latex.Err(); err != nil {
			logger.Warn("latex output failed", "file", cfg.Latex, "error", err)
		}
	}

	return exitOK
}

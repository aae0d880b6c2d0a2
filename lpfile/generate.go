// SPDX-License-Identifier: MIT

package lpfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrGeneratorSize is returned by Generate for fewer than one variable.
var ErrGeneratorSize = errors.New("lpfile: generator needs at least one variable")

// Generate writes a benchmark program over n variables x_0 … x_{n-1}:
//
//	maximize Σ x_i  subject to  x_i + x_{i+1} ≤ 3,  x_i ≥ 1.
//
// For n ≥ 2 the optimum is 3n/2 when n is even and (3n+1)/2 when n is odd;
// with n = 1 the program is unbounded.
func Generate(w io.Writer, n int) error {
	if n < 1 {
		return fmt.Errorf("Generate(%d): %w", n, ErrGeneratorSize)
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("x_%d", i)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, SectionMaximize)
	fmt.Fprintln(bw, strings.Join(names, " + "))
	fmt.Fprintf(bw, "\n%s\n", SectionSubjectTo)
	for i := 0; i+1 < n; i++ {
		fmt.Fprintf(bw, "%s + %s <= 3\n", names[i], names[i+1])
	}
	fmt.Fprintf(bw, "\n%s\n", SectionBounds)
	for _, name := range names {
		fmt.Fprintf(bw, "%s >= 1\n", name)
	}
	fmt.Fprintf(bw, "\n%s\n", SectionVariables)
	for _, name := range names {
		fmt.Fprintln(bw, name)
	}

	return bw.Flush()
}

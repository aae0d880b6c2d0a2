// SPDX-License-Identifier: MIT

package lpfile

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("lpfile: syntax error")

// SyntaxError reports malformed text at a 1-based line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lpfile: line %d: %s", e.Line, e.Msg)
}

// Unwrap exposes ErrSyntax to errors.Is.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

func syntaxErrorf(line int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// SPDX-License-Identifier: MIT

package lpfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/exactlp/lp"
)

// Section headers.
const (
	SectionVariables = "VARIABLES"
	SectionMinimize  = "MINIMIZE"
	SectionMaximize  = "MAXIMIZE"
	SectionSubjectTo = "SUBJECT TO"
	SectionBounds    = "BOUNDS"
)

const comment = "//"

// headers maps a header line, whitespace removed, to its section.
var headers = map[string]string{
	"VARIABLES": SectionVariables,
	"MINIMIZE":  SectionMinimize,
	"MAXIMIZE":  SectionMaximize,
	"SUBJECTTO": SectionSubjectTo,
	"BOUNDS":    SectionBounds,
}

var (
	identRe  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
	// number: integer or decimal, optionally over a second one.
	numberRe = regexp.MustCompile(`^[+-]?\d+(\.\d+)?(/\d+(\.\d+)?)?$`)
	// term: optional sign, optional coefficient, optional '*', optional variable.
	termRe   = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?(?:/\d+(?:\.\d+)?)?)?(\*?)([a-zA-Z][a-zA-Z0-9_]*)?`)
	compRe   = regexp.MustCompile(`<=|>=|=`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// line is a non-empty source line with comments and whitespace stripped.
type line struct {
	no      int
	section string
	text    string
}

// Parse reads a program from r and validates it with Check.
//
// VARIABLES lines are declared first, in file order, so the section may
// follow the expressions that use it.
func Parse(r io.Reader) (*lp.LinearProgram, error) {
	lines, err := scan(r)
	if err != nil {
		return nil, err
	}

	p := lp.New()
	for _, l := range lines {
		if l.section != SectionVariables {
			continue
		}
		if !identRe.MatchString(l.text) {
			return nil, syntaxErrorf(l.no, "%q is not a variable name", l.text)
		}
		if err = p.DeclareVariable(l.text); err != nil {
			var ie *lp.InputError
			if errors.As(err, &ie) {
				ie.Line = l.no
			}
			return nil, err
		}
	}

	objectiveSeen := false
	for _, l := range lines {
		switch l.section {
		case SectionVariables:
		case SectionMinimize, SectionMaximize:
			if objectiveSeen {
				return nil, syntaxErrorf(l.no, "only one objective function is allowed")
			}
			objectiveSeen = true
			if compRe.MatchString(l.text) {
				return nil, syntaxErrorf(l.no, "comparison operator not allowed in objective")
			}
			e, err := parseLinear(l.no, l.text)
			if err != nil {
				return nil, err
			}
			d := lp.Maximize
			if l.section == SectionMinimize {
				d = lp.Minimize
			}
			p.SetObjective(d, e)
		case SectionSubjectTo, SectionBounds:
			e, err := parseComparison(l.no, l.text)
			if err != nil {
				return nil, err
			}
			if l.section == SectionBounds {
				p.AddBound(e)
			} else {
				p.AddConstraint(e)
			}
		default:
			return nil, syntaxErrorf(l.no, "%q outside of any section", l.text)
		}
	}

	if err = p.Check(); err != nil {
		return nil, err
	}

	return p, nil
}

// scan splits r into tagged lines, dropping comments and blank lines.
func scan(r io.Reader) ([]line, error) {
	var (
		out     []line
		section string
		no      int
	)
	sc := bufio.NewScanner(r)
	// Generated objectives sit on a single line of unbounded length.
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for sc.Scan() {
		no++
		text, _, _ := strings.Cut(sc.Text(), comment)
		text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
		if text == "" {
			continue
		}
		if h, ok := headers[strings.ReplaceAll(text, " ", "")]; ok {
			section = h
			continue
		}
		out = append(out, line{no: no, section: section, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lpfile: read: %w", err)
	}

	return out, nil
}

// parseComparison reads "expr op b", "b op expr" or "a op expr op b" with
// op one of <=, >=, =. A chain uses the same inequality twice.
func parseComparison(no int, text string) (lp.Expression, error) {
	text = spaceRe.ReplaceAllString(text, "")
	ops := compRe.FindAllString(text, -1)
	parts := compRe.Split(text, -1)

	switch len(ops) {
	case 1:
		var (
			bound *big.Rat
			body  string
			err   error
			op    = ops[0]
		)
		switch {
		case numberRe.MatchString(parts[1]):
			bound, err = parseNumber(no, parts[1])
			body = parts[0]
		case numberRe.MatchString(parts[0]):
			bound, err = parseNumber(no, parts[0])
			body = parts[1]
			op = mirror(op)
		default:
			return lp.Expression{}, syntaxErrorf(no, "%q: one side must be a number", text)
		}
		if err != nil {
			return lp.Expression{}, err
		}
		e, err := parseLinear(no, body)
		if err != nil {
			return lp.Expression{}, err
		}
		switch op {
		case "<=":
			e.RightBound = bound
		case ">=":
			e.LeftBound = bound
		default:
			e.LeftBound, e.RightBound = bound, new(big.Rat).Set(bound)
		}
		return e, nil

	case 2:
		if ops[0] != ops[1] || ops[0] == "=" {
			return lp.Expression{}, syntaxErrorf(no, "%q: a chained comparison uses <= twice or >= twice", text)
		}
		lo, err := parseNumber(no, parts[0])
		if err != nil {
			return lp.Expression{}, err
		}
		hi, err := parseNumber(no, parts[2])
		if err != nil {
			return lp.Expression{}, err
		}
		if ops[0] == ">=" {
			lo, hi = hi, lo
		}
		e, err := parseLinear(no, parts[1])
		if err != nil {
			return lp.Expression{}, err
		}
		e.LeftBound, e.RightBound = lo, hi
		return e, nil

	default:
		return lp.Expression{}, syntaxErrorf(no, "%q is not a valid comparison", text)
	}
}

// mirror flips an operator when the bound is on the left side.
func mirror(op string) string {
	switch op {
	case "<=":
		return ">="
	case ">=":
		return "<="
	default:
		return op
	}
}

// parseLinear reads a sum of terms such as "3x - 1/2y + 2.5*z + 4".
// Numeric terms accumulate into the constant.
func parseLinear(no int, text string) (lp.Expression, error) {
	text = spaceRe.ReplaceAllString(text, "")
	e := lp.NewExpression(nil, nil)
	e.Line = no
	if text == "" {
		return e, syntaxErrorf(no, "empty expression")
	}

	for rest := text; rest != ""; {
		m := termRe.FindStringSubmatch(rest)
		sign, coef, star, name := m[1], m[2], m[3], m[4]
		switch {
		case m[0] == "" || (coef == "" && name == ""):
			return e, syntaxErrorf(no, "unexpected %q", rest)
		case star != "" && (coef == "" || name == ""):
			return e, syntaxErrorf(no, "misplaced '*' in %q", m[0])
		}
		rest = rest[len(m[0]):]

		f := big.NewRat(1, 1)
		if coef != "" {
			var err error
			if f, err = parseNumber(no, coef); err != nil {
				return e, err
			}
		}
		if sign == "-" {
			f.Neg(f)
		}
		if name == "" {
			e.Constant.Add(e.Constant, f)
			continue
		}
		e.Literals = append(e.Literals, lp.Literal{Factor: f, Variable: name})
	}

	return e, nil
}

// parseNumber converts "7", "-2.5" or "3/4" to an exact rational.
func parseNumber(no int, s string) (*big.Rat, error) {
	if !numberRe.MatchString(s) {
		return nil, syntaxErrorf(no, "%q is not a number", s)
	}
	num, den, isFrac := strings.Cut(s, "/")
	n, err := decimal.NewFromString(num)
	if err != nil {
		return nil, syntaxErrorf(no, "%q is not a number", s)
	}
	r := n.Rat()
	if !isFrac {
		return r, nil
	}
	d, err := decimal.NewFromString(den)
	if err != nil {
		return nil, syntaxErrorf(no, "%q is not a number", s)
	}
	if d.IsZero() {
		return nil, syntaxErrorf(no, "%q divides by zero", s)
	}

	return r.Quo(r, d.Rat()), nil
}

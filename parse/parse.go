// Package parse reads symbolic integer polynomials written as text,
// for example "floor(a^2 + 3*b, 2) - min(a, b)".
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"zappem.net/pub/math/symint/deduce"
	"zappem.net/pub/math/symint/terms"
)

// Poly is the polynomial type produced by the parser.
type Poly = terms.Polynomial[string, int64, uint8]

// Pair is an observed polynomial value, as read by Equation.
type Pair = deduce.Pair[string, int64, uint8]

// ErrSyntax is wrapped by every error caused by malformed text.
var ErrSyntax = errors.New("syntax error")

var (
	tok    = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9_]*|[0-9]+|[-+*/^=(),]|\s+)`)
	symbol = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
	number = regexp.MustCompile(`^[0-9]+$`)
)

var calls = map[string]func(a, b Poly) Poly{
	"floor": terms.Floor[string, int64, uint8],
	"ceil":  terms.Ceil[string, int64, uint8],
	"min":   terms.Min[string, int64, uint8],
	"max":   terms.Max[string, int64, uint8],
}

// ValidSymbol reports whether s can be used as an identifier.
func ValidSymbol(s string) bool {
	_, reserved := calls[s]
	return !reserved && symbol.MatchString(s)
}

type token struct {
	text string
	pos  int
}

// split tokenizes the input, dropping white space.
func split(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		loc := tok.FindStringIndex(s[i:])
		if loc == nil {
			return nil, errors.Wrapf(ErrSyntax, "at %d: unexpected %q", i, s[i:i+1])
		}
		if t := s[i : i+loc[1]]; strings.TrimSpace(t) != "" {
			toks = append(toks, token{text: t, pos: i})
		}
		i += loc[1]
	}
	return toks, nil
}

type parser struct {
	toks []token
	i    int
	end  int
}

func (p *parser) peek() string {
	if p.i == len(p.toks) {
		return ""
	}
	return p.toks[p.i].text
}

func (p *parser) pos() int {
	if p.i == len(p.toks) {
		return p.end
	}
	return p.toks[p.i].pos
}

func (p *parser) fail(want string) error {
	if p.i == len(p.toks) {
		return errors.Wrapf(ErrSyntax, "at %d: want %s, found end of input", p.end, want)
	}
	return errors.Wrapf(ErrSyntax, "at %d: want %s, found %q", p.pos(), want, p.peek())
}

func (p *parser) expect(t string) error {
	if p.peek() != t {
		return p.fail(strconv.Quote(t))
	}
	p.i++
	return nil
}

// sum parses terms separated by + and -.
func (p *parser) sum() (Poly, error) {
	x, err := p.product()
	if err != nil {
		return x, err
	}
	for {
		switch op := p.peek(); op {
		case "+", "-":
			p.i++
			y, err := p.product()
			if err != nil {
				return y, err
			}
			if op == "+" {
				x = x.Add(y)
			} else {
				x = x.Sub(y)
			}
		default:
			return x, nil
		}
	}
}

// product parses factors separated by * and exact /.
func (p *parser) product() (Poly, error) {
	x, err := p.unary()
	if err != nil {
		return x, err
	}
	for {
		switch op := p.peek(); op {
		case "*", "/":
			at := p.pos()
			p.i++
			y, err := p.unary()
			if err != nil {
				return y, err
			}
			if op == "*" {
				x = x.Mul(y)
				continue
			}
			if y.IsZero() {
				return Poly{}, errors.Wrapf(terms.ErrDivisionByZero, "at %d", at)
			}
			q, ok := x.CheckedDiv(y)
			if !ok {
				return Poly{}, errors.Wrapf(terms.ErrNotExactlyDivisible, "at %d: (%v)/(%v)", at, x, y)
			}
			x = q
		default:
			return x, nil
		}
	}
}

func (p *parser) unary() (Poly, error) {
	if p.peek() == "-" {
		p.i++
		x, err := p.unary()
		return x.Neg(), err
	}
	return p.power()
}

func (p *parser) power() (Poly, error) {
	x, err := p.atom()
	if err != nil || p.peek() != "^" {
		return x, err
	}
	p.i++
	t := p.peek()
	if !number.MatchString(t) {
		return Poly{}, p.fail("exponent")
	}
	n, err := strconv.ParseUint(t, 10, 8)
	if err != nil {
		return Poly{}, errors.Wrapf(ErrSyntax, "at %d: exponent %s out of range", p.pos(), t)
	}
	p.i++
	return x.Pow(uint(n)), nil
}

func (p *parser) atom() (Poly, error) {
	t := p.peek()
	switch {
	case t == "(":
		p.i++
		x, err := p.sum()
		if err != nil {
			return x, err
		}
		return x, p.expect(")")
	case number.MatchString(t):
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return Poly{}, errors.Wrapf(ErrSyntax, "at %d: number %s out of range", p.pos(), t)
		}
		p.i++
		return terms.Constant[string, int64, uint8](n), nil
	case symbol.MatchString(t):
		p.i++
		f, ok := calls[t]
		if !ok {
			return terms.Variable[string, int64, uint8](t), nil
		}
		if err := p.expect("("); err != nil {
			return Poly{}, err
		}
		a, err := p.sum()
		if err != nil {
			return a, err
		}
		if err := p.expect(","); err != nil {
			return Poly{}, err
		}
		b, err := p.sum()
		if err != nil {
			return b, err
		}
		return f(a, b), p.expect(")")
	}
	return Poly{}, p.fail("expression")
}

func parse(s string) (x Poly, err error) {
	defer func() {
		if r := recover(); r != nil {
			if r != terms.ErrPowerOverflow {
				panic(r)
			}
			x, err = Poly{}, errors.Wrapf(ErrSyntax, "%v", terms.ErrPowerOverflow)
		}
	}()
	toks, err := split(s)
	if err != nil {
		return Poly{}, err
	}
	p := &parser{toks: toks, end: len(s)}
	x, err = p.sum()
	if err != nil {
		return Poly{}, err
	}
	if p.i != len(p.toks) {
		return Poly{}, p.fail("end of input")
	}
	return x, nil
}

// Exp parses a single polynomial expression.
func Exp(s string) (Poly, error) {
	x, err := parse(s)
	return x, errors.WithMessagef(err, "parsing %q", s)
}

// constant parses an expression that must not use identifiers.
func constant(s string) (int64, error) {
	x, err := parse(s)
	if err != nil {
		return 0, err
	}
	v, ok := x.ConstantValue()
	if !ok {
		return 0, errors.Wrapf(ErrSyntax, "%v is not a number", x)
	}
	return v, nil
}

// Equation parses "expression = value", where value is a constant
// expression.
func Equation(s string) (Pair, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok || strings.Contains(rhs, "=") {
		return Pair{}, errors.Wrapf(ErrSyntax, "parsing %q: want a single =", s)
	}
	x, err := parse(lhs)
	if err != nil {
		return Pair{}, errors.WithMessagef(err, "parsing %q", s)
	}
	v, err := constant(rhs)
	if err != nil {
		return Pair{}, errors.WithMessagef(err, "parsing %q", s)
	}
	return Pair{Poly: x, Value: v}, nil
}

// Assignment parses "name = value" where name is a valid symbol and
// value a constant expression.
func Assignment(s string) (string, int64, error) {
	name, rhs, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || !ValidSymbol(name) {
		return "", 0, errors.Wrapf(ErrSyntax, "parsing %q: want name=value", s)
	}
	v, err := constant(rhs)
	if err != nil {
		return "", 0, errors.WithMessagef(err, "parsing %q", s)
	}
	return name, v, nil
}

package terms

import (
	"fmt"
	"strings"
)

// String displays a composite, for example "a" or "floor(a^2, b)".
func (c Composite[I, C, P]) String() string {
	if c.Kind == KindVariable {
		return fmt.Sprint(c.ID)
	}
	return fmt.Sprintf("%v(%v, %v)", c.Kind, c.Left, c.Right)
}

// String displays a factor as base^power.
func (f Factor[I, C, P]) String() string {
	if f.Power == 1 {
		return f.Composite.String()
	}
	return fmt.Sprintf("%v^%d", f.Composite, f.Power)
}

// String displays a monomial as a product, for example "-3*a^2*b".
func (m Monomial[I, C, P]) String() string {
	if len(m.Factors) == 0 {
		return fmt.Sprint(m.Coefficient)
	}
	x := make([]string, 0, len(m.Factors)+1)
	prefix := ""
	switch m.Coefficient {
	case 1:
	case -1:
		prefix = "-"
	default:
		x = append(x, fmt.Sprint(m.Coefficient))
	}
	for _, f := range m.Factors {
		x = append(x, f.String())
	}
	return prefix + strings.Join(x, "*")
}

// String displays a polynomial, for example "a^2 - a*b + 12".
func (p Polynomial[I, C, P]) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, m := range p.Monomials {
		switch {
		case i == 0:
			b.WriteString(m.String())
		case m.Coefficient < 0:
			b.WriteString(" - ")
			b.WriteString(m.Neg().String())
		default:
			b.WriteString(" + ")
			b.WriteString(m.String())
		}
	}
	return b.String()
}

// ToCode renders a composite as code. The render function formats
// identifiers.
func (c Composite[I, C, P]) ToCode(render func(I) string) string {
	if c.Kind == KindVariable {
		return render(c.ID)
	}
	return fmt.Sprintf("%v(%s, %s)", c.Kind, c.Left.ToCode(render), c.Right.ToCode(render))
}

// ToCode renders a monomial as an explicit product in which every
// power is expanded into repeated multiplication.
func (m Monomial[I, C, P]) ToCode(render func(I) string) string {
	if len(m.Factors) == 0 {
		return fmt.Sprint(m.Coefficient)
	}
	var x []string
	prefix := ""
	switch m.Coefficient {
	case 1:
	case -1:
		prefix = "-"
	default:
		x = append(x, fmt.Sprint(m.Coefficient))
	}
	for _, f := range m.Factors {
		s := f.Composite.ToCode(render)
		for k := f.Power; k > 0; k-- {
			x = append(x, s)
		}
	}
	return prefix + strings.Join(x, " * ")
}

// ToCode renders a polynomial as code with no reliance on operator
// precedence beyond products binding tighter than sums.
func (p Polynomial[I, C, P]) ToCode(render func(I) string) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, m := range p.Monomials {
		switch {
		case i == 0:
			b.WriteString(m.ToCode(render))
		case m.Coefficient < 0:
			b.WriteString(" - ")
			b.WriteString(m.Neg().ToCode(render))
		default:
			b.WriteString(" + ")
			b.WriteString(m.ToCode(render))
		}
	}
	return b.String()
}

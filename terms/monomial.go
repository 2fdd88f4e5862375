package terms

import (
	"cmp"
	"slices"

	"zappem.net/pub/math/symint/numeric"
)

// Factor is a composite raised to a non-zero power.
type Factor[I numeric.Identifier, C numeric.Coefficient, P numeric.Power] struct {
	Composite Composite[I, C, P]
	Power     P
}

// Monomial is a product of a coefficient and a set of factors,
// C * a_1^p_1 * ... * a_n^p_n. Factors are kept in ascending composite
// order with no repeated composite. The factor slice may be shared
// between monomials and is never modified in place.
type Monomial[I numeric.Identifier, C numeric.Coefficient, P numeric.Power] struct {
	Coefficient C
	Factors     []Factor[I, C, P]
}

// IsConstant indicates that m does not depend on any symbol.
func (m Monomial[I, C, P]) IsConstant() bool {
	return len(m.Factors) == 0
}

// UpToCoefficient reports whether m and o have the same factors,
// ignoring their coefficients.
func (m Monomial[I, C, P]) UpToCoefficient(o Monomial[I, C, P]) bool {
	if len(m.Factors) != len(o.Factors) {
		return false
	}
	for i, f := range m.Factors {
		g := o.Factors[i]
		if f.Power != g.Power || !f.Composite.Equal(g.Composite) {
			return false
		}
	}
	return true
}

// Compare totally orders monomials. At the first position where the
// factor lists differ, the monomial holding the smaller composite
// ranks higher, so a > b and a*b > b^2. Equal composites are ranked
// by power, a strict prefix ranks lower, and monomials of the same
// shape are ranked by coefficient. Constants rank below all symbolic
// monomials.
func (m Monomial[I, C, P]) Compare(o Monomial[I, C, P]) int {
	n := min(len(m.Factors), len(o.Factors))
	for i := 0; i < n; i++ {
		f, g := m.Factors[i], o.Factors[i]
		if c := f.Composite.Compare(g.Composite); c != 0 {
			return -c
		}
		if f.Power != g.Power {
			return cmp.Compare(f.Power, g.Power)
		}
	}
	if len(m.Factors) != len(o.Factors) {
		return cmp.Compare(len(m.Factors), len(o.Factors))
	}
	return cmp.Compare(m.Coefficient, o.Coefficient)
}

// Equal reports whether m and o have equal coefficients and factors.
func (m Monomial[I, C, P]) Equal(o Monomial[I, C, P]) bool {
	return m.Coefficient == o.Coefficient && m.UpToCoefficient(o)
}

// Eval computes the value of m, stopping at the first factor that
// cannot be evaluated.
func (m Monomial[I, C, P]) Eval(values Values[I, C]) (C, error) {
	v := m.Coefficient
	for _, f := range m.Factors {
		x, err := f.Composite.Eval(values)
		if err != nil {
			return 0, err
		}
		v *= numeric.Pow(x, f.Power)
	}
	return v, nil
}

// Substitute partially evaluates m with the known values.
func (m Monomial[I, C, P]) Substitute(values Values[I, C]) (Polynomial[I, C, P], error) {
	r := Constant[I, C, P](m.Coefficient)
	for _, f := range m.Factors {
		x, err := f.Composite.Substitute(values)
		if err != nil {
			return Polynomial[I, C, P]{}, err
		}
		r = r.Mul(x.Pow(uint(f.Power)))
	}
	return r, nil
}

// Neg returns -m.
func (m Monomial[I, C, P]) Neg() Monomial[I, C, P] {
	return Monomial[I, C, P]{Coefficient: -m.Coefficient, Factors: m.Factors}
}

// MulC returns m scaled by c.
func (m Monomial[I, C, P]) MulC(c C) Monomial[I, C, P] {
	if c == 0 {
		return Monomial[I, C, P]{}
	}
	return Monomial[I, C, P]{Coefficient: m.Coefficient * c, Factors: m.Factors}
}

// Mul returns the product m*o. The factor lists are merged, summing
// the powers of shared composites.
func (m Monomial[I, C, P]) Mul(o Monomial[I, C, P]) Monomial[I, C, P] {
	c := m.Coefficient * o.Coefficient
	if c == 0 {
		return Monomial[I, C, P]{}
	}
	fs := make([]Factor[I, C, P], 0, len(m.Factors)+len(o.Factors))
	i, j := 0, 0
	for i < len(m.Factors) && j < len(o.Factors) {
		f, g := m.Factors[i], o.Factors[j]
		switch n := f.Composite.Compare(g.Composite); {
		case n < 0:
			fs = append(fs, f)
			i++
		case n > 0:
			fs = append(fs, g)
			j++
		default:
			fs = append(fs, Factor[I, C, P]{Composite: f.Composite, Power: addPowers(f.Power, g.Power)})
			i++
			j++
		}
	}
	fs = append(fs, m.Factors[i:]...)
	fs = append(fs, o.Factors[j:]...)
	if len(fs) == 0 {
		fs = nil
	}
	return Monomial[I, C, P]{Coefficient: c, Factors: fs}
}

// CheckedDiv returns m/o when the division is exact: the coefficient
// divides without remainder and every factor of o appears in m with at
// least the same power. Otherwise the boolean is false.
func (m Monomial[I, C, P]) CheckedDiv(o Monomial[I, C, P]) (Monomial[I, C, P], bool) {
	q, r, ok := numeric.DivRem(m.Coefficient, o.Coefficient)
	if !ok || r != 0 {
		return Monomial[I, C, P]{}, false
	}
	var fs []Factor[I, C, P]
	j := 0
	for _, f := range m.Factors {
		if j < len(o.Factors) {
			g := o.Factors[j]
			n := f.Composite.Compare(g.Composite)
			if n > 0 {
				// g is absent from m.
				return Monomial[I, C, P]{}, false
			}
			if n == 0 {
				if f.Power < g.Power {
					return Monomial[I, C, P]{}, false
				}
				if p := f.Power - g.Power; p != 0 {
					fs = append(fs, Factor[I, C, P]{Composite: f.Composite, Power: p})
				}
				j++
				continue
			}
		}
		fs = append(fs, f)
	}
	if j < len(o.Factors) {
		return Monomial[I, C, P]{}, false
	}
	if q == 0 {
		return Monomial[I, C, P]{}, true
	}
	return Monomial[I, C, P]{Coefficient: q, Factors: fs}, true
}

// addPowers returns p+q and panics with ErrPowerOverflow when the sum
// does not fit in P.
func addPowers[P numeric.Power](p, q P) P {
	s := p + q
	if s < p {
		panic(ErrPowerOverflow)
	}
	return s
}

// Add returns m+o. Monomials of the same shape combine into at most
// one term; others give a two term polynomial.
func (m Monomial[I, C, P]) Add(o Monomial[I, C, P]) Polynomial[I, C, P] {
	return FromMonomials(m, o)
}

// Sub returns m-o.
func (m Monomial[I, C, P]) Sub(o Monomial[I, C, P]) Polynomial[I, C, P] {
	return FromMonomials(m, o.Neg())
}

// Identifiers returns the sorted distinct identifiers used by m.
func (m Monomial[I, C, P]) Identifiers() []I {
	set := make(map[I]struct{})
	m.identifiers(set)
	return sortedKeys(set)
}

func (m Monomial[I, C, P]) identifiers(set map[I]struct{}) {
	for _, f := range m.Factors {
		f.Composite.identifiers(set)
	}
}

// normalized returns m with its factors sorted, repeated composites
// merged and zero powers dropped.
func (m Monomial[I, C, P]) normalized() Monomial[I, C, P] {
	if m.Coefficient == 0 {
		return Monomial[I, C, P]{}
	}
	sorted := true
	for i, f := range m.Factors {
		if f.Power == 0 || (i > 0 && m.Factors[i-1].Composite.Compare(f.Composite) >= 0) {
			sorted = false
			break
		}
	}
	if sorted {
		return m
	}
	fs := slices.Clone(m.Factors)
	slices.SortStableFunc(fs, func(a, b Factor[I, C, P]) int {
		return a.Composite.Compare(b.Composite)
	})
	var out []Factor[I, C, P]
	for _, f := range fs {
		if n := len(out); n > 0 && out[n-1].Composite.Equal(f.Composite) {
			out[n-1].Power = addPowers(out[n-1].Power, f.Power)
			continue
		}
		out = append(out, f)
	}
	var kept []Factor[I, C, P]
	for _, f := range out {
		if f.Power != 0 {
			kept = append(kept, f)
		}
	}
	return Monomial[I, C, P]{Coefficient: m.Coefficient, Factors: kept}
}

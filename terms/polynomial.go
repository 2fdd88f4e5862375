// Package terms implements symbolic integer polynomials: sums of
// monomials whose factors are identifiers or the floor, ceil, min and
// max of two polynomials.
//
// Every Polynomial is kept in a canonical form: monomials sorted in
// descending Monomial order, no two monomials of the same shape and no
// zero coefficients. The empty polynomial is 0. Operations never
// modify their receivers or arguments, so polynomials (and the
// operands of composites) may be freely shared.
package terms

import (
	"slices"

	"golang.org/x/exp/maps"

	"zappem.net/pub/math/symint/numeric"
)

// Polynomial is a canonical sum of monomials.
type Polynomial[I numeric.Identifier, C numeric.Coefficient, P numeric.Power] struct {
	Monomials []Monomial[I, C, P]
}

// Variable returns the polynomial consisting of the identifier id.
func Variable[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](id I) Polynomial[I, C, P] {
	return single(Composite[I, C, P]{Kind: KindVariable, ID: id})
}

// Constant returns the constant polynomial c.
func Constant[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](c C) Polynomial[I, C, P] {
	if c == 0 {
		return Polynomial[I, C, P]{}
	}
	return Polynomial[I, C, P]{Monomials: []Monomial[I, C, P]{{Coefficient: c}}}
}

// FromMonomials builds the canonical sum of the supplied monomials.
func FromMonomials[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](ms ...Monomial[I, C, P]) Polynomial[I, C, P] {
	owned := make([]Monomial[I, C, P], 0, len(ms))
	for _, m := range ms {
		owned = append(owned, m.normalized())
	}
	return collect(owned)
}

// collect sorts ms, which the caller gives up, and combines monomials
// of the same shape.
func collect[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](ms []Monomial[I, C, P]) Polynomial[I, C, P] {
	slices.SortFunc(ms, func(a, b Monomial[I, C, P]) int {
		return b.Compare(a)
	})
	var out []Monomial[I, C, P]
	for _, m := range ms {
		if n := len(out); n > 0 && out[n-1].UpToCoefficient(m) {
			out[n-1].Coefficient += m.Coefficient
			continue
		}
		out = append(out, m)
	}
	kept := out[:0]
	for _, m := range out {
		if m.Coefficient != 0 {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return Polynomial[I, C, P]{}
	}
	return Polynomial[I, C, P]{Monomials: kept}
}

// IsZero indicates that p is the zero polynomial.
func (p Polynomial[I, C, P]) IsZero() bool {
	return len(p.Monomials) == 0
}

// IsConstant indicates that p does not depend on any symbol.
func (p Polynomial[I, C, P]) IsConstant() bool {
	return len(p.Monomials) == 0 || (len(p.Monomials) == 1 && p.Monomials[0].IsConstant())
}

// ConstantValue returns the value of a constant polynomial. The
// boolean is false when p depends on a symbol.
func (p Polynomial[I, C, P]) ConstantValue() (C, bool) {
	switch {
	case len(p.Monomials) == 0:
		return 0, true
	case p.IsConstant():
		return p.Monomials[0].Coefficient, true
	}
	return 0, false
}

// Leading returns the highest ranked monomial of p. The boolean is
// false for the zero polynomial.
func (p Polynomial[I, C, P]) Leading() (Monomial[I, C, P], bool) {
	if p.IsZero() {
		return Monomial[I, C, P]{}, false
	}
	return p.Monomials[0], true
}

// Compare orders polynomials by comparing their monomials in order;
// when one is a prefix of the other the longer ranks higher.
func (p Polynomial[I, C, P]) Compare(q Polynomial[I, C, P]) int {
	n := min(len(p.Monomials), len(q.Monomials))
	for i := 0; i < n; i++ {
		if c := p.Monomials[i].Compare(q.Monomials[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.Monomials) < len(q.Monomials):
		return -1
	case len(p.Monomials) > len(q.Monomials):
		return 1
	}
	return 0
}

// Equal reports whether p and q are structurally identical.
func (p Polynomial[I, C, P]) Equal(q Polynomial[I, C, P]) bool {
	if len(p.Monomials) != len(q.Monomials) {
		return false
	}
	for i, m := range p.Monomials {
		if !m.Equal(q.Monomials[i]) {
			return false
		}
	}
	return true
}

// Add returns p+q, merging the two sorted monomial lists.
func (p Polynomial[I, C, P]) Add(q Polynomial[I, C, P]) Polynomial[I, C, P] {
	ms := make([]Monomial[I, C, P], 0, len(p.Monomials)+len(q.Monomials))
	i, j := 0, 0
	for i < len(p.Monomials) && j < len(q.Monomials) {
		a, b := p.Monomials[i], q.Monomials[j]
		if a.UpToCoefficient(b) {
			if c := a.Coefficient + b.Coefficient; c != 0 {
				ms = append(ms, Monomial[I, C, P]{Coefficient: c, Factors: a.Factors})
			}
			i++
			j++
			continue
		}
		if a.Compare(b) > 0 {
			ms = append(ms, a)
			i++
		} else {
			ms = append(ms, b)
			j++
		}
	}
	ms = append(ms, p.Monomials[i:]...)
	ms = append(ms, q.Monomials[j:]...)
	if len(ms) == 0 {
		return Polynomial[I, C, P]{}
	}
	return Polynomial[I, C, P]{Monomials: ms}
}

// Neg returns -p.
func (p Polynomial[I, C, P]) Neg() Polynomial[I, C, P] {
	if p.IsZero() {
		return p
	}
	ms := make([]Monomial[I, C, P], len(p.Monomials))
	for i, m := range p.Monomials {
		ms[i] = m.Neg()
	}
	return Polynomial[I, C, P]{Monomials: ms}
}

// Sub returns p-q.
func (p Polynomial[I, C, P]) Sub(q Polynomial[I, C, P]) Polynomial[I, C, P] {
	return p.Add(q.Neg())
}

// Mul returns the product p*q.
func (p Polynomial[I, C, P]) Mul(q Polynomial[I, C, P]) Polynomial[I, C, P] {
	if p.IsZero() || q.IsZero() {
		return Polynomial[I, C, P]{}
	}
	ms := make([]Monomial[I, C, P], 0, len(p.Monomials)*len(q.Monomials))
	for _, a := range p.Monomials {
		for _, b := range q.Monomials {
			ms = append(ms, a.Mul(b))
		}
	}
	return collect(ms)
}

// MulMonomial returns p*m.
func (p Polynomial[I, C, P]) MulMonomial(m Monomial[I, C, P]) Polynomial[I, C, P] {
	ms := make([]Monomial[I, C, P], 0, len(p.Monomials))
	for _, a := range p.Monomials {
		ms = append(ms, a.Mul(m))
	}
	return collect(ms)
}

// Pow returns p raised to the power n.
func (p Polynomial[I, C, P]) Pow(n uint) Polynomial[I, C, P] {
	r := Constant[I, C, P](1)
	for x := p; n > 0; n >>= 1 {
		if n&1 == 1 {
			r = r.Mul(x)
		}
		if n > 1 {
			x = x.Mul(x)
		}
	}
	return r
}

// AddC returns p+c.
func (p Polynomial[I, C, P]) AddC(c C) Polynomial[I, C, P] {
	return p.Add(Constant[I, C, P](c))
}

// SubC returns p-c.
func (p Polynomial[I, C, P]) SubC(c C) Polynomial[I, C, P] {
	return p.Add(Constant[I, C, P](-c))
}

// MulC returns p scaled by c.
func (p Polynomial[I, C, P]) MulC(c C) Polynomial[I, C, P] {
	if c == 0 || p.IsZero() {
		return Polynomial[I, C, P]{}
	}
	ms := make([]Monomial[I, C, P], len(p.Monomials))
	for i, m := range p.Monomials {
		ms[i] = m.MulC(c)
	}
	// Shapes are distinct, so scaling keeps the order.
	return Polynomial[I, C, P]{Monomials: ms}
}

// CheckedDivC returns p/c when every coefficient of p is a multiple
// of c.
func (p Polynomial[I, C, P]) CheckedDivC(c C) (Polynomial[I, C, P], bool) {
	if c == 0 {
		return Polynomial[I, C, P]{}, false
	}
	if p.IsZero() {
		return p, true
	}
	ms := make([]Monomial[I, C, P], len(p.Monomials))
	for i, m := range p.Monomials {
		q, r, _ := numeric.DivRem(m.Coefficient, c)
		if r != 0 {
			return Polynomial[I, C, P]{}, false
		}
		ms[i] = Monomial[I, C, P]{Coefficient: q, Factors: m.Factors}
	}
	return Polynomial[I, C, P]{Monomials: ms}, true
}

// MustDivC returns p/c and panics unless every coefficient of p is a
// multiple of c.
func (p Polynomial[I, C, P]) MustDivC(c C) Polynomial[I, C, P] {
	if c == 0 {
		panic(ErrDivisionByZero)
	}
	q, ok := p.CheckedDivC(c)
	if !ok {
		panic(ErrNotExactlyDivisible)
	}
	return q
}

// Eval sums the values of the monomials of p in order, returning the
// first failure.
func (p Polynomial[I, C, P]) Eval(values Values[I, C]) (C, error) {
	var v C
	for _, m := range p.Monomials {
		x, err := m.Eval(values)
		if err != nil {
			return 0, err
		}
		v += x
	}
	return v, nil
}

// Substitute partially evaluates p: identifiers known to values are
// replaced by their values and the result is re-folded. Identifiers
// values does not know remain symbolic.
func (p Polynomial[I, C, P]) Substitute(values Values[I, C]) (Polynomial[I, C, P], error) {
	var r Polynomial[I, C, P]
	for _, m := range p.Monomials {
		x, err := m.Substitute(values)
		if err != nil {
			return Polynomial[I, C, P]{}, err
		}
		r = r.Add(x)
	}
	return r, nil
}

// Identifiers returns the sorted distinct identifiers used anywhere in
// p, including inside composite operands.
func (p Polynomial[I, C, P]) Identifiers() []I {
	set := make(map[I]struct{})
	p.identifiers(set)
	return sortedKeys(set)
}

func (p Polynomial[I, C, P]) identifiers(set map[I]struct{}) {
	for _, m := range p.Monomials {
		m.identifiers(set)
	}
}

func sortedKeys[I numeric.Identifier](set map[I]struct{}) []I {
	ids := maps.Keys(set)
	slices.Sort(ids)
	return ids
}

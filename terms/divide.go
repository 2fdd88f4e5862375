package terms

// DivRem performs long division of p by d. It returns the quotient
// and remainder such that quo*d + rem == p. The leading term of the
// working remainder is divided by the leading term of d when that
// division is exact; otherwise it is moved to the final remainder.
func (p Polynomial[I, C, P]) DivRem(d Polynomial[I, C, P]) (quo, rem Polynomial[I, C, P], err error) {
	lead, ok := d.Leading()
	if !ok {
		return quo, rem, ErrDivisionByZero
	}
	var qs, rs []Monomial[I, C, P]
	work := p
	for !work.IsZero() {
		head := work.Monomials[0]
		t, ok := head.CheckedDiv(lead)
		if !ok {
			rs = append(rs, head)
			work = Polynomial[I, C, P]{Monomials: work.Monomials[1:]}
			continue
		}
		qs = append(qs, t)
		work = work.Sub(d.MulMonomial(t))
	}
	return collect(qs), collect(rs), nil
}

// CheckedDiv returns p/d when d divides p exactly. The boolean is
// false when there is a remainder or d is zero.
func (p Polynomial[I, C, P]) CheckedDiv(d Polynomial[I, C, P]) (Polynomial[I, C, P], bool) {
	q, r, err := p.DivRem(d)
	if err != nil || !r.IsZero() {
		return Polynomial[I, C, P]{}, false
	}
	return q, true
}

// MustDiv returns p/d and panics unless d divides p exactly. It is for
// callers that have already established exactness; CheckedDiv is the
// probing form.
func (p Polynomial[I, C, P]) MustDiv(d Polynomial[I, C, P]) Polynomial[I, C, P] {
	q, r, err := p.DivRem(d)
	if err != nil {
		panic(err)
	}
	if !r.IsZero() {
		panic(ErrNotExactlyDivisible)
	}
	return q
}

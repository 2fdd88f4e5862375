package terms

// Replace returns c with every occurrence of the identifier id
// replaced by q. Binary composites are rebuilt with the folding
// constructors.
func (c Composite[I, C, P]) Replace(id I, q Polynomial[I, C, P]) Polynomial[I, C, P] {
	if c.Kind == KindVariable {
		if c.ID == id {
			return q
		}
		return single(c)
	}
	l, r := c.Left.Replace(id, q), c.Right.Replace(id, q)
	if l.Equal(*c.Left) && r.Equal(*c.Right) {
		return single(c)
	}
	switch c.Kind {
	case KindFloor:
		return Floor(l, r)
	case KindCeil:
		return Ceil(l, r)
	case KindMin:
		return Min(l, r)
	case KindMax:
		return Max(l, r)
	}
	panic("terms: invalid composite kind " + c.Kind.String())
}

// Replace returns m with the identifier id replaced by q.
func (m Monomial[I, C, P]) Replace(id I, q Polynomial[I, C, P]) Polynomial[I, C, P] {
	r := Constant[I, C, P](m.Coefficient)
	for _, f := range m.Factors {
		r = r.Mul(f.Composite.Replace(id, q).Pow(uint(f.Power)))
	}
	return r
}

// Replace returns p with every occurrence of the identifier id, also
// inside composite operands, replaced by the polynomial q.
func (p Polynomial[I, C, P]) Replace(id I, q Polynomial[I, C, P]) Polynomial[I, C, P] {
	var r Polynomial[I, C, P]
	for _, m := range p.Monomials {
		r = r.Add(m.Replace(id, q))
	}
	return r
}

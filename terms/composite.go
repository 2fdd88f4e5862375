package terms

import (
	"cmp"

	"zappem.net/pub/math/symint/numeric"
)

// Kind identifies the variant of a Composite. The numerical order of
// the kinds is the rank used when comparing composites of different
// kinds.
type Kind uint8

const (
	KindVariable Kind = iota
	KindFloor
	KindCeil
	KindMin
	KindMax
)

var kindNames = [...]string{"variable", "floor", "ceil", "min", "max"}

// String returns the function name of a binary kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "<ERROR>"
}

// Composite is a single symbolic factor: either a bare identifier or
// one of floor, ceil, min or max of two polynomials. The operands are
// shared between every copy of a composite and must never be
// modified.
type Composite[I numeric.Identifier, C numeric.Coefficient, P numeric.Power] struct {
	Kind Kind
	// ID names the variable when Kind is KindVariable.
	ID I
	// Left and Right are the operands of the binary kinds.
	Left, Right *Polynomial[I, C, P]
}

// IsVariable indicates that c is a bare identifier.
func (c Composite[I, C, P]) IsVariable() bool {
	return c.Kind == KindVariable
}

// Compare orders composites first by kind, then by identifier for
// variables, or by (left, right) polynomial order for binary kinds.
func (c Composite[I, C, P]) Compare(o Composite[I, C, P]) int {
	if c.Kind != o.Kind {
		return cmp.Compare(c.Kind, o.Kind)
	}
	if c.Kind == KindVariable {
		return cmp.Compare(c.ID, o.ID)
	}
	if c.Left != o.Left {
		if n := c.Left.Compare(*o.Left); n != 0 {
			return n
		}
	}
	if c.Right == o.Right {
		return 0
	}
	return c.Right.Compare(*o.Right)
}

// Equal reports whether c and o are structurally identical.
func (c Composite[I, C, P]) Equal(o Composite[I, C, P]) bool {
	return c.Compare(o) == 0
}

// Eval computes the value of the composite. Operands are evaluated
// left first, and the first failure is returned.
func (c Composite[I, C, P]) Eval(values Values[I, C]) (C, error) {
	if c.Kind == KindVariable {
		v, ok := values.Lookup(c.ID)
		if !ok {
			return 0, &MissingIdentifierError[I]{ID: c.ID}
		}
		return v, nil
	}
	l, err := c.Left.Eval(values)
	if err != nil {
		return 0, err
	}
	r, err := c.Right.Eval(values)
	if err != nil {
		return 0, err
	}
	switch c.Kind {
	case KindFloor:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return numeric.FloorDiv(l, r), nil
	case KindCeil:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return numeric.CeilDiv(l, r), nil
	case KindMin:
		return numeric.Min(l, r), nil
	case KindMax:
		return numeric.Max(l, r), nil
	}
	panic("terms: invalid composite kind " + c.Kind.String())
}

// Substitute replaces the known identifiers inside c and returns the
// result as a polynomial. Binary composites are rebuilt with the
// folding constructors, so a composite whose operands become constant
// collapses to a number.
func (c Composite[I, C, P]) Substitute(values Values[I, C]) (Polynomial[I, C, P], error) {
	if c.Kind == KindVariable {
		if v, ok := values.Lookup(c.ID); ok {
			return Constant[I, C, P](v), nil
		}
		return single(c), nil
	}
	l, err := c.Left.Substitute(values)
	if err != nil {
		return Polynomial[I, C, P]{}, err
	}
	r, err := c.Right.Substitute(values)
	if err != nil {
		return Polynomial[I, C, P]{}, err
	}
	if l.Equal(*c.Left) && r.Equal(*c.Right) {
		// Nothing changed: keep sharing the operands.
		return single(c), nil
	}
	switch c.Kind {
	case KindFloor, KindCeil:
		if r.IsZero() {
			return Polynomial[I, C, P]{}, ErrDivisionByZero
		}
		if c.Kind == KindFloor {
			return Floor(l, r), nil
		}
		return Ceil(l, r), nil
	case KindMin:
		return Min(l, r), nil
	case KindMax:
		return Max(l, r), nil
	}
	panic("terms: invalid composite kind " + c.Kind.String())
}

// identifiers adds every identifier used by c to set.
func (c Composite[I, C, P]) identifiers(set map[I]struct{}) {
	if c.Kind == KindVariable {
		set[c.ID] = struct{}{}
		return
	}
	c.Left.identifiers(set)
	c.Right.identifiers(set)
}

// single wraps a composite as the polynomial 1*c^1.
func single[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](c Composite[I, C, P]) Polynomial[I, C, P] {
	return Polynomial[I, C, P]{
		Monomials: []Monomial[I, C, P]{{
			Coefficient: 1,
			Factors:     []Factor[I, C, P]{{Composite: c, Power: 1}},
		}},
	}
}

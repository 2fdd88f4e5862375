package terms

import "zappem.net/pub/math/symint/numeric"

// Floor returns floor(a/b). Constant operands fold to a number and an
// exact polynomial division folds to its quotient; otherwise the
// result is a single floor composite. A constant zero divisor is kept
// symbolic so that evaluation reports ErrDivisionByZero.
func Floor[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](a, b Polynomial[I, C, P]) Polynomial[I, C, P] {
	if x, y, ok := constants(a, b); ok && y != 0 {
		return Constant[I, C, P](numeric.FloorDiv(x, y))
	}
	if q, ok := a.CheckedDiv(b); ok {
		return q
	}
	return wrap(KindFloor, a, b)
}

// Ceil returns ceil(a/b), folding like Floor.
func Ceil[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](a, b Polynomial[I, C, P]) Polynomial[I, C, P] {
	if x, y, ok := constants(a, b); ok && y != 0 {
		return Constant[I, C, P](numeric.CeilDiv(x, y))
	}
	if q, ok := a.CheckedDiv(b); ok {
		return q
	}
	return wrap(KindCeil, a, b)
}

// Min returns min(a, b), a number when both are constant.
func Min[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](a, b Polynomial[I, C, P]) Polynomial[I, C, P] {
	if x, y, ok := constants(a, b); ok {
		return Constant[I, C, P](numeric.Min(x, y))
	}
	return wrap(KindMin, a, b)
}

// Max returns max(a, b), a number when both are constant.
func Max[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](a, b Polynomial[I, C, P]) Polynomial[I, C, P] {
	if x, y, ok := constants(a, b); ok {
		return Constant[I, C, P](numeric.Max(x, y))
	}
	return wrap(KindMax, a, b)
}

func constants[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](a, b Polynomial[I, C, P]) (x, y C, ok bool) {
	if x, ok = a.ConstantValue(); !ok {
		return
	}
	y, ok = b.ConstantValue()
	return
}

// wrap builds the polynomial 1*kind(a, b)^1 around private copies of
// the operand headers.
func wrap[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](kind Kind, a, b Polynomial[I, C, P]) Polynomial[I, C, P] {
	l, r := a, b
	return single(Composite[I, C, P]{Kind: kind, Left: &l, Right: &r})
}

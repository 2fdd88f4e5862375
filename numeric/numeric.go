// Package numeric defines the capabilities required of the identifier,
// coefficient and power types of a polynomial, and the integer helpers
// the polynomial packages build on.
package numeric

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Identifier names a single symbolic variable. Identifiers are
// hashable and totally ordered; the order fixes the canonical order
// of monomials.
type Identifier interface {
	cmp.Ordered
}

// Coefficient is the integer type of monomial coefficients and of
// every evaluated value.
type Coefficient interface {
	constraints.Signed
}

// Power is the unsigned integer type of factor exponents.
type Power interface {
	constraints.Unsigned
}

// DivRem returns the truncated quotient and remainder of a/b. The
// second result is false when b is zero.
func DivRem[C Coefficient](a, b C) (q, r C, ok bool) {
	if b == 0 {
		return 0, 0, false
	}
	return a / b, a % b, true
}

// FloorDiv returns the largest integer not greater than a/b.
func FloorDiv[C Coefficient](a, b C) C {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// CeilDiv returns the smallest integer not less than a/b.
func CeilDiv[C Coefficient](a, b C) C {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// Pow raises x to the power n by repeated squaring.
func Pow[C Coefficient, P Power](x C, n P) C {
	r := C(1)
	for n > 0 {
		if n&1 == 1 {
			r *= x
		}
		x *= x
		n >>= 1
	}
	return r
}

// Min returns the smaller of a and b.
func Min[C Coefficient](a, b C) C {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[C Coefficient](a, b C) C {
	if a > b {
		return a
	}
	return b
}

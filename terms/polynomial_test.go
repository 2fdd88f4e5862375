package terms

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPolynomialConstructor(t *testing.T) {
	a := variable("a")
	b := FromMonomials(mono{Coefficient: 1, Factors: []fact{sym("b", 1)}}.MulC(5))
	minusSix := constant(-6)

	if !minusSix.IsConstant() || len(minusSix.Monomials) != 1 || minusSix.Monomials[0].Coefficient != -6 {
		t.Errorf("bad constant: %#v", minusSix)
	}
	if !constant(0).IsZero() || !constant(0).IsConstant() {
		t.Errorf("zero constant: %#v", constant(0))
	}
	want := poly{Monomials: []mono{{Coefficient: 1, Factors: []fact{sym("a", 1)}}}}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("variable mismatch (-want +got):\n%s", diff)
	}
	if a.IsConstant() || b.IsConstant() {
		t.Error("symbolic polynomial reported constant")
	}
	if b.Monomials[0].Coefficient != 5 {
		t.Errorf("got=%v want=5*b", b)
	}
}

func TestPolynomialEqual(t *testing.T) {
	a, b := variable("a"), variable("b")
	ab := a.Mul(b)
	aPlusB := a.Add(b)
	square := a.Mul(a).Add(b.Mul(b)).Add(ab.MulC(2))

	if a.Equal(constant(1)) || constant(1).Equal(a) {
		t.Error("a == 1")
	}
	if !a.Equal(variable("a")) {
		t.Error("a != a")
	}
	if ab.Equal(a) || a.Mul(a).Equal(a) {
		t.Error("distinct polynomials compared equal")
	}
	if !square.Equal(aPlusB.Mul(aPlusB)) {
		t.Errorf("(a+b)^2 got=%v want=%v", aPlusB.Mul(aPlusB), square)
	}
	if !square.Equal(aPlusB.Pow(2)) {
		t.Errorf("Pow(2) got=%v want=%v", aPlusB.Pow(2), square)
	}
}

func TestPolynomialOrder(t *testing.T) {
	a, b := variable("a"), variable("b")
	aSquare := a.Mul(a)
	bSquare := b.Mul(b)
	aSquareB := aSquare.Mul(b)
	aPlusB := a.Add(b)
	vs := []struct {
		hi, lo poly
	}{
		{hi: a, lo: constant(2)},
		{hi: a, lo: bSquare},
		{hi: bSquare, lo: b},
		{hi: aSquare, lo: a},
		{hi: aSquare, lo: bSquare},
		{hi: aSquareB, lo: aSquare},
		{hi: aSquareB.Add(a), lo: aSquareB},
		{hi: aSquareB.Add(a), lo: aSquareB.Add(b)},
		{hi: aPlusB, lo: a},
		{hi: aSquare, lo: aPlusB},
		{hi: aPlusB, lo: bSquare},
		{hi: aPlusB.Mul(aPlusB), lo: aSquare},
		{hi: aSquareB.Add(b), lo: aPlusB.Mul(aPlusB)},
	}
	for i, v := range vs {
		if v.hi.Compare(v.lo) <= 0 || v.lo.Compare(v.hi) >= 0 {
			t.Errorf("[%d] want %v > %v", i, v.hi, v.lo)
		}
	}
}

func TestPolynomialMul(t *testing.T) {
	a, b := variable("a"), variable("b")
	x := a.Mul(b).Add(a.Mul(a)).AddC(1)
	y := a.Mul(b).Add(b.Mul(b)).AddC(2)
	product := x.Mul(y)
	want := []mono{
		{Coefficient: 1, Factors: []fact{sym("a", 3), sym("b", 1)}},
		{Coefficient: 2, Factors: []fact{sym("a", 2), sym("b", 2)}},
		{Coefficient: 2, Factors: []fact{sym("a", 2)}},
		{Coefficient: 1, Factors: []fact{sym("a", 1), sym("b", 3)}},
		{Coefficient: 3, Factors: []fact{sym("a", 1), sym("b", 1)}},
		{Coefficient: 1, Factors: []fact{sym("b", 2)}},
		{Coefficient: 2},
	}
	if diff := cmp.Diff(want, product.Monomials, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("product mismatch (-want +got):\n%s", diff)
	}
	if !product.Equal(y.Mul(x)) {
		t.Error("multiplication not commutative")
	}
	if !a.Mul(constant(0)).IsZero() {
		t.Error("a*0 != 0")
	}
}

func TestPolynomialAdd(t *testing.T) {
	a, b := variable("a"), variable("b")
	aMono := mono{Coefficient: 1, Factors: []fact{sym("a", 1)}}
	v1 := a.Add(b).AddC(1)
	v2 := aMono.Add(b.Monomials[0]).AddC(1)
	if !v1.Equal(v2) {
		t.Errorf("got=%v want=%v", v2, v1)
	}
	want := []mono{
		{Coefficient: 1, Factors: []fact{sym("a", 1)}},
		{Coefficient: 1, Factors: []fact{sym("b", 1)}},
		{Coefficient: 1},
	}
	if diff := cmp.Diff(want, v1.Monomials, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("a+b+1 mismatch (-want +got):\n%s", diff)
	}
	if s := v1.Add(v2).String(); s != "2*a + 2*b + 2" {
		t.Errorf("got=%q want=%q", s, "2*a + 2*b + 2")
	}
}

func TestPolynomialSub(t *testing.T) {
	a, b := variable("a"), variable("b")
	x := a.Add(b).AddC(1)
	twice := x.MulC(2)
	vs := []struct {
		got, want poly
	}{
		{got: twice.Sub(x), want: x},
		{got: x.SubC(1), want: a.Add(b)},
		{got: x.Sub(a), want: b.AddC(1)},
		{got: x.Sub(b), want: a.AddC(1)},
		{got: x.Sub(a.Add(b)), want: constant(1)},
		{got: x.Sub(x), want: poly{}},
		{got: x.Neg().Add(x), want: poly{}},
	}
	for i, v := range vs {
		if !v.got.Equal(v.want) {
			t.Errorf("[%d] got=%v want=%v", i, v.got, v.want)
		}
	}
}

func TestPolynomialScale(t *testing.T) {
	a, b := variable("a"), variable("b")
	x := a.MulC(4).Sub(b.MulC(6)).AddC(2)
	half, ok := x.CheckedDivC(2)
	if !ok || !half.Equal(a.MulC(2).Sub(b.MulC(3)).AddC(1)) {
		t.Errorf("x/2 got=(%v, %v)", half, ok)
	}
	if _, ok := x.CheckedDivC(4); ok {
		t.Error("x/4 reported exact")
	}
	if _, ok := x.CheckedDivC(0); ok {
		t.Error("x/0 reported exact")
	}
	if got := x.MustDivC(-2); !got.Equal(a.MulC(-2).Add(b.MulC(3)).SubC(1)) {
		t.Errorf("x/-2 got=%v", got)
	}
	for i, c := range []int64{4, 0} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("[%d] x/%d did not panic", i, c)
				}
			}()
			x.MustDivC(c)
		}()
	}
	if got := x.MulC(-1); !got.Equal(x.Neg()) {
		t.Errorf("x*-1 got=%v want=%v", got, x.Neg())
	}
}

func TestEval(t *testing.T) {
	a, b, c, d := variable("a"), variable("b"), variable("c"), variable("d")
	values := Map[string, int64]{"a": 3, "b": 7, "c": 5}

	x := a.Add(b).AddC(1)
	y := a.Mul(b).Add(a.Mul(a)).AddC(1)
	z := a.Add(b).Add(c).AddC(1)
	product := y.Mul(z)
	vs := []struct {
		p    poly
		want int64
	}{
		{p: x, want: 11},
		{p: y, want: 31},
		{p: z, want: 16},
		{p: product, want: 496},
		{p: Floor(product, constant(3)), want: 165},
		{p: Ceil(product, constant(3)), want: 166},
		{p: Floor(product, constant(16)), want: 31},
		{p: Ceil(product, constant(16)), want: 31},
		{p: Floor(product, a), want: 165},
		{p: Ceil(product, a), want: 166},
		{p: Floor(product, b), want: 70},
		{p: Ceil(product, b), want: 71},
		{p: Floor(product, c), want: 99},
		{p: Ceil(product, c), want: 100},
		{p: Max(product, y), want: 496},
		{p: Min(product, y), want: 31},
		{p: Max(product.Neg(), y), want: 31},
		{p: Min(product.Neg(), y), want: -496},
	}
	for i, v := range vs {
		got, err := v.p.Eval(values)
		if err != nil || got != v.want {
			t.Errorf("[%d] %v got=(%d, %v) want=%d", i, v.p, got, err, v.want)
		}
	}

	missing := a.Mul(b).Mul(b).Add(c).Add(c).Add(d)
	_, err := missing.Eval(values)
	var mie *MissingIdentifierError[string]
	if !errors.As(err, &mie) || mie.ID != "d" {
		t.Errorf("got err=%v want missing d", err)
	}
	if !errors.Is(err, ErrMissingIdentifier) {
		t.Errorf("%v does not match ErrMissingIdentifier", err)
	}

	// Making a + b + 1 = 0.
	zeroed := Map[string, int64]{"a": 3, "b": -4, "c": 5}
	for i, p := range []poly{Floor(product, x), Ceil(product, x)} {
		if _, err := p.Eval(zeroed); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("[%d] got err=%v want division by zero", i, err)
		}
	}
}

func TestEvalErrorOrder(t *testing.T) {
	// Monomials are evaluated in canonical order, factors left first.
	p := variable("b").Add(variable("a").Mul(variable("c")))
	_, err := p.Eval(Map[string, int64]{})
	var mie *MissingIdentifierError[string]
	if !errors.As(err, &mie) || mie.ID != "a" {
		t.Errorf("got err=%v want missing a", err)
	}
	q := Max(variable("x"), variable("y"))
	_, err = q.Eval(Map[string, int64]{"y": 1})
	if !errors.As(err, &mie) || mie.ID != "x" {
		t.Errorf("got err=%v want missing x", err)
	}
}

func TestIdentifiers(t *testing.T) {
	a, b, c := variable("a"), variable("b"), variable("c")
	p := Floor(c.Mul(c), b).Add(a).AddC(4)
	if diff := cmp.Diff([]string{"a", "b", "c"}, p.Identifiers()); diff != "" {
		t.Errorf("identifiers mismatch (-want +got):\n%s", diff)
	}
	if len(constant(3).Identifiers()) != 0 {
		t.Error("constant has identifiers")
	}
}

func TestSubstitute(t *testing.T) {
	a, b, c := variable("a"), variable("b"), variable("c")
	p := a.Mul(b).Add(Floor(c, b)).AddC(1)
	got, err := p.Substitute(Map[string, int64]{"b": 2})
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}
	want := a.MulC(2).Add(Floor(c, constant(2))).AddC(1)
	if !got.Equal(want) {
		t.Errorf("got=%v want=%v", got, want)
	}
	all, err := got.Substitute(Map[string, int64]{"a": 4, "c": 7})
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}
	if v, ok := all.ConstantValue(); !ok || v != 12 {
		t.Errorf("got=%v want=12", all)
	}
	if _, err := p.Substitute(Map[string, int64]{"b": 0}); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("got err=%v want division by zero", err)
	}
	same, err := p.Substitute(Map[string, int64]{"z": 1})
	if err != nil || !same.Equal(p) {
		t.Errorf("unrelated substitution changed %v to %v (%v)", p, same, err)
	}
}

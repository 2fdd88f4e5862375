// Package shape manages tensor shapes whose dimensions are symbolic
// integer polynomials.
package shape

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"zappem.net/pub/math/symint/deduce"
	"zappem.net/pub/math/symint/internal/log"
	"zappem.net/pub/math/symint/numeric"
	"zappem.net/pub/math/symint/terms"
)

var (
	ErrRank     = errors.New("unsupported rank")
	ErrMismatch = errors.New("mismatched dimensions")
)

// Shape is an ordered list of dimensions.
type Shape[I numeric.Identifier, C numeric.Coefficient, P numeric.Power] struct {
	dims []terms.Polynomial[I, C, P]
}

// New creates a shape with the given dimensions.
func New[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](dims ...terms.Polynomial[I, C, P]) *Shape[I, C, P] {
	s := &Shape[I, C, P]{dims: make([]terms.Polynomial[I, C, P], len(dims))}
	copy(s.dims, dims)
	return s
}

// Rank returns the number of dimensions of s.
func (s *Shape[I, C, P]) Rank() int {
	return len(s.dims)
}

// Dim returns the i'th dimension of s.
func (s *Shape[I, C, P]) Dim(i int) terms.Polynomial[I, C, P] {
	return s.dims[i]
}

// Set sets the value of a dimension.
func (s *Shape[I, C, P]) Set(i int, p terms.Polynomial[I, C, P]) error {
	if i < 0 || i >= len(s.dims) {
		return fmt.Errorf("bad dimension: %d in rank %d shape", i, len(s.dims))
	}
	s.dims[i] = p
	return nil
}

// String serializes a shape for displaying.
func (s *Shape[I, C, P]) String() string {
	ds := make([]string, len(s.dims))
	for i, d := range s.dims {
		ds[i] = d.String()
	}
	return "[" + strings.Join(ds, ", ") + "]"
}

// Equal reports whether the dimensions of s and o are structurally
// identical.
func (s *Shape[I, C, P]) Equal(o *Shape[I, C, P]) bool {
	if len(s.dims) != len(o.dims) {
		return false
	}
	for i, d := range s.dims {
		if !d.Equal(o.dims[i]) {
			return false
		}
	}
	return true
}

// NumElements returns the product of the dimensions.
func (s *Shape[I, C, P]) NumElements() terms.Polynomial[I, C, P] {
	n := terms.Constant[I, C, P](1)
	for _, d := range s.dims {
		n = n.Mul(d)
	}
	return n
}

// Transpose swaps the dimensions of a rank 2 shape.
func (s *Shape[I, C, P]) Transpose() (*Shape[I, C, P], error) {
	if len(s.dims) != 2 {
		return nil, fmt.Errorf("%w: transpose of rank %d", ErrRank, len(s.dims))
	}
	return New(s.dims[1], s.dims[0]), nil
}

// MatMul returns the shape of the matrix product of s and o.
func (s *Shape[I, C, P]) MatMul(o *Shape[I, C, P]) (*Shape[I, C, P], error) {
	if len(s.dims) != 2 || len(o.dims) != 2 {
		return nil, fmt.Errorf("%w: product of rank %d and %d", ErrRank, len(s.dims), len(o.dims))
	}
	if !s.dims[1].Equal(o.dims[0]) {
		return nil, fmt.Errorf("%w: a cols(%v) != b rows(%v)", ErrMismatch, s.dims[1], o.dims[0])
	}
	return New(s.dims[0], o.dims[1]), nil
}

// Concat returns the shape of s and o joined along axis. All other
// dimensions must agree.
func (s *Shape[I, C, P]) Concat(o *Shape[I, C, P], axis int) (*Shape[I, C, P], error) {
	if len(s.dims) != len(o.dims) {
		return nil, fmt.Errorf("%w: concat of rank %d and %d", ErrRank, len(s.dims), len(o.dims))
	}
	if axis < 0 || axis >= len(s.dims) {
		return nil, fmt.Errorf("bad axis: %d in rank %d shape", axis, len(s.dims))
	}
	r := New(s.dims...)
	for i, d := range o.dims {
		if i == axis {
			r.dims[i] = r.dims[i].Add(d)
			continue
		}
		if !d.Equal(s.dims[i]) {
			return nil, fmt.Errorf("%w: axis %d: %v != %v", ErrMismatch, i, s.dims[i], d)
		}
	}
	return r, nil
}

// Window returns s with the dimension on axis replaced by the number
// of positions a kernel can take when sliding with stride over the
// dimension padded by pad at both ends: floor(n + 2*pad - kernel,
// stride) + 1.
func (s *Shape[I, C, P]) Window(axis int, kernel, stride, pad C) (*Shape[I, C, P], error) {
	if axis < 0 || axis >= len(s.dims) {
		return nil, fmt.Errorf("bad axis: %d in rank %d shape", axis, len(s.dims))
	}
	if kernel <= 0 || stride <= 0 || pad < 0 {
		return nil, fmt.Errorf("invalid window kernel=%d stride=%d pad=%d", kernel, stride, pad)
	}
	r := New(s.dims...)
	span := s.dims[axis].AddC(2*pad - kernel)
	r.dims[axis] = terms.Floor(span, terms.Constant[I, C, P](stride)).AddC(1)
	return r, nil
}

// Identifiers returns the sorted identifiers used by any dimension.
func (s *Shape[I, C, P]) Identifiers() []I {
	seen := make(map[I]struct{})
	for _, d := range s.dims {
		for _, id := range d.Identifiers() {
			seen[id] = struct{}{}
		}
	}
	ids := maps.Keys(seen)
	slices.Sort(ids)
	return ids
}

// Substitute partially evaluates every dimension.
func (s *Shape[I, C, P]) Substitute(values terms.Values[I, C]) (*Shape[I, C, P], error) {
	r := New(s.dims...)
	for i, d := range s.dims {
		x, err := d.Substitute(values)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
		r.dims[i] = x
	}
	return r, nil
}

// Eval returns the concrete dimensions of s.
func (s *Shape[I, C, P]) Eval(values terms.Values[I, C]) ([]C, error) {
	vs := make([]C, len(s.dims))
	for i, d := range s.dims {
		v, err := d.Eval(values)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
		vs[i] = v
	}
	return vs, nil
}

// Deduce recovers the identifiers of s from the concrete dimensions of
// a value observed to have this shape.
func (s *Shape[I, C, P]) Deduce(observed []C) (map[I]C, error) {
	if len(observed) != len(s.dims) {
		return nil, fmt.Errorf("%w: observed rank %d for %v", ErrRank, len(observed), s)
	}
	pairs := make([]deduce.Pair[I, C, P], len(s.dims))
	for i, d := range s.dims {
		pairs[i] = deduce.Pair[I, C, P]{Poly: d, Value: observed[i]}
	}
	log.Section("shape").Debug("deduce", "shape", s.String(), "observed", observed)
	return deduce.Values(pairs)
}

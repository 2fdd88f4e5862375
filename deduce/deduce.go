// Package deduce recovers the values of identifiers from polynomials
// whose evaluated values have been observed.
package deduce

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/benbjohnson/immutable"

	"zappem.net/pub/math/symint/internal/log"
	"zappem.net/pub/math/symint/numeric"
	"zappem.net/pub/math/symint/terms"
)

var (
	ErrNoIdentifiers   = errors.New("no identifiers to deduce")
	ErrUnderdetermined = errors.New("not enough equations to deduce every identifier")
	ErrInconsistent    = errors.New("inconsistent equations")
)

// Pair is an observation: Poly was found to evaluate to Value.
type Pair[I numeric.Identifier, C numeric.Coefficient, P numeric.Power] struct {
	Poly  terms.Polynomial[I, C, P]
	Value C
}

func (p Pair[I, C, P]) String() string {
	return fmt.Sprintf("%v = %d", p.Poly, p.Value)
}

type comparer[I numeric.Identifier] struct{}

func (comparer[I]) Compare(a, b I) int {
	return cmp.Compare(a, b)
}

// bindings exposes a snapshot of the deduced values to the evaluator.
type bindings[I numeric.Identifier, C numeric.Coefficient] struct {
	m *immutable.SortedMap[I, C]
}

func (b bindings[I, C]) Lookup(id I) (C, bool) {
	return b.m.Get(id)
}

// Values deduces every identifier used by pairs. Each pass substitutes
// the values known at the start of the pass into the pending
// equations. An equation reduced to c*x + k, with x appearing nowhere
// else, yields x = (value - k)/c. An equation reduced to a constant
// must agree with its observed value. Passes repeat until no equation
// is pending or a pass makes no progress.
func Values[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](pairs []Pair[I, C, P]) (map[I]C, error) {
	logger := log.Section("deduce")

	all := make(map[I]struct{})
	for _, p := range pairs {
		for _, id := range p.Poly.Identifiers() {
			all[id] = struct{}{}
		}
	}
	if len(all) == 0 {
		return nil, ErrNoIdentifiers
	}

	known := immutable.NewSortedMap[I, C](comparer[I]{})
	pending := slices.Clone(pairs)
	for pass := 1; len(pending) != 0; pass++ {
		snapshot := bindings[I, C]{m: known}
		var next []Pair[I, C, P]
		progress := false
		for _, eq := range pending {
			p, err := eq.Poly.Substitute(snapshot)
			if err != nil {
				return nil, fmt.Errorf("%w: %v: %w", ErrInconsistent, eq, err)
			}
			if v, ok := p.ConstantValue(); ok {
				if v != eq.Value {
					return nil, fmt.Errorf("%w: %v evaluates to %d", ErrInconsistent, eq, v)
				}
				progress = true
				continue
			}
			id, c, k, ok := linear(p)
			if !ok {
				next = append(next, Pair[I, C, P]{Poly: p, Value: eq.Value})
				continue
			}
			x, r, _ := numeric.DivRem(eq.Value-k, c)
			if r != 0 {
				return nil, fmt.Errorf("%w: %v has no integer solution for %v", ErrInconsistent, eq, id)
			}
			if old, ok := known.Get(id); ok && old != x {
				return nil, fmt.Errorf("%w: %v gives %v=%d, already %d", ErrInconsistent, eq, id, x, old)
			}
			logger.Debug("solved", "pass", pass, "id", id, "value", x, "from", eq.String())
			known = known.Set(id, x)
			progress = true
		}
		logger.Debug("pass", "n", pass, "known", known.Len(), "pending", len(next))
		if !progress {
			return nil, fmt.Errorf("%w: unresolved %v", ErrUnderdetermined, unresolved(all, known))
		}
		pending = next
	}

	if missing := unresolved(all, known); len(missing) != 0 {
		return nil, fmt.Errorf("%w: unresolved %v", ErrUnderdetermined, missing)
	}
	result := make(map[I]C, known.Len())
	for it := known.Iterator(); !it.Done(); {
		id, v, _ := it.Next()
		result[id] = v
	}
	return result, nil
}

// linear matches p against c*x + k where x is the only identifier of p
// and appears in no other monomial.
func linear[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](p terms.Polynomial[I, C, P]) (id I, c, k C, ok bool) {
	ids := p.Identifiers()
	if len(ids) != 1 {
		return
	}
	id = ids[0]
	for _, m := range p.Monomials {
		switch {
		case m.IsConstant():
			k = m.Coefficient
		case len(m.Factors) == 1 && m.Factors[0].Power == 1 && m.Factors[0].Composite.IsVariable():
			c = m.Coefficient
		default:
			return id, 0, 0, false
		}
	}
	return id, c, k, c != 0
}

// unresolved lists, in order, the identifiers of all without a value.
func unresolved[I numeric.Identifier, C numeric.Coefficient](all map[I]struct{}, known *immutable.SortedMap[I, C]) []I {
	var ids []I
	for id := range all {
		if _, ok := known.Get(id); !ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

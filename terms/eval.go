package terms

import (
	"errors"
	"fmt"
)

// Values supplies identifier assignments to an evaluation. It may be
// partial: identifiers it does not know cause a MissingIdentifierError.
type Values[I, C any] interface {
	Lookup(id I) (C, bool)
}

// Map adapts a plain Go map to Values. A nil Map knows nothing.
type Map[I comparable, C any] map[I]C

// Lookup returns the value assigned to id.
func (m Map[I, C]) Lookup(id I) (C, bool) {
	v, ok := m[id]
	return v, ok
}

var (
	ErrMissingIdentifier   = errors.New("value not provided for identifier")
	ErrDivisionByZero      = errors.New("attempting division by zero")
	ErrNotExactlyDivisible = errors.New("not exactly divisible")
	ErrPowerOverflow       = errors.New("power overflows its type")
)

// MissingIdentifierError names the identifier an evaluation could not
// find. It matches ErrMissingIdentifier with errors.Is.
type MissingIdentifierError[I any] struct {
	ID I
}

func (e *MissingIdentifierError[I]) Error() string {
	return fmt.Sprintf("value not provided for %v", e.ID)
}

func (e *MissingIdentifierError[I]) Is(target error) bool {
	return target == ErrMissingIdentifier
}

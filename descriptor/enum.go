package descriptor

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrEmptyEnum         = errors.New("enum needs at least one constant")
	ErrMixedEnum         = errors.New("enum constants must share one type")
	ErrDuplicateEnumName = errors.New("enum constant names must be unique")
)

// Enum describes the constants of one enum type in declaration order.
type Enum struct {
	typ    reflect.Type
	names  []string
	values []reflect.Value
	index  map[string]int
}

// NewEnum builds the constant table of an enum from its values and their
// names. Both slices are in declaration order.
func NewEnum(values []any, names []string) (*Enum, error) {
	if len(values) == 0 {
		return nil, ErrEmptyEnum
	}

	if len(values) != len(names) {
		return nil, fmt.Errorf("%d values but %d names", len(values), len(names))
	}

	e := &Enum{
		typ:   reflect.TypeOf(values[0]),
		index: make(map[string]int, len(values)),
	}

	for i, v := range values {
		rv := reflect.ValueOf(v)
		if rv.Type() != e.typ {
			return nil, fmt.Errorf("%w: %s and %s", ErrMixedEnum, e.typ, rv.Type())
		}

		if _, dup := e.index[names[i]]; dup {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateEnumName, e.typ, names[i])
		}

		e.index[names[i]] = i
		e.names = append(e.names, names[i])
		e.values = append(e.values, rv)
	}

	return e, nil
}

// Type returns the enum type.
func (e *Enum) Type() reflect.Type { return e.typ }

// Names returns the constant names in declaration order.
func (e *Enum) Names() []string { return append([]string(nil), e.names...) }

// Len returns the number of constants.
func (e *Enum) Len() int { return len(e.values) }

// Value returns the constant at ordinal i.
func (e *Enum) Value(i int) reflect.Value { return e.values[i] }

// Lookup finds a constant by its exact name.
func (e *Enum) Lookup(name string) (reflect.Value, bool) {
	i, ok := e.index[name]
	if !ok {
		return reflect.Value{}, false
	}

	return e.values[i], true
}

// Ordinal returns the declaration index of v, or -1 if v is not a constant.
func (e *Enum) Ordinal(v any) int {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Type() != e.typ {
		return -1
	}

	for i, c := range e.values {
		if c.Equal(rv) {
			return i
		}
	}

	return -1
}

package descriptor

import (
	"reflect"
	"strings"
)

// Type describes a requested target type: the raw reflect type, the ordered
// type arguments when the raw type is parameterized, and the component type
// of slices and arrays.
//
// Go keeps no type arguments on interface types such as container.List, so
// they are supplied by the caller through New. Slices, arrays and native maps
// carry their element types in reflect and Of derives them.
type Type struct {
	raw       reflect.Type
	args      []Type
	component *Type
}

// Of derives a descriptor from a reflect type.
func Of(t reflect.Type) Type {
	if t == nil {
		return Type{}
	}

	d := Type{raw: t}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		c := Of(t.Elem())
		d.component = &c
	case reflect.Map:
		d.args = []Type{Of(t.Key()), Of(t.Elem())}
	}

	return d
}

// For derives a descriptor from the type parameter T.
func For[T any]() Type {
	return Of(reflect.TypeFor[T]())
}

// New builds a parameterized descriptor. The args are copied.
func New(raw reflect.Type, args ...Type) Type {
	d := Of(raw)
	if len(args) > 0 {
		d.args = append([]Type(nil), args...)
	}

	return d
}

// Raw returns the unparameterized type identity.
func (t Type) Raw() reflect.Type { return t.raw }

// IsZero reports whether t describes nothing.
func (t Type) IsZero() bool { return t.raw == nil }

// IsParameterized reports whether type arguments are present.
func (t Type) IsParameterized() bool { return len(t.args) > 0 }

// Args returns a copy of the type arguments.
func (t Type) Args() []Type { return append([]Type(nil), t.args...) }

// Arg returns the i-th type argument.
func (t Type) Arg(i int) (Type, bool) {
	if i < 0 || i >= len(t.args) {
		return Type{}, false
	}

	return t.args[i], true
}

// IsArray reports whether the raw type is a slice or an array.
func (t Type) IsArray() bool { return t.component != nil }

// Component returns the element descriptor of a slice or array, or the zero
// Type otherwise.
func (t Type) Component() Type {
	if t.component == nil {
		return Type{}
	}

	return *t.component
}

// AssignableTo reports whether values of the raw type may be used as base.
// For an interface base this is an implements check.
func (t Type) AssignableTo(base reflect.Type) bool {
	if t.raw == nil || base == nil {
		return false
	}

	if base.Kind() == reflect.Interface {
		return t.raw.Implements(base)
	}

	return t.raw.AssignableTo(base)
}

// Equal reports whether both descriptors have the same raw type and args.
func (t Type) Equal(o Type) bool {
	if t.raw != o.raw || len(t.args) != len(o.args) {
		return false
	}

	for i := range t.args {
		if !t.args[i].Equal(o.args[i]) {
			return false
		}
	}

	return true
}

// String renders the descriptor the way it is written in Go, with type
// arguments in brackets for parameterized interface types.
func (t Type) String() string {
	if t.raw == nil {
		return "<nil>"
	}

	if len(t.args) == 0 || t.raw.Kind() == reflect.Map {
		return t.raw.String()
	}

	parts := make([]string, len(t.args))
	for i, a := range t.args {
		parts[i] = a.String()
	}

	return t.raw.String() + "[" + strings.Join(parts, ", ") + "]"
}

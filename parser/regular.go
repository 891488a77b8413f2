package parser

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"type-parser/descriptor"
	"type-parser/primitive"
)

func regularStrategies() []namedStrategy {
	return []namedStrategy{
		{"enum", enumStrategy{}},
		{"type-name", typeNameStrategy{}},
		{"factory", memberStrategy{kind: "factory", candidates: factoryCandidates}},
		{"constructor", memberStrategy{kind: "constructor", candidates: constructorCandidates}},
	}
}

var (
	reflectTypeType     = reflect.TypeFor[reflect.Type]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

type enumStrategy struct{}

func (enumStrategy) Attempt(input string, target descriptor.Type, h *Helper) Outcome {
	e, ok := h.Enum(target.Raw())
	if !ok {
		return TryNext()
	}

	name := strings.TrimSpace(input)
	v, ok := e.Lookup(name)
	if !ok {
		return Failed(&Error{Kind: ErrUnknownEnumConstant, Target: target, Input: name, Names: e.Names()})
	}

	return Produced(v.Interface())
}

func (enumStrategy) Supports(target descriptor.Type, h *Helper) (bool, error) {
	_, ok := h.Enum(target.Raw())
	return ok, nil
}

// typeNameStrategy resolves reflect.Type targets from type names.
type typeNameStrategy struct{}

func (typeNameStrategy) Attempt(input string, target descriptor.Type, h *Helper) Outcome {
	if target.Raw() != reflectTypeType {
		return TryNext()
	}

	name := strings.TrimSpace(input)
	t, err := h.engine.TypeOf(name)
	if err != nil {
		return Failed(&Error{Kind: ErrUnresolvableTypeName, Target: target, Input: name, Cause: err})
	}

	return Produced(t.Raw())
}

func (typeNameStrategy) Supports(target descriptor.Type, _ *Helper) (bool, error) {
	return target.Raw() == reflectTypeType, nil
}

// member is one way of building a target value from a single argument.
type member struct {
	name   string
	param  descriptor.Type
	invoke func(arg any) (any, error)
}

// memberStrategy tries candidates in order. The first candidate whose
// argument parses is invoked; candidates whose argument type has no parser
// are skipped.
type memberStrategy struct {
	kind       string
	candidates func(target reflect.Type, e *Engine) []member
}

func (s memberStrategy) Attempt(input string, target descriptor.Type, h *Helper) Outcome {
	for _, m := range s.candidates(target.Raw(), h.engine) {
		arg, err := h.Parse(input, m.param)
		switch {
		case err == nil:
		case skippable(err):
			continue
		case kindOf(err) == ErrCyclicTargetType:
			return Failed(withMember(err, s.kind+" "+m.name))
		default:
			return Failed(err)
		}

		v, err := call(m, arg)
		if err != nil {
			return Failed(&Error{
				Kind:   ErrFactoryInvocationFailed,
				Target: target,
				Input:  input,
				Member: s.kind + " " + m.name,
				Cause:  err,
			})
		}

		return Produced(v)
	}

	return TryNext()
}

func (s memberStrategy) Supports(target descriptor.Type, h *Helper) (bool, error) {
	for _, m := range s.candidates(target.Raw(), h.engine) {
		err := h.Supports(m.param)
		switch {
		case err == nil:
			return true, nil
		case skippable(err):
			continue
		case kindOf(err) == ErrCyclicTargetType:
			return true, withMember(err, s.kind+" "+m.name)
		default:
			return true, err
		}
	}

	return false, nil
}

func call(m member, arg any) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return m.invoke(arg)
}

// factoryCandidates lists registered factories in registration order, then
// UnmarshalText when the type implements encoding.TextUnmarshaler.
func factoryCandidates(t reflect.Type, e *Engine) []member {
	var out []member
	for _, f := range e.factories[t] {
		out = append(out, member{
			name:   f.String(),
			param:  descriptor.Of(f.Param),
			invoke: f.Call,
		})
	}

	if m, ok := textMember(t); ok {
		out = append(out, m)
	}

	return out
}

func textMember(t reflect.Type) (member, bool) {
	var base reflect.Type
	switch {
	case t.Kind() == reflect.Pointer && t.Implements(textUnmarshalerType):
		base = t.Elem()
	case t.Kind() != reflect.Interface && t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(textUnmarshalerType):
		base = t
	default:
		return member{}, false
	}

	return member{
		name:  "(*" + base.String() + ").UnmarshalText",
		param: stringType,
		invoke: func(arg any) (any, error) {
			p := reflect.New(base)
			if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(arg.(string))); err != nil {
				return nil, err
			}
			if t.Kind() == reflect.Pointer {
				return p.Interface(), nil
			}

			return p.Elem().Interface(), nil
		},
	}, true
}

// constructorCandidates lists the Go construction forms of t: taking the
// address of an element value, converting from the underlying basic type, and
// filling the only field of a one-field struct.
func constructorCandidates(t reflect.Type, _ *Engine) []member {
	var out []member

	if t.Kind() == reflect.Pointer {
		elem := t.Elem()
		out = append(out, member{
			name:  "&" + elem.String(),
			param: descriptor.Of(elem),
			invoke: func(arg any) (any, error) {
				p := reflect.New(elem)
				p.Elem().Set(assign(arg, elem))
				return p.Interface(), nil
			},
		})
	}

	if k, ok := primitive.FromReflectKind(t.Kind()); ok && k.Type() != t {
		out = append(out, member{
			name:  t.String() + "(" + k.Type().String() + ")",
			param: descriptor.Of(k.Type()),
			invoke: func(arg any) (any, error) {
				return reflect.ValueOf(arg).Convert(t).Interface(), nil
			},
		})
	}

	if t.Kind() == reflect.Struct && t.NumField() == 1 && t.Field(0).IsExported() {
		field := t.Field(0)
		out = append(out, member{
			name:  t.String() + "{" + field.Name + "}",
			param: descriptor.Of(field.Type),
			invoke: func(arg any) (any, error) {
				v := reflect.New(t).Elem()
				v.Field(0).Set(assign(arg, field.Type))
				return v.Interface(), nil
			},
		})
	}

	return out
}

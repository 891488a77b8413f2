package parser

import (
	"fmt"
	"reflect"

	"type-parser/container"
	"type-parser/descriptor"
)

// Container strategies run before the regular ones. enumSet must precede
// collection because *container.EnumSet is a collection too.
func containerStrategies() []namedStrategy {
	return []namedStrategy{
		{"enum-set", enumSetStrategy{}},
		{"collection", collectionStrategy{}},
		{"map", mapStrategy{}},
		{"array", arrayStrategy{}},
	}
}

var stringType = descriptor.For[string]()

// elementType is the first type argument, or string for raw collections.
func elementType(target descriptor.Type) descriptor.Type {
	if elem, ok := target.Arg(0); ok {
		return elem
	}

	return stringType
}

func populate(c container.Collection, target, elem descriptor.Type, input string, h *Helper) error {
	for _, s := range h.Split(input) {
		v, err := h.Parse(s, elem)
		if err != nil {
			return err
		}
		if err := store(target, input, func() { c.Add(v) }); err != nil {
			return err
		}
	}

	return nil
}

// store runs one insertion, turning a container panic into an error.
func store(target descriptor.Type, input string, insert func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newError(ErrParseFailed, target, input, fmt.Errorf("container rejected element: %v", r))
		}
	}()

	insert()
	return nil
}

// hashable rejects hash-keyed containers whose key type has no Go equality.
func hashable(c any, key, target descriptor.Type, input string) error {
	if _, ok := c.(container.Hashing); !ok || key.Raw().Comparable() {
		return nil
	}

	return newError(ErrInvalidDescriptor, target, input, fmt.Errorf("%s is not comparable", key))
}

// initialize runs the optional Init hook of a freshly constructed container.
func initialize(v any, target descriptor.Type) (err error) {
	hook, ok := v.(container.Initializer)
	if !ok {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = newError(ErrContainerInstantiationFailed, target, "", fmt.Errorf("panic in Init: %v", r))
		}
	}()

	if err := hook.Init(); err != nil {
		return newError(ErrContainerInstantiationFailed, target, "", err)
	}

	return nil
}

// construct builds a concrete container through its zero value.
func construct(target descriptor.Type) (any, error) {
	raw := target.Raw()
	if raw.Kind() != reflect.Pointer || raw.Elem().Kind() != reflect.Struct {
		return nil, newError(ErrContainerInstantiationFailed, target, "",
			fmt.Errorf("%s is not a pointer to a struct, it has no zero-value constructor", raw))
	}

	v := reflect.New(raw.Elem()).Interface()
	if err := initialize(v, target); err != nil {
		return nil, err
	}

	return v, nil
}

type enumSetStrategy struct{}

func (enumSetStrategy) Attempt(input string, target descriptor.Type, h *Helper) Outcome {
	if target.Raw() != container.EnumSetType {
		return TryNext()
	}

	elem, ok := target.Arg(0)
	if !ok {
		return Failed(newError(ErrInvalidDescriptor, target, input, fmt.Errorf("enum set needs an element type")))
	}

	e, ok := h.Enum(elem.Raw())
	if !ok {
		return Failed(newError(ErrInvalidDescriptor, target, input, fmt.Errorf("%s is not a registered enum", elem)))
	}

	set := container.NewEnumSet(e)
	if err := populate(set, target, elem, input, h); err != nil {
		return Failed(err)
	}

	return Produced(set)
}

func (enumSetStrategy) Supports(target descriptor.Type, h *Helper) (bool, error) {
	if target.Raw() != container.EnumSetType {
		return false, nil
	}

	elem, ok := target.Arg(0)
	if !ok {
		return true, newError(ErrInvalidDescriptor, target, "", fmt.Errorf("enum set needs an element type"))
	}

	if _, ok := h.Enum(elem.Raw()); !ok {
		return true, newError(ErrInvalidDescriptor, target, "", fmt.Errorf("%s is not a registered enum", elem))
	}

	return true, nil
}

type collectionStrategy struct{}

func (collectionStrategy) Attempt(input string, target descriptor.Type, h *Helper) Outcome {
	raw := target.Raw()
	if !raw.Implements(container.CollectionType) {
		return TryNext()
	}

	var c container.Collection
	if raw.Kind() == reflect.Interface {
		made, err := h.engine.table.NewCollection(raw)
		if err != nil {
			return Failed(newError(ErrContainerInstantiationFailed, target, input, err))
		}
		c = made
	} else {
		made, err := construct(target)
		if err != nil {
			return Failed(err)
		}
		c = made.(container.Collection)
	}

	elem := elementType(target)
	if err := hashable(c, elem, target, input); err != nil {
		return Failed(err)
	}

	if err := populate(c, target, elem, input, h); err != nil {
		return Failed(err)
	}

	return Produced(c)
}

func (collectionStrategy) Supports(target descriptor.Type, h *Helper) (bool, error) {
	if !target.Raw().Implements(container.CollectionType) {
		return false, nil
	}

	return true, h.Supports(elementType(target))
}

type mapStrategy struct{}

func isMap(raw reflect.Type) bool {
	return raw.Kind() == reflect.Map || raw.Implements(container.MapType)
}

func mapArgs(target descriptor.Type) (key, value descriptor.Type, err error) {
	key, okKey := target.Arg(0)
	value, okValue := target.Arg(1)
	if !okKey || !okValue {
		return key, value, newError(ErrInvalidDescriptor, target, "",
			fmt.Errorf("map needs key and value types"))
	}

	return key, value, nil
}

func (mapStrategy) Attempt(input string, target descriptor.Type, h *Helper) Outcome {
	raw := target.Raw()
	if !isMap(raw) {
		return TryNext()
	}

	keyType, valueType, err := mapArgs(target)
	if err != nil {
		return Failed(err)
	}

	var put func(k, v any)
	var result any

	switch {
	case raw.Kind() == reflect.Map:
		m := reflect.MakeMap(raw)
		put = func(k, v any) { m.SetMapIndex(assign(k, raw.Key()), assign(v, raw.Elem())) }
		result = m.Interface()

	case raw.Kind() == reflect.Interface:
		m, err := h.engine.table.NewMap(raw)
		if err != nil {
			return Failed(newError(ErrContainerInstantiationFailed, target, input, err))
		}
		put, result = m.Put, m

	default:
		made, err := construct(target)
		if err != nil {
			return Failed(err)
		}
		m := made.(container.Map)
		put, result = m.Put, m
	}

	if err := hashable(result, keyType, target, input); err != nil {
		return Failed(err)
	}

	for _, entry := range h.Split(input) {
		ks, vs, err := h.SplitKeyValue(entry)
		if err != nil {
			return Failed(err)
		}

		k, err := h.Parse(ks, keyType)
		if err != nil {
			return Failed(err)
		}

		v, err := h.Parse(vs, valueType)
		if err != nil {
			return Failed(err)
		}

		if err := store(target, input, func() { put(k, v) }); err != nil {
			return Failed(err)
		}
	}

	return Produced(result)
}

func (mapStrategy) Supports(target descriptor.Type, h *Helper) (bool, error) {
	if !isMap(target.Raw()) {
		return false, nil
	}

	keyType, valueType, err := mapArgs(target)
	if err != nil {
		return true, err
	}

	if err := h.Supports(keyType); err != nil {
		return true, err
	}

	return true, h.Supports(valueType)
}

type arrayStrategy struct{}

func (arrayStrategy) Attempt(input string, target descriptor.Type, h *Helper) Outcome {
	if !target.IsArray() {
		return TryNext()
	}

	raw := target.Raw()
	elem := target.Component()
	parts := h.Split(input)

	var result reflect.Value
	if raw.Kind() == reflect.Array {
		if len(parts) > raw.Len() {
			return Failed(newError(ErrInvalidDescriptor, target, input,
				fmt.Errorf("%d elements do not fit", len(parts))))
		}
		result = reflect.New(raw).Elem()
	} else {
		result = reflect.MakeSlice(raw, len(parts), len(parts))
	}

	for i, s := range parts {
		v, err := h.Parse(s, elem)
		if err != nil {
			return Failed(err)
		}
		result.Index(i).Set(assign(v, raw.Elem()))
	}

	return Produced(result.Interface())
}

func (arrayStrategy) Supports(target descriptor.Type, h *Helper) (bool, error) {
	if !target.IsArray() {
		return false, nil
	}

	return true, h.Supports(target.Component())
}

package parser

import (
	"reflect"

	"type-parser/container"
	"type-parser/descriptor"
	"type-parser/primitive"
)

// scalarStrategy parses one primitive kind with the engine's categories.
type scalarStrategy primitive.KindEnum

func (s scalarStrategy) Attempt(input string, target descriptor.Type, h *Helper) Outcome {
	v, err := primitive.Parse(primitive.KindEnum(s), input, h.engine.categories)
	if err != nil {
		return Failed(newError(ErrParseFailed, target, input, err))
	}

	return Produced(v)
}

func defaultRegistrations() []registration {
	kinds := primitive.Kinds()
	regs := make([]registration, 0, len(kinds))
	for _, k := range kinds {
		regs = append(regs, registration{
			typ:           k.Type(),
			namedStrategy: namedStrategy{name: k.String(), strategy: scalarStrategy(k)},
		})
	}

	return regs
}

// defaultCatalogTypes are resolvable by name in every engine.
func defaultCatalogTypes() []reflect.Type {
	types := make([]reflect.Type, 0, primitive.KindTotal+20)
	for _, k := range primitive.Kinds() {
		types = append(types, k.Type())
	}

	return append(types,
		reflect.TypeFor[any](),
		reflectTypeType,

		container.CollectionType,
		container.ListType,
		container.SetType,
		container.SortedSetType,
		container.QueueType,
		container.DequeType,
		container.BlockingQueueType,
		container.BlockingDequeType,
		container.MapType,
		container.SortedMapType,
		container.NavigableMapType,
		container.ConcurrentMapType,

		reflect.TypeFor[container.EnumSet](),
		reflect.TypeFor[container.ArrayList](),
		reflect.TypeFor[container.LinkedList](),
		reflect.TypeFor[container.ArrayDeque](),
		reflect.TypeFor[container.LinkedHashSet](),
		reflect.TypeFor[container.TreeSet](),
		reflect.TypeFor[container.LinkedBlockingDeque](),
		reflect.TypeFor[container.LinkedHashMap](),
		reflect.TypeFor[container.TreeMap](),
		reflect.TypeFor[container.ConcurrentHashMap](),
		reflect.TypeFor[container.ConcurrentSkipListMap](),
	)
}

// catalogNames returns the names a type is known by: its Go spelling and, for
// types declared in a package, the package path form.
func catalogNames(t reflect.Type) []string {
	if t == reflect.TypeFor[any]() {
		return []string{"any", t.String()}
	}

	names := []string{t.String()}
	if t.Name() != "" && t.PkgPath() != "" {
		names = append(names, t.PkgPath()+"."+t.Name())
	}

	return names
}

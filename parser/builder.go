package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"type-parser/container"
	"type-parser/descriptor"
	"type-parser/options"
	"type-parser/split"
)

// Builder collects registrations and options for an Engine.
// Registration mistakes are reported by Build, not by the register calls,
// so that calls can be chained.
type Builder struct {
	exact      []registration
	assignable []registration
	enums      []*descriptor.Enum
	factories  []*Factory
	typeNames  []reflect.Type

	splitter   *split.Splitter
	table      *container.Table
	maxDepth   int
	categories options.CategoryEnum
	logger     *slog.Logger
	preprocess func(string) string
	nullString string
	hasNull    bool
	noDefaults bool

	errs []error
}

func NewBuilder() *Builder {
	return &Builder{
		maxDepth:   DefaultMaxDepth,
		categories: options.CategoryDefault,
	}
}

func (b *Builder) fail(format string, args ...any) *Builder {
	b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrInvalidRegistration, fmt.Sprintf(format, args...)))
	return b
}

// nilStrategy also catches typed nils such as StrategyFunc(nil).
func nilStrategy(s Strategy) bool {
	if s == nil {
		return true
	}

	rv := reflect.ValueOf(s)
	return rv.Kind() == reflect.Func && rv.IsNil()
}

// RegisterParser adds a strategy for targets whose raw type is exactly t.
// Strategies registered for the same type are tried in registration order,
// ahead of the built-in ones.
func (b *Builder) RegisterParser(t reflect.Type, s Strategy) *Builder {
	if t == nil || nilStrategy(s) {
		return b.fail("nil type or strategy")
	}

	b.exact = append(b.exact, registration{
		typ:           t,
		namedStrategy: namedStrategy{name: "parser " + t.String(), strategy: s},
	})
	b.typeNames = append(b.typeNames, t)

	return b
}

// RegisterParserFunc registers a plain text parser for T.
func RegisterParserFunc[T any](b *Builder, fn func(input string) (T, error)) *Builder {
	if fn == nil {
		return b.fail("nil parser func for %s", reflect.TypeFor[T]())
	}

	return b.RegisterParser(reflect.TypeFor[T](), Func(fn))
}

// RegisterAssignable adds a strategy for every target assignable to base.
// Assignable registrations are tried after all exact ones.
func (b *Builder) RegisterAssignable(base reflect.Type, s Strategy) *Builder {
	if base == nil || nilStrategy(s) {
		return b.fail("nil base type or strategy")
	}

	b.assignable = append(b.assignable, registration{
		typ:           base,
		namedStrategy: namedStrategy{name: "assignable " + base.String(), strategy: s},
	})

	return b
}

// EnumDef is the constant table of one enum type, see Enum.
type EnumDef struct {
	enum *descriptor.Enum
	err  error
}

// Enum describes an enum from its constants in declaration order. Constant
// names come from String.
func Enum[E fmt.Stringer](values ...E) EnumDef {
	anys := make([]any, len(values))
	names := make([]string, len(values))
	for i, v := range values {
		anys[i], names[i] = v, v.String()
	}

	return EnumNamed(anys, names)
}

// EnumNamed describes an enum with explicit constant names.
func EnumNamed(values []any, names []string) EnumDef {
	e, err := descriptor.NewEnum(values, names)
	return EnumDef{enum: e, err: err}
}

func (b *Builder) RegisterEnum(def EnumDef) *Builder {
	if def.err != nil {
		return b.fail("enum: %v", def.err)
	}

	if def.enum == nil {
		return b.fail("empty enum definition")
	}

	for _, e := range b.enums {
		if e.Type() == def.enum.Type() {
			return b.fail("enum %s registered twice", e.Type())
		}
	}

	b.enums = append(b.enums, def.enum)
	b.typeNames = append(b.typeNames, def.enum.Type())

	return b
}

// RegisterFactory adds single-argument factory functions, see ParseFactory.
// A factory is a candidate for targets of exactly its result type.
func (b *Builder) RegisterFactory(fns ...any) *Builder {
	for _, fn := range fns {
		f, err := ParseFactory(fn)
		if err != nil {
			b.fail("factory %T: %v", fn, err)
			continue
		}

		b.factories = append(b.factories, f)
		b.typeNames = append(b.typeNames, f.Result, f.Param)
	}

	return b
}

// RegisterTypeName makes types resolvable by name, for reflect.Type targets
// and for TypeOf.
func (b *Builder) RegisterTypeName(types ...reflect.Type) *Builder {
	for _, t := range types {
		if t == nil {
			b.fail("nil type name")
			continue
		}
		b.typeNames = append(b.typeNames, t)
	}

	return b
}

// WithSplitter sets the splitter used by container strategies.
// Default is split.Default().
func (b *Builder) WithSplitter(s *split.Splitter) *Builder {
	if s == nil {
		return b.fail("nil splitter")
	}

	b.splitter = s
	return b
}

// WithTable replaces the interface to implementation table.
func (b *Builder) WithTable(t *container.Table) *Builder {
	if t == nil {
		return b.fail("nil container table")
	}

	b.table = t
	return b
}

// WithMaxDepth bounds nested parse calls. Default is DefaultMaxDepth.
func (b *Builder) WithMaxDepth(depth int) *Builder {
	if depth <= 0 {
		return b.fail("max depth %d must be positive", depth)
	}

	b.maxDepth = depth
	return b
}

// WithCategories selects the textual forms the scalar parsers accept.
// Default is options.CategoryDefault.
func (b *Builder) WithCategories(c options.CategoryEnum) *Builder {
	b.categories = c
	return b
}

// WithLogger sets a custom logger for the engine.
// If not set, slog.Default() will be used.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithInputPreprocessor rewrites every input, nested ones included, before
// it reaches a strategy.
func (b *Builder) WithInputPreprocessor(fn func(string) string) *Builder {
	b.preprocess = fn
	return b
}

// WithNullString makes s parse to the zero value of any nilable target.
func (b *Builder) WithNullString(s string) *Builder {
	b.nullString, b.hasNull = s, true
	return b
}

// WithoutDefaults drops the built-in scalar parsers, string included.
func (b *Builder) WithoutDefaults() *Builder {
	b.noDefaults = true
	return b
}

// Build validates the registrations and returns the engine.
func (b *Builder) Build() (*Engine, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	e := &Engine{
		exact:      append([]registration(nil), b.exact...),
		assignable: append([]registration(nil), b.assignable...),
		containers: containerStrategies(),
		regular:    regularStrategies(),
		table:      b.table,
		splitter:   b.splitter,
		enums:      make(map[reflect.Type]*descriptor.Enum, len(b.enums)),
		factories:  make(map[reflect.Type][]*Factory),
		catalog:    make(map[string]reflect.Type),
		categories: b.categories,
		maxDepth:   b.maxDepth,
		nullString: b.nullString,
		hasNull:    b.hasNull,
		preprocess: b.preprocess,
		logger:     b.logger,
	}

	if e.table == nil {
		e.table = container.DefaultTable()
	}
	if e.splitter == nil {
		e.splitter = split.Default()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	if !b.noDefaults {
		e.exact = append(e.exact, defaultRegistrations()...)
	}

	for _, en := range b.enums {
		e.enums[en.Type()] = en
	}

	for _, f := range b.factories {
		e.factories[f.Result] = append(e.factories[f.Result], f)
	}

	for _, t := range append(defaultCatalogTypes(), b.typeNames...) {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		for _, name := range catalogNames(t) {
			if _, taken := e.catalog[name]; !taken {
				e.catalog[name] = t
			}
		}
	}

	return e, nil
}

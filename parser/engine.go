package parser

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"type-parser/container"
	"type-parser/descriptor"
	"type-parser/options"
	"type-parser/split"
)

// DefaultMaxDepth bounds nested parse calls within one top-level call.
const DefaultMaxDepth = 64

type namedStrategy struct {
	name     string
	strategy Strategy
}

type registration struct {
	typ reflect.Type
	namedStrategy
}

// Engine converts text into values of requested types. It is immutable once
// built and safe for concurrent use.
type Engine struct {
	exact      []registration
	assignable []registration
	containers []namedStrategy
	regular    []namedStrategy

	table      *container.Table
	splitter   *split.Splitter
	enums      map[reflect.Type]*descriptor.Enum
	factories  map[reflect.Type][]*Factory
	catalog    map[string]reflect.Type
	categories options.CategoryEnum

	maxDepth   int
	nullString string
	hasNull    bool
	preprocess func(string) string
	logger     *slog.Logger
}

// Parse converts input into a value of target. The value's dynamic type is
// assignable to target.Raw(); a nil value is returned only for nilable
// targets.
func (e *Engine) Parse(input string, target descriptor.Type) (any, error) {
	return e.resolve(input, target, &callState{})
}

// ParseType is Parse for an unparameterized reflect type.
func (e *Engine) ParseType(input string, t reflect.Type) (any, error) {
	return e.Parse(input, descriptor.Of(t))
}

// IsTargetTypeSupported reports whether Parse can handle target, without
// parsing anything. It is false exactly when Parse of a non-empty, well
// formed input would fail with ErrNoApplicableParser.
func (e *Engine) IsTargetTypeSupported(target descriptor.Type) bool {
	return kindOf(e.supports(target, &callState{})) != ErrNoApplicableParser
}

// TypeOf resolves a Go type expression against the engine's type catalog.
// Package path names such as "time.Duration" or "example.com/pkg.T" are
// looked up directly.
func (e *Engine) TypeOf(expr string) (descriptor.Type, error) {
	expr = strings.TrimSpace(expr)
	if t, ok := e.lookupType(expr); ok {
		return descriptor.Of(t), nil
	}

	return descriptor.Parse(expr, e.lookupType)
}

// Splitter returns the configured splitter.
func (e *Engine) Splitter() *split.Splitter { return e.splitter }

// NullString reports the input that parses to nil, if one is configured.
func (e *Engine) NullString() (string, bool) { return e.nullString, e.hasNull }

// TypeNames returns the names known to the type catalog.
func (e *Engine) TypeNames() []string {
	names := make([]string, 0, len(e.catalog))
	for name := range e.catalog {
		names = append(names, name)
	}

	return names
}

func (e *Engine) lookupType(name string) (reflect.Type, bool) {
	t, ok := e.catalog[name]
	return t, ok
}

// chain returns the strategies to try for target, in order.
func (e *Engine) chain(target descriptor.Type) []namedStrategy {
	chain := make([]namedStrategy, 0, len(e.containers)+len(e.regular)+2)
	for _, r := range e.exact {
		if r.typ == target.Raw() {
			chain = append(chain, r.namedStrategy)
		}
	}
	for _, r := range e.assignable {
		if target.AssignableTo(r.typ) {
			chain = append(chain, r.namedStrategy)
		}
	}

	chain = append(chain, e.containers...)
	return append(chain, e.regular...)
}

// enter pushes target on the call path, failing once the depth budget is
// spent.
func (e *Engine) enter(target descriptor.Type, st *callState) error {
	if target.IsZero() {
		return &Error{Kind: ErrInvalidDescriptor, Cause: fmt.Errorf("empty target type")}
	}

	if st.depth() >= e.maxDepth {
		return &Error{Kind: ErrCyclicTargetType, Target: target, Path: st.names(target)}
	}

	st.push(target)
	return nil
}

func (e *Engine) resolve(input string, target descriptor.Type, st *callState) (any, error) {
	if err := e.enter(target, st); err != nil {
		return nil, err
	}
	defer st.pop()

	if e.preprocess != nil {
		input = e.preprocess(input)
	}

	if e.hasNull && input == e.nullString && nilable(target.Raw()) {
		return nil, nil
	}

	h := &Helper{engine: e, state: st}
	for _, ns := range e.chain(target) {
		out := ns.strategy.Attempt(input, target, h)
		if out.IsTryNext() {
			continue
		}

		if err := out.Err(); err != nil {
			e.logger.Debug("strategy failed", "strategy", ns.name, "target", target, "error", err)
			return nil, err
		}

		v, _ := out.Value()
		if v != nil && !reflect.TypeOf(v).AssignableTo(target.Raw()) {
			return nil, newError(ErrParseFailed, target, input,
				fmt.Errorf("strategy %s produced %T", ns.name, v))
		}

		e.logger.Debug("strategy matched", "strategy", ns.name, "target", target, "depth", st.depth())
		return v, nil
	}

	return nil, newError(ErrNoApplicableParser, target, "", nil)
}

// supports returns nil when target can be parsed, or the error Parse would
// fail with before looking at the input.
func (e *Engine) supports(target descriptor.Type, st *callState) error {
	if err := e.enter(target, st); err != nil {
		return err
	}
	defer st.pop()

	h := &Helper{engine: e, state: st}
	for _, ns := range e.chain(target) {
		p, ok := ns.strategy.(Prober)
		if !ok {
			return nil
		}

		matched, err := p.Supports(target, h)
		if matched || err != nil {
			return err
		}
	}

	return newError(ErrNoApplicableParser, target, "", nil)
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return true
	}

	return false
}

// assign turns a value produced for t into a reflect value that can be
// stored in a slot of type t.
func assign(v any, t reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}

	return reflect.ValueOf(v)
}

// Parse converts input into a T.
func Parse[T any](e *Engine, input string) (T, error) {
	return ParseAs[T](e, input, descriptor.For[T]())
}

// ParseAs converts input against an explicit descriptor whose raw type must
// be assignable to T. It is needed for parameterized family types.
func ParseAs[T any](e *Engine, input string, target descriptor.Type) (T, error) {
	var zero T

	v, err := e.Parse(input, target)
	if err != nil || v == nil {
		return zero, err
	}

	t, ok := v.(T)
	if !ok {
		return zero, newError(ErrInvalidDescriptor, target, input,
			fmt.Errorf("%T is not a %s", v, reflect.TypeFor[T]()))
	}

	return t, nil
}

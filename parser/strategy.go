package parser

import (
	"errors"
	"reflect"

	"type-parser/descriptor"
)

type outcomeKind int

const (
	outcomeTryNext outcomeKind = iota
	outcomeProduced
	outcomeFailed
)

// Outcome is the result of one strategy attempt. The zero Outcome is TryNext.
type Outcome struct {
	kind  outcomeKind
	value any
	err   error
}

// Produced reports a value. A nil value is a valid result, distinct from TryNext.
func Produced(v any) Outcome { return Outcome{kind: outcomeProduced, value: v} }

// TryNext reports that the strategy does not handle the target.
func TryNext() Outcome { return Outcome{} }

// Failed reports that the strategy matched but could not produce a value.
func Failed(err error) Outcome { return Outcome{kind: outcomeFailed, err: err} }

func (o Outcome) IsTryNext() bool { return o.kind == outcomeTryNext }

// Value returns the produced value and whether one was produced.
func (o Outcome) Value() (any, bool) { return o.value, o.kind == outcomeProduced }

// Err returns the failure, or nil.
func (o Outcome) Err() error { return o.err }

// Strategy is one link of the parser chain.
type Strategy interface {
	Attempt(input string, target descriptor.Type, h *Helper) Outcome
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(input string, target descriptor.Type, h *Helper) Outcome

func (f StrategyFunc) Attempt(input string, target descriptor.Type, h *Helper) Outcome {
	return f(input, target, h)
}

// Prober is implemented by strategies that can tell whether they handle a
// target without parsing anything. Supports reports whether Attempt would
// match target, and the error a matching Attempt is bound to fail with
// regardless of input. Registered strategies that do not implement it are
// assumed to handle every type they are registered for.
type Prober interface {
	Supports(target descriptor.Type, h *Helper) (matched bool, err error)
}

// Func adapts a plain text parser to Strategy. Errors become ErrParseFailed.
func Func[T any](fn func(input string) (T, error)) Strategy {
	return StrategyFunc(func(input string, target descriptor.Type, _ *Helper) Outcome {
		v, err := fn(input)
		if err != nil {
			return Failed(newError(ErrParseFailed, target, input, err))
		}

		return Produced(v)
	})
}

// Helper is handed to strategies. It exposes recursive parsing within the
// current top-level call and the configured splitter.
type Helper struct {
	engine *Engine
	state  *callState
}

// Parse resolves input against target as a nested call. It shares the
// recursion budget of the top-level call.
func (h *Helper) Parse(input string, target descriptor.Type) (any, error) {
	return h.engine.resolve(input, target, h.state)
}

// Supports is the dry-run counterpart of Parse. It returns nil when target
// can be parsed.
func (h *Helper) Supports(target descriptor.Type) error {
	return h.engine.supports(target, h.state)
}

// Split splits input into element substrings.
func (h *Helper) Split(input string) []string {
	return h.engine.splitter.Elements(input)
}

// SplitKeyValue splits a map entry into key and value.
func (h *Helper) SplitKeyValue(entry string) (key, value string, err error) {
	key, value, err = h.engine.splitter.KeyValue(entry)
	if err != nil {
		return "", "", &Error{Kind: ErrMalformedContainerEntry, Input: entry, Cause: err}
	}

	return key, value, nil
}

// Enum returns the registered constants of t.
func (h *Helper) Enum(t reflect.Type) (*descriptor.Enum, bool) {
	e, ok := h.engine.enums[t]
	return e, ok
}

// Engine returns the engine running the call.
func (h *Helper) Engine() *Engine { return h.engine }

// callState is the recursion frame of one top-level call.
type callState struct {
	path []descriptor.Type
}

func (s *callState) push(t descriptor.Type) { s.path = append(s.path, t) }
func (s *callState) pop()                   { s.path = s.path[:len(s.path)-1] }
func (s *callState) depth() int             { return len(s.path) }

func (s *callState) names(next descriptor.Type) []string {
	names := make([]string, 0, len(s.path)+1)
	for _, t := range s.path {
		names = append(names, t.String())
	}

	return append(names, next.String())
}

// skippable reports whether a member candidate may be skipped after its
// argument failed to parse with err.
func skippable(err error) bool {
	return kindOf(err) == ErrNoApplicableParser
}

// kindOf returns the kind of the outermost *Error in err's chain.
func kindOf(err error) error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}

	return nil
}

package parser

import (
	"errors"
	"fmt"
	"strings"

	"type-parser/descriptor"
)

// Error kinds. Every *Error returned by an Engine matches exactly one of them
// with errors.Is.
var (
	ErrNoApplicableParser           = errors.New("no applicable parser")
	ErrCyclicTargetType             = errors.New("cyclic target type")
	ErrContainerInstantiationFailed = errors.New("container instantiation failed")
	ErrFactoryInvocationFailed      = errors.New("factory invocation failed")
	ErrUnknownEnumConstant          = errors.New("unknown enum constant")
	ErrUnresolvableTypeName         = errors.New("unresolvable type name")
	ErrMalformedContainerEntry      = errors.New("malformed container entry")
	ErrInvalidDescriptor            = errors.New("invalid type descriptor")
	ErrParseFailed                  = errors.New("parse failed")
	ErrInvalidRegistration          = errors.New("invalid registration")
)

// Error is a structured conversion failure.
type Error struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Target is the type being parsed when the failure happened.
	Target descriptor.Type
	// Input is the text being parsed when the failure happened.
	Input string
	// Member names the factory or constructor involved, if any.
	Member string
	// Path lists the nested target types in progress, outermost first.
	Path []string
	// Names lists the valid constants for ErrUnknownEnumConstant.
	Names []string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())

	switch e.Kind {
	case ErrCyclicTargetType:
		if e.Member != "" {
			fmt.Fprintf(&b, " via %s", e.Member)
		}
		if len(e.Path) > 0 {
			fmt.Fprintf(&b, ": %s", strings.Join(e.Path, " -> "))
		}
	case ErrUnknownEnumConstant:
		fmt.Fprintf(&b, " %q for %s, valid names: [%s]", e.Input, e.Target, strings.Join(e.Names, ", "))
	case ErrUnresolvableTypeName, ErrMalformedContainerEntry:
		fmt.Fprintf(&b, " %q", e.Input)
	default:
		if !e.Target.IsZero() {
			fmt.Fprintf(&b, " for %s", e.Target)
		}
		if e.Member != "" {
			fmt.Fprintf(&b, " (%s)", e.Member)
		}
		if e.Input != "" {
			fmt.Fprintf(&b, " from %q", e.Input)
		}
	}

	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}

	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}

func newError(kind error, target descriptor.Type, input string, cause error) *Error {
	return &Error{Kind: kind, Target: target, Input: input, Cause: cause}
}

// withMember annotates a cyclic-type error with the factory or constructor
// that recursed into the cycle. The innermost annotation is kept.
func withMember(err error, member string) error {
	var pe *Error
	if !errors.As(err, &pe) || pe.Member != "" {
		return err
	}

	annotated := *pe
	annotated.Member = member

	return &annotated
}

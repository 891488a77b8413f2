package diagnostic

import (
	"errors"
	"fmt"
	"reflect"

	"type-parser/container"
	"type-parser/descriptor"
	"type-parser/internal/match"
	"type-parser/parser"
)

const (
	CodeUnresolvable    = "unresolvable-type"
	CodeNoParser        = "no-parser"
	CodeMissingTypeArgs = "missing-type-args"
	CodeRawCollection   = "raw-collection"
	CodeSupported       = "supported"
)

// MaxSuggestions bounds the names offered for an unresolvable type.
const MaxSuggestions = 3

// Check resolves each expression against e and records one diagnostic per
// expression.
func Check(e *parser.Engine, exprs ...string) Diagnostics {
	var d Diagnostics

	for _, expr := range exprs {
		d.Merge(checkOne(e, expr))
	}

	return d
}

func checkOne(e *parser.Engine, expr string) Diagnostics {
	var d Diagnostics

	target, err := e.TypeOf(expr)
	if err != nil {
		var unknown *descriptor.UnknownNameError
		if errors.As(err, &unknown) {
			d.AddError(CodeUnresolvable, err.Error(), expr, match.Suggest(unknown.Name, e.TypeNames(), MaxSuggestions)...)
		} else {
			d.AddError(CodeUnresolvable, err.Error(), expr)
		}

		return d
	}

	if !e.IsTargetTypeSupported(target) {
		d.AddError(CodeNoParser, fmt.Sprintf("no parser for %s", target), expr)
		return d
	}

	raw := target.Raw()
	switch {
	case target.IsParameterized():
	case implements(raw, container.MapType), isEnumSet(raw):
		d.AddError(CodeMissingTypeArgs, fmt.Sprintf("%s needs type arguments", target), expr)
		return d
	case implements(raw, container.CollectionType):
		d.AddWarning(CodeRawCollection, fmt.Sprintf("elements of %s parse as string", target), expr)
		return d
	}

	d.AddInfo(CodeSupported, fmt.Sprintf("%s is supported", target), expr)

	return d
}

func implements(t, iface reflect.Type) bool {
	return t.Kind() != reflect.Map && t.Implements(iface)
}

func isEnumSet(t reflect.Type) bool {
	return t == container.EnumSetType
}

package parser

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"type-parser/descriptor"
)

var (
	validate      = validator.New(validator.WithRequiredStructEnabled())
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.SetAliasTag("form")
}

// FormStruct parses "key=value" entries into a struct, or a pointer to one,
// using `form` field tags. Repeated keys fill slice fields. The result is
// checked against its `validate` tags.
//
// Register it per type:
//
//	b.RegisterParser(reflect.TypeFor[Options](), parser.FormStruct())
func FormStruct() Strategy {
	return formStrategy{}
}

type formStrategy struct{}

func (formStrategy) Attempt(input string, target descriptor.Type, h *Helper) Outcome {
	raw := target.Raw()
	base := raw
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return TryNext()
	}

	values := make(map[string][]string)
	for _, entry := range h.Split(input) {
		k, v, err := h.SplitKeyValue(entry)
		if err != nil {
			return Failed(err)
		}
		values[k] = append(values[k], v)
	}

	p := reflect.New(base)
	if err := schemaDecoder.Decode(p.Interface(), values); err != nil {
		return Failed(newError(ErrParseFailed, target, input, err))
	}

	if err := validate.Struct(p.Interface()); err != nil {
		return Failed(newError(ErrParseFailed, target, input, fmt.Errorf("validation: %w", err)))
	}

	if raw.Kind() == reflect.Pointer {
		return Produced(p.Interface())
	}

	return Produced(p.Elem().Interface())
}

func (formStrategy) Supports(target descriptor.Type, _ *Helper) (bool, error) {
	raw := target.Raw()
	if raw.Kind() == reflect.Pointer {
		raw = raw.Elem()
	}

	return raw.Kind() == reflect.Struct, nil
}

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"type-parser/options"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, err := options.ParseCategories(fl.Field().String())
		return err == nil
	})

	return v
}

// Validate checks c field by field. Every violation is reported.
func Validate(c *Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", field, fe.Param(), fe.Value())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, strings.ToLower(fe.Param()))
	case "category":
		return fmt.Sprintf("%s: unknown category %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s=%s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	}
}

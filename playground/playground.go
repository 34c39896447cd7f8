// Package playground adapts go-playground/validator as a rule-engine
// backend for the validated pipeline. Rules are declared with `validate`
// struct tags; failures are reported as a flat list under
// validated.KindPlayground, with dotted/indexed field paths derived from
// the engine's namespace and json tag names.
package playground

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/validated"
)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

// Engine returns the shared validator instance. It resolves field names
// from json tags, so error paths match the wire format of the payload.
// The engine caches struct metadata internally and is safe for
// concurrent use.
func Engine() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New()
		engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return engine
}

// Validator returns the rule-engine capability for T backed by the
// shared engine.
func Validator[T any]() validated.ValidateFunc[T] {
	return ValidatorWith[T](Engine())
}

// ValidatorWith returns the rule-engine capability for T backed by a
// caller-configured engine.
func ValidatorWith[T any](v *validator.Validate) validated.ValidateFunc[T] {
	return func(value T) *validated.Errors {
		err := v.Struct(value)
		if err == nil {
			return nil
		}

		var ferrs validator.ValidationErrors
		if !errors.As(err, &ferrs) {
			// InvalidValidationError: T is not something the engine can
			// inspect. Surface it as a single payload-level failure.
			return &validated.Errors{
				Kind: validated.KindPlayground,
				List: []validated.ValidationError{{Message: err.Error()}},
			}
		}

		list := make([]validated.ValidationError, 0, len(ferrs))
		for _, fe := range ferrs {
			list = append(list, validated.ValidationError{
				Field:   fieldPath(fe),
				Message: message(fe),
				Code:    fe.Tag(),
				Params:  params(fe),
			})
		}
		return &validated.Errors{Kind: validated.KindPlayground, List: list}
	}
}

// fieldPath strips the root struct name from the namespace, leaving the
// dotted/indexed path into the payload ("order.items[2].sku").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return fe.Field()
}

// params carries the rule parameter as structured context when present.
func params(fe validator.FieldError) map[string]any {
	if fe.Param() == "" {
		return nil
	}
	return map[string]any{"param": fe.Param()}
}

// message builds a human-readable message from the failed rule. Length
// rules word themselves differently for strings and collections than for
// numbers.
func message(fe validator.FieldError) string {
	lengthy := false
	switch fe.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		lengthy = true
	}

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "min":
		if lengthy {
			return "length must be at least " + fe.Param()
		}
		return "must be at least " + fe.Param()
	case "max":
		if lengthy {
			return "length must be at most " + fe.Param()
		}
		return "must be at most " + fe.Param()
	case "len":
		if lengthy {
			return "length must be exactly " + fe.Param()
		}
		return "must be exactly " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "eqfield":
		return "must match " + fe.Param()
	default:
		if fe.Param() == "" {
			return fmt.Sprintf("failed on the %q rule", fe.Tag())
		}
		return fmt.Sprintf("failed on the %q rule with parameter %q", fe.Tag(), fe.Param())
	}
}

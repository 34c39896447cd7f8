// Package ozzo adapts ozzo-validation as a rule-engine backend for the
// validated pipeline. Request types declare their rules in an ozzo
// Validate method; the engine's nested error map is converted into a
// validated.ErrorTree and reported under validated.KindOzzo.
package ozzo

import (
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrymomot/validated"
)

// Validator returns the rule-engine capability for T. T carries its own
// ozzo rules through the validation.Validatable interface:
//
//	type Account struct {
//		Name string `json:"name"`
//	}
//
//	func (a Account) Validate() error {
//		return validation.ValidateStruct(&a,
//			validation.Field(&a.Name, validation.Required, validation.Length(5, 0)),
//		)
//	}
func Validator[T validation.Validatable]() validated.ValidateFunc[T] {
	return func(v T) *validated.Errors {
		err := v.Validate()
		if err == nil {
			return nil
		}

		var verrs validation.Errors
		if !errors.As(err, &verrs) {
			// The Validate method failed with something other than field
			// errors. Report it as a single payload-level violation.
			return &validated.Errors{
				Kind: validated.KindOzzo,
				Tree: validated.ErrorTree{"": validated.Leaf(leaf("", err))},
			}
		}
		return &validated.Errors{Kind: validated.KindOzzo, Tree: tree(verrs)}
	}
}

// tree converts ozzo's nested error map. A nested map whose keys are all
// element indices marks a sequence-typed field; any other nested map is a
// struct-typed field; everything else is a rule violation on the field
// itself.
func tree(errs validation.Errors) validated.ErrorTree {
	t := make(validated.ErrorTree, len(errs))
	for field, err := range errs {
		if err == nil {
			continue
		}

		var nested validation.Errors
		if errors.As(err, &nested) {
			if items, ok := indexed(nested); ok {
				t[field] = validated.Indexed(items)
			} else {
				t[field] = validated.Nested(tree(nested))
			}
			continue
		}
		t[field] = validated.Leaf(leaf(field, err))
	}
	return t
}

// indexed converts a nested error map keyed by element indices. A scalar
// element's violation is recorded under the empty field name so its path
// keeps the "field[i]" form.
func indexed(errs validation.Errors) (map[int]validated.ErrorTree, bool) {
	items := make(map[int]validated.ErrorTree, len(errs))
	for key, err := range errs {
		i, convErr := strconv.Atoi(key)
		if convErr != nil || i < 0 {
			return nil, false
		}
		if err == nil {
			continue
		}

		var nested validation.Errors
		if errors.As(err, &nested) {
			items[i] = tree(nested)
			continue
		}
		items[i] = validated.ErrorTree{"": validated.Leaf(leaf("", err))}
	}
	return items, true
}

// leaf converts one ozzo error, keeping its code and parameters as
// structured context when the rule provides them.
func leaf(field string, err error) validated.ValidationError {
	ve := validated.ValidationError{Field: field, Message: err.Error()}

	var obj validation.ErrorObject
	if errors.As(err, &obj) {
		ve.Code = obj.Code()
		if params := obj.Params(); len(params) > 0 {
			ve.Params = params
		}
	}
	return ve
}

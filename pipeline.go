package validated

import "net/http"

// Bind is the inner extraction capability: it decodes the request payload
// into v. Implementations block while body bytes are still arriving and
// are expected to honor the request context, so cancelling the request
// unwinds the extraction together with the pipeline.
type Bind func(r *http.Request, v any) error

// ValidateFunc is the rule-engine capability for request type T. It is a
// synchronous, pure function of the decoded value: nil means the value
// passed every rule, a non-nil result carries the failure payload.
type ValidateFunc[T any] func(v T) *Errors

// Validatable is implemented by request types that carry their own rules
// instead of delegating to an external engine. A nil or empty result
// means the value is valid.
type Validatable interface {
	Validate() []ValidationError
}

// SelfValidator adapts the Validatable interface into a ValidateFunc.
// Both value and pointer receivers are recognized; types implementing
// neither are considered always valid. Failures are reported under
// KindCustom.
func SelfValidator[T any]() ValidateFunc[T] {
	return func(v T) *Errors {
		var errs []ValidationError
		if sv, ok := any(v).(Validatable); ok {
			errs = sv.Validate()
		} else if sv, ok := any(&v).(Validatable); ok {
			errs = sv.Validate()
		}
		if len(errs) == 0 {
			return nil
		}
		return &Errors{Kind: KindCustom, List: errs}
	}
}

// Extract drives the inner extraction to completion, then validates the
// decoded value. On success the value is returned wrapped in Validated. A
// bind failure is returned verbatim and validation is never attempted; if
// the request was cancelled while the extraction was in flight, the
// context error is returned instead and no validation or handler runs.
//
// On a validation failure the registry is consulted for the payload's
// kind: a registered handler decides the resulting error, otherwise the
// payload itself is returned ready for default rendering. A nil validate
// falls back to SelfValidator, so types implementing Validatable work
// without any wiring.
func Extract[T any](r *http.Request, bind Bind, validate ValidateFunc[T], reg *Registry) (Validated[T], error) {
	var v T
	if bind != nil {
		if err := bind(r, &v); err != nil {
			return Validated[T]{}, err
		}
	}
	if err := r.Context().Err(); err != nil {
		return Validated[T]{}, err
	}

	if validate == nil {
		validate = SelfValidator[T]()
	}
	if errs := validate(v); errs != nil {
		if h, ok := reg.Lookup(errs.Kind); ok {
			return Validated[T]{}, h(errs, r)
		}
		return Validated[T]{}, errs
	}
	return New(v), nil
}

// Package validated composes request extraction with a validation pass so
// handlers only ever see values that satisfied their rules.
//
// The pipeline wraps any extraction mechanism matching the Bind shape:
// once the payload is decoded, a rule-engine capability (ValidateFunc) is
// invoked, and the value reaches application code wrapped in Validated
// only when every rule passed. Failures are converted to HTTP responses
// either by the default plain-text rendering or by an ErrorHandler the
// application registered for that backend kind.
//
// Three interchangeable backends supply the rule-engine capability:
//
//   - types implementing Validatable validate themselves (KindCustom)
//   - package playground adapts go-playground/validator (KindPlayground)
//   - package ozzo adapts ozzo-validation (KindOzzo)
//
// Basic usage with the handler layer:
//
//	type CreateUserRequest struct {
//		Name  string `json:"name" validate:"required,min=5"`
//		Email string `json:"email" validate:"required,email"`
//	}
//
//	h := handler.HandlerFunc[handler.Context, CreateUserRequest](
//		func(ctx handler.Context, req validated.Validated[CreateUserRequest]) handler.Response {
//			return handler.JSON(req.Value())
//		},
//	)
//
//	http.HandleFunc("/users", handler.Wrap(h,
//		handler.WithBinder[handler.Context, CreateUserRequest](binder.BindJSON()),
//		handler.WithValidator[handler.Context](playground.Validator[CreateUserRequest]()),
//	))
//
// Custom error responses are registered per backend kind on a Registry
// owned by the application and passed down to Wrap:
//
//	reg := validated.NewRegistry().Set(validated.KindPlayground,
//		func(errs *validated.Errors, r *http.Request) error {
//			return handler.NewJSONError(http.StatusUnprocessableEntity, errs.Flatten())
//		})
package validated

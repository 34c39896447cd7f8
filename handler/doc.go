// Package handler adapts the validated extraction-validation pipeline to
// net/http with type-safe, generic handler functions.
//
// A handler never receives a raw request value: Wrap runs the configured
// binders, then the rule-engine capability, and invokes the handler with
// the result wrapped in validated.Validated. Handlers return a Response
// that renders itself.
//
//	type CreateUserRequest struct {
//		Name  string `json:"name" validate:"required,min=5"`
//		Email string `json:"email" validate:"required,email"`
//	}
//
//	createUser := handler.HandlerFunc[handler.Context, CreateUserRequest](
//		func(ctx handler.Context, req validated.Validated[CreateUserRequest]) handler.Response {
//			return handler.JSON(req.Value())
//		},
//	)
//
//	http.HandleFunc("/users", handler.Wrap(createUser,
//		handler.WithBinder[handler.Context, CreateUserRequest](binder.BindJSON()),
//		handler.WithValidator[handler.Context](playground.Validator[CreateUserRequest]()),
//	))
//
// # Error handling
//
// Failures from binding, validation, or rendering flow into an
// ErrorHandler. The default renders validation failures as the standard
// plain-text 400 body and maps binding failures to client errors;
// NewErrorHandler produces the same responses with structured logging.
// Applications customize failure replies per validation backend through a
// validated.Registry attached with WithRegistry: a registered handler's
// returned error is trusted as-is, and if it implements Response it
// renders itself with full authority over status and body.
package handler

package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/validated"
	"github.com/dmitrymomot/validated/binder"
)

// HandlerFunc provides type-safe HTTP request handling over validated
// request values. C must implement the Context interface, R can be any
// request type; the handler only ever receives R wrapped in
// validated.Validated, proving the value passed its rules.
//
// Example:
//
//	h := handler.HandlerFunc[handler.Context, CreateUserRequest](
//		func(ctx handler.Context, req validated.Validated[CreateUserRequest]) handler.Response {
//			user := createUser(req.Ptr().Name, req.Ptr().Email)
//			return handler.JSON(user)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req validated.Validated[R]) Response

// Response renders itself to an http.ResponseWriter. Implementations set
// headers, status code, and write the body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorHandler handles errors from binding, validation, or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// Decorators are applied in order, the first one being the outermost
// wrapper.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []validated.Bind
	validator      validated.ValidateFunc[R]
	registry       *validated.Registry
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinder sets a single request binder.
func WithBinder[C Context, R any](b validated.Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []validated.Bind{b}
		}
	}
}

// WithBinders appends request binders that run in order. A binder
// returning binder.ErrBinderNotApplicable is skipped so body and query
// binders can share a chain.
//
// Example:
//
//	handler.Wrap(h,
//		handler.WithBinders[handler.Context, SearchRequest](
//			binder.BindQuery(),
//			binder.BindJSON(),
//		),
//	)
func WithBinders[C Context, R any](binders ...validated.Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithValidator sets the rule-engine capability used after extraction.
// Without it, types implementing validated.Validatable validate
// themselves and everything else passes.
func WithValidator[C Context, R any](v validated.ValidateFunc[R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithRegistry attaches the application's error-handler registry. The
// registry must be fully populated before the server starts accepting
// requests.
func WithRegistry[C Context, R any](reg *validated.Registry) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.registry = reg
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators around the handler, first one outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// Wrap converts a typed HandlerFunc into an http.HandlerFunc running the
// full extraction-validation pipeline: binders decode the request,
// the validator checks the decoded value, and only then does the handler
// run with the wrapped result. Extraction and validation failures go
// through the error handler, except errors that implement Response
// themselves (typically produced by a registered validation error
// handler), which render with full authority over the reply.
//
//	http.HandleFunc("/users", handler.Wrap(createUser,
//		handler.WithBinder[handler.Context, CreateUserRequest](binder.BindJSON()),
//		handler.WithValidator[handler.Context](playground.Validator[CreateUserRequest]()),
//		handler.WithRegistry[handler.Context, CreateUserRequest](registry),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			ctx := NewContext(w, r)
			if c, ok := any(ctx).(C); ok {
				return c
			}
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	bind := composeBinders(cfg.binders)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		req, err := validated.Extract(r, bind, cfg.validator, cfg.registry)
		if err != nil {
			if resp, ok := err.(Response); ok {
				if renderErr := resp.Render(w, r); renderErr != nil {
					cfg.errorHandler(ctx, renderErr)
				}
				return
			}
			cfg.errorHandler(ctx, err)
			return
		}

		response := finalHandler(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

// composeBinders chains binders into a single Bind, skipping the ones
// that report themselves not applicable to the request.
func composeBinders(binders []validated.Bind) validated.Bind {
	if len(binders) == 0 {
		return nil
	}
	return func(r *http.Request, v any) error {
		for _, bind := range binders {
			if err := bind(r, v); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				return err
			}
		}
		return nil
	}
}

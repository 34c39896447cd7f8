package validated

import "net/http"

// ErrorHandler converts a validation failure into the error the request
// finishes with. The handler receives the full unflattened payload and a
// read-only view of the request; whatever it returns is used verbatim, so
// it has full authority over status code and body shape.
//
// One handler value is shared by every concurrent request that resolves
// it. It must not rely on exclusive access to shared mutable state unless
// it synchronizes that state itself.
type ErrorHandler func(errs *Errors, r *http.Request) error

// Registry holds at most one ErrorHandler per backend kind. It belongs to
// the application instance: populate it while the application is being
// built, then treat it as read-only for the lifetime of the instance.
// Lookups take no locks; the single-writer-then-many-readers discipline
// is what makes concurrent lookups safe. Re-registration after requests
// have started is not guaranteed to be observed by in-flight requests.
type Registry struct {
	handlers map[Kind]ErrorHandler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Kind]ErrorHandler)}
}

// Set registers h for kind, replacing any previous registration for that
// kind. Passing nil removes the slot. Returns the registry for chaining.
func (reg *Registry) Set(kind Kind, h ErrorHandler) *Registry {
	if h == nil {
		delete(reg.handlers, kind)
		return reg
	}
	reg.handlers[kind] = h
	return reg
}

// Lookup returns the handler registered for kind, if any. It never blocks
// and is safe on a nil registry, so the pipeline can call it without
// knowing whether anything was registered.
func (reg *Registry) Lookup(kind Kind) (ErrorHandler, bool) {
	if reg == nil {
		return nil, false
	}
	h, ok := reg.handlers[kind]
	return h, ok
}

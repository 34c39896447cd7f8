// Package binder provides the inner extraction capabilities for the
// validation pipeline: closures matching the validated.Bind shape that
// decode JSON bodies, form data, and query parameters into typed request
// values. Binding happens strictly before validation; a binder failure
// short-circuits the pipeline and validation never runs.
package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrMissingContentType   = errors.New("missing content type")

	// ErrBinderNotApplicable signals that a binder does not handle this
	// request and the next binder in the chain should run. It marks a
	// skip, not a failure.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)

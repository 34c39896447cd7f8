package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// BindJSON creates a JSON body binder.
//
// Decoding is strict: unknown fields are rejected and trailing data after
// the JSON document is an error. Requests without a Content-Type header
// are reported as not applicable so the binder can share a chain with
// BindQuery. The body read blocks while bytes are still arriving and
// unwinds with the request context, so this is the suspension point of
// the extraction-validation pipeline.
//
// Example:
//
//	http.HandleFunc("/users", handler.Wrap(createUser,
//		handler.WithBinder[handler.Context, CreateUserRequest](binder.BindJSON()),
//	))
func BindJSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := requireMediaType(r, "application/json"); err != nil {
			return err
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		// Ensure the entire body was consumed. A second Decode also
		// catches stray closing delimiters that More() would miss.
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON document", ErrInvalidJSON)
		}
		return nil
	}
}

// requireMediaType checks the request Content-Type against want, ignoring
// parameters like charset. A request without a Content-Type is reported
// as not applicable rather than as a hard failure, so body binders step
// aside in a chain with BindQuery instead of rejecting body-less
// requests; a present-but-wrong media type is still an error.
func requireMediaType(r *http.Request, want string) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: %w: expected %s", ErrBinderNotApplicable, ErrMissingContentType, want)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	if mediaType != want {
		return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mediaType, want)
	}
	return nil
}

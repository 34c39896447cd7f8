package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/validated"
)

// JSONResponse is the standard JSON response envelope.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information for JSON rendering.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets a custom HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to the response envelope.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a JSON response. Plain values become the data payload;
// errors are converted into the error envelope with a status derived from
// their type.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorToDetail converts an error to an ErrorDetail and sets the status.
func errorToDetail(err error, status *int) *ErrorDetail {
	*status = http.StatusInternalServerError
	code := "internal_error"
	message := err.Error()

	var verrs *validated.Errors
	if errors.As(err, &verrs) {
		*status = http.StatusUnprocessableEntity
		detail := &ErrorDetail{
			Code:    "validation_error",
			Message: "validation failed",
		}
		flat := verrs.Flatten()
		if len(flat) > 0 {
			detail.Details = make(map[string][]string, len(flat))
			for _, fe := range flat {
				detail.Details[fe.Path] = append(detail.Details[fe.Path], fe.Err.Message)
			}
		}
		return detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		code = httpErr.Key
		message = http.StatusText(httpErr.Code)
	}

	return &ErrorDetail{Code: code, Message: message}
}

// JSONError is both an error and a Response. Validation error handlers
// registered on a validated.Registry can return one to take full control
// of the status code and body shape of the failure reply.
//
//	reg.Set(validated.KindPlayground, func(errs *validated.Errors, r *http.Request) error {
//		return handler.NewJSONError(http.StatusUnprocessableEntity, map[string]any{
//			"message": "invalid payload",
//			"errors":  errs.Flatten(),
//		})
//	})
type JSONError struct {
	Status int
	Body   any
}

// NewJSONError creates a JSONError with the given status and body.
func NewJSONError(status int, body any) JSONError {
	return JSONError{Status: status, Body: body}
}

// Error implements the error interface.
func (e JSONError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
}

// Render implements the Response interface.
func (e JSONError) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Status)
	return json.NewEncoder(w).Encode(e.Body)
}

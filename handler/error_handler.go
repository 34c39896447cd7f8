package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/validated"
	"github.com/dmitrymomot/validated/binder"
)

// defaultErrorHandler provides standard HTTP error responses: validation
// failures render the plain-text 400 body, HTTPError uses its own status
// code, binding failures map to client errors, everything else is a 500.
func defaultErrorHandler[C Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	var verrs *validated.Errors
	if errors.As(err, &verrs) {
		writeValidationErrors(w, verrs)
		return
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Key, httpErr.Code)
		return
	}

	http.Error(w, err.Error(), statusForError(err))
}

// statusForError maps non-validation errors to a status code.
func statusForError(err error) int {
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType),
		errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidQuery):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeValidationErrors renders the default 400 response for a validation
// failure. The body is written verbatim, without the trailing newline
// http.Error would add.
func writeValidationErrors(w http.ResponseWriter, errs *validated.Errors) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = io.WriteString(w, formatValidationErrors(errs))
}

// formatValidationErrors builds the default plain-text body: a header
// line followed by one line per flattened error in depth-first field
// order. Flat-list payloads keep the historical tab indentation in front
// of every line; tree payloads carry none. The inconsistency is inherited
// behavior and kept so default output stays stable per backend.
func formatValidationErrors(errs *validated.Errors) string {
	indent := "\t"
	if errs.Tree != nil {
		indent = ""
	}

	flat := errs.Flatten()
	lines := make([]string, 0, len(flat))
	for _, fe := range flat {
		if fe.Path == "" {
			lines = append(lines, indent+fe.Err.Message)
			continue
		}
		lines = append(lines, indent+fe.Path+": "+fe.Err.Message)
	}
	return "Validation errors in fields:\n" + strings.Join(lines, "\n")
}

// ErrorInfo contains classified error information.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

// classifyError analyzes the error and returns structured information for
// logging and rendering.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	} else if status := statusForError(err); status != http.StatusInternalServerError {
		info.StatusCode = status
		info.Message = err.Error()
	}

	// Validation failures override anything else.
	var verrs *validated.Errors
	if errors.As(err, &verrs) {
		info.StatusCode = http.StatusBadRequest
		info.Message = formatValidationErrors(verrs)
	}

	if info.StatusCode >= http.StatusBadRequest && info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	} else {
		info.LogLevel = slog.LevelError
	}
	return info
}

// NewErrorHandler creates an error handler that logs every failure with
// request context before rendering the same responses as the default
// handler. Configure it once in main and pass it to every Wrap call.
func NewErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx C, err error) {
		info := classifyError(err)

		log.LogAttrs(ctx.Request().Context(), info.LogLevel, "request error",
			slog.String("error", err.Error()),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Request().URL.Path),
			slog.String("component", "error_handler"),
		)

		var verrs *validated.Errors
		if errors.As(err, &verrs) {
			writeValidationErrors(ctx.ResponseWriter(), verrs)
			return
		}
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
	}
}

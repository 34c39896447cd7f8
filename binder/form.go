package binder

import (
	"fmt"
	"net/http"
)

// BindForm creates a binder for application/x-www-form-urlencoded bodies.
//
// Struct fields are matched by the `form` tag, falling back to the
// lowercased field name; `form:"-"` skips a field. Supported field types
// are strings, integer and float types, bools, pointers to those, and
// slices of them (multi-value fields repeat the parameter or separate
// values with commas). Requests without a Content-Type header are
// reported as not applicable so the binder can share a chain with
// BindQuery.
//
// Example:
//
//	type LoginRequest struct {
//		Username string   `form:"username"`
//		Remember bool     `form:"remember"`
//		Roles    []string `form:"roles"`
//	}
func BindForm() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := requireMediaType(r, "application/x-www-form-urlencoded"); err != nil {
			return err
		}
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return bindValues(v, "form", r.PostForm, ErrInvalidForm)
	}
}

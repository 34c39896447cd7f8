package binder

import "net/http"

// BindQuery creates a query parameter binder.
//
// Struct fields are matched by the `query` tag with the same conventions
// and supported types as BindForm. The binder applies to every request,
// so it composes with body binders in a multi-binder chain.
//
// Example:
//
//	type SearchRequest struct {
//		Query string   `query:"q"`
//		Page  int      `query:"page"`
//		Tags  []string `query:"tags"`
//	}
func BindQuery() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindValues(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}

package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated/binder"
)

type searchRequest struct {
	Query    string   `query:"q"`
	Page     int      `query:"page"`
	PageSize uint     `query:"page_size"`
	MinScore float64  `query:"min_score"`
	Tags     []string `query:"tags"`
	Active   *bool    `query:"active"`
}

func TestBindQuery(t *testing.T) {
	t.Parallel()
	bind := binder.BindQuery()

	t.Run("binds scalar types", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/search?q=go&page=2&page_size=50&min_score=0.5", nil)

		var req searchRequest
		require.NoError(t, bind(r, &req))
		assert.Equal(t, "go", req.Query)
		assert.Equal(t, 2, req.Page)
		assert.Equal(t, uint(50), req.PageSize)
		assert.Equal(t, 0.5, req.MinScore)
	})

	t.Run("binds repeated parameters into a slice", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/search?tags=go&tags=web", nil)

		var req searchRequest
		require.NoError(t, bind(r, &req))
		assert.Equal(t, []string{"go", "web"}, req.Tags)
	})

	t.Run("binds optional pointer field", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/search?active=true", nil)

		var req searchRequest
		require.NoError(t, bind(r, &req))
		require.NotNil(t, req.Active)
		assert.True(t, *req.Active)
	})

	t.Run("no parameters leaves zero values", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/search", nil)

		var req searchRequest
		require.NoError(t, bind(r, &req))
		assert.Empty(t, req.Query)
		assert.Nil(t, req.Active)
	})

	t.Run("invalid numeric value", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/search?page=first", nil)

		var req searchRequest
		assert.ErrorIs(t, bind(r, &req), binder.ErrInvalidQuery)
	})

	t.Run("non-struct target", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/search?q=go", nil)

		var s string
		assert.ErrorIs(t, bind(r, &s), binder.ErrInvalidQuery)
	})
}

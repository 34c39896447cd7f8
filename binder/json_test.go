package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated/binder"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestBindJSON(t *testing.T) {
	t.Parallel()
	bind := binder.BindJSON()

	t.Run("decodes valid body", func(t *testing.T) {
		t.Parallel()
		var req createUserRequest
		err := bind(jsonRequest(`{"name":"alice","email":"alice@example.com"}`), &req)
		require.NoError(t, err)
		assert.Equal(t, "alice", req.Name)
		assert.Equal(t, "alice@example.com", req.Email)
	})

	t.Run("accepts content type with charset", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice"}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var req createUserRequest
		assert.NoError(t, bind(r, &req))
	})

	t.Run("missing content type is not applicable", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))

		var req createUserRequest
		err := bind(r, &req)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("wrong media type", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=alice"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req createUserRequest
		assert.ErrorIs(t, bind(r, &req), binder.ErrUnsupportedMediaType)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		var req createUserRequest
		assert.ErrorIs(t, bind(jsonRequest(""), &req), binder.ErrInvalidJSON)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		var req createUserRequest
		assert.ErrorIs(t, bind(jsonRequest(`{"name":`), &req), binder.ErrInvalidJSON)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		t.Parallel()
		var req createUserRequest
		assert.ErrorIs(t, bind(jsonRequest(`{"name":"a","admin":true}`), &req), binder.ErrInvalidJSON)
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		t.Parallel()
		var req createUserRequest
		assert.ErrorIs(t, bind(jsonRequest(`{"name":"a"}{"name":"b"}`), &req), binder.ErrInvalidJSON)
	})

	t.Run("trailing closing delimiter rejected", func(t *testing.T) {
		t.Parallel()
		var req createUserRequest
		assert.ErrorIs(t, bind(jsonRequest(`{"name":"a"}]`), &req), binder.ErrInvalidJSON)
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()
		var req createUserRequest
		assert.ErrorIs(t, bind(jsonRequest(`{"name":42}`), &req), binder.ErrInvalidJSON)
	})
}

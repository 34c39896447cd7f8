package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated/binder"
)

type loginRequest struct {
	Username string   `form:"username"`
	Password string   `form:"password"`
	Remember bool     `form:"remember"`
	Attempts int      `form:"attempts"`
	Roles    []string `form:"roles"`
	Ref      *string  `form:"ref"`
	Internal string   `form:"-"`
	Plain    string
}

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestBindForm(t *testing.T) {
	t.Parallel()
	bind := binder.BindForm()

	t.Run("binds tagged and untagged fields", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		err := bind(formRequest(url.Values{
			"username": {"alice"},
			"password": {"secret"},
			"remember": {"true"},
			"attempts": {"3"},
			"plain":    {"untagged"},
		}), &req)

		require.NoError(t, err)
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "secret", req.Password)
		assert.True(t, req.Remember)
		assert.Equal(t, 3, req.Attempts)
		assert.Equal(t, "untagged", req.Plain)
	})

	t.Run("binds multi-value and pointer fields", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		err := bind(formRequest(url.Values{
			"roles": {"admin", "editor"},
			"ref":   {"newsletter"},
		}), &req)

		require.NoError(t, err)
		assert.Equal(t, []string{"admin", "editor"}, req.Roles)
		require.NotNil(t, req.Ref)
		assert.Equal(t, "newsletter", *req.Ref)
	})

	t.Run("comma-separated slice values", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		err := bind(formRequest(url.Values{"roles": {"admin, editor"}}), &req)
		require.NoError(t, err)
		assert.Equal(t, []string{"admin", "editor"}, req.Roles)
	})

	t.Run("skipped field stays zero", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		err := bind(formRequest(url.Values{"-": {"x"}, "internal": {"x"}}), &req)
		require.NoError(t, err)
		assert.Empty(t, req.Internal)
	})

	t.Run("missing fields keep zero values", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		err := bind(formRequest(url.Values{"username": {"alice"}}), &req)
		require.NoError(t, err)
		assert.Empty(t, req.Password)
		assert.Nil(t, req.Ref)
	})

	t.Run("invalid int value", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		err := bind(formRequest(url.Values{"attempts": {"many"}}), &req)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("wrong media type", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "application/json")

		var req loginRequest
		assert.ErrorIs(t, bind(r, &req), binder.ErrUnsupportedMediaType)
	})

	t.Run("missing content type is not applicable", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		var req loginRequest
		err := bind(r, &req)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})
}

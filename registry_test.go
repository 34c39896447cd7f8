package validated_test

import (
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("lookup on empty registry", func(t *testing.T) {
		t.Parallel()
		reg := validated.NewRegistry()
		h, ok := reg.Lookup(validated.KindCustom)
		assert.False(t, ok)
		assert.Nil(t, h)
	})

	t.Run("lookup on nil registry is safe", func(t *testing.T) {
		t.Parallel()
		var reg *validated.Registry
		_, ok := reg.Lookup(validated.KindPlayground)
		assert.False(t, ok)
	})

	t.Run("set and lookup per kind", func(t *testing.T) {
		t.Parallel()
		reg := validated.NewRegistry().
			Set(validated.KindCustom, func(errs *validated.Errors, r *http.Request) error {
				return errors.New("custom")
			}).
			Set(validated.KindOzzo, func(errs *validated.Errors, r *http.Request) error {
				return errors.New("ozzo")
			})

		h, ok := reg.Lookup(validated.KindCustom)
		require.True(t, ok)
		assert.EqualError(t, h(nil, nil), "custom")

		h, ok = reg.Lookup(validated.KindOzzo)
		require.True(t, ok)
		assert.EqualError(t, h(nil, nil), "ozzo")

		_, ok = reg.Lookup(validated.KindPlayground)
		assert.False(t, ok)
	})

	t.Run("last registration wins", func(t *testing.T) {
		t.Parallel()
		reg := validated.NewRegistry().
			Set(validated.KindCustom, func(errs *validated.Errors, r *http.Request) error {
				return errors.New("first")
			}).
			Set(validated.KindCustom, func(errs *validated.Errors, r *http.Request) error {
				return errors.New("second")
			})

		h, ok := reg.Lookup(validated.KindCustom)
		require.True(t, ok)
		assert.EqualError(t, h(nil, nil), "second")
	})

	t.Run("setting nil removes the slot", func(t *testing.T) {
		t.Parallel()
		reg := validated.NewRegistry().
			Set(validated.KindCustom, func(errs *validated.Errors, r *http.Request) error {
				return errors.New("custom")
			}).
			Set(validated.KindCustom, nil)

		_, ok := reg.Lookup(validated.KindCustom)
		assert.False(t, ok)
	})

	t.Run("concurrent lookups after registration", func(t *testing.T) {
		t.Parallel()
		reg := validated.NewRegistry().
			Set(validated.KindCustom, func(errs *validated.Errors, r *http.Request) error {
				return errors.New("shared")
			})

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				h, ok := reg.Lookup(validated.KindCustom)
				assert.True(t, ok)
				assert.EqualError(t, h(nil, nil), "shared")
			}()
		}
		wg.Wait()
	})
}

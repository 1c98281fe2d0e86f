package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/postboard/internal"
	"github.com/dmitrymomot/postboard/middlewares"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	t.Run("logs status and size", func(t *testing.T) {
		t.Parallel()

		c, logs := newLoggedContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/users/select", nil))
		err := middlewares.RequestLogger()(func(c internal.Context) error {
			return c.String(http.StatusOK, "hello")
		})(c)
		require.NoError(t, err)

		out := logs.String()
		assert.Contains(t, out, `"level":"INFO"`)
		assert.Contains(t, out, `"method":"POST"`)
		assert.Contains(t, out, `"path":"/users/select"`)
		assert.Contains(t, out, `"status":200`)
		assert.Contains(t, out, `"bytes":5`)
		assert.Contains(t, out, `"duration"`)
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		t.Parallel()

		c, logs := newLoggedContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
		err := middlewares.RequestLogger()(func(c internal.Context) error {
			return c.NoContent(http.StatusNotFound)
		})(c)
		require.NoError(t, err)
		assert.Contains(t, logs.String(), `"level":"WARN"`)
		assert.Contains(t, logs.String(), `"status":404`)
	})

	t.Run("returned errors log at error and pass through", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("broken")
		c, logs := newLoggedContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.RequestLogger()(func(internal.Context) error { return sentinel })(c)
		assert.ErrorIs(t, err, sentinel)
		assert.Contains(t, logs.String(), `"level":"ERROR"`)
		assert.Contains(t, logs.String(), `"error":"broken"`)
	})

	t.Run("skipped paths", func(t *testing.T) {
		t.Parallel()

		c, logs := newLoggedContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))
		err := middlewares.RequestLogger(middlewares.WithSkipPaths("/health/live"))(func(c internal.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)
		assert.Empty(t, logs.String())
	})
}

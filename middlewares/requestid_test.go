package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/postboard/internal"
	"github.com/dmitrymomot/postboard/middlewares"
	"github.com/dmitrymomot/postboard/pkg/logger"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates a uuid when absent", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		c := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		var captured string
		err := middlewares.RequestID()(func(c internal.Context) error {
			captured = middlewares.GetRequestID(c)
			return nil
		})(c)
		require.NoError(t, err)

		_, parseErr := uuid.Parse(captured)
		assert.NoError(t, parseErr)
		assert.Equal(t, captured, rec.Header().Get("X-Request-ID"))
	})

	t.Run("keeps an upstream id", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "corr-123")
		rec := httptest.NewRecorder()

		var captured string
		err := middlewares.RequestID()(func(c internal.Context) error {
			captured = middlewares.GetRequestID(c)
			return nil
		})(newTestContext(rec, req))
		require.NoError(t, err)
		assert.Equal(t, "corr-123", captured)
		assert.Equal(t, "corr-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("custom generator and header", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		mw := middlewares.RequestID(
			middlewares.WithRequestIDGenerator(func() string { return "fixed" }),
			middlewares.WithRequestIDResponseHeader("X-Trace"),
			middlewares.WithRequestIDHeaders("X-Trace"),
		)
		err := mw(func(internal.Context) error { return nil })(
			newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		require.NoError(t, err)
		assert.Equal(t, "fixed", rec.Header().Get("X-Trace"))
		assert.Empty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()
		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Empty(t, middlewares.GetRequestID(c))
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(logger.WithContextExtractors(
		slog.NewTextHandler(&buf, nil),
		middlewares.RequestIDExtractor(),
	))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")

	err := middlewares.RequestID()(func(c internal.Context) error {
		log.InfoContext(c, "handled")
		return nil
	})(newTestContext(httptest.NewRecorder(), req))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "request_id=req-42")

	_, ok := middlewares.RequestIDExtractor()(req.Context())
	assert.False(t, ok)
}

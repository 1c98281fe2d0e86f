package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, false)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rw.Status())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, rw.Written())
}

func TestResponseWriter_HTMX(t *testing.T) {
	t.Parallel()

	for _, code := range []int{http.StatusOK, http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway} {
		rec := httptest.NewRecorder()
		rw := NewResponseWriter(rec, true)

		rw.WriteHeader(code)

		assert.Equal(t, code, rw.Status())
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestResponseWriter_Write(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, false)

	n, err := rw.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	_, _ = rw.Write([]byte(" world"))

	assert.Equal(t, http.StatusOK, rw.Status())
	assert.EqualValues(t, 11, rw.Size())
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_OnBeforeWrite(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, false)

	calls := 0
	rw.OnBeforeWrite(func() {
		calls++
		rw.Header().Set("X-Hook", "ran")
	})

	_, _ = rw.Write([]byte("a"))
	_, _ = rw.Write([]byte("b"))

	assert.Equal(t, 1, calls)
	assert.Equal(t, "ran", rec.Header().Get("X-Hook"))
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, false)
	assert.Same(t, rec, rw.Unwrap())

	rw.Flush()
	assert.True(t, rec.Flushed)
}

package assets_test

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/postboard/internal"
	"github.com/dmitrymomot/postboard/internal/assets"
)

func TestStylesheet(t *testing.T) {
	t.Parallel()

	css, err := fs.ReadFile(assets.FS, assets.Dir+"/app.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), ".hide {\n  display: none;\n}")
}

func TestServedUnderStatic(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithStaticFiles("/static/", assets.FS, assets.Dir))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rec.Body.String(), ".comments")
}

package internal_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/postboard/internal"
	"github.com/dmitrymomot/postboard/pkg/cookie"
	"github.com/dmitrymomot/postboard/pkg/htmx"
	"github.com/dmitrymomot/postboard/pkg/logger"
)

type html string

func (h html) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(h))
	return err
}

func newTestContext(t *testing.T, req *http.Request) (internal.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	return internal.NewContext(rec, req, logger.NewNope(), nil), rec
}

func htmxRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(htmx.HeaderHXRequest, "true")
	return req
}

func TestContext_Render(t *testing.T) {
	t.Parallel()

	t.Run("plain request keeps status and ignores htmx options", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestContext(t, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, c.Render(http.StatusNotFound, html("<main></main>"),
			htmx.WithReswap(htmx.SwapOuterHTML),
			htmx.WithOOB(html("<div id=\"x\" hx-swap-oob=\"true\"></div>")),
		))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<main></main>", rec.Body.String())
		assert.Empty(t, rec.Header().Get(htmx.HeaderHXReswap))
	})

	t.Run("htmx request applies headers and oob", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestContext(t, htmxRequest(http.MethodPost, "/users/select"))
		require.NoError(t, c.Render(http.StatusOK, html("<main></main>"),
			htmx.WithReswap(htmx.SwapOuterHTML),
			htmx.WithOOB(html("<div id=\"x\" hx-swap-oob=\"true\"></div>")),
		))

		assert.Equal(t, "outerHTML", rec.Header().Get(htmx.HeaderHXReswap))
		assert.Equal(t, `<main></main><div id="x" hx-swap-oob="true"></div>`, rec.Body.String())
	})

	t.Run("render partial", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestContext(t, htmxRequest(http.MethodGet, "/"))
		require.NoError(t, c.RenderPartial(http.StatusOK, html("full"), html("partial")))
		assert.Equal(t, "partial", rec.Body.String())

		c, rec = newTestContext(t, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, c.RenderPartial(http.StatusOK, html("full"), html("partial")))
		assert.Equal(t, "full", rec.Body.String())
	})
}

func TestContext_Responses(t *testing.T) {
	t.Parallel()

	c, rec := newTestContext(t, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, c.JSON(http.StatusCreated, map[string]int{"id": 1}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
	assert.True(t, c.Written())

	c, rec = newTestContext(t, httptest.NewRequest(http.MethodGet, "/", nil))
	c.SetHeader("X-Page", "p-1")
	require.NoError(t, c.NoContent(http.StatusNoContent))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "p-1", rec.Header().Get("X-Page"))
}

func TestContext_Redirect(t *testing.T) {
	t.Parallel()

	c, rec := newTestContext(t, htmxRequest(http.MethodPost, "/users/select"))
	require.NoError(t, c.Redirect("/"))
	assert.Equal(t, "/", rec.Header().Get(htmx.HeaderHXRedirect))

	c, rec = newTestContext(t, httptest.NewRequest(http.MethodPost, "/users/select", nil))
	require.NoError(t, c.Redirect("/"))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestContext_Request(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/?q=1", strings.NewReader("userId=4"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Test", "yes")

	c, _ := newTestContext(t, req)
	assert.Equal(t, "1", c.Query("q"))
	assert.Equal(t, "4", c.Form("userId"))
	assert.Equal(t, "yes", c.Header("X-Test"))
	assert.False(t, c.IsHTMX())

	type key struct{}
	c.Set(key{}, "v")
	assert.Equal(t, "v", c.Get(key{}))
	assert.Equal(t, "v", c.Value(key{}))
	assert.Equal(t, "v", c.Request().Context().Value(key{}))
}

func TestContext_Cookies(t *testing.T) {
	t.Parallel()

	cookies, err := cookie.New(cookie.WithSecret(strings.Repeat("k", 32)))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c := internal.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil, cookies)
	require.NoError(t, c.SetCookie("postboard_page", "p-1"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	c = internal.NewContext(httptest.NewRecorder(), req, nil, cookies)

	got, err := c.Cookie("postboard_page")
	require.NoError(t, err)
	assert.Equal(t, "p-1", got)

	_, err = c.Cookie("missing")
	require.ErrorIs(t, err, cookie.ErrNotFound)

	rec = httptest.NewRecorder()
	internal.NewContext(rec, req, nil, cookies).DeleteCookie("postboard_page")
	deleted := rec.Result().Cookies()
	require.Len(t, deleted, 1)
	assert.Equal(t, "postboard_page", deleted[0].Name)
	assert.Empty(t, deleted[0].Value)
	assert.Negative(t, deleted[0].MaxAge)
}

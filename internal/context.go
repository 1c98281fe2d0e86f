package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/postboard/pkg/cookie"
	"github.com/dmitrymomot/postboard/pkg/htmx"
)

// Component is anything that renders HTML. templ.Component satisfies it.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context provides request/response access and helper methods.
// It implements context.Context by delegating to the request context.
type Context interface {
	context.Context

	Request() *http.Request
	Response() http.ResponseWriter
	Context() context.Context

	// Param returns a URL path parameter, or "" if absent.
	Param(name string) string

	// Query returns a query parameter, or "" if absent.
	Query(name string) string

	// Form returns a form value, parsing the body on first access.
	Form(name string) string

	Header(name string) string
	SetHeader(name, value string)

	JSON(code int, v any) error
	String(code int, s string) error
	NoContent(code int) error

	// Redirect redirects both plain and htmx requests.
	Redirect(url string) error

	// Error builds an HTTPError without writing it. Return it from the
	// handler to reach the ErrorHandler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	IsHTMX() bool

	// Render writes component as HTML. For htmx requests the status is
	// sent as 200 so htmx still swaps, and render options set htmx headers.
	Render(code int, component Component, opts ...htmx.RenderOption) error

	// RenderPartial renders partial for htmx requests and fullPage otherwise.
	RenderPartial(code int, fullPage, partial Component, opts ...htmx.RenderOption) error

	// Written reports whether a response has started.
	Written() bool

	Logger() *slog.Logger
	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	Set(key any, value any)
	Get(key any) any

	// Cookie reads a cookie, verifying its signature when signing is on.
	Cookie(name string) (string, error)
	SetCookie(name, value string) error
	DeleteCookie(name string)
}

type requestContext struct {
	request  *http.Request
	response *ResponseWriter
	logger   *slog.Logger
	cookies  *cookie.Manager
}

// NewContext builds a Context outside the router, for tests and adapters.
func NewContext(w http.ResponseWriter, r *http.Request, l *slog.Logger, cookies *cookie.Manager) Context {
	return newContext(w, r, l, cookies)
}

func newContext(w http.ResponseWriter, r *http.Request, l *slog.Logger, cookies *cookie.Manager) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w, htmx.IsHTMX(r))
	}
	if cookies == nil {
		cookies, _ = cookie.New()
	}
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	return &requestContext{
		request:  r,
		response: rw,
		logger:   l,
		cookies:  cookies,
	}
}

func (c *requestContext) Request() *http.Request        { return c.request }
func (c *requestContext) Response() http.ResponseWriter { return c.response }
func (c *requestContext) Context() context.Context      { return c.request.Context() }

func (c *requestContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *requestContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *requestContext) Err() error                  { return c.request.Context().Err() }
func (c *requestContext) Value(key any) any           { return c.request.Context().Value(key) }

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) Form(name string) string {
	return c.request.FormValue(name)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := io.WriteString(c.response, s)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(url string) error {
	htmx.Redirect(c.response, c.request, url)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) IsHTMX() bool {
	return htmx.IsHTMX(c.request)
}

func (c *requestContext) Render(code int, component Component, opts ...htmx.RenderOption) error {
	c.response.Header().Set("Content-Type", "text/html; charset=utf-8")

	var cfg *htmx.Config
	if len(opts) > 0 && c.IsHTMX() {
		cfg = htmx.NewConfig(opts...)
		cfg.ApplyHeaders(c.response)
	}

	c.response.WriteHeader(code)

	ctx := c.request.Context()
	if err := component.Render(ctx, c.response); err != nil {
		return err
	}

	if cfg != nil {
		for _, oob := range cfg.OOBComponents {
			if err := oob.Render(ctx, c.response); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *requestContext) RenderPartial(code int, fullPage, partial Component, opts ...htmx.RenderOption) error {
	if c.IsHTMX() {
		return c.Render(code, partial, opts...)
	}
	return c.Render(code, fullPage)
}

func (c *requestContext) Written() bool {
	return c.response.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Cookie(name string) (string, error) {
	return c.cookies.Read(c.request, name)
}

func (c *requestContext) SetCookie(name, value string) error {
	return c.cookies.Write(c.response, name, value)
}

func (c *requestContext) DeleteCookie(name string) {
	c.cookies.Delete(c.response, name)
}

package internal

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/postboard/pkg/cookie"
)

// Option configures the App.
type Option func(*App)

// WithMiddleware appends global middleware. The first one listed runs first.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers route handlers.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithStaticFiles serves subDir of fsys under pattern. Directory listings
// are refused. It panics if subDir does not exist, which only happens with
// a broken embed.
//
// Example:
//
//	//go:embed public
//	var assets embed.FS
//
//	internal.WithStaticFiles("/static/", assets, "public")
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return func(a *App) {
		sub, err := fs.Sub(fsys, subDir)
		if err != nil {
			panic(err)
		}

		files := http.StripPrefix(strings.TrimSuffix(pattern, "/"), http.FileServerFS(sub))
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/") {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Cache-Control", "public, max-age=3600")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			files.ServeHTTP(w, r)
		})

		a.staticRoutes = append(a.staticRoutes, staticRoute{handler: handler, pattern: pattern})
	}
}

// WithErrorHandler sets the handler for errors returned by routes.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets the handler for unmatched routes.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets the handler for wrong-method requests.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithLogger sets the application logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithCookies sets the cookie manager used by Context cookie helpers.
// Nil is ignored.
func WithCookies(m *cookie.Manager) Option {
	return func(a *App) {
		if m != nil {
			a.cookies = m
		}
	}
}

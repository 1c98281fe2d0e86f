package middlewares

import (
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/postboard/internal"
)

// RequestLoggerOption configures RequestLogger.
type RequestLoggerOption func(*requestLoggerConfig)

type requestLoggerConfig struct {
	skip []string
}

// WithSkipPaths stops logging requests for the given exact paths,
// typically health probes.
func WithSkipPaths(paths ...string) RequestLoggerOption {
	return func(cfg *requestLoggerConfig) {
		cfg.skip = append(cfg.skip, paths...)
	}
}

// RequestLogger logs one record per request once the response is done:
// method, path, status, bytes written and duration. 5xx responses log at
// error level and 4xx at warn.
func RequestLogger(opts ...RequestLoggerOption) internal.Middleware {
	cfg := &requestLoggerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			path := c.Request().URL.Path
			if slices.Contains(cfg.skip, path) {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status, size := 0, int64(0)
			if rw, ok := c.Response().(*internal.ResponseWriter); ok {
				status, size = rw.Status(), rw.Size()
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("bytes", size),
				slog.Duration("duration", time.Since(start)),
				slog.Bool("htmx", c.IsHTMX()),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			switch {
			case err != nil || status >= 500:
				c.LogError("request", attrs...)
			case status >= 400:
				c.LogWarn("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}
			return err
		}
	}
}

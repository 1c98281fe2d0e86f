package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration.
type Config struct {
	// Output defaults to os.Stdout.
	Output            io.Writer `env:"-"`
	Level             string    `env:"LOG_LEVEL" envDefault:"info"`
	Format            string    `env:"LOG_FORMAT" envDefault:"json"`
	SentryDSN         string    `env:"SENTRY_DSN"`
	SentryEnvironment string    `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// New creates a logger from cfg with optional context extractors.
// When SentryDSN is set, warnings and errors are also sent to Sentry;
// if Sentry cannot be initialized the logger falls back to Output only.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		base = slog.NewTextHandler(out, opts)
	} else {
		base = slog.NewJSONHandler(out, opts)
	}

	if cfg.SentryDSN != "" {
		sentryHandler, err := newSentryHandler(cfg)
		if err != nil {
			slog.New(base).Error("failed to initialize sentry", slog.String("error", err.Error()))
		} else {
			base = newFanout(base, sentryHandler)
		}
	}

	return slog.New(WithContextExtractors(base, extractors...))
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

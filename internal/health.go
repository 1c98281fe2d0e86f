package internal

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/postboard/pkg/health"
)

const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

type healthConfig struct {
	checks        health.Checks
	livenessPath  string
	readinessPath string
	timeout       time.Duration
}

// HealthOption configures the health endpoints.
type HealthOption func(*healthConfig)

// WithHealthChecks mounts liveness and readiness probes.
//
// Example:
//
//	internal.WithHealthChecks(
//	    internal.WithReadinessCheck("placeholder", client.Ping),
//	    internal.WithHealthTimeout(5*time.Second),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
			checks:        make(health.Checks),
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.health = cfg
	}
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) {
		if name != "" && fn != nil {
			c.checks[name] = fn
		}
	}
}

// WithHealthTimeout bounds a readiness run.
func WithHealthTimeout(d time.Duration) HealthOption {
	return func(c *healthConfig) {
		c.timeout = d
	}
}

func (c *healthConfig) register(r chi.Router, l *slog.Logger) {
	r.Get(c.livenessPath, health.LivenessHandler())
	r.Get(c.readinessPath, health.ReadinessHandler(c.checks,
		health.WithTimeout(c.timeout),
		health.WithLogger(l),
	))
}

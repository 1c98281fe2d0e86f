package htmx

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Renderable is anything that renders itself to a writer. templ.Component
// and *dom.Element both satisfy it.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config holds per-response htmx behavior.
type Config struct {
	OOBComponents []Renderable
	Retarget      string
	Reswap        SwapStrategy
	Triggers      []string
	Refresh       bool
}

// RenderOption configures a Config.
type RenderOption func(*Config)

// NewConfig creates a Config from options.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ApplyHeaders sets the configured response headers. Must run before
// WriteHeader.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	if c == nil {
		return
	}

	h := w.Header()
	if c.Retarget != "" {
		h.Set(HeaderHXRetarget, c.Retarget)
	}
	if c.Reswap != "" {
		h.Set(HeaderHXReswap, c.Reswap.String())
	}
	if len(c.Triggers) > 0 {
		h.Set(HeaderHXTrigger, strings.Join(c.Triggers, ", "))
	}
	if c.Refresh {
		h.Set(HeaderHXRefresh, "true")
	}
}

// WithOOB appends out-of-band components rendered after the main one.
// Each must carry an id and hx-swap-oob.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) {
		c.OOBComponents = append(c.OOBComponents, components...)
	}
}

// WithRetarget overrides the request's swap target.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap overrides the request's swap strategy.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		c.Reswap = strategy
	}
}

// WithTrigger fires client-side events once the response arrives.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) {
		c.Triggers = append(c.Triggers, events...)
	}
}

// WithRefresh forces a full page reload.
func WithRefresh() RenderOption {
	return func(c *Config) {
		c.Refresh = true
	}
}

// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/postboard/pkg/logger"
)

var ErrInvalid = errors.New("config: invalid value")

// Config is the full application configuration.
type Config struct {
	Log         logger.Config
	Placeholder Placeholder
	Pages       Pages
	Cookie      Cookie
	Server      Server
}

// Server holds HTTP server settings.
type Server struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Placeholder configures the JSONPlaceholder client.
type Placeholder struct {
	BaseURL   string        `env:"PLACEHOLDER_BASE_URL" envDefault:"https://jsonplaceholder.typicode.com"`
	UserAgent string        `env:"PLACEHOLDER_USER_AGENT" envDefault:"postboard/1.0"`
	Timeout   time.Duration `env:"PLACEHOLDER_TIMEOUT" envDefault:"10s"`
	// UsersCacheTTL reuses the user list across page loads when positive.
	// Zero, the default, fetches it on every page load.
	UsersCacheTTL time.Duration `env:"PLACEHOLDER_USERS_CACHE_TTL" envDefault:"0s"`
}

// Pages configures in-memory page sessions.
type Pages struct {
	IdleTTL     time.Duration `env:"PAGE_IDLE_TTL" envDefault:"30m"`
	MaxSessions int           `env:"PAGE_MAX_SESSIONS" envDefault:"10000"`
}

// Cookie configures the page session cookie.
type Cookie struct {
	Name   string `env:"COOKIE_NAME" envDefault:"postboard_page"`
	Secret string `env:"COOKIE_SECRET"`
	Secure bool   `env:"COOKIE_SECURE" envDefault:"false"`
}

// Load reads the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads vars instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Placeholder.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: PLACEHOLDER_BASE_URL %q", ErrInvalid, c.Placeholder.BaseURL)
	}
	if c.Placeholder.Timeout < 0 || c.Placeholder.UsersCacheTTL < 0 {
		return fmt.Errorf("%w: placeholder durations must not be negative", ErrInvalid)
	}
	if c.Pages.IdleTTL <= 0 {
		return fmt.Errorf("%w: PAGE_IDLE_TTL must be positive", ErrInvalid)
	}
	if c.Pages.MaxSessions < 0 {
		return fmt.Errorf("%w: PAGE_MAX_SESSIONS must not be negative", ErrInvalid)
	}
	if c.Cookie.Name == "" {
		return fmt.Errorf("%w: COOKIE_NAME is empty", ErrInvalid)
	}
	return nil
}

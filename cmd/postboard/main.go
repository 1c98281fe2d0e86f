package main

import (
	"context"
	"os"
	"time"

	"github.com/dmitrymomot/postboard/internal"
	"github.com/dmitrymomot/postboard/internal/assets"
	"github.com/dmitrymomot/postboard/internal/board"
	"github.com/dmitrymomot/postboard/internal/config"
	"github.com/dmitrymomot/postboard/internal/handlers"
	"github.com/dmitrymomot/postboard/middlewares"
	"github.com/dmitrymomot/postboard/pkg/cache"
	"github.com/dmitrymomot/postboard/pkg/cookie"
	"github.com/dmitrymomot/postboard/pkg/logger"
	"github.com/dmitrymomot/postboard/pkg/placeholder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())

	client := placeholder.New(
		placeholder.WithBaseURL(cfg.Placeholder.BaseURL),
		placeholder.WithTimeout(cfg.Placeholder.Timeout),
		placeholder.WithUserAgent(cfg.Placeholder.UserAgent),
	)

	runOpts := []internal.RunOption{internal.ShutdownTimeout(cfg.Server.ShutdownTimeout)}

	var fetchOpts []board.FetcherOption
	if cfg.Placeholder.UsersCacheTTL > 0 {
		users := cache.NewMemory[[]placeholder.User](cache.WithFixedTTL[[]placeholder.User]())
		fetchOpts = append(fetchOpts, board.WithUsersCache(users, cfg.Placeholder.UsersCacheTTL))
		runOpts = append(runOpts, internal.ShutdownHook(func(context.Context) error {
			return users.Close()
		}))
	}
	fetch := board.NewFetcher(client, log, fetchOpts...)

	sessions := board.NewSessions(fetch, log,
		board.WithIdleTTL(cfg.Pages.IdleTTL),
		board.WithMaxPages(cfg.Pages.MaxSessions),
	)

	cookies, err := cookie.New(
		cookie.WithSecret(cfg.Cookie.Secret),
		cookie.WithSecure(cfg.Cookie.Secure),
		cookie.WithMaxAge(cfg.Pages.IdleTTL),
	)
	if err != nil {
		log.Error("invalid cookie settings", "error", err)
		os.Exit(1)
	}
	if !cookies.Signed() {
		log.Warn("COOKIE_SECRET is not set, page cookies are unsigned")
	}

	app := internal.New(
		internal.WithLogger(log),
		internal.WithCookies(cookies),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(middlewares.WithSkipPaths("/health/live", "/health/ready")),
			middlewares.Recover(),
		),
		internal.WithStaticFiles("/static/", assets.FS, assets.Dir),
		internal.WithHandlers(handlers.NewBoard(sessions, cfg.Cookie.Name)),
		internal.WithErrorHandler(handlers.ErrorHandler),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("placeholder", client.Ping),
			internal.WithHealthTimeout(cfg.Placeholder.Timeout),
		),
	)

	runOpts = append(runOpts,
		internal.ShutdownHook(func(context.Context) error {
			return sessions.Close()
		}),
		internal.ShutdownHook(func(context.Context) error {
			logger.Flush(2 * time.Second)
			return nil
		}),
	)

	if err := app.Run(cfg.Server.Address, runOpts...); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

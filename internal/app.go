package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/postboard/pkg/cookie"
	"github.com/dmitrymomot/postboard/pkg/logger"
)

// Server timeouts.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
	defaultShutdownTimeout   = 30 * time.Second
)

// App owns routing, middleware and the server lifecycle.
// It is immutable after New returns.
type App struct {
	router                  chi.Router
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	health                  *healthConfig
	logger                  *slog.Logger
	cookies                 *cookie.Manager
	middlewares             []Middleware
	handlers                []Handler
	staticRoutes            []staticRoute
}

type staticRoute struct {
	handler http.Handler
	pattern string
}

// New creates an application from options.
//
// Example:
//
//	app := internal.New(
//	    internal.WithLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    internal.WithHandlers(handlers.NewBoard(sessions, cfg.Cookie.Name)),
//	)
func New(opts ...Option) *App {
	cookies, _ := cookie.New()
	a := &App{
		router:  chi.NewRouter(),
		logger:  logger.NewNope(),
		cookies: cookies,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// ServeHTTP makes App an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run serves the app on addr and blocks until SIGINT/SIGTERM or the
// WithContext context ends, then shuts down gracefully.
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := buildRunConfig(opts...)
	if cfg.logger == nil {
		cfg.logger = a.logger
	}

	return runServer(runtimeConfig{
		handler:         a.router,
		address:         addr,
		logger:          cfg.logger,
		shutdownTimeout: cfg.shutdownTimeout,
		startupHooks:    cfg.startupHooks,
		shutdownHooks:   cfg.shutdownHooks,
		baseCtx:         cfg.baseCtx,
		ready:           cfg.ready,
	})
}

func (a *App) setupRoutes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))
	}

	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	for _, sr := range a.staticRoutes {
		a.router.Mount(sr.pattern, sr.handler)
	}

	if a.health != nil {
		a.health.register(a.router, a.logger)
	}

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a.logger, a.cookies)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError runs the error handler unless a response was already sent.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		c.LogWarn("handler error after response was written", slog.String("error", err.Error()))
		return
	}
	if a.errorHandler != nil {
		if herr := a.errorHandler(c, err); herr != nil {
			c.LogError("error handler failed", slog.String("error", herr.Error()))
		}
		return
	}
	http.Error(c.Response(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

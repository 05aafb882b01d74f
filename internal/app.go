package internal

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ariaml/ariaml-go/pkg/document"
	"github.com/ariaml/ariaml-go/pkg/health"
	"github.com/ariaml/ariaml-go/pkg/logger"
)

// Default server timeouts.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// App serves AriaML documents. It owns routing, middleware, error handling
// and graceful shutdown. App is immutable after creation.
type App struct {
	router                  chi.Router
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	healthConfig            *healthConfig
	logger                  *slog.Logger
	documentOptions         []document.Option
	middlewares             []Middleware
	handlers                []Handler
	staticRoutes            []staticRoute
}

// staticRoute represents a static file handler mount point.
type staticRoute struct {
	handler http.Handler
	pattern string
}

// New creates a new application with the given options.
//
// Example:
//
//	app := ariaml.New(
//	    ariaml.WithLogger(log),
//	    ariaml.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    ariaml.WithDocumentOptions(document.WithPolyfill("/js/standalone.js")),
//	    ariaml.WithHandlers(pages.NewHandler(store)),
//	)
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// Router returns the underlying chi.Router.
func (a *App) Router() chi.Router {
	return a.router
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Run starts the HTTP server on addr and blocks until shutdown.
//
// Example:
//
//	err := app.Run(":8080",
//	    ariaml.Logger(log),
//	    ariaml.ShutdownHook(store.Close),
//	)
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := buildRunConfig(opts...)
	if cfg.logger == nil {
		cfg.logger = a.logger
	}

	return runServer(a, addr, cfg)
}

// setupRoutes configures the router with middleware and handlers.
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

	if a.healthConfig != nil {
		opts := append([]health.Option{health.WithLogger(a.logger)}, a.healthConfig.options...)
		a.router.Get(a.healthConfig.livenessPath, health.Live())
		a.router.Get(a.healthConfig.readinessPath, health.Ready(a.healthConfig.checks, opts...))
	}

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// handleError hands err to the configured error handler.
// Errors after the response has been written are only logged.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		c.LogError("handler error after response was written", slog.Any("error", err))
		return
	}
	if a.errorHandler != nil {
		if herr := a.errorHandler(c, err); herr != nil {
			c.LogError("error handler failed", slog.Any("error", herr))
		}
		return
	}
	_ = DefaultErrorHandler(c, err)
}

// DefaultErrorHandler answers with the status and message of an HTTPError,
// or with 500 for any other error.
func DefaultErrorHandler(c Context, err error) error {
	code, msg := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	if he := AsHTTPError(err); he != nil {
		code, msg = he.Code, he.Message
	}
	if code >= http.StatusInternalServerError {
		c.LogError("request failed", slog.Int("status", code), slog.Any("error", err))
	}
	c.SetHeader("X-Content-Type-Options", "nosniff")
	return c.String(code, msg)
}

// healthConfig holds health check endpoint configuration.
type healthConfig struct {
	checks        health.Checks
	options       []health.Option
	livenessPath  string
	readinessPath string
}

// Default health check paths.
const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// HealthOption configures health check endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath sets a custom liveness endpoint path.
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath sets a custom readiness endpoint path.
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithReadinessCheck adds a named readiness check.
//
// Example:
//
//	ariaml.WithReadinessCheck("pages", store.Healthcheck())
func WithReadinessCheck(name string, fn func(context.Context) error) HealthOption {
	return func(c *healthConfig) {
		c.checks[name] = fn
	}
}

// WithReadinessTimeout bounds each readiness run.
func WithReadinessTimeout(d time.Duration) HealthOption {
	return func(c *healthConfig) {
		c.options = append(c.options, health.WithTimeout(d))
	}
}

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/ariaml/ariaml-go"
	"github.com/ariaml/ariaml-go/middlewares"
	"github.com/ariaml/ariaml-go/pkg/document"
	"github.com/ariaml/ariaml-go/pkg/logger"
	"github.com/ariaml/ariaml-go/pkg/pages"
)

func newLogger(cfg Config, out io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(out),
		logger.WithLevel(logger.ParseLevel(cfg.Log.Level)),
		logger.WithFormat(logger.ParseFormat(cfg.Log.Format)),
		logger.WithExtractors(middlewares.RequestIDExtractor()),
	}
	if cfg.Sentry.DSN != "" {
		opts = append(opts, logger.WithSentry(cfg.Sentry))
	}
	return logger.New(opts...)
}

// newApp wires the page store, middlewares and health checks.
func newApp(cfg Config, log *slog.Logger) (*ariaml.App, *pages.Store) {
	storeOpts := []pages.StoreOption{
		pages.WithStoreLogger(log),
		pages.WithCacheSize(cfg.Cache.Size),
		pages.WithCacheTTL(cfg.Cache.TTL),
	}
	if cfg.Cache.Disabled {
		storeOpts = append(storeOpts, pages.WithoutCache())
	}
	store := pages.NewStore(os.DirFS(cfg.PagesDir), storeOpts...)

	opts := []ariaml.Option{
		ariaml.WithLogger(log),
		ariaml.WithMiddleware(
			middlewares.RequestID(),
			middlewares.AccessLog(),
			middlewares.Recover(),
		),
		ariaml.WithDocumentOptions(document.WithPolyfill(cfg.Polyfill)),
		ariaml.WithHealthChecks(
			ariaml.WithReadinessCheck("pages", store.Healthcheck()),
		),
		ariaml.WithHandlers(pages.NewHandler(store, pages.WithBaseURL(cfg.BaseURL))),
	}
	if cfg.StaticDir != "" {
		opts = append(opts, ariaml.WithStaticFiles(cfg.StaticPrefix, os.DirFS(cfg.StaticDir), "."))
	}

	return ariaml.New(opts...), store
}

// Package logger builds the slog loggers used across AriaML services.
//
// New returns a *slog.Logger configured through options: level, output
// format, destination, context extractors and optional Sentry reporting.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithExtractors(middlewares.RequestIDExtractor()),
//		logger.WithSentry(logger.SentryConfig{DSN: os.Getenv("SENTRY_DSN")}),
//	)
//
// # Context extractors
//
// A ContextExtractor pulls one attribute from the context of each log call,
// so request-scoped values such as the request id appear on every record
// written with the *Context variants of the slog methods.
//
// # Sentry
//
// When a DSN is configured, records are written both to the output and to
// Sentry: errors become issues, warnings and errors are kept as logs. An empty
// DSN or a failed SDK initialisation falls back to output-only logging.
//
// NewNope returns a logger that discards everything; packages use it as their
// default so a logger is never nil.
package logger

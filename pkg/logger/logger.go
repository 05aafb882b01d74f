package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration settings.
type SentryConfig struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	// MinLevel is the lowest level kept as a Sentry log. Errors always create issues.
	MinLevel slog.Level `yaml:"-"`
}

// New creates a logger from the options.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := outputHandler(cfg)
	handler := out
	if cfg.sentry != nil && cfg.sentry.DSN != "" {
		if sh, err := sentryHandler(*cfg.sentry); err != nil {
			slog.New(out).Error("sentry disabled", slog.Any("error", err))
		} else {
			handler = newFanout(out, sh)
		}
	}

	return slog.New(NewLogHandlerDecorator(handler, cfg.extractors...))
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func outputHandler(cfg config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.level}
	if cfg.format == FormatText {
		return slog.NewTextHandler(cfg.output, opts)
	}
	return slog.NewJSONHandler(cfg.output, opts)
}

func sentryHandler(cfg SentryConfig) (slog.Handler, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		return nil, err
	}

	logLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevels = []slog.Level{slog.LevelError}
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background()), nil
}

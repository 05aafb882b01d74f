package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the record encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat maps "text" to FormatText and anything else to FormatJSON.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatText)) {
		return FormatText
	}
	return FormatJSON
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
// Unknown names yield slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

type config struct {
	output     io.Writer
	sentry     *SentryConfig
	format     Format
	extractors []ContextExtractor
	level      slog.Level
}

func defaultConfig() config {
	return config{
		output: os.Stdout,
		format: FormatJSON,
		level:  slog.LevelInfo,
	}
}

// Option configures New.
type Option func(*config)

// WithLevel sets the minimum level written to the output.
func WithLevel(l slog.Level) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithFormat sets the output encoding.
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithOutput sets the destination. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithExtractors appends context extractors.
func WithExtractors(ex ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, ex...)
	}
}

// WithSentry forwards records to Sentry when cfg.DSN is set.
func WithSentry(cfg SentryConfig) Option {
	return func(c *config) {
		c.sentry = &cfg
	}
}

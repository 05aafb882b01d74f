package document

import (
	"log/slog"

	"github.com/ariaml/ariaml-go/pkg/negotiate"
)

// DefaultPolyfill is the script loaded at the end of full HTML pages.
const DefaultPolyfill = "ariaml/standalone.js"

// DefaultLinkSingletons are the definition keys rendered as <link rel=key>.
var DefaultLinkSingletons = []string{"author", "license"}

// Option configures a Document.
type Option func(*Document)

// WithPolyfill sets the src of the polyfill script emitted in full pages.
// Empty values are ignored.
func WithPolyfill(src string) Option {
	return func(d *Document) {
		if src != "" {
			d.polyfill = src
		}
	}
}

// WithLinkSingletons replaces the definition keys rendered as <link rel=key href=...>.
func WithLinkSingletons(keys ...string) Option {
	return func(d *Document) {
		d.singletons = keys
	}
}

// WithMode sets the initial render mode. Defaults to negotiate.ModeFull.
func WithMode(m negotiate.Mode) Option {
	return func(d *Document) {
		d.mode = m
	}
}

// WithLogger sets the logger used for consume traces and lifecycle errors.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.log = l
		}
	}
}

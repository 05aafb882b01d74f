package document

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ariaml/ariaml-go/pkg/attr"
)

// State is the lifecycle position of the root element.
type State uint8

const (
	// Unopened means StartTag has not been called.
	Unopened State = iota
	// Opened means the root element is open.
	Opened
	// Closed means EndTag has been called.
	Closed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unopened:
		return "unopened"
	case Opened:
		return "opened"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Root element names.
const (
	RootElement         = "aria-ml"
	RootFragmentElement = "aria-ml-fragment"
)

const fragmentPreamble = `<meta http-equiv="refresh" content="0;url=./">` +
	"\n" + `<style>aria-ml .aria-ml-fallback {display: none;}</style>` +
	"\n" + `<div class="aria-ml-fallback">Loading...</div>`

// State returns the lifecycle state.
func (d *Document) State() State { return d.state }

// StartTag opens the root element. In full mode the HTML envelope and head
// come first; in fragment mode a refresh preamble does.
// Calling it twice returns ErrAlreadyStarted.
func (d *Document) StartTag(rootAttrs attr.Attrs) (string, error) {
	if d.state != Unopened {
		return "", d.misuse(ErrAlreadyStarted)
	}

	var b strings.Builder
	d.root = RootElement
	switch {
	case d.IsFragment():
		d.root = RootFragmentElement
		b.WriteString(fragmentPreamble)
	case d.ExpectsHTML():
		d.wrapped = true
		b.WriteString("<!DOCTYPE html>\n<html")
		b.WriteString(attr.Render(attr.Attrs{
			{Key: "lang", Value: d.Language()},
			{Key: "dir", Value: d.Direction()},
		}))
		b.WriteString(">\n<head data-ssr>")
		b.WriteString(d.RenderHead())
		b.WriteString("\n</head>\n<body>")
	}

	b.WriteByte('\n')
	b.WriteString(attr.Tag(d.root, rootAttrs))

	d.state = Opened
	d.log.Debug("root opened", slog.String("mode", d.mode.String()), slog.String("element", d.root))
	return b.String(), nil
}

// EndTag closes the root element and emits every definition key not consumed
// yet in a trailing JSON-LD script. Full pages are completed with the polyfill
// script and the closing body and html tags.
func (d *Document) EndTag() (string, error) {
	switch d.state {
	case Unopened:
		return "", d.misuse(ErrNotStarted)
	case Closed:
		return "", d.misuse(ErrAlreadyEnded)
	}

	var b strings.Builder
	b.WriteString(attr.Close(d.root))
	b.WriteString("\n<script type=\"application/ld+json\">\n")
	b.WriteString(d.ConsumeDefinition())
	b.WriteString("\n</script>")

	if d.wrapped {
		b.WriteByte('\n')
		b.WriteString(attr.Tag("script", attr.Attrs{{Key: "src", Value: d.polyfill}}))
		b.WriteString(attr.Close("script"))
		b.WriteString("\n</body>\n</html>")
	}

	d.state = Closed
	d.log.Debug("root closed", slog.String("element", d.root))
	return b.String(), nil
}

func (d *Document) misuse(err error) error {
	d.log.Error("document lifecycle misuse",
		slog.String("state", d.state.String()),
		slog.Any("error", err),
	)
	return fmt.Errorf("%w (state %s)", err, d.state)
}

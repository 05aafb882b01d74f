package document

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/ariaml/ariaml-go/pkg/attr"
)

// Wrap returns a component that renders the root element around body.
// The start tag is produced when the component renders, so the render mode
// in effect at that time is used.
func (d *Document) Wrap(rootAttrs attr.Attrs, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		start, err := d.StartTag(rootAttrs)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, start); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		end, err := d.EndTag()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, end)
		return err
	})
}

// DefinitionScript returns a component writing a JSON-LD script element that
// holds the given definition keys not emitted yet. Without keys it holds every
// remaining key. The JSON is indented by indent tabs.
func (d *Document) DefinitionScript(scriptAttrs attr.Attrs, indent int, keys ...string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		body, err := d.Consume(Definition, keys, indent)
		if err != nil {
			d.logConsumeError(Definition, err)
			if body == "" {
				return nil
			}
		}
		attrs := attr.Merge(attr.Attrs{{Key: "type", Value: "application/ld+json"}}, scriptAttrs)

		var b strings.Builder
		b.WriteString(attr.Tag("script", attrs))
		b.WriteByte('\n')
		b.WriteString(body)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("\t", max(indent-1, 0)))
		b.WriteString(attr.Close("script"))
		_, err = io.WriteString(w, b.String())
		return err
	})
}

// AppearanceSlot returns a component writing the style tags of the given
// groups not emitted yet. Without groups it writes every remaining group.
func (d *Document) AppearanceSlot(indent int, groups ...string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out, err := d.Consume(Appearance, groups, indent)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}

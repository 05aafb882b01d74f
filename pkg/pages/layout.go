package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/ariaml/ariaml-go/pkg/attr"
	"github.com/ariaml/ariaml-go/pkg/document"
	"github.com/ariaml/ariaml-go/pkg/negotiate"
)

// Definition keys refreshed on every navigation.
var DefaultDynamicKeys = []string{"name", "inLanguage", "direction", "csrfToken"}

// Appearance groups kept across navigations.
var DefaultStaticGroups = []string{"persistant", "themes"}

// Slot names.
const (
	SlotDynamicDefinition = "dynamic-def"
	SlotDynamicStyles     = "dynamic-styles"
	SlotContent           = "content"
	StaticID              = "static"
)

// LayoutConfig selects what goes into the dynamic and static slots.
type LayoutConfig struct {
	DynamicKeys  []string
	StaticGroups []string
}

// Layout renders the page body with the default slot configuration.
func Layout(doc *document.Document, p *Page, s negotiate.Signals) templ.Component {
	return LayoutConfig{
		DynamicKeys:  DefaultDynamicKeys,
		StaticGroups: DefaultStaticGroups,
	}.Component(doc, p, s)
}

// Component returns the body placed inside the root element:
//
//   - a dynamic definition script with DynamicKeys,
//   - outside fragments, a static group with the remaining definition and StaticGroups,
//   - a dynamic styles group with the remaining appearance,
//   - the main content slot. When the client announced the page's nav-cache
//     key, the content is replaced by an empty placeholder.
func (cfg LayoutConfig) Component(doc *document.Document, p *Page, s negotiate.Signals) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lw := &lineWriter{w: w}

		// A nil key list would claim the whole definition.
		dynamic := cfg.DynamicKeys
		if dynamic == nil {
			dynamic = []string{}
		}

		lw.line(1, "")
		if err := doc.DefinitionScript(attr.Attrs{{Key: "nav-slot", Value: SlotDynamicDefinition}}, 2, dynamic...).Render(ctx, lw); err != nil {
			return err
		}

		if !doc.IsFragment() {
			lw.line(1, attr.Tag("g", attr.Attrs{{Key: "id", Value: StaticID}}))
			lw.line(2, "")
			if err := doc.DefinitionScript(nil, 3).Render(ctx, lw); err != nil {
				return err
			}
			if len(cfg.StaticGroups) > 0 {
				if err := doc.AppearanceSlot(2, cfg.StaticGroups...).Render(ctx, lw); err != nil {
					return err
				}
			}
			lw.line(1, attr.Close("g"))
		}

		lw.line(1, attr.Tag("g", attr.Attrs{{Key: "nav-slot", Value: SlotDynamicStyles}}))
		if err := doc.AppearanceSlot(2).Render(ctx, lw); err != nil {
			return err
		}
		lw.line(1, attr.Close("g"))

		lw.line(1, attr.Tag("main", attr.Attrs{{Key: "nav-slot", Value: SlotContent}}))
		switch {
		case p.Cache == "":
			lw.line(2, p.Body)
		case s.ClientHasCache(p.Cache):
			lw.line(2, attr.Tag("div", attr.Attrs{{Key: "nav-cache", Value: p.Cache}})+attr.Close("div"))
		default:
			lw.line(2, attr.Tag("div", attr.Attrs{{Key: "nav-cache", Value: p.Cache}}))
			lw.line(0, p.Body)
			lw.line(2, attr.Close("div"))
		}
		lw.line(1, attr.Close("main"))
		lw.raw("\n")

		return lw.err
	})
}

// lineWriter writes indented lines and keeps the first error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) Write(b []byte) (int, error) {
	if lw.err != nil {
		return 0, lw.err
	}
	n, err := lw.w.Write(b)
	lw.err = err
	return n, err
}

func (lw *lineWriter) raw(s string) {
	_, _ = io.WriteString(lw, s)
}

func (lw *lineWriter) line(indent int, s string) {
	lw.raw("\n")
	for range indent {
		lw.raw("\t")
	}
	lw.raw(s)
}

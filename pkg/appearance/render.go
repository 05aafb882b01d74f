package appearance

import (
	"strings"

	"github.com/ariaml/ariaml-go/pkg/attr"
	"github.com/ariaml/ariaml-go/pkg/definition"
)

// PreloadLinks returns one preload hint per distinct src among declarations
// flagged with a truthy preload attribute. The first occurrence of a src wins.
func (r *Registry) PreloadLinks() []string {
	var links []string
	seen := make(map[string]struct{})
	for _, d := range r.All() {
		if !d.External() || !d.Attrs.Truthy("preload") {
			continue
		}
		href := d.Src()
		if _, dup := seen[href]; dup {
			continue
		}
		seen[href] = struct{}{}
		links = append(links, attr.Tag("link", attr.Attrs{
			{Key: "rel", Value: "preload"},
			{Key: "href", Value: href},
			{Key: "as", Value: "style"},
		}))
	}
	return links
}

// Render writes the declarations of the given groups as style tags, each on
// its own line prefixed with indent tabs. Unknown groups are skipped.
func (r *Registry) Render(groups []string, indent int) string {
	var b strings.Builder
	pad := strings.Repeat("\t", indent)
	for _, g := range groups {
		for _, d := range r.groups[g] {
			b.WriteByte('\n')
			b.WriteString(pad)
			b.WriteString(attr.Tag("style", d.Attrs))
			if !d.External() {
				b.WriteString(renderContent(d.Content, indent))
			}
			b.WriteString(attr.Close("style"))
		}
	}
	return b.String()
}

func renderContent(content any, indent int) string {
	switch c := content.(type) {
	case nil:
		return ""
	case string:
		return strings.ReplaceAll(c, "</", `<\/`)
	}
	text, err := definition.Encode(content, indent+1)
	if err != nil {
		return ""
	}
	return "\n" + text + "\n" + strings.Repeat("\t", indent)
}

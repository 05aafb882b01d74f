package document

import (
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/ariaml/ariaml-go/pkg/attr"
	"github.com/ariaml/ariaml-go/pkg/definition"
	"github.com/ariaml/ariaml-go/pkg/sanitizer"
)

// DefaultLanguage is used when the definition has no inLanguage.
const DefaultLanguage = "en"

// rtlScripts lists ISO 15924 codes of scripts written right to left.
var rtlScripts = map[string]struct{}{
	"Adlm": {}, "Arab": {}, "Hebr": {}, "Mand": {}, "Nkoo": {},
	"Rohg": {}, "Samr": {}, "Syrc": {}, "Thaa": {},
}

// Language returns the inLanguage of the definition, or DefaultLanguage.
func (d *Document) Language() string {
	if lang := d.def.String("inLanguage"); lang != "" {
		return lang
	}
	return DefaultLanguage
}

// Direction returns the definition's direction, or the writing direction of
// the document language's script.
func (d *Document) Direction() string {
	if dir := d.def.String("direction"); dir != "" {
		return dir
	}
	return ScriptDirection(d.Language())
}

// ScriptDirection returns "rtl" when the most likely script of the language
// tag is written right to left, "ltr" otherwise, including for invalid tags.
func ScriptDirection(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return "ltr"
	}
	script, _ := t.Script()
	if _, ok := rtlScripts[script.String()]; ok {
		return "rtl"
	}
	return "ltr"
}

// RenderHead returns the <head> entries derived from the definition and the
// appearance preloads, each on its own line indented by one tab.
func (d *Document) RenderHead() string {
	entries := d.headEntries()
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("\n\t")
		b.WriteString(e)
	}
	return b.String()
}

func (d *Document) headEntries() []string {
	def := d.def
	entries := []string{`<meta charset="utf-8">`}

	if name := def.String("name"); name != "" {
		entries = append(entries, "<title>"+templ.EscapeString(name)+"</title>")
	}

	if desc := description(def.String("description")); desc != "" {
		entries = append(entries, attr.Tag("meta", attr.Attrs{
			{Key: "name", Value: "description"},
			{Key: "content", Value: desc},
		}))
	}

	if url := def.String("url"); url != "" {
		entries = append(entries, attr.Tag("link", attr.Attrs{
			{Key: "rel", Value: "canonical"},
			{Key: "href", Value: url},
		}))
	}

	csrf := def.String("csrfToken")
	if csrf == "" {
		csrf = def.String("csrf-token")
	}
	if csrf != "" {
		entries = append(entries, attr.Tag("meta", attr.Attrs{
			{Key: "name", Value: "csrf-token"},
			{Key: "content", Value: csrf},
		}))
	}

	for _, key := range d.singletons {
		if href := linkTarget(def.Get(key, nil)); href != "" {
			entries = append(entries, attr.Tag("link", attr.Attrs{
				{Key: "rel", Value: key},
				{Key: "href", Value: href},
			}))
		}
	}

	entries = append(entries, metaEntries(def, "metadatas", "name")...)
	entries = append(entries, metaEntries(def, "properties", "property")...)
	entries = append(entries, relationLinks(def.Get("translationOfWork", nil), true)...)
	entries = append(entries, relationLinks(def.Get("workTranslation", nil), false)...)
	entries = append(entries, legacyLinks(def.Get("legacyLinks", nil))...)

	return append(entries, d.styles.PreloadLinks()...)
}

// linkTarget accepts a URL string or a mapping holding url.
func linkTarget(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case *definition.Tree:
		return x.String("url")
	}
	return ""
}

// description strips markup for the meta tag. A value made only of markup is
// kept as written so the tag is not lost; attr escapes it either way.
func description(raw string) string {
	if desc := sanitizer.PlainText(raw); desc != "" {
		return desc
	}
	return strings.Join(strings.Fields(raw), " ")
}

func metaEntries(def *definition.Tree, key, attrName string) []string {
	sub, ok := def.Sub(key)
	if !ok {
		return nil
	}
	var out []string
	for name, v := range sub.All() {
		content, ok := scalar(v)
		if !ok {
			continue
		}
		out = append(out, attr.Tag("meta", attr.Attrs{
			{Key: attrName, Value: name},
			{Key: "content", Value: content},
		}))
	}
	return out
}

// relationLinks renders alternate links for a single mapping or a list of mappings.
// Items without a url are skipped.
func relationLinks(v any, original bool) []string {
	var items []any
	switch x := v.(type) {
	case *definition.Tree:
		items = []any{x}
	case []any:
		items = x
	default:
		return nil
	}

	var out []string
	for _, item := range items {
		t, ok := item.(*definition.Tree)
		if !ok {
			continue
		}
		href := t.String("url")
		if href == "" {
			continue
		}
		attrs := attr.Attrs{{Key: "rel", Value: "alternate"}, {Key: "href", Value: href}}
		if lang := t.String("inLanguage"); lang != "" {
			attrs = append(attrs, attr.Attr{Key: "hreflang", Value: lang})
		}
		if original {
			attrs = append(attrs, attr.Attr{Key: "class", Value: "translationOfWork"})
		}
		out = append(out, attr.Tag("link", attrs))
	}
	return out
}

func legacyLinks(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		t, ok := item.(*definition.Tree)
		if !ok {
			continue
		}
		attrs := attr.Attrs{{Key: "rel", Value: "alternate"}}
		for k, v := range t.All() {
			if s, ok := scalar(v); ok {
				attrs = attrs.Set(k, s)
			}
		}
		out = append(out, attr.Tag("link", attrs))
	}
	return out
}

// scalar returns the text of a scalar value. Mappings, lists and nil are rejected.
func scalar(v any) (string, bool) {
	switch v.(type) {
	case nil, *definition.Tree, []any:
		return "", false
	}
	return definition.Text(v), true
}

package document_test

import (
	"encoding/json"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ariaml/ariaml-go/pkg/attr"
	"github.com/ariaml/ariaml-go/pkg/definition"
	"github.com/ariaml/ariaml-go/pkg/document"
)

var ldScript = regexp.MustCompile(`(?s)<script type="application/ld\+json"[^>]*>\n(.*?)\n\t*</script>`)

// jsonKeys decodes a JSON object and returns its keys sorted.
func jsonKeys(t *testing.T, raw string) []string {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m), raw)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ldBlocks returns the bodies of every JSON-LD script in out.
func ldBlocks(out string) []string {
	var blocks []string
	for _, m := range ldScript.FindAllStringSubmatch(out, -1) {
		blocks = append(blocks, m[1])
	}
	return blocks
}

func productDocument(opts ...document.Option) *document.Document {
	def := definition.Pairs(
		"name", "Page Produit",
		"inLanguage", "fr-FR",
		"direction", "ltr",
		"csrfToken", "token-123",
		"url", "https://monsite.com/chaussures",
	)
	doc := document.New(def, opts...)
	doc.Set("properties", map[string]any{"og:type": "product", "og:image": "/assets/shoes.jpg"})
	doc.Set("metadatas", map[string]any{"robots": "index, follow"})

	doc.AddStyle(attr.Attrs{{Key: "src", Value: "/css/style.css"}, {Key: "preload", Value: true}}, "persistant")
	doc.AddStyle(attr.Attrs{
		{Key: "src", Value: "/css/dark.css"},
		{Key: "theme", Value: "dark"},
		{Key: "preload", Value: true},
		{Key: "media-theme", Value: "(prefers-color-scheme: dark)"},
	}, "themes")
	doc.AddStyle(attr.Attrs{
		{Key: "src", Value: "/css/light.css"},
		{Key: "theme", Value: "light"},
		{Key: "preload", Value: true},
		{Key: "media-theme", Value: "(prefers-color-scheme: light)"},
	}, "themes")
	doc.AddStyle(attr.Attrs{
		{Key: "src", Value: "/css/icons.json"},
		{Key: "type", Value: "icons+json"},
		{Key: "preload", Value: true},
	}, "icons")
	doc.AddStyle(attr.Attrs{{Key: "content", Value: "h1 {color: red;}"}}, "")
	return doc
}

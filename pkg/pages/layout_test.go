package pages_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaml/ariaml-go/pkg/document"
	"github.com/ariaml/ariaml-go/pkg/negotiate"
	"github.com/ariaml/ariaml-go/pkg/pages"
)

func renderLayout(t *testing.T, mode negotiate.Mode, headers map[string]string) (string, *document.Document) {
	t.Helper()

	p, err := pages.ParsePage([]byte(productSource))
	require.NoError(t, err)

	doc := p.Document(document.WithMode(mode))
	var buf bytes.Buffer
	require.NoError(t, pages.Layout(doc, p, negotiate.NewSignals(headers)).Render(context.Background(), &buf))
	return buf.String(), doc
}

func TestLayout_Fragment(t *testing.T) {
	t.Parallel()

	got, doc := renderLayout(t, negotiate.ModeFragment, nil)

	want := "\n\t" + `<script type="application/ld+json" nav-slot="dynamic-def">` + "\n" +
		"\t\t{\n" +
		"\t\t    \"name\": \"Page Produit\",\n" +
		"\t\t    \"inLanguage\": \"fr-FR\"\n" +
		"\t\t}\n" +
		"\t</script>" +
		"\n\t" + `<g nav-slot="dynamic-styles">` +
		"\n\t\t" + `<style src="/css/style.css" preload></style>` +
		"\n\t\t" + `<style>h1 {color: red;}</style>` +
		"\n\t</g>" +
		"\n\t" + `<main nav-slot="content">` +
		"\n\t\t" + `<div nav-cache="main-view">` +
		"\n" + `<h1 id="hello">Hello</h1>` +
		"\n\t\t</div>" +
		"\n\t</main>\n"
	assert.Equal(t, want, got)

	// The static slot is skipped, so the rest stays for the trailing block.
	assert.False(t, doc.Ledger().Consumed(document.Definition, "url"))
	assert.True(t, doc.Ledger().Consumed(document.Definition, "name"))
}

func TestLayout_Full(t *testing.T) {
	t.Parallel()

	got, doc := renderLayout(t, negotiate.ModeFull, nil)

	assert.Contains(t, got, "\n\t"+`<g id="static">`+"\n\t\t"+`<script type="application/ld+json">`+"\n\t\t\t{\n")
	assert.Contains(t, got, "\"url\": \"https://monsite.com/chaussures\"")
	assert.Contains(t, got, "\n\t\t</script>\n\t\t"+`<style src="/css/style.css" preload></style>`+"\n\t</g>")
	assert.Contains(t, got, `<g nav-slot="dynamic-styles">`+"\n\t\t"+`<style>h1 {color: red;}</style>`+"\n\t</g>")

	for _, k := range []string{"name", "inLanguage", "url", "properties"} {
		assert.True(t, doc.Ledger().Consumed(document.Definition, k), k)
	}
	assert.Equal(t, "{}", doc.ConsumeDefinitionIndent(0))
}

func TestLayout_NavCacheHit(t *testing.T) {
	t.Parallel()

	got, _ := renderLayout(t, negotiate.ModeFragment, map[string]string{
		negotiate.HeaderNavCache: `["sidebar", "main-view"]`,
	})

	assert.Contains(t, got, "\n\t\t"+`<div nav-cache="main-view"></div>`+"\n\t</main>")
	assert.NotContains(t, got, "Hello")
}

func TestLayout_EmptyDynamicKeys(t *testing.T) {
	t.Parallel()

	p, err := pages.ParsePage([]byte(productSource))
	require.NoError(t, err)
	doc := p.Document(document.WithMode(negotiate.ModeFragment))

	var buf bytes.Buffer
	cfg := pages.LayoutConfig{}
	require.NoError(t, cfg.Component(doc, p, negotiate.NewSignals(nil)).Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), `nav-slot="dynamic-def">`+"\n\t\t{}\n\t</script>")
	assert.Equal(t, 0, doc.Ledger().Len(document.Definition))
}

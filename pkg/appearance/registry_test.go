package appearance_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaml/ariaml-go/pkg/appearance"
	"github.com/ariaml/ariaml-go/pkg/attr"
	"github.com/ariaml/ariaml-go/pkg/definition"
)

func src(path string, preload any) attr.Attrs {
	a := attr.Attrs{{Key: "src", Value: path}}
	if preload != nil {
		a = append(a, attr.Attr{Key: "preload", Value: preload})
	}
	return a
}

func TestRegistry_Add(t *testing.T) {
	t.Parallel()

	t.Run("groups keep first insertion order", func(t *testing.T) {
		t.Parallel()
		reg := appearance.New()
		reg.Add(src("/a.css", nil), "themes")
		reg.Add(src("/b.css", nil), appearance.Ungrouped)
		reg.Add(src("/c.css", nil), "themes")

		assert.Equal(t, []string{"themes", ""}, reg.Groups())
		assert.Equal(t, 3, reg.Len())

		themes := reg.Declarations("themes")
		require.Len(t, themes, 2)
		assert.Equal(t, "/a.css", themes[0].Src())
		assert.Equal(t, "/c.css", themes[1].Src())
	})

	t.Run("content attribute is lifted", func(t *testing.T) {
		t.Parallel()
		reg := appearance.New()
		reg.Add(attr.Attrs{{Key: "type", Value: "text/css"}, {Key: "content", Value: "body{}"}}, "")

		d := reg.Declarations("")[0]
		assert.Equal(t, "body{}", d.Content)
		assert.False(t, d.Attrs.Has("content"))
	})

	t.Run("missing group", func(t *testing.T) {
		t.Parallel()
		reg := appearance.New()

		assert.Empty(t, reg.Declarations("nope"))
		assert.False(t, reg.HasGroup("nope"))
	})
}

func TestRegistry_PreloadLinks(t *testing.T) {
	t.Parallel()

	t.Run("duplicate src collapses across groups", func(t *testing.T) {
		t.Parallel()
		reg := appearance.New()
		for _, g := range []string{"", "themes", "persistant", "themes"} {
			reg.Add(src("/css/main.css", true), g)
		}

		links := reg.PreloadLinks()
		require.Len(t, links, 1)
		assert.Equal(t, `<link rel="preload" href="/css/main.css" as="style">`, links[0])
	})

	t.Run("order follows insertion and requires truthy preload", func(t *testing.T) {
		t.Parallel()
		reg := appearance.New()
		reg.Add(src("/b.css", true), "g1")
		reg.Add(src("/skip.css", false), "g1")
		reg.Add(src("/none.css", nil), "g2")
		reg.Add(src("/a.css", true), "g2")
		reg.Add(attr.Attrs{{Key: "preload", Value: true}, {Key: "content", Value: "x"}}, "g2")

		links := reg.PreloadLinks()
		require.Len(t, links, 2)
		assert.Contains(t, links[0], `href="/b.css"`)
		assert.Contains(t, links[1], `href="/a.css"`)
	})

	t.Run("nothing to preload", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, appearance.New().PreloadLinks())
	})
}

func TestRegistry_Render(t *testing.T) {
	t.Parallel()

	t.Run("inline text content", func(t *testing.T) {
		t.Parallel()
		reg := appearance.New()
		reg.Add(attr.Attrs{{Key: "theme", Value: "dark"}, {Key: "content", Value: "body{color:#fff}"}}, "themes")

		assert.Equal(t, "\n\t<style theme=\"dark\">body{color:#fff}</style>", reg.Render([]string{"themes"}, 1))
	})

	t.Run("src suppresses content", func(t *testing.T) {
		t.Parallel()
		reg := appearance.New()
		reg.Add(attr.Attrs{
			{Key: "src", Value: "/x.css"},
			{Key: "preload", Value: true},
			{Key: "content", Value: "ignored"},
		}, "")

		assert.Equal(t, "\n<style src=\"/x.css\" preload></style>", reg.Render([]string{""}, 0))
	})

	t.Run("structured content is indented one level deeper", func(t *testing.T) {
		t.Parallel()
		reg := appearance.New()
		reg.Add(attr.Attrs{
			{Key: "type", Value: "application/json"},
			{Key: "content", Value: definition.Pairs("icon", "home")},
		}, "icons")

		want := "\n\t<style type=\"application/json\">\n\t\t{\n\t\t    \"icon\": \"home\"\n\t\t}\n\t</style>"
		assert.Equal(t, want, reg.Render([]string{"icons"}, 1))
	})

	t.Run("inline text cannot close the element", func(t *testing.T) {
		t.Parallel()
		reg := appearance.New()
		reg.Add(attr.Attrs{{Key: "content", Value: "a</style><script>"}}, "")

		out := reg.Render([]string{""}, 0)
		assert.Equal(t, 1, strings.Count(out, "</style>"))
	})

	t.Run("groups render in requested order", func(t *testing.T) {
		t.Parallel()
		reg := appearance.New()
		reg.Add(src("/a.css", nil), "a")
		reg.Add(src("/b.css", nil), "b")

		out := reg.Render([]string{"b", "missing", "a"}, 0)
		assert.Less(t, strings.Index(out, "/b.css"), strings.Index(out, "/a.css"))
	})
}

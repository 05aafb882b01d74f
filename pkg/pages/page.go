package pages

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	"github.com/ariaml/ariaml-go/pkg/appearance"
	"github.com/ariaml/ariaml-go/pkg/attr"
	"github.com/ariaml/ariaml-go/pkg/definition"
	"github.com/ariaml/ariaml-go/pkg/document"
)

// groupKey names the style entry attribute holding the appearance group.
const groupKey = "group"

// Page is a parsed page source. Pages are shared between requests and must
// not be mutated; Definition and Document hand out copies.
type Page struct {
	def *definition.Tree

	// Source is the file the page was loaded from.
	Source string

	// Cache is the nav-cache key of the main view. Empty disables the placeholder.
	Cache string

	// Body is the rendered HTML of the markdown body.
	Body string

	// Root holds extra attributes of the root element.
	Root attr.Attrs

	// Styles are the appearance declarations in source order.
	Styles []appearance.Declaration
}

// frontmatter is the YAML block at the top of a page source.
//
//	---
//	definition:
//	  name: Lamp
//	  inLanguage: fr-FR
//	styles:
//	  - group: persistant
//	    src: /css/style.css
//	    preload: true
//	  - content: "h1 {color: red;}"
//	root:
//	  nav-base-url: /
//	cache: main-view
//	---
type frontmatter struct {
	Definition yaml.Node   `yaml:"definition"`
	Root       yaml.Node   `yaml:"root"`
	Cache      string      `yaml:"cache"`
	Styles     []yaml.Node `yaml:"styles"`
}

// NewMarkdown returns the markdown converter used for page bodies.
func NewMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// ParsePage parses a page source with the default markdown converter.
func ParsePage(content []byte) (*Page, error) {
	return parsePage(content, NewMarkdown())
}

func parsePage(content []byte, md goldmark.Markdown) (*Page, error) {
	head, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	var fm frontmatter
	if len(bytes.TrimSpace(head)) > 0 {
		if err := yaml.Unmarshal(head, &fm); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	p := &Page{Cache: fm.Cache}

	if p.def, err = treeOf(&fm.Definition); err != nil {
		return nil, fmt.Errorf("%w: definition: %v", ErrInvalidFrontmatter, err)
	}

	root, err := treeOf(&fm.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: root: %v", ErrInvalidFrontmatter, err)
	}
	p.Root = attrsOf(root)

	for i := range fm.Styles {
		d, err := declarationOf(&fm.Styles[i])
		if err != nil {
			return nil, fmt.Errorf("%w: styles[%d]: %v", ErrInvalidFrontmatter, i, err)
		}
		p.Styles = append(p.Styles, d)
	}

	var html bytes.Buffer
	if err := md.Convert(body, &html); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	p.Body = strings.TrimSpace(html.String())

	return p, nil
}

// splitFrontmatter separates the leading --- delimited block from the body.
// Content without an opening delimiter is all body.
func splitFrontmatter(content []byte) (head, body []byte, err error) {
	delimiter := []byte("---")
	if !bytes.HasPrefix(content, delimiter) {
		return nil, content, nil
	}

	rest := bytes.TrimLeft(content[len(delimiter):], "\r\n")
	end := bytes.Index(rest, append([]byte("\n"), delimiter...))
	switch {
	case bytes.HasPrefix(rest, delimiter):
		end = 0
	case end == -1:
		return nil, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	default:
		end++
	}

	head = rest[:end]
	body = rest[end+len(delimiter):]
	// One line break after the closing delimiter belongs to it.
	body = bytes.TrimPrefix(body, []byte("\r"))
	body = bytes.TrimPrefix(body, []byte("\n"))
	return head, body, nil
}

func treeOf(node *yaml.Node) (*definition.Tree, error) {
	if node.Kind == 0 {
		return definition.New(), nil
	}
	return definition.FromYAMLNode(node)
}

func attrsOf(t *definition.Tree) attr.Attrs {
	var out attr.Attrs
	for k, v := range t.All() {
		out = append(out, attr.Attr{Key: k, Value: v})
	}
	return out
}

func declarationOf(node *yaml.Node) (appearance.Declaration, error) {
	t, err := definition.FromYAMLNode(node)
	if err != nil {
		return appearance.Declaration{}, err
	}

	d := appearance.Declaration{Group: appearance.Ungrouped}
	if g, ok := t.Lookup(groupKey); ok {
		s, ok := g.(string)
		if !ok {
			return appearance.Declaration{}, fmt.Errorf("group must be a string, got %T", g)
		}
		d.Group = s
		t.Remove(groupKey)
	}
	if c, ok := t.Lookup(appearance.ContentAttr); ok {
		d.Content = c
		t.Remove(appearance.ContentAttr)
	}
	d.Attrs = attrsOf(t)
	return d, nil
}

// Definition returns a copy of the page definition.
func (p *Page) Definition() *definition.Tree {
	return p.def.Clone()
}

// Populate adds the page styles to doc.
func (p *Page) Populate(doc *document.Document) {
	reg := doc.Appearance()
	for _, d := range p.Styles {
		if t, ok := d.Content.(*definition.Tree); ok {
			d.Content = t.Clone()
		}
		reg.AddDeclaration(d)
	}
}

// Document builds a standalone document holding the page definition and styles.
func (p *Page) Document(opts ...document.Option) *document.Document {
	doc := document.New(p.Definition(), opts...)
	p.Populate(doc)
	return doc
}

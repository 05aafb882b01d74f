package pages_test

import (
	"io/fs"
	"sync/atomic"
	"testing/fstest"
)

const productSource = `---
definition:
  name: Page Produit
  inLanguage: fr-FR
  url: https://monsite.com/chaussures
  properties:
    og:type: product
styles:
  - group: persistant
    src: /css/style.css
    preload: true
  - content: "h1 {color: red;}"
root:
  data-theme: dark
cache: main-view
---
# Hello
`

func siteFS() fstest.MapFS {
	return fstest.MapFS{
		"index.md":            {Data: []byte("---\ndefinition:\n  name: Home\n---\nWelcome")},
		"products/index.md":   {Data: []byte("---\ndefinition:\n  name: Products\n---\n")},
		"products/shoes.md":   {Data: []byte(productSource)},
		"broken.md":           {Data: []byte("---\ndefinition: [unclosed\n---\n")},
		"assets/style.css":    {Data: []byte("body{}")},
		"notes/draft.md.orig": {Data: []byte("ignored")},
	}
}

// countingFS counts opens and blocks them until gate is closed.
type countingFS struct {
	fsys    fs.FS
	gate    chan struct{}
	entered chan struct{}
	opens   atomic.Int32
}

func (c *countingFS) Open(name string) (fs.File, error) {
	if c.opens.Add(1) == 1 && c.entered != nil {
		close(c.entered)
	}
	if c.gate != nil {
		<-c.gate
	}
	return c.fsys.Open(name)
}

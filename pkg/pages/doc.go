// Package pages serves AriaML documents authored as markdown files.
//
// A page is a markdown file with an optional YAML frontmatter block:
//
//	---
//	definition:
//	  name: Product page
//	  inLanguage: en
//	styles:
//	  - group: persistant
//	    src: /css/site.css
//	    preload: true
//	  - content: "h1 {color: red;}"
//	root:
//	  data-theme: dark
//	cache: main-view
//	---
//	# Hello
//
// The definition seeds the document's JSON-LD tree, styles are registered on
// its appearance registry and root attributes land on the root element. The
// body is converted with goldmark.
//
// A Store loads pages from an fs.FS. The route "/a/b" maps to "a/b.md" or
// "a/b/index.md". Parsed pages are cached and concurrent loads of the same
// route share one read:
//
//	store := pages.NewStore(os.DirFS("site"), pages.WithStoreLogger(log))
//	if err := store.Warm(ctx); err != nil {
//		return err
//	}
//
// Handler mounts the store on an App. Each request gets a fresh document,
// negotiated against its headers, and the layout distributes the document
// into the dynamic definition, static and dynamic styles slots before the
// content slot:
//
//	app := ariaml.New(ariaml.WithHandlers(pages.NewHandler(store)))
//
// A page with a cache key whose key is announced in the nav-cache request
// header is answered with an empty placeholder instead of its content.
package pages

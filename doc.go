// Package ariaml serves AriaML documents over HTTP.
//
// An AriaML document is a structured page definition (JSON-LD shaped data)
// plus a set of styles, rendered around an <aria-ml> root element. The same
// handler answers browsers with a complete HTML page, AriaML-aware clients
// with the native document, and in-page navigations with a lightweight
// <aria-ml-fragment>. Each piece of definition and each style group is
// emitted at most once per response; whatever the handler did not place
// itself lands in a trailing JSON-LD block.
//
// # Quick Start
//
//	app := ariaml.New(
//	    ariaml.WithLogger(log),
//	    ariaml.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    ariaml.WithHandlers(&Products{}),
//	)
//
//	if err := app.Run(":8080"); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement [Handler] and declare routes. Router.Page registers a
// route for GET and HEAD:
//
//	type Products struct{}
//
//	func (h *Products) Routes(r ariaml.Router) {
//	    r.Page("/products/{slug}", h.show)
//	}
//
//	func (h *Products) show(c ariaml.Context) error {
//	    doc := c.NewDocument(definition.Pairs(
//	        "@context", "https://schema.org",
//	        "@type", "Product",
//	        "name", c.Param("slug"),
//	    ))
//	    doc.AddStyle(attr.Attrs{{Key: "content", Value: "main {display: grid}"}}, "layout")
//	    return c.RenderDocument(doc, nil, templ.Join(
//	        doc.AppearanceSlot(1, "layout"),
//	        doc.DefinitionScript(nil, 1, "name"),
//	    ))
//	}
//
// # Negotiation
//
// The render mode follows the request headers:
//
//   - Accept starting with text/aria-ml-fragment or application/aria-xml-fragment,
//     or an X-AriaML-Fragment header: fragment, 206
//   - Accept containing text/aria-ml or application/aria-xml: native, 200
//   - anything else: full HTML page, 200
//
// AriaML-Force-HTML: true keeps the mode but answers text/html. Every
// negotiated response varies on Accept, X-AriaML-Fragment and nav-cache.
//
// # Packages
//
//   - pkg/definition: the ordered definition tree and its JSON encoding
//   - pkg/appearance: style declarations grouped for emission
//   - pkg/document: the document model, consumption ledger and root lifecycle
//   - pkg/negotiate: request signals and the negotiation decision
//   - pkg/respond: response headers and status for a decision
//   - pkg/pages: Markdown pages with YAML frontmatter served as documents
package ariaml

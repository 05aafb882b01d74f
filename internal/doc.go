// Package internal provides the HTTP layer that serves AriaML documents.
//
// This package is internal. Import "github.com/ariaml/ariaml-go", which
// re-exports the public API.
//
// # Core Types
//
//   - App: routing, middleware, health checks and graceful shutdown
//   - Context: request and response access plus document negotiation
//   - Router: the interface handlers use to declare routes
//   - Handler, HandlerFunc, Middleware, ErrorHandler: the handler contract
//   - ResponseWriter: a tracking writer with before-write hooks
//   - HTTPError: an error carrying a status code and a user-facing message
//
// # Documents
//
// Context.NewDocument negotiates the request once, sets the document's render
// mode and makes the response vary on the negotiation headers.
// Context.RenderDocument then writes the negotiated status and headers and
// renders the document root around the handler's body:
//
//	func (h *Products) show(c ariaml.Context) error {
//	    doc := c.NewDocument(definition.Pairs(
//	        "@type", "Product",
//	        "name", "Lamp",
//	    ))
//	    return c.RenderDocument(doc, attr.Attrs{{Key: "lang", Value: "en"}}, views.Product(doc))
//	}
//
// A client that sends Accept: text/aria-ml-fragment receives only the
// fragment root with its definition and appearance blocks. A browser
// receives a full HTML page with the polyfill script.
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed to any function that
// expects a standard library context.
//
// # Lifecycle
//
// App.Run runs startup hooks, listens, serves, and on SIGINT or SIGTERM
// shuts down gracefully before running shutdown hooks.
package internal

// Package document implements the request-scoped AriaML document model.
//
// A Document joins a definition tree (the JSON-LD description of the page)
// and an appearance registry (style and resource declarations) under a
// consumption ledger. Templates pull output from the document through the
// consume calls, in any order and as many times as they like; every
// definition key and every appearance group is written at most once.
//
//	doc := document.New(definition.Pairs(
//		"name", "Product page",
//		"inLanguage", "fr-FR",
//		"url", "https://example.com/shoes",
//	))
//	doc.AddStyle(attr.Attrs{{Key: "src", Value: "/css/site.css"}, {Key: "preload", Value: true}}, "persistant")
//
//	start, _ := doc.StartTag(attr.Attrs{{Key: "nav-base-url", Value: "/"}})
//	early := doc.ConsumeDefinition("name", "inLanguage") // only these two keys
//	rest := doc.ConsumeDefinition()                      // everything else
//	end, _ := doc.EndTag()                               // trailing block is {}
//
// # Render modes
//
// The negotiated mode (see package negotiate) selects the envelope written by
// StartTag and EndTag: a complete HTML page with a generated <head> in full
// mode, the bare <aria-ml> element in native mode, or an <aria-ml-fragment>
// preceded by a refresh fallback in fragment mode. Set the mode with SetMode
// or WithMode before StartTag; the respond package does it from the request.
//
// # Lifecycle
//
// The root element moves from Unopened to Opened to Closed. Calling StartTag
// twice, EndTag before StartTag or EndTag twice returns ErrAlreadyStarted,
// ErrNotStarted or ErrAlreadyEnded.
//
// # Components
//
// Wrap, DefinitionScript and AppearanceSlot expose the same operations as
// templ components. They consume when rendered, not when built.
package document

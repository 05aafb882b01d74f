// Package negotiate derives how an AriaML response is rendered from the
// inbound request headers.
//
// A request is summarised as Signals, a lower-cased header snapshot that can
// be built from an *http.Request, an http.Header or a plain map. Negotiate
// turns Signals into a Decision holding the render mode, the HTTP status and
// the content type:
//
//	d := negotiate.Negotiate(negotiate.FromRequest(r))
//	d.Mode        // ModeFull, ModeNative or ModeFragment
//	d.Status      // 200, or 206 for fragments
//	d.ContentType // "text/html", "text/aria-ml", "text/aria-ml-fragment"...
//
// Negotiation never fails: unknown or missing headers fall through to a full
// HTML page with status 200.
//
// The nav-cache header carries a JSON list of view keys the client already
// holds. Signals.ClientHasCache reports membership; malformed input is treated
// as an empty list.
package negotiate

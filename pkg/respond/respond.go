package respond

import (
	"net/http"

	"github.com/ariaml/ariaml-go/pkg/negotiate"
)

// Vary lists the request headers a negotiated response depends on.
const Vary = "Accept, X-AriaML-Fragment, nav-cache"

// Cache-Control values.
const (
	CacheFragment = "no-cache, no-store, must-revalidate"
	CacheDocument = "public, max-age=0"
)

// Target is the part of a document the synchronizer configures.
type Target interface {
	SetMode(negotiate.Mode)
}

// Response is the negotiated status and header set.
type Response struct {
	Header   http.Header
	Decision negotiate.Decision
}

// Status returns the HTTP status code.
func (r Response) Status() int {
	return r.Decision.Status
}

// Mode returns the negotiated render mode.
func (r Response) Mode() negotiate.Mode {
	return r.Decision.Mode
}

// ApplyTo negotiates s, sets the render mode of doc and returns the response
// status and headers. A nil doc only computes the response.
func ApplyTo(s negotiate.Signals, doc Target) Response {
	d := negotiate.Negotiate(s)
	if doc != nil {
		doc.SetMode(d.Mode)
	}

	cache := CacheDocument
	if d.IsFragment() {
		cache = CacheFragment
	}

	h := make(http.Header, 3)
	h.Set(negotiate.HeaderContentType, negotiate.WithCharset(d.ContentType))
	h.Set(negotiate.HeaderVary, Vary)
	h.Set(negotiate.HeaderCacheControl, cache)

	return Response{Decision: d, Header: h}
}

// ApplyHeaders copies the response headers onto w, replacing existing values.
func (r Response) ApplyHeaders(w http.ResponseWriter) {
	dst := w.Header()
	for k, vs := range r.Header {
		dst[k] = append([]string(nil), vs...)
	}
}

// Write synchronizes doc with the request, applies the headers and writes the status.
func Write(w http.ResponseWriter, req *http.Request, doc Target) Response {
	resp := ApplyTo(negotiate.FromRequest(req), doc)
	resp.ApplyHeaders(w)
	w.WriteHeader(resp.Status())
	return resp
}

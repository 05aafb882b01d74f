package negotiate

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"
)

// Signals is an immutable, case-insensitive snapshot of request headers.
type Signals struct {
	headers  map[string]string
	navCache []string
}

// NewSignals builds signals from a header map. Names are lower-cased.
func NewSignals(headers map[string]string) Signals {
	s := Signals{headers: make(map[string]string, len(headers))}
	for k, v := range headers {
		s.headers[strings.ToLower(k)] = v
	}
	s.navCache = ParseNavCache(s.headers[strings.ToLower(HeaderNavCache)])
	return s
}

// FromHeader builds signals from an http.Header. Repeated values are joined with ", ".
func FromHeader(h http.Header) Signals {
	m := make(map[string]string, len(h))
	for k, vs := range h {
		m[k] = strings.Join(vs, ", ")
	}
	return NewSignals(m)
}

// FromRequest builds signals from the request headers.
func FromRequest(r *http.Request) Signals {
	return FromHeader(r.Header)
}

// Get returns the header value, or "" when absent.
func (s Signals) Get(name string) string {
	return s.headers[strings.ToLower(name)]
}

// Has reports whether the header was sent, even with an empty value.
func (s Signals) Has(name string) bool {
	_, ok := s.headers[strings.ToLower(name)]
	return ok
}

// Accept returns the lower-cased Accept header.
func (s Signals) Accept() string {
	return strings.ToLower(s.Get(HeaderAccept))
}

// FragmentRequested reports whether the fragment flag header is present.
func (s Signals) FragmentRequested() bool {
	return s.Has(HeaderFragment)
}

// ForceHTML reports whether the client asked for a text/html content type.
func (s Signals) ForceHTML() bool {
	return strings.EqualFold(strings.TrimSpace(s.Get(HeaderForceHTML)), "true")
}

// NavCache returns the view keys the client declared as cached.
func (s Signals) NavCache() []string {
	return slices.Clone(s.navCache)
}

// ClientHasCache reports whether key is in the client navigation cache.
func (s Signals) ClientHasCache(key string) bool {
	return slices.Contains(s.navCache, key)
}

// ParseNavCache decodes a nav-cache header value. The value must be a JSON
// list; non-string entries are ignored. Invalid input yields nil.
func ParseNavCache(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var entries []any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if k, ok := e.(string); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripHTML removes all markup and returns plain text.
// Entities are decoded so the result can be escaped once by the caller.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	initPolicies()
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// PlainText strips markup like StripHTML and collapses runs of whitespace
// into single spaces. Suited to single-line values such as meta descriptions.
func PlainText(s string) string {
	return strings.Join(strings.Fields(StripHTML(s)), " ")
}

package negotiate

import (
	"net/http"
	"slices"
	"strings"
)

// Decision is the outcome of negotiation.
type Decision struct {
	ContentType string
	Mode        Mode
	Status      int
}

// IsFragment reports whether the response is a navigation fragment.
func (d Decision) IsFragment() bool {
	return d.Mode == ModeFragment
}

// ExpectsHTML reports whether the document must be wrapped in an HTML page.
func (d Decision) ExpectsHTML() bool {
	return d.Mode == ModeFull
}

// Negotiate maps request signals to a decision.
//
// Rules, in order: an Accept header starting with a fragment type or the
// presence of the fragment flag selects ModeFragment (206). Otherwise an Accept
// header containing a native type selects ModeNative (200). Anything else is
// ModeFull (200, text/html). The matched media type only selects the mode: the
// content type is always TypeFragment or TypeNative. ForceHTML replaces it with
// text/html without changing mode or status.
func Negotiate(s Signals) Decision {
	accept := s.Accept()

	if isFragment(accept, s.FragmentRequested()) {
		return Decision{
			Mode:        ModeFragment,
			Status:      http.StatusPartialContent,
			ContentType: forced(s, TypeFragment),
		}
	}

	if isNative(accept) {
		return Decision{
			Mode:        ModeNative,
			Status:      http.StatusOK,
			ContentType: forced(s, TypeNative),
		}
	}

	return Decision{Mode: ModeFull, Status: http.StatusOK, ContentType: TypeHTML}
}

func isFragment(accept string, flag bool) bool {
	return flag || slices.ContainsFunc(FragmentTypes, func(t string) bool {
		return strings.HasPrefix(accept, t)
	})
}

func isNative(accept string) bool {
	return slices.ContainsFunc(NativeTypes, func(t string) bool {
		return strings.Contains(accept, t)
	})
}

func forced(s Signals, mediaType string) string {
	if s.ForceHTML() {
		return TypeHTML
	}
	return mediaType
}

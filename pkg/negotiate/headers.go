package negotiate

// Request headers.
const (
	HeaderAccept    = "Accept"
	HeaderFragment  = "X-AriaML-Fragment"
	HeaderForceHTML = "AriaML-Force-HTML"
	HeaderNavCache  = "Nav-Cache"
)

// Response headers.
const (
	HeaderContentType  = "Content-Type"
	HeaderVary         = "Vary"
	HeaderCacheControl = "Cache-Control"
)

// Media types.
const (
	TypeHTML            = "text/html"
	TypeFragment        = "text/aria-ml-fragment"
	TypeFragmentXML     = "application/aria-xml-fragment"
	TypeNative          = "text/aria-ml"
	TypeNativeXML       = "application/aria-xml"
	defaultCharsetParam = "; charset=utf-8"
)

// FragmentTypes are matched as a prefix of the Accept header.
var FragmentTypes = []string{TypeFragment, TypeFragmentXML}

// NativeTypes are matched anywhere in the Accept header.
var NativeTypes = []string{TypeNative, TypeNativeXML}

// WithCharset appends the utf-8 charset parameter to a media type.
func WithCharset(mediaType string) string {
	return mediaType + defaultCharsetParam
}

package negotiate

// Mode selects the envelope a document is rendered in.
type Mode uint8

const (
	// ModeFull wraps the document in a complete HTML page.
	ModeFull Mode = iota
	// ModeNative emits the bare <aria-ml> element.
	ModeNative
	// ModeFragment emits an <aria-ml-fragment> for client-side navigation.
	ModeFragment
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeNative:
		return "native"
	case ModeFragment:
		return "fragment"
	}
	return "unknown"
}

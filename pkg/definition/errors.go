package definition

import "errors"

var (
	// ErrNotMapping indicates the source document is not a mapping at its root.
	ErrNotMapping = errors.New("definition must be a mapping")

	// ErrInvalidSource indicates the source document could not be parsed.
	ErrInvalidSource = errors.New("invalid definition source")
)

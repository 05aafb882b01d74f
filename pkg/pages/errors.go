package pages

import "errors"

var (
	// ErrPageNotFound indicates no source file maps to the route.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidFrontmatter indicates a malformed YAML frontmatter block.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrRenderFailed indicates the markdown body could not be converted.
	ErrRenderFailed = errors.New("failed to render page")
)

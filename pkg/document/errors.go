package document

import "errors"

var (
	// ErrAlreadyStarted is returned when StartTag is called more than once.
	ErrAlreadyStarted = errors.New("document: root element already opened")

	// ErrNotStarted is returned when EndTag is called before StartTag.
	ErrNotStarted = errors.New("document: root element not opened")

	// ErrAlreadyEnded is returned when EndTag is called more than once.
	ErrAlreadyEnded = errors.New("document: root element already closed")

	// ErrUnknownNamespace is returned when consuming from a namespace the document does not hold.
	ErrUnknownNamespace = errors.New("document: unknown namespace")
)

package workflow

import "errors"

var (
	// ErrInvalidTransition is returned when the requested edge is not declared
	// for the document's current status
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnknownType is returned when no machine is registered for a document type
	ErrUnknownType = errors.New("unknown document type")
)

package analyses

import "errors"

var (
	// ErrNotFound indicates no analysis matched the given identifier.
	ErrNotFound = errors.New("analysis not found")
	// ErrInvalidID indicates the identifier is not a well-formed ObjectID.
	// It is returned before any store lookup is attempted.
	ErrInvalidID = errors.New("invalid analysis ID format")
)

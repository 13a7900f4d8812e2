package tracker

import "errors"

// The four failure classes an operation can surface. Anything else that
// comes out of a Service method is a data-service failure wrapped around
// the storage error.
var (
	// ErrValidation means the input was missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden means the actor's role or department does not permit
	// the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means the complaint or department does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition means the requested status is outside the
	// known enumeration.
	ErrInvalidTransition = errors.New("invalid status")
)

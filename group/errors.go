package group

import "errors"

// Decoding errors shared by all Group implementations. Backends wrap
// these with curve-specific detail so callers can classify failures
// with errors.Is.
var (
	ErrInvalidScalarLength = errors.New("invalid scalar length")
	ErrInvalidScalar       = errors.New("invalid scalar value")
	ErrInvalidPointLength  = errors.New("invalid point length")
	ErrInvalidPoint        = errors.New("invalid point")
)

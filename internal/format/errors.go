package format

import "errors"

var (
	// ErrMalformedBoolean indicates a boolean payload byte other than 0 or 1.
	ErrMalformedBoolean = errors.New("format: malformed boolean")
	// ErrInvalidUTF8 indicates a key or text payload that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("format: invalid UTF-8 sequence")
	// ErrUnknownTag indicates an unrecognized type tag. Decoding cannot
	// continue past it because the payload length is unknown.
	ErrUnknownTag = errors.New("format: unknown type tag")
)

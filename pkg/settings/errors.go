package settings

import "errors"

var (
	// ErrKeyNotFound indicates the requested key is absent from the table.
	ErrKeyNotFound = errors.New("settings: key not found")
	// ErrInvalidBooleanLiteral indicates a write literal outside the accepted
	// boolean sets.
	ErrInvalidBooleanLiteral = errors.New("settings: invalid boolean literal")
	// ErrInvalidNumericLiteral indicates a write literal that does not parse
	// as the entry's numeric type.
	ErrInvalidNumericLiteral = errors.New("settings: invalid numeric literal")
	// ErrTextTooLong indicates a write literal that does not fit a text
	// payload's u16 length prefix.
	ErrTextTooLong = errors.New("settings: text value exceeds 65535 bytes")
	// ErrUnsupportedOperation indicates an attempt to modify a binary value.
	// Binary values are read-only.
	ErrUnsupportedOperation = errors.New("settings: binary values cannot be modified")
)

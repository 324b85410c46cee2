package format

import (
	"fmt"
	"unicode/utf8"

	"github.com/inventor200/MindustryParser/internal/buf"
)

// DecodeKey reads a length-prefixed UTF-8 key: u16 byte count, then that
// many bytes. Keys are not addressable, so no offset is reported.
func DecodeKey(c *buf.Cursor) (string, error) {
	n, err := c.PopU16BE()
	if err != nil {
		return "", fmt.Errorf("key length: %w", err)
	}
	raw, err := c.PopN(int(n))
	if err != nil {
		return "", fmt.Errorf("key bytes: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("key: %w", ErrInvalidUTF8)
	}
	return string(raw), nil
}

// DecodeValue reads the payload for tag and returns the decoded value along
// with the byte offset of the payload's first byte. The address is captured
// after the tag and any length prefix have been consumed, so it points at
// the payload proper.
func DecodeValue(tag byte, c *buf.Cursor) (Value, int, error) {
	switch tag {
	case TagBoolean:
		addr := c.Offset()
		b, err := c.PopByte()
		if err != nil {
			return Value{}, 0, fmt.Errorf("boolean: %w", err)
		}
		switch b {
		case 0:
			return NewBoolean(false), addr, nil
		case 1:
			return NewBoolean(true), addr, nil
		default:
			return Value{}, 0, fmt.Errorf("boolean payload 0x%02X: %w", b, ErrMalformedBoolean)
		}

	case TagUInt32:
		addr := c.Offset()
		v, err := c.PopU32BE()
		if err != nil {
			return Value{}, 0, fmt.Errorf("uint32: %w", err)
		}
		return NewUInt32(v), addr, nil

	case TagUInt64:
		addr := c.Offset()
		v, err := c.PopU64BE()
		if err != nil {
			return Value{}, 0, fmt.Errorf("uint64: %w", err)
		}
		return NewUInt64(v), addr, nil

	case TagFloat32:
		addr := c.Offset()
		v, err := c.PopF32BE()
		if err != nil {
			return Value{}, 0, fmt.Errorf("float32: %w", err)
		}
		return NewFloat32(v), addr, nil

	case TagText:
		n, err := c.PopU16BE()
		if err != nil {
			return Value{}, 0, fmt.Errorf("text length: %w", err)
		}
		addr := c.Offset()
		raw, err := c.PopN(int(n))
		if err != nil {
			return Value{}, 0, fmt.Errorf("text bytes: %w", err)
		}
		if !utf8.Valid(raw) {
			return Value{}, 0, fmt.Errorf("text: %w", ErrInvalidUTF8)
		}
		return NewText(string(raw)), addr, nil

	case TagBytes:
		n, err := c.PopU32BE()
		if err != nil {
			return Value{}, 0, fmt.Errorf("bytes length: %w", err)
		}
		addr := c.Offset()
		raw, err := c.PopN(int(n))
		if err != nil {
			return Value{}, 0, fmt.Errorf("bytes payload: %w", err)
		}
		// Copy out of the file buffer; the value outlives the decode.
		return NewBytes(append([]byte(nil), raw...)), addr, nil

	default:
		return Value{}, 0, fmt.Errorf("tag 0x%02X: %w", tag, ErrUnknownTag)
	}
}

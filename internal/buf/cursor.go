// Package buf contains the consuming byte cursor and big-endian helpers the
// settings codec is built on.
package buf

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrUnexpectedEOF indicates the input ran out of bytes mid-structure. The
// settings file is assumed well-formed, so this is fatal to the whole decode.
var ErrUnexpectedEOF = errors.New("buf: unexpectedly reached the end of input")

// Cursor is a consuming reader over a byte sequence that tracks how many
// bytes have been consumed since construction. Decode routines thread a
// single Cursor instead of carrying a buffer and an offset counter
// separately; the offset is what value addresses are derived from.
type Cursor struct {
	rest []byte
	off  int
}

// NewCursor returns a cursor positioned at the start of b. The cursor does
// not copy b; callers must not mutate it while decoding.
func NewCursor(b []byte) *Cursor {
	return &Cursor{rest: b}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int {
	return len(c.rest)
}

// PopByte consumes and returns the next byte.
func (c *Cursor) PopByte() (byte, error) {
	if len(c.rest) == 0 {
		return 0, ErrUnexpectedEOF
	}
	b := c.rest[0]
	c.rest = c.rest[1:]
	c.off++
	return b, nil
}

// PopN consumes and returns the next n bytes. The returned slice aliases the
// cursor's underlying buffer; callers that retain it past the decode must
// copy.
func (c *Cursor) PopN(n int) ([]byte, error) {
	if n < 0 || n > len(c.rest) {
		return nil, ErrUnexpectedEOF
	}
	b := c.rest[:n]
	c.rest = c.rest[n:]
	c.off += n
	return b, nil
}

// PopU16BE consumes a big-endian uint16.
func (c *Cursor) PopU16BE() (uint16, error) {
	b, err := c.PopN(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// PopU32BE consumes a big-endian uint32.
func (c *Cursor) PopU32BE() (uint32, error) {
	b, err := c.PopN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// PopU64BE consumes a big-endian uint64.
func (c *Cursor) PopU64BE() (uint64, error) {
	b, err := c.PopN(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// PopF32BE consumes a big-endian IEEE-754 float32.
func (c *Cursor) PopF32BE() (float32, error) {
	v, err := c.PopU32BE()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

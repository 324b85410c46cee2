package buf

import (
	"encoding/binary"
	"math"
)

// Big-endian append helpers for the encode path.
//
// Implementation: encoding/binary.BigEndian throughout. The standard library
// routines inline well; there is no profit in hand-rolled shifting here.

// AppendU16BE appends v to b in big-endian order.
func AppendU16BE(b []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(b, v)
}

// AppendU32BE appends v to b in big-endian order.
func AppendU32BE(b []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(b, v)
}

// AppendU64BE appends v to b in big-endian order.
func AppendU64BE(b []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(b, v)
}

// AppendF32BE appends the IEEE-754 bits of v to b in big-endian order.
func AppendF32BE(b []byte, v float32) []byte {
	return binary.BigEndian.AppendUint32(b, math.Float32bits(v))
}

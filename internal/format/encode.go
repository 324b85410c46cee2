package format

import (
	"github.com/inventor200/MindustryParser/internal/buf"
)

// AppendKey appends the length-prefixed key bytes to dst and returns the
// extended slice.
func AppendKey(dst []byte, key string) []byte {
	dst = buf.AppendU16BE(dst, uint16(len(key)))
	return append(dst, key...)
}

// AppendValue appends the tag byte followed by the value's payload. Length
// prefixes are recomputed from the payload as it stands now, never cached
// from decode time, and addresses are never serialized.
func AppendValue(dst []byte, v Value) []byte {
	dst = append(dst, byte(v.Kind()))
	switch v.Kind() {
	case KindBoolean:
		if v.Bool() {
			return append(dst, 1)
		}
		return append(dst, 0)
	case KindUInt32:
		return buf.AppendU32BE(dst, v.UInt32())
	case KindUInt64:
		return buf.AppendU64BE(dst, v.UInt64())
	case KindFloat32:
		return buf.AppendF32BE(dst, v.Float32())
	case KindText:
		dst = buf.AppendU16BE(dst, uint16(len(v.Text())))
		return append(dst, v.Text()...)
	case KindBytes:
		dst = buf.AppendU32BE(dst, uint32(len(v.Bytes())))
		return append(dst, v.Bytes()...)
	default:
		return dst
	}
}

// EncodedSize returns the number of bytes AppendValue will emit for v,
// including the tag byte. Used to presize encode buffers.
func EncodedSize(v Value) int {
	switch v.Kind() {
	case KindBoolean:
		return TagSize + 1
	case KindUInt32, KindFloat32:
		return TagSize + 4
	case KindUInt64:
		return TagSize + 8
	case KindText:
		return TagSize + TextLenSize + len(v.Text())
	case KindBytes:
		return TagSize + BytesLenSize + len(v.Bytes())
	default:
		return TagSize
	}
}

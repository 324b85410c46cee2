// Package format models the settings.bin wire format: a big-endian u32 entry
// count followed by flat (key, tag, payload) records. It provides the typed
// value union and the per-tag decode/encode routines.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant of a Value is active. Kind values coincide
// with the wire tags.
type Kind byte

const (
	KindBoolean = Kind(TagBoolean)
	KindUInt32  = Kind(TagUInt32)
	KindUInt64  = Kind(TagUInt64)
	KindFloat32 = Kind(TagFloat32)
	KindText    = Kind(TagText)
	KindBytes   = Kind(TagBytes)
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindUInt32:
		return "uint32"
	case KindUInt64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	default:
		return fmt.Sprintf("kind(0x%02X)", byte(k))
	}
}

// Value is a tagged union over the six settings types. Exactly one variant
// is active; the kind is fixed at construction. Edits replace a value with a
// fresh one of the same kind rather than retagging.
type Value struct {
	kind Kind
	b    bool
	u64  uint64 // backs both UInt32 and UInt64
	f32  float32
	str  string
	raw  []byte
}

// NewBoolean returns a boolean value.
func NewBoolean(v bool) Value { return Value{kind: KindBoolean, b: v} }

// NewUInt32 returns an unsigned 32-bit integer value.
func NewUInt32(v uint32) Value { return Value{kind: KindUInt32, u64: uint64(v)} }

// NewUInt64 returns an unsigned 64-bit integer value.
func NewUInt64(v uint64) Value { return Value{kind: KindUInt64, u64: v} }

// NewFloat32 returns a 32-bit float value.
func NewFloat32(v float32) Value { return Value{kind: KindFloat32, f32: v} }

// NewText returns a UTF-8 text value.
func NewText(v string) Value { return Value{kind: KindText, str: v} }

// NewBytes returns an opaque binary value. The slice is owned by the value.
func NewBytes(v []byte) Value { return Value{kind: KindBytes, raw: v} }

// Kind returns the active variant.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Meaningful only when Kind is KindBoolean.
func (v Value) Bool() bool { return v.b }

// UInt32 returns the uint32 payload.
func (v Value) UInt32() uint32 { return uint32(v.u64) }

// UInt64 returns the uint64 payload.
func (v Value) UInt64() uint64 { return v.u64 }

// Float32 returns the float32 payload.
func (v Value) Float32() float32 { return v.f32 }

// Text returns the text payload.
func (v Value) Text() string { return v.str }

// Bytes returns the binary payload without copying.
func (v Value) Bytes() []byte { return v.raw }

// String renders the payload for console display: scalars in decimal, text
// quoted, binary as bracketed upper-hex octets.
func (v Value) String() string {
	switch v.kind {
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindUInt32, KindUInt64:
		return strconv.FormatUint(v.u64, 10)
	case KindFloat32:
		return strconv.FormatFloat(float64(v.f32), 'g', -1, 32)
	case KindText:
		return strconv.Quote(v.str)
	case KindBytes:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, b := range v.raw {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%02X", b)
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		return "<invalid>"
	}
}

package format

// Type tags as stored on the wire, one byte preceding each value payload.
const (
	TagBoolean byte = 0
	TagUInt32  byte = 1
	TagUInt64  byte = 2
	TagFloat32 byte = 3
	TagText    byte = 4
	TagBytes   byte = 5
)

// Fixed field widths of the wire format. All integers are big-endian.
const (
	HeaderSize   = 4 // u32 entry count preceding all entries
	TagSize      = 1
	KeyLenSize   = 2 // u16 key byte-length prefix
	TextLenSize  = 2 // u16 text byte-length prefix
	BytesLenSize = 4 // u32 blob byte-length prefix
)

// MaxTextLen is the largest text payload a u16 length prefix can describe.
// Longer payloads must be rejected before encode, or the prefix would wrap.
const MaxTextLen = 1<<16 - 1

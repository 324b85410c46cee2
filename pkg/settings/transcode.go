package settings

import (
	"fmt"
	"os"

	"github.com/inventor200/MindustryParser/internal/buf"
	"github.com/inventor200/MindustryParser/internal/format"
	"github.com/inventor200/MindustryParser/internal/writer"
)

// DecodeBytes parses a whole settings file image into a Table: a u32
// big-endian entry count, then per entry a length-prefixed key, a tag byte,
// and the tag's payload. Any failure aborts the decode; there is no partial
// table. A key that appears twice keeps only the later entry, with no
// diagnostic.
func DecodeBytes(b []byte) (*Table, error) {
	c := buf.NewCursor(b)
	count, err := c.PopU32BE()
	if err != nil {
		return nil, fmt.Errorf("entry count: %w", err)
	}

	t := NewTable()
	for i := uint32(0); i < count; i++ {
		key, err := format.DecodeKey(c)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		tag, err := c.PopByte()
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): tag: %w", i, key, err)
		}
		v, addr, err := format.DecodeValue(tag, c)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, key, err)
		}
		t.put(key, &Entry{Value: v, Address: addr})
	}
	return t, nil
}

// DecodeFile reads path fully into memory and decodes it. The format has no
// streaming affordance; settings files are small.
func DecodeFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	t, err := DecodeBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Encode serializes the table back to the wire format: the entry count as it
// stands now, then key, tag, and payload per entry in the table's insertion
// order. A decode followed by Encode with no edits reproduces the input
// bytes exactly.
func Encode(t *Table) []byte {
	items := t.Entries()

	size := format.HeaderSize
	for _, it := range items {
		size += format.KeyLenSize + len(it.Key) + format.EncodedSize(it.Entry.Value)
	}

	out := buf.AppendU32BE(make([]byte, 0, size), uint32(len(items)))
	for _, it := range items {
		out = format.AppendKey(out, it.Key)
		out = format.AppendValue(out, it.Entry.Value)
	}
	return out
}

// Save encodes the table and replaces the file at path atomically.
func Save(t *Table, path string) error {
	w := &writer.FileWriter{Path: path}
	if err := w.WriteSettings(Encode(t)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

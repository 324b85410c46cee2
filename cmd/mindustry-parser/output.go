package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/inventor200/MindustryParser/internal/format"
	"github.com/inventor200/MindustryParser/pkg/settings"
)

// entryJSON is the JSON projection of one table entry.
type entryJSON struct {
	Key     string `json:"key"`
	Type    string `json:"type"`
	Value   any    `json:"value"`
	Address int    `json:"address"`
}

func toEntryJSON(key string, e *settings.Entry) entryJSON {
	out := entryJSON{Key: key, Type: e.Value.Kind().String(), Address: e.Address}
	switch e.Value.Kind() {
	case format.KindBoolean:
		out.Value = e.Value.Bool()
	case format.KindUInt32:
		out.Value = e.Value.UInt32()
	case format.KindUInt64:
		out.Value = e.Value.UInt64()
	case format.KindFloat32:
		out.Value = e.Value.Float32()
	case format.KindText:
		out.Value = e.Value.Text()
	case format.KindBytes:
		out.Value = hex.EncodeToString(e.Value.Bytes())
	}
	return out
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRead emits one read result. Text mode uses the legacy
// key=value@[addr:HEX] form with a trailing comma and no newline; the
// caller terminates the line once all operations have run.
func printRead(w io.Writer, key string, e *settings.Entry, jsonOut bool) error {
	if jsonOut {
		return printJSON(w, toEntryJSON(key, e))
	}
	_, err := fmt.Fprintf(w, "%s=%s,", key, e)
	return err
}

// printAll lists every entry in file order.
func printAll(w io.Writer, table *settings.Table, jsonOut bool) error {
	items := table.Entries()
	if jsonOut {
		out := make([]entryJSON, 0, len(items))
		for _, it := range items {
			out = append(out, toEntryJSON(it.Key, it.Entry))
		}
		return printJSON(w, out)
	}
	for _, it := range items {
		if _, err := fmt.Fprintf(w, "%s=%s\n", it.Key, it.Entry); err != nil {
			return err
		}
	}
	return nil
}

// Package settings is the public API over the settings.bin codec: decode a
// file into an in-memory table of typed, address-annotated values, look up
// and update entries, and re-encode the table back to the wire format.
package settings

import (
	"fmt"

	"github.com/inventor200/MindustryParser/internal/format"
)

// Entry couples a decoded value with the byte address of its payload in the
// file it came from. The address is diagnostic metadata captured at decode
// time; it is not re-validated and goes stale as soon as the table is edited.
type Entry struct {
	Value   format.Value
	Address int
}

// String renders the entry in the console diagnostic form
// value@[addr:HEX].
func (e *Entry) String() string {
	return fmt.Sprintf("%s@[addr:%X]", e.Value, e.Address)
}

// Item is one (key, entry) pair as yielded by Entries.
type Item struct {
	Key   string
	Entry *Entry
}

// Table is the in-memory settings model: unique keys mapped to entries.
// Insertion order is preserved, so a table built by decode walks — and
// re-encodes in — file order.
type Table struct {
	entries map[string]*Entry
	order   []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the entry for key, or false when absent. O(1).
func (t *Table) Lookup(key string) (*Entry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// put inserts or replaces the entry for key. A repeated key keeps its
// original position and the later entry wins, matching the decode contract
// for duplicate keys in the file.
func (t *Table) put(key string, e *Entry) {
	if _, ok := t.entries[key]; !ok {
		t.order = append(t.order, key)
	}
	t.entries[key] = e
}

// Update parses raw according to the existing entry's kind and replaces the
// payload in place. The kind never changes: a boolean entry stays boolean, a
// text entry stays text. Binary entries are read-only and always fail with
// ErrUnsupportedOperation. On any error the table is left unmodified.
func (t *Table) Update(key, raw string) error {
	e, ok := t.entries[key]
	if !ok {
		return fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	v, err := parseLiteral(e.Value.Kind(), raw)
	if err != nil {
		return fmt.Errorf("%q: %w", key, err)
	}
	e.Value = v
	return nil
}

// Entries returns the table's (key, entry) pairs in insertion order.
func (t *Table) Entries() []Item {
	items := make([]Item, 0, len(t.order))
	for _, key := range t.order {
		items = append(items, Item{Key: key, Entry: t.entries[key]})
	}
	return items
}

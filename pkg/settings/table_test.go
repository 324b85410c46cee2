package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventor200/MindustryParser/internal/format"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	tbl := NewTable()
	tbl.put("fullscreen", &Entry{Value: format.NewBoolean(false), Address: 16})
	tbl.put("uiscale", &Entry{Value: format.NewUInt32(5), Address: 31})
	tbl.put("playtime", &Entry{Value: format.NewUInt64(1234), Address: 45})
	tbl.put("zoom", &Entry{Value: format.NewFloat32(1.5), Address: 60})
	tbl.put("name", &Entry{Value: format.NewText("anuke"), Address: 72})
	tbl.put("lastmap", &Entry{Value: format.NewBytes([]byte{0xCA, 0xFE}), Address: 90})
	return tbl
}

func TestLookup(t *testing.T) {
	tbl := testTable(t)

	e, ok := tbl.Lookup("uiscale")
	require.True(t, ok)
	assert.Equal(t, uint32(5), e.Value.UInt32())
	assert.Equal(t, 31, e.Address)

	_, ok = tbl.Lookup("missing")
	assert.False(t, ok)
}

// Updating an entry replaces the payload but never the kind.
func TestUpdatePreservesKind(t *testing.T) {
	tests := []struct {
		key   string
		raw   string
		check func(t *testing.T, e *Entry)
	}{
		{"fullscreen", "yes", func(t *testing.T, e *Entry) {
			assert.Equal(t, format.KindBoolean, e.Value.Kind())
			assert.True(t, e.Value.Bool())
		}},
		{"uiscale", "42", func(t *testing.T, e *Entry) {
			assert.Equal(t, format.KindUInt32, e.Value.Kind())
			assert.Equal(t, uint32(42), e.Value.UInt32())
		}},
		{"playtime", "9999999999", func(t *testing.T, e *Entry) {
			assert.Equal(t, format.KindUInt64, e.Value.Kind())
			assert.Equal(t, uint64(9999999999), e.Value.UInt64())
		}},
		{"zoom", "0.25", func(t *testing.T, e *Entry) {
			assert.Equal(t, format.KindFloat32, e.Value.Kind())
			assert.Equal(t, float32(0.25), e.Value.Float32())
		}},
		{"name", "router", func(t *testing.T, e *Entry) {
			assert.Equal(t, format.KindText, e.Value.Kind())
			assert.Equal(t, "router", e.Value.Text())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			tbl := testTable(t)
			require.NoError(t, tbl.Update(tt.key, tt.raw))
			e, ok := tbl.Lookup(tt.key)
			require.True(t, ok)
			tt.check(t, e)
		})
	}
}

func TestUpdateKeyNotFound(t *testing.T) {
	tbl := testTable(t)
	before := tbl.Entries()

	err := tbl.Update("nope", "1")
	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, before, tbl.Entries(), "failed update must not mutate the table")
}

func TestUpdateBytesIsReadOnly(t *testing.T) {
	tbl := testTable(t)

	err := tbl.Update("lastmap", "0102")
	require.ErrorIs(t, err, ErrUnsupportedOperation)

	e, ok := tbl.Lookup("lastmap")
	require.True(t, ok)
	assert.Equal(t, []byte{0xCA, 0xFE}, e.Value.Bytes(), "failed update must not mutate the entry")
}

func TestUpdateBadLiterals(t *testing.T) {
	tests := []struct {
		key  string
		raw  string
		want error
	}{
		{"fullscreen", "maybe", ErrInvalidBooleanLiteral},
		{"uiscale", "not-a-number", ErrInvalidNumericLiteral},
		{"uiscale", "-3", ErrInvalidNumericLiteral},
		{"uiscale", "4294967296", ErrInvalidNumericLiteral}, // one past MaxUint32
		{"playtime", "12.5", ErrInvalidNumericLiteral},
		{"zoom", "fast", ErrInvalidNumericLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.raw, func(t *testing.T) {
			tbl := testTable(t)
			err := tbl.Update(tt.key, tt.raw)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseBool(t *testing.T) {
	falseLits := []string{"0", "false", "f", "nil", "no", "off", "inactive", "OFF", "No", "NIL"}
	for _, lit := range falseLits {
		v, err := ParseBool(lit)
		require.NoError(t, err, "literal %q", lit)
		assert.False(t, v, "literal %q", lit)
	}

	trueLits := []string{"1", "true", "t", "yes", "on", "active", "ON", "Yes", "TRUE"}
	for _, lit := range trueLits {
		v, err := ParseBool(lit)
		require.NoError(t, err, "literal %q", lit)
		assert.True(t, v, "literal %q", lit)
	}

	for _, lit := range []string{"maybe", "", "2", "offf"} {
		_, err := ParseBool(lit)
		require.ErrorIs(t, err, ErrInvalidBooleanLiteral, "literal %q", lit)
	}
}

func TestEntriesInsertionOrder(t *testing.T) {
	tbl := testTable(t)

	var keys []string
	for _, it := range tbl.Entries() {
		keys = append(keys, it.Key)
	}
	assert.Equal(t, []string{"fullscreen", "uiscale", "playtime", "zoom", "name", "lastmap"}, keys)
	assert.Equal(t, 6, tbl.Len())
}

func TestEntryString(t *testing.T) {
	e := &Entry{Value: format.NewBoolean(false), Address: 10}
	assert.Equal(t, "false@[addr:A]", e.String())

	e = &Entry{Value: format.NewText("hi"), Address: 255}
	assert.Equal(t, `"hi"@[addr:FF]`, e.String())
}

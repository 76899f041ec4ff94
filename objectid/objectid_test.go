package objectid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	// Ensure that objectid.New() doesn't produce any duplicates.
	ids := make(map[ObjectID]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		require.False(t, ids[id])
		ids[id] = true
	}
}

func TestNewFromTimestamp(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	id := NewFromTimestamp(ts)
	require.Equal(t, ts, id.Timestamp())
}

func TestFromParts(t *testing.T) {
	id := FromParts(0x01020304, 0x1112131415161718)

	require.Equal(t, ObjectID{0x01, 0x02, 0x03, 0x04, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18}, id)
	require.Equal(t, uint32(0x01020304), id.Time())
	require.Equal(t, uint64(0x1112131415161718), id.Counter())
}

func TestHex(t *testing.T) {
	id := ObjectID{0x5A, 0x15, 0xD0, 0xA4, 0xD5, 0xDA, 0xA5, 0xF1, 0x0A, 0x5E, 0xF5, 0x89}
	require.Equal(t, "5a15d0a4d5daa5f10a5ef589", id.Hex())
	require.Equal(t, `ObjectID("5a15d0a4d5daa5f10a5ef589")`, id.String())

	parsed, err := FromHex(id.Hex())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestFromHexErrors(t *testing.T) {
	_, err := FromHex("deadbeef")
	require.Equal(t, ErrInvalidHex, err)

	_, err = FromHex("gggggggggggggggggggggggg")
	require.Error(t, err)
}

func TestIsZero(t *testing.T) {
	require.True(t, NilObjectID.IsZero())
	require.False(t, New().IsZero())
}

func TestMarshalText(t *testing.T) {
	id := FromParts(1, 2)

	b, err := id.MarshalText()
	require.NoError(t, err)

	var parsed ObjectID
	require.NoError(t, parsed.UnmarshalText(b))
	require.Equal(t, id, parsed)
}

package bson

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ikmak/bson/objectid"
)

// TestRoundtrip encodes a document holding every supported value kind and
// parses it back, expecting a semantically identical document.
func TestRoundtrip(t *testing.T) {
	oid := objectid.FromParts(0x5A15D0A4, 0xD5DAA5F10A5EF589)
	u := uuid.MustParse("c8edabc3-f738-4ca3-b68d-ab92a91478a3")

	want := NewDocument(
		Elem("double", Double(3.14159)),
		Elem("string", String("hello, world")),
		Elem("document", EmbedDocument(NewDocument(Elem("nested", Boolean(true))))),
		Elem("array", EmbedArray(NewArray(Int32(1), String("two"), Double(3.0)))),
		Elem("binary", Binary([]byte{0x01, 0x02, 0x03})),
		Elem("function", Function([]byte("function() {}"))),
		Elem("uuid", UUID(u)),
		Elem("md5", MD5(make([]byte, 16))),
		Elem("userdefined", UserDefined([]byte{0xFF})),
		Elem("objectid", ObjectID(oid)),
		Elem("boolean", Boolean(false)),
		Elem("datetime", Time(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))),
		Elem("null", Null()),
		Elem("regex", Regex("^a.*z$", "is")),
		Elem("javascript", JavaScript("var a = function() {};")),
		Elem("symbol", Symbol("sym")),
		Elem("codewithscope", CodeWithScope("a + b", NewDocument(Elem("a", Int32(1)), Elem("b", Int32(2))))),
		Elem("int32", Int32(-2147483648)),
		Elem("timestamp", Timestamp(1756000000, 7)),
		Elem("int64", Int64(-9007199254740993)),
		Elem("minkey", MinKey()),
		Elem("maxkey", MaxKey()),
	)

	b, err := Marshal(want)
	require.NoError(t, err)

	got, err := ReadDocument(b)
	require.NoError(t, err)

	comparer := cmp.Comparer(func(d1, d2 *Document) bool { return d1.Equal(d2) })
	if diff := cmp.Diff(want, got, comparer); diff != "" {
		t.Errorf("documents differ after roundtrip: %s", diff)
	}

	// A second encode of the parsed document must reproduce the bytes.
	b2, err := Marshal(got)
	require.NoError(t, err)
	require.Equal(t, b, b2)
}

// TestRoundtrip_ArrayKeys makes sure non-canonical index keys on the wire
// are replaced with canonical ones when the document is encoded again.
func TestRoundtrip_ArrayKeys(t *testing.T) {
	src := []byte{
		0x11, 0x00, 0x00, 0x00,
		0x04, 'v', 0x00,
		0x09, 0x00, 0x00, 0x00,
		0x08, '7', 0x00, 0x01,
		0x00,
		0x00,
	}

	d, err := ReadDocument(src)
	require.NoError(t, err)

	b, err := Marshal(d)
	require.NoError(t, err)

	want := append([]byte{}, src...)
	want[12] = '0'
	require.Equal(t, want, b)
}

package bson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	t.Run("EmptyDocument", func(t *testing.T) {
		b, err := Marshal(NewDocument())
		require.NoError(t, err)
		require.Equal(t, []byte{0x05, 0x00, 0x00, 0x00, 0x00}, b)
	})
	t.Run("Scalars", func(t *testing.T) {
		d := NewDocument(Elem("a", Int32(1)), Elem("b", String("x")))
		b, err := Marshal(d)
		require.NoError(t, err)
		require.Equal(t, []byte{
			0x15, 0x00, 0x00, 0x00,
			0x10, 'a', 0x00, 0x01, 0x00, 0x00, 0x00,
			0x02, 'b', 0x00, 0x02, 0x00, 0x00, 0x00, 'x', 0x00,
			0x00,
		}, b)
	})
	t.Run("Array", func(t *testing.T) {
		d := NewDocument(Elem("v", EmbedArray(NewArray(String("x"), Boolean(true)))))
		b, err := Marshal(d)
		require.NoError(t, err)
		require.Equal(t, []byte{
			0x1A, 0x00, 0x00, 0x00,
			0x04, 'v', 0x00,
			0x12, 0x00, 0x00, 0x00,
			0x02, '0', 0x00, 0x02, 0x00, 0x00, 0x00, 'x', 0x00,
			0x08, '1', 0x00, 0x01,
			0x00,
			0x00,
		}, b)
	})
	t.Run("CodeWithScope", func(t *testing.T) {
		d := NewDocument(Elem("f", CodeWithScope("x=1", NewDocument(Elem("y", Int32(2))))))
		b, err := Marshal(d)
		require.NoError(t, err)
		require.Equal(t, []byte{
			0x20, 0x00, 0x00, 0x00,
			0x0F, 'f', 0x00,
			0x18, 0x00, 0x00, 0x00,
			0x04, 0x00, 0x00, 0x00, 'x', '=', '1', 0x00,
			0x0C, 0x00, 0x00, 0x00, 0x10, 'y', 0x00, 0x02, 0x00, 0x00, 0x00, 0x00,
			0x00,
		}, b)
	})
	t.Run("EmptyScopeDegradesToJavaScript", func(t *testing.T) {
		d := NewDocument(Elem("f", CodeWithScope("x", NewDocument())))
		b, err := Marshal(d)
		require.NoError(t, err)
		require.Equal(t, []byte{
			0x0E, 0x00, 0x00, 0x00,
			0x0D, 'f', 0x00, 0x02, 0x00, 0x00, 0x00, 'x', 0x00,
			0x00,
		}, b)
	})
	t.Run("ValuelessTypes", func(t *testing.T) {
		d := NewDocument(Elem("n", Null()), Elem("lo", MinKey()), Elem("hi", MaxKey()))
		b, err := Marshal(d)
		require.NoError(t, err)
		require.Equal(t, []byte{
			0x10, 0x00, 0x00, 0x00,
			0x0A, 'n', 0x00,
			0xFF, 'l', 'o', 0x00,
			0x7F, 'h', 'i', 0x00,
			0x00,
		}, b)
	})
	t.Run("NilDocument", func(t *testing.T) {
		var d *Document
		_, err := Marshal(d)
		require.Equal(t, ErrNilDocument, err)
	})
	t.Run("ZeroValue", func(t *testing.T) {
		d := NewDocument(Elem("a", Value{}))
		_, err := Marshal(d)
		require.Equal(t, ErrUninitializedElement, err)
	})
	t.Run("RegexWithNullByte", func(t *testing.T) {
		d := NewDocument(Elem("r", Regex("a\x00b", "")))
		_, err := Marshal(d)
		require.Equal(t, ErrInvalidRegex, err)
	})
}

func TestValidate(t *testing.T) {
	d := NewDocument(
		Elem("a", Int32(1)),
		Elem("sub", EmbedDocument(NewDocument(Elem("b", Double(1.5))))),
	)

	size, err := d.Validate()
	require.NoError(t, err)

	b, err := d.MarshalBSON()
	require.NoError(t, err)
	require.Equal(t, int(size), len(b))
}

func TestDocument_WriteTo(t *testing.T) {
	d := NewDocument(Elem("a", Int32(1)))

	var buf bytes.Buffer
	n, err := d.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	got, err := ReadDocument(buf.Bytes())
	require.NoError(t, err)
	require.True(t, d.Equal(got))

	_, err = d.WriteTo(nil)
	require.Equal(t, ErrInvalidWriter, err)
}

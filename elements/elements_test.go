package elements

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDouble(t *testing.T) {
	t.Run("Encode", func(t *testing.T) {
		b := make([]byte, 8)
		n, err := Double.Encode(0, b, 3.14159)
		require.NoError(t, err)
		require.Equal(t, 8, n)

		f, n, err := Double.Decode(0, b)
		require.NoError(t, err)
		require.Equal(t, 8, n)
		require.Equal(t, 3.14159, f)
	})
	t.Run("TooSmall", func(t *testing.T) {
		b := make([]byte, 7)
		_, err := Double.Encode(0, b, 1.0)
		require.Equal(t, ErrTooSmall, err)

		_, _, err = Double.Decode(0, b)
		require.Equal(t, ErrTooSmall, err)
	})
}

func TestString(t *testing.T) {
	t.Run("Encode", func(t *testing.T) {
		b := make([]byte, 10)
		n, err := String.Encode(0, b, "hello")
		require.NoError(t, err)
		require.Equal(t, 10, n)
		require.Equal(t, []byte{0x06, 0x00, 0x00, 0x00, 'h', 'e', 'l', 'l', 'o', 0x00}, b)
	})
	t.Run("Decode", func(t *testing.T) {
		b := []byte{0x06, 0x00, 0x00, 0x00, 'h', 'e', 'l', 'l', 'o', 0x00}
		s, n, err := String.Decode(0, b)
		require.NoError(t, err)
		require.Equal(t, 10, n)
		require.Equal(t, "hello", s)
	})
	t.Run("EmptyString", func(t *testing.T) {
		b := []byte{0x01, 0x00, 0x00, 0x00, 0x00}
		s, n, err := String.Decode(0, b)
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.Equal(t, "", s)
	})
	t.Run("MissingTerminator", func(t *testing.T) {
		b := []byte{0x02, 0x00, 0x00, 0x00, 'h', 'i'}
		_, _, err := String.Decode(0, b)
		require.Equal(t, ErrInvalidString, err)
	})
	t.Run("ZeroLength", func(t *testing.T) {
		b := []byte{0x00, 0x00, 0x00, 0x00}
		_, _, err := String.Decode(0, b)
		require.Equal(t, ErrInvalidString, err)
	})
	t.Run("DeclaredTooLong", func(t *testing.T) {
		b := []byte{0x10, 0x00, 0x00, 0x00, 'h', 'i', 0x00}
		_, _, err := String.Decode(0, b)
		require.Equal(t, ErrTooSmall, err)
	})
	t.Run("InteriorNull", func(t *testing.T) {
		b := []byte{0x04, 0x00, 0x00, 0x00, 'a', 0x00, 'b', 0x00}
		s, n, err := String.Decode(0, b)
		require.NoError(t, err)
		require.Equal(t, 8, n)
		require.Equal(t, "a\x00b", s)
	})
}

func TestCString(t *testing.T) {
	t.Run("Encode", func(t *testing.T) {
		b := make([]byte, 4)
		n, err := CString.Encode(0, b, "key")
		require.NoError(t, err)
		require.Equal(t, 4, n)
		require.Equal(t, []byte{'k', 'e', 'y', 0x00}, b)
	})
	t.Run("Decode", func(t *testing.T) {
		s, n, err := CString.Decode(1, []byte{0xFF, 'k', 'e', 'y', 0x00})
		require.NoError(t, err)
		require.Equal(t, 4, n)
		require.Equal(t, "key", s)
	})
	t.Run("Unterminated", func(t *testing.T) {
		_, _, err := CString.Decode(0, []byte{'k', 'e', 'y'})
		require.Equal(t, ErrUnterminatedCString, err)
	})
}

func TestBinary(t *testing.T) {
	t.Run("Encode", func(t *testing.T) {
		b := make([]byte, 8)
		n, err := Binary.Encode(0, b, []byte{0xDE, 0xAD, 0xBE}, 0x80)
		require.NoError(t, err)
		require.Equal(t, 8, n)
		require.Equal(t, []byte{0x03, 0x00, 0x00, 0x00, 0x80, 0xDE, 0xAD, 0xBE}, b)
	})
	t.Run("Decode", func(t *testing.T) {
		src := []byte{0x03, 0x00, 0x00, 0x00, 0x80, 0xDE, 0xAD, 0xBE}
		subtype, data, n, err := Binary.Decode(0, src)
		require.NoError(t, err)
		require.Equal(t, 8, n)
		require.Equal(t, byte(0x80), subtype)
		require.Equal(t, []byte{0xDE, 0xAD, 0xBE}, data)

		// The payload must be a copy, not a view of src.
		data[0] = 0x00
		require.Equal(t, byte(0xDE), src[5])
	})
	t.Run("TooSmall", func(t *testing.T) {
		_, _, _, err := Binary.Decode(0, []byte{0x03, 0x00, 0x00, 0x00, 0x80, 0xDE})
		require.Equal(t, ErrTooSmall, err)
	})
}

func TestBoolean(t *testing.T) {
	t.Run("Roundtrip", func(t *testing.T) {
		b := make([]byte, 1)
		_, err := Boolean.Encode(0, b, true)
		require.NoError(t, err)

		v, n, err := Boolean.Decode(0, b)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.True(t, v)
	})
	t.Run("InvalidByte", func(t *testing.T) {
		_, _, err := Boolean.Decode(0, []byte{0x02})
		require.Equal(t, ErrInvalidBooleanValue, err)
	})
}

func TestInt32(t *testing.T) {
	b := make([]byte, 4)
	n, err := Int32.Encode(0, b, -42)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte{0xD6, 0xFF, 0xFF, 0xFF}, b)

	i, n, err := Int32.Decode(0, b)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, int32(-42), i)
}

func TestInt64(t *testing.T) {
	b := make([]byte, 8)
	n, err := Int64.Encode(0, b, -1)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, b)

	i, n, err := Int64.Decode(0, b)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, int64(-1), i)
}

func TestTimestamp(t *testing.T) {
	// The increment occupies the low 4 bytes and the seconds the high 4.
	b := make([]byte, 8)
	n, err := Timestamp.Encode(0, b, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}, b)

	ts, inc, n, err := Timestamp.Decode(0, b)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, uint32(2), ts)
	require.Equal(t, uint32(1), inc)
}

func TestRegex(t *testing.T) {
	b := make([]byte, 8)
	n, err := Regex.Encode(0, b, "ab*", "imx")
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, []byte{'a', 'b', '*', 0x00, 'i', 'm', 'x', 0x00}, b)

	pattern, options, n, err := Regex.Decode(0, b)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, "ab*", pattern)
	require.Equal(t, "imx", options)
}

func TestObjectID(t *testing.T) {
	oid := [12]byte{0x5A, 0x15, 0xD0, 0xA4, 0xD5, 0xDA, 0xA5, 0xF1, 0x0A, 0x5E, 0xF5, 0x89}
	b := make([]byte, 12)
	n, err := ObjectID.Encode(0, b, oid)
	require.NoError(t, err)
	require.Equal(t, 12, n)

	got, n, err := ObjectID.Decode(0, b)
	require.NoError(t, err)
	require.Equal(t, 12, n)
	require.Equal(t, oid, got)
}

func TestElementHelpers(t *testing.T) {
	t.Run("Int32", func(t *testing.T) {
		b := make([]byte, 9)
		n, err := Int32.Element(0, b, "foo", 7)
		require.NoError(t, err)
		require.Equal(t, 9, n)
		require.Equal(t, []byte{0x10, 'f', 'o', 'o', 0x00, 0x07, 0x00, 0x00, 0x00}, b)
	})
	t.Run("String", func(t *testing.T) {
		b := make([]byte, 10)
		n, err := String.Element(0, b, "a", "bc")
		require.NoError(t, err)
		require.Equal(t, 10, n)
		require.Equal(t, []byte{0x02, 'a', 0x00, 0x03, 0x00, 0x00, 0x00, 'b', 'c', 0x00}, b)
	})
	t.Run("TooSmall", func(t *testing.T) {
		b := make([]byte, 3)
		_, err := Int32.Element(0, b, "foo", 7)
		require.Equal(t, ErrTooSmall, err)
	})
}

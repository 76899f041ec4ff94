package bson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArray(t *testing.T) {
	a := NewArray(Int32(1), Int32(2))
	a.Append(Int32(3)).Prepend(Int32(0))

	require.Equal(t, 4, a.Len())
	require.Equal(t, int32(0), a.Lookup(0).Int32())
	require.Equal(t, int32(3), a.Lookup(3).Int32())

	t.Run("Set", func(t *testing.T) {
		require.NoError(t, a.Set(1, String("one")))
		require.Equal(t, "one", a.Lookup(1).StringValue())
		require.Equal(t, ErrOutOfBounds, a.Set(9, Null()))
	})
	t.Run("Delete", func(t *testing.T) {
		v, ok := a.Delete(1)
		require.True(t, ok)
		require.Equal(t, "one", v.StringValue())
		require.Equal(t, 3, a.Len())

		_, ok = a.Delete(9)
		require.False(t, ok)
	})
	t.Run("LookupOutOfBounds", func(t *testing.T) {
		_, err := a.LookupErr(9)
		require.Equal(t, ErrOutOfBounds, err)
		require.Panics(t, func() { a.Lookup(9) })
	})
	t.Run("NilArrayPanics", func(t *testing.T) {
		var na *Array
		require.Panics(t, func() { na.Append(Null()) })
	})
}

func TestArray_Equal(t *testing.T) {
	require.True(t, NewArray(Int32(1)).Equal(NewArray(Int32(1))))
	require.False(t, NewArray(Int32(1)).Equal(NewArray(Int64(1))))
	require.False(t, NewArray(Int32(1)).Equal(NewArray(Int32(1), Int32(2))))

	var na *Array
	require.True(t, na.Equal(nil))
	require.True(t, na.Equal(NewArray()))
}

func TestArray_Copy(t *testing.T) {
	inner := NewDocument(Elem("n", Int32(1)))
	a := NewArray(EmbedDocument(inner))

	cp := a.Copy()
	require.True(t, a.Equal(cp))

	inner.Append(Elem("m", Int32(2)))
	require.False(t, a.Equal(cp))
}

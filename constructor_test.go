package bson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeWithScopeConstructor(t *testing.T) {
	t.Run("WithScope", func(t *testing.T) {
		scope := NewDocument(Elem("a", Int32(1)))
		v := CodeWithScope("f()", scope)

		require.Equal(t, TypeCodeWithScope, v.Type())
		cws := v.CodeWithScope()
		require.Equal(t, "f()", cws.Code)
		require.True(t, scope.Equal(cws.Scope))
	})
	t.Run("EmptyScope", func(t *testing.T) {
		v := CodeWithScope("f()", NewDocument())
		require.Equal(t, TypeJavaScript, v.Type())
		require.Equal(t, JavaScriptCodePrimitive("f()"), v.JavaScript())
	})
	t.Run("NilScope", func(t *testing.T) {
		v := CodeWithScope("f()", nil)
		require.Equal(t, TypeJavaScript, v.Type())
	})
}

func TestBinaryConstructors(t *testing.T) {
	require.Equal(t, byte(BinarySubtypeGeneric), Binary([]byte{1}).Binary().Subtype)
	require.Equal(t, byte(BinarySubtypeFunction), Function([]byte{1}).Binary().Subtype)
	require.Equal(t, byte(BinarySubtypeMD5), MD5(make([]byte, 16)).Binary().Subtype)
	require.Equal(t, byte(BinarySubtypeUserDefined), UserDefined([]byte{1}).Binary().Subtype)

	t.Run("RejectedSubtypes", func(t *testing.T) {
		require.Panics(t, func() { BinaryWithSubtype(nil, 0x02) })
		// The legacy UUID subtype only exists transiently during decoding.
		require.Panics(t, func() { BinaryWithSubtype(nil, 0x03) })
		require.Panics(t, func() { BinaryWithSubtype(nil, 0x42) })
	})
}

func TestEmbedConstructors(t *testing.T) {
	d := NewDocument(Elem("a", Int32(1)))
	a := NewArray(Int32(1))

	require.Equal(t, TypeEmbeddedDocument, Embed(d).Type())
	require.Equal(t, TypeArray, Embed(a).Type())
	require.Equal(t, TypeNull, Embed(nil).Type())

	require.True(t, d.Equal(Embed(d).Document()))
	require.True(t, a.Equal(Embed(a).Array()))

	t.Run("NilContainers", func(t *testing.T) {
		v := EmbedDocument(nil)
		require.Equal(t, TypeEmbeddedDocument, v.Type())
		require.Equal(t, 0, v.Document().Len())

		v = EmbedArray(nil)
		require.Equal(t, TypeArray, v.Type())
		require.Equal(t, 0, v.Array().Len())
	})
}

func TestStringStorage(t *testing.T) {
	// Small strings live in the value itself, large ones and strings with an
	// interior null byte go through the primitive slot. Both must read back
	// exactly.
	cases := []string{
		"",
		"short",
		"exactly 15 byte",
		"sixteen bytes!!!",
		"a much longer string that certainly does not fit inline",
		"null\x00byte",
	}
	for _, s := range cases {
		require.Equal(t, s, String(s).StringValue())
		require.Equal(t, SymbolPrimitive(s), Symbol(s).Symbol())
		require.Equal(t, JavaScriptCodePrimitive(s), JavaScript(s).JavaScript())
	}
}

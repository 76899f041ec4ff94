package bson

import "bytes"

// BinaryPrimitive represents a BSON binary value: a subtype byte and the raw
// payload bytes.
type BinaryPrimitive struct {
	Subtype byte
	Data    []byte
}

// Equal compares bp to bp2 and returns true if they are equal.
func (bp BinaryPrimitive) Equal(bp2 BinaryPrimitive) bool {
	if bp.Subtype != bp2.Subtype {
		return false
	}
	return bytes.Equal(bp.Data, bp2.Data)
}

// RegexPrimitive represents a BSON regex value.
type RegexPrimitive struct {
	Pattern string
	Options string
}

// Equal compares rp to rp2 and returns true if they are equal.
func (rp RegexPrimitive) Equal(rp2 RegexPrimitive) bool {
	return rp.Pattern == rp2.Pattern && rp.Options == rp2.Options
}

// JavaScriptCodePrimitive represents a BSON JavaScript code value.
type JavaScriptCodePrimitive string

// SymbolPrimitive represents a BSON symbol value.
type SymbolPrimitive string

// CodeWithScopePrimitive represents a BSON JavaScript code with scope value.
// The code and its lexical scope are one logical value; on the wire they are
// laid out as (code, scope) inside a shared length-prefixed container.
type CodeWithScopePrimitive struct {
	Code  string
	Scope *Document
}

// Equal compares cws to cws2 and returns true if they are equal.
func (cws CodeWithScopePrimitive) Equal(cws2 CodeWithScopePrimitive) bool {
	return cws.Code == cws2.Code && cws.Scope.Equal(cws2.Scope)
}

// TimestampPrimitive represents a BSON replication timestamp value.
type TimestampPrimitive struct {
	T uint32
	I uint32
}

// Equal compares tp to tp2 and returns true if they are equal.
func (tp TimestampPrimitive) Equal(tp2 TimestampPrimitive) bool {
	return tp.T == tp2.T && tp.I == tp2.I
}

// NullPrimitive represents the BSON null value.
type NullPrimitive struct{}

// MinKeyPrimitive represents the BSON minkey value.
type MinKeyPrimitive struct{}

// MaxKeyPrimitive represents the BSON maxkey value.
type MaxKeyPrimitive struct{}

package bson

import (
	"encoding/binary"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ikmak/bson/bsontype"
	"github.com/ikmak/bson/objectid"
)

// Elem creates an Element with the given key and value.
func Elem(key string, value Value) Element {
	return Element{Key: key, Value: value}
}

// Double creates a double Value.
func Double(f float64) Value {
	v := Value{t: bsontype.Double}
	binary.LittleEndian.PutUint64(v.bootstrap[0:8], math.Float64bits(f))
	return v
}

// String creates a string Value.
func String(s string) Value {
	return stringValue(bsontype.String, s)
}

// Embeddable is implemented by the container types of this package, allowing
// either of them to be embedded into a document as a single value.
type Embeddable interface {
	embed() Value
}

func (d *Document) embed() Value {
	return Value{t: bsontype.EmbeddedDocument, primitive: d}
}

func (a *Array) embed() Value {
	return Value{t: bsontype.Array, primitive: a}
}

// Embed creates a Value from an embeddable container. A nil Embeddable
// becomes a null Value.
func Embed(e Embeddable) Value {
	if e == nil {
		return Null()
	}
	return e.embed()
}

// EmbedDocument creates an embedded document Value. A nil document is
// replaced with an empty one.
func EmbedDocument(d *Document) Value {
	if d == nil {
		d = NewDocument()
	}
	return d.embed()
}

// EmbedArray creates an array Value. A nil array is replaced with an empty
// one.
func EmbedArray(a *Array) Value {
	if a == nil {
		a = NewArray()
	}
	return a.embed()
}

// Binary creates a binary Value with the generic subtype.
func Binary(data []byte) Value {
	return BinaryWithSubtype(data, BinarySubtypeGeneric)
}

// BinaryWithSubtype creates a binary Value with the given subtype. It panics
// with an InvalidBinarySubtypeError if the subtype is not one of the
// BinarySubtype constants of this package.
func BinaryWithSubtype(data []byte, subtype byte) Value {
	if !bsontype.ValidSubtype(subtype) {
		panic(InvalidBinarySubtypeError{Subtype: subtype})
	}
	return Value{t: bsontype.Binary, primitive: BinaryPrimitive{Subtype: subtype, Data: data}}
}

// Function creates a binary Value with the function subtype.
func Function(data []byte) Value {
	return BinaryWithSubtype(data, BinarySubtypeFunction)
}

// UUID creates a binary Value with the UUID subtype from a uuid.UUID.
func UUID(u uuid.UUID) Value {
	data := make([]byte, 16)
	copy(data, u[:])
	return BinaryWithSubtype(data, BinarySubtypeUUID)
}

// MD5 creates a binary Value with the MD5 subtype.
func MD5(data []byte) Value {
	return BinaryWithSubtype(data, BinarySubtypeMD5)
}

// UserDefined creates a binary Value with the user defined subtype.
func UserDefined(data []byte) Value {
	return BinaryWithSubtype(data, BinarySubtypeUserDefined)
}

// ObjectID creates an objectid Value.
func ObjectID(oid objectid.ObjectID) Value {
	v := Value{t: bsontype.ObjectID}
	copy(v.bootstrap[0:12], oid[:])
	return v
}

// Boolean creates a boolean Value.
func Boolean(b bool) Value {
	v := Value{t: bsontype.Boolean}
	if b {
		v.bootstrap[0] = 0x01
	}
	return v
}

// DateTime creates a datetime Value from milliseconds since the Unix epoch.
func DateTime(dt int64) Value {
	v := Value{t: bsontype.DateTime}
	binary.LittleEndian.PutUint64(v.bootstrap[0:8], uint64(dt))
	return v
}

// Time creates a datetime Value from a time.Time, truncated to millisecond
// precision.
func Time(t time.Time) Value {
	return DateTime(t.Unix()*1000 + int64(t.Nanosecond()/1e6))
}

// Null creates a null Value.
func Null() Value {
	return Value{t: bsontype.Null}
}

// Regex creates a regex Value. Neither the pattern nor the options may
// contain a null byte; the encoder rejects documents that do.
func Regex(pattern, options string) Value {
	return Value{t: bsontype.Regex, primitive: RegexPrimitive{Pattern: pattern, Options: options}}
}

// JavaScript creates a JavaScript code Value without a scope.
func JavaScript(code string) Value {
	return stringValue(bsontype.JavaScript, code)
}

// CodeWithScope creates a JavaScript code Value with the given scope
// document. An empty or nil scope degrades to plain JavaScript code, so the
// value's type decides which of the two wire forms is emitted.
func CodeWithScope(code string, scope *Document) Value {
	if scope.Len() == 0 {
		return JavaScript(code)
	}
	return Value{t: bsontype.CodeWithScope, primitive: CodeWithScopePrimitive{Code: code, Scope: scope}}
}

// Symbol creates a symbol Value.
func Symbol(s string) Value {
	return stringValue(bsontype.Symbol, s)
}

// Int32 creates an int32 Value.
func Int32(i int32) Value {
	v := Value{t: bsontype.Int32}
	binary.LittleEndian.PutUint32(v.bootstrap[0:4], uint32(i))
	return v
}

// Timestamp creates a timestamp Value from its seconds and increment
// components.
func Timestamp(t uint32, i uint32) Value {
	v := Value{t: bsontype.Timestamp}
	binary.LittleEndian.PutUint32(v.bootstrap[0:4], i)
	binary.LittleEndian.PutUint32(v.bootstrap[4:8], t)
	return v
}

// Int64 creates an int64 Value.
func Int64(i int64) Value {
	v := Value{t: bsontype.Int64}
	binary.LittleEndian.PutUint64(v.bootstrap[0:8], uint64(i))
	return v
}

// MinKey creates a minkey Value.
func MinKey() Value {
	return Value{t: bsontype.MinKey}
}

// MaxKey creates a maxkey Value.
func MaxKey() Value {
	return Value{t: bsontype.MaxKey}
}

// stringValue stores small strings in the value itself and larger ones (or
// ones containing a null byte, which the bootstrap cannot delimit) behind
// the primitive slot.
func stringValue(t bsontype.Type, s string) Value {
	v := Value{t: t}
	if len(s) < 16 && strings.IndexByte(s, 0x00) == -1 {
		copy(v.bootstrap[:], s)
		return v
	}
	v.primitive = s
	return v
}

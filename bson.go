// Package bson is a library for reading and writing BSON binary documents as
// defined by https://bsonspec.org/spec.html (version 1.0).
//
// The package is built around three types: Document, an ordered sequence of
// elements; Element, a key/value pair; and Value, a closed union over the
// BSON value kinds this package supports. Values are constructed with the
// package level constructor functions (Double, String, Int32, ...) and read
// back with the typed accessor methods on Value.
//
// Encoding and decoding are pure transformations over byte slices: a
// Document is serialized with MarshalBSON and parsed with ReadDocument or
// UnmarshalBSON. Neither direction holds state between calls, so independent
// documents can be encoded and decoded concurrently without coordination.
//
// Malformed input is always a hard error. Decoding fails with a specific
// error kind for truncated input, unterminated strings, unknown type or
// binary subtype tags, and length mismatches; there is no partial-document
// recovery.
package bson

import "github.com/ikmak/bson/bsontype"

// Type represents a BSON type.
type Type = bsontype.Type

// These constants uniquely refer to each BSON type.
const (
	TypeDouble           = bsontype.Double
	TypeString           = bsontype.String
	TypeEmbeddedDocument = bsontype.EmbeddedDocument
	TypeArray            = bsontype.Array
	TypeBinary           = bsontype.Binary
	TypeObjectID         = bsontype.ObjectID
	TypeBoolean          = bsontype.Boolean
	TypeDateTime         = bsontype.DateTime
	TypeNull             = bsontype.Null
	TypeRegex            = bsontype.Regex
	TypeJavaScript       = bsontype.JavaScript
	TypeSymbol           = bsontype.Symbol
	TypeCodeWithScope    = bsontype.CodeWithScope
	TypeInt32            = bsontype.Int32
	TypeTimestamp        = bsontype.Timestamp
	TypeInt64            = bsontype.Int64
	TypeMaxKey           = bsontype.MaxKey
	TypeMinKey           = bsontype.MinKey
)

// BSON binary element subtypes. The deprecated subtypes 0x02 and 0x03 are not
// part of this set: 0x02 is rejected during decoding and 0x03 is accepted but
// normalized to BinarySubtypeUUID.
const (
	BinarySubtypeGeneric     = bsontype.BinaryGeneric
	BinarySubtypeFunction    = bsontype.BinaryFunction
	BinarySubtypeUUID        = bsontype.BinaryUUID
	BinarySubtypeMD5         = bsontype.BinaryMD5
	BinarySubtypeUserDefined = bsontype.BinaryUserDefined
)

// Package bsontype is a utility package that contains types for each BSON
// type and the a stringifier for the Type to enable readable printing of the
// type tags that appear on the wire.
package bsontype

// These constants uniquely refer to each BSON type.
const (
	Double           Type = 0x01
	String           Type = 0x02
	EmbeddedDocument Type = 0x03
	Array            Type = 0x04
	Binary           Type = 0x05
	ObjectID         Type = 0x07
	Boolean          Type = 0x08
	DateTime         Type = 0x09
	Null             Type = 0x0A
	Regex            Type = 0x0B
	JavaScript       Type = 0x0D
	Symbol           Type = 0x0E
	CodeWithScope    Type = 0x0F
	Int32            Type = 0x10
	Timestamp        Type = 0x11
	Int64            Type = 0x12
	MaxKey           Type = 0x7F
	MinKey           Type = 0xFF
)

// BSON binary element subtypes as described in https://bsonspec.org/spec.html.
//
// The deprecated subtypes (0x02 binary-old and 0x03 uuid-old) are not part of
// the supported set: 0x02 is rejected outright and 0x03 is only accepted
// during decoding, where it is normalized to BinaryUUID.
const (
	BinaryGeneric     byte = 0x00
	BinaryFunction    byte = 0x01
	BinaryUUIDOld     byte = 0x03
	BinaryUUID        byte = 0x04
	BinaryMD5         byte = 0x05
	BinaryUserDefined byte = 0x80
)

// Type represents a BSON type.
type Type byte

// String returns the string representation of the BSON type's name.
func (bt Type) String() string {
	switch bt {
	case '\x01':
		return "double"
	case '\x02':
		return "string"
	case '\x03':
		return "embedded document"
	case '\x04':
		return "array"
	case '\x05':
		return "binary"
	case '\x07':
		return "objectID"
	case '\x08':
		return "boolean"
	case '\x09':
		return "UTC datetime"
	case '\x0A':
		return "null"
	case '\x0B':
		return "regex"
	case '\x0D':
		return "javascript"
	case '\x0E':
		return "symbol"
	case '\x0F':
		return "code with scope"
	case '\x10':
		return "32-bit integer"
	case '\x11':
		return "timestamp"
	case '\x12':
		return "64-bit integer"
	case '\x7F':
		return "max key"
	case '\xFF':
		return "min key"
	default:
		return "invalid"
	}
}

// IsValid will return true if the Type is valid.
func (bt Type) IsValid() bool {
	switch bt {
	case Double, String, EmbeddedDocument, Array, Binary, ObjectID, Boolean,
		DateTime, Null, Regex, JavaScript, Symbol, CodeWithScope, Int32,
		Timestamp, Int64, MinKey, MaxKey:
		return true
	default:
		return false
	}
}

// ValidSubtype will return true if the provided byte is a binary subtype
// that values produced by this package may carry. The legacy UUID subtype
// (0x03) is deliberately excluded; it only exists transiently during
// decoding.
func ValidSubtype(sub byte) bool {
	switch sub {
	case BinaryGeneric, BinaryFunction, BinaryUUID, BinaryMD5, BinaryUserDefined:
		return true
	default:
		return false
	}
}

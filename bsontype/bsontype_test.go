package bsontype

import "testing"

func TestType_String(t *testing.T) {
	testCases := []struct {
		name string
		t    Type
		want string
	}{
		{"double", Double, "double"},
		{"string", String, "string"},
		{"embedded document", EmbeddedDocument, "embedded document"},
		{"array", Array, "array"},
		{"binary", Binary, "binary"},
		{"objectID", ObjectID, "objectID"},
		{"boolean", Boolean, "boolean"},
		{"UTC datetime", DateTime, "UTC datetime"},
		{"null", Null, "null"},
		{"regex", Regex, "regex"},
		{"javascript", JavaScript, "javascript"},
		{"symbol", Symbol, "symbol"},
		{"code with scope", CodeWithScope, "code with scope"},
		{"32-bit integer", Int32, "32-bit integer"},
		{"timestamp", Timestamp, "timestamp"},
		{"64-bit integer", Int64, "64-bit integer"},
		{"max key", MaxKey, "max key"},
		{"min key", MinKey, "min key"},
		{"invalid", Type(0x06), "invalid"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.t.String()
			if got != tc.want {
				t.Errorf("String outputs do not match. got %s; want %s", got, tc.want)
			}
		})
	}
}

func TestType_IsValid(t *testing.T) {
	valid := []Type{
		Double, String, EmbeddedDocument, Array, Binary, ObjectID, Boolean,
		DateTime, Null, Regex, JavaScript, Symbol, CodeWithScope, Int32,
		Timestamp, Int64, MinKey, MaxKey,
	}
	for _, bt := range valid {
		if !bt.IsValid() {
			t.Errorf("expected type 0x%02x to be valid", byte(bt))
		}
	}

	invalid := []Type{Type(0x00), Type(0x06), Type(0x0C), Type(0x13), Type(0x42)}
	for _, bt := range invalid {
		if bt.IsValid() {
			t.Errorf("expected type 0x%02x to be invalid", byte(bt))
		}
	}
}

func TestValidSubtype(t *testing.T) {
	valid := []byte{BinaryGeneric, BinaryFunction, BinaryUUID, BinaryMD5, BinaryUserDefined}
	for _, sub := range valid {
		if !ValidSubtype(sub) {
			t.Errorf("expected subtype 0x%02x to be valid", sub)
		}
	}

	invalid := []byte{0x02, BinaryUUIDOld, 0x06, 0x7F}
	for _, sub := range invalid {
		if ValidSubtype(sub) {
			t.Errorf("expected subtype 0x%02x to be invalid", sub)
		}
	}
}

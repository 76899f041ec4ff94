package bson

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ikmak/bson/bsontype"
	"github.com/ikmak/bson/objectid"
)

// Value represents a BSON value. It is a closed union over the BSON types
// this package supports; the zero Value has no type and is not valid to
// encode.
type Value struct {
	// NOTE: The bootstrap is a small amount of space that'll be on the stack. At 15 bytes this
	// doesn't make this type any larger, since there are 7 bytes of padding and we want an int64 to
	// store small values (e.g. boolean, double, int64, etc...). The primitive property is where all
	// of the larger values go. They will use either Go primitives or the *Primitive types.
	t         bsontype.Type
	bootstrap [15]byte
	primitive interface{}
}

func (v Value) string() string {
	if v.primitive != nil {
		return v.primitive.(string)
	}
	// The string will either end with a null byte or it fills the entire bootstrap space.
	idx := bytes.IndexByte(v.bootstrap[:], 0x00)
	if idx == -1 {
		idx = 15
	}
	return string(v.bootstrap[:idx])
}

func (v Value) i64() int64 {
	return int64(v.bootstrap[0]) | int64(v.bootstrap[1])<<8 | int64(v.bootstrap[2])<<16 |
		int64(v.bootstrap[3])<<24 | int64(v.bootstrap[4])<<32 | int64(v.bootstrap[5])<<40 |
		int64(v.bootstrap[6])<<48 | int64(v.bootstrap[7])<<56
}

func (v Value) reset() Value {
	return Value{}
}

// IsZero returns true if this value is zero.
func (v Value) IsZero() bool { return v.t == bsontype.Type(0) }

// Type returns the BSON type of this value.
func (v Value) Type() bsontype.Type { return v.t }

// IsNumber returns true if the type of v is a numeric BSON type.
func (v Value) IsNumber() bool {
	switch v.t {
	case TypeDouble, TypeInt32, TypeInt64:
		return true
	default:
		return false
	}
}

// Interface returns the Go value of this Value as an empty interface.
//
// This method will return nil if it is empty, otherwise it will return a Go primitive or one of
// the *Primitive types.
func (v Value) Interface() interface{} {
	switch v.t {
	case TypeDouble:
		return v.Double()
	case TypeString:
		return v.StringValue()
	case TypeEmbeddedDocument:
		return v.Document()
	case TypeArray:
		return v.Array()
	case TypeBinary:
		return v.Binary()
	case TypeObjectID:
		return v.ObjectID()
	case TypeBoolean:
		return v.Boolean()
	case TypeDateTime:
		return v.DateTime()
	case TypeNull:
		return NullPrimitive{}
	case TypeRegex:
		return v.Regex()
	case TypeJavaScript:
		return v.JavaScript()
	case TypeSymbol:
		return v.Symbol()
	case TypeCodeWithScope:
		return v.CodeWithScope()
	case TypeInt32:
		return v.Int32()
	case TypeTimestamp:
		return v.Timestamp()
	case TypeInt64:
		return v.Int64()
	case TypeMinKey:
		return MinKeyPrimitive{}
	case TypeMaxKey:
		return MaxKeyPrimitive{}
	default:
		return nil
	}
}

// Double returns the BSON double value the Value represents. It panics if the value is a BSON type
// other than double.
func (v Value) Double() float64 {
	if v.t != bsontype.Double {
		panic(ElementTypeError{"bson.Value.Double", v.t})
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(v.bootstrap[0:8]))
}

// DoubleOK is the same as Double, but returns a boolean instead of panicking.
func (v Value) DoubleOK() (float64, bool) {
	if v.t != bsontype.Double {
		return 0, false
	}
	return v.Double(), true
}

// StringValue returns the BSON string the Value represents. It panics if the value is a BSON type
// other than string.
//
// NOTE: This method is called StringValue to avoid it implementing the
// fmt.Stringer interface.
func (v Value) StringValue() string {
	if v.t != bsontype.String {
		panic(ElementTypeError{"bson.Value.StringValue", v.t})
	}
	return v.string()
}

// StringValueOK is the same as StringValue, but returns a boolean instead of
// panicking.
func (v Value) StringValueOK() (string, bool) {
	if v.t != bsontype.String {
		return "", false
	}
	return v.StringValue(), true
}

// Document returns the BSON embedded document value the Value represents. It panics if the value
// is a BSON type other than embedded document.
func (v Value) Document() *Document {
	if v.t != bsontype.EmbeddedDocument {
		panic(ElementTypeError{"bson.Value.Document", v.t})
	}
	return v.primitive.(*Document)
}

// DocumentOK is the same as Document, except it returns a boolean
// instead of panicking.
func (v Value) DocumentOK() (*Document, bool) {
	if v.t != bsontype.EmbeddedDocument {
		return nil, false
	}
	return v.Document(), true
}

// Array returns the BSON array value the Value represents. It panics if the value is a BSON type
// other than array.
func (v Value) Array() *Array {
	if v.t != bsontype.Array {
		panic(ElementTypeError{"bson.Value.Array", v.t})
	}
	return v.primitive.(*Array)
}

// ArrayOK is the same as Array, except it returns a boolean
// instead of panicking.
func (v Value) ArrayOK() (*Array, bool) {
	if v.t != bsontype.Array {
		return nil, false
	}
	return v.Array(), true
}

// Binary returns the BSON binary value the Value represents. It panics if the value is a BSON type
// other than binary.
func (v Value) Binary() BinaryPrimitive {
	if v.t != bsontype.Binary {
		panic(ElementTypeError{"bson.Value.Binary", v.t})
	}
	return v.primitive.(BinaryPrimitive)
}

// BinaryOK is the same as Binary, except it returns a boolean instead of
// panicking.
func (v Value) BinaryOK() (BinaryPrimitive, bool) {
	if v.t != bsontype.Binary {
		return BinaryPrimitive{}, false
	}
	return v.Binary(), true
}

// UUID returns the BSON binary value the Value represents as a UUID. It panics if the value is not
// a binary value carrying the UUID subtype or if the payload is not 16 bytes.
func (v Value) UUID() uuid.UUID {
	bin := v.Binary()
	if bin.Subtype != BinarySubtypeUUID {
		panic(ElementTypeError{"bson.Value.UUID", v.t})
	}
	u, err := uuid.FromBytes(bin.Data)
	if err != nil {
		panic(err)
	}
	return u
}

// UUIDOK is the same as UUID, except it returns a boolean instead of
// panicking.
func (v Value) UUIDOK() (uuid.UUID, bool) {
	bin, ok := v.BinaryOK()
	if !ok || bin.Subtype != BinarySubtypeUUID {
		return uuid.UUID{}, false
	}
	u, err := uuid.FromBytes(bin.Data)
	if err != nil {
		return uuid.UUID{}, false
	}
	return u, true
}

// ObjectID returns the BSON ObjectID the Value represents. It panics if the value is a BSON type
// other than ObjectID.
func (v Value) ObjectID() objectid.ObjectID {
	if v.t != bsontype.ObjectID {
		panic(ElementTypeError{"bson.Value.ObjectID", v.t})
	}
	var oid objectid.ObjectID
	copy(oid[:], v.bootstrap[:12])
	return oid
}

// ObjectIDOK is the same as ObjectID, except it returns a boolean instead of
// panicking.
func (v Value) ObjectIDOK() (objectid.ObjectID, bool) {
	if v.t != bsontype.ObjectID {
		return objectid.ObjectID{}, false
	}
	return v.ObjectID(), true
}

// Boolean returns the BSON boolean the Value represents. It panics if the value is a BSON type
// other than boolean.
func (v Value) Boolean() bool {
	if v.t != bsontype.Boolean {
		panic(ElementTypeError{"bson.Value.Boolean", v.t})
	}
	return v.bootstrap[0] == 0x01
}

// BooleanOK is the same as Boolean, except it returns a boolean instead of
// panicking.
func (v Value) BooleanOK() (bool, bool) {
	if v.t != bsontype.Boolean {
		return false, false
	}
	return v.Boolean(), true
}

// DateTime returns the BSON datetime the Value represents as milliseconds since the Unix epoch. It
// panics if the value is a BSON type other than datetime.
func (v Value) DateTime() int64 {
	if v.t != bsontype.DateTime {
		panic(ElementTypeError{"bson.Value.DateTime", v.t})
	}
	return v.i64()
}

// DateTimeOK is the same as DateTime, except it returns a boolean instead of
// panicking.
func (v Value) DateTimeOK() (int64, bool) {
	if v.t != bsontype.DateTime {
		return 0, false
	}
	return v.DateTime(), true
}

// Time returns the BSON datetime the Value represents as time.Time. It panics if the value is a
// BSON type other than datetime.
func (v Value) Time() time.Time {
	i := v.DateTime()
	return time.Unix(i/1000, i%1000*1000000).UTC()
}

// TimeOK is the same as Time, except it returns a boolean instead of
// panicking.
func (v Value) TimeOK() (time.Time, bool) {
	if v.t != bsontype.DateTime {
		return time.Time{}, false
	}
	return v.Time(), true
}

// Regex returns the BSON regex the Value represents. It panics if the value is a BSON type
// other than regex.
func (v Value) Regex() RegexPrimitive {
	if v.t != bsontype.Regex {
		panic(ElementTypeError{"bson.Value.Regex", v.t})
	}
	return v.primitive.(RegexPrimitive)
}

// RegexOK is the same as Regex, except that it returns a boolean
// instead of panicking.
func (v Value) RegexOK() (RegexPrimitive, bool) {
	if v.t != bsontype.Regex {
		return RegexPrimitive{}, false
	}
	return v.Regex(), true
}

// JavaScript returns the BSON JavaScript code the Value represents. It panics if the value is a
// BSON type other than JavaScript without scope.
func (v Value) JavaScript() JavaScriptCodePrimitive {
	if v.t != bsontype.JavaScript {
		panic(ElementTypeError{"bson.Value.JavaScript", v.t})
	}
	return JavaScriptCodePrimitive(v.string())
}

// JavaScriptOK is the same as JavaScript, except that it returns a boolean
// instead of panicking.
func (v Value) JavaScriptOK() (JavaScriptCodePrimitive, bool) {
	if v.t != bsontype.JavaScript {
		return "", false
	}
	return v.JavaScript(), true
}

// Symbol returns the BSON symbol the Value represents. It panics if the value is a BSON type
// other than symbol.
func (v Value) Symbol() SymbolPrimitive {
	if v.t != bsontype.Symbol {
		panic(ElementTypeError{"bson.Value.Symbol", v.t})
	}
	return SymbolPrimitive(v.string())
}

// SymbolOK is the same as Symbol, except that it returns a boolean
// instead of panicking.
func (v Value) SymbolOK() (SymbolPrimitive, bool) {
	if v.t != bsontype.Symbol {
		return "", false
	}
	return v.Symbol(), true
}

// CodeWithScope returns the BSON code with scope value the Value represents. It panics if the
// value is a BSON type other than code with scope.
func (v Value) CodeWithScope() CodeWithScopePrimitive {
	if v.t != bsontype.CodeWithScope {
		panic(ElementTypeError{"bson.Value.CodeWithScope", v.t})
	}
	return v.primitive.(CodeWithScopePrimitive)
}

// CodeWithScopeOK is the same as CodeWithScope,
// except that it returns a boolean instead of panicking.
func (v Value) CodeWithScopeOK() (CodeWithScopePrimitive, bool) {
	if v.t != bsontype.CodeWithScope {
		return CodeWithScopePrimitive{}, false
	}
	return v.CodeWithScope(), true
}

// Int32 returns the BSON int32 the Value represents. It panics if the value is a BSON type
// other than int32.
func (v Value) Int32() int32 {
	if v.t != bsontype.Int32 {
		panic(ElementTypeError{"bson.Value.Int32", v.t})
	}
	return int32(v.bootstrap[0]) | int32(v.bootstrap[1])<<8 |
		int32(v.bootstrap[2])<<16 | int32(v.bootstrap[3])<<24
}

// Int32OK is the same as Int32, except that it returns a boolean instead of
// panicking.
func (v Value) Int32OK() (int32, bool) {
	if v.t != bsontype.Int32 {
		return 0, false
	}
	return v.Int32(), true
}

// Timestamp returns the BSON timestamp the Value represents. It panics if the value is a
// BSON type other than timestamp.
func (v Value) Timestamp() TimestampPrimitive {
	if v.t != bsontype.Timestamp {
		panic(ElementTypeError{"bson.Value.Timestamp", v.t})
	}
	return TimestampPrimitive{
		I: uint32(v.bootstrap[0]) | uint32(v.bootstrap[1])<<8 |
			uint32(v.bootstrap[2])<<16 | uint32(v.bootstrap[3])<<24,
		T: uint32(v.bootstrap[4]) | uint32(v.bootstrap[5])<<8 |
			uint32(v.bootstrap[6])<<16 | uint32(v.bootstrap[7])<<24,
	}
}

// TimestampOK is the same as Timestamp, except that it returns a boolean
// instead of panicking.
func (v Value) TimestampOK() (TimestampPrimitive, bool) {
	if v.t != bsontype.Timestamp {
		return TimestampPrimitive{}, false
	}
	return v.Timestamp(), true
}

// Int64 returns the BSON int64 the Value represents. It panics if the value is a BSON type
// other than int64.
func (v Value) Int64() int64 {
	if v.t != bsontype.Int64 {
		panic(ElementTypeError{"bson.Value.Int64", v.t})
	}
	return v.i64()
}

// Int64OK is the same as Int64, except that it returns a boolean instead of
// panicking.
func (v Value) Int64OK() (int64, bool) {
	if v.t != bsontype.Int64 {
		return 0, false
	}
	return v.Int64(), true
}

// Equal compares v to v2 and returns true if they are equal.
func (v Value) Equal(v2 Value) bool {
	if v.t != v2.t {
		return false
	}
	switch v.t {
	case TypeDouble, TypeDateTime:
		return bytes.Equal(v.bootstrap[0:8], v2.bootstrap[0:8])
	case TypeString:
		return v.string() == v2.string()
	case TypeEmbeddedDocument:
		return v.Document().Equal(v2.Document())
	case TypeArray:
		return v.Array().Equal(v2.Array())
	case TypeBinary:
		return v.Binary().Equal(v2.Binary())
	case TypeObjectID:
		return bytes.Equal(v.bootstrap[0:12], v2.bootstrap[0:12])
	case TypeBoolean:
		return v.bootstrap[0] == v2.bootstrap[0]
	case TypeNull:
		return true
	case TypeRegex:
		return v.Regex().Equal(v2.Regex())
	case TypeJavaScript:
		return v.JavaScript() == v2.JavaScript()
	case TypeSymbol:
		return v.Symbol() == v2.Symbol()
	case TypeCodeWithScope:
		return v.CodeWithScope().Equal(v2.CodeWithScope())
	case TypeInt32:
		return v.Int32() == v2.Int32()
	case TypeTimestamp:
		return v.Timestamp().Equal(v2.Timestamp())
	case TypeInt64:
		return v.Int64() == v2.Int64()
	case TypeMinKey:
		return true
	case TypeMaxKey:
		return true
	default:
		return true
	}
}

// String implements the fmt.Stringer interface.
func (v Value) String() string {
	switch v.t {
	case TypeString:
		return strconv.Quote(v.StringValue())
	case TypeEmbeddedDocument:
		return v.Document().String()
	case TypeArray:
		return v.Array().String()
	case TypeBinary:
		bin := v.Binary()
		return fmt.Sprintf("Binary(0x%02x, %x)", bin.Subtype, bin.Data)
	case TypeObjectID:
		return v.ObjectID().String()
	case TypeDateTime:
		return v.Time().Format(time.RFC3339Nano)
	case TypeNull:
		return "null"
	case TypeRegex:
		r := v.Regex()
		return fmt.Sprintf("/%s/%s", r.Pattern, r.Options)
	case TypeJavaScript:
		return fmt.Sprintf("JavaScript(%q)", string(v.JavaScript()))
	case TypeCodeWithScope:
		cws := v.CodeWithScope()
		return fmt.Sprintf("JavaScript(%q, %v)", cws.Code, cws.Scope)
	case TypeSymbol:
		return fmt.Sprintf("Symbol(%q)", string(v.Symbol()))
	case TypeTimestamp:
		ts := v.Timestamp()
		return fmt.Sprintf("Timestamp(%d, %d)", ts.T, ts.I)
	case TypeMinKey:
		return "MinKey()"
	case TypeMaxKey:
		return "MaxKey()"
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

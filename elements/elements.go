// Package elements holds the logic to encode and decode the BSON element types
// from native Go to BSON binary and vice versa.
//
// These are low level helper methods, so they do not encode or decode BSON
// elements, only the specific types, e.g. these methods do not encode, decode,
// or identify a BSON element, so they won't read the identifier byte and they
// won't parse out the key string. There are encoder and decoder helper methods
// for the CString BSON element type, so this package can be used to parse
// keys.
package elements

import (
	"encoding/binary"
	"errors"
	"math"
	"unsafe"
)

// ErrTooSmall indicates that the slice provided to encode into or decode from
// does not contain enough bytes for the value.
var ErrTooSmall = errors.New("element: The provided slice is too small")

// ErrUnterminatedCString indicates that a cstring value ran off the end of the
// available bytes before a null terminator was found.
var ErrUnterminatedCString = errors.New("element: cstring missing null terminator")

// ErrInvalidString indicates that a BSON string value had an incorrect length
// or was missing its null terminator.
var ErrInvalidString = errors.New("element: invalid string value")

// ErrInvalidBooleanValue indicates that a BSON boolean value had a byte other
// than 0x00 or 0x01.
var ErrInvalidBooleanValue = errors.New("element: invalid value for BSON Boolean Type")

// These variables are used as namespaces for methods pertaining to encoding
// and decoding individual BSON types.
var (
	Double     DoubleNS
	String     StringNS
	Binary     BinNS
	ObjectID   ObjectIDNS
	Boolean    BooleanNS
	DateTime   DatetimeNS
	Regex      RegexNS
	JavaScript JavaScriptNS
	Symbol     SymbolNS
	Int32      Int32NS
	Timestamp  TimestampNS
	Int64      Int64NS
	CString    CStringNS
	Byte       BSONByteNS
)

// DoubleNS is a namespace for encoding BSON Double elements.
type DoubleNS struct{}

// StringNS is a namespace for encoding BSON String elements.
type StringNS struct{}

// BinNS is a namespace for encoding BSON Binary elements.
type BinNS struct{}

// ObjectIDNS is a namespace for encoding BSON ObjectID elements.
type ObjectIDNS struct{}

// BooleanNS is a namespace for encoding BSON Boolean elements.
type BooleanNS struct{}

// DatetimeNS is a namespace for encoding BSON Datetime elements.
type DatetimeNS struct{}

// RegexNS is a namespace for encoding BSON Regex elements.
type RegexNS struct{}

// JavaScriptNS is a namespace for encoding BSON JavaScript elements.
type JavaScriptNS struct{}

// SymbolNS is a namespace for encoding BSON Symbol elements.
type SymbolNS struct{}

// Int32NS is a namespace for encoding BSON Int32 elements.
type Int32NS struct{}

// TimestampNS is a namespace for encoding BSON Timestamp elements.
type TimestampNS struct{}

// Int64NS is a namespace for encoding BSON Int64 elements.
type Int64NS struct{}

// CStringNS is a namespace for encoding BSON CString elements.
type CStringNS struct{}

// BSONByteNS is a namespace for encoding a single byte.
type BSONByteNS struct{}

// Encode encodes a float64 into a BSON double element and serializes the bytes to the
// provided writer.
func (DoubleNS) Encode(start uint, writer []byte, f float64) (int, error) {
	if len(writer) < int(start+8) {
		return 0, ErrTooSmall
	}

	bits := math.Float64bits(f)
	binary.LittleEndian.PutUint64(writer[start:start+8], bits)

	return 8, nil
}

// Decode reads a float64 from the bytes starting at the given position.
func (DoubleNS) Decode(start uint, src []byte) (float64, int, error) {
	if len(src) < int(start+8) {
		return 0, 0, ErrTooSmall
	}

	bits := binary.LittleEndian.Uint64(src[start : start+8])

	return math.Float64frombits(bits), 8, nil
}

// Element encodes a float64 and a key into a BSON double element and serializes the bytes to the
// provided writer.
func (DoubleNS) Element(start uint, writer []byte, key string, f float64) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x01')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = Double.Encode(start, writer, f)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes a string into a BSON string element and serializes the bytes to the
// provided writer.
func (StringNS) Encode(start uint, writer []byte, s string) (int, error) {
	var total int

	written, err := Int32.Encode(start, writer, int32(len(s))+1)
	total += written
	if err != nil {
		return total, err
	}

	written, err = CString.Encode(start+uint(total), writer, s)
	total += written

	return total, err
}

// Decode reads a length prefixed string from the bytes starting at the given
// position. The declared length includes the null terminator; the terminator
// byte is consumed and verified but not part of the returned string.
func (StringNS) Decode(start uint, src []byte) (string, int, error) {
	l, _, err := Int32.Decode(start, src)
	if err != nil {
		return "", 0, err
	}
	if l < 1 {
		return "", 4, ErrInvalidString
	}
	if len(src) < int(start)+4+int(l) {
		return "", 4, ErrTooSmall
	}
	if src[start+4+uint(l)-1] != '\x00' {
		return "", 4 + int(l), ErrInvalidString
	}

	return string(src[start+4 : start+4+uint(l)-1]), 4 + int(l), nil
}

// Element encodes a string and a key into a BSON string element and serializes the bytes to the
// provided writer.
func (StringNS) Element(start uint, writer []byte, key string, s string) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x02')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = String.Encode(start, writer, s)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes a []byte into a BSON binary element and serializes the bytes to the
// provided writer.
func (BinNS) Encode(start uint, writer []byte, b []byte, btype byte) (int, error) {
	var total int

	if len(writer) < int(start)+5+len(b) {
		return 0, ErrTooSmall
	}

	// write length
	n, err := Int32.Encode(start, writer, int32(len(b)))
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	writer[start] = btype
	start++
	total++

	total += copy(writer[start:], b)

	return total, nil
}

// Decode reads the subtype byte and payload of a BSON binary value from the
// bytes starting at the given position. The returned slice is a copy of the
// payload bytes. This method applies no subtype policy; callers decide which
// subtypes they accept.
func (BinNS) Decode(start uint, src []byte) (byte, []byte, int, error) {
	l, _, err := Int32.Decode(start, src)
	if err != nil {
		return 0, nil, 0, err
	}
	if l < 0 || len(src) < int(start)+5+int(l) {
		return 0, nil, 4, ErrTooSmall
	}

	btype := src[start+4]
	b := make([]byte, l)
	copy(b, src[start+5:start+5+uint(l)])

	return btype, b, 5 + int(l), nil
}

// Element encodes a []byte and a key into a BSON binary element and serializes the bytes to the
// provided writer.
func (BinNS) Element(start uint, writer []byte, key string, b []byte, btype byte) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x05')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = Binary.Encode(start, writer, b, btype)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes an ObjectID into a BSON ObjectID element and serializes the bytes to the
// provided writer.
func (ObjectIDNS) Encode(start uint, writer []byte, oid [12]byte) (int, error) {
	if len(writer) < int(start)+12 {
		return 0, ErrTooSmall
	}

	return copy(writer[start:], oid[:]), nil
}

// Decode reads an ObjectID from the bytes starting at the given position.
func (ObjectIDNS) Decode(start uint, src []byte) ([12]byte, int, error) {
	var oid [12]byte
	if len(src) < int(start)+12 {
		return oid, 0, ErrTooSmall
	}

	copy(oid[:], src[start:start+12])

	return oid, 12, nil
}

// Element encodes a ObjectID and a key into a BSON ObjectID element and serializes the bytes to the
// provided writer.
func (ObjectIDNS) Element(start uint, writer []byte, key string, oid [12]byte) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x07')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = ObjectID.Encode(start, writer, oid)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes a boolean into a BSON boolean element and serializes the bytes to the
// provided writer.
func (BooleanNS) Encode(start uint, writer []byte, b bool) (int, error) {
	if len(writer) < int(start)+1 {
		return 0, ErrTooSmall
	}

	if b {
		writer[start] = 1
	} else {
		writer[start] = 0
	}

	return 1, nil
}

// Decode reads a boolean from the bytes starting at the given position. Bytes
// other than 0x00 and 0x01 are rejected.
func (BooleanNS) Decode(start uint, src []byte) (bool, int, error) {
	if len(src) < int(start)+1 {
		return false, 0, ErrTooSmall
	}
	if src[start] != '\x00' && src[start] != '\x01' {
		return false, 1, ErrInvalidBooleanValue
	}

	return src[start] == '\x01', 1, nil
}

// Element encodes a boolean and a key into a BSON boolean element and serializes the bytes to the
// provided writer.
func (BooleanNS) Element(start uint, writer []byte, key string, b bool) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x08')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = Boolean.Encode(start, writer, b)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes a Datetime into a BSON Datetime element and serializes the bytes to the
// provided writer.
func (DatetimeNS) Encode(start uint, writer []byte, dt int64) (int, error) {
	return Int64.Encode(start, writer, dt)
}

// Decode reads a Datetime from the bytes starting at the given position.
func (DatetimeNS) Decode(start uint, src []byte) (int64, int, error) {
	return Int64.Decode(start, src)
}

// Element encodes a Datetime and a key into a BSON Datetime element and serializes the bytes to the
// provided writer.
func (DatetimeNS) Element(start uint, writer []byte, key string, dt int64) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x09')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = DateTime.Encode(start, writer, dt)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes a regex into a BSON regex element and serializes the bytes to the
// provided writer.
func (RegexNS) Encode(start uint, writer []byte, pattern, options string) (int, error) {
	var total int

	written, err := CString.Encode(start, writer, pattern)
	total += written
	if err != nil {
		return total, err
	}

	written, err = CString.Encode(start+uint(total), writer, options)
	total += written

	return total, err
}

// Decode reads the pattern and options cstrings of a BSON regex value from
// the bytes starting at the given position.
func (RegexNS) Decode(start uint, src []byte) (string, string, int, error) {
	var total int

	pattern, n, err := CString.Decode(start, src)
	total += n
	if err != nil {
		return "", "", total, err
	}

	options, n, err := CString.Decode(start+uint(total), src)
	total += n
	if err != nil {
		return "", "", total, err
	}

	return pattern, options, total, nil
}

// Element encodes a regex and a key into a BSON regex element and serializes the bytes to the
// provided writer.
func (RegexNS) Element(start uint, writer []byte, key string, pattern, options string) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x0B')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = Regex.Encode(start, writer, pattern, options)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes a JavaScript string into a BSON JavaScript element and serializes the bytes to the
// provided writer.
func (JavaScriptNS) Encode(start uint, writer []byte, code string) (int, error) {
	return String.Encode(start, writer, code)
}

// Decode reads the code string of a BSON JavaScript value from the bytes
// starting at the given position.
func (JavaScriptNS) Decode(start uint, src []byte) (string, int, error) {
	return String.Decode(start, src)
}

// Element encodes a JavaScript string and a key into a BSON JavaScript element and serializes the bytes to the
// provided writer.
func (JavaScriptNS) Element(start uint, writer []byte, key string, code string) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x0D')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = JavaScript.Encode(start, writer, code)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes a symbol into a BSON symbol element and serializes the bytes to the
// provided writer.
func (SymbolNS) Encode(start uint, writer []byte, symbol string) (int, error) {
	return String.Encode(start, writer, symbol)
}

// Decode reads a BSON symbol value from the bytes starting at the given
// position.
func (SymbolNS) Decode(start uint, src []byte) (string, int, error) {
	return String.Decode(start, src)
}

// Element encodes a symbol and a key into a BSON symbol element and serializes the bytes to the
// provided writer.
func (SymbolNS) Element(start uint, writer []byte, key string, symbol string) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x0E')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = Symbol.Encode(start, writer, symbol)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes an int32 into a BSON int32 element and serializes the bytes to the
// provided writer.
func (Int32NS) Encode(start uint, writer []byte, i int32) (int, error) {
	if len(writer) < int(start)+4 {
		return 0, ErrTooSmall
	}

	binary.LittleEndian.PutUint32(writer[start:start+4], signed32ToUnsigned(i))

	return 4, nil
}

// Decode reads an int32 from the bytes starting at the given position.
func (Int32NS) Decode(start uint, src []byte) (int32, int, error) {
	if len(src) < int(start)+4 {
		return 0, 0, ErrTooSmall
	}

	return unsigned32ToSigned(binary.LittleEndian.Uint32(src[start : start+4])), 4, nil
}

// Element encodes an int32 and a key into a BSON int32 element and serializes the bytes to the
// provided writer.
func (Int32NS) Element(start uint, writer []byte, key string, i int32) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x10')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = Int32.Encode(start, writer, i)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes a timestamp into a BSON timestamp element and serializes the bytes to the
// provided writer.
func (TimestampNS) Encode(start uint, writer []byte, t uint32, i uint32) (int, error) {
	var total int

	n, err := encodeUint32(start, writer, i)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = encodeUint32(start, writer, t)
	start += uint(n)
	total += n

	return total, err
}

// Decode reads a timestamp from the bytes starting at the given position. The
// increment is the low 4 bytes and the seconds are the high 4 bytes, matching
// the single little-endian uint64 the wire carries.
func (TimestampNS) Decode(start uint, src []byte) (uint32, uint32, int, error) {
	if len(src) < int(start)+8 {
		return 0, 0, 0, ErrTooSmall
	}

	i := binary.LittleEndian.Uint32(src[start : start+4])
	t := binary.LittleEndian.Uint32(src[start+4 : start+8])

	return t, i, 8, nil
}

// Element encodes a timestamp and a key into a BSON timestamp element and serializes the bytes to the
// provided writer.
func (TimestampNS) Element(start uint, writer []byte, key string, t uint32, i uint32) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x11')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = Timestamp.Encode(start, writer, t, i)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes a int64 into a BSON int64 element and serializes the bytes to the
// provided writer.
func (Int64NS) Encode(start uint, writer []byte, i int64) (int, error) {
	u := signed64ToUnsigned(i)

	return encodeUint64(start, writer, u)
}

// Decode reads an int64 from the bytes starting at the given position.
func (Int64NS) Decode(start uint, src []byte) (int64, int, error) {
	if len(src) < int(start)+8 {
		return 0, 0, ErrTooSmall
	}

	return unsigned64ToSigned(binary.LittleEndian.Uint64(src[start : start+8])), 8, nil
}

// Element encodes a int64 and a key into a BSON int64 element and serializes the bytes to the
// provided writer.
func (Int64NS) Element(start uint, writer []byte, key string, i int64) (int, error) {
	var total int

	n, err := Byte.Encode(start, writer, '\x12')
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = CString.Encode(start, writer, key)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = Int64.Encode(start, writer, i)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Encode encodes a C-style string into a BSON CString element and serializes the bytes to the
// provided writer.
func (CStringNS) Encode(start uint, writer []byte, str string) (int, error) {
	if len(writer) < int(start+1)+len(str) {
		return 0, ErrTooSmall
	}

	end := int(start) + len(str)
	written := copy(writer[start:end], str)
	writer[end] = '\x00'

	return written + 1, nil
}

// Decode reads a C-style string from the bytes starting at the given
// position. The returned count includes the null terminator.
func (CStringNS) Decode(start uint, src []byte) (string, int, error) {
	if int(start) > len(src) {
		return "", 0, ErrTooSmall
	}

	pos := start
	for ; int(pos) < len(src) && src[pos] != '\x00'; pos++ {
	}
	if int(pos) == len(src) {
		return "", int(pos - start), ErrUnterminatedCString
	}

	return string(src[start:pos]), int(pos-start) + 1, nil
}

// Encode encodes a single byte and serializes it to the provided writer.
func (BSONByteNS) Encode(start uint, writer []byte, t byte) (int, error) {
	if len(writer) < int(start+1) {
		return 0, ErrTooSmall
	}

	writer[start] = t

	return 1, nil
}

// Decode reads a single byte from the bytes starting at the given position.
func (BSONByteNS) Decode(start uint, src []byte) (byte, int, error) {
	if len(src) < int(start+1) {
		return 0, 0, ErrTooSmall
	}

	return src[start], 1, nil
}

func encodeUint32(start uint, writer []byte, u uint32) (int, error) {
	if len(writer) < int(start+4) {
		return 0, ErrTooSmall
	}

	binary.LittleEndian.PutUint32(writer[start:], u)

	return 4, nil
}

func encodeUint64(start uint, writer []byte, u uint64) (int, error) {
	if len(writer) < int(start+8) {
		return 0, ErrTooSmall
	}

	binary.LittleEndian.PutUint64(writer[start:], u)

	return 8, nil
}

func signed32ToUnsigned(i int32) uint32 {
	return *(*uint32)(unsafe.Pointer(&i))
}

func signed64ToUnsigned(i int64) uint64 {
	return *(*uint64)(unsafe.Pointer(&i))
}

func unsigned32ToSigned(u uint32) int32 {
	return *(*int32)(unsafe.Pointer(&u))
}

func unsigned64ToSigned(u uint64) int64 {
	return *(*int64)(unsafe.Pointer(&u))
}

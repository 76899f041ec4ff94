package bson

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ikmak/bson/elements"
	"github.com/ikmak/bson/objectid"
)

// ReadDocument parses a complete BSON document from the provided byte slice.
// The slice must hold exactly one document: its declared length has to match
// the number of bytes available.
//
// Malformed input is a hard error. The returned error identifies truncated
// input, an unterminated string, an unknown type or binary subtype tag, or a
// length mismatch; nothing is recovered from a document that fails to parse.
func ReadDocument(b []byte) (*Document, error) {
	doc, _, err := readDocumentBytes(b)
	return doc, err
}

// Unmarshal parses a complete BSON document from the provided byte slice.
func Unmarshal(b []byte) (*Document, error) {
	return ReadDocument(b)
}

// UnmarshalBSON implements the Unmarshaler interface, replacing the contents
// of the document with the parsed elements.
func (d *Document) UnmarshalBSON(b []byte) error {
	if d == nil {
		return ErrNilDocument
	}

	doc, err := ReadDocument(b)
	if err != nil {
		return err
	}

	d.Reset()
	d.Append(doc.elems...)
	return nil
}

// NewFromIOReader reads a single BSON document frame from r: the 4 byte
// length prefix first, then the remainder of the declared frame. The second
// return value is the number of bytes consumed from r.
func NewFromIOReader(r io.Reader) (*Document, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var lengthBytes [4]byte
	n, err := io.ReadFull(r, lengthBytes[:])
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, int64(n), NewErrTooSmall()
		}
		return nil, int64(n), err
	}

	length, _, _ := elements.Int32.Decode(0, lengthBytes[:])
	if length < 5 {
		return nil, int64(n), ErrInvalidLength
	}

	b := make([]byte, length)
	copy(b, lengthBytes[:])

	read, err := io.ReadFull(r, b[4:])
	total := int64(n) + int64(read)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, total, NewErrTooSmall()
		}
		return nil, total, err
	}

	doc, err := ReadDocument(b)
	return doc, total, err
}

// ReadFrom implements the io.ReaderFrom interface, replacing the contents of
// the document with a frame read from r.
func (d *Document) ReadFrom(r io.Reader) (int64, error) {
	if d == nil {
		return 0, ErrNilDocument
	}

	doc, n, err := NewFromIOReader(r)
	if err != nil {
		return n, err
	}

	d.Reset()
	d.Append(doc.elems...)
	return n, nil
}

// readDocumentBytes parses one document that spans the entire provided
// slice. It returns the number of bytes consumed, which on success equals
// both the declared length and len(src).
func readDocumentBytes(src []byte) (*Document, uint32, error) {
	length, err := validateFrame(src)
	if err != nil {
		return nil, 0, err
	}

	doc := NewDocument()
	pos := uint(4)
	for {
		tag := src[pos]
		if tag == '\x00' {
			pos++
			break
		}
		pos++

		elem, n, err := readElement(tag, pos, src)
		pos += n
		if err != nil {
			return nil, uint32(pos), err
		}
		doc.Append(elem)

		if int(pos) >= len(src) {
			return nil, uint32(pos), NewErrTooSmall()
		}
	}

	if pos != uint(length) {
		return nil, uint32(pos), LengthMismatchError{Declared: length, Actual: int32(pos)}
	}

	return doc, uint32(pos), nil
}

// readArrayBytes parses one array that spans the entire provided slice. The
// decimal index keys carried on the wire are discarded without validation;
// only the order of the values is kept.
func readArrayBytes(src []byte) (*Array, uint32, error) {
	length, err := validateFrame(src)
	if err != nil {
		return nil, 0, err
	}

	arr := NewArray()
	pos := uint(4)
	for {
		tag := src[pos]
		if tag == '\x00' {
			pos++
			break
		}
		tagOffset := uint32(pos)
		pos++

		_, kn, err := elements.CString.Decode(pos, src)
		pos += uint(kn)
		if err != nil {
			return nil, uint32(pos), errors.Wrapf(err, "invalid array index key at offset %d", tagOffset)
		}

		v, vn, err := readValue(tag, tagOffset, pos, src)
		pos += vn
		if err != nil {
			return nil, uint32(pos), err
		}
		arr.Append(v)

		if int(pos) >= len(src) {
			return nil, uint32(pos), NewErrTooSmall()
		}
	}

	if pos != uint(length) {
		return nil, uint32(pos), LengthMismatchError{Declared: length, Actual: int32(pos)}
	}

	return arr, uint32(pos), nil
}

// validateFrame checks the length prefix of a document or array against the
// bytes actually available.
func validateFrame(src []byte) (int32, error) {
	if len(src) < 5 {
		return 0, NewErrTooSmall()
	}

	length, _, err := elements.Int32.Decode(0, src)
	if err != nil {
		return 0, err
	}
	if length < 5 {
		return 0, ErrInvalidLength
	}
	if int(length) != len(src) {
		return 0, LengthMismatchError{Declared: length, Actual: int32(len(src))}
	}

	return length, nil
}

// readElement parses the key and value of one element. The tag byte has
// already been consumed; pos points at the key cstring.
func readElement(tag byte, pos uint, src []byte) (Element, uint, error) {
	tagOffset := uint32(pos - 1)

	key, n, err := elements.CString.Decode(pos, src)
	total := uint(n)
	if err != nil {
		return Element{}, total, errors.Wrapf(err, "invalid key for element 0x%02x at offset %d", tag, tagOffset)
	}

	v, vn, err := readValue(tag, tagOffset, pos+total, src)
	total += vn
	if err != nil {
		return Element{}, total, err
	}

	return Element{Key: key, Value: v}, total, nil
}

// readValue parses the payload of one value. The tagOffset is the position
// of the element's type tag, used for error context only.
func readValue(tag byte, tagOffset uint32, pos uint, src []byte) (Value, uint, error) {
	switch tag {
	case '\x01':
		f, n, err := elements.Double.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		return Double(f), uint(n), nil
	case '\x02':
		s, n, err := elements.String.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		return String(s), uint(n), nil
	case '\x03':
		sub, n, err := readContainer(pos, src)
		if err != nil {
			return Value{}, n, err
		}
		doc, _, err := readDocumentBytes(sub)
		if err != nil {
			return Value{}, n, err
		}
		return EmbedDocument(doc), n, nil
	case '\x04':
		sub, n, err := readContainer(pos, src)
		if err != nil {
			return Value{}, n, err
		}
		arr, _, err := readArrayBytes(sub)
		if err != nil {
			return Value{}, n, err
		}
		return EmbedArray(arr), n, nil
	case '\x05':
		subtype, data, n, err := elements.Binary.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		switch subtype {
		case BinarySubtypeGeneric, BinarySubtypeFunction, BinarySubtypeUUID,
			BinarySubtypeMD5, BinarySubtypeUserDefined:
		case 0x03:
			// Deprecated UUID subtype; normalized on the way in.
			subtype = BinarySubtypeUUID
		default:
			return Value{}, uint(n), InvalidBinarySubtypeError{Subtype: subtype, Offset: uint32(pos) + 4}
		}
		return Value{t: TypeBinary, primitive: BinaryPrimitive{Subtype: subtype, Data: data}}, uint(n), nil
	case '\x07':
		oid, n, err := elements.ObjectID.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		return ObjectID(objectid.ObjectID(oid)), uint(n), nil
	case '\x08':
		b, n, err := elements.Boolean.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		return Boolean(b), uint(n), nil
	case '\x09':
		dt, n, err := elements.DateTime.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		return DateTime(dt), uint(n), nil
	case '\x0A':
		return Null(), 0, nil
	case '\x0B':
		pattern, options, n, err := elements.Regex.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		return Regex(pattern, options), uint(n), nil
	case '\x0D':
		code, n, err := elements.JavaScript.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		return JavaScript(code), uint(n), nil
	case '\x0E':
		symbol, n, err := elements.Symbol.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		return Symbol(symbol), uint(n), nil
	case '\x0F':
		return readCodeWithScope(tagOffset, pos, src)
	case '\x10':
		i, n, err := elements.Int32.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		return Int32(i), uint(n), nil
	case '\x11':
		t, i, n, err := elements.Timestamp.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		return Timestamp(t, i), uint(n), nil
	case '\x12':
		i, n, err := elements.Int64.Decode(pos, src)
		if err != nil {
			return Value{}, uint(n), wrapValueErr(err, tag, tagOffset)
		}
		return Int64(i), uint(n), nil
	case '\x7F':
		return MaxKey(), 0, nil
	case '\xFF':
		return MinKey(), 0, nil
	default:
		return Value{}, 0, UnknownTypeError{Type: tag, Offset: tagOffset}
	}
}

// readContainer returns the exact sub-slice an embedded document or array
// value spans, verified against its own length prefix.
func readContainer(pos uint, src []byte) ([]byte, uint, error) {
	length, _, err := elements.Int32.Decode(pos, src)
	if err != nil {
		return nil, 0, err
	}
	if length < 5 {
		return nil, 4, ErrInvalidLength
	}
	if len(src) < int(pos)+int(length) {
		return nil, 4, NewErrTooSmall()
	}

	return src[pos : pos+uint(length)], uint(length), nil
}

// readCodeWithScope parses a JavaScript code with scope value. The container
// length covers itself, the code string, and the scope document; the three
// interior lengths have to agree exactly.
func readCodeWithScope(tagOffset uint32, pos uint, src []byte) (Value, uint, error) {
	length, _, err := elements.Int32.Decode(pos, src)
	if err != nil {
		return Value{}, 0, err
	}
	// Minimum: container length, string length, string terminator, empty scope.
	if length < 4+4+1+5 {
		return Value{}, 4, ErrInvalidLength
	}
	if len(src) < int(pos)+int(length) {
		return Value{}, 4, NewErrTooSmall()
	}

	code, n, err := elements.String.Decode(pos+4, src)
	if err != nil {
		return Value{}, 4 + uint(n), wrapValueErr(err, '\x0F', tagOffset)
	}
	if int32(4+n) > length-5 {
		return Value{}, 4 + uint(n), ErrStringLargerThanContainer
	}

	scopeStart := pos + 4 + uint(n)
	scope, _, err := readDocumentBytes(src[scopeStart : pos+uint(length)])
	if err != nil {
		return Value{}, 4 + uint(n), err
	}

	return CodeWithScope(code, scope), uint(length), nil
}

func wrapValueErr(err error, tag byte, tagOffset uint32) error {
	return errors.Wrapf(err, "invalid value for element 0x%02x at offset %d", tag, tagOffset)
}

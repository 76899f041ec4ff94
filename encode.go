package bson

import (
	"io"
	"strconv"
	"strings"

	"github.com/ikmak/bson/elements"
)

// Marshal serializes the document into a BSON binary byte slice.
func Marshal(d *Document) ([]byte, error) {
	return d.MarshalBSON()
}

// MarshalBSON implements the Marshaler interface.
//
// This method will never return nil bytes together with a nil error.
func (d *Document) MarshalBSON() ([]byte, error) {
	size, err := d.Validate()
	if err != nil {
		return nil, err
	}

	b := make([]byte, size)
	_, err = d.writeByteSlice(0, size, b)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Validate validates the document and returns its total size on the wire.
func (d *Document) Validate() (uint32, error) {
	if d == nil {
		return 0, ErrNilDocument
	}

	// Header and footer.
	var size uint32 = 4 + 1
	for _, elem := range d.elems {
		size += 1 + uint32(len(elem.Key)) + 1

		vsize, err := valueSize(elem.Value)
		if err != nil {
			return 0, err
		}
		size += vsize
	}

	return size, nil
}

// Validate validates the array and returns its total size on the wire,
// including the regenerated index keys.
func (a *Array) Validate() (uint32, error) {
	if a == nil {
		return 0, ErrNilArray
	}

	var size uint32 = 4 + 1
	for i, v := range a.values {
		size += 1 + uint32(len(strconv.Itoa(i))) + 1

		vsize, err := valueSize(v)
		if err != nil {
			return 0, err
		}
		size += vsize
	}

	return size, nil
}

// valueSize returns the number of bytes the value's payload occupies on the
// wire, excluding the type tag and the key.
func valueSize(v Value) (uint32, error) {
	switch v.t {
	case TypeDouble, TypeDateTime, TypeTimestamp, TypeInt64:
		return 8, nil
	case TypeString:
		return 4 + uint32(len(v.string())) + 1, nil
	case TypeEmbeddedDocument:
		return v.Document().Validate()
	case TypeArray:
		return v.Array().Validate()
	case TypeBinary:
		return 4 + 1 + uint32(len(v.Binary().Data)), nil
	case TypeObjectID:
		return 12, nil
	case TypeBoolean:
		return 1, nil
	case TypeNull, TypeMinKey, TypeMaxKey:
		return 0, nil
	case TypeRegex:
		r := v.Regex()
		if strings.IndexByte(r.Pattern, 0x00) != -1 || strings.IndexByte(r.Options, 0x00) != -1 {
			return 0, ErrInvalidRegex
		}
		return uint32(len(r.Pattern)) + 1 + uint32(len(r.Options)) + 1, nil
	case TypeJavaScript:
		return 4 + uint32(len(v.string())) + 1, nil
	case TypeSymbol:
		return 4 + uint32(len(v.string())) + 1, nil
	case TypeCodeWithScope:
		cws := v.CodeWithScope()
		scopeSize, err := cws.Scope.Validate()
		if err != nil {
			return 0, err
		}
		return 4 + 4 + uint32(len(cws.Code)) + 1 + scopeSize, nil
	case TypeInt32:
		return 4, nil
	default:
		return 0, ErrUninitializedElement
	}
}

// writeByteSlice serializes the document into the provided slice starting at
// the given position. The size must come from a prior Validate call on the
// same document.
func (d *Document) writeByteSlice(start uint, size uint32, b []byte) (int64, error) {
	var total int64
	var pos = start

	if len(b) < int(start)+int(size) {
		return 0, NewErrTooSmall()
	}

	n, err := elements.Int32.Encode(pos, b, int32(size))
	total += int64(n)
	pos += uint(n)
	if err != nil {
		return total, err
	}

	for _, elem := range d.elems {
		n, err := writeElement(elem, pos, b)
		total += int64(n)
		pos += uint(n)
		if err != nil {
			return total, err
		}
	}

	n, err = elements.Byte.Encode(pos, b, '\x00')
	total += int64(n)
	if err != nil {
		return total, err
	}

	return total, nil
}

// writeByteSlice serializes the array as a document whose keys are the
// decimal indexes of the values.
func (a *Array) writeByteSlice(start uint, size uint32, b []byte) (int64, error) {
	var total int64
	var pos = start

	if len(b) < int(start)+int(size) {
		return 0, NewErrTooSmall()
	}

	n, err := elements.Int32.Encode(pos, b, int32(size))
	total += int64(n)
	pos += uint(n)
	if err != nil {
		return total, err
	}

	for i, v := range a.values {
		n, err := writeElement(Element{Key: strconv.Itoa(i), Value: v}, pos, b)
		total += int64(n)
		pos += uint(n)
		if err != nil {
			return total, err
		}
	}

	n, err = elements.Byte.Encode(pos, b, '\x00')
	total += int64(n)
	if err != nil {
		return total, err
	}

	return total, nil
}

// writeElement serializes one element, type tag and key included, into the
// provided slice starting at the given position.
func writeElement(elem Element, start uint, b []byte) (int, error) {
	v := elem.Value

	switch v.t {
	case TypeDouble:
		return elements.Double.Element(start, b, elem.Key, v.Double())
	case TypeString:
		return elements.String.Element(start, b, elem.Key, v.StringValue())
	case TypeEmbeddedDocument:
		return writeContainerElement(start, b, '\x03', elem.Key, v.Document())
	case TypeArray:
		return writeContainerElement(start, b, '\x04', elem.Key, v.Array())
	case TypeBinary:
		bin := v.Binary()
		return elements.Binary.Element(start, b, elem.Key, bin.Data, bin.Subtype)
	case TypeObjectID:
		return elements.ObjectID.Element(start, b, elem.Key, v.ObjectID())
	case TypeBoolean:
		return elements.Boolean.Element(start, b, elem.Key, v.Boolean())
	case TypeDateTime:
		return elements.DateTime.Element(start, b, elem.Key, v.DateTime())
	case TypeNull:
		return writeTagAndKey(start, b, '\x0A', elem.Key)
	case TypeRegex:
		r := v.Regex()
		return elements.Regex.Element(start, b, elem.Key, r.Pattern, r.Options)
	case TypeJavaScript:
		return elements.JavaScript.Element(start, b, elem.Key, string(v.JavaScript()))
	case TypeSymbol:
		return elements.Symbol.Element(start, b, elem.Key, string(v.Symbol()))
	case TypeCodeWithScope:
		return writeCodeWithScopeElement(start, b, elem.Key, v.CodeWithScope())
	case TypeInt32:
		return elements.Int32.Element(start, b, elem.Key, v.Int32())
	case TypeTimestamp:
		ts := v.Timestamp()
		return elements.Timestamp.Element(start, b, elem.Key, ts.T, ts.I)
	case TypeInt64:
		return elements.Int64.Element(start, b, elem.Key, v.Int64())
	case TypeMinKey:
		return writeTagAndKey(start, b, '\xFF', elem.Key)
	case TypeMaxKey:
		return writeTagAndKey(start, b, '\x7F', elem.Key)
	default:
		return 0, ErrUninitializedElement
	}
}

func writeTagAndKey(start uint, b []byte, tag byte, key string) (int, error) {
	var total int

	n, err := elements.Byte.Encode(start, b, tag)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = elements.CString.Encode(start, b, key)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

type wireContainer interface {
	Validate() (uint32, error)
	writeByteSlice(start uint, size uint32, b []byte) (int64, error)
}

func writeContainerElement(start uint, b []byte, tag byte, key string, c wireContainer) (int, error) {
	total, err := writeTagAndKey(start, b, tag, key)
	start += uint(total)
	if err != nil {
		return total, err
	}

	size, err := c.Validate()
	if err != nil {
		return total, err
	}

	n, err := c.writeByteSlice(start, size, b)
	total += int(n)
	if err != nil {
		return total, err
	}

	return total, nil
}

func writeCodeWithScopeElement(start uint, b []byte, key string, cws CodeWithScopePrimitive) (int, error) {
	total, err := writeTagAndKey(start, b, '\x0F', key)
	start += uint(total)
	if err != nil {
		return total, err
	}

	scopeSize, err := cws.Scope.Validate()
	if err != nil {
		return total, err
	}

	// The container length covers itself, the code string, and the scope.
	containerSize := int32(4 + 4 + len(cws.Code) + 1 + int(scopeSize))
	n, err := elements.Int32.Encode(start, b, containerSize)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	n, err = elements.String.Encode(start, b, cws.Code)
	start += uint(n)
	total += n
	if err != nil {
		return total, err
	}

	sn, err := cws.Scope.writeByteSlice(start, scopeSize, b)
	total += int(sn)
	if err != nil {
		return total, err
	}

	return total, nil
}

// WriteTo implements the io.WriterTo interface, serializing the document and
// writing it to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrInvalidWriter
	}

	b, err := d.MarshalBSON()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(b)
	return int64(n), err
}

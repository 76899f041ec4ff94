package bson

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-stack/stack"

	"github.com/ikmak/bson/bsontype"
)

// ErrTooSmall indicates that a slice provided to write into or read from is
// not large enough to fit the data.
type ErrTooSmall struct {
	Stack stack.CallStack
}

// NewErrTooSmall creates a new ErrTooSmall with the current stack.
func NewErrTooSmall() ErrTooSmall {
	return ErrTooSmall{Stack: stack.Trace().TrimRuntime()}
}

// Error implements the error interface.
func (e ErrTooSmall) Error() string {
	return "too small"
}

// ErrorStack returns a string representing the stack at the point where the
// error occurred.
func (e ErrTooSmall) ErrorStack() string {
	s := bytes.NewBufferString("too small: [")

	for i, call := range e.Stack {
		if i != 0 {
			s.WriteString(", ")
		}

		// go vet doesn't like %k even though it's part of stack's API, so we move the format
		// string so it doesn't complain. (We also can't make it a constant, or go vet still
		// complains.)
		callFormat := "%k.%n %v"

		s.WriteString(fmt.Sprintf(callFormat, call, call, call))
	}

	s.WriteRune(']')

	return s.String()
}

// Equals checks that err2 also is an ErrTooSmall.
func (e ErrTooSmall) Equals(err2 error) bool {
	switch err2.(type) {
	case ErrTooSmall:
		return true
	default:
		return false
	}
}

// ErrInvalidKey indicates that the BSON representation of a key is missing a null terminator.
var ErrInvalidKey = errors.New("invalid document key")

// ErrInvalidLength indicates that a length in a binary representation of a BSON document is invalid.
var ErrInvalidLength = errors.New("document length is invalid")

// ErrInvalidWriter indicates that a type that can't be written into was passed to a writer method.
var ErrInvalidWriter = errors.New("bson: invalid writer provided")

// ErrEmptyKey indicates that no key was provided to a Lookup method.
var ErrEmptyKey = errors.New("empty key provided")

// ErrNilDocument indicates that an operation was attempted on a nil *bson.Document.
var ErrNilDocument = errors.New("document is nil")

// ErrNilArray indicates that an operation was attempted on a nil *bson.Array.
var ErrNilArray = errors.New("array is nil")

// ErrOutOfBounds indicates that an index provided to access something was invalid.
var ErrOutOfBounds = errors.New("out of bounds")

// ErrNilReader indicates that a nil io.Reader was provided to ReadFrom.
var ErrNilReader = errors.New("nil reader")

// ErrStringLargerThanContainer indicates that the code portion of a BSON JavaScript code with scope
// value is larger than the specified length of the entire value.
var ErrStringLargerThanContainer = errors.New("string size is larger than the JavaScript code with scope container")

// ErrUninitializedElement indicates that an operation was attempted on a zero Value or Element.
var ErrUninitializedElement = errors.New("bson: the Element is uninitialized")

// ErrInvalidRegex indicates that a regex pattern or options string contains a null byte and cannot
// be encoded as a cstring.
var ErrInvalidRegex = errors.New("bson: regex pattern or options contains a null byte")

// UnknownTypeError indicates that a decoded element carried a type tag
// outside the set of recognized BSON types. The offset is relative to the
// start of the innermost document being decoded.
type UnknownTypeError struct {
	Type   byte
	Offset uint32
}

// Error implements the error interface.
func (ute UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown element type 0x%02x at offset %d", ute.Type, ute.Offset)
}

// InvalidBinarySubtypeError indicates that a decoded binary value carried an
// unrecognized or deprecated subtype byte.
type InvalidBinarySubtypeError struct {
	Subtype byte
	Offset  uint32
}

// Error implements the error interface.
func (ibe InvalidBinarySubtypeError) Error() string {
	return fmt.Sprintf("invalid BSON binary Subtype 0x%02x at offset %d", ibe.Subtype, ibe.Offset)
}

// LengthMismatchError indicates that the declared length of a document or a
// code with scope container does not match the bytes actually available or
// consumed.
type LengthMismatchError struct {
	Declared int32
	Actual   int32
}

// Error implements the error interface.
func (lme LengthMismatchError) Error() string {
	return fmt.Sprintf("declared length %d does not match actual length %d", lme.Declared, lme.Actual)
}

// ElementTypeError specifies that a method to obtain a BSON value an incorrect type was called on a bson.Value.
type ElementTypeError struct {
	Method string
	Type   bsontype.Type
}

// Error implements the error interface.
func (ete ElementTypeError) Error() string {
	return "Call of " + ete.Method + " on " + ete.Type.String() + " type"
}

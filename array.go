package bson

import (
	"bytes"
	"fmt"
)

// Array represents a BSON array. On the wire an array is a document whose
// keys are the decimal string indexes "0", "1", ... of its values; those
// keys are regenerated on every encode, so only the values are held here.
//
// A nil Array panics on mutation and is treated as empty when read.
type Array struct {
	values []Value
}

// NewArray creates a new array with the given values.
func NewArray(values ...Value) *Array {
	arr := &Array{values: make([]Value, 0, len(values))}
	return arr.Append(values...)
}

// Len returns the number of values in the array.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// Append adds each value to the end of the array, in order. It panics with
// ErrNilArray if a is nil.
func (a *Array) Append(values ...Value) *Array {
	if a == nil {
		panic(ErrNilArray)
	}

	a.values = append(a.values, values...)
	return a
}

// Prepend adds each value to the beginning of the array, in order. It panics
// with ErrNilArray if a is nil.
func (a *Array) Prepend(values ...Value) *Array {
	if a == nil {
		panic(ErrNilArray)
	}

	a.values = append(values, a.values...)
	return a
}

// Lookup returns the value at the given index. It panics with ErrOutOfBounds
// if the index is out of bounds.
func (a *Array) Lookup(index uint) Value {
	v, err := a.LookupErr(index)
	if err != nil {
		panic(err)
	}
	return v
}

// LookupErr returns the value at the given index, or ErrOutOfBounds.
func (a *Array) LookupErr(index uint) (Value, error) {
	if a == nil || index >= uint(len(a.values)) {
		return Value{}, ErrOutOfBounds
	}
	return a.values[index], nil
}

// Set replaces the value at the given index. It returns ErrOutOfBounds if
// the index is out of bounds.
func (a *Array) Set(index uint, value Value) error {
	if a == nil || index >= uint(len(a.values)) {
		return ErrOutOfBounds
	}
	a.values[index] = value
	return nil
}

// Delete removes the value at the given index and returns it. The second
// return value is false when the index is out of bounds.
func (a *Array) Delete(index uint) (Value, bool) {
	if a == nil || index >= uint(len(a.values)) {
		return Value{}, false
	}

	v := a.values[index]
	a.values = append(a.values[:index], a.values[index+1:]...)
	return v, true
}

// Values returns a copy of the value slice, in array order.
func (a *Array) Values() []Value {
	if a == nil {
		return nil
	}
	values := make([]Value, len(a.values))
	copy(values, a.values)
	return values
}

// Copy makes a deep copy of this array.
func (a *Array) Copy() *Array {
	if a == nil {
		return nil
	}

	arr := &Array{values: make([]Value, len(a.values))}
	for i, v := range a.values {
		arr.values[i] = copyValue(v)
	}
	return arr
}

// Reset clears the array so it can be reused.
func (a *Array) Reset() {
	if a == nil {
		panic(ErrNilArray)
	}

	for i := range a.values {
		a.values[i] = a.values[i].reset()
	}
	a.values = a.values[:0]
}

// Equal compares this array to another, returning true if they are equal.
func (a *Array) Equal(a2 *Array) bool {
	if a == nil && a2 == nil {
		return true
	}
	if a == nil || a2 == nil {
		return a.Len() == a2.Len()
	}
	if len(a.values) != len(a2.values) {
		return false
	}
	for i := range a.values {
		if !a.values[i].Equal(a2.values[i]) {
			return false
		}
	}
	return true
}

// String implements the fmt.Stringer interface.
func (a *Array) String() string {
	if a == nil {
		return "<nil>"
	}

	var buf bytes.Buffer
	buf.WriteString("bson.Array[")
	for i, v := range a.values {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v", v)
	}
	buf.WriteByte(']')

	return buf.String()
}

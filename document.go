package bson

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// KeyNotFound is an error type returned from the Lookup methods on Document.
// This type contains the key that was not found.
type KeyNotFound struct {
	Key string
}

// Error implements the error interface.
func (knf KeyNotFound) Error() string {
	return fmt.Sprintf("no element found for key %q", knf.Key)
}

// Document is an ordered collection of BSON elements. Keys may repeat;
// lookups return the earliest indexed element with a matching key.
//
// A nil Document panics on mutation and is treated as empty when read.
type Document struct {
	elems []Element

	// index is a list of the positions in elems, sorted by element key. It
	// keeps lookups logarithmic without disturbing element order.
	index []uint32
}

// NewDocument creates an empty *Document and appends each of the provided
// elements to it.
func NewDocument(elems ...Element) *Document {
	doc := &Document{
		elems: make([]Element, 0, len(elems)),
		index: make([]uint32, 0, len(elems)),
	}

	return doc.Append(elems...)
}

// Len returns the number of elements in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.elems)
}

// search returns the position in d.index of the first entry whose key sorts
// at or after the given key.
func (d *Document) search(key string) int {
	return sort.Search(len(d.index), func(i int) bool { return d.elems[d.index[i]].Key >= key })
}

// searchInsert returns the position in d.index before which an entry for key
// is inserted, placing duplicates after the entries already present.
func (d *Document) searchInsert(key string) int {
	return sort.Search(len(d.index), func(i int) bool { return d.elems[d.index[i]].Key > key })
}

// Append adds each element to the end of the document, in order. It panics
// with ErrNilDocument if d is nil.
func (d *Document) Append(elems ...Element) *Document {
	if d == nil {
		panic(ErrNilDocument)
	}

	for _, elem := range elems {
		d.elems = append(d.elems, elem)
		pos := uint32(len(d.elems) - 1)

		i := d.searchInsert(elem.Key)
		d.index = append(d.index, 0)
		copy(d.index[i+1:], d.index[i:])
		d.index[i] = pos
	}

	return d
}

// Prepend adds each element to the beginning of the document, in order. It
// panics with ErrNilDocument if d is nil.
func (d *Document) Prepend(elems ...Element) *Document {
	if d == nil {
		panic(ErrNilDocument)
	}

	for idx := len(elems) - 1; idx >= 0; idx-- {
		elem := elems[idx]

		d.elems = append(d.elems, Element{})
		copy(d.elems[1:], d.elems)
		d.elems[0] = elem

		for j := range d.index {
			d.index[j]++
		}

		i := d.searchInsert(elem.Key)
		d.index = append(d.index, 0)
		copy(d.index[i+1:], d.index[i:])
		d.index[i] = 0
	}

	return d
}

// Set replaces the value of the first element with a matching key, keeping
// its position. If no element matches, the element is appended. It panics
// with ErrNilDocument if d is nil.
func (d *Document) Set(elem Element) *Document {
	if d == nil {
		panic(ErrNilDocument)
	}

	i := d.search(elem.Key)
	if i < len(d.index) && d.elems[d.index[i]].Key == elem.Key {
		d.elems[d.index[i]] = elem
		return d
	}

	return d.Append(elem)
}

// Lookup searches the document and its sub containers for the element
// reached by the given key path and returns its value. Each key after the
// first descends into the embedded document or array found so far; array
// levels take the decimal index as their key. If nothing matches, a zero
// Value is returned.
func (d *Document) Lookup(key ...string) Value {
	val, err := d.LookupErr(key...)
	if err != nil {
		return Value{}
	}
	return val
}

// LookupErr is the same as Lookup, but returns a KeyNotFound error instead
// of a zero Value when the path does not resolve.
func (d *Document) LookupErr(key ...string) (Value, error) {
	elem, err := d.LookupElementErr(key...)
	if err != nil {
		return Value{}, err
	}
	return elem.Value, nil
}

// LookupElementErr searches the document and its sub containers for the
// element reached by the given key path, or returns a KeyNotFound error. It
// returns ErrEmptyKey when no keys are given or a key is the empty string.
func (d *Document) LookupElementErr(key ...string) (Element, error) {
	if len(key) == 0 || key[0] == "" {
		return Element{}, ErrEmptyKey
	}
	if d == nil {
		return Element{}, KeyNotFound{Key: key[0]}
	}

	i := d.search(key[0])
	if i >= len(d.index) || d.elems[d.index[i]].Key != key[0] {
		return Element{}, KeyNotFound{Key: key[0]}
	}

	elem := d.elems[d.index[i]]
	if len(key) == 1 {
		return elem, nil
	}

	switch elem.Value.Type() {
	case TypeEmbeddedDocument:
		return elem.Value.Document().LookupElementErr(key[1:]...)
	case TypeArray:
		return lookupArray(elem.Value.Array(), key[1:]...)
	default:
		return Element{}, KeyNotFound{Key: key[1]}
	}
}

func lookupArray(arr *Array, key ...string) (Element, error) {
	if key[0] == "" {
		return Element{}, ErrEmptyKey
	}

	index, err := strconv.ParseUint(key[0], 10, 32)
	if err != nil {
		return Element{}, KeyNotFound{Key: key[0]}
	}
	v, err := arr.LookupErr(uint(index))
	if err != nil {
		return Element{}, KeyNotFound{Key: key[0]}
	}

	if len(key) == 1 {
		return Element{Key: key[0], Value: v}, nil
	}

	switch v.Type() {
	case TypeEmbeddedDocument:
		return v.Document().LookupElementErr(key[1:]...)
	case TypeArray:
		return lookupArray(v.Array(), key[1:]...)
	default:
		return Element{}, KeyNotFound{Key: key[1]}
	}
}

// Delete removes the first element with a matching key from the document and
// returns it. The second return value is false when no element matched.
func (d *Document) Delete(key string) (Element, bool) {
	if d == nil {
		return Element{}, false
	}

	i := d.search(key)
	if i >= len(d.index) || d.elems[d.index[i]].Key != key {
		return Element{}, false
	}

	pos := d.index[i]
	elem := d.elems[pos]

	d.elems = append(d.elems[:pos], d.elems[pos+1:]...)
	d.index = append(d.index[:i], d.index[i+1:]...)
	for j := range d.index {
		if d.index[j] > pos {
			d.index[j]--
		}
	}

	return elem, true
}

// ElementAt retrieves the element at the given index. It returns
// ErrOutOfBounds if the index is out of bounds.
func (d *Document) ElementAt(index uint) (Element, error) {
	if d == nil || index >= uint(len(d.elems)) {
		return Element{}, ErrOutOfBounds
	}
	return d.elems[index], nil
}

// Elements returns a copy of the element slice, in document order.
func (d *Document) Elements() []Element {
	if d == nil {
		return nil
	}
	elems := make([]Element, len(d.elems))
	copy(elems, d.elems)
	return elems
}

// Keys returns the keys of the document, in document order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d.elems))
	for _, elem := range d.elems {
		keys = append(keys, elem.Key)
	}
	return keys
}

// Copy makes a deep copy of this document. Embedded documents, arrays, and
// binary payloads are copied as well.
func (d *Document) Copy() *Document {
	if d == nil {
		return nil
	}

	doc := &Document{
		elems: make([]Element, len(d.elems)),
		index: make([]uint32, len(d.index)),
	}
	for i, elem := range d.elems {
		doc.elems[i] = Element{Key: elem.Key, Value: copyValue(elem.Value)}
	}
	copy(doc.index, d.index)

	return doc
}

func copyValue(v Value) Value {
	switch v.t {
	case TypeEmbeddedDocument:
		v.primitive = v.primitive.(*Document).Copy()
	case TypeArray:
		v.primitive = v.primitive.(*Array).Copy()
	case TypeBinary:
		bin := v.primitive.(BinaryPrimitive)
		data := make([]byte, len(bin.Data))
		copy(data, bin.Data)
		v.primitive = BinaryPrimitive{Subtype: bin.Subtype, Data: data}
	case TypeCodeWithScope:
		cws := v.primitive.(CodeWithScopePrimitive)
		v.primitive = CodeWithScopePrimitive{Code: cws.Code, Scope: cws.Scope.Copy()}
	}
	return v
}

// Reset clears the document so it can be reused.
func (d *Document) Reset() {
	if d == nil {
		panic(ErrNilDocument)
	}

	for i := range d.elems {
		d.elems[i] = Element{}
	}
	d.elems = d.elems[:0]
	d.index = d.index[:0]
}

// Equal compares this document to another, returning true if they are equal.
// Elements must match pairwise, in order.
func (d *Document) Equal(d2 *Document) bool {
	if d == nil && d2 == nil {
		return true
	}
	if d == nil || d2 == nil {
		return d.Len() == d2.Len()
	}
	if len(d.elems) != len(d2.elems) {
		return false
	}
	for i := range d.elems {
		if !d.elems[i].Equal(d2.elems[i]) {
			return false
		}
	}
	return true
}

// String implements the fmt.Stringer interface.
func (d *Document) String() string {
	if d == nil {
		return "<nil>"
	}

	var buf bytes.Buffer
	buf.WriteString("bson.Document{")
	for i, elem := range d.elems {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v", elem)
	}
	buf.WriteByte('}')

	return buf.String()
}

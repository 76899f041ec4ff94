package bson

import "fmt"

// Element represents a BSON element, i.e. a key-value pair of a BSON
// document.
type Element struct {
	Key   string
	Value Value
}

// Equal compares e and e2 and returns true if they are equal.
func (e Element) Equal(e2 Element) bool {
	if e.Key != e2.Key {
		return false
	}
	return e.Value.Equal(e2.Value)
}

// String implements the fmt.Stringer interface.
func (e Element) String() string {
	return fmt.Sprintf(`bson.Element{"%s": %v}`, e.Key, e.Value)
}

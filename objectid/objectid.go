// Package objectid implements the BSON ObjectID type and its generation.
//
// On the wire an ObjectID is twelve bytes: a 4 byte big-endian component
// holding the creation time in seconds, followed by an 8 byte big-endian
// counter component. Generated ObjectIDs fill the counter component with 5
// random bytes unique to this process and a 3 byte monotonic counter.
package objectid

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"
)

// ErrInvalidHex indicates that a hex string cannot be converted to an ObjectID.
var ErrInvalidHex = errors.New("the provided hex string is not a valid ObjectID")

// ObjectID is the BSON ObjectID type.
type ObjectID [12]byte

// NilObjectID is the zero value for ObjectID.
var NilObjectID ObjectID

var objectIDCounter = readRandomUint32()
var processUnique = processUniqueBytes()

// New generates a new ObjectID.
func New() ObjectID {
	return NewFromTimestamp(time.Now())
}

// NewFromTimestamp generates a new ObjectID based on the given time.
func NewFromTimestamp(timestamp time.Time) ObjectID {
	var b [12]byte

	binary.BigEndian.PutUint32(b[0:4], uint32(timestamp.Unix()))
	copy(b[4:9], processUnique[:])
	putUint24(b[9:12], atomic.AddUint32(&objectIDCounter, 1))

	return b
}

// FromParts assembles an ObjectID from its two wire components: the 4 byte
// time component and the 8 byte counter component.
func FromParts(t uint32, counter uint64) ObjectID {
	var b [12]byte

	binary.BigEndian.PutUint32(b[0:4], t)
	binary.BigEndian.PutUint64(b[4:12], counter)

	return b
}

// Timestamp extracts the time part of the ObjectID.
func (id ObjectID) Timestamp() time.Time {
	unixSecs := binary.BigEndian.Uint32(id[0:4])
	return time.Unix(int64(unixSecs), 0).UTC()
}

// Time returns the raw 4 byte time component.
func (id ObjectID) Time() uint32 {
	return binary.BigEndian.Uint32(id[0:4])
}

// Counter returns the 8 byte counter component.
func (id ObjectID) Counter() uint64 {
	return binary.BigEndian.Uint64(id[4:12])
}

// Hex returns the hex encoding of the ObjectID as a string.
func (id ObjectID) Hex() string {
	var buf [24]byte
	hex.Encode(buf[:], id[:])
	return string(buf[:])
}

func (id ObjectID) String() string {
	return `ObjectID("` + id.Hex() + `")`
}

// IsZero returns true if id is the empty ObjectID.
func (id ObjectID) IsZero() bool {
	return id == NilObjectID
}

// FromHex creates a new ObjectID from a hex string. It returns an error if the
// hex string is not a valid ObjectID.
func FromHex(s string) (ObjectID, error) {
	if len(s) != 24 {
		return NilObjectID, ErrInvalidHex
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return NilObjectID, err
	}

	var oid [12]byte
	copy(oid[:], b)

	return oid, nil
}

// MarshalText returns the ObjectID as UTF-8-encoded text.
func (id ObjectID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText populates the byte slice with the ObjectID.
func (id *ObjectID) UnmarshalText(b []byte) error {
	oid, err := FromHex(string(b))
	if err != nil {
		return err
	}
	*id = oid
	return nil
}

func processUniqueBytes() [5]byte {
	var b [5]byte
	_, err := io.ReadFull(rand.Reader, b[:])
	if err != nil {
		panic(fmt.Errorf("cannot initialize objectid package with crypto.rand.Reader: %v", err))
	}

	return b
}

func readRandomUint32() uint32 {
	var b [4]byte
	_, err := io.ReadFull(rand.Reader, b[:])
	if err != nil {
		panic(fmt.Errorf("cannot initialize objectid package with crypto.rand.Reader: %v", err))
	}

	return (uint32(b[0]) << 0) | (uint32(b[1]) << 8) | (uint32(b[2]) << 16) | (uint32(b[3]) << 24)
}

func putUint24(b []byte, v uint32) {
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

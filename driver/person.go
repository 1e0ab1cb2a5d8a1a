package driver

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"

	"godis-dequeue/datastruct/list"
)

const (
	// NameSize includes the terminating NUL, so names keep at most NameSize-1 bytes.
	NameSize   = 32
	PersonSize = 4 + NameSize
)

// Person is the fixed-size record the drivers push around.
type Person struct {
	Age  int32
	Name string
}

func (p Person) String() string {
	return fmt.Sprintf("{%d, %q}", p.Age, p.Name)
}

// EncodePerson lays the record out as a little-endian age followed by a
// NUL padded name. Names longer than NameSize-1 bytes are truncated.
func EncodePerson(p Person) []byte {
	buf := make([]byte, PersonSize)
	binary.LittleEndian.PutUint32(buf[:4], uint32(p.Age))
	name := p.Name
	if len(name) > NameSize-1 {
		name = name[:NameSize-1]
	}
	copy(buf[4:], name)
	return buf
}

func DecodePerson(buf []byte) (Person, error) {
	if len(buf) != PersonSize {
		return Person{}, errors.Wrapf(list.ErrorInvalidArgument, "person record has %d bytes, want %d", len(buf), PersonSize)
	}
	name := buf[4:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return Person{
		Age:  int32(binary.LittleEndian.Uint32(buf[:4])),
		Name: string(name),
	}, nil
}

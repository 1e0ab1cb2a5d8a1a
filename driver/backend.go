package driver

import (
	"godis-dequeue/config"
	"godis-dequeue/datastruct/list"
)

var _ list.Dequeue[Person] = personBytes{}

// Backend is one flavour of dequeue the drivers run against.
type Backend struct {
	Name    string
	New     func() (list.Dequeue[Person], error)
	Clone   func(list.Dequeue[Person]) list.Dequeue[Person]
	Dispose func(*list.Dequeue[Person]) error
}

// Backends picks the dequeue flavours selected by props.Mode.
func Backends(props *config.DriverProperties) []Backend {
	var backends []Backend
	if props.Mode == config.ModeBytes || props.Mode == config.ModeBoth {
		backends = append(backends, bytesBackend(props.Allocator))
	}
	if props.Mode == config.ModeTyped || props.Mode == config.ModeBoth {
		backends = append(backends, typedBackend())
	}
	return backends
}

func typedBackend() Backend {
	return Backend{
		Name: config.ModeTyped,
		New: func() (list.Dequeue[Person], error) {
			return list.NewDeque[Person](), nil
		},
		Clone: func(d list.Dequeue[Person]) list.Dequeue[Person] {
			ld, _ := d.(*list.LinkedDeque[Person])
			if cloned := ld.Clone(); cloned != nil {
				return cloned
			}
			return nil
		},
		Dispose: func(h *list.Dequeue[Person]) error {
			if h == nil || *h == nil {
				return list.ErrorInvalidArgument
			}
			ld, _ := (*h).(*list.LinkedDeque[Person])
			if err := list.Dispose(&ld); err != nil {
				return err
			}
			*h = nil
			return nil
		},
	}
}

func bytesBackend(allocator string) Backend {
	return Backend{
		Name: config.ModeBytes + "/" + allocator,
		New: func() (list.Dequeue[Person], error) {
			var alloc list.Allocator = list.HeapAllocator{}
			if allocator == config.AllocatorPool {
				alloc = list.NewPoolAllocator(PersonSize)
			}
			d, err := list.NewByteDequeue(PersonSize, list.WithAllocator(alloc))
			if err != nil {
				return nil, err
			}
			return personBytes{d: d}, nil
		},
		Clone: func(d list.Dequeue[Person]) list.Dequeue[Person] {
			pb, _ := d.(personBytes)
			if cloned := pb.d.Clone(); cloned != nil {
				return personBytes{d: cloned}
			}
			return nil
		},
		Dispose: func(h *list.Dequeue[Person]) error {
			if h == nil || *h == nil {
				return list.ErrorInvalidArgument
			}
			pb, _ := (*h).(personBytes)
			if err := list.DisposeBytes(&pb.d); err != nil {
				return err
			}
			*h = nil
			return nil
		},
	}
}

// personBytes views a ByteDequeue of encoded records as a Dequeue[Person].
type personBytes struct {
	d *list.ByteDequeue
}

func (p personBytes) PushBack(ele Person) error {
	return p.d.PushBack(EncodePerson(ele))
}

func (p personBytes) PushFront(ele Person) error {
	return p.d.PushFront(EncodePerson(ele))
}

func (p personBytes) PopBack() (Person, bool) {
	return take(p.d.PopBack())
}

func (p personBytes) PopFront() (Person, bool) {
	return take(p.d.PopFront())
}

func (p personBytes) PeekBack() (Person, bool) {
	return view(p.d.PeekBack())
}

func (p personBytes) PeekFront() (Person, bool) {
	return view(p.d.PeekFront())
}

func (p personBytes) Len() int {
	return p.d.Len()
}

func (p personBytes) IsEmpty() bool {
	return p.d.IsEmpty()
}

func (p personBytes) Clear() error {
	return p.d.Clear()
}

// take decodes a popped buffer and hands it back to its allocator.
func take(buf *list.Buffer) (Person, bool) {
	if buf == nil {
		return Person{}, false
	}
	defer buf.Release()
	return view(buf.Bytes())
}

func view(b []byte) (Person, bool) {
	if b == nil {
		return Person{}, false
	}
	person, err := DecodePerson(b)
	if err != nil {
		return Person{}, false
	}
	return person, true
}

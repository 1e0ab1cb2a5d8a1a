package list

import (
	"github.com/pkg/errors"
)

// Option configures a ByteDequeue.
type Option func(*ByteDequeue)

// WithAllocator sets the allocator element buffers come from.
func WithAllocator(alloc Allocator) Option {
	return func(d *ByteDequeue) {
		if alloc != nil {
			d.alloc = alloc
		}
	}
}

// ByteDequeue is a double-ended queue of opaque elements that all have the
// same byte size. Pushed elements are copied into buffers owned by the
// queue; popped buffers are handed to the caller as a *Buffer.
// Like LinkedDeque it has a single owner and no internal locking.
type ByteDequeue struct {
	elementSize int
	alloc       Allocator
	nodes       LinkedDeque[[]byte]
}

func NewByteDequeue(elementSize int, opts ...Option) (*ByteDequeue, error) {
	if elementSize <= 0 {
		return nil, errors.Wrapf(ErrorInvalidArgument, "element size %d", elementSize)
	}
	d := &ByteDequeue{
		elementSize: elementSize,
		alloc:       HeapAllocator{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *ByteDequeue) ElementSize() int {
	if d == nil {
		return 0
	}
	return d.elementSize
}

func (d *ByteDequeue) PushBack(element []byte) error {
	n, err := d.newNode(element)
	if err != nil {
		return err
	}
	d.nodes.linkBack(n)
	return nil
}

func (d *ByteDequeue) PushFront(element []byte) error {
	n, err := d.newNode(element)
	if err != nil {
		return err
	}
	d.nodes.linkFront(n)
	return nil
}

// PopBack removes the back element and transfers its buffer to the caller.
// It returns nil when the queue is nil or empty.
func (d *ByteDequeue) PopBack() *Buffer {
	if d.IsEmpty() {
		return nil
	}
	return d.own(d.nodes.unlinkBack())
}

// PopFront removes the front element and transfers its buffer to the caller.
// It returns nil when the queue is nil or empty.
func (d *ByteDequeue) PopFront() *Buffer {
	if d.IsEmpty() {
		return nil
	}
	return d.own(d.nodes.unlinkFront())
}

// PeekBack returns a view of the back element. The view is only valid until
// the next push, pop, clear or dispose.
func (d *ByteDequeue) PeekBack() []byte {
	if d.IsEmpty() {
		return nil
	}
	return d.nodes.back.value
}

// PeekFront returns a view of the front element, see PeekBack.
func (d *ByteDequeue) PeekFront() []byte {
	if d.IsEmpty() {
		return nil
	}
	return d.nodes.front.value
}

func (d *ByteDequeue) Len() int {
	if d == nil {
		return 0
	}
	return d.nodes.size
}

func (d *ByteDequeue) IsEmpty() bool {
	return d.Len() == 0
}

// Clone copies every element, front to back, into a new queue sharing the
// element size and allocator. If an allocation fails the partial clone is
// cleared and nil is returned.
func (d *ByteDequeue) Clone() *ByteDequeue {
	if d == nil {
		return nil
	}
	cloned := &ByteDequeue{
		elementSize: d.elementSize,
		alloc:       d.alloc,
	}
	for n := d.nodes.front; n != nil; n = n.next {
		if err := cloned.PushBack(n.value); err != nil {
			_ = cloned.Clear()
			return nil
		}
	}
	return cloned
}

// Clear pops every element and gives its buffer back to the allocator.
func (d *ByteDequeue) Clear() error {
	if d == nil {
		return ErrorInvalidArgument
	}
	for buf := d.PopBack(); buf != nil; buf = d.PopBack() {
		buf.Release()
	}
	return nil
}

// DisposeBytes clears the dequeue and sets the caller's handle to nil.
func DisposeBytes(d **ByteDequeue) error {
	if d == nil || *d == nil {
		return ErrorInvalidArgument
	}
	if err := (*d).Clear(); err != nil {
		return err
	}
	*d = nil
	return nil
}

func (d *ByteDequeue) newNode(element []byte) (*node[[]byte], error) {
	if d == nil || element == nil {
		return nil, ErrorInvalidArgument
	}
	if len(element) != d.elementSize {
		return nil, errors.Wrapf(ErrorInvalidArgument, "element has %d bytes, want %d", len(element), d.elementSize)
	}
	buf := d.alloc.Alloc(d.elementSize)
	if len(buf) < d.elementSize {
		if buf != nil {
			d.alloc.Free(buf)
		}
		return nil, ErrorOutOfMemory
	}
	buf = buf[:d.elementSize]
	copy(buf, element)
	return &node[[]byte]{value: buf}, nil
}

func (d *ByteDequeue) own(n *node[[]byte]) *Buffer {
	buf := &Buffer{data: n.value, alloc: d.alloc}
	n.value = nil
	return buf
}

// Buffer holds the bytes of a popped element. The holder owns them until
// Release hands them back to the allocator of the queue they came from.
type Buffer struct {
	data  []byte
	alloc Allocator
}

// Bytes returns the element bytes, or nil once released.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Release returns the bytes to their allocator. Calling it again is a no-op.
func (b *Buffer) Release() {
	if b == nil || b.data == nil {
		return
	}
	if b.alloc != nil {
		b.alloc.Free(b.data)
	}
	b.data = nil
}

package list

import "sync"

// Allocator supplies and takes back the element buffers of a ByteDequeue.
// Alloc returns nil when it cannot provide size bytes.
type Allocator interface {
	Alloc(size int) []byte
	Free(buf []byte)
}

var _ Allocator = HeapAllocator{}
var _ Allocator = &PoolAllocator{}

// HeapAllocator allocates with make and leaves freed buffers to the GC.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

func (HeapAllocator) Free([]byte) {}

// PoolAllocator recycles buffers of one fixed size.
type PoolAllocator struct {
	size int
	pool sync.Pool
}

func NewPoolAllocator(size int) *PoolAllocator {
	p := &PoolAllocator{size: size}
	p.pool.New = func() any {
		buf := make([]byte, p.size)
		return &buf
	}
	return p
}

func (p *PoolAllocator) Alloc(size int) []byte {
	if size <= 0 || size != p.size {
		return nil
	}
	return *(p.pool.Get().(*[]byte))
}

// Free drops buffers that were not sized for this pool.
func (p *PoolAllocator) Free(buf []byte) {
	if cap(buf) < p.size {
		return
	}
	buf = buf[:p.size]
	clear(buf)
	p.pool.Put(&buf)
}

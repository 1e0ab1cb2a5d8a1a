package list

import (
	"errors"
)

var _ Dequeue[int] = &LinkedDeque[int]{}

var (
	ErrorInvalidArgument = errors.New("invalid argument")
	ErrorOutOfMemory     = errors.New("out of memory")
	ErrorEmpty           = errors.New("dequeue is empty")
)

// Dequeue 双端队列
type Dequeue[T any] interface {
	PushBack(ele T) error
	PushFront(ele T) error
	PopBack() (T, bool)
	PopFront() (T, bool)
	PeekBack() (T, bool)
	PeekFront() (T, bool)
	// Len 获取长度
	Len() int
	IsEmpty() bool
	// Clear 清空队列, 队列本身仍然可用
	Clear() error
}

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// LinkedDeque is a doubly linked double-ended queue.
// It is not safe for concurrent use; a LinkedDeque has a single owner.
// A nil *LinkedDeque behaves as an absent queue: mutations return
// ErrorInvalidArgument and queries report nothing.
type LinkedDeque[T any] struct {
	front *node[T]
	back  *node[T]
	size  int
}

func NewDeque[T any]() *LinkedDeque[T] {
	return &LinkedDeque[T]{}
}

func (d *LinkedDeque[T]) PushBack(ele T) error {
	if d == nil {
		return ErrorInvalidArgument
	}
	d.linkBack(&node[T]{value: ele})
	return nil
}

func (d *LinkedDeque[T]) PushFront(ele T) error {
	if d == nil {
		return ErrorInvalidArgument
	}
	d.linkFront(&node[T]{value: ele})
	return nil
}

func (d *LinkedDeque[T]) PopBack() (ele T, ok bool) {
	if d.IsEmpty() {
		return
	}
	return d.unlinkBack().value, true
}

func (d *LinkedDeque[T]) PopFront() (ele T, ok bool) {
	if d.IsEmpty() {
		return
	}
	return d.unlinkFront().value, true
}

func (d *LinkedDeque[T]) PeekBack() (ele T, ok bool) {
	if d.IsEmpty() {
		return
	}
	return d.back.value, true
}

func (d *LinkedDeque[T]) PeekFront() (ele T, ok bool) {
	if d.IsEmpty() {
		return
	}
	return d.front.value, true
}

func (d *LinkedDeque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.size
}

func (d *LinkedDeque[T]) IsEmpty() bool {
	return d.Len() == 0
}

// Clone returns an independent copy holding the same elements in the same
// order. Elements are copied by value, so pointers inside T are shared.
func (d *LinkedDeque[T]) Clone() *LinkedDeque[T] {
	if d == nil {
		return nil
	}
	cloned := NewDeque[T]()
	for n := d.front; n != nil; n = n.next {
		cloned.linkBack(&node[T]{value: n.value})
	}
	return cloned
}

func (d *LinkedDeque[T]) Clear() error {
	if d == nil {
		return ErrorInvalidArgument
	}
	for !d.IsEmpty() {
		d.unlinkBack()
	}
	return nil
}

// Dispose clears the dequeue and sets the caller's handle to nil.
func Dispose[T any](d **LinkedDeque[T]) error {
	if d == nil || *d == nil {
		return ErrorInvalidArgument
	}
	if err := (*d).Clear(); err != nil {
		return err
	}
	*d = nil
	return nil
}

func (d *LinkedDeque[T]) linkBack(n *node[T]) {
	n.prev = d.back
	n.next = nil
	if d.back == nil {
		d.front = n
	} else {
		d.back.next = n
	}
	d.back = n
	d.size++
}

func (d *LinkedDeque[T]) linkFront(n *node[T]) {
	n.prev = nil
	n.next = d.front
	if d.front == nil {
		d.back = n
	} else {
		d.front.prev = n
	}
	d.front = n
	d.size++
}

// unlinkBack 调用方需保证队列非空
func (d *LinkedDeque[T]) unlinkBack() *node[T] {
	n := d.back
	d.back = n.prev
	if d.back == nil {
		d.front = nil
	} else {
		d.back.next = nil
	}
	d.size--
	n.prev = nil
	return n
}

// unlinkFront 调用方需保证队列非空
func (d *LinkedDeque[T]) unlinkFront() *node[T] {
	n := d.front
	d.front = n.next
	if d.front == nil {
		d.back = nil
	} else {
		d.front.prev = nil
	}
	d.size--
	n.next = nil
	return n
}

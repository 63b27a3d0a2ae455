// Package trivial implements the same growable circular FIFO queue as
// package circular, restricted to element types that contain no pointers.
// Because nothing in an element can keep other memory alive, the queue
// skips all per-element cleanup: Pop leaves the slot's bytes in place,
// Clear is a constant-time index reset, and growth is a bulk copy.
//
// Callers that want per-element setup or teardown opt in per call with
// EmplaceBackFunc and PopFunc; the plain forms touch nothing.
//
// A Queue is not safe for concurrent use.
package trivial

import (
	"iter"
	"reflect"
)

// noCopy triggers go vet's copylocks check when a Queue is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Queue is a growable circular FIFO queue for pointer-free element types.
// The zero value is an empty queue; the element type is validated once,
// at the first allocation, and the queue panics if T contains pointers,
// maps, slices, channels, funcs, strings or interfaces at any depth.
//
// A Queue must not be copied after first use.
type Queue[T any] struct {
	noCopy noCopy

	buf   []T
	front int // index of the oldest element, meaningless while size == 0
	back  int // one past the newest element, the next insertion slot
	size  int
}

// New returns an empty queue, validating T immediately rather than at the
// first append.
func New[T any]() *Queue[T] {
	assertTrivial[T]()
	return &Queue[T]{}
}

// assertTrivial panics unless T is transferable by plain assignment with
// no retained references.
func assertTrivial[T any]() {
	t := reflect.TypeFor[T]()
	if !isTrivial(t) {
		panic("trivial: " + t.String() + " contains pointer-bearing fields")
	}
}

// isTrivial reports whether t is built solely from booleans, numerics,
// and arrays or structs of them.
func isTrivial(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isTrivial(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isTrivial(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// grow replaces the buffer with one twice the size (minimum 2), copying
// the live range unwrapped to the start of the new buffer in one pass.
// Only called when size == len(buf).
func (q *Queue[T]) grow() {
	if q.buf == nil {
		assertTrivial[T]()
	}
	newCap := 2 * len(q.buf)
	if newCap == 0 {
		newCap = 2
	}
	buf := make([]T, newCap)
	n := copy(buf, q.buf[q.front:])
	copy(buf[n:], q.buf[:q.front])
	q.buf = buf
	q.front = 0
	q.back = q.size
}

// PushBack appends a copy of v at the back of the queue.
func (q *Queue[T]) PushBack(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[q.back] = v
	q.back = (q.back + 1) % len(q.buf)
	q.size++
}

// EmplaceBack appends an element without initializing it and returns a
// pointer to the slot. Whatever bytes the slot last held are still there;
// the caller is expected to assign every field it cares about. The pointer
// is valid until the next append, Pop or Clear.
func (q *Queue[T]) EmplaceBack() *T {
	if q.size == len(q.buf) {
		q.grow()
	}
	p := &q.buf[q.back]
	q.back = (q.back + 1) % len(q.buf)
	q.size++
	return p
}

// EmplaceBackFunc appends an element, invokes init exactly once on the
// slot, and returns a pointer to it.
func (q *Queue[T]) EmplaceBackFunc(init func(*T)) *T {
	p := q.EmplaceBack()
	init(p)
	return p
}

// Front returns a pointer to the oldest element. Panics if the queue is
// empty.
func (q *Queue[T]) Front() *T {
	if q.size == 0 {
		panic("trivial: front of empty queue")
	}
	return &q.buf[q.front]
}

// Back returns a pointer to the newest element. Panics if the queue is
// empty.
func (q *Queue[T]) Back() *T {
	if q.size == 0 {
		panic("trivial: back of empty queue")
	}
	return &q.buf[(q.front+q.size-1)%len(q.buf)]
}

// At returns a pointer to the element at logical position i, where 0 is
// the front. Panics unless 0 <= i < Len().
func (q *Queue[T]) At(i int) *T {
	if i < 0 || i >= q.size {
		panic("trivial: index out of range")
	}
	return &q.buf[(q.front+i)%len(q.buf)]
}

// Pop removes the front element. The slot's bytes are left as they are;
// they stay readable through previously obtained pointers until an append
// reuses the slot. Panics if the queue is empty.
func (q *Queue[T]) Pop() {
	if q.size == 0 {
		panic("trivial: pop from empty queue")
	}
	q.front = (q.front + 1) % len(q.buf)
	q.size--
}

// PopFunc invokes deinit exactly once on the front element, then removes
// it. Panics if the queue is empty.
func (q *Queue[T]) PopFunc(deinit func(*T)) {
	if q.size == 0 {
		panic("trivial: pop from empty queue")
	}
	deinit(&q.buf[q.front])
	q.front = (q.front + 1) % len(q.buf)
	q.size--
}

// Clear empties the queue in constant time by resetting the indices.
// No element is visited and no slot is overwritten.
func (q *Queue[T]) Clear() {
	q.front = 0
	q.back = 0
	q.size = 0
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.size
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.size == 0
}

// Cap returns the slot count of the current buffer. Capacity never
// shrinks over a queue's lifetime.
func (q *Queue[T]) Cap() int {
	return len(q.buf)
}

// All returns an iterator over pointers to the elements in front-to-back
// order. The sequence is restartable; any append, Pop or Clear during
// iteration invalidates it.
func (q *Queue[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < q.size; i++ {
			if !yield(&q.buf[(q.front+i)%len(q.buf)]) {
				return
			}
		}
	}
}

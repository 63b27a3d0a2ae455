// Package circular implements a growable FIFO queue backed by a single
// contiguous wrap-around buffer. Elements are appended at the back and
// removed at the front; when the buffer fills, it is replaced by one twice
// the size and the live range is relinearized to start at index zero.
//
// A Queue is not safe for concurrent use. Callers that share a queue
// between goroutines must provide their own synchronization.
package circular

import "iter"

// noCopy triggers go vet's copylocks check when a Queue is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Queue is a growable circular FIFO queue for arbitrary element types.
// The zero value is an empty queue with no buffer allocated.
//
// A Queue must not be copied after first use; duplicating one would leave
// two owners of the same buffer. Callers that need a copy must transfer
// the elements explicitly.
type Queue[T any] struct {
	noCopy noCopy

	buf   []T
	front int // index of the oldest element, meaningless while size == 0
	back  int // one past the newest element, the next insertion slot
	size  int
}

// New returns an empty queue. No buffer is allocated until the first append.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// grow replaces the buffer with one twice the size (minimum 2) and copies
// the live range, unwrapped, to the start of the new buffer.
// Only called when size == len(buf), so the whole old buffer is live.
func (q *Queue[T]) grow() {
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

// PushBackMove appends *src and resets *src to the zero value, so the
// queue becomes the sole owner of anything *src referenced. The source
// stays valid and reusable.
func (q *Queue[T]) PushBackMove(src *T) {
	q.PushBack(*src)
	var zero T
	*src = zero
}

// EmplaceBack appends a zero-valued element and returns a pointer to it
// for the caller to fill in. The pointer is valid until the next append,
// Pop or Clear.
func (q *Queue[T]) EmplaceBack() *T {
	if q.size == len(q.buf) {
		q.grow()
	}
	p := &q.buf[q.back]
	q.back = (q.back + 1) % len(q.buf)
	q.size++
	return p
}

// Front returns a pointer to the oldest element. Panics if the queue is
// empty.
func (q *Queue[T]) Front() *T {
	if q.size == 0 {
		panic("circular: front of empty queue")
	}
	return &q.buf[q.front]
}

// Back returns a pointer to the newest element. Panics if the queue is
// empty.
func (q *Queue[T]) Back() *T {
	if q.size == 0 {
		panic("circular: back of empty queue")
	}
	return &q.buf[(q.front+q.size-1)%len(q.buf)]
}

// At returns a pointer to the element at logical position i, where 0 is
// the front. Panics unless 0 <= i < Len().
func (q *Queue[T]) At(i int) *T {
	if i < 0 || i >= q.size {
		panic("circular: index out of range")
	}
	return &q.buf[(q.front+i)%len(q.buf)]
}

// Pop removes the front element and zeroes its slot so the queue retains
// no reference to it. Panics if the queue is empty.
//
// A pointer previously obtained from Front or At(0) still reads the old
// value until a later append reuses the slot; no guarantee is made beyond
// that.
func (q *Queue[T]) Pop() {
	if q.size == 0 {
		panic("circular: pop from empty queue")
	}
	var zero T
	q.buf[q.front] = zero
	q.front = (q.front + 1) % len(q.buf)
	q.size--
}

// Clear removes every element front to back, zeroing each slot. The
// buffer is kept for reuse, so capacity is unchanged.
func (q *Queue[T]) Clear() {
	for q.size > 0 {
		q.Pop()
	}
	q.front = 0
	q.back = 0
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
// iteration invalidates it, since slots may move on reallocation.
func (q *Queue[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < q.size; i++ {
			if !yield(&q.buf[(q.front+i)%len(q.buf)]) {
				return
			}
		}
	}
}

// Package sliceq implements a plain slice-backed FIFO queue. It exists as
// the baseline in the benchmark registry: append at the tail, advance a
// head index on Pop, no wrap-around. It offers the same surface as the
// circular variants so the bench and the cross-implementation tests can
// drive all of them interchangeably.
package sliceq

import "iter"

// Queue is a slice-backed FIFO queue. The zero value is an empty queue.
type Queue[T any] struct {
	items []T
	head  int
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// PushBack appends a copy of v at the back of the queue.
func (q *Queue[T]) PushBack(v T) {
	q.items = append(q.items, v)
}

// EmplaceBack appends a zero-valued element and returns a pointer to it.
// The pointer is valid until the next append, Pop or Clear.
func (q *Queue[T]) EmplaceBack() *T {
	var zero T
	q.items = append(q.items, zero)
	return &q.items[len(q.items)-1]
}

// Front returns a pointer to the oldest element. Panics if the queue is
// empty.
func (q *Queue[T]) Front() *T {
	if q.Empty() {
		panic("sliceq: front of empty queue")
	}
	return &q.items[q.head]
}

// Back returns a pointer to the newest element. Panics if the queue is
// empty.
func (q *Queue[T]) Back() *T {
	if q.Empty() {
		panic("sliceq: back of empty queue")
	}
	return &q.items[len(q.items)-1]
}

// At returns a pointer to the element at logical position i. Panics
// unless 0 <= i < Len().
func (q *Queue[T]) At(i int) *T {
	if i < 0 || i >= q.Len() {
		panic("sliceq: index out of range")
	}
	return &q.items[q.head+i]
}

// Pop removes the front element, zeroing its slot. Once the head catches
// up with the tail the slice is rewound so the backing array gets reused.
// Panics if the queue is empty.
func (q *Queue[T]) Pop() {
	if q.Empty() {
		panic("sliceq: pop from empty queue")
	}
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
}

// Clear removes all elements, keeping the backing array.
func (q *Queue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Cap returns the capacity of the backing array.
func (q *Queue[T]) Cap() int {
	return cap(q.items)
}

// All returns an iterator over pointers to the elements in front-to-back
// order. Any mutation of the queue during iteration invalidates it.
func (q *Queue[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := q.head; i < len(q.items); i++ {
			if !yield(&q.items[i]) {
				return
			}
		}
	}
}

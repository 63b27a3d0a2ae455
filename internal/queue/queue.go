package queue

import "iter"

// Interface is the full surface shared by the queue implementations. We
// never require it on a hot path — it exists so the compiler checks that
// all variants keep matching signatures, and so the bench registry can
// hold them uniformly.
type Interface[T any] interface {
	// PushBack appends a copy of the value at the back.
	PushBack(T)

	// EmplaceBack appends an element and returns a pointer to its slot.
	// Whether the slot arrives zeroed is implementation-defined.
	EmplaceBack() *T

	// Front and Back return pointers to the oldest and newest element.
	// Both panic on an empty queue.
	Front() *T
	Back() *T

	// At returns a pointer to the element at logical position i, 0 being
	// the front. Panics on an out-of-range index.
	At(int) *T

	// Pop removes the front element. Panics on an empty queue.
	Pop()

	// Clear removes all elements.
	Clear()

	Len() int
	Empty() bool
	Cap() int

	// All iterates pointers to the elements in front-to-back order.
	All() iter.Seq[*T]
}

// BenchInterface is the subset of Interface the workload runner drives.
type BenchInterface[T any] interface {
	PushBack(T)
	Front() *T
	Pop()
	Clear()
	Len() int
}

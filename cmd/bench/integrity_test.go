package main

import (
	"math/rand"
	"testing"
)

// TestRoundTrip drains a queue completely and reuses it, checking that the
// second filling reads back cleanly.
func TestRoundTrip(t *testing.T) {
	withAllQueues(t, []string{"FIFO", "Indexed"}, func(t *testing.T, impl Implementation) {
		q := impl.newQueue()

		q.PushBack(1)
		q.PushBack(2)
		*q.EmplaceBack() = 3
		q.Pop()
		q.Pop()
		q.Pop()
		if !q.Empty() {
			t.Fatalf("queue not empty after popping everything, Len() = %d", q.Len())
		}

		q.PushBack(10)
		q.PushBack(15)
		q.PushBack(17)
		want := []int64{10, 15, 17}
		for i, w := range want {
			if got := *q.At(i); got != w {
				t.Fatalf("At(%d) = %d, want %d", i, got, w)
			}
		}
	})
}

// TestInterleavedAgainstModel runs a randomized push/pop sequence against
// a plain slice model and checks full logical contents at every step.
func TestInterleavedAgainstModel(t *testing.T) {
	withAllQueues(t, []string{"FIFO", "Indexed"}, func(t *testing.T, impl Implementation) {
		q := impl.newQueue()
		rng := rand.New(rand.NewSource(1))

		var model []int64
		next := int64(0)
		for step := 0; step < 20_000; step++ {
			if len(model) == 0 || rng.Intn(3) != 0 {
				q.PushBack(next)
				model = append(model, next)
				next++
			} else {
				if got := *q.Front(); got != model[0] {
					t.Fatalf("step %d: Front() = %d, want %d", step, got, model[0])
				}
				q.Pop()
				model = model[1:]
			}

			if q.Len() != len(model) {
				t.Fatalf("step %d: Len() = %d, want %d", step, q.Len(), len(model))
			}
		}

		// Full verification at the end, via indexing and via iteration.
		for i, w := range model {
			if got := *q.At(i); got != w {
				t.Fatalf("At(%d) = %d, want %d", i, got, w)
			}
		}
		i := 0
		for p := range q.All() {
			if *p != model[i] {
				t.Fatalf("iteration at %d = %d, want %d", i, *p, model[i])
			}
			i++
		}
		if i != len(model) {
			t.Fatalf("iteration yielded %d elements, want %d", i, len(model))
		}
	})
}

// TestClearThenReuse clears a non-empty queue and checks it behaves like a
// fresh one.
func TestClearThenReuse(t *testing.T) {
	withAllQueues(t, []string{"FIFO"}, func(t *testing.T, impl Implementation) {
		q := impl.newQueue()

		for i := 0; i < 100; i++ {
			q.PushBack(int64(i))
		}
		q.Clear()
		if !q.Empty() {
			t.Fatalf("Len() = %d after Clear, want 0", q.Len())
		}

		q.PushBack(42)
		if got := *q.Front(); got != 42 {
			t.Fatalf("Front() = %d after Clear+PushBack, want 42", got)
		}
		if got := *q.Back(); got != 42 {
			t.Fatalf("Back() = %d after Clear+PushBack, want 42", got)
		}
	})
}

// TestEmptyPreconditionPanics checks that misuse aborts instead of
// returning garbage.
func TestEmptyPreconditionPanics(t *testing.T) {
	withAllQueues(t, []string{"FIFO"}, func(t *testing.T, impl Implementation) {
		mustPanic := func(name string, fn func()) {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s on empty queue did not panic", name)
				}
			}()
			fn()
		}

		q := impl.newQueue()
		mustPanic("Pop", func() { q.Pop() })
		mustPanic("Front", func() { _ = q.Front() })
		mustPanic("Back", func() { _ = q.Back() })
		mustPanic("At", func() { _ = q.At(0) })
	})
}

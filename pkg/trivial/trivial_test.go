package trivial

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nstd-go/circq/internal/queue"
)

var _ queue.Interface[int] = (*Queue[int])(nil)

type pod struct {
	ID    uint64
	Score float64
	Tags  [4]byte
}

type notPod struct {
	ID   uint64
	Name string
}

func checkInvariants[T any](t *testing.T, q *Queue[T]) {
	t.Helper()
	require.GreaterOrEqual(t, q.size, 0)
	require.LessOrEqual(t, q.size, len(q.buf))
	if len(q.buf) > 0 {
		require.Equal(t, (q.front+q.size)%len(q.buf), q.back,
			"back must equal (front+size) mod cap")
	}
}

func TestTrivialityGate(t *testing.T) {
	// Accepted: scalars, arrays and structs of scalars.
	require.NotPanics(t, func() { New[int]() })
	require.NotPanics(t, func() { New[[16]float32]() })
	require.NotPanics(t, func() { New[pod]() })

	// Rejected: anything that can reference other memory.
	require.Panics(t, func() { New[*int]() })
	require.Panics(t, func() { New[string]() })
	require.Panics(t, func() { New[[]byte]() })
	require.Panics(t, func() { New[map[int]int]() })
	require.Panics(t, func() { New[chan int]() })
	require.Panics(t, func() { New[notPod]() })
	require.Panics(t, func() { New[[2]notPod]() })
}

// Zero-value queues hit the gate at first allocation instead.
func TestTrivialityGateLazy(t *testing.T) {
	var q Queue[notPod]
	require.Panics(t, func() { q.PushBack(notPod{}) })

	var ok Queue[pod]
	require.NotPanics(t, func() { ok.PushBack(pod{ID: 1}) })
}

func TestPushPopOrderAcrossGrowth(t *testing.T) {
	q := New[uint64]()
	const n = 1000
	for i := 0; i < n; i++ {
		q.PushBack(uint64(i))
		checkInvariants(t, q)
	}
	for i := 0; i < n; i++ {
		require.Equal(t, uint64(i), *q.At(i))
	}
	for i := 0; i < n; i++ {
		require.Equal(t, uint64(i), *q.Front())
		q.Pop()
		checkInvariants(t, q)
	}
	require.True(t, q.Empty())
}

func TestGrowthDoublesFromTwo(t *testing.T) {
	q := New[int]()
	wantCaps := []int{2, 2, 4, 4, 8, 8, 8, 8, 16}
	for i, want := range wantCaps {
		q.PushBack(i)
		require.Equal(t, want, q.Cap(), "capacity after %d pushes", i+1)
	}
}

func TestWrapAroundReusesSlot(t *testing.T) {
	q := New[int]()
	q.PushBack(100) // A
	q.PushBack(200) // B
	require.Equal(t, 2, q.Cap())

	q.Pop()
	q.PushBack(300) // C reuses A's physical slot, no growth
	require.Equal(t, 2, q.Cap())
	require.Equal(t, 200, *q.At(0))
	require.Equal(t, 300, *q.At(1))
	require.Equal(t, 300, q.buf[0])
}

func TestGrowthBulkCopyUnwraps(t *testing.T) {
	q := New[int]()
	for i := 0; i < 4; i++ {
		q.PushBack(i)
	}
	q.Pop()
	q.Pop()
	q.PushBack(4)
	q.PushBack(5)
	require.NotEqual(t, 0, q.front)

	q.PushBack(6)
	require.Equal(t, 8, q.Cap())
	require.Equal(t, 0, q.front)
	for i, want := range []int{2, 3, 4, 5, 6} {
		require.Equal(t, want, *q.At(i))
	}
}

// Clear must not visit elements: indices reset, bytes stay put.
func TestClearIsIndexResetOnly(t *testing.T) {
	q := New[int]()
	for i := 0; i < 4; i++ {
		q.PushBack(i + 10)
	}
	buf := q.buf
	q.Clear()

	require.True(t, q.Empty())
	require.Equal(t, 0, q.front)
	require.Equal(t, 0, q.back)
	require.Equal(t, 4, q.Cap(), "Clear must not release the buffer")
	for i := 0; i < 4; i++ {
		require.Equal(t, i+10, buf[i], "Clear must not touch element bytes")
	}
}

// An append without an init callback exposes whatever bytes the slot last
// held. Observable without peeking at internals: clear, then emplace into
// the recycled slot.
func TestEmplaceBackLeavesStaleBytes(t *testing.T) {
	q := New[int64]()
	q.PushBack(42)
	q.PushBack(43)
	q.Clear()

	p := q.EmplaceBack()
	require.Equal(t, int64(42), *p)
	p = q.EmplaceBack()
	require.Equal(t, int64(43), *p)
}

func TestPopLeavesBytes(t *testing.T) {
	q := New[int]()
	q.PushBack(7)
	q.PushBack(8)
	q.Pop()
	require.Equal(t, 7, q.buf[0], "Pop must not zero the vacated slot")
}

func TestEmplaceBackFuncInvokedOnce(t *testing.T) {
	q := New[pod]()
	calls := 0
	p := q.EmplaceBackFunc(func(e *pod) {
		calls++
		e.ID = 5
		e.Score = 1.5
	})
	require.Equal(t, 1, calls)
	require.Equal(t, uint64(5), p.ID)
	require.Equal(t, 1.5, q.Front().Score)
	require.Equal(t, 1, q.Len())
}

func TestPopFuncInvokedOnceWithFront(t *testing.T) {
	q := New[int]()
	q.PushBack(11)
	q.PushBack(22)

	calls := 0
	q.PopFunc(func(e *int) {
		calls++
		require.Equal(t, 11, *e)
	})
	require.Equal(t, 1, calls)
	require.Equal(t, 22, *q.Front())
}

func TestRandomizedInvariants(t *testing.T) {
	q := New[uint32]()
	rng := rand.New(rand.NewSource(3))
	live := 0
	for step := 0; step < 50_000; step++ {
		if live == 0 || rng.Intn(5) < 3 {
			q.PushBack(uint32(step))
			live++
		} else {
			q.Pop()
			live--
		}
		checkInvariants(t, q)
		require.Equal(t, live, q.Len())
	}
}

func TestAllIsRestartableAndOrdered(t *testing.T) {
	q := New[int]()
	for i := 0; i < 10; i++ {
		q.PushBack(i)
	}
	q.Pop()
	q.Pop()

	for pass := 0; pass < 2; pass++ {
		want := 2
		for p := range q.All() {
			require.Equal(t, want, *p)
			want++
		}
		require.Equal(t, 10, want)
	}
}

func TestPreconditionPanics(t *testing.T) {
	q := New[int]()
	require.PanicsWithValue(t, "trivial: pop from empty queue", func() { q.Pop() })
	require.PanicsWithValue(t, "trivial: pop from empty queue", func() { q.PopFunc(func(*int) {}) })
	require.PanicsWithValue(t, "trivial: front of empty queue", func() { q.Front() })
	require.PanicsWithValue(t, "trivial: back of empty queue", func() { q.Back() })
	require.PanicsWithValue(t, "trivial: index out of range", func() { q.At(0) })

	q.PushBack(1)
	require.PanicsWithValue(t, "trivial: index out of range", func() { q.At(-1) })
	require.PanicsWithValue(t, "trivial: index out of range", func() { q.At(1) })
}

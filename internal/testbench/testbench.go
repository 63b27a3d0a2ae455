package testbench

import (
	"time"

	"github.com/nstd-go/circq/internal/queue"
)

// Config describes one sequential workload. Resident elements are pushed
// up front and never drained, so the ring spends the whole run wrapped
// around them; after that the runner alternates Burst pushes with Burst
// pops until at least Ops operations have executed.
type Config struct {
	Name     string `yaml:"name" json:"name"`
	Ops      int    `yaml:"ops" json:"ops"`
	Resident int    `yaml:"resident" json:"resident"`
	Burst    int    `yaml:"burst" json:"burst"`
}

// RunWorkload drives q through cfg and returns the number of push/pop
// operations performed and the elapsed wall time. The queue is cleared
// before the run; valueGenerator is called with a running element index
// to produce each pushed value.
//
// Every popped element is read through Front first, both to mirror how
// callers consume a queue and to keep the loop from collapsing into pure
// index arithmetic.
func RunWorkload[T any, Q queue.BenchInterface[T]](
	q Q,
	cfg Config,
	valueGenerator func(int) T,
) (ops int64, elapsed time.Duration) {

	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	q.Clear()
	next := 0
	start := time.Now()

	for i := 0; i < cfg.Resident; i++ {
		q.PushBack(valueGenerator(next))
		next++
	}
	ops = int64(cfg.Resident)

	var sink T
	for ops < int64(cfg.Ops) {
		for i := 0; i < burst; i++ {
			q.PushBack(valueGenerator(next))
			next++
		}
		for i := 0; i < burst; i++ {
			sink = *q.Front()
			q.Pop()
		}
		ops += int64(2 * burst)
	}
	_ = sink

	elapsed = time.Since(start)
	return ops, elapsed
}

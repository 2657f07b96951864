package sort

import "sync/atomic"

// Counter tracks the work a single Sort call performs: comparisons,
// element swaps, rotations and merges. It replaces the profiling global
// that the reference implementation kept as process-wide state (see
// Design Notes): the core never reaches for a package-level counter on
// its own, it only touches one if the caller injects it through
// Options.Counter.
//
// A nil *Counter absorbs every increment as a no-op, so passing no
// counter costs nothing on the hot path.
type Counter struct {
	comparisons int64
	swaps       int64
	rotations   int64
	merges      int64
}

// CounterSnapshot is a point-in-time read of a Counter's tallies.
type CounterSnapshot struct {
	Comparisons, Swaps, Rotations, Merges int64
}

// Snapshot returns the current tallies. Safe to call while a sort using
// the same counter is in flight on another goroutine, though the core
// itself never does that (spec.md's concurrency model is single-threaded).
func (c *Counter) Snapshot() CounterSnapshot {
	if c == nil {
		return CounterSnapshot{}
	}
	return CounterSnapshot{
		Comparisons: atomic.LoadInt64(&c.comparisons),
		Swaps:       atomic.LoadInt64(&c.swaps),
		Rotations:   atomic.LoadInt64(&c.rotations),
		Merges:      atomic.LoadInt64(&c.merges),
	}
}

// Reset zeroes every tally so the same Counter can be reused across
// multiple Sort calls in a benchmark loop.
func (c *Counter) Reset() {
	if c == nil {
		return
	}
	atomic.StoreInt64(&c.comparisons, 0)
	atomic.StoreInt64(&c.swaps, 0)
	atomic.StoreInt64(&c.rotations, 0)
	atomic.StoreInt64(&c.merges, 0)
}

func (c *Counter) addComparisons(n int) {
	if c == nil || n == 0 {
		return
	}
	atomic.AddInt64(&c.comparisons, int64(n))
}

func (c *Counter) addSwaps(n int) {
	if c == nil || n == 0 {
		return
	}
	atomic.AddInt64(&c.swaps, int64(n))
}

func (c *Counter) addRotations(n int) {
	if c == nil || n == 0 {
		return
	}
	atomic.AddInt64(&c.rotations, int64(n))
}

func (c *Counter) addMerges(n int) {
	if c == nil || n == 0 {
		return
	}
	atomic.AddInt64(&c.merges, int64(n))
}

// countingCompare wraps a Compare[T] so every call is tallied on ctr,
// without the core ever touching process-wide state.
func countingCompare[T any](cmp Compare[T], ctr *Counter) Compare[T] {
	if ctr == nil {
		return cmp
	}
	return func(a, b T) int {
		ctr.addComparisons(1)
		return cmp(a, b)
	}
}

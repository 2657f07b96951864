package sort

import (
	"math/rand"
	gosort "sort"
	"testing"
)

// item mirrors the value+index pairing the reference implementation
// used to test stability: value carries the sort key, index the
// element's position before sorting, so a stable sort must never place
// an element with a smaller index after one with an equal value and a
// larger index.
type item struct {
	value int
	index int
}

func compareItems(a, b item) int {
	return a.value - b.value
}

func isSortedStable(xs []item) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i].value < xs[i-1].value {
			return false
		}
		if xs[i].value == xs[i-1].value && xs[i].index < xs[i-1].index {
			return false
		}
	}
	return true
}

func randItems(n, valueRange int) []item {
	xs := make([]item, n)
	for i := range xs {
		xs[i] = item{value: rand.Intn(valueRange), index: i}
	}
	return xs
}

func TestSortSizes(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 63, 64, 65, 100, 511, 512, 1000, 4001} {
		xs := randItems(n, n/4+1)
		Sort(xs, compareItems)
		if !isSortedStable(xs) {
			t.Errorf("Sort produced an unstable or out-of-order result for n=%d", n)
		}
	}
}

func TestSortAlreadySorted(t *testing.T) {
	xs := make([]item, 500)
	for i := range xs {
		xs[i] = item{value: i, index: i}
	}
	Sort(xs, compareItems)
	if !isSortedStable(xs) {
		t.Errorf("Sort mishandled an already-sorted slice")
	}
}

func TestSortReversed(t *testing.T) {
	xs := make([]item, 500)
	for i := range xs {
		xs[i] = item{value: len(xs) - i, index: i}
	}
	Sort(xs, compareItems)
	if !isSortedStable(xs) {
		t.Errorf("Sort mishandled a reverse-sorted slice")
	}
}

func TestSortAllEqual(t *testing.T) {
	xs := make([]item, 300)
	for i := range xs {
		xs[i] = item{value: 7, index: i}
	}
	Sort(xs, compareItems)
	for i := range xs {
		if xs[i].index != i {
			t.Errorf("Sort reordered equal elements: index %d ended up at position %d", xs[i].index, i)
			break
		}
	}
}

func TestSortWithBufferMatchesSort(t *testing.T) {
	for _, n := range []int{0, 1, 50, 500, 5000} {
		xs := randItems(n, 32)
		ys := append([]item(nil), xs...)

		Sort(xs, compareItems)

		buf := make([]item, (len(ys)+1)/2)
		SortWithBuffer(ys, compareItems, buf)

		if !isSortedStable(ys) {
			t.Errorf("SortWithBuffer produced an unstable result for n=%d", n)
		}
		for i := range xs {
			if xs[i] != ys[i] {
				t.Errorf("SortWithBuffer diverged from Sort at index %d for n=%d", i, n)
				break
			}
		}
	}
}

func TestSortWithDynamicBuffer(t *testing.T) {
	xs := randItems(2000, 64)
	SortWithDynamicBuffer(xs, compareItems)
	if !isSortedStable(xs) {
		t.Errorf("SortWithDynamicBuffer produced an unstable result")
	}
}

func TestSortOrdered(t *testing.T) {
	xs := make([]int, 1000)
	for i := range xs {
		xs[i] = rand.Intn(500)
	}
	want := append([]int(nil), xs...)
	gosort.Ints(want)

	SortOrdered(xs)
	for i := range xs {
		if xs[i] != want[i] {
			t.Fatalf("SortOrdered disagreed with sort.Ints at index %d: got %d, want %d", i, xs[i], want[i])
		}
	}
}

func TestSortWithOptionsVerifyPasses(t *testing.T) {
	xs := randItems(2000, 200)
	SortWithOptions(xs, compareItems, Options[item]{VerifyPasses: true})
	if !isSortedStable(xs) {
		t.Errorf("SortWithOptions(VerifyPasses) produced an unstable result")
	}
}

func TestSortCounterTallies(t *testing.T) {
	xs := randItems(2000, 200)
	var ctr Counter
	SortWithOptions(xs, compareItems, Options[item]{Counter: &ctr})

	snap := ctr.Snapshot()
	if snap.Comparisons == 0 {
		t.Errorf("expected a nonzero comparison count for n=%d", len(xs))
	}
	if !isSortedStable(xs) {
		t.Errorf("Sort with a counter attached produced an unstable result")
	}
}

func TestSortNilCounterIsNoop(t *testing.T) {
	var ctr *Counter
	ctr.Reset()
	if snap := ctr.Snapshot(); snap != (CounterSnapshot{}) {
		t.Errorf("nil Counter.Snapshot() = %+v, want zero value", snap)
	}
}

package sort

import "testing"

func TestIteratorCoversWholeRangeEachLevel(t *testing.T) {
	for _, size := range []int{4, 5, 7, 8, 17, 100, 257} {
		it := newIterator(size, 4)
		for {
			it.begin()
			covered := 0
			prevEnd := 0
			for !it.finished() {
				r := it.nextRange()
				if r.start != prevEnd {
					t.Fatalf("size=%d: gap in coverage, range %v does not start at %d", size, r, prevEnd)
				}
				prevEnd = r.end
				covered += r.length()
			}
			if covered != size {
				t.Fatalf("size=%d: pass covered %d elements, want %d", size, covered, size)
			}
			if !it.nextLevel() {
				break
			}
		}
	}
}

func TestIteratorChunksDifferByAtMostOne(t *testing.T) {
	it := newIterator(103, 4)
	it.begin()
	lengths := map[int]bool{}
	for !it.finished() {
		lengths[it.nextRange().length()] = true
	}
	if len(lengths) > 2 {
		t.Errorf("expected chunk lengths to span at most two values, got %v", lengths)
	}
}

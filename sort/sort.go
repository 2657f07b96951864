package sort

import "cmp"

// Compare reports the relative order of a and b the same way
// cmp.Compare does: negative if a < b, zero if equal, positive if
// a > b. Every exported entry point in this package that isn't already
// constrained to cmp.Ordered takes one of these, so callers can sort
// anything a comparison function can order.
type Compare[T any] func(a, b T) int

// Options configures a single Sort call. The zero value is a legal
// Options: no scratch cache, no pass verification, no counter.
type Options[T any] struct {
	// Scratch is reused as the fixed-size cache described in package
	// docs. Its length is never grown or shrunk by Sort; pass a slice
	// of whatever length you're willing to dedicate, or nil for none.
	// A scratch of length (len(xs)+1)/2 makes every merge in the sort
	// run at full speed, matching a classic merge sort.
	Scratch []T

	// VerifyPasses, when true, checks after every merge pass that the
	// elements touched by that pass are in order, panicking with
	// details if not. It's meant for testing Sort itself, not
	// production use - it turns an O(n log n) sort into one with an
	// O(n log n) verification layered on top.
	VerifyPasses bool

	// Counter, if non-nil, accumulates comparisons/swaps/rotations/
	// merges performed by this call. See Counter's docs.
	Counter *Counter
}

// Sort performs a stable, in-place sort of xs using cmp to order
// elements, without allocating scratch space proportional to len(xs).
func Sort[T any](xs []T, cmp Compare[T]) {
	SortWithOptions(xs, cmp, Options[T]{})
}

// SortOrdered sorts xs by its natural order using cmp.Compare.
func SortOrdered[T cmp.Ordered](xs []T) {
	Sort(xs, cmp.Compare[T])
}

// SortWithBuffer sorts xs using buffer as the fixed-size scratch cache.
// A larger buffer (up to (len(xs)+1)/2) lets more merges run at full
// speed instead of falling back to block-rolling or in-place merges.
func SortWithBuffer[T any](xs []T, cmp Compare[T], buffer []T) {
	SortWithOptions(xs, cmp, Options[T]{Scratch: buffer})
}

// SortWithDynamicBuffer sorts xs, choosing a scratch cache length
// proportional to sqrt(len(xs)) - enough to let every internal merge
// in the block-rolling path use the fast cache-assisted strategy,
// without costing O(n) memory.
func SortWithDynamicBuffer[T any](xs []T, cmp Compare[T]) {
	cacheSize := 1
	for cacheSize*cacheSize < len(xs) {
		cacheSize++
	}
	SortWithOptions(xs, cmp, Options[T]{Scratch: make([]T, cacheSize)})
}

// SortWithOptions sorts xs under the given Options. It is the entry
// point every other Sort variant in this package funnels through.
func SortWithOptions[T any](xs []T, cmpFn Compare[T], opts Options[T]) {
	cmpFn = countingCompare(cmpFn, opts.Counter)
	wikiSort(xs, cmpFn, opts.Scratch, opts.Counter, opts.VerifyPasses)
}

// wikiSort is the bottom-up merge sort combined with block-rotation
// merging. cache may be nil or shorter than recommended; every branch
// below degrades gracefully when the cache can't hold what it wants.
func wikiSort[T any](xs []T, cmp Compare[T], cache []T, ctr *Counter, verify bool) {
	n := len(xs)
	if n < 4 {
		insertionSort(xs, newRange(0, n), cmp, ctr)
		return
	}

	it := newIterator(n, 4)
	for !it.finished() {
		sortSmallRange(xs, it.nextRange(), cmp, ctr)
	}
	if n < 8 {
		return
	}

	for {
		if it.length() < len(cache) {
			mergeCachedLevel(xs, &it, cmp, cache, ctr)
		} else {
			mergeRollingLevel(xs, &it, cmp, cache, ctr)
		}

		if verify {
			verifyPass(xs, &it, cmp)
		}

		if !it.nextLevel() {
			break
		}
	}
}

func verifyPass[T any](xs []T, it *iterator, cmp Compare[T]) {
	it.begin()
	for !it.finished() {
		a := it.nextRange()
		b := it.nextRange()
		end := minInt(b.end, len(xs))
		for i := a.start + 1; i < end; i++ {
			if cmp(xs[i], xs[i-1]) < 0 {
				panic("sort: merge pass produced an out-of-order block")
			}
		}
	}
}

// mergeCachedLevel handles a merge pass where every A/B block fits
// into cache. When four blocks fit at once it merges two levels in a
// single step by routing everything through the cache; otherwise it
// falls back to a plain rotate-or-MergeExternal per A/B pair.
func mergeCachedLevel[T any](xs []T, it *iterator, cmp Compare[T], cache []T, ctr *Counter) {
	n := len(xs)
	if (it.length()+1)*4 <= len(cache) && it.length()*4 <= n {
		it.begin()
		for !it.finished() {
			a1 := it.nextRange()
			b1 := it.nextRange()
			a2 := it.nextRange()
			b2 := it.nextRange()

			mergeFourIntoCache(xs, a1, b1, a2, b2, cmp, cache, ctr)
		}
		it.nextLevel()
		return
	}

	it.begin()
	for !it.finished() {
		a := it.nextRange()
		b := it.nextRange()
		if b.length() == 0 || a.length() == 0 {
			continue
		}

		if cmp(xs[b.end-1], xs[a.start]) < 0 {
			rotate(xs, a.length(), newRange(a.start, b.end), cache, ctr)
		} else if cmp(xs[b.start], xs[a.end-1]) < 0 {
			copy(cache, xs[a.start:a.end])
			mergeExternal(xs, a, b, cmp, cache, ctr)
		}
		ctr.addMerges(1)
	}
}

// mergeFourIntoCache merges A1/B1 and A2/B2 into cache, then merges
// those two cached runs back into the array - doing two merge-sort
// levels' worth of work in a single cache round trip.
func mergeFourIntoCache[T any](xs []T, a1, b1, a2, b2 rng, cmp Compare[T], cache []T, ctr *Counter) {
	if cmp(xs[b1.end-1], xs[a1.start]) < 0 {
		copy(cache[b1.length():], xs[a1.start:a1.end])
		copy(cache[:b1.length()], xs[b1.start:b1.end])
	} else if cmp(xs[b1.start], xs[a1.end-1]) < 0 {
		mergeInto(xs, a1, b1, cmp, cache, ctr)
	} else {
		if cmp(xs[b2.start], xs[a2.end-1]) >= 0 && cmp(xs[a2.start], xs[b1.end-1]) >= 0 {
			return
		}
		copy(cache[:a1.length()], xs[a1.start:a1.end])
		copy(cache[a1.length():a1.length()+b1.length()], xs[b1.start:b1.end])
	}
	a1 = newRange(a1.start, b1.end)

	offset := a1.length()
	if cmp(xs[b2.end-1], xs[a2.start]) < 0 {
		copy(cache[offset+b2.length():offset+b2.length()+a2.length()], xs[a2.start:a2.end])
		copy(cache[offset:offset+b2.length()], xs[b2.start:b2.end])
	} else if cmp(xs[b2.start], xs[a2.end-1]) < 0 {
		mergeInto(xs, a2, b2, cmp, cache[offset:], ctr)
	} else {
		copy(cache[offset:offset+a2.length()], xs[a2.start:a2.end])
		copy(cache[offset+a2.length():offset+a2.length()+b2.length()], xs[b2.start:b2.end])
	}
	a2 = newRange(a2.start, b2.end)

	a3 := newRange(0, a1.length())
	b3 := newRange(a1.length(), a1.length()+a2.length())

	dest := xs[a1.start:]
	if cmp(cache[b3.end-1], cache[a3.start]) < 0 {
		copy(dest[a2.length():], cache[a3.start:a3.end])
		copy(dest, cache[b3.start:b3.end])
	} else if cmp(cache[b3.start], cache[a3.end-1]) < 0 {
		mergeInto(cache, a3, b3, cmp, dest, ctr)
	} else {
		copy(dest, cache[a3.start:a3.end])
		copy(dest[a1.length():], cache[b3.start:b3.end])
	}
	ctr.addMerges(1)
}

// mergeRollingLevel handles a merge pass whose blocks are too large
// for the cache, using the full block-tagging/rolling machinery.
func mergeRollingLevel[T any](xs []T, it *iterator, cmp Compare[T], cache []T, ctr *Counter) {
	blockSize := 1
	for (blockSize+1)*(blockSize+1) <= it.length() {
		blockSize++
	}
	bufferSize := it.length()/blockSize + 1

	buffer1, buffer2, pulls := findInternalBuffers(xs, it, cmp, blockSize, bufferSize, len(cache))

	extractPulledBuffers(xs, pulls, cmp, cache, ctr)

	bufferSize = maxInt(buffer1.length(), 1)
	blockSize = it.length()/bufferSize + 1

	it.begin()
	for !it.finished() {
		a := it.nextRange()
		b := it.nextRange()

		a, b, skip := trimPulledRanges(a, b, pulls)
		if skip {
			continue
		}

		if cmp(xs[b.end-1], xs[a.start]) < 0 {
			rotate(xs, a.length(), newRange(a.start, b.end), cache, ctr)
		} else if cmp(xs[a.end], xs[a.end-1]) < 0 {
			mergeRollingBlocks(xs, a, b, cmp, cache, buffer1, buffer2, blockSize, ctr)
		}
		ctr.addMerges(1)
	}

	insertionSort(xs, buffer2, cmp, ctr)
	redistributePulledBuffers(xs, pulls, cache, cmp, ctr)
}

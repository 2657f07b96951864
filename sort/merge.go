package sort

// mergeInto merges A and B from the "from" slice into consecutive
// positions in "into", which must not overlap either A or B. It never
// reads a merged element twice, so it's the cheapest of the four merge
// strategies - used by mergeFourIntoCache, where the array and the
// cache serve as each other's disjoint destination.
func mergeInto[T any](from []T, a, b rng, cmp Compare[T], into []T, ctr *Counter) {
	aIndex, bIndex := a.start, b.start
	insert := 0

	for {
		if cmp(from[bIndex], from[aIndex]) >= 0 {
			into[insert] = from[aIndex]
			aIndex++
			insert++
			if aIndex == a.end {
				insert += copy(into[insert:], from[bIndex:b.end])
				return
			}
		} else {
			into[insert] = from[bIndex]
			bIndex++
			insert++
			if bIndex == b.end {
				copy(into[insert:], from[aIndex:a.end])
				return
			}
		}
	}
}

// mergeExternal merges A and B in place. The caller must already have
// copied A's values into the front of cache (which must hold at least
// length(A) elements); the merge reads A from there, not from xs, while
// B is pulled down over A's old position.
func mergeExternal[T any](xs []T, a, b rng, cmp Compare[T], cache []T, ctr *Counter) {
	aCache := cache[:a.length()]

	aIndex := 0
	bIndex := b.start
	insert := a.start
	aLast := a.length()
	bLast := b.end

	if a.length() > 0 && b.length() > 0 {
		for {
			if cmp(xs[bIndex], aCache[aIndex]) >= 0 {
				xs[insert] = aCache[aIndex]
				aIndex++
				insert++
				if aIndex == aLast {
					break
				}
			} else {
				xs[insert] = xs[bIndex]
				bIndex++
				insert++
				if bIndex == bLast {
					break
				}
			}
		}
	}

	copy(xs[insert:], aCache[aIndex:aLast])
}

// mergeInternal merges A and B using buffer (a range within xs disjoint
// from both) as working space. On entry buffer holds A's values and A's
// range holds the buffer's former contents. Every element in buffer
// gets swapped into the merged output, so by the time this returns,
// buffer holds its former contents again, permuted into some order -
// the caller is responsible for knowing that order is no longer
// meaningful.
func mergeInternal[T any](xs []T, a, b rng, cmp Compare[T], buffer rng, ctr *Counter) {
	aCount, bCount, insert := 0, 0, 0

	if a.length() > 0 && b.length() > 0 {
		for {
			if cmp(xs[b.start+bCount], xs[buffer.start+aCount]) >= 0 {
				xs[a.start+insert], xs[buffer.start+aCount] = xs[buffer.start+aCount], xs[a.start+insert]
				ctr.addSwaps(1)
				aCount++
				insert++
				if aCount >= a.length() {
					break
				}
			} else {
				xs[a.start+insert], xs[b.start+bCount] = xs[b.start+bCount], xs[a.start+insert]
				ctr.addSwaps(1)
				bCount++
				insert++
				if bCount >= b.length() {
					break
				}
			}
		}
	}

	blockSwap(xs, buffer.start+aCount, a.start+insert, a.length()-aCount, ctr)
}

// mergeInPlace merges A and B using no scratch space beyond the
// fixed-size cache (which may be nil or too small to help - in that
// case the three-reverse rotation identity handles it). It repeatedly
// binary searches into B for where the next run of A belongs and
// rotates that run into place; this is only ever invoked when neither
// A nor B's blocks accumulated enough unique values to justify a
// galloping merge, which bounds the total work to O(n) amortized over
// a full sort.
func mergeInPlace[T any](xs []T, a, b rng, cmp Compare[T], cache []T, ctr *Counter) {
	if a.length() == 0 || b.length() == 0 {
		return
	}

	for {
		mid := binaryFirst(xs, xs[a.start], b, cmp)

		amount := mid - a.end
		rotate(xs, a.length(), newRange(a.start, mid), cache, ctr)
		if b.end == mid {
			return
		}

		b.start = mid
		a = newRange(a.start+amount, b.start)
		a.start = binaryLast(xs, xs[a.start], a, cmp)
		if a.length() == 0 {
			return
		}
	}
}

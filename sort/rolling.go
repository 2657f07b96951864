package sort

// mergeRollingBlocks merges A and B at a level too large for A or B to
// fit into cache. It breaks A into block-sized pieces, tags the first
// element of each with a value borrowed from buffer1, then rolls the
// resulting blocks past the B blocks - always keeping the minimum
// untagged A block at the front - merging each A block against however
// much of B sits between it and the next one as it's left behind.
func mergeRollingBlocks[T any](xs []T, a, b rng, cmp Compare[T], cache []T, buffer1, buffer2 rng, blockSize int, ctr *Counter) {
	blockA := newRange(a.start, a.end)
	firstA := newRange(a.start, a.start+blockA.length()%blockSize)

	indexA := buffer1.start
	for index := firstA.end; index < blockA.end; index += blockSize {
		xs[indexA], xs[index] = xs[index], xs[indexA]
		ctr.addSwaps(1)
		indexA++
	}

	lastA := firstA
	lastB := newRange(0, 0)
	blockB := newRange(b.start, b.start+minInt(blockSize, b.length()))
	blockA.start += firstA.length()
	indexA = buffer1.start

	if lastA.length() <= len(cache) {
		copy(cache, xs[lastA.start:lastA.end])
	} else if buffer2.length() > 0 {
		blockSwap(xs, lastA.start, buffer2.start, lastA.length(), ctr)
	}

	if blockA.length() > 0 {
		for {
			if (lastB.length() > 0 && cmp(xs[lastB.end-1], xs[indexA]) >= 0) || blockB.length() == 0 {
				bSplit := binaryFirst(xs, xs[indexA], lastB, cmp)
				bRemaining := lastB.end - bSplit

				minA := blockA.start
				for findA := minA + blockSize; findA < blockA.end; findA += blockSize {
					if cmp(xs[findA], xs[minA]) < 0 {
						minA = findA
					}
				}
				blockSwap(xs, blockA.start, minA, blockSize, ctr)

				xs[blockA.start], xs[indexA] = xs[indexA], xs[blockA.start]
				ctr.addSwaps(1)
				indexA++

				switch {
				case lastA.length() <= len(cache):
					mergeExternal(xs, lastA, newRange(lastA.end, bSplit), cmp, cache, ctr)
				case buffer2.length() > 0:
					mergeInternal(xs, lastA, newRange(lastA.end, bSplit), cmp, buffer2, ctr)
				default:
					mergeInPlace(xs, lastA, newRange(lastA.end, bSplit), cmp, cache, ctr)
				}

				if buffer2.length() > 0 || blockSize <= len(cache) {
					if blockSize <= len(cache) {
						copy(cache, xs[blockA.start:blockA.start+blockSize])
					} else {
						blockSwap(xs, blockA.start, buffer2.start, blockSize, ctr)
					}
					blockSwap(xs, bSplit, blockA.start+blockSize-bRemaining, bRemaining, ctr)
				} else {
					rotate(xs, blockA.start-bSplit, newRange(bSplit, blockA.start+blockSize), cache, ctr)
				}

				lastA = newRange(blockA.start-bRemaining, blockA.start-bRemaining+blockSize)
				lastB = newRange(lastA.end, lastA.end+bRemaining)

				blockA.start += blockSize
				if blockA.length() == 0 {
					break
				}
			} else if blockB.length() < blockSize {
				rotate(xs, blockB.start-blockA.start, newRange(blockA.start, blockB.end), nil, ctr)

				lastB = newRange(blockA.start, blockA.start+blockB.length())
				blockA.start += blockB.length()
				blockA.end += blockB.length()
				blockB.end = blockB.start
			} else {
				blockSwap(xs, blockA.start, blockB.start, blockSize, ctr)
				lastB = newRange(blockA.start, blockA.start+blockSize)

				blockA.start += blockSize
				blockA.end += blockSize
				blockB.start += blockSize

				if blockB.end > b.end-blockSize {
					blockB.end = b.end
				} else {
					blockB.end += blockSize
				}
			}
		}
	}

	switch {
	case lastA.length() <= len(cache):
		mergeExternal(xs, lastA, newRange(lastA.end, b.end), cmp, cache, ctr)
	case buffer2.length() > 0:
		mergeInternal(xs, lastA, newRange(lastA.end, b.end), cmp, buffer2, ctr)
	default:
		mergeInPlace(xs, lastA, newRange(lastA.end, b.end), cmp, cache, ctr)
	}
}

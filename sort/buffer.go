package sort

// pull describes where a run of unique values was pulled out of the
// array to build an internal buffer, and where it needs to go back
// when the merge pass is done: from and to are indices, and the sign
// of (to - from) says which direction the values moved. span is the
// whole A+B subarray this pull belongs to, which lets trimPulledRanges
// recognize it by its starting index.
type pull struct {
	from, to, count int
	span            rng
}

// findInternalBuffers scans every A/B pair in the current level for two
// runs of unique values long enough to serve as internal merge buffers
// (ideally bufferSize each, found contiguously so the runs can share a
// single 2*bufferSize extraction). It returns the two buffer ranges
// (buffer2 may end up empty if the level is small) and the pull
// descriptors recording where each buffer's values came from.
func findInternalBuffers[T any](xs []T, it *iterator, cmp Compare[T], blockSize, bufferSize, cacheSize int) (buffer1, buffer2 rng, pulls [2]pull) {
	find := bufferSize + bufferSize
	findSeparately := false

	if blockSize <= cacheSize {
		find = bufferSize
	} else if find > it.length() {
		find = bufferSize
		findSeparately = true
	}

	pullIndex := 0

	it.begin()
outer:
	for !it.finished() {
		a := it.nextRange()
		b := it.nextRange()

		last, count := a.start, 1
		var index int
		for ; count < find; count++ {
			index = findLastForward(xs, xs[last], newRange(last+1, a.end), cmp, find-count)
			if index == a.end {
				break
			}
			last = index
		}
		index = last

		if count >= bufferSize {
			pulls[pullIndex] = pull{from: index, to: a.start, count: count, span: newRange(a.start, b.end)}
			pullIndex = 1

			switch {
			case count == bufferSize+bufferSize:
				buffer1 = newRange(a.start, a.start+bufferSize)
				buffer2 = newRange(a.start+bufferSize, a.start+count)
				break outer
			case find == bufferSize+bufferSize:
				buffer1 = newRange(a.start, a.start+count)
				find = bufferSize
			case blockSize <= cacheSize:
				buffer1 = newRange(a.start, a.start+count)
				break outer
			case findSeparately:
				buffer1 = newRange(a.start, a.start+count)
				findSeparately = false
			default:
				buffer2 = newRange(a.start, a.start+count)
				break outer
			}
			continue
		} else if pullIndex == 0 && count > buffer1.length() {
			buffer1 = newRange(a.start, a.start+count)
			pulls[0] = pull{from: index, to: a.start, count: count, span: newRange(a.start, b.end)}
		}

		last, count = b.end-1, 1
		for ; count < find; count++ {
			index = findFirstBackward(xs, xs[last], newRange(b.start, last), cmp, find-count)
			if index == b.start {
				break
			}
			last = index - 1
		}
		index = last

		if count >= bufferSize {
			pulls[pullIndex] = pull{from: index, to: b.end, count: count, span: newRange(a.start, b.end)}
			pullIndex = 1

			switch {
			case count == bufferSize+bufferSize:
				buffer1 = newRange(b.end-count, b.end-bufferSize)
				buffer2 = newRange(b.end-bufferSize, b.end)
				break outer
			case find == bufferSize+bufferSize:
				buffer1 = newRange(b.end-count, b.end)
				find = bufferSize
			case blockSize <= cacheSize:
				buffer1 = newRange(b.end-count, b.end)
				break outer
			case findSeparately:
				buffer1 = newRange(b.end-count, b.end)
				findSeparately = false
			default:
				if pulls[0].span.start == a.start {
					pulls[0].span.end -= pulls[1].count
				}
				buffer2 = newRange(b.end-count, b.end)
				break outer
			}
		} else if pullIndex == 0 && count > buffer1.length() {
			buffer1 = newRange(b.end-count, b.end)
			pulls[0] = pull{from: index, to: b.end, count: count, span: newRange(a.start, b.end)}
		}
	}

	return buffer1, buffer2, pulls
}

// extractPulledBuffers physically moves each pull's values to the
// start or end of its span via a sequence of rotations, so the values
// that findInternalBuffers located end up contiguous and usable as a
// buffer.
func extractPulledBuffers[T any](xs []T, pulls [2]pull, cmp Compare[T], cache []T, ctr *Counter) {
	for i := range pulls {
		p := &pulls[i]
		length := p.count
		if length == 0 {
			continue
		}

		if p.to < p.from {
			index := p.from
			for count := 1; count < length; count++ {
				index = findFirstBackward(xs, xs[index-1], newRange(p.to, p.from-(count-1)), cmp, length-count)
				r := newRange(index+1, p.from+1)
				rotate(xs, r.length()-count, r, cache, ctr)
				p.from = index + count
			}
		} else if p.to > p.from {
			index := p.from + 1
			for count := 1; count < length; count++ {
				index = findLastForward(xs, xs[index], newRange(index, p.to), cmp, length-count)
				r := newRange(p.from, index-1)
				rotate(xs, count, r, cache, ctr)
				p.from = index - 1 - count
			}
		}
	}
}

// trimPulledRanges removes from a and b whatever portion either pull
// claimed from this exact subarray, reporting skip=true if nothing is
// left to merge.
func trimPulledRanges(a, b rng, pulls [2]pull) (outA, outB rng, skip bool) {
	start := a.start
	for i := range pulls {
		p := pulls[i]
		if start != p.span.start {
			continue
		}
		switch {
		case p.from > p.to:
			a.start += p.count
			if a.length() == 0 {
				return a, b, true
			}
		case p.from < p.to:
			b.end -= p.count
			if b.length() == 0 {
				return a, b, true
			}
		}
	}
	return a, b, false
}

// redistributePulledBuffers reverses extractPulledBuffers: it moves
// each pull's buffer contents back to where they came from now that
// the merge pass using them as scratch space is done.
func redistributePulledBuffers[T any](xs []T, pulls [2]pull, cache []T, cmp Compare[T], ctr *Counter) {
	for i := range pulls {
		p := pulls[i]
		unique := p.count * 2
		switch {
		case p.from > p.to:
			buf := newRange(p.span.start, p.span.start+p.count)
			for buf.length() > 0 {
				index := findFirstForward(xs, xs[buf.start], newRange(buf.end, p.span.end), cmp, unique)
				amount := index - buf.end
				rotate(xs, buf.length(), newRange(buf.start, index), cache, ctr)
				buf.start += amount + 1
				buf.end += amount
				unique -= 2
			}
		case p.from < p.to:
			buf := newRange(p.span.end-p.count, p.span.end)
			for buf.length() > 0 {
				index := findLastBackward(xs, xs[buf.end-1], newRange(p.span.start, buf.start), cmp, unique)
				amount := buf.start - index
				rotate(xs, amount, newRange(index, buf.end), cache, ctr)
				buf.start -= amount
				buf.end -= amount + 1
				unique -= 2
			}
		}
	}
}

package sort

// swapStable exchanges xs[i] and xs[j] if either they compare out of
// order, or they compare equal but order[] (the original relative
// positions) says they're out of order. This is what keeps the fixed
// sorting networks below stable: ordinary Bose-Nelson networks only
// guarantee a total order, not which of two equal elements comes first.
func swapStable[T any](xs []T, order []int, i, j int, cmp Compare[T], ctr *Counter) {
	x := cmp(xs[i], xs[j])
	if x > 0 || (x == 0 && order[i] > order[j]) {
		xs[i], xs[j] = xs[j], xs[i]
		order[i], order[j] = order[j], order[i]
		ctr.addSwaps(1)
	}
}

// insertionSort handles ranges too small to be worth a merge pass. It is
// stable by construction: later equal elements never move past earlier
// ones.
func insertionSort[T any](xs []T, r rng, cmp Compare[T], ctr *Counter) {
	for i := r.start + 1; i < r.end; i++ {
		for j := i; j > r.start; j-- {
			if cmp(xs[j], xs[j-1]) >= 0 {
				break
			}
			xs[j], xs[j-1] = xs[j-1], xs[j]
			ctr.addSwaps(1)
		}
	}
}

// sortSmallRange handles ranges of length 0-8 with a fixed comparator
// network when possible, falling back to insertion sort for length 0-3
// where a network buys nothing. order holds each element's original
// index within r so equal elements keep their relative order (the
// networks themselves only produce a correct order for distinct keys).
func sortSmallRange[T any](xs []T, r rng, cmp Compare[T], ctr *Counter) {
	n := r.length()
	if n < 4 {
		insertionSort(xs, r, cmp, ctr)
		return
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	s := r.start
	sw := func(i, j int) { swapStable(xs[s:], order, i, j, cmp, ctr) }

	switch n {
	case 4:
		sw(0, 1)
		sw(2, 3)
		sw(0, 2)
		sw(1, 3)
		sw(1, 2)
	case 5:
		sw(0, 1)
		sw(3, 4)
		sw(2, 4)
		sw(2, 3)
		sw(0, 3)
		sw(0, 2)
		sw(1, 4)
		sw(1, 3)
		sw(1, 2)
	case 6:
		sw(1, 2)
		sw(4, 5)
		sw(0, 2)
		sw(3, 5)
		sw(0, 1)
		sw(3, 4)
		sw(2, 5)
		sw(0, 3)
		sw(1, 4)
		sw(2, 4)
		sw(1, 3)
		sw(2, 3)
	case 7:
		sw(1, 2)
		sw(3, 4)
		sw(5, 6)
		sw(0, 2)
		sw(3, 5)
		sw(4, 6)
		sw(0, 1)
		sw(4, 5)
		sw(2, 6)
		sw(0, 4)
		sw(1, 5)
		sw(0, 3)
		sw(2, 5)
		sw(1, 3)
		sw(2, 4)
		sw(2, 3)
	case 8:
		sw(0, 1)
		sw(2, 3)
		sw(4, 5)
		sw(6, 7)
		sw(0, 2)
		sw(1, 3)
		sw(4, 6)
		sw(5, 7)
		sw(1, 2)
		sw(5, 6)
		sw(0, 4)
		sw(3, 7)
		sw(1, 5)
		sw(2, 6)
		sw(1, 4)
		sw(3, 6)
		sw(2, 4)
		sw(3, 5)
		sw(3, 4)
	}
}

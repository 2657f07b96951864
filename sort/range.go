/*Package sort provides a stable, comparison-based, in-place merge sort
that runs in O(n log n) time using O(1) auxiliary memory, plus an
optional fixed-size scratch cache whose size does not depend on the
length of the input. The "merge" step of the usual bottom-up merge sort
is replaced by a block-rotation scheme that borrows two small regions of
the input slice itself as working buffers, so the sort never allocates
in proportion to its input.
*/
package sort

// rng is a half-open interval [start, end) of slice indices. Nearly all
// algorithmic state in this package is expressed as a rng over the
// caller's slice.
type rng struct {
	start, end int
}

func newRange(start, end int) rng {
	return rng{start, end}
}

func (r rng) length() int {
	return r.end - r.start
}

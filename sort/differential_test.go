package sort

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phil-mansfield/blocksort/refsort"
	"github.com/phil-mansfield/blocksort/stress"
)

// TestSortMatchesReferenceAcrossDistributions runs Sort and refsort.Sort
// side by side over every named stress distribution, the same
// differential-testing setup the reference implementation's own test
// harness used to validate behavioral changes to the merge driver. The
// two output slices are diffed structurally with cmp.Diff rather than
// compared index by index, so a mismatch is reported as a single
// readable diff instead of the first offending index.
func TestSortMatchesReferenceAcrossDistributions(t *testing.T) {
	for _, d := range stress.All {
		for _, n := range []int{0, 1, 2, 3, 7, 8, 50, 500, 4001} {
			keys := stress.Generate(d, n, uint64(rand.Int63()))

			xs := make([]item, n)
			ys := make([]item, n)
			for i, k := range keys {
				xs[i] = item{value: k, index: i}
				ys[i] = item{value: k, index: i}
			}

			Sort(xs, compareItems)
			refsort.Sort(ys, func(a, b item) int { return compareItems(a, b) })

			if diff := cmp.Diff(ys, xs, cmp.AllowUnexported(item{})); diff != "" {
				t.Fatalf("distribution=%s n=%d: Sort and refsort.Sort disagree (-refsort +Sort):\n%s", d, n, diff)
			}
		}
	}
}

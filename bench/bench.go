/*Package bench times sort.Sort and its buffer variants against
refsort's baseline across the stress package's distributions and a
sweep of lengths and cache sizes, modeled on the reference
implementation's own command-line benchmark driver (sizes 0 through
4,000,000 against std::stable_sort). stats summarizes the resulting
samples instead of the original's single min/max/average, and Plot
optionally renders runtime against length the same way the teacher's
los/analyze package calls into pyplot.
*/
package bench

import (
	"time"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/blocksort/refsort"
	"github.com/phil-mansfield/blocksort/sort"
	"github.com/phil-mansfield/blocksort/stats"
	"github.com/phil-mansfield/blocksort/stress"
)

// Sample holds the elapsed-time measurements from one (length,
// distribution, cache fraction) point in the sweep.
type Sample struct {
	Length        int
	Distribution  stress.Distribution
	CacheFraction float64
	Nanoseconds   []int64
	RefNanoseconds []int64
}

// Median returns the median elapsed time of Sort's runs, in
// nanoseconds.
func (s Sample) Median() int64 {
	return stats.Median(s.Nanoseconds)
}

// RefMedian returns the median elapsed time of refsort's runs, in
// nanoseconds.
func (s Sample) RefMedian() int64 {
	return stats.Median(s.RefNanoseconds)
}

// Time runs Sort and refsort.Sort each repeats times on freshly
// generated keys shaped by d, seeded by seed, using a scratch cache of
// cacheFraction*(n+1)/2 elements, and returns the elapsed-time samples
// for both.
func Time(n int, d stress.Distribution, cacheFraction float64, seed uint64, repeats int) Sample {
	cacheLen := int(cacheFraction * float64((n+1)/2))

	sample := Sample{
		Length:        n,
		Distribution:  d,
		CacheFraction: cacheFraction,
		Nanoseconds:   make([]int64, repeats),
		RefNanoseconds: make([]int64, repeats),
	}

	for i := 0; i < repeats; i++ {
		keys := stress.Generate(d, n, seed+uint64(i))
		buffer := make([]int, cacheLen)

		xs := append([]int(nil), keys...)
		start := time.Now()
		sort.SortWithBuffer(xs, func(a, b int) int { return a - b }, buffer)
		sample.Nanoseconds[i] = time.Since(start).Nanoseconds()

		ys := append([]int(nil), keys...)
		start = time.Now()
		refsort.Sort(ys, func(a, b int) int { return a - b })
		sample.RefNanoseconds[i] = time.Since(start).Nanoseconds()
	}

	return sample
}

// Plot renders one series per distribution of median Sort runtime
// against length, following the teacher's own variadic plt.Plot(xs,
// ys, opts...) convention.
func Plot(samples []Sample, opts ...interface{}) {
	byDist := map[stress.Distribution][]Sample{}
	for _, s := range samples {
		byDist[s.Distribution] = append(byDist[s.Distribution], s)
	}

	for _, d := range stress.All {
		group := byDist[d]
		if len(group) == 0 {
			continue
		}
		lengths := make([]float64, len(group))
		medians := make([]float64, len(group))
		for i, s := range group {
			lengths[i] = float64(s.Length)
			medians[i] = float64(s.Median())
		}
		args := append([]interface{}{lengths, medians}, opts...)
		plt.Plot(args...)
	}
}

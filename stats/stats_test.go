package stats

import (
	"math/rand"
	gosort "sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func randSlice(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rand.Float64()
	}
	return xs
}

func TestNthLargest(t *testing.T) {
	buf := make([]float64, 1000)
	for i := 0; i < 10; i++ {
		xs := randSlice(len(buf))
		sorted := append([]float64(nil), xs...)
		gosort.Float64s(sorted)

		perm := rand.Perm(len(buf))
		mixed := make([]float64, len(buf))
		for j := range mixed {
			mixed[j] = xs[perm[j]]
		}

		for j := 1; j <= len(buf); j++ {
			val := NthLargest(mixed, j, buf)
			require.Equal(t, sorted[len(sorted)-j], val, "NthLargest(%d)", j)
		}
	}
}

func TestPercentile(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	require.Equal(t, 1.0, Percentile(xs, 1.0))
	require.Equal(t, 10.0, Percentile(xs, 0.1))
}

func TestMedianSmall(t *testing.T) {
	require.Equal(t, 5, Median([]int{5}))
	require.Equal(t, 1, Median([]int{2, 1}))
	require.Equal(t, 2, Median([]int{3, 1, 2}))
}

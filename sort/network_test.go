package sort

import (
	"math/rand"
	"testing"
)

func TestSortSmallRangeAllLengths(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for trial := 0; trial < 50; trial++ {
			xs := randItems(n, 3)
			sortSmallRange(xs, newRange(0, n), compareItems, nil)
			if !isSortedStable(xs) {
				t.Fatalf("sortSmallRange(n=%d) produced an unstable result: %v", n, xs)
			}
		}
	}
}

func TestInsertionSortStable(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		n := rand.Intn(40)
		xs := randItems(n, 5)
		insertionSort(xs, newRange(0, n), compareItems, nil)
		if !isSortedStable(xs) {
			t.Fatalf("insertionSort(n=%d) produced an unstable result: %v", n, xs)
		}
	}
}

package sort

import (
	"math/rand"
	"testing"
)

func TestRotate(t *testing.T) {
	for trial := 0; trial < 100; trial++ {
		n := rand.Intn(60) + 1
		amount := rand.Intn(n + 1)

		xs := make([]int, n)
		for i := range xs {
			xs[i] = i
		}
		want := append(append([]int(nil), xs[amount:]...), xs[:amount]...)

		cache := make([]int, rand.Intn(n+1))
		rotate(xs, amount, newRange(0, n), cache, nil)

		for i := range xs {
			if xs[i] != want[i] {
				t.Fatalf("rotate(n=%d, amount=%d, cache=%d) = %v, want %v", n, amount, len(cache), xs, want)
			}
		}
	}
}

func TestReverseRange(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5}
	reverseRange(xs, newRange(1, 4), nil)
	want := []int{1, 4, 3, 2, 5}
	for i := range xs {
		if xs[i] != want[i] {
			t.Fatalf("reverseRange = %v, want %v", xs, want)
		}
	}
}

func TestBlockSwap(t *testing.T) {
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7}
	blockSwap(xs, 0, 4, 3, nil)
	want := []int{4, 5, 6, 3, 0, 1, 2, 7}
	for i := range xs {
		if xs[i] != want[i] {
			t.Fatalf("blockSwap = %v, want %v", xs, want)
		}
	}
}

func TestFloorPowerOfTwo(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 2, 4: 4, 5: 4, 63: 32, 64: 64, 65: 64, 1000: 512}
	for value, want := range cases {
		if got := floorPowerOfTwo(value); got != want {
			t.Errorf("floorPowerOfTwo(%d) = %d, want %d", value, got, want)
		}
	}
}

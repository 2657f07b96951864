package sort

import "testing"

func intCompare(a, b int) int { return a - b }

func TestBinaryFirstLast(t *testing.T) {
	xs := []int{1, 3, 3, 3, 5, 7, 9}
	r := newRange(0, len(xs))

	if got := binaryFirst(xs, 3, r, intCompare); got != 1 {
		t.Errorf("binaryFirst(3) = %d, want 1", got)
	}
	if got := binaryLast(xs, 3, r, intCompare); got != 4 {
		t.Errorf("binaryLast(3) = %d, want 4", got)
	}
	if got := binaryFirst(xs, 0, r, intCompare); got != 0 {
		t.Errorf("binaryFirst(0) = %d, want 0", got)
	}
	if got := binaryFirst(xs, 10, r, intCompare); got != len(xs) {
		t.Errorf("binaryFirst(10) = %d, want %d", got, len(xs))
	}
	if got := binaryLast(xs, 10, r, intCompare); got != len(xs) {
		t.Errorf("binaryLast(10) = %d, want %d", got, len(xs))
	}
}

func TestGallopMatchesBinarySearch(t *testing.T) {
	xs := make([]int, 200)
	for i := range xs {
		xs[i] = i / 3
	}
	r := newRange(0, len(xs))

	for _, value := range []int{-1, 0, 10, 30, 66, 1000} {
		wantFirst := binaryFirst(xs, value, r, intCompare)
		wantLast := binaryLast(xs, value, r, intCompare)

		for _, unique := range []int{1, 4, 16, 64} {
			if got := findFirstForward(xs, value, r, intCompare, unique); got != wantFirst {
				t.Errorf("findFirstForward(%d, unique=%d) = %d, want %d", value, unique, got, wantFirst)
			}
			if got := findLastForward(xs, value, r, intCompare, unique); got != wantLast {
				t.Errorf("findLastForward(%d, unique=%d) = %d, want %d", value, unique, got, wantLast)
			}
			if got := findFirstBackward(xs, value, r, intCompare, unique); got != wantFirst {
				t.Errorf("findFirstBackward(%d, unique=%d) = %d, want %d", value, unique, got, wantFirst)
			}
			if got := findLastBackward(xs, value, r, intCompare, unique); got != wantLast {
				t.Errorf("findLastBackward(%d, unique=%d) = %d, want %d", value, unique, got, wantLast)
			}
		}
	}
}

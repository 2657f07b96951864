package bench

import (
	"testing"

	"github.com/phil-mansfield/blocksort/stress"
)

func TestTimeProducesOneSamplePerRepeat(t *testing.T) {
	s := Time(200, stress.Random, 0.5, 1, 5)
	if len(s.Nanoseconds) != 5 {
		t.Errorf("got %d Sort samples, want 5", len(s.Nanoseconds))
	}
	if len(s.RefNanoseconds) != 5 {
		t.Errorf("got %d refsort samples, want 5", len(s.RefNanoseconds))
	}
	if s.Length != 200 {
		t.Errorf("got Length %d, want 200", s.Length)
	}
}

func TestTimeMedianIsWithinSampleRange(t *testing.T) {
	s := Time(500, stress.MostlyAscending, 0.25, 7, 9)
	med := s.Median()
	min, max := s.Nanoseconds[0], s.Nanoseconds[0]
	for _, ns := range s.Nanoseconds {
		if ns < min {
			min = ns
		}
		if ns > max {
			max = ns
		}
	}
	if med < min || med > max {
		t.Errorf("median %d ns outside sample range [%d, %d]", med, min, max)
	}
}

func TestTimeZeroCacheFraction(t *testing.T) {
	s := Time(50, stress.Equal, 0, 3, 3)
	if len(s.Nanoseconds) != 3 {
		t.Errorf("got %d samples, want 3", len(s.Nanoseconds))
	}
}

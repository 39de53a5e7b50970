package xssp

import (
	"math"
	"testing"
)

func TestHomologyThreshold(t *testing.T) {
	type test struct {
		lali   int
		answer float64
	}
	tests := []test{
		{10, 0.845468},
		{11, 0.80398},
		{24, 0.536344},
		{25, 0.525314},
		{80, 0.297221},
		// Lengths outside the table clamp to its ends.
		{0, 0.845468},
		{5, 0.845468},
		{9, 0.845468},
		{81, 0.297221},
		{1000, 0.297221},
	}
	for _, test := range tests {
		tval := HomologyThreshold(test.lali)
		if tval != test.answer {
			t.Fatalf("HomologyThreshold(%d) should be %v, but returned %v",
				test.lali, test.answer, tval)
		}
	}
}

func TestHomologyThresholdCurve(t *testing.T) {
	prev := 1.0
	for lali := 10; lali <= 80; lali++ {
		tab := HomologyThreshold(lali)
		cur := homologyCurve(lali)
		if math.Abs(tab-cur) > 1e-4 {
			t.Fatalf("threshold table entry for length %d is %v, but the "+
				"curve gives %v", lali, tab, cur)
		}
		if tab > prev {
			t.Fatalf("threshold for length %d (%v) exceeds the threshold "+
				"for length %d (%v)", lali, tab, lali-1, prev)
		}
		prev = tab
	}
}

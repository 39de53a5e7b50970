package xssp

import (
	"math"
	"testing"
)

func TestConservation(t *testing.T) {
	msa := makeAlignment(
		"q", "VLIM",
		"a/1-4", "VLIM",
		"b/1-4", "VAIM",
	)
	wm := NewWeightMatrix(msa)

	// Weights: (q,a) 0, (q,b) 0.25, (a,b) 0.25. Column 0 holds V in all
	// three rows, so every weighted pair scores the 1.5 maximum. Column 1
	// holds L, L, A; both nonzero pairs score Sim(L, A) = -0.1.
	type test struct {
		col    int
		answer float64
	}
	tests := []test{
		{0, 1.0},
		{1, -0.1 * 0.5 / (1.5 * 0.5)},
		{2, 1.0},
		{3, 1.0},
	}
	for _, test := range tests {
		if c := Conservation(msa, test.col, wm); math.Abs(c-test.answer) > 1e-12 {
			t.Fatalf("conservation of column %d should be %v, but is %v",
				test.col, test.answer, c)
		}
	}
}

func TestConservationDefaultsToOne(t *testing.T) {
	// With every pair at distance 0 there is no weighted pair to score.
	msa := makeAlignment(
		"q", "VV",
		"a/1-2", "VV",
	)
	wm := NewWeightMatrix(msa)
	for col := 0; col < 2; col++ {
		if c := Conservation(msa, col, wm); c != 1 {
			t.Fatalf("a column without scorable pairs should default to "+
				"conservation 1, but column %d scores %v", col, c)
		}
	}
}

package xssp

import (
	"reflect"
	"testing"
)

func TestClusterSequences(t *testing.T) {
	type test struct {
		seqs   []string
		answer []int
	}
	tests := []test{
		{
			[]string{"VLIM"},
			[]int{0},
		},
		{
			[]string{"VLIM", "GAPST"},
			[]int{0, 1},
		},
		// Identical chains collapse onto the first.
		{
			[]string{"VLIM", "VLIM"},
			[]int{0, 0},
		},
		// A chain contained in another collapses onto the longer one.
		{
			[]string{
				"VLIMFWYGAPSTVLIMFWYGAPSTVLIMFWYGAPSTVLIM",
				"FWYGAPSTVLIMFWYGAPST",
			},
			[]int{0, 0},
		},
		{
			[]string{
				"FWYGAPSTVLIMFWYGAPST",
				"VLIMFWYGAPSTVLIMFWYGAPSTVLIMFWYGAPSTVLIM",
			},
			[]int{1, 1},
		},
		// Transitive containment resolves to the single longest chain.
		{
			[]string{"GAPST", "YGAPSTV", "WYGAPSTVL"},
			[]int{2, 2, 2},
		},
		// An overlap with two loose ends is not containment.
		{
			[]string{"VLIMFWYGA", "FWYGAPSTC"},
			[]int{0, 1},
		},
	}
	for _, test := range tests {
		ix := ClusterSequences(test.seqs)
		if !reflect.DeepEqual(ix, test.answer) {
			t.Fatalf("clustering %v should yield %v, but returned %v",
				test.seqs, test.answer, ix)
		}
	}
}

func TestUniqueIndices(t *testing.T) {
	type test struct {
		ix     []int
		answer []int
	}
	tests := []test{
		{[]int{0, 1, 2}, []int{0, 1, 2}},
		{[]int{0, 0, 2}, []int{0, 2}},
		{[]int{2, 2, 2}, []int{2}},
		{[]int{1, 1, 3, 3}, []int{1, 3}},
	}
	for _, test := range tests {
		out := uniqueIndices(test.ix)
		if !reflect.DeepEqual(out, test.answer) {
			t.Fatalf("unique indices of %v should be %v, but returned %v",
				test.ix, test.answer, out)
		}
	}
}

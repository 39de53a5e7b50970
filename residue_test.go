package xssp

import (
	"math"
	"testing"
)

func TestNewResidueInfo(t *testing.T) {
	msa := makeAlignment(
		"q", "VLIM",
		"a/1-4", "VLIM",
		"b/1-4", "VAIM",
		"c/1-4", "VL-M",
	)
	var hits []*Hit
	for i := 1; i < len(msa); i++ {
		h, err := NewHit(msa, 'A', i, TrimProfile)
		if err != nil {
			t.Fatal(err)
		}
		hits = append(hits, h)
	}

	type test struct {
		pos     int
		letter  byte
		nocc    int
		ndel    int
		distIx  int
		dist    int
		entropy float64
	}
	tests := []test{
		// A fully conserved column has zero entropy.
		{0, 'V', 4, 0, 0, 100, 0},
		// Column 1 splits 3 L to 1 A.
		{1, 'L', 4, 0, 1, 75, -(0.75*math.Log(0.75) + 0.25*math.Log(0.25))},
		// Hit c is gapped at column 2.
		{2, 'I', 3, 1, 2, 100, 0},
		{3, 'M', 4, 0, 3, 100, 0},
	}
	for _, test := range tests {
		r := NewResidueInfo(msa, hits, test.pos, 'A', test.pos+1, test.pos+1,
			"", 1.0)
		if r.Letter != test.letter || r.Chain != 'A' {
			t.Fatalf("residue at column %d should be %c of chain A, but is "+
				"%c of chain %c", test.pos, test.letter, r.Letter, r.Chain)
		}
		if r.Nocc != test.nocc || r.Ndel != test.ndel {
			t.Fatalf("residue at column %d should have nocc %d and ndel %d, "+
				"but has %d and %d", test.pos, test.nocc, test.ndel,
				r.Nocc, r.Ndel)
		}
		if r.Dist[test.distIx] != test.dist {
			t.Fatalf("residue at column %d should show %d%% for profile "+
				"column %d, but shows %d%%", test.pos, test.dist,
				test.distIx, r.Dist[test.distIx])
		}
		if math.Abs(r.Entropy-test.entropy) > 1e-12 {
			t.Fatalf("residue at column %d should have entropy %v, but has "+
				"%v", test.pos, test.entropy, r.Entropy)
		}

		sum := 0
		for _, d := range r.Dist {
			sum += d
		}
		if sum < 99 || sum > 101 {
			t.Fatalf("profile percentages at column %d should sum to "+
				"roughly 100, but sum to %d", test.pos, sum)
		}
	}
}

func TestNewResidueInfoInsertions(t *testing.T) {
	msa := makeAlignment(
		"q", "VL-M",
		"a/1-4", "VLAM",
	)
	h, err := NewHit(msa, 'A', 1, TrimProfile)
	if err != nil {
		t.Fatal(err)
	}
	hits := []*Hit{h}

	// The lower-cased insertion anchor still counts towards occupancy,
	// and marks the residue the insertion follows.
	r := NewResidueInfo(msa, hits, 1, 'A', 2, 2, "", 1.0)
	if r.Nocc != 2 || r.Dist[1] != 100 {
		t.Fatalf("anchor column should have nocc 2 and 100%% L, but has "+
			"nocc %d and %d%%", r.Nocc, r.Dist[1])
	}
	if r.Nins != 1 {
		t.Fatalf("anchor column should count 1 insertion, but counts %d",
			r.Nins)
	}

	r = NewResidueInfo(msa, hits, 3, 'A', 3, 3, "", 1.0)
	if r.Nins != 0 || r.Ndel != 0 {
		t.Fatalf("closing column should count no insertions or deletions, "+
			"but counts %d and %d", r.Nins, r.Ndel)
	}
}

func TestChainBreak(t *testing.T) {
	r := NewChainBreak(5)
	if r.SeqNr != 5 || r.Letter != 0 || r.Nocc != 0 {
		t.Fatalf("chain break should carry only sequence number 5, but is "+
			"%+v", r)
	}
}

func TestIvarRelent(t *testing.T) {
	r := &ResidueInfo{ConsWeight: 0.25}
	if r.Ivar() != 75 {
		t.Fatalf("variability for weight 0.25 should be 75, but is %d",
			r.Ivar())
	}
	r = &ResidueInfo{ConsWeight: 1.0, Entropy: math.Log(20)}
	if r.Ivar() != 0 {
		t.Fatalf("variability for weight 1 should be 0, but is %d", r.Ivar())
	}
	if r.Relent() != 100 {
		t.Fatalf("relative entropy at the log(20) maximum should be 100, "+
			"but is %d", r.Relent())
	}
	r = &ResidueInfo{}
	if r.Relent() != 0 {
		t.Fatalf("relative entropy of a conserved column should be 0, but "+
			"is %d", r.Relent())
	}
}

package xssp

import (
	"math"

	"github.com/nyue/xssp/dayhoff"
)

// A ResidueInfo carries the per-residue profile reported in the HSSP
// alignments and profile sections: the amino-acid distribution in
// percentages, occupancy, deletion and insertion counts, Shannon entropy
// and the conservation weight of the residue's alignment column. A chain
// break is a sentinel ResidueInfo with Letter 0 that carries only its
// sequence number.
type ResidueInfo struct {
	Letter byte
	Chain  byte
	Dssp   string
	SeqNr  int
	PdbNr  int
	Pos    int

	Nocc, Ndel, Nins int
	Entropy          float64
	ConsWeight       float64
	Dist             [20]int
}

// NewChainBreak returns the sentinel row written between chains and at
// gaps in the residue numbering.
func NewChainBreak(seqNr int) *ResidueInfo {
	return &ResidueInfo{SeqNr: seqNr}
}

// NewResidueInfo builds the profile entry for the query residue at
// alignment column pos. Occupancy starts at 1 for the query residue
// itself; every hit whose working copy holds a canonical residue at the
// column (insertion anchors included, blanked columns outside a hit's
// aligned region excluded) adds to the occupancy and the distribution.
// Ndel counts hits gapped at the column; Nins counts hits with a
// lower-cased residue at the column when the query's next column is a
// gap.
func NewResidueInfo(msa Alignment, hits []*Hit, pos int, chain byte,
	seqNr, pdbNr int, dssp string, consWeight float64) *ResidueInfo {

	q := msa.Query().Residues
	r := &ResidueInfo{
		Letter:     byte(q[pos]),
		Chain:      chain,
		Dssp:       dssp,
		SeqNr:      seqNr,
		PdbNr:      pdbNr,
		Pos:        pos,
		Nocc:       1,
		ConsWeight: consWeight,
	}

	var counts [20]int
	if ix := dayhoff.Index(r.Letter); ix != -1 {
		counts[ix] = 1
	}
	for _, h := range hits {
		if ix := dayhoff.Index(byte(h.Aligned[pos])); ix != -1 {
			r.Nocc++
			counts[ix]++
		}
	}

	for a := 0; a < 20; a++ {
		freq := float64(counts[a]) / float64(r.Nocc)
		r.Dist[a] = int(100*freq + 0.5)
		if freq > 0 {
			r.Entropy -= freq * math.Log(freq)
		}
	}

	insFollows := pos+1 < len(q) && IsGap(q[pos+1])
	for _, h := range hits {
		t := h.Aligned[pos]
		if IsGap(t) {
			r.Ndel++
		}
		if insFollows && t >= 'a' && t <= 'y' {
			r.Nins++
		}
	}
	return r
}

// Ivar is the variability percentage shown in the alignments section, the
// complement of the conservation weight.
func (r *ResidueInfo) Ivar() int {
	return int(100*(1-r.ConsWeight) + 0.5)
}

// Relent is the relative entropy percentage: the column entropy scaled
// against the log(20) maximum.
func (r *ResidueInfo) Relent() int {
	return int(100*r.Entropy/math.Log(20) + 0.5)
}

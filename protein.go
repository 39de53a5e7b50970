package xssp

// A Residue is one position in a protein chain: the residue letter, its
// PDB residue number and the pre-rendered DSSP columns shown in the
// alignments section of the report.
type Residue struct {
	SeqNumber int
	Number    int
	Letter    byte
	DSSP      string
}

// A Chain is a lettered run of residues.
type Chain struct {
	ID       byte
	Residues []*Residue
}

// Sequence returns the chain's residue letters as a plain string.
func (c *Chain) Sequence() string {
	buf := make([]byte, len(c.Residues))
	for i, r := range c.Residues {
		buf[i] = r.Letter
	}
	return string(buf)
}

// A Protein is the query under analysis: one or more chains plus the
// PDB description records echoed into the report header. The record
// fields hold full PDB-style lines including their tag, the way they
// appear in a DSSP file.
type Protein struct {
	ID       string
	Header   string
	Compound string
	Source   string
	Author   string
	Chains   []*Chain
}

// NewProtein builds a protein from bare sequences, one chain per
// sequence, lettered 'A' onward and numbered from 1. The residues get
// synthetic DSSP columns since no structure is available.
func NewProtein(id string, seqs ...string) *Protein {
	p := &Protein{ID: id}
	for i, s := range seqs {
		chainID := byte('A' + i)
		chain := &Chain{ID: chainID}
		for j := 0; j < len(s); j++ {
			chain.Residues = append(chain.Residues, &Residue{
				SeqNumber: j + 1,
				Number:    j + 1,
				Letter:    s[j],
				DSSP:      SyntheticFragment(j+1, chainID, s[j]),
			})
		}
		p.Chains = append(p.Chains, chain)
	}
	return p
}

// Chain returns the chain with the given id, or nil when the protein
// has no such chain.
func (p *Protein) Chain(id byte) *Chain {
	for _, c := range p.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Description renders the HEADER, COMPND, SOURCE and AUTHOR lines of
// the report header from the protein's PDB records, stripping the
// record tags. It is empty when the protein carries no records at all,
// as with proteins built from bare sequences.
func (p *Protein) Description() string {
	if p.Header == "" && p.Compound == "" && p.Source == "" && p.Author == "" {
		return ""
	}
	return "HEADER     " + recordText(p.Header, 40) + "\n" +
		"COMPND     " + recordText(p.Compound, 0) + "\n" +
		"SOURCE     " + recordText(p.Source, 0) + "\n" +
		"AUTHOR     " + recordText(p.Author, 0) + "\n"
}

// recordText drops the 10-column record tag and optionally caps the
// remainder.
func recordText(s string, max int) string {
	if len(s) <= 10 {
		return ""
	}
	s = s[10:]
	if max > 0 && len(s) > max {
		s = s[:max]
	}
	return s
}

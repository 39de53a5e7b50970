package xssp

import (
	"strings"

	"github.com/TuftsBCB/seq"
)

// IsGap returns whether a residue character is one of the gap symbols used
// in Stockholm alignments.
func IsGap(r seq.Residue) bool {
	return r == '-' || r == '~' || r == '.' || r == '_'
}

// An Entry is one named row of a multiple sequence alignment. The parser
// accumulates Identical and AlignedLength while reading: the number of
// columns in which the row matches the query residue, and the number of
// columns in which at least one of the two holds a residue.
type Entry struct {
	seq.Sequence

	Identical     int
	AlignedLength int
}

func newEntry(id string) *Entry {
	return &Entry{Sequence: seq.Sequence{Name: id}}
}

// appendResidues adds one Stockholm block of residue text to the entry.
func (e *Entry) appendResidues(block string) {
	for i := 0; i < len(block); i++ {
		e.Residues = append(e.Residues, seq.Residue(block[i]))
	}
}

// An Alignment is an ordered multiple sequence alignment; all rows have
// equal length and row 0 is the query. Rows are never modified after
// parsing; hit construction works on per-hit copies.
type Alignment []*Entry

// Query returns row 0.
func (msa Alignment) Query() *Entry {
	return msa[0]
}

// Columns returns the width of the alignment.
func (msa Alignment) Columns() int {
	if len(msa) == 0 {
		return 0
	}
	return len(msa[0].Residues)
}

// degap returns the residue text of a row with all gap symbols removed.
func degap(rs []seq.Residue) string {
	s := new(strings.Builder)
	s.Grow(len(rs))
	for _, r := range rs {
		if !IsGap(r) {
			s.WriteByte(byte(r))
		}
	}
	return s.String()
}

// countResidues returns the number of non-gap characters in rs.
func countResidues(rs []seq.Residue) int {
	n := 0
	for _, r := range rs {
		if !IsGap(r) {
			n++
		}
	}
	return n
}

// Package dayhoff provides the Dayhoff similarity table used by maxhom to
// score conservation of aligned amino-acid pairs, along with the residue
// ordering shared by HSSP profile columns.
package dayhoff

// Alphabet lists the twenty canonical amino acids in the column order used
// by both the similarity table and the HSSP sequence profile.
const Alphabet = "VLIMFWYGAPSTCHRKQEND"

// Matrix is the symmetric Dayhoff similarity lookup, indexed by a pair of
// Alphabet indices. The diagonal is 1.5, the maximum similarity.
var Matrix [20][20]float64

// matrixData is the lower triangle of the similarity table, row by row.
var matrixData = [...]float64{
	1.5,
	0.8, 1.5,
	1.1, 0.8, 1.5,
	0.6, 1.3, 0.6, 1.5,
	0.2, 1.2, 0.7, 0.5, 1.5,
	-0.8, 0.5, -0.5, -0.3, 1.3, 1.5,
	-0.1, 0.3, 0.1, -0.1, 1.4, 1.1, 1.5,
	0.2, -0.5, -0.3, -0.3, -0.6, -1.0, -0.7, 1.5,
	0.2, -0.1, 0.0, 0.0, -0.5, -0.8, -0.3, 0.7, 1.5,
	0.1, -0.3, -0.2, -0.2, -0.7, -0.8, -0.8, 0.3, 0.5, 1.5,
	-0.1, -0.4, -0.1, -0.3, -0.3, 0.3, -0.4, 0.6, 0.4, 0.4, 1.5,
	0.2, -0.1, 0.2, 0.0, -0.3, -0.6, -0.3, 0.4, 0.4, 0.3, 0.3, 1.5,
	0.2, -0.8, 0.2, -0.6, -0.1, -1.2, 1.0, 0.2, 0.3, 0.1, 0.7, 0.2, 1.5,
	-0.3, -0.2, -0.3, -0.3, -0.1, -0.1, 0.3, -0.2, -0.1, 0.2, -0.2, -0.1,
	-0.1, 1.5,
	-0.3, -0.4, -0.3, 0.2, -0.5, 1.4, -0.6, -0.3, -0.3, 0.3, 0.1, -0.1,
	-0.3, 0.5, 1.5,
	-0.2, -0.3, -0.2, 0.2, -0.7, 0.1, -0.6, -0.1, 0.0, 0.1, 0.2, 0.2,
	-0.6, 0.1, 0.8, 1.5,
	-0.2, -0.1, -0.3, 0.0, -0.8, -0.5, -0.6, 0.2, 0.2, 0.3, -0.1, -0.1,
	-0.6, 0.7, 0.4, 0.4, 1.5,
	-0.2, -0.3, -0.2, -0.2, -0.7, -1.1, -0.5, 0.5, 0.3, 0.1, 0.2, 0.2,
	-0.6, 0.4, 0.0, 0.3, 0.7, 1.5,
	-0.3, -0.4, -0.3, -0.3, -0.5, -0.3, -0.1, 0.4, 0.2, 0.0, 0.3, 0.2,
	-0.3, 0.5, 0.1, 0.4, 0.4, 0.5, 1.5,
	-0.2, -0.5, -0.2, -0.4, -1.0, -1.1, -0.5, 0.7, 0.3, 0.1, 0.2, 0.2,
	-0.5, 0.4, 0.0, 0.3, 0.7, 1.0, 0.7, 1.5,
}

var index [256]int

// Initialize the full symmetric matrix from its lower triangle, and the
// ASCII residue translation table. Both cases of each residue letter map to
// the same index, since insertion anchors are lower cased in alignments.
func init() {
	k := 0
	for i := 0; i < 20; i++ {
		for j := 0; j <= i; j++ {
			Matrix[i][j] = matrixData[k]
			Matrix[j][i] = matrixData[k]
			k++
		}
	}

	for i := range index {
		index[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		index[Alphabet[i]] = i
		index[Alphabet[i]|0x20] = i
	}
}

// Index translates an ASCII residue character to its Alphabet index, or -1
// when the character is not one of the twenty canonical amino acids.
func Index(b byte) int {
	return index[b]
}

// Sim returns the similarity of two residue characters, or 0 when either
// does not translate to a canonical amino acid.
func Sim(a, b byte) float64 {
	ai, bi := index[a], index[b]
	if ai == -1 || bi == -1 {
		return 0
	}
	return Matrix[ai][bi]
}

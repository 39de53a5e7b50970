package xssp

// A WeightMatrix holds the pairwise distance weight for every unordered
// pair of alignment rows, the query included. The weight of a pair is
// 1 - d/L, with L the number of columns where the query holds a residue
// and d the number of those columns where both rows hold the same non-gap
// residue. The diagonal is unused.
//
// The matrix is backed by a packed lower triangle of float32, which
// keeps the footprint workable for alignments of thousands of rows.
type WeightMatrix struct {
	n int
	w []float32
}

// NewWeightMatrix computes the weights for all row pairs of an alignment.
func NewWeightMatrix(msa Alignment) *WeightMatrix {
	n := len(msa)
	wm := &WeightMatrix{n: n, w: make([]float32, n*(n-1)/2)}
	for i := 0; i+1 < n; i++ {
		for j := i + 1; j < n; j++ {
			wm.w[wm.at(i, j)] = pairWeight(msa, i, j)
		}
	}
	return wm
}

func (wm *WeightMatrix) at(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return j*(j-1)/2 + i
}

// Weight returns the weight of the unordered pair (i, j).
func (wm *WeightMatrix) Weight(i, j int) float32 {
	return wm.w[wm.at(i, j)]
}

// Len returns the number of rows the matrix was built for.
func (wm *WeightMatrix) Len() int {
	return wm.n
}

func pairWeight(msa Alignment, i, j int) float32 {
	sq := msa.Query().Residues
	si := msa[i].Residues
	sj := msa[j].Residues

	var L, d int
	for k := 0; k < len(sq); k++ {
		if IsGap(sq[k]) {
			continue
		}
		L++
		if si[k] == sj[k] && !IsGap(si[k]) {
			d++
		}
	}
	if L == 0 {
		return 0
	}
	return 1 - float32(d)/float32(L)
}

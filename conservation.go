package xssp

import "github.com/nyue/xssp/dayhoff"

// Conservation scores one alignment column: the Dayhoff similarity of
// every canonical residue pair in the column, weighted by the pair's
// distance weight and normalized against the weighted maximum similarity
// of 1.5. Columns without any scorable pair default to 1.
func Conservation(msa Alignment, col int, wm *WeightMatrix) float64 {
	var weight, conservation float64

	for i := 0; i+1 < len(msa); i++ {
		ri := dayhoff.Index(byte(msa[i].Residues[col]))
		if ri == -1 {
			continue
		}
		for j := i + 1; j < len(msa); j++ {
			rj := dayhoff.Index(byte(msa[j].Residues[col]))
			if rj == -1 {
				continue
			}
			w := float64(wm.Weight(i, j))
			conservation += w * dayhoff.Matrix[ri][rj]
			weight += w * 1.5
		}
	}

	if weight == 0 {
		return 1
	}
	return conservation / weight
}

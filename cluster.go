package xssp

import "strings"

// ClusterSequences collapses chain sequences that are fully contained in
// another chain's sequence. The returned index map has one element per
// input sequence; a redundant chain's entry points at the index of its
// representative, all others point at themselves. Overlaps with two
// loose ends are left alone.
func ClusterSequences(seqs []string) []int {
	s := make([]string, len(seqs))
	copy(s, seqs)

	ix := make([]int, len(s))
	for i := range ix {
		ix[i] = i
	}

	for {
		found := false
		for i := 0; !found && i < len(s)-1; i++ {
			for j := i + 1; !found && j < len(s); j++ {
				a, b := s[i], s[j]
				if a == "" || b == "" {
					continue
				}

				if strings.Contains(a, b) {
					s[j] = ""
					ix[j] = i
					found = true
				} else if strings.Contains(b, a) {
					s[i] = ""
					ix[i] = j
					found = true
				}
			}
		}
		if !found {
			break
		}
	}

	// A merged entry can itself merge into a later one, leaving stale
	// indices behind. Follow each chain to its surviving representative.
	for i := range ix {
		r := ix[i]
		for ix[r] != r {
			r = ix[r]
		}
		ix[i] = r
	}
	return ix
}

// uniqueIndices reduces a cluster index map to the distinct representative
// indices, in first-seen order.
func uniqueIndices(ix []int) []int {
	seen := make(map[int]bool, len(ix))
	var out []int
	for _, v := range ix {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

package xssp

import "fmt"

// DSSPFragment slices the per-residue columns shown in the HSSP
// alignments section out of a full DSSP data line: PDB number, chain,
// amino acid, secondary structure summary, bridge partners, sheet label
// and accessibility.
func DSSPFragment(line string) string {
	for len(line) < 39 {
		line += " "
	}
	return line[5:39]
}

// SyntheticFragment renders the same 34 columns for a residue without a
// DSSP record, as in sequence-only runs: blank structure, zero bridge
// partners, zero accessibility.
func SyntheticFragment(pdbNr int, chain, aa byte) string {
	return fmt.Sprintf("%5d %c %c           %4d%4d %4d ", pdbNr, chain, aa, 0, 0, 0)
}

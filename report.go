package xssp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// A Report bundles everything WriteHSSP needs to serialize an HSSP
// file: the query identity, databank provenance, the ranked hits and
// the per-residue profiles.
type Report struct {
	ID          string
	Description string
	DBVersion   string
	SeqLength   int
	NChain      int
	KChain      int
	UsedChains  string
	Hits        []*Hit
	Residues    []*ResidueInfo

	// Date overrides the generation date stamped into the header.
	// The zero value means today.
	Date time.Time
}

type reportWriter struct {
	bw  *bufio.Writer
	err error
}

func (w *reportWriter) printf(format string, args ...interface{}) {
	if w.err == nil {
		_, w.err = fmt.Fprintf(w.bw, format, args...)
	}
}

// WriteHSSP serializes the report in the HSSP version 2.0d2 layout:
// the fixed header, the PROTEINS table, the ALIGNMENTS blocks, the
// profile table and the insertion list, ending with the '//'
// terminator. All field widths are fixed and numeric fields are zero
// padded.
func WriteHSSP(w io.Writer, rep *Report) error {
	date := rep.Date
	if date.IsZero() {
		date = time.Now()
	}

	out := &reportWriter{bw: bufio.NewWriter(w)}

	out.printf("HSSP       HOMOLOGY DERIVED SECONDARY STRUCTURE OF PROTEINS , VERSION 2.0d2 2011\n")
	out.printf("PDBID      %s\n", rep.ID)
	out.printf("DATE       file generated on %s\n", date.Format("2006-01-02"))
	out.printf("SEQBASE    %s\n", rep.DBVersion)
	out.printf("THRESHOLD  according to: t(L)=(290.15 * L ** -0.562) + 5\n")
	out.printf("CONTACT    This version: Maarten L. Hekkelman <m.hekkelman@cmbi.ru.nl>\n")
	out.printf("%s", rep.Description)
	out.printf("SEQLENGTH  %04d\n", rep.SeqLength)
	out.printf("NCHAIN     %04d chain(s) in %s data set\n", rep.NChain, rep.ID)
	if rep.KChain != rep.NChain {
		out.printf("KCHAIN     %04d chain(s) used here ; chains(s) : %s\n",
			rep.KChain, rep.UsedChains)
	}
	out.printf("NALIGN     %04d\n", len(rep.Hits))
	out.printf("\n")

	writeProteins(out, rep.Hits)
	writeAlignments(out, rep.Hits, rep.Residues)
	writeProfile(out, rep.Residues)
	writeInsertions(out, rep.Hits)
	out.printf("//\n")

	if out.err != nil {
		return out.err
	}
	return out.bw.Flush()
}

func writeProteins(out *reportWriter, hits []*Hit) {
	out.printf("## PROTEINS : identifier and alignment statistics\n")
	out.printf("  NR.    ID         STRID   %%IDE %%WSIM IFIR ILAS JFIR JLAS LALI NGAP LGAP LSEQ2 ACCNUM     PROTEIN\n")

	for _, h := range hits {
		out.printf("%05d : %s%4.4s    %4.2f  %4.2f %04d %04d %04d %04d %04d %04d %04d %04d  %s %s\n",
			h.Nr, pad(h.ID, 12), h.PDB,
			h.Ide, h.Wsim,
			h.Ifir, h.Ilas, h.Jfir, h.Jlas,
			h.Lali, h.Ngap, h.Lgap, h.Lseq2,
			pad(h.Acc, 10), h.Desc)
	}
}

func writeAlignments(out *reportWriter, hits []*Hit, res []*ResidueInfo) {
	for i := 0; i < len(hits); i += 70 {
		n := i + 70
		if n > len(hits) {
			n = len(hits)
		}

		var ruler [7]int
		for j := range ruler {
			ruler[j] = ((i+10*j)/10)%10 + 1
		}

		out.printf("## ALIGNMENTS %04d - %04d\n", i+1, n)
		out.printf(" SeqNo  PDBNo AA STRUCTURE BP1 BP2  ACC NOCC  VAR  ....:....%d....:....%d....:....%d....:....%d....:....%d....:....%d....:....%d\n",
			ruler[0], ruler[1], ruler[2], ruler[3], ruler[4], ruler[5], ruler[6])

		for _, ri := range res {
			if ri.Letter == 0 {
				out.printf(" %05d        !  !           0   0    0    0    0\n", ri.SeqNr)
				continue
			}

			aln := make([]byte, 0, n-i)
			for j := i; j < n; j++ {
				if hits[j].Chain == ri.Chain {
					aln = append(aln, byte(hits[j].Aligned[ri.Pos]))
				} else {
					aln = append(aln, ' ')
				}
			}
			out.printf(" %05d%s%04d %04d  %s\n", ri.SeqNr, ri.Dssp, ri.Nocc, ri.Ivar(), aln)
		}
	}
}

func writeProfile(out *reportWriter, res []*ResidueInfo) {
	out.printf("## SEQUENCE PROFILE AND ENTROPY\n")
	out.printf(" SeqNo PDBNo   V   L   I   M   F   W   Y   G   A   P   S   T   C   H   R   K   Q   E   N   D  NOCC NDEL NINS ENTROPY RELENT WEIGHT\n")

	for _, r := range res {
		if r.Letter == 0 {
			out.printf("%05d          0   0   0   0   0   0   0   0   0   0   0   0   0   0   0   0   0   0   0   0     0    0    0   0.000      0\n", r.SeqNr)
			continue
		}

		out.printf(" %04d %04d %c", r.SeqNr, r.PdbNr, r.Chain)
		for i := 0; i < 20; i++ {
			out.printf("%04d", r.Dist[i])
		}
		out.printf("  %04d %04d %04d   %5.3f   %04d  %4.2f\n",
			r.Nocc, r.Ndel, r.Nins, r.Entropy, r.Relent(), r.ConsWeight)
	}
}

func writeInsertions(out *reportWriter, hits []*Hit) {
	out.printf("## INSERTION LIST\n")
	out.printf(" AliNo  IPOS  JPOS   Len Sequence\n")

	for _, h := range hits {
		for _, ins := range h.Insertions {
			s := ins.Seq
			out.printf("  %04d  %04d  %04d  %04d ", h.Nr, ins.QueryPos, ins.HitPos, len(ins.Seq)-2)
			if len(s) <= 100 {
				out.printf("%s\n", s)
				continue
			}
			out.printf("%s\n", s[:100])
			s = s[100:]
			for len(s) > 0 {
				n := len(s)
				if n > 100 {
					n = 100
				}
				out.printf("     +                   %s\n", s[:n])
				s = s[n:]
			}
		}
	}
}

// pad sizes s to exactly n characters, truncating or right padding
// with spaces.
func pad(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s + strings.Repeat(" ", n-len(s))
}

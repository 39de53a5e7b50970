package xssp

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/BurntSushi/cablastp/blosum"
	"github.com/TuftsBCB/seq"
)

// A TrimPolicy selects how a hit row is trimmed against the query before
// the column scan runs.
type TrimPolicy int

const (
	// TrimProfile fits iterative profile search output (jackhmmer): the
	// query row carries no end gaps, hit identifiers carry a
	// "<id>/<start>-<end>" position suffix, and only pure gap columns are
	// stripped from the ends of the hit row.
	TrimProfile TrimPolicy = iota

	// TrimScore fits aligners that may place arbitrary end gaps or
	// low-scoring end columns: columns are stripped from both ends while
	// they hold a gap on either side or score non-positive in BLOSUM62.
	TrimScore
)

// The maximum number of hits reported in one HSSP file.
const maxHits = 9999

// Hit identifiers in profile search output name the aligned region of the
// hit sequence, e.g. "UniRef100_P00698/19-147".
var hitPosition = regexp.MustCompile(`^([-a-zA-Z0-9_]+)/(\d+)-(\d+)$`)

// blosumIndex translates ASCII residue characters to BLOSUM62 matrix
// indices; characters outside the matrix alphabet map to -1.
var blosumIndex [256]int

func init() {
	for i := range blosumIndex {
		blosumIndex[i] = -1
	}
	for i := 0; i < len(blosum.Alphabet62); i++ {
		blosumIndex[blosum.Alphabet62[i]] = i
	}
}

func blosumScore(a, b seq.Residue) int {
	ai, bi := blosumIndex[a], blosumIndex[b]
	if ai == -1 || bi == -1 {
		return 0
	}
	return blosum.Matrix62[ai][bi]
}

func lowerResidue(r seq.Residue) seq.Residue {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}

// An Insertion is a run of hit residues aligned against query gaps. Seq
// includes a lower-cased anchor residue on each side of the run. QueryPos
// is the query position directly after the opening anchor; HitPos is the
// opening anchor's position in the hit sequence.
type Insertion struct {
	QueryPos, HitPos int
	Seq              string
}

// A Hit is one homologous sequence aligned against the query, carrying the
// statistics reported in the HSSP PROTEINS table. Ifir/Ilas and Jfir/Jlas
// are the 1-based boundaries of the aligned region in the query and the
// hit sequence. Lali counts aligned residue pairs; Ngap counts gap runs
// and Lgap gapped columns inside the aligned region; Lseq2 is the full
// length of the hit sequence.
//
// Aligned is the hit's working copy of its alignment row: columns outside
// the aligned region are blanked and insertion anchors are lower cased.
// The stored alignment itself is never touched.
type Hit struct {
	Chain byte
	Nr    int
	Ix    int

	ID, Acc, Desc, PDB string

	Ifir, Ilas, Jfir, Jlas  int
	Lali, Ngap, Lgap, Lseq2 int
	Identical, Similar      int
	Ide, Wsim               float64

	Insertions []Insertion
	Aligned    []seq.Residue
}

// NewHit builds the Hit for the alignment row at index six against the
// query row, trimmed according to policy. It returns an AlignmentError
// when either row is empty, the rows differ in length, or the query row
// begins or ends with a gap, and a FormatError when the profile policy
// finds no position suffix on the hit identifier.
//
// A hit whose trimmed region holds no aligned residue pair gets Ide and
// Wsim of zero; the significance filter excludes it.
func NewHit(msa Alignment, chain byte, six int, policy TrimPolicy) (*Hit, error) {
	q := msa.Query().Residues
	s := msa[six].Residues

	if len(q) == 0 || len(s) == 0 {
		return nil, AlignmentError("invalid (empty) sequence in alignment")
	}
	if len(q) != len(s) {
		return nil, alignErrf(
			"alignment row '%s' differs in length from the query",
			msa[six].Name)
	}
	if IsGap(q[0]) || IsGap(q[len(q)-1]) {
		return nil, AlignmentError(
			"leading (or trailing) gaps found in query sequence")
	}

	h := &Hit{
		Chain:   chain,
		Ix:      six,
		ID:      msa[six].Name,
		Aligned: make([]seq.Residue, len(s)),
	}
	copy(h.Aligned, s)

	// Trim the ends, blanking trimmed columns in the working copy. The
	// scan below runs over the remaining window [b, e).
	b, e := 0, len(s)
	switch policy {
	case TrimProfile:
		m := hitPosition.FindStringSubmatch(msa[six].Name)
		if m == nil {
			return nil, formatErrf(
				"alignment ID '%s' should contain a position", msa[six].Name)
		}
		h.ID = m[1]
		h.Jfir, _ = strconv.Atoi(m[2])
		h.Jlas, _ = strconv.Atoi(m[3])

		for b < e && IsGap(s[b]) {
			h.Aligned[b] = ' '
			b++
		}
		for e > b && IsGap(s[e-1]) {
			e--
			h.Aligned[e] = ' '
		}
	case TrimScore:
		for b < e {
			if IsGap(q[b]) || IsGap(s[b]) || blosumScore(q[b], s[b]) <= 0 {
				h.Aligned[b] = ' '
				b++
				continue
			}
			break
		}
		for e > b {
			if IsGap(q[e-1]) || IsGap(s[e-1]) || blosumScore(q[e-1], s[e-1]) <= 0 {
				e--
				h.Aligned[e] = ' '
				continue
			}
			break
		}
		h.Jfir = countResidues(s[:b]) + 1
		h.Jlas = countResidues(s[:e])
		h.Lseq2 = countResidues(s)
	}

	h.Ifir = countResidues(q[:b]) + 1
	h.Ilas = h.Ifir - 1

	ipos, jpos := h.Ifir, h.Jfir
	sgap, qgap := false, false
	var ins Insertion

	for i := b; i < e; i++ {
		qr, sr := q[i], s[i]
		switch {
		case IsGap(qr) && IsGap(sr):
			// A common gap separates nothing; gap runs continue across it.

		case IsGap(sr):
			if !sgap && !qgap {
				h.Ngap++
			}
			sgap = true
			h.Ilas++
			h.Lgap++
			ipos++

		case IsGap(qr):
			if !qgap {
				if !sgap && !qgap {
					h.Ngap++
				}
				ins = Insertion{QueryPos: ipos, HitPos: jpos - 1}
				if a := lastResidueBefore(s, b, i); a >= b {
					h.Aligned[a] = lowerResidue(h.Aligned[a])
					ins.Seq = string(byte(lowerResidue(s[a])))
				}
			}
			ins.Seq += string(byte(sr))
			qgap = true
			h.Lgap++
			jpos++

		default:
			if qgap {
				h.Aligned[i] = lowerResidue(sr)
				ins.Seq += string(byte(lowerResidue(sr)))
				h.Insertions = append(h.Insertions, ins)
			}
			sgap, qgap = false, false

			if qr == sr {
				h.Identical++
				h.Similar++
			} else if blosumScore(qr, sr) > 0 {
				h.Similar++
			}
			h.Lali++
			h.Ilas++
			ipos++
			jpos++
		}
	}

	if h.Lali > 0 {
		h.Ide = float64(h.Identical) / float64(h.Lali)
		h.Wsim = float64(h.Similar) / float64(h.Lali)
	}
	return h, nil
}

// lastResidueBefore returns the index of the last non-gap column of s in
// [b, i), or b-1 when there is none.
func lastResidueBefore(s []seq.Residue, b, i int) int {
	a := i - 1
	for a >= b && IsGap(s[a]) {
		a--
	}
	return a
}

// Significant reports whether the hit's identity clears the homology
// threshold for its aligned length.
func (h *Hit) Significant() bool {
	return h.Ide > HomologyThreshold(h.Lali)
}

// RankHits sorts hits by descending identity with longer alignments first
// on ties, truncates the list to the 9999 reported in an HSSP file, and
// assigns the rank numbers. The sort is stable, so hits that compare equal
// keep their chain processing order.
func RankHits(hits []*Hit) []*Hit {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Ide != hits[j].Ide {
			return hits[i].Ide > hits[j].Ide
		}
		return hits[i].Lali > hits[j].Lali
	})
	if len(hits) > maxHits {
		hits = hits[:maxHits]
	}
	for i, h := range hits {
		h.Nr = i + 1
	}
	return hits
}

package xssp

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/TuftsBCB/seq"
)

// Query identifiers written by iterative searches carry an iteration
// marker, e.g. "lysozyme-i3".
var iterationSuffix = regexp.MustCompile(`^(.+)-i\d+$`)

// ReadStockholm reads a Stockholm formatted multiple sequence alignment,
// as produced by jackhmmer with the query as the first sequence. The
// first line must be the "# STOCKHOLM 1.0" marker and the second a
// "#=GF ID" record naming the query. "#=GS" records register hit
// identifiers; data lines append residue blocks to their entry.
//
// While reading, every hit accumulates its identity and aligned-length
// counters against the query block of the same alignment block. Hits whose
// overall identity ratio falls below the homology threshold for their
// aligned length are dropped before the alignment is returned.
func ReadStockholm(r io.Reader) (Alignment, error) {
	scanner := bufio.NewScanner(r)
	// Rows of wide alignments exceed the default token size.
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<24)

	if !scanner.Scan() || scanner.Text() != "# STOCKHOLM 1.0" {
		return nil, FormatError("not a Stockholm file")
	}
	if !scanner.Scan() || !strings.HasPrefix(scanner.Text(), "#=GF ID ") {
		return nil, FormatError(
			"not a valid Stockholm file, missing #=GF ID line")
	}

	id := scanner.Text()[8:]
	if m := iterationSuffix.FindStringSubmatch(id); m != nil {
		id = m[1]
	}

	msa := Alignment{newEntry(id)}
	ix := 0
	var qblock string

	for scanner.Scan() {
		line := scanner.Text()

		if len(line) == 0 {
			continue
		}
		if line == "//" {
			break
		}
		if strings.HasPrefix(line, "#=GS ") {
			id := line[5:]
			if s := strings.Index(id, "DE "); s >= 0 {
				id = id[:s]
			}
			id = strings.TrimSpace(id)
			if len(msa) > 1 || msa[0].Name != id {
				msa = append(msa, newEntry(id))
			}
			continue
		}
		if line[0] == '#' {
			continue
		}

		s := strings.IndexByte(line, ' ')
		if s < 0 {
			return nil, formatErrf(
				"invalid Stockholm file: cannot split line '%s'", line)
		}
		id := line[:s]
		block := strings.TrimLeft(line[s:], " ")

		if id == msa[0].Name {
			ix = 0
			msa[0].appendResidues(block)
			qblock = block
			continue
		}

		ix++
		if ix >= len(msa) {
			msa = append(msa, newEntry(id))
		}
		if msa[ix].Name != id {
			return nil, formatErrf(
				"invalid Stockholm file: expected sequence '%s', got '%s'",
				msa[ix].Name, id)
		}
		if len(block) != len(qblock) {
			return nil, formatErrf(
				"invalid Stockholm file: block width of '%s' differs "+
					"from the query block", id)
		}

		e := msa[ix]
		e.appendResidues(block)
		for k := 0; k < len(block); k++ {
			q, h := seq.Residue(qblock[k]), seq.Residue(block[k])
			if !IsGap(q) && q == h {
				e.Identical++
			}
			if !IsGap(q) || !IsGap(h) {
				e.AlignedLength++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(msa) < 2 {
		return nil, FormatError("insufficient sequences in Stockholm MSA")
	}

	kept := msa[:1]
	for _, e := range msa[1:] {
		if e.AlignedLength == 0 {
			continue
		}
		score := float64(e.Identical) / float64(e.AlignedLength)
		if score < HomologyThreshold(e.AlignedLength) {
			Vprintf("dropping %s because identity %.4f is below threshold\n",
				e.Name, score)
			continue
		}
		kept = append(kept, e)
	}
	return kept, nil
}

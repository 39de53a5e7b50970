package xssp

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// An Aligner produces a multiple sequence alignment for a query
// sequence, query row first. Implementations typically run an external
// search tool such as jackhmmer; run timeouts are owned by the
// implementation.
type Aligner interface {
	Align(query string) (Alignment, error)
}

// BuildHits converts one chain's alignment into hits annotated from
// the databank and appends the chain's residue profiles to res. Hits
// whose identity is not above the homology threshold for their
// alignment length are dropped. Residue sequence numbers continue from
// the end of res; a chain break sentinel is inserted wherever the
// chain's residue numbering jumps.
func BuildHits(db Databank, msa Alignment, chain *Chain, policy TrimPolicy,
	res []*ResidueInfo) ([]*Hit, []*ResidueInfo, error) {

	var hits []*Hit
	for i := 1; i < len(msa); i++ {
		h, err := NewHit(msa, chain.ID, i, policy)
		if err != nil {
			return nil, nil, err
		}
		if !h.Significant() {
			Vprintf("dropping %s because identity %.3f is not above threshold %.3f\n",
				h.ID, h.Ide, HomologyThreshold(h.Lali))
			continue
		}

		if e, err := db.Lookup(h.ID); err == nil {
			h.Desc = e.Title
			h.Acc = e.Accession
			if e.Length > 0 {
				h.Lseq2 = e.Length
			}
		}
		if strings.HasPrefix(h.ID, "UniRef100_") {
			h.ID = strings.TrimPrefix(h.ID, "UniRef100_")
			h.Acc = h.ID
		}

		hits = append(hits, h)
	}

	Vprintf("Continuing with %d hits\n", len(hits))
	Vprintln("Calculating weights...")
	wm := NewWeightMatrix(msa)

	Vprintln("Calculating residue info...")
	q := msa.Query().Residues
	ri := 0
	for i := 0; i < len(q); i++ {
		if IsGap(q[i]) {
			continue
		}
		if ri >= len(chain.Residues) {
			return nil, nil, alignErrf(
				"alignment query has more residues than chain %c", chain.ID)
		}

		r := chain.Residues[ri]
		if ri > 0 && r.Number > chain.Residues[ri-1].Number+1 {
			res = append(res, NewChainBreak(len(res)+1))
		}
		res = append(res, NewResidueInfo(msa, hits, i, chain.ID,
			len(res)+1, r.Number, r.DSSP, Conservation(msa, i, wm)))
		ri++
	}
	if ri != len(chain.Residues) {
		return nil, nil, alignErrf(
			"alignment query has fewer residues than chain %c", chain.ID)
	}

	return hits, res, nil
}

// CheckAlignmentForChain trims an alignment whose query covers more
// than the chain, which happens when the Stockholm file was made from
// a query a few residues longer than the chain. When the degapped
// query is a superstring of the chain sequence, the columns holding
// the extra leading and trailing query residues are cut from every
// row.
func CheckAlignmentForChain(msa Alignment, chain *Chain) error {
	q := msa.Query().Residues
	sa := degap(q)
	sc := chain.Sequence()

	if sa == sc {
		return nil
	}
	if len(sa) < len(sc) {
		return alignErrf("Stockholm query is too short for chain %c", chain.ID)
	}
	offset := strings.Index(sa, sc)
	if offset < 0 {
		return alignErrf("chain %c does not occur in the Stockholm query", chain.ID)
	}

	begin, end := 0, len(q)
	count := 0
	for i := 0; i < len(q); i++ {
		if IsGap(q[i]) {
			continue
		}
		if count == offset {
			begin = i
		}
		count++
		if count == offset+len(sc) {
			end = i + 1
			break
		}
	}

	for _, e := range msa {
		e.Residues = e.Residues[begin:end]
	}
	return nil
}

// BuildReport runs the aligner for a protein's chains and assembles the
// full report: hits annotated from the databank, ranked globally, and
// the per-residue profiles in chain order. Chains shorter than
// minSeqLength are skipped (no minimum when <= 0), chains whose
// sequence is contained in another's collapse to one representative,
// and the aligner runs once per representative, concurrently.
func BuildReport(db Databank, prot *Protein, al Aligner,
	minSeqLength int) (*Report, error) {

	var (
		chains []*Chain
		seqs   []string
	)
	for _, c := range prot.Chains {
		s := c.Sequence()
		if len(s) < minSeqLength {
			continue
		}
		chains = append(chains, c)
		seqs = append(seqs, s)
	}
	if len(chains) == 0 {
		return nil, alignErrf("no chain of '%s' is at least %d residues long",
			prot.ID, minSeqLength)
	}

	reps := uniqueIndices(ClusterSequences(seqs))

	alignments := make([]Alignment, len(chains))
	errs := make([]error, len(chains))
	var wg sync.WaitGroup
	for _, i := range reps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			alignments[i], errs[i] = al.Align(seqs[i])
		}(i)
	}
	wg.Wait()
	for _, i := range reps {
		if errs[i] != nil {
			return nil, errs[i]
		}
	}

	var (
		hits      []*Hit
		res       []*ResidueInfo
		seqLength int
		used      []string
	)
	for _, i := range reps {
		if len(res) > 0 {
			res = append(res, NewChainBreak(len(res)+1))
		}
		seqLength += len(seqs[i])

		chainHits, chainRes, err := BuildHits(db, alignments[i], chains[i], TrimProfile, res)
		if err != nil {
			return nil, err
		}
		hits = append(hits, chainHits...)
		res = chainRes
		used = append(used, string(chains[i].ID))
	}

	return &Report{
		ID:          prot.ID,
		Description: prot.Description(),
		DBVersion:   db.Version(),
		SeqLength:   seqLength,
		NChain:      len(chains),
		KChain:      len(reps),
		UsedChains:  strings.Join(used, ","),
		Hits:        RankHits(hits),
		Residues:    res,
	}, nil
}

// BuildReportFromStockholm assembles a report from alignments computed
// earlier. Every pair names a chain and a Stockholm file as
// '<chainID>=<stockholmID>'; the file is read from dataDir as
// '<stockholmID>.sto' or its bzip2 compressed variant. An alignment is
// trimmed first when its query was longer than the chain.
func BuildReportFromStockholm(db Databank, prot *Protein, dataDir string,
	pairs []string, policy TrimPolicy) (*Report, error) {

	var (
		hits      []*Hit
		res       []*ResidueInfo
		seqLength int
		used      []string
	)
	for _, pair := range pairs {
		if len(pair) < 3 || pair[1] != '=' {
			return nil, formatErrf("invalid chain/stockholm pair '%s'", pair)
		}
		chain := prot.Chain(pair[0])
		if chain == nil {
			return nil, alignErrf("protein '%s' has no chain '%c'", prot.ID, pair[0])
		}

		msa, err := readStockholmFile(filepath.Join(dataDir, pair[2:]))
		if err != nil {
			return nil, err
		}
		if err := CheckAlignmentForChain(msa, chain); err != nil {
			return nil, err
		}

		if len(res) > 0 {
			res = append(res, NewChainBreak(len(res)+1))
		}
		seqLength += len(chain.Residues)

		chainHits, chainRes, err := BuildHits(db, msa, chain, policy, res)
		if err != nil {
			return nil, err
		}
		hits = append(hits, chainHits...)
		res = chainRes
		used = append(used, string(chain.ID))
	}

	return &Report{
		ID:          prot.ID,
		Description: prot.Description(),
		DBVersion:   db.Version(),
		SeqLength:   seqLength,
		NChain:      len(pairs),
		KChain:      len(pairs),
		UsedChains:  strings.Join(used, ","),
		Hits:        RankHits(hits),
		Residues:    res,
	}, nil
}

// CreateHSSP builds and writes an HSSP report for a bare query
// sequence: the aligner runs once and the query becomes the single
// chain 'A' of a protein named UNKN.
func CreateHSSP(db Databank, query string, al Aligner, w io.Writer) error {
	rep, err := BuildReport(db, NewProtein("UNKN", query), al, 0)
	if err != nil {
		return err
	}
	return WriteHSSP(w, rep)
}

// CreateHSSPForProtein builds and writes an HSSP report covering a
// whole protein. Chains shorter than minSeqLength are skipped; when
// minSeqLength is zero or negative the configured default applies.
func CreateHSSPForProtein(db Databank, prot *Protein, al Aligner,
	minSeqLength int, w io.Writer) error {

	if minSeqLength <= 0 {
		minSeqLength = DefaultConf.MinSeqLength
	}
	rep, err := BuildReport(db, prot, al, minSeqLength)
	if err != nil {
		return err
	}
	return WriteHSSP(w, rep)
}

// CreateHSSPFromStockholm builds and writes an HSSP report from
// existing Stockholm files instead of running an aligner.
func CreateHSSPFromStockholm(db Databank, prot *Protein, dataDir string,
	pairs []string, policy TrimPolicy, w io.Writer) error {

	rep, err := BuildReportFromStockholm(db, prot, dataDir, pairs, policy)
	if err != nil {
		return err
	}
	return WriteHSSP(w, rep)
}

// readStockholmFile opens '<base>.sto', falling back to the bzip2
// compressed '<base>.sto.bz2'.
func readStockholmFile(base string) (Alignment, error) {
	if f, err := os.Open(base + ".sto"); err == nil {
		defer f.Close()
		return ReadStockholm(f)
	}
	f, err := os.Open(base + ".sto.bz2")
	if err != nil {
		return nil, fmt.Errorf("Could not open Stockholm file '%s.sto[.bz2]': %s.", base, err)
	}
	defer f.Close()
	return ReadStockholm(bzip2.NewReader(f))
}

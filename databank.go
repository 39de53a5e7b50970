package xssp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// A DatabankEntry is the metadata attached to a hit: the record title,
// its accession number and the full sequence length.
type DatabankEntry struct {
	Title     string
	Accession string
	Length    int
}

// A Databank resolves hit identifiers to their metadata. A failed
// lookup is a LookupError; callers keep the hit and leave its title and
// accession empty.
type Databank interface {
	ID() string
	Version() string
	Lookup(id string) (DatabankEntry, error)
}

// ReadDatabankSeq is the value sent over `chan ReadDatabankSeq` while a
// databank FASTA file is scanned.
type ReadDatabankSeq struct {
	Seq *linear.Seq
	Err error
}

// ReadDatabankSeqs reads a FASTA formatted file and returns a channel
// that each new sequence is sent to.
func ReadDatabankSeqs(fileName string) (chan ReadDatabankSeq, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("Could not open FASTA file '%s': %s.", fileName, err)
	}
	seqChan := make(chan ReadDatabankSeq, 200)
	go func() {
		defer f.Close()

		reader := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.Protein))
		sc := seqio.NewScanner(reader)
		for sc.Next() {
			seqChan <- ReadDatabankSeq{
				Seq: sc.Seq().(*linear.Seq),
				Err: nil,
			}
		}
		if err := sc.Error(); err != nil {
			seqChan <- ReadDatabankSeq{
				Seq: nil,
				Err: err,
			}
		}
		close(seqChan)
	}()
	return seqChan, nil
}

// FastaDatabank serves lookups from a FASTA file indexed in memory. The
// record identifier is the first word of the description line; UniProt
// style 'db|accession|name' identifiers are additionally indexed under
// their name field, with the accession taken from the middle field.
type FastaDatabank struct {
	id      string
	version string
	entries map[string]DatabankEntry
}

// NewFastaDatabank scans the given FASTA file and indexes every record.
// The databank id is the file's base name without extension and the
// version string carries the file's modification time.
func NewFastaDatabank(fileName string) (*FastaDatabank, error) {
	db := &FastaDatabank{
		id:      strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName)),
		entries: make(map[string]DatabankEntry),
	}
	db.version = db.id
	if fi, err := os.Stat(fileName); err == nil {
		db.version = fmt.Sprintf("%s version %s", db.id, fi.ModTime().Format("2006-01-02"))
	}

	seqChan, err := ReadDatabankSeqs(fileName)
	if err != nil {
		return nil, err
	}
	for rs := range seqChan {
		if rs.Err != nil {
			return nil, fmt.Errorf("Could not read FASTA file '%s': %s.", fileName, rs.Err)
		}
		e := DatabankEntry{
			Title:  rs.Seq.Desc,
			Length: rs.Seq.Len(),
		}
		id := rs.Seq.Name()
		if parts := strings.Split(id, "|"); len(parts) == 3 {
			e.Accession = parts[1]
			db.entries[parts[2]] = e
		}
		db.entries[id] = e
	}

	Vprintf("Indexed %d databank entries from %s\n", len(db.entries), fileName)
	return db, nil
}

func (db *FastaDatabank) ID() string      { return db.id }
func (db *FastaDatabank) Version() string { return db.version }

func (db *FastaDatabank) Lookup(id string) (DatabankEntry, error) {
	if e, ok := db.entries[id]; ok {
		return e, nil
	}
	return DatabankEntry{}, LookupError{ID: id}
}

// NullDatabank satisfies Databank for conversions that run without a
// sequence databank. Every lookup fails.
type NullDatabank struct{}

func (NullDatabank) ID() string      { return "unknown" }
func (NullDatabank) Version() string { return "unknown" }

func (NullDatabank) Lookup(id string) (DatabankEntry, error) {
	return DatabankEntry{}, LookupError{ID: id}
}

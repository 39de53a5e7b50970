package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/nyue/xssp"
)

// hsspconv builds an HSSP report from alignments that already exist as
// Stockholm files, one per chain, without running a search tool.
func main() {
	log.SetFlags(0)

	var queryFile string
	var dataDir string
	var databank string
	var id string
	var outFile string
	var scoreTrim bool
	var verbose bool

	app := kingpin.New("hsspconv", "Convert per-chain Stockholm alignments into an HSSP report")
	app.Version("v0.1")
	queryArg := app.Arg("query", "query FASTA file, one record per chain").Required().String()
	pairsArg := app.Arg("pairs", "chain to alignment mapping, as <chain>=<stockholm-id>").Required().Strings()
	dataDirFlag := app.Flag("data-dir", "directory holding <stockholm-id>.sto[.bz2] files").Default(".").String()
	databankFlag := app.Flag("databank", "databank FASTA file used to annotate hits").Default("").String()
	idFlag := app.Flag("id", "protein identifier for the report header").Default("").String()
	outFlag := app.Flag("out", "output file; stdout when empty").Default("").String()
	scoreTrimFlag := app.Flag("score-trim", "trim hit rows by alignment score instead of the /start-end id suffix").Default("false").Bool()
	verboseFlag := app.Flag("verbose", "print progress details").Default("false").Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	queryFile = *queryArg
	dataDir = *dataDirFlag
	databank = *databankFlag
	id = *idFlag
	outFile = *outFlag
	scoreTrim = *scoreTrimFlag
	verbose = *verboseFlag

	xssp.Verbose = verbose

	var db xssp.Databank = xssp.NullDatabank{}
	if databank != "" {
		var err error
		if db, err = xssp.NewFastaDatabank(databank); err != nil {
			log.Fatalf("%s\n", err)
		}
	}

	f, err := os.Open(queryFile)
	if err != nil {
		log.Fatalf("Could not open query file '%s': %s.\n", queryFile, err)
	}
	seqs, err := fasta.NewReader(f).ReadAll()
	f.Close()
	if err != nil {
		log.Fatalf("Could not read query file '%s': %s.\n", queryFile, err)
	}
	if len(seqs) == 0 {
		log.Fatalf("Query file '%s' contains no sequences.\n", queryFile)
	}
	if id == "" {
		base := filepath.Base(queryFile)
		id = strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	chains := make([]string, len(seqs))
	for i, s := range seqs {
		chains[i] = string(s.Bytes())
	}
	prot := xssp.NewProtein(id, chains...)

	policy := xssp.TrimProfile
	if scoreTrim {
		policy = xssp.TrimScore
	}

	out := os.Stdout
	if outFile != "" {
		if out, err = os.Create(outFile); err != nil {
			log.Fatalf("Could not create '%s': %s.\n", outFile, err)
		}
	}
	if err := xssp.CreateHSSPFromStockholm(db, prot, dataDir, *pairsArg, policy, out); err != nil {
		log.Fatalf("%s\n", err)
	}
	if outFile != "" {
		if err := out.Close(); err != nil {
			log.Fatalf("Could not write '%s': %s.\n", outFile, err)
		}
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	"github.com/mingzhi/gomath/stat/desc/meanvar"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/nyue/xssp"
	"github.com/nyue/xssp/hmmer"
)

var (
	// A default configuration.
	conf = xssp.DefaultConf

	// Flags that affect the higher level operation of report building.
	// Flags that control the search are stored in `conf`.
	flagGoMaxProcs = runtime.NumCPU()
	flagSeq        = ""
	flagID         = ""
	flagOut        = ""
	flagConfFile   = ""
	flagQuiet      = false
	flagCpuProfile = ""
)

func init() {
	log.SetFlags(0)

	flag.StringVar(&conf.FastaDir, "fasta-dir", conf.FastaDir,
		"The directory holding the databank FASTA files.")
	flag.StringVar(&conf.Databank, "databank", conf.Databank,
		"The databank to search, read as '<fasta-dir>/<databank>.fa'.")
	flag.StringVar(&conf.Jackhmmer, "jackhmmer", conf.Jackhmmer,
		"The location of the 'jackhmmer' executable.")
	flag.IntVar(&conf.Iterations, "iterations", conf.Iterations,
		"The number of jackhmmer search iterations.")
	flag.IntVar(&conf.CPU, "cpu", conf.CPU,
		"The number of threads jackhmmer may use.")
	flag.IntVar(&conf.MinSeqLength, "min-seq-length", conf.MinSeqLength,
		"Chains shorter than this are left out of the report.")
	flag.DurationVar(&conf.MaxRunTime, "max-runtime", conf.MaxRunTime,
		"How long a jackhmmer run may take before it is killed.")

	flag.IntVar(&flagGoMaxProcs, "p", flagGoMaxProcs,
		"The maximum number of CPUs that can be executing simultaneously.")
	flag.StringVar(&flagSeq, "seq", flagSeq,
		"When set, the given amino acid sequence is the query instead of\n"+
			"\ta FASTA file.")
	flag.StringVar(&flagID, "id", flagID,
		"The protein identifier written into the report header. The\n"+
			"\tdefault is the query file's base name, or UNKN for -seq.")
	flag.StringVar(&flagOut, "o", flagOut,
		"Where to write the report. With several input files this names\n"+
			"\ta directory and the default is next to each input; a single\n"+
			"\treport goes to stdout by default.")
	flag.StringVar(&flagConfFile, "conf", flagConfFile,
		"A configuration file overriding the built-in defaults.\n"+
			"\tExplicitly set flags win over the file.")
	flag.BoolVar(&flagQuiet, "quiet", flagQuiet,
		"When set, the only outputs will be errors echoed to stderr.")
	flag.StringVar(&flagCpuProfile, "cpuprofile", flagCpuProfile,
		"When set, a CPU profile will be written to the file specified.")

	flag.Usage = usage
	flag.Parse()

	runtime.GOMAXPROCS(flagGoMaxProcs)
}

func main() {
	if flagSeq == "" && flag.NArg() < 1 {
		flag.Usage()
	}

	// If the quiet flag isn't set, enable verbose output.
	if !flagQuiet {
		xssp.Verbose = true
	}

	if flagConfFile != "" {
		f, err := os.Open(flagConfFile)
		if err != nil {
			fatalf("Could not open configuration file '%s': %s.\n",
				flagConfFile, err)
		}
		fileConf, err := xssp.LoadConf(f)
		f.Close()
		if err != nil {
			fatalf("Could not load configuration file '%s': %s.\n",
				flagConfFile, err)
		}
		if conf, err = conf.FlagMerge(fileConf); err != nil {
			fatalf("%s\n", err)
		}
	}

	if len(flagCpuProfile) > 0 {
		f, err := os.Create(flagCpuProfile)
		if err != nil {
			fatalf("%s\n", err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	db, err := xssp.NewFastaDatabank(conf.DatabankFasta())
	if err != nil {
		fatalf("%s\n", err)
	}

	aligner := &hmmer.Jackhmmer{
		Path:       conf.Jackhmmer,
		Databank:   conf.Databank,
		FastaDir:   conf.FastaDir,
		Iterations: conf.Iterations,
		CPU:        conf.CPU,
		MaxRunTime: conf.MaxRunTime,
	}

	if flagSeq != "" {
		id := flagID
		if id == "" {
			id = "UNKN"
		}
		rep, err := xssp.BuildReport(db, xssp.NewProtein(id, flagSeq), aligner, 0)
		if err != nil {
			fatalf("%s\n", err)
		}
		identityStats(rep)
		if err := writeReport(rep, flagOut); err != nil {
			fatalf("%s\n", err)
		}
		return
	}

	args := flag.Args()
	var bar *pb.ProgressBar
	if len(args) > 1 && !flagQuiet {
		bar = pb.StartNew(len(args))
	}
	for _, arg := range args {
		if err := oneReport(db, aligner, arg, len(args) == 1); err != nil {
			fatalf("%s\n", err)
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
}

// oneReport builds and writes the report for a single query FASTA
// file; every record in the file becomes one chain.
func oneReport(db xssp.Databank, al xssp.Aligner, inFile string, single bool) error {
	f, err := os.Open(inFile)
	if err != nil {
		return fmt.Errorf("Could not open query file '%s': %s.", inFile, err)
	}
	seqs, err := fasta.NewReader(f).ReadAll()
	f.Close()
	if err != nil {
		return fmt.Errorf("Could not read query file '%s': %s.", inFile, err)
	}
	if len(seqs) == 0 {
		return fmt.Errorf("Query file '%s' contains no sequences.", inFile)
	}

	id := flagID
	if id == "" {
		id = strings.ToUpper(baseName(inFile))
	}
	chains := make([]string, len(seqs))
	for i, s := range seqs {
		chains[i] = string(s.Bytes())
	}

	rep, err := xssp.BuildReport(db, xssp.NewProtein(id, chains...), al, conf.MinSeqLength)
	if err != nil {
		return err
	}
	identityStats(rep)

	outName := flagOut
	if !single {
		hsspName := baseName(inFile) + ".hssp"
		if flagOut != "" {
			outName = filepath.Join(flagOut, hsspName)
		} else {
			outName = filepath.Join(filepath.Dir(inFile), hsspName)
		}
	}
	return writeReport(rep, outName)
}

// writeReport serializes to the named file, or to stdout when the name
// is empty.
func writeReport(rep *xssp.Report, outName string) error {
	if outName == "" {
		return xssp.WriteHSSP(os.Stdout, rep)
	}
	f, err := os.Create(outName)
	if err != nil {
		return fmt.Errorf("Could not create '%s': %s.", outName, err)
	}
	if err := xssp.WriteHSSP(f, rep); err != nil {
		f.Close()
		return fmt.Errorf("Could not write '%s': %s.", outName, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("Could not write '%s': %s.", outName, err)
	}
	xssp.Vprintf("Wrote %s.\n", outName)
	return nil
}

// identityStats prints mean and variance of the kept hits' identities.
func identityStats(rep *xssp.Report) {
	if !xssp.Verbose || len(rep.Hits) == 0 {
		return
	}
	mv := meanvar.New()
	for _, h := range rep.Hits {
		mv.Increment(h.Ide)
	}
	v := mv.Var.GetResult()
	if math.IsNaN(v) {
		v = 0
	}
	xssp.Vprintf("%d hits, identity mean %.4f, variance %.4f\n",
		len(rep.Hits), mv.Mean.GetResult(), v)
}

func baseName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
}

func fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"\nUsage: %s [flags] query-fasta-file [query-fasta-file ...]\n",
		path.Base(os.Args[0]))
	xssp.PrintFlagDefaults()
	os.Exit(1)
}

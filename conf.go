package xssp

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Conf holds the settings shared by the HSSP tools: where the databank
// FASTA files live, which databank to search, and how jackhmmer is run.
type Conf struct {
	FastaDir     string
	Databank     string
	Jackhmmer    string
	Iterations   int
	CPU          int
	MinSeqLength int
	MaxRunTime   time.Duration
}

var DefaultConf = &Conf{
	FastaDir:     "/data/fasta",
	Databank:     "uniprot",
	Jackhmmer:    "jackhmmer",
	Iterations:   5,
	CPU:          2,
	MinSeqLength: 25,
	MaxRunTime:   300 * time.Second,
}

// DatabankFasta is the FASTA file jackhmmer searches against and
// lookups are served from.
func (conf *Conf) DatabankFasta() string {
	return filepath.Join(conf.FastaDir, conf.Databank+".fa")
}

func LoadConf(r io.Reader) (conf *Conf, err error) {
	defer func() {
		if perr := recover(); perr != nil {
			err = perr.(error)
		}
	}()
	c := *DefaultConf
	conf = &c

	csvReader := csv.NewReader(r)
	csvReader.Comma = ':'
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = 2
	csvReader.TrimLeadingSpace = true

	lines, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		atoi := func() int {
			var i64 int64
			var err error
			if i64, err = strconv.ParseInt(line[1], 10, 32); err != nil {
				panic(err)
			}
			return int(i64)
		}
		switch line[0] {
		case "FastaDir":
			conf.FastaDir = strings.TrimSpace(line[1])
		case "Databank":
			conf.Databank = strings.TrimSpace(line[1])
		case "Jackhmmer":
			conf.Jackhmmer = strings.TrimSpace(line[1])
		case "Iterations":
			conf.Iterations = atoi()
		case "CPU":
			conf.CPU = atoi()
		case "MinSeqLength":
			conf.MinSeqLength = atoi()
		case "MaxRunTime":
			conf.MaxRunTime = time.Duration(atoi()) * time.Second
		default:
			return nil, fmt.Errorf("Invalid Conf flag: %s", line[0])
		}
	}

	return conf, nil
}

func (flagConf *Conf) FlagMerge(fileConf *Conf) (*Conf, error) {
	only := make(map[string]bool, 0)
	flag.Visit(func(f *flag.Flag) { only[f.Name] = true })

	if !only["fasta-dir"] {
		flagConf.FastaDir = fileConf.FastaDir
	}
	if !only["databank"] {
		flagConf.Databank = fileConf.Databank
	}
	if !only["jackhmmer"] {
		flagConf.Jackhmmer = fileConf.Jackhmmer
	}
	if !only["iterations"] {
		flagConf.Iterations = fileConf.Iterations
	}
	if !only["cpu"] {
		flagConf.CPU = fileConf.CPU
	}
	if !only["min-seq-length"] {
		flagConf.MinSeqLength = fileConf.MinSeqLength
	}
	if !only["max-runtime"] {
		flagConf.MaxRunTime = fileConf.MaxRunTime
	}
	return flagConf, nil
}

func (conf Conf) Write(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = ':'
	csvWriter.UseCRLF = false

	s := func(i int) string {
		return fmt.Sprintf("%d", i)
	}
	records := [][]string{
		{"FastaDir", conf.FastaDir},
		{"Databank", conf.Databank},
		{"Jackhmmer", conf.Jackhmmer},
		{"Iterations", s(conf.Iterations)},
		{"CPU", s(conf.CPU)},
		{"MinSeqLength", s(conf.MinSeqLength)},
		{"MaxRunTime", s(int(conf.MaxRunTime / time.Second))},
	}
	if err := csvWriter.WriteAll(records); err != nil {
		return err
	}
	return nil
}

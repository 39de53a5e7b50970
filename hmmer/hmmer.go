// Package hmmer runs the jackhmmer search tool and turns its Stockholm
// output into an alignment ready for HSSP statistics.
package hmmer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/TuftsBCB/io/fasta"
	"github.com/TuftsBCB/seq"

	"github.com/nyue/xssp"
)

// A TimeoutError reports a jackhmmer run that exceeded its allotted
// time and was killed.
type TimeoutError struct {
	Duration time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("jackhmmer did not finish within %s", e.Duration)
}

// A ProcessError reports a jackhmmer run that failed: a start failure,
// a nonzero exit, or a run that finished without writing its output.
// Tail holds the last lines of the run's log when one was written.
type ProcessError struct {
	Message  string
	ExitCode int
	Tail     []string
}

func (e ProcessError) Error() string {
	if len(e.Tail) > 0 {
		return e.Message + "\n" + strings.Join(e.Tail, "\n")
	}
	return e.Message
}

// Jackhmmer satisfies xssp.Aligner by running jackhmmer against the
// FASTA databank '<FastaDir>/<Databank>.fa'. Every run happens in a
// fresh directory under the system temp dir, which is removed again
// unless verbose output is on.
type Jackhmmer struct {
	Path       string        // jackhmmer executable, "jackhmmer" when empty
	Databank   string        // databank name
	FastaDir   string        // directory holding '<Databank>.fa'
	Iterations int           // search iterations (-N), 5 when zero
	CPU        int           // worker threads (--cpu), 2 when zero
	MaxRunTime time.Duration // kill deadline, 5 minutes when zero
}

// Align runs one jackhmmer search for the query and parses the
// resulting Stockholm alignment.
func (j *Jackhmmer) Align(query string) (xssp.Alignment, error) {
	if len(query) == 0 {
		return nil, fmt.Errorf("Cannot run jackhmmer on an empty sequence.")
	}

	rundir, err := os.MkdirTemp("", "hssp-")
	if err != nil {
		return nil, fmt.Errorf("Could not create jackhmmer run directory: %s.", err)
	}
	keep := false
	defer func() {
		if !keep {
			os.RemoveAll(rundir)
		}
	}()
	xssp.Vprintf("Running jackhmmer (%s)...\n", rundir)

	if err := writeQuery(filepath.Join(rundir, "input.fa"), query); err != nil {
		return nil, err
	}

	maxRunTime := j.MaxRunTime
	if maxRunTime <= 0 {
		maxRunTime = 300 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), maxRunTime)
	defer cancel()

	path := j.Path
	if path == "" {
		path = "jackhmmer"
	}
	iterations := j.Iterations
	if iterations <= 0 {
		iterations = 5
	}
	cpu := j.CPU
	if cpu <= 0 {
		cpu = 2
	}

	cmd := exec.CommandContext(ctx, path,
		"-N", strconv.Itoa(iterations),
		"--noali",
		"--cpu", strconv.Itoa(cpu),
		"-A", "output.sto",
		"input.fa",
		filepath.Join(j.FastaDir, j.Databank+".fa"))
	cmd.Dir = rundir

	logName := filepath.Join(rundir, "jackhmmer.log")
	logFile, err := os.Create(logName)
	if err != nil {
		return nil, fmt.Errorf("Could not create jackhmmer log file: %s.", err)
	}
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	xssp.Vprintf("%s\n", strings.Join(cmd.Args, " "))
	runErr := cmd.Run()
	logFile.Close()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, TimeoutError{Duration: maxRunTime}
	}
	if runErr != nil {
		perr := ProcessError{ExitCode: -1, Tail: logTail(logName, 10)}
		if ee, ok := runErr.(*exec.ExitError); ok {
			perr.ExitCode = ee.ExitCode()
			perr.Message = fmt.Sprintf("jackhmmer exited with status %d", perr.ExitCode)
		} else {
			perr.Message = fmt.Sprintf("jackhmmer failed to run: %s", runErr)
		}
		return nil, perr
	}

	out, err := os.Open(filepath.Join(rundir, "output.sto"))
	if err != nil {
		return nil, ProcessError{
			Message: "jackhmmer finished without writing its output Stockholm file",
			Tail:    logTail(logName, 10),
		}
	}
	defer out.Close()

	msa, err := xssp.ReadStockholm(out)
	if err != nil {
		return nil, err
	}

	if xssp.Verbose {
		keep = true
		xssp.Vprintf("Keeping jackhmmer run directory %s\n", rundir)
	}
	return msa, nil
}

// writeQuery writes the query sequence as a wrapped FASTA record named
// 'input'.
func writeQuery(path, query string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Could not create jackhmmer input file: %s.", err)
	}

	w := fasta.NewWriter(f)
	w.Columns = 72
	if err := w.Write(seq.NewSequenceString("input", query)); err != nil {
		f.Close()
		return fmt.Errorf("Could not write jackhmmer input file: %s.", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("Could not write jackhmmer input file: %s.", err)
	}
	return f.Close()
}

// logTail returns the last n lines of the run log.
func logTail(name string, n int) []string {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

package hmmer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTimeoutError(t *testing.T) {
	err := TimeoutError{Duration: 5 * time.Minute}
	want := "jackhmmer did not finish within 5m0s"
	if err.Error() != want {
		t.Fatalf("error should be %q, but is %q", want, err.Error())
	}
}

func TestProcessError(t *testing.T) {
	err := ProcessError{Message: "jackhmmer exited with status 1", ExitCode: 1}
	if err.Error() != "jackhmmer exited with status 1" {
		t.Fatalf("error without a log tail should be the message alone, "+
			"but is %q", err.Error())
	}

	err.Tail = []string{"Error: bad databank", "aborting"}
	want := "jackhmmer exited with status 1\nError: bad databank\naborting"
	if err.Error() != want {
		t.Fatalf("error should append the log tail and be %q, but is %q",
			want, err.Error())
	}
}

func TestAlignEmptyQuery(t *testing.T) {
	j := &Jackhmmer{}
	_, err := j.Align("")
	if err == nil {
		t.Fatal("aligning an empty sequence should fail")
	}
	if !strings.Contains(err.Error(), "empty sequence") {
		t.Fatalf("the error should mention the empty sequence, but is %q", err)
	}
}

func TestAlignMissingBinary(t *testing.T) {
	j := &Jackhmmer{
		Path:       "/nosuch/jackhmmer",
		Databank:   "db",
		FastaDir:   t.TempDir(),
		MaxRunTime: time.Minute,
	}
	_, err := j.Align("VLIMFWYGAPST")
	if err == nil {
		t.Fatal("aligning with a missing binary should fail")
	}
	perr, ok := err.(ProcessError)
	if !ok {
		t.Fatalf("the error should be a ProcessError, but is %#v", err)
	}
	if perr.ExitCode != -1 || !strings.Contains(perr.Message, "failed to run") {
		t.Fatalf("a start failure should report exit code -1, but "+
			"reports %d with %q", perr.ExitCode, perr.Message)
	}
}

func TestWriteQuery(t *testing.T) {
	name := filepath.Join(t.TempDir(), "input.fa")
	query := strings.Repeat("VLIMFWYG", 20)

	if err := writeQuery(name, query); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if lines[0] != ">input" {
		t.Fatalf("the record should be named 'input', but the header "+
			"is %q", lines[0])
	}
	var joined string
	for _, line := range lines[1:] {
		if len(line) > 72 {
			t.Fatalf("sequence lines should wrap at 72 columns, but one "+
				"has %d", len(line))
		}
		joined += line
	}
	if joined != query {
		t.Fatalf("the wrapped sequence should read back as the query, "+
			"but reads %q", joined)
	}
}

func TestLogTail(t *testing.T) {
	name := filepath.Join(t.TempDir(), "jackhmmer.log")

	var doc string
	for i := 1; i <= 15; i++ {
		doc += strings.Repeat("x", i) + "\n"
	}
	if err := os.WriteFile(name, []byte(doc), 0666); err != nil {
		t.Fatal(err)
	}

	tail := logTail(name, 10)
	if len(tail) != 10 {
		t.Fatalf("the tail should hold 10 lines, but holds %d", len(tail))
	}
	if tail[0] != strings.Repeat("x", 6) || tail[9] != strings.Repeat("x", 15) {
		t.Fatalf("the tail should hold the last 10 lines, but starts "+
			"with %q and ends with %q", tail[0], tail[9])
	}

	if err := os.WriteFile(name, []byte("one\ntwo\n"), 0666); err != nil {
		t.Fatal(err)
	}
	tail = logTail(name, 10)
	if len(tail) != 2 || tail[0] != "one" || tail[1] != "two" {
		t.Fatalf("a short log should come back whole, but is %v", tail)
	}

	if tail := logTail(filepath.Join(t.TempDir(), "nosuch.log"), 10); tail != nil {
		t.Fatalf("a missing log should yield no tail, but yields %v", tail)
	}
	if err := os.WriteFile(name, nil, 0666); err != nil {
		t.Fatal(err)
	}
	if tail := logTail(name, 10); tail != nil {
		t.Fatalf("an empty log should yield no tail, but yields %v", tail)
	}
}

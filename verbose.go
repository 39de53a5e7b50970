package xssp

import (
	"fmt"
	"os"
)

// Verbose controls whether progress and diagnostic messages are written to
// stderr. Commands enable it unless their 'quiet' flag is set.
var Verbose = false

func Vprint(a ...interface{}) {
	if Verbose {
		fmt.Fprint(os.Stderr, a...)
	}
}

func Vprintf(format string, a ...interface{}) {
	if Verbose {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}

func Vprintln(a ...interface{}) {
	if Verbose {
		fmt.Fprintln(os.Stderr, a...)
	}
}

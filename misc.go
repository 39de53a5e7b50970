package xssp

import (
	"flag"
	"fmt"
	"os"
)

// PrintFlagDefaults writes every registered flag with its default value
// and usage text to stderr, where the usage screens of the HSSP tools
// go.
func PrintFlagDefaults() {
	flag.VisitAll(func(fg *flag.Flag) {
		fmt.Fprintf(os.Stderr, "--%s=\"%s\"\n\t%s\n",
			fg.Name, fg.DefValue, fg.Usage)
	})
}

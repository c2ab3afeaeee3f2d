// Command glint is the command-line front end for the Glint interpreter: a
// thin cobra-based shell around the dependency-free core in package interp.
// It reads a source file and runs it, or drops into an interactive REPL.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

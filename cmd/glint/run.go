package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glint-lang/glint/internal/interp"
	"github.com/glint-lang/glint/internal/stdlib"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a Glint source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

// runFile reads path and runs it to completion against os.Stdout/os.Stdin,
// reporting the first diagnostic (syntax, pre-check, or runtime) on
// os.Stderr in red.
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if ok := interp.Interpret(string(src), os.Stdout, errWriter{}, os.Stdin, stdlib.Register); !ok {
		return fmt.Errorf("%s: failed", path)
	}
	return nil
}

// errWriter colors every write to stderr red without threading a
// *color.Color through interp.Interpret's plain io.Writer parameter.
type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	errColor.Fprint(os.Stderr, string(p))
	return len(p), nil
}

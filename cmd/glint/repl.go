package main

import (
	"bytes"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/glint-lang/glint/internal/interp"
	"github.com/glint-lang/glint/internal/stdlib"
)

const (
	banner = `   ___ _ _       _
  / _ (_) |_   _| |_
 / (_) | | | | | __|
 \__\_\_|_|\_,_|\__|`
	prompt = "glint >>> "
)

var bannerColor = color.New(color.FgGreen)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Glint session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

// runRepl drives a read-eval-print loop. Each accepted line is run against
// a persistent *interp.Interp so that variable bindings and function
// definitions stay visible to later lines.
func runRepl() error {
	bannerColor.Println(banner)
	infoColor.Println("Type Glint code and press enter. Ctrl+D to exit.")

	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	it := interp.New(os.Stdout, os.Stdin)
	stdlib.Register(it)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C
			infoColor.Println("bye")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		evalLine(it, line)
	}
}

// evalLine parses and runs a single REPL line against the running
// interpreter, printing a RuntimeError (or a syntax/pre-check diagnostic)
// in red without tearing down the session.
func evalLine(it *interp.Interp, line string) {
	var diag bytes.Buffer
	ok := interp.RunSource(it, line, &diag)
	if !ok {
		errColor.Fprintln(os.Stderr, strings.TrimRight(diag.String(), "\n"))
	}
}

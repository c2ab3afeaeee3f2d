package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is the string reported by --version.
const version = "v0.1.0"

var (
	errColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "glint [file]",
		Short:         "Glint is an interpreter for the Glint scripting language",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		// A bare `glint <file>` runs the file directly, same as `glint run <file>`;
		// a bare `glint` with no arguments drops into the REPL.
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runFile(args[0])
			}
			return runRepl()
		},
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newReplCmd())
	return root
}

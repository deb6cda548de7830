package main

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "tree" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "tree", "json"}

// traceKeys are the traces of all packages of this module.
var traceKeys = []string{
	"stylecheck.dom",
	"stylecheck.css",
	"stylecheck.reader",
	"stylecheck.harness",
	"stylecheck.browser",
	"stylecheck.cli",
}

// NewRootCommand creates the root command of the stylecheck CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "stylecheck",
		Short: "Check computed styles of a page",
		Long: `stylecheck reads the computed styles of elements of a page and compares
them to expectation tables, at the viewport width of the page.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			level := tracing.LevelError
			if opts.Verbose {
				level = tracing.LevelDebug
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|tree|json)")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewDiffCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

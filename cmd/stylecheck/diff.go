package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/npillmayer/stylecheck/harness"
	"github.com/npillmayer/stylecheck/reader"
	"github.com/spf13/cobra"
)

// DiffOptions restrict the properties shown by the diff command.
type DiffOptions struct {
	Page    PageOptions
	Include []string
	Exclude []string
}

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DiffOptions{}
	cmd := &cobra.Command{
		Use:   "diff [page.html] <selector>",
		Short: "Show the styles of elements which differ from an unstyled element",
		Long: `Show the computed properties of the elements matching a selector which
differ from those of an unstyled element with the same tag.

This is useful to write the expectation table of a new suite.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, selector := "", args[len(args)-1]
			if len(args) > 1 {
				page = args[0]
			}
			return runDiff(cmd.Context(), rootOpts, opts, page, selector, cmd.OutOrStdout())
		},
	}
	opts.Page.addFlags(cmd)
	cmd.Flags().StringSliceVar(&opts.Include, "include", nil, "properties to show (default all)")
	cmd.Flags().StringSliceVar(&opts.Exclude, "exclude", nil, "properties to hide")
	return cmd
}

type elementDiff struct {
	Element    string            `json:"element"`
	Properties map[string]string `json:"properties"`
}

func runDiff(ctx context.Context, rootOpts *RootOptions, opts *DiffOptions, page, selector string,
	out io.Writer) error {
	//
	doc, closeDoc, err := openDocument(ctx, &opts.Page, page)
	if err != nil {
		return err
	}
	defer closeDoc()
	r := reader.New(doc)
	els, err := r.Resolve(reader.Selector(selector))
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid selector", err)
	}
	if len(els) == 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("no element matches %s", selector))
	}
	filter := reader.Filter{Include: opts.Include, Exclude: opts.Exclude}
	diffs := make([]elementDiff, 0, len(els))
	for i, el := range els {
		kvs, err := r.ReadDiffFromDefault(el, filter)
		if err != nil {
			return WrapExitError(ExitCommandError, "cannot read styles", err)
		}
		diffs = append(diffs, elementDiff{
			Element:    harness.Label(el, selector, i, len(els), ""),
			Properties: properties(kvs),
		})
		if rootOpts.Format != "json" {
			printDiff(out, diffs[i].Element, kvs)
		}
	}
	if rootOpts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(diffs)
	}
	return nil
}

func properties(kvs []style.KeyValue) map[string]string {
	m := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		m[style.CamelKey(kv.Key)] = kv.Value.String()
	}
	return m
}

// printDiff prints properties as rows of an expectation table.
func printDiff(w io.Writer, label string, kvs []style.KeyValue) {
	fmt.Fprintf(w, "%s:\n", label)
	for _, kv := range kvs {
		fmt.Fprintf(w, "  - [%s, %q]\n", style.CamelKey(kv.Key), kv.Value.String())
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/npillmayer/stylecheck/browser"
	"github.com/npillmayer/stylecheck/browser/cdp"
	"github.com/npillmayer/stylecheck/browser/pw"
	"github.com/npillmayer/stylecheck/dom"
	"github.com/npillmayer/stylecheck/dom/static"
	"github.com/npillmayer/stylecheck/harness"
	"github.com/npillmayer/stylecheck/report"
	"github.com/npillmayer/stylecheck/suitefile"
	"github.com/spf13/cobra"
)

// PageOptions select and configure the document to check.
type PageOptions struct {
	URL     string
	Browser string // "chromedp" | "playwright"
	Width   int
	Height  int
	Timeout time.Duration
}

func (o *PageOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.URL, "url", "", "check a live page in a browser instead of a file")
	cmd.Flags().StringVar(&o.Browser, "browser", "chromedp", "browser driver for --url (chromedp|playwright)")
	cmd.Flags().IntVarP(&o.Width, "width", "w", static.DefaultViewportWidth, "viewport width in CSS pixels")
	cmd.Flags().IntVar(&o.Height, "height", 800, "viewport height in CSS pixels, for --url")
	cmd.Flags().DurationVar(&o.Timeout, "timeout", browser.DefaultTimeout, "time limit for each browser evaluation")
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PageOptions{}
	cmd := &cobra.Command{
		Use:   "check <suite.yaml> [page.html]",
		Short: "Run the checks of a suite file against a page",
		Long: `Run the checks of a suite file against a page.

The page is either an HTML file, styled with its embedded style sheets, or
a live page given by --url. Exit status is 1 if a check fails.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := ""
			if len(args) > 1 {
				page = args[1]
			}
			return runCheck(cmd.Context(), rootOpts, opts, args[0], page, cmd.OutOrStdout())
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func runCheck(ctx context.Context, rootOpts *RootOptions, opts *PageOptions, suitePath, page string,
	out io.Writer) error {
	//
	s, err := suitefile.Load(suitePath)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot load suite", err)
	}
	doc, closeDoc, err := openDocument(ctx, opts, page)
	if err != nil {
		return err
	}
	defer closeDoc()
	if sd, ok := doc.(*static.Document); ok {
		if err := s.Place(sd); err != nil {
			return WrapExitError(ExitCommandError, "invalid geometry", err)
		}
	}
	root := harness.NewSuite(s.Name)
	if err := s.Build(harness.New(doc), root); err != nil {
		return WrapExitError(ExitCommandError, "cannot build suite", err)
	}
	tracer().Debugf("suite %q has %d checks", s.Name, root.CheckCount())
	r := newReporter(rootOpts, out)
	sum := root.Run(r)
	if j, ok := r.(*report.JSON); ok && j.Err() != nil {
		return WrapExitError(ExitCommandError, "cannot write report", j.Err())
	}
	if !sum.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d checks failed", sum.Failed, sum.Total()))
	}
	return nil
}

// openDocument opens an HTML file or, if a URL is configured, a live page.
// The returned function releases the document.
func openDocument(ctx context.Context, opts *PageOptions, page string) (dom.Document, func(), error) {
	nop := func() {}
	if opts.URL == "" {
		if page == "" {
			return nil, nop, NewExitError(ExitCommandError, "either a page file or --url is required")
		}
		doc, err := static.Load(page, static.WithViewportWidth(opts.Width))
		if err != nil {
			return nil, nop, WrapExitError(ExitCommandError, "cannot load page", err)
		}
		return doc, nop, nil
	}
	if page != "" {
		return nil, nop, NewExitError(ExitCommandError, "a page file and --url are mutually exclusive")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var ev browser.Evaluator
	release := nop
	switch opts.Browser {
	case "chromedp":
		tab, err := cdp.Open(ctx, opts.URL, opts.Width, opts.Height)
		if err != nil {
			return nil, nop, WrapExitError(ExitCommandError, "cannot open page", err)
		}
		ev, release = tab, tab.Close
	case "playwright":
		p, err := pw.Open(opts.URL, opts.Width, opts.Height)
		if err != nil {
			return nil, nop, WrapExitError(ExitCommandError, "cannot open page", err)
		}
		ev, release = p, p.Close
	default:
		return nil, nop, NewExitError(ExitCommandError,
			fmt.Sprintf("unknown browser %q: must be chromedp or playwright", opts.Browser))
	}
	doc := browser.New(ev,
		browser.WithContext(ctx),
		browser.WithTimeout(opts.Timeout),
		browser.WithViewportHeight(opts.Height))
	return doc, release, nil
}

func newReporter(opts *RootOptions, out io.Writer) harness.Reporter {
	switch opts.Format {
	case "tree":
		return report.NewTree(out)
	case "json":
		return report.NewJSON(out)
	}
	if opts.Verbose {
		return report.NewConsole(out, report.WithDiagnostics())
	}
	return report.NewConsole(out)
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/stylecheck/harness"
)

// Console prints failures as they occur and a line of the form
//
//	✔︎ <suite>: n/m tests passed
//
// for every top-level suite and every suite directly below it.
type Console struct {
	w           io.Writer
	pass        lipgloss.Style
	warn        lipgloss.Style
	fail        lipgloss.Style
	faint       lipgloss.Style
	diagnostics bool
}

var _ harness.Reporter = &Console{}

// ConsoleOption configures a console reporter.
type ConsoleOption func(*Console)

// WithDiagnostics prints the computed style of an element below each of
// its failures, if the failure carries it.
func WithDiagnostics() ConsoleOption {
	return func(c *Console) {
		c.diagnostics = true
	}
}

// NewConsole creates a console reporter writing to w. Colours are used
// only if w is a terminal.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	r := lipgloss.NewRenderer(w)
	c := &Console{
		w:     w,
		pass:  r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")),
		faint: r.NewStyle().Faint(true),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) OnCheckStart(check *harness.Check) {
	tracer().Debugf("running %q", check.Title())
}

func (c *Console) OnPass(*harness.Check) {}

func (c *Console) OnFail(check *harness.Check, f *harness.Failure) {
	if f.Property != "" && f.Actual != "" {
		fmt.Fprintf(c.w, "%s %s %s. Got: %s, Expected: %s\n", c.fail.Render("❌"),
			strings.Join(check.Suite().Path(), " / "), f.Property, f.Actual, f.Expected)
	} else {
		fmt.Fprintf(c.w, "%s %s: %s\n", c.fail.Render("❌"), f.Path, f.Error())
	}
	if c.diagnostics {
		for _, kv := range f.Diagnostics {
			fmt.Fprintln(c.w, c.faint.Render("    "+kv.String()))
		}
	}
}

func (c *Console) OnSuiteEnd(sum harness.Summary) {
	if sum.Suite.Depth() > 1 {
		return
	}
	symbol := c.pass.Render("✔︎")
	if !sum.OK() {
		symbol = c.warn.Render("⚠︎")
	}
	fmt.Fprintf(c.w, "%s %s: %d/%d tests passed\n", symbol, sum.Suite.Name, sum.Passed, sum.Total())
}

package report

import (
	"fmt"
	"io"

	"github.com/npillmayer/stylecheck/harness"
	tp "github.com/xlab/treeprint"
)

// Tree prints the tree of suites and checks with their outcomes, once a
// top-level suite has finished.
type Tree struct {
	w io.Writer
}

var _ harness.Reporter = &Tree{}

// NewTree creates a tree reporter writing to w.
func NewTree(w io.Writer) *Tree {
	return &Tree{w: w}
}

func (t *Tree) OnCheckStart(*harness.Check)             {}
func (t *Tree) OnPass(*harness.Check)                   {}
func (t *Tree) OnFail(*harness.Check, *harness.Failure) {}

func (t *Tree) OnSuiteEnd(sum harness.Summary) {
	if sum.Suite.Depth() > 0 {
		return
	}
	printer := tp.New()
	printSuite(printer.AddBranch(sum.Suite.Name), sum.Suite)
	fmt.Fprint(t.w, printer.String())
}

func printSuite(branch tp.Tree, s *harness.Suite) {
	s.Walk(func(c *harness.Check, sub *harness.Suite) {
		if sub != nil {
			printSuite(branch.AddBranch(sub.Name), sub)
			return
		}
		if c.Passed() {
			branch.AddNode("✓ " + c.Title())
		} else if f := c.Failure(); f != nil {
			branch.AddNode("✗ " + c.Title() + ": " + f.Error())
		} else {
			branch.AddNode("- " + c.Title())
		}
	})
}

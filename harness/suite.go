package harness

import (
	"fmt"
	"strings"

	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/stretchr/testify/assert"
	tp "github.com/xlab/treeprint"
)

// Suite is a named group of checks and sub-suites. Children run in the
// order they have been registered.
type Suite struct {
	Name     string
	parent   *Suite
	children []child
	before   []func() error
}

// child is either a check or a suite.
type child struct {
	check *Check
	suite *Suite
}

// NewSuite creates a top-level suite.
func NewSuite(name string) *Suite {
	return &Suite{Name: name}
}

// Describe adds a sub-suite. body, if not nil, is called immediately to
// register the sub-suite's children.
func (s *Suite) Describe(name string, body func(*Suite)) *Suite {
	sub := &Suite{Name: name, parent: s}
	s.children = append(s.children, child{suite: sub})
	if body != nil {
		body(sub)
	}
	return sub
}

// It adds a check. The check fails if body reports an error to t or
// panics.
func (s *Suite) It(title string, body func(t assert.TestingT)) *Check {
	return s.add(func() string { return title }, body)
}

// Before adds a hook which runs before the suite's children. If a hook
// fails, every check of the suite and its sub-suites fails with the hook's
// error.
func (s *Suite) Before(hook func() error) {
	s.before = append(s.before, hook)
}

func (s *Suite) add(title func() string, body func(t assert.TestingT)) *Check {
	c := &Check{suite: s, titleFunc: title, body: body}
	s.children = append(s.children, child{check: c})
	return c
}

// Parent returns the enclosing suite, or nil for a top-level suite.
func (s *Suite) Parent() *Suite {
	return s.parent
}

// Depth is 0 for a top-level suite.
func (s *Suite) Depth() int {
	d := 0
	for p := s.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Path returns the names of all suites from the top-level suite down to s.
func (s *Suite) Path() []string {
	if s.parent == nil {
		return []string{s.Name}
	}
	return append(s.parent.Path(), s.Name)
}

// Suites returns the direct sub-suites.
func (s *Suite) Suites() []*Suite {
	var subs []*Suite
	for _, ch := range s.children {
		if ch.suite != nil {
			subs = append(subs, ch.suite)
		}
	}
	return subs
}

// Checks returns the checks registered directly with s.
func (s *Suite) Checks() []*Check {
	var checks []*Check
	for _, ch := range s.children {
		if ch.check != nil {
			checks = append(checks, ch.check)
		}
	}
	return checks
}

// Walk calls visit for every direct child of s, in registration order.
// Either check or sub is nil.
func (s *Suite) Walk(visit func(check *Check, sub *Suite)) {
	for _, ch := range s.children {
		visit(ch.check, ch.suite)
	}
}

// CheckCount returns the number of checks of s and all its sub-suites.
func (s *Suite) CheckCount() int {
	n := 0
	for _, ch := range s.children {
		if ch.check != nil {
			n++
		} else {
			n += ch.suite.CheckCount()
		}
	}
	return n
}

// String renders the suite as a tree, for debugging. Titles of checks
// which have not been run yet are resolved with the current viewport.
func (s *Suite) String() string {
	printer := tp.New()
	s.print(printer.AddBranch(s.Name))
	return printer.String()
}

func (s *Suite) print(branch tp.Tree) {
	for _, ch := range s.children {
		if ch.check != nil {
			branch.AddNode(ch.check.resolveTitle())
		} else {
			ch.suite.print(branch.AddBranch(ch.suite.Name))
		}
	}
}

// runHooks runs the before hooks, stopping at the first failing one.
func (s *Suite) runHooks() error {
	for _, hook := range s.before {
		if err := safely(hook); err != nil {
			return fmt.Errorf("before hook of %q: %w", s.Name, err)
		}
	}
	return nil
}

// safely runs f, turning a panic into an error.
func safely(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return f()
}

// --- Checks ----------------------------------------------------------------

// Check is a single named pass/fail check.
type Check struct {
	suite     *Suite
	titleFunc func() string
	title     string
	body      func(t assert.TestingT)
	failure   *Failure
	done      bool
	// for property checks
	property    string
	expected    string
	actual      string
	diagnostics func() []style.KeyValue
}

// Suite returns the suite the check belongs to.
func (c *Check) Suite() *Suite {
	return c.suite
}

// Title returns the title of the check. Titles may depend on the viewport
// width; they are resolved when a check starts to run.
func (c *Check) Title() string {
	if c.title == "" {
		return c.resolveTitle()
	}
	return c.title
}

func (c *Check) resolveTitle() string {
	c.title = c.titleFunc()
	return c.title
}

// Passed is true if the check has been run without failure.
func (c *Check) Passed() bool {
	return c.done && c.failure == nil
}

// Failure returns the failure of the last run, or nil.
func (c *Check) Failure() *Failure {
	return c.failure
}

// execute runs the body of the check and records the outcome. The title
// has to be resolved beforehand.
func (c *Check) execute(hookErr error) bool {
	c.failure, c.done = nil, true
	c.actual = ""
	rec := &recorder{}
	if hookErr != nil {
		rec.Errorf("%v", hookErr)
	} else {
		func() {
			defer func() {
				if r := recover(); r != nil {
					tracer().Errorf("check %q panicked: %v", c.title, r)
					rec.Errorf("panic: %v", r)
				}
			}()
			c.body(rec)
		}()
	}
	if len(rec.messages) == 0 {
		return true
	}
	c.failure = &Failure{
		Path:     strings.Join(append(c.suite.Path(), c.title), " / "),
		Property: c.property,
		Expected: c.expected,
		Actual:   c.actual,
		Messages: rec.messages,
	}
	if c.diagnostics != nil {
		c.failure.Diagnostics = c.diagnostics()
	}
	return false
}

// recorder collects failures reported by assertions.
type recorder struct {
	messages []string
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.messages = append(r.messages, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

var _ assert.TestingT = &recorder{}

// Failure describes why a check failed.
type Failure struct {
	Path        string           // suite names and check title
	Property    string           // for property checks
	Expected    string           // effective expected value
	Actual      string           // computed value
	Messages    []string         // as reported by assertions
	Diagnostics []style.KeyValue // full computed style, if configured
}

func (f *Failure) Error() string {
	if f.Property != "" && f.Actual != "" {
		return fmt.Sprintf("%s: expected %q, got %q", f.Property, f.Expected, f.Actual)
	}
	if len(f.Messages) > 0 {
		return firstLine(f.Messages[0])
	}
	return "check failed"
}

// firstLine extracts the essential line of an assertion message.
func firstLine(msg string) string {
	for _, line := range strings.Split(msg, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Error:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Error:"))
		}
	}
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}

package harness

import (
	"testing"
	"time"
)

// Reporter receives the events of a suite run.
type Reporter interface {
	OnCheckStart(c *Check)
	OnPass(c *Check)
	OnFail(c *Check, f *Failure)
	OnSuiteEnd(sum Summary)
}

// Summary counts the outcome of a suite, including all of its sub-suites.
type Summary struct {
	Suite    *Suite
	Passed   int
	Failed   int
	Duration time.Duration
}

// Total is the number of checks run.
func (sum Summary) Total() int {
	return sum.Passed + sum.Failed
}

// OK is true if no check failed.
func (sum Summary) OK() bool {
	return sum.Failed == 0
}

func (sum *Summary) add(other Summary) {
	sum.Passed += other.Passed
	sum.Failed += other.Failed
}

// Run runs all checks of a suite, depth first in registration order, and
// reports to r. r may be nil.
func (s *Suite) Run(r Reporter) Summary {
	if r == nil {
		r = nopReporter{}
	}
	return s.run(r, nil)
}

// run runs the suite. If hookErr is set, a hook of an enclosing suite has
// failed and all checks fail with it.
func (s *Suite) run(r Reporter, hookErr error) Summary {
	start := time.Now()
	sum := Summary{Suite: s}
	if hookErr == nil {
		hookErr = s.runHooks()
	}
	for _, ch := range s.children {
		if ch.suite != nil {
			sum.add(ch.suite.run(r, hookErr))
			continue
		}
		c := ch.check
		c.resolveTitle()
		r.OnCheckStart(c)
		if c.execute(hookErr) {
			sum.Passed++
			r.OnPass(c)
		} else {
			sum.Failed++
			r.OnFail(c, c.failure)
		}
	}
	sum.Duration = time.Since(start)
	r.OnSuiteEnd(sum)
	return sum
}

// RunT runs a suite as Go sub-tests, one per check, nested by suites.
func RunT(t *testing.T, s *Suite) {
	t.Helper()
	runT(t, s, nil)
}

func runT(t *testing.T, s *Suite, hookErr error) {
	if hookErr == nil {
		hookErr = s.runHooks()
	}
	for _, ch := range s.children {
		if ch.suite != nil {
			sub := ch.suite
			t.Run(sub.Name, func(t *testing.T) {
				runT(t, sub, hookErr)
			})
			continue
		}
		c := ch.check
		t.Run(c.resolveTitle(), func(t *testing.T) {
			if !c.execute(hookErr) {
				for _, msg := range c.failure.Messages {
					t.Error(msg)
				}
			}
		})
	}
}

type nopReporter struct{}

func (nopReporter) OnCheckStart(*Check)     {}
func (nopReporter) OnPass(*Check)           {}
func (nopReporter) OnFail(*Check, *Failure) {}
func (nopReporter) OnSuiteEnd(Summary)      {}

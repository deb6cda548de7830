package report

import "github.com/npillmayer/stylecheck/harness"

type multi []harness.Reporter

// Multi returns a reporter passing every event to all of rs, in order.
func Multi(rs ...harness.Reporter) harness.Reporter {
	return multi(rs)
}

func (m multi) OnCheckStart(c *harness.Check) {
	for _, r := range m {
		r.OnCheckStart(c)
	}
}

func (m multi) OnPass(c *harness.Check) {
	for _, r := range m {
		r.OnPass(c)
	}
}

func (m multi) OnFail(c *harness.Check, f *harness.Failure) {
	for _, r := range m {
		r.OnFail(c, f)
	}
}

func (m multi) OnSuiteEnd(sum harness.Summary) {
	for _, r := range m {
		r.OnSuiteEnd(sum)
	}
}

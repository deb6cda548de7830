package report

import (
	"encoding/json"
	"io"

	"github.com/npillmayer/stylecheck/harness"
)

// JSON writes a summary of a top-level suite as a JSON document.
type JSON struct {
	w      io.Writer
	checks []checkResult
	err    error
}

var _ harness.Reporter = &JSON{}

type checkResult struct {
	Path     []string `json:"path"`
	Title    string   `json:"title"`
	Passed   bool     `json:"passed"`
	Property string   `json:"property,omitempty"`
	Expected string   `json:"expected,omitempty"`
	Actual   string   `json:"actual,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type suiteResult struct {
	Suite  string        `json:"suite"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Checks []checkResult `json:"checks"`
}

// NewJSON creates a JSON reporter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// Err returns the first error writing a summary.
func (j *JSON) Err() error {
	return j.err
}

func (j *JSON) OnCheckStart(*harness.Check) {}

func (j *JSON) OnPass(c *harness.Check) {
	j.checks = append(j.checks, checkResult{
		Path:   c.Suite().Path(),
		Title:  c.Title(),
		Passed: true,
	})
}

func (j *JSON) OnFail(c *harness.Check, f *harness.Failure) {
	j.checks = append(j.checks, checkResult{
		Path:     c.Suite().Path(),
		Title:    c.Title(),
		Property: f.Property,
		Expected: f.Expected,
		Actual:   f.Actual,
		Error:    f.Error(),
	})
}

func (j *JSON) OnSuiteEnd(sum harness.Summary) {
	if sum.Suite.Depth() > 0 {
		return
	}
	result := suiteResult{
		Suite:  sum.Suite.Name,
		Passed: sum.Passed,
		Failed: sum.Failed,
		Checks: j.checks,
	}
	if result.Checks == nil {
		result.Checks = []checkResult{}
	}
	j.checks = nil
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil && j.err == nil {
		tracer().Errorf("cannot write JSON report: %v", err)
		j.err = err
	}
}

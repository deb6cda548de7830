package harness

import (
	"fmt"
	"strings"

	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/npillmayer/stylecheck/dom/style/css"
	"github.com/stretchr/testify/assert"
)

// Tolerance is the maximum difference between two pixel values still
// considered equal.
const Tolerance = 0.6

// epsilon absorbs float noise for differences of exactly Tolerance.
const epsilon = 1e-9

// Compare asserts that the computed value actual matches the expected
// value effective for a property, reporting failures to t.
//
// An empty actual value is a failure of its own. Expected values ending in
// "px" are compared numerically, with a tolerance of 0.6 pixels; every
// other value, and box-shadow values in any case, must match exactly.
func Compare(t assert.TestingT, property, effective string, actual style.Property) bool {
	if actual.IsEmpty() {
		return assert.Fail(t, fmt.Sprintf("property %s did not return a value", property))
	}
	a := actual.String()
	if style.HyphenKey(property) == "box-shadow" || !strings.HasSuffix(effective, "px") {
		return assert.Equal(t, effective, a, "%s: expected %q, got %q", property, effective, a)
	}
	return assert.InDelta(t, css.ParseFloat(effective), css.ParseFloat(a), Tolerance+epsilon,
		"%s: expected %q, got %q", property, effective, a)
}

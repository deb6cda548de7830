package cssom

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/stylecheck/dom/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the styled node tree, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, @media blocks flattened
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
	Media() Media                // media condition the rule is nested in
}

// Media is a viewport-width condition from an `@media` prelude. The zero
// value matches every width.
type Media struct {
	Query    string // raw prelude, for diagnostics
	MinWidth int    // 0 = unbounded
	MaxWidth int    // 0 = unbounded
	Never    bool   // a condition we cannot evaluate statically, e.g. print
}

var (
	minWidthRe = regexp.MustCompile(`min-width\s*:\s*([0-9.]+)px`)
	maxWidthRe = regexp.MustCompile(`max-width\s*:\s*([0-9.]+)px`)
)

// ParseMedia interprets the prelude of an `@media` rule. Only width
// features in px are understood; media types other than `screen` and
// `all` never match.
func ParseMedia(prelude string) Media {
	m := Media{Query: strings.TrimSpace(prelude)}
	q := strings.ToLower(m.Query)
	if strings.Contains(q, "print") || strings.Contains(q, "speech") {
		m.Never = true
		return m
	}
	if sub := minWidthRe.FindStringSubmatch(q); sub != nil {
		m.MinWidth = atoi(sub[1])
	}
	if sub := maxWidthRe.FindStringSubmatch(q); sub != nil {
		m.MaxWidth = atoi(sub[1])
	}
	tracer().Debugf("media %q => min=%d max=%d", m.Query, m.MinWidth, m.MaxWidth)
	return m
}

func atoi(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// Matches is true if a viewport of the given width satisfies the condition.
func (m Media) Matches(width int) bool {
	if m.Never {
		return false
	}
	if m.MinWidth > 0 && width < m.MinWidth {
		return false
	}
	if m.MaxWidth > 0 && width > m.MaxWidth {
		return false
	}
	return true
}

package harness

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/stylecheck/dom"
)

// fingerprintLength is the number of characters of text content shown in
// a label.
const fingerprintLength = 30

// Label creates a human readable name for the index-th of total elements
// resolved from selector. It is made of
//
//   - the selector's leading class, if the element carries it, else the
//     element's first class, else its tag;
//   - "(i of N)", if more than one element has been resolved;
//   - the start of the element's text, or else its id.
//
// A context, if given, is prepended.
func Label(el dom.Element, selector string, index, total int, context string) string {
	var b strings.Builder
	if context != "" {
		b.WriteString(context)
		b.WriteString(": ")
	}
	name := strings.ToLower(el.Tag())
	if cls := leadingClass(selector); cls != "" && dom.HasClass(el, cls) {
		name = cls
	} else if classes := el.Classes(); len(classes) > 0 {
		name = classes[0]
	}
	b.WriteString(name)
	if total > 1 {
		fmt.Fprintf(&b, " (%d of %d)", index+1, total)
	}
	if text := fingerprint(el.Text()); text != "" {
		fmt.Fprintf(&b, " %q", text)
	} else if id := el.ID(); id != "" {
		b.WriteString(" #" + id)
	}
	return b.String()
}

// leadingClass returns the class name a selector starts with, if it is a
// class selector.
func leadingClass(selector string) string {
	selector = strings.TrimSpace(selector)
	if !strings.HasPrefix(selector, ".") {
		return ""
	}
	end := 1
	for end < len(selector) && isNameChar(selector[end]) {
		end++
	}
	return selector[1:end]
}

func isNameChar(c byte) bool {
	return c == '-' || c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' || c >= utf8.RuneSelf
}

func fingerprint(text string) string {
	text = dom.CollapseWhitespace(text)
	if utf8.RuneCountInString(text) <= fingerprintLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:fingerprintLength]) + "…"
}

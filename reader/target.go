package reader

import (
	"fmt"

	"github.com/npillmayer/stylecheck/dom"
)

type targetKind uint8

const (
	selectorTarget targetKind = iota
	singleTarget
	collectionTarget
)

// Target is what style checks run against: either a selector, resolved
// when needed, or elements resolved beforehand.
//
//     type Target
//         = Selector string
//         | Single Element
//         | Collection []Element
type Target struct {
	kind     targetKind
	selector string
	elements []dom.Element
}

// Selector creates a target for all elements matching a CSS selector.
func Selector(s string) Target {
	return Target{kind: selectorTarget, selector: s}
}

// Single creates a target for a single element.
func Single(el dom.Element) Target {
	return Target{kind: singleTarget, elements: []dom.Element{el}}
}

// Collection creates a target for a list of elements.
func Collection(els ...dom.Element) Target {
	return Target{kind: collectionTarget, elements: els}
}

// SelectorText returns the selector of a selector target, and "" for
// every other target.
func (t Target) SelectorText() string {
	if t.kind == selectorTarget {
		return t.selector
	}
	return ""
}

func (t Target) String() string {
	switch t.kind {
	case selectorTarget:
		return t.selector
	case singleTarget:
		if t.elements[0] == nil {
			return "<nil>"
		}
		return "<" + t.elements[0].Tag() + ">"
	}
	return fmt.Sprintf("collection of %d", len(t.elements))
}

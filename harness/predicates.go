package harness

import (
	"fmt"
	"math"

	"github.com/npillmayer/stylecheck/dom"
	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/npillmayer/stylecheck/dom/style/css"
	"github.com/npillmayer/stylecheck/reader"
	"github.com/stretchr/testify/assert"
)

// Subject is the element a unique assertion is evaluated for.
type Subject struct {
	Element dom.Element
	reader  *reader.Reader
}

// Style returns the computed value of a property of the subject.
func (s Subject) Style(property string) (style.Property, error) {
	return s.reader.ReadProperty(s.Element, property)
}

// Geometry returns the bounding box of the subject.
func (s Subject) Geometry() (dom.Rect, error) {
	return s.reader.ReadGeometry(s.Element)
}

// Predicate is an arbitrary assertion about an element. It may report
// details to t; if it returns false without doing so, a generic failure
// is reported.
type Predicate func(t assert.TestingT, s Subject) bool

// UniqueAssertion is a named predicate, checked for every element of a
// target in addition to the expectation table.
type UniqueAssertion struct {
	Name      string
	Predicate Predicate
}

// MinLength holds if the computed length of property is strictly greater
// than px pixels.
func MinLength(property string, px float64) Predicate {
	return func(t assert.TestingT, s Subject) bool {
		v, err := s.Style(property)
		if !assert.NoError(t, err) {
			return false
		}
		n := css.PxValue(css.ParseDimen(v))
		if math.IsNaN(n) {
			return assert.Fail(t, fmt.Sprintf("%s: %q is not a length", property, v))
		}
		return assert.Greater(t, n, px, "%s: expected more than %gpx, got %q", property, px, v)
	}
}

// BorderOrShadow holds if an element has a visible border width or a box
// shadow.
func BorderOrShadow() Predicate {
	return func(t assert.TestingT, s Subject) bool {
		width, err := s.Style("borderWidth")
		if !assert.NoError(t, err) {
			return false
		}
		shadow, err := s.Style("boxShadow")
		if !assert.NoError(t, err) {
			return false
		}
		hasBorder := !width.IsEmpty() && width != "0px"
		hasShadow := !shadow.IsEmpty() && shadow != "none"
		if hasBorder || hasShadow {
			return true
		}
		return assert.Fail(t, "expected either a border or a box shadow, have neither")
	}
}

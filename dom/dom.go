package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/stylecheck/dom/style"
)

// Errors returned by documents.
var (
	ErrNotFound       = errors.New("element not found in document")
	ErrForeignElement = errors.New("element belongs to another document")
)

// Element is a handle for an element node of a document.
type Element interface {
	Tag() string       // lowercase tag name, e.g. "div"
	Classes() []string // class names in attribute order
	ID() string        // value of the id attribute, or ""
	Text() string      // visible text content, unnormalized
}

// Document is a rendered document with computed styles and geometry.
type Document interface {
	// QueryAll returns all elements matching a CSS selector, in document
	// order. A syntactically invalid selector is an error, no match is not.
	QueryAll(selector string) ([]Element, error)
	// ComputedStyle returns the computed values of all properties known to
	// the document, keyed by hyphenated property name.
	ComputedStyle(Element) (*style.PropertyMap, error)
	// BoundingRect returns the border box of an element in the current
	// layout. It is never cached.
	BoundingRect(Element) (Rect, error)
	// ViewportWidth returns the current width of the viewport in CSS pixels.
	ViewportWidth() (int, error)
	// InsertScratch inserts an unstyled element with the same tag as el
	// directly after el.
	InsertScratch(el Element) (Element, error)
	// RemoveScratch removes an element created by InsertScratch.
	RemoveScratch(scratch Element) error
}

// Rect is the bounding box of an element, in CSS pixels.
type Rect struct {
	Top, Left, Width, Height float64
	Bottom, Right            float64
}

// NewRect creates a rectangle from its origin and extent.
func NewRect(top, left, width, height float64) Rect {
	return Rect{
		Top:    top,
		Left:   left,
		Width:  width,
		Height: height,
		Bottom: top + height,
		Right:  left + width,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[top=%g left=%g width=%g height=%g]", r.Top, r.Left, r.Width, r.Height)
}

// OverlapsVertically is true if neither box lies entirely above the other.
// Touching edges do not overlap.
func (r Rect) OverlapsVertically(other Rect) bool {
	return !(r.Bottom <= other.Top || r.Top >= other.Bottom)
}

// HasClass is true if el carries class name cls.
func HasClass(el Element, cls string) bool {
	for _, c := range el.Classes() {
		if c == cls {
			return true
		}
	}
	return false
}

// CollapseWhitespace trims s and replaces every run of white space by a
// single blank.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package static

import (
	"errors"
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/stylecheck/dom"
)

// ErrNoGeometry is returned for elements which have not been placed.
var ErrNoGeometry = errors.New("element has not been placed")

// LayoutFunc returns the bounding box of the i-th element matched by a
// placement selector, for a given viewport width.
type LayoutFunc func(viewport int, i int) dom.Rect

// Fixed places the i-th matched element at rects[i], independent of the
// viewport width. Elements beyond len(rects) get an empty rectangle.
func Fixed(rects ...dom.Rect) LayoutFunc {
	return func(_ int, i int) dom.Rect {
		if i < len(rects) {
			return rects[i]
		}
		return dom.Rect{}
	}
}

type placement struct {
	selector cascadia.Selector
	layout   LayoutFunc
}

// Place sets the geometry of all elements matching selector. Later
// placements take precedence over earlier ones.
func (d *Document) Place(selector string, layout LayoutFunc) error {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	d.placements = append(d.placements, placement{selector: sel, layout: layout})
	return nil
}

// BoundingRect returns the box of el as placed by the most recent matching
// placement, evaluated for the current viewport width.
func (d *Document) BoundingRect(el dom.Element) (dom.Rect, error) {
	sn, err := d.styledNode(el)
	if err != nil {
		return dom.Rect{}, err
	}
	h := sn.HTMLNode()
	for i := len(d.placements) - 1; i >= 0; i-- {
		pl := d.placements[i]
		if !pl.selector.Match(h) {
			continue
		}
		index := d.gq.FindMatcher(pl.selector).IndexOfNode(h)
		return pl.layout(d.width, index), nil
	}
	return dom.Rect{}, fmt.Errorf("<%s>: %w", h.Data, ErrNoGeometry)
}

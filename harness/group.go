package harness

import (
	"fmt"

	"github.com/npillmayer/stylecheck/dom"
	"github.com/npillmayer/stylecheck/reader"
	"github.com/stretchr/testify/assert"
)

// MatchingWidth registers a check that all elements of the targets have
// the same rendered width. A target without elements has no width, and the
// check fails. Targets are resolved immediately, geometry is read when the
// check runs.
func (h *Harness) MatchingWidth(s *Suite, title string, targets ...reader.Target) error {
	resolved, err := h.resolveEach(targets)
	if err != nil {
		return err
	}
	s.It(title, func(t assert.TestingT) {
		var els []dom.Element
		for i, group := range resolved {
			if len(group) == 0 {
				assert.Fail(t, fmt.Sprintf("no element matches %s, width is undefined", targets[i]))
				return
			}
			els = append(els, group...)
		}
		rects, ok := h.geometry(t, els)
		if !ok {
			return
		}
		if n := DistinctWidths(rects); n > 1 {
			widths := make([]float64, len(rects))
			for i, r := range rects {
				widths[i] = r.Width
			}
			assert.Fail(t, fmt.Sprintf("expected a single width, have %d different: %v", n, widths))
		}
	})
	return nil
}

// NoVerticalOverlap registers a check that no two elements of the targets
// overlap vertically. Targets are resolved immediately, geometry is read
// when the check runs.
func (h *Harness) NoVerticalOverlap(s *Suite, title string, targets ...reader.Target) error {
	els, err := h.resolveAll(targets)
	if err != nil {
		return err
	}
	s.It(title, func(t assert.TestingT) {
		rects, ok := h.geometry(t, els)
		if !ok {
			return
		}
		if i, j, overlap := FirstOverlap(rects); overlap {
			assert.Fail(t, fmt.Sprintf("<%s> %v overlaps <%s> %v",
				els[i].Tag(), rects[i], els[j].Tag(), rects[j]))
		}
	})
	return nil
}

// AllExist registers a check that every target resolves to at least one
// element. Selector targets are resolved again when the check runs.
func (h *Harness) AllExist(s *Suite, title string, targets ...reader.Target) error {
	if _, err := h.resolveAll(targets); err != nil {
		return err
	}
	s.It(title, func(t assert.TestingT) {
		for _, target := range targets {
			els, err := h.reader.Resolve(target)
			if assert.NoError(t, err) {
				assert.NotEmpty(t, els, "no element matches %s", target)
			}
		}
	})
	return nil
}

func (h *Harness) resolveAll(targets []reader.Target) ([]dom.Element, error) {
	resolved, err := h.resolveEach(targets)
	if err != nil {
		return nil, err
	}
	var all []dom.Element
	for _, els := range resolved {
		all = append(all, els...)
	}
	return all, nil
}

// resolveEach resolves targets one by one, keeping empty results.
func (h *Harness) resolveEach(targets []reader.Target) ([][]dom.Element, error) {
	resolved := make([][]dom.Element, len(targets))
	for i, target := range targets {
		els, err := h.reader.Resolve(target)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve %v: %w", target, err)
		}
		resolved[i] = els
	}
	return resolved, nil
}

func (h *Harness) geometry(t assert.TestingT, els []dom.Element) ([]dom.Rect, bool) {
	if len(els) == 0 {
		return nil, assert.Fail(t, "no elements to compare")
	}
	rects := make([]dom.Rect, len(els))
	for i, el := range els {
		r, err := h.reader.ReadGeometry(el)
		if !assert.NoError(t, err, "geometry of <%s>", el.Tag()) {
			return nil, false
		}
		rects[i] = r
	}
	return rects, true
}

// DistinctWidths counts the different widths of rects.
func DistinctWidths(rects []dom.Rect) int {
	seen := make(map[float64]struct{}, len(rects))
	for _, r := range rects {
		seen[r.Width] = struct{}{}
	}
	return len(seen)
}

// FirstOverlap returns the indices of the first pair of rects which
// overlap vertically.
func FirstOverlap(rects []dom.Rect) (i, j int, ok bool) {
	for i = 0; i < len(rects); i++ {
		for j = i + 1; j < len(rects); j++ {
			if rects[i].OverlapsVertically(rects[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

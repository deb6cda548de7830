package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOverlapsVertically(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.dom")
	defer teardown()
	//
	a := NewRect(0, 0, 100, 10)
	for _, x := range []struct {
		b       Rect
		overlap bool
	}{
		{NewRect(10, 0, 100, 10), false}, // touching
		{NewRect(9, 0, 100, 11), true},
		{NewRect(-10, 0, 100, 10), false},
		{NewRect(-5, 0, 100, 10), true},
		{NewRect(2, 50, 10, 2), true}, // contained
		{NewRect(30, 0, 100, 10), false},
	} {
		if a.OverlapsVertically(x.b) != x.overlap {
			t.Errorf("expected overlap of %v and %v to be %v", a, x.b, x.overlap)
		}
		if x.b.OverlapsVertically(a) != x.overlap {
			t.Errorf("expected overlap to be symmetric for %v and %v", x.b, a)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if s := CollapseWhitespace("  Hello,\n\t  world  "); s != "Hello, world" {
		t.Errorf("expected 'Hello, world', is %q", s)
	}
	if s := CollapseWhitespace(" \n "); s != "" {
		t.Errorf("expected empty string, is %q", s)
	}
}

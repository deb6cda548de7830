package cssom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMediaMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.css")
	defer teardown()
	//
	for _, x := range []struct {
		prelude string
		width   int
		matches bool
	}{
		{"", 320, true},
		{"(min-width: 768px)", 767, false},
		{"(min-width: 768px)", 768, true},
		{"screen and (max-width: 600.5px)", 600, true},
		{"screen and (max-width: 600.5px)", 601, false},
		{"(min-width: 500px) and (max-width: 900px)", 700, true},
		{"(min-width: 500px) and (max-width: 900px)", 901, false},
		{"print", 1280, false},
		{"(MIN-WIDTH: 768PX)", 500, false},
	} {
		if m := ParseMedia(x.prelude); m.Matches(x.width) != x.matches {
			t.Errorf("expected %q at %dpx to match=%v, is %v", x.prelude, x.width, x.matches, !x.matches)
		}
	}
}

package harness

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecheck/dom"
	"github.com/npillmayer/stylecheck/dom/static"
	"github.com/npillmayer/stylecheck/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistinctWidths(t *testing.T) {
	r := func(w float64) dom.Rect { return dom.NewRect(0, 0, w, 10) }
	assert.Equal(t, 0, DistinctWidths(nil))
	assert.Equal(t, 1, DistinctWidths([]dom.Rect{r(500), r(500), r(500)}))
	assert.Equal(t, 2, DistinctWidths([]dom.Rect{r(500), r(400), r(500)}))
	assert.Equal(t, 2, DistinctWidths([]dom.Rect{r(500), r(500.3)}))
}

func TestFirstOverlap(t *testing.T) {
	a := dom.NewRect(0, 0, 100, 10)
	b := dom.NewRect(10, 0, 100, 10)
	c := dom.NewRect(9, 0, 100, 11)
	_, _, ok := FirstOverlap([]dom.Rect{a, b})
	assert.False(t, ok, "touching edges do not overlap")
	i, j, ok := FirstOverlap([]dom.Rect{a, b, c})
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 2}, [2]int{i, j})
	_, _, ok = FirstOverlap([]dom.Rect{c, a})
	assert.True(t, ok, "overlap is symmetric")
}

func placeSupblocks(t *testing.T, doc *static.Document, layout static.LayoutFunc) {
	t.Helper()
	require.NoError(t, doc.Place(".supblock", layout))
}

func TestGroupChecks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.harness")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	doc := loadPage(t, 500)
	stacked := func(viewport int, i int) dom.Rect {
		return dom.NewRect(float64(200*i), 16, float64(viewport-32), 150)
	}
	placeSupblocks(t, doc, stacked)
	h := New(doc)
	root := NewSuite("Supblock Layout Structure")
	sections := []reader.Target{
		reader.Selector(".supblock--header"),
		reader.Selector(".supblock--main"),
		reader.Selector(".supblock--footer"),
	}
	require.NoError(t, h.AllExist(root, "Header, main, and footer should exist", sections...))
	require.NoError(t, h.MatchingWidth(root, "Header, main, and footer should have matching width", sections...))
	require.NoError(t, h.NoVerticalOverlap(root, "Cards should not visually overlap", reader.Selector(".supblock")))
	assert.True(t, root.Run(nil).OK())
	//
	placeSupblocks(t, doc, func(viewport int, i int) dom.Rect {
		if i == 2 {
			return dom.NewRect(300, 16, 100, 150)
		}
		return stacked(viewport, i)
	})
	ev := &events{}
	sum := root.Run(ev)
	assert.Equal(t, 1, sum.Passed)
	assert.Equal(t, 2, sum.Failed, "footer is narrow and overlaps main")
	//
	root = NewSuite("missing")
	require.NoError(t, h.AllExist(root, "exists", reader.Selector("header"), reader.Selector("aside")))
	require.NoError(t, h.MatchingWidth(root, "nothing to compare", reader.Selector("aside")))
	require.NoError(t, h.MatchingWidth(root, "header and a missing section",
		reader.Selector(".supblock--header"), reader.Selector(".supblock--main"), reader.Selector("aside")))
	ev = &events{}
	sum = root.Run(ev)
	assert.Equal(t, 3, sum.Failed)
	if assert.Len(t, ev.failures, 3) {
		assert.Contains(t, ev.failures[2].Error(), "no element matches aside")
	}
}

func TestGroupChecksWithoutGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.harness")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	h := New(loadPage(t, 500))
	root := NewSuite("page")
	require.NoError(t, h.NoVerticalOverlap(root, "no overlap", reader.Selector(".supblock")))
	ev := &events{}
	assert.Equal(t, 1, root.Run(ev).Failed)
}

package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecheck/dom"
	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePage answers the scripts of this package from canned data.
type fakePage struct {
	width    int
	elements map[string][]elementData
	styles   map[string]map[string]string // by ref.String()
	rects    map[string]dom.Rect
	scratch  map[string]string // id => tag
	calls    []string
}

func newFakePage() *fakePage {
	return &fakePage{
		width: 1024,
		elements: map[string][]elementData{
			".card": {
				{Tag: "article", Classes: []string{"card"}, Text: "First"},
				{Tag: "article", Classes: []string{"card", "card--wide"}, ID: "second"},
			},
		},
		styles: map[string]map[string]string{
			".card[0]": {"color": "rgb(30, 41, 59)", "padding-top": "16px"},
		},
		rects: map[string]dom.Rect{
			".card[1]": dom.NewRect(100, 0, 300, 50),
		},
		scratch: map[string]string{},
	}
}

func (f *fakePage) Evaluate(ctx context.Context, expr string, out any) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("expected evaluation to have a deadline")
	}
	name := strings.TrimPrefix(expr, "(function ")
	name = name[:strings.IndexByte(name, '(')]
	at := strings.LastIndex(expr, ").apply(null, ")
	var args []json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSuffix(expr[at+len(").apply(null, "):], ")")), &args); err != nil {
		return err
	}
	f.calls = append(f.calls, name)
	var result any
	switch name {
	case "queryAll":
		var sel string
		json.Unmarshal(args[0], &sel)
		if strings.HasSuffix(sel, "[") {
			return errors.New("SyntaxError: not a valid selector")
		}
		els := f.elements[sel]
		if els == nil {
			els = []elementData{}
		}
		result = els
	case "computedStyle":
		var r ref
		json.Unmarshal(args[0], &r)
		if st, ok := f.styles[r.String()]; ok {
			result = st
		}
	case "boundingRect":
		var r ref
		json.Unmarshal(args[0], &r)
		if rect, ok := f.rects[r.String()]; ok {
			result = rect
		}
	case "viewportWidth":
		result = f.width
	case "insertScratch":
		var r ref
		var id string
		json.Unmarshal(args[0], &r)
		json.Unmarshal(args[1], &id)
		if els := f.elements[r.Selector]; r.Index < len(els) {
			f.scratch[id] = els[r.Index].Tag
			result = elementData{Tag: els[r.Index].Tag, Classes: []string{}}
		}
	case "removeScratch":
		var id string
		json.Unmarshal(args[0], &id)
		_, ok := f.scratch[id]
		delete(f.scratch, id)
		result = ok
	default:
		return fmt.Errorf("unknown script %q", name)
	}
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

type resizingPage struct {
	*fakePage
}

func (r resizingPage) Resize(ctx context.Context, width, height int) error {
	r.width = width
	return nil
}

func TestQueryAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.browser")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	page := New(newFakePage())
	els, err := page.QueryAll(".card")
	require.NoError(t, err)
	require.Len(t, els, 2)
	assert.Equal(t, "article", els[1].Tag())
	assert.Equal(t, []string{"card", "card--wide"}, els[1].Classes())
	assert.Equal(t, "second", els[1].ID())
	assert.Equal(t, "First", els[0].Text())
	els, err = page.QueryAll(".none")
	require.NoError(t, err)
	assert.Empty(t, els)
	_, err = page.QueryAll(".card[")
	assert.Error(t, err)
}

func TestComputedStyleAndGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.browser")
	defer teardown()
	//
	page := New(newFakePage())
	els, _ := page.QueryAll(".card")
	pmap, err := page.ComputedStyle(els[0])
	require.NoError(t, err)
	p, _ := pmap.Property("padding-top")
	assert.Equal(t, style.Property("16px"), p)
	_, err = page.ComputedStyle(els[1])
	assert.True(t, errors.Is(err, dom.ErrNotFound))
	//
	r, err := page.BoundingRect(els[1])
	require.NoError(t, err)
	assert.Equal(t, 150.0, r.Bottom)
	_, err = page.BoundingRect(els[0])
	assert.True(t, errors.Is(err, dom.ErrNotFound))
}

func TestForeignElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.browser")
	defer teardown()
	//
	fake := newFakePage()
	els, _ := New(fake).QueryAll(".card")
	_, err := New(fake).ComputedStyle(els[0])
	assert.True(t, errors.Is(err, dom.ErrForeignElement))
}

func TestScratchElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.browser")
	defer teardown()
	//
	fake := newFakePage()
	page := New(fake)
	els, _ := page.QueryAll(".card")
	scratch, err := page.InsertScratch(els[0])
	require.NoError(t, err)
	assert.Equal(t, "article", scratch.Tag())
	assert.Len(t, fake.scratch, 1)
	assert.Error(t, page.RemoveScratch(els[0]))
	require.NoError(t, page.RemoveScratch(scratch))
	assert.Empty(t, fake.scratch)
	assert.True(t, errors.Is(page.RemoveScratch(scratch), dom.ErrNotFound))
}

func TestViewport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.browser")
	defer teardown()
	//
	fake := newFakePage()
	page := New(fake)
	w, err := page.ViewportWidth()
	require.NoError(t, err)
	assert.Equal(t, 1024, w)
	assert.True(t, errors.Is(page.SetViewportWidth(500), ErrNoResize))
	//
	page = New(resizingPage{fake})
	require.NoError(t, page.SetViewportWidth(500))
	w, _ = page.ViewportWidth()
	assert.Equal(t, 500, w)
}

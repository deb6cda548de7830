package harness

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecheck/dom"
	"github.com/npillmayer/stylecheck/dom/static"
	"github.com/npillmayer/stylecheck/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bodyTypography = [][]string{
	{"color", "rgb(30, 41, 59)"},
	{"fontFamily", "Inter, sans-serif"},
	{"fontSize", "13.6px"},
	{"lineHeight", "20.4px"},
}

var supblockLayout = [][]string{
	{"maxWidth", "1280px"},
	{"marginLeft", "0px"},
	{"marginRight", "0px"},
	{"paddingTop", "16px", "32px"},
	{"paddingRight", "16px", "32px"},
	{"paddingBottom", "16px", "32px"},
	{"paddingLeft", "16px", "32px"},
}

var supblockAppearance = [][]string{
	{"backgroundColor", "rgb(255, 255, 255)"},
	{"borderRadius", "12px"},
	{"boxShadow", "rgba(0, 0, 0, 0) 0px 0px 0px 0px, rgba(0, 0, 0, 0) 0px 0px 0px 0px, rgba(0, 0, 0, 0.1) 0px 20px 25px -5px, rgba(0, 0, 0, 0.1) 0px 8px 10px -6px"},
}

// supblocksSuite registers the checks for the supblocks page.
func supblocksSuite(t *testing.T, doc *static.Document) *Suite {
	t.Helper()
	h := New(doc)
	root := NewSuite("Supblocks")
	body := NewTable().
		Rows("Typography", bodyTypography...).
		Rows("Layout",
			[]string{"paddingTop", "16px", "32px"},
			[]string{"paddingRight", "16px", "32px"},
			[]string{"paddingBottom", "16px", "32px"},
			[]string{"paddingLeft", "16px", "32px"}).
		Rows("Appearance", []string{"backgroundColor", "rgb(241, 245, 249)"})
	require.NoError(t, h.Styles(root, reader.Selector("body"), body))
	var sections []reader.Target
	for _, section := range []string{"header", "main", "footer"} {
		marginBottom := "32px"
		if section == "footer" {
			marginBottom = "0px"
		}
		table := NewTable().
			Rows("Typography", bodyTypography...).
			Rows("Layout", supblockLayout...).
			Rows("Appearance", supblockAppearance...).
			Rows("Layout (unique)", []string{"marginBottom", marginBottom})
		target := reader.Selector(".supblock--" + section)
		require.NoError(t, h.Styles(root, target, table,
			WithUnique("should have inner padding > 10px", MinLength("padding", 10)),
			WithUnique("should have either border or shadow", BorderOrShadow()),
		))
		sections = append(sections, target)
	}
	structure := root.Describe("Supblock Layout Structure", nil)
	require.NoError(t, h.AllExist(structure, "Header, main, and footer should exist", sections...))
	require.NoError(t, h.MatchingWidth(structure, "Header, main, and footer should have matching width", sections...))
	overlap := root.Describe("Card Overlap Test", nil)
	require.NoError(t, h.NoVerticalOverlap(overlap, "Cards should not visually overlap", reader.Selector(".supblock")))
	return root
}

func TestSupblocksRegression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.harness")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	doc := loadPage(t, 500)
	require.NoError(t, doc.Place(".supblock", func(viewport int, i int) dom.Rect {
		return dom.NewRect(float64(16+200*i), 16, float64(viewport-32), 168)
	}))
	root := supblocksSuite(t, doc)
	// body: 1 + 4 + 4 + 1; per section: 1 + 4 + 7 + 3 + 1 + 2 unique; group: 3
	require.Equal(t, 10+3*18+3, root.CheckCount())
	for _, width := range []int{500, 900} {
		t.Run(fmt.Sprintf("width=%d", width), func(t *testing.T) {
			doc.SetViewportWidth(width)
			ev := &events{}
			sum := root.Run(ev)
			for _, f := range ev.failures {
				t.Errorf("%s: %v", f.Path, f)
			}
			assert.Equal(t, root.CheckCount(), sum.Passed)
		})
	}
	RunT(t, root)
}

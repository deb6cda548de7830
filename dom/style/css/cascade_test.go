package css_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/npillmayer/stylecheck/dom/style/css"
	"github.com/npillmayer/stylecheck/dom/styledtree"
	"golang.org/x/net/html"
)

func styled(tag string, parent *styledtree.StyNode, decls ...css.Declared) *styledtree.StyNode {
	h := &html.Node{Type: html.ElementNode, Data: tag}
	n := styledtree.NewNodeForHTMLNode(h)
	if parent != nil {
		parent.HTMLNode().AppendChild(h)
		parent.AddChild(n)
	}
	sn := styledtree.Node(n)
	sn.SetStyles(css.Specify(decls))
	return sn
}

func decl(key string, value style.Property) css.Declared {
	return css.Declared{Key: key, Value: value}
}

func TestCascadeSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.css")
	defer teardown()
	//
	byID := css.Declared{Key: "color", Value: "blue", Specificity: [3]int{1, 0, 0}, Order: 1}
	byClass := css.Declared{Key: "color", Value: "red", Specificity: [3]int{0, 1, 0}, Order: 2}
	pmap := css.Specify([]css.Declared{byID, byClass})
	if p, _ := pmap.Property("color"); p != "blue" {
		t.Errorf("expected id selector to win, color is %q", p)
	}
	inline := css.Declared{Key: "color", Value: "green", Inline: true, Order: 3}
	important := byClass
	important.Important = true
	pmap = css.Specify([]css.Declared{important, inline, byID})
	if p, _ := pmap.Property("color"); p != "red" {
		t.Errorf("expected !important to beat inline style, color is %q", p)
	}
}

func TestCascadeShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.css")
	defer teardown()
	//
	pmap := css.Specify([]css.Declared{
		decl("padding", "1rem 2rem"),
		{Key: "paddingLeft", Value: "3px", Order: 1},
	})
	for key, value := range map[string]style.Property{
		"padding-top":    "1rem",
		"padding-right":  "2rem",
		"padding-bottom": "1rem",
		"padding-left":   "3px",
	} {
		if p, _ := pmap.Property(key); p != value {
			t.Errorf("expected %s to be %q, is %q", key, value, p)
		}
	}
}

func TestComputedTypography(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.css")
	defer teardown()
	//
	root := styled("html", nil)
	body := styled("body", root,
		decl("color", "#1e293b"),
		decl("font-size", "0.85rem"),
		decl("line-height", "1.5"),
	)
	div := styled("div", body, decl("font-size", "20px"))
	for _, x := range []struct {
		node *styledtree.StyNode
		key  string
		want style.Property
	}{
		{body, "color", "rgb(30, 41, 59)"},
		{body, "fontSize", "13.6px"},
		{body, "line-height", "20.4px"},
		{div, "color", "rgb(30, 41, 59)"},
		{div, "line-height", "30px"},
		{body, "margin-top", "8px"},
		{div, "margin-top", "0px"},
		{div, "border-top-width", "0px"},
		{div, "border-top-color", "rgb(30, 41, 59)"},
		{div, "font-weight", "400"},
	} {
		p, err := css.GetProperty(x.node, x.key)
		if err != nil {
			t.Errorf("unexpected error for %s: %v", x.key, err)
			continue
		}
		if p != x.want {
			t.Errorf("expected <%s> %s to be %q, is %q", x.node.HTMLNode().Data, x.key, x.want, p)
		}
	}
}

func TestComputedLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.css")
	defer teardown()
	//
	root := styled("html", nil, decl("font-size", "10px"))
	div := styled("div", root,
		decl("font-size", "2em"),
		decl("margin", "0 auto"),
		decl("padding-top", "1.5em"),
		decl("max-width", "10rem"),
		decl("border", "thin solid #fff"),
		decl("z-index", "0"),
	)
	for _, x := range []struct {
		key  string
		want style.Property
	}{
		{"font-size", "20px"},
		{"margin-top", "0px"},
		{"margin-left", "auto"},
		{"padding-top", "30px"},
		{"max-width", "100px"},
		{"border-left-width", "1px"},
		{"border-left-color", "rgb(255, 255, 255)"},
		{"z-index", "0"},
	} {
		p, err := css.GetProperty(div, x.key)
		if err != nil {
			t.Errorf("unexpected error for %s: %v", x.key, err)
		} else if p != x.want {
			t.Errorf("expected %s to be %q, is %q", x.key, x.want, p)
		}
	}
}

func TestUnknownPropertyHasNoValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.css")
	defer teardown()
	//
	div := styled("div", nil)
	if _, err := css.GetProperty(div, "grid-template-areas"); err == nil {
		t.Errorf("expected unspecified property without default to fail")
	}
	if _, err := css.GetProperty(nil, "color"); err == nil {
		t.Errorf("expected nil node to fail")
	}
}

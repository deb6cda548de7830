package static

import (
	"strings"

	"github.com/npillmayer/stylecheck/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// element is the dom.Element handle of a static document.
type element struct {
	doc  *Document
	node *html.Node
}

var _ dom.Element = &element{}

func (d *Document) element(n *html.Node) *element {
	return &element{doc: d, node: n}
}

func (e *element) Tag() string {
	return strings.ToLower(e.node.Data)
}

func (e *element) Classes() []string {
	return strings.Fields(e.doc.gq.FindNodes(e.node).AttrOr("class", ""))
}

func (e *element) ID() string {
	return e.doc.gq.FindNodes(e.node).AttrOr("id", "")
}

// Text returns the text content of the element, leaving out scripts and
// style sheets.
func (e *element) Text() string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
			return
		case n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style):
			return
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(e.node)
	return b.String()
}

func (e *element) String() string {
	return "<" + e.Tag() + ">"
}

package styledtree

import (
	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/npillmayer/stylecheck/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	specifiedStyles     *style.PropertyMap
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = html
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// ParentNode returns the styled parent, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// Styles returns the property values specified for this node by the
// cascade. It may be nil, meaning nothing was specified.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.specifiedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.specifiedStyles = styles
}

// InsertSiblingAfter creates a styled node for h and links it into the
// styled tree directly after sn. The HTML node is linked into the HTML
// parse tree accordingly.
func (sn *StyNode) InsertSiblingAfter(h *html.Node) *StyNode {
	parent := sn.Parent()
	n := NewNodeForHTMLNode(h)
	if parent == nil {
		tracer().Errorf("cannot insert sibling for root node")
		return nil
	}
	if sn.htmlNode.Parent != nil {
		sn.htmlNode.Parent.InsertBefore(h, sn.htmlNode.NextSibling)
	}
	parent.InsertChildAt(parent.IndexOfChild(&sn.Node)+1, n)
	return Node(n)
}

// Detach removes sn from both the styled tree and the HTML parse tree.
func (sn *StyNode) Detach() {
	if h := sn.htmlNode; h != nil && h.Parent != nil {
		h.Parent.RemoveChild(h)
	}
	sn.Isolate()
}

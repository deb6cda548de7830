package styledtree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag}
}

func TestInsertSiblingAfter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.dom")
	defer teardown()
	//
	body := Node(NewNodeForHTMLNode(element("body")))
	var blocks []*StyNode
	for _, tag := range []string{"header", "main", "footer"} {
		h := element(tag)
		body.HTMLNode().AppendChild(h)
		n := NewNodeForHTMLNode(h)
		body.AddChild(n)
		blocks = append(blocks, Node(n))
	}
	scratch := blocks[1].InsertSiblingAfter(element("main"))
	if scratch == nil {
		t.Fatal("expected scratch node to be inserted")
	}
	if body.ChildCount() != 4 {
		t.Fatalf("expected 4 children, have %d", body.ChildCount())
	}
	if ch, _ := body.Child(2); Node(ch) != scratch {
		t.Errorf("expected scratch node to follow <main>")
	}
	if blocks[1].HTMLNode().NextSibling != scratch.HTMLNode() {
		t.Errorf("expected HTML node of scratch to follow <main>")
	}
	if scratch.ParentNode() != body {
		t.Errorf("expected scratch node to be a child of <body>")
	}
	scratch.Detach()
	if body.ChildCount() != 3 || scratch.HTMLNode().Parent != nil {
		t.Errorf("expected scratch node to be detached from both trees")
	}
	if blocks[1].HTMLNode().NextSibling != blocks[2].HTMLNode() {
		t.Errorf("expected <footer> to follow <main> again")
	}
	if body.InsertSiblingAfter(element("body")) != nil {
		t.Errorf("expected root node to have no siblings")
	}
}

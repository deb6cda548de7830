package static

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/stylecheck/dom"
	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/npillmayer/stylecheck/dom/styledtree"
	"golang.org/x/net/html"
)

// DefaultViewportWidth is the viewport width of a document, if not set
// otherwise.
const DefaultViewportWidth = 1280

// Document is a dom.Document for a parsed HTML page.
type Document struct {
	root       *html.Node
	gq         *goquery.Document
	sheets     []string
	rules      []compiledRule
	styled     *styledtree.StyNode
	nodes      map[*html.Node]*styledtree.StyNode
	scratch    map[*html.Node]bool
	width      int
	placements []placement
}

var _ dom.Document = &Document{}

// Option configures a document during construction.
type Option func(*Document)

// WithViewportWidth sets the initial viewport width in CSS pixels.
func WithViewportWidth(w int) Option {
	return func(d *Document) {
		d.width = w
	}
}

// WithStyleSheet adds an author stylesheet. Additional stylesheets follow
// the page's embedded stylesheets in cascade order.
func WithStyleSheet(css string) Option {
	return func(d *Document) {
		d.sheets = append(d.sheets, css)
	}
}

// Parse reads an HTML page and styles it.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	d := &Document{
		root:    root,
		gq:      goquery.NewDocumentFromNode(root),
		nodes:   make(map[*html.Node]*styledtree.StyNode),
		scratch: make(map[*html.Node]bool),
		width:   DefaultViewportWidth,
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.compileRules(); err != nil {
		return nil, err
	}
	d.buildStyledTree()
	d.restyle()
	return d, nil
}

// ParseString is a shortcut for Parse with an HTML source string.
func ParseString(source string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(source), opts...)
}

// Load reads an HTML page from a file.
func Load(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, opts...)
}

// ViewportWidth returns the current viewport width. It never fails.
func (d *Document) ViewportWidth() (int, error) {
	return d.width, nil
}

// SetViewportWidth simulates resizing the viewport. Styles depending on
// media conditions are re-computed.
func (d *Document) SetViewportWidth(w int) {
	if w == d.width {
		return
	}
	tracer().Debugf("resizing viewport from %d to %d", d.width, w)
	d.width = w
	d.restyle()
}

// QueryAll returns all elements matching selector, in document order.
func (d *Document) QueryAll(selector string) ([]dom.Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	nodes := d.gq.FindMatcher(sel).Nodes
	elements := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		if _, ok := d.nodes[n]; ok {
			elements = append(elements, d.element(n))
		}
	}
	return elements, nil
}

// ComputedStyle returns the computed values for every property with a
// known initial value, every property specified for the element, and the
// four-sided shortcuts (margin, padding, border-width, …).
func (d *Document) ComputedStyle(el dom.Element) (*style.PropertyMap, error) {
	sn, err := d.styledNode(el)
	if err != nil {
		return nil, err
	}
	keys := style.KnownKeys()
	for n := sn; n != nil; n = n.ParentNode() {
		for _, kv := range n.Styles().Properties() {
			if n == sn || style.IsCascading(kv.Key) {
				keys = append(keys, kv.Key)
			}
		}
	}
	computed := style.NewPropertyMap()
	for _, key := range keys {
		if _, done := computed.Property(key); done {
			continue
		}
		p, err := getProperty(sn, key)
		if err != nil {
			tracer().Debugf("no computed value for %s: %v", key, err)
			continue
		}
		computed.Set(key, p)
	}
	for _, key := range []string{"margin", "padding", "border-width", "border-style",
		"border-color", "border-radius"} {
		if p, ok := style.JoinCompoundProperty(key, computed); ok {
			computed.Set(key, p)
		}
	}
	return computed, nil
}

// InsertScratch inserts an element with the same tag as el, but without
// any attributes, as the next sibling of el. The document is restyled.
func (d *Document) InsertScratch(el dom.Element) (dom.Element, error) {
	sn, err := d.styledNode(el)
	if err != nil {
		return nil, err
	}
	h := sn.HTMLNode()
	bare := &html.Node{Type: html.ElementNode, Data: h.Data, DataAtom: h.DataAtom, Namespace: h.Namespace}
	scratch := sn.InsertSiblingAfter(bare)
	if scratch == nil {
		return nil, fmt.Errorf("cannot insert a sibling for <%s>", h.Data)
	}
	d.nodes[bare] = scratch
	d.scratch[bare] = true
	tracer().Debugf("inserted scratch <%s>", bare.Data)
	d.restyle()
	return d.element(bare), nil
}

// RemoveScratch removes an element created by InsertScratch and restyles
// the document.
func (d *Document) RemoveScratch(el dom.Element) error {
	sn, err := d.styledNode(el)
	if err != nil {
		return err
	}
	h := sn.HTMLNode()
	if !d.scratch[h] {
		return fmt.Errorf("<%s> is not a scratch element", h.Data)
	}
	sn.Detach()
	delete(d.nodes, h)
	delete(d.scratch, h)
	tracer().Debugf("removed scratch <%s>", h.Data)
	d.restyle()
	return nil
}

// ScratchCount returns the number of scratch elements currently attached.
func (d *Document) ScratchCount() int {
	return len(d.scratch)
}

func (d *Document) styledNode(el dom.Element) (*styledtree.StyNode, error) {
	e, ok := el.(*element)
	if !ok || e.doc != d {
		return nil, dom.ErrForeignElement
	}
	sn, ok := d.nodes[e.node]
	if !ok {
		return nil, dom.ErrNotFound
	}
	return sn, nil
}

// buildStyledTree creates a styled node for every element of the page.
func (d *Document) buildStyledTree() {
	var walk func(h *html.Node, parent *styledtree.StyNode)
	walk = func(h *html.Node, parent *styledtree.StyNode) {
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type != html.ElementNode {
				continue
			}
			sn := styledtree.Node(styledtree.NewNodeForHTMLNode(ch))
			if parent == nil {
				d.styled = sn
			} else {
				parent.AddChild(&sn.Node)
			}
			d.nodes[ch] = sn
			walk(ch, sn)
		}
	}
	walk(d.root, nil)
}

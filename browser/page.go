package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/npillmayer/stylecheck/dom"
	"github.com/npillmayer/stylecheck/dom/style"
)

// Evaluator evaluates a JavaScript expression in a page and unmarshals the
// JSON value of the result into out.
type Evaluator interface {
	Evaluate(ctx context.Context, expression string, out any) error
}

// Resizer is implemented by evaluators able to change the viewport size.
type Resizer interface {
	Resize(ctx context.Context, width, height int) error
}

// ErrNoResize is returned by SetViewportWidth if the evaluator cannot
// resize the viewport.
var ErrNoResize = errors.New("evaluator cannot resize the viewport")

// DefaultTimeout limits every single evaluation, if not configured
// otherwise.
const DefaultTimeout = 10 * time.Second

// Page is a dom.Document backed by a live browser page.
type Page struct {
	ev      Evaluator
	ctx     context.Context
	timeout time.Duration
	height  int
	scratch int // serial number of the last scratch element
}

var _ dom.Document = &Page{}

// Option configures a page.
type Option func(*Page)

// WithContext sets a parent context for all evaluations.
func WithContext(ctx context.Context) Option {
	return func(p *Page) {
		p.ctx = ctx
	}
}

// WithTimeout limits the time for each evaluation.
func WithTimeout(d time.Duration) Option {
	return func(p *Page) {
		p.timeout = d
	}
}

// WithViewportHeight sets the height used when resizing the viewport.
func WithViewportHeight(h int) Option {
	return func(p *Page) {
		p.height = h
	}
}

// New creates a document for the page ev evaluates scripts in.
func New(ev Evaluator, opts ...Option) *Page {
	p := &Page{
		ev:      ev,
		ctx:     context.Background(),
		timeout: DefaultTimeout,
		height:  800,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// call invokes one of the scripts of this package with JSON arguments.
func (p *Page) call(out any, script string, args ...any) error {
	if args == nil {
		args = []any{}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return err
	}
	expr := "(" + script + ").apply(null, " + string(encoded) + ")"
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	if err := p.ev.Evaluate(ctx, expr, out); err != nil {
		return fmt.Errorf("evaluating in browser: %w", err)
	}
	return nil
}

// QueryAll returns the elements matching selector. Selector syntax errors
// are reported by the browser.
func (p *Page) QueryAll(selector string) ([]dom.Element, error) {
	var found []elementData
	if err := p.call(&found, queryAllScript, selector); err != nil {
		return nil, fmt.Errorf("query %q: %w", selector, err)
	}
	elements := make([]dom.Element, len(found))
	for i, data := range found {
		elements[i] = &element{
			page: p,
			ref:  ref{Selector: selector, Index: i},
			data: data,
		}
	}
	tracer().Debugf("%q matches %d elements", selector, len(elements))
	return elements, nil
}

// ComputedStyle returns what getComputedStyle reports for el, plus the
// four-sided shortcut properties.
func (p *Page) ComputedStyle(el dom.Element) (*style.PropertyMap, error) {
	e, err := p.own(el)
	if err != nil {
		return nil, err
	}
	var values map[string]string
	if err := p.call(&values, computedStyleScript, e.ref); err != nil {
		return nil, err
	}
	if values == nil {
		return nil, fmt.Errorf("%v: %w", e.ref, dom.ErrNotFound)
	}
	pmap := style.NewPropertyMap()
	for k, v := range values {
		pmap.Set(k, style.Property(v))
	}
	return pmap, nil
}

// BoundingRect returns the current client rect of el.
func (p *Page) BoundingRect(el dom.Element) (dom.Rect, error) {
	e, err := p.own(el)
	if err != nil {
		return dom.Rect{}, err
	}
	var r *dom.Rect
	if err := p.call(&r, boundingRectScript, e.ref); err != nil {
		return dom.Rect{}, err
	}
	if r == nil {
		return dom.Rect{}, fmt.Errorf("%v: %w", e.ref, dom.ErrNotFound)
	}
	return *r, nil
}

// ViewportWidth returns window.innerWidth.
func (p *Page) ViewportWidth() (int, error) {
	var w float64
	if err := p.call(&w, viewportWidthScript); err != nil {
		return 0, err
	}
	return int(w), nil
}

// SetViewportWidth resizes the viewport, if the evaluator supports it.
func (p *Page) SetViewportWidth(w int) error {
	r, ok := p.ev.(Resizer)
	if !ok {
		return ErrNoResize
	}
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	tracer().Debugf("resizing viewport to %dx%d", w, p.height)
	return r.Resize(ctx, w, p.height)
}

// InsertScratch inserts a bare element with the tag of el after el.
func (p *Page) InsertScratch(el dom.Element) (dom.Element, error) {
	e, err := p.own(el)
	if err != nil {
		return nil, err
	}
	p.scratch++
	id := strconv.Itoa(p.scratch)
	var data *elementData
	if err := p.call(&data, insertScratchScript, e.ref, id); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("cannot insert scratch element after %v: %w", e.ref, dom.ErrNotFound)
	}
	tracer().Debugf("inserted scratch <%s> #%s", data.Tag, id)
	return &element{page: p, ref: ref{Scratch: id}, data: *data}, nil
}

// RemoveScratch removes a scratch element from the page.
func (p *Page) RemoveScratch(el dom.Element) error {
	e, err := p.own(el)
	if err != nil {
		return err
	}
	if e.ref.Scratch == "" {
		return fmt.Errorf("%v is not a scratch element", e.ref)
	}
	var removed bool
	if err := p.call(&removed, removeScratchScript, e.ref.Scratch); err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%v: %w", e.ref, dom.ErrNotFound)
	}
	return nil
}

func (p *Page) own(el dom.Element) (*element, error) {
	e, ok := el.(*element)
	if !ok || e.page != p {
		return nil, dom.ErrForeignElement
	}
	return e, nil
}

// --- Elements --------------------------------------------------------------

type ref struct {
	Selector string `json:"selector,omitempty"`
	Index    int    `json:"index"`
	Scratch  string `json:"scratch,omitempty"`
}

func (r ref) String() string {
	if r.Scratch != "" {
		return "scratch #" + r.Scratch
	}
	return fmt.Sprintf("%s[%d]", r.Selector, r.Index)
}

type elementData struct {
	Tag     string   `json:"tag"`
	Classes []string `json:"classes"`
	ID      string   `json:"id"`
	Text    string   `json:"text"`
}

// element is a snapshot of an element's identity, taken at query time.
type element struct {
	page *Page
	ref  ref
	data elementData
}

func (e *element) Tag() string       { return e.data.Tag }
func (e *element) Classes() []string { return e.data.Classes }
func (e *element) ID() string        { return e.data.ID }
func (e *element) Text() string      { return e.data.Text }

package harness

import (
	"fmt"

	"github.com/npillmayer/stylecheck/dom"
	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/npillmayer/stylecheck/reader"
	"github.com/stretchr/testify/assert"
)

// ViewportProvider returns the current viewport width in CSS pixels.
type ViewportProvider func() int

// DocumentViewport returns a provider asking doc for its viewport width.
// If the document cannot tell, the width is reported as 0.
func DocumentViewport(doc dom.Document) ViewportProvider {
	return func() int {
		w, err := doc.ViewportWidth()
		if err != nil {
			tracer().Errorf("cannot read viewport width: %v", err)
			return 0
		}
		return w
	}
}

// Harness registers style checks for elements of a document.
type Harness struct {
	reader      *reader.Reader
	viewport    ViewportProvider
	diagnostics bool
}

// Option configures a harness.
type Option func(*Harness)

// WithViewport sets the provider of the viewport width used to select
// responsive expectations. The default asks the document.
func WithViewport(vp ViewportProvider) Option {
	return func(h *Harness) {
		h.viewport = vp
	}
}

// WithDiagnostics controls whether a failing property check carries the
// complete computed style of its element. It is on by default.
func WithDiagnostics(on bool) Option {
	return func(h *Harness) {
		h.diagnostics = on
	}
}

// New creates a harness for a document.
func New(doc dom.Document, opts ...Option) *Harness {
	h := &Harness{
		reader:      reader.New(doc),
		viewport:    DocumentViewport(doc),
		diagnostics: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Reader returns the style reader of the harness.
func (h *Harness) Reader() *reader.Reader {
	return h.reader
}

// Viewport returns the current viewport width.
func (h *Harness) Viewport() int {
	return h.viewport()
}

type checkConfig struct {
	context string
	unique  []UniqueAssertion
}

// CheckOption configures the checks registered by Styles.
type CheckOption func(*checkConfig)

// WithContext prefixes the labels of element suites with a context, e.g.
// the name of the enclosing page region.
func WithContext(label string) CheckOption {
	return func(cfg *checkConfig) {
		cfg.context = label
	}
}

// WithUnique adds a unique assertion, checked for every element.
func WithUnique(name string, p Predicate) CheckOption {
	return func(cfg *checkConfig) {
		cfg.unique = append(cfg.unique, UniqueAssertion{Name: name, Predicate: p})
	}
}

// WithUniqueAssertions adds unique assertions, checked for every element.
func WithUniqueAssertions(us ...UniqueAssertion) CheckOption {
	return func(cfg *checkConfig) {
		cfg.unique = append(cfg.unique, us...)
	}
}

// Styles registers the checks for a target with parent.
//
// The target is resolved immediately. If it resolves to no element, a
// single failing existence check is registered. Otherwise every element
// gets a sub-suite, named by Label, containing an existence check, a
// sub-suite per category of table with a check per expectation, and a
// check per unique assertion.
//
// An error is returned only if the target cannot be resolved, e.g. for a
// selector with a syntax error. Nothing is registered in this case.
func (h *Harness) Styles(parent *Suite, target reader.Target, table *Table, opts ...CheckOption) error {
	cfg := &checkConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	els, err := h.reader.Resolve(target)
	if err != nil {
		return fmt.Errorf("cannot resolve %v: %w", target, err)
	}
	if len(els) == 0 {
		title := fmt.Sprintf("element(s) matching %s should exist", target)
		if cfg.context != "" {
			title = cfg.context + ": " + title
		}
		parent.It(title, func(t assert.TestingT) {
			assert.Fail(t, fmt.Sprintf("no element matches %s", target))
		})
		return nil
	}
	for i, el := range els {
		el := el
		label := Label(el, target.SelectorText(), i, len(els), cfg.context)
		parent.Describe(label, func(s *Suite) {
			h.elementChecks(s, el, table, cfg.unique)
		})
	}
	return nil
}

func (h *Harness) elementChecks(s *Suite, el dom.Element, table *Table, unique []UniqueAssertion) {
	s.It("should exist on the page", func(t assert.TestingT) {
		_, err := h.reader.ReadAllComputed(el)
		assert.NoError(t, err, "<%s> is not part of the page", el.Tag())
	})
	for _, cat := range table.Categories() {
		if cat.Err != nil {
			err := cat.Err
			s.It(fmt.Sprintf("%s should be a list of property rows", cat.Label), func(t assert.TestingT) {
				assert.Fail(t, err.Error())
			})
			continue
		}
		rows := cat.Rows
		s.Describe(cat.Label, func(s *Suite) {
			for _, e := range rows {
				h.propertyCheck(s, el, e)
			}
		})
	}
	for _, u := range unique {
		u := u
		s.It(u.Name, func(t assert.TestingT) {
			ct := &counting{TestingT: t}
			if !u.Predicate(ct, Subject{Element: el, reader: h.reader}) && ct.n == 0 {
				assert.Fail(t, fmt.Sprintf("%q does not hold", u.Name))
			}
		})
	}
}

// propertyCheck registers a check of one expectation. The expected value
// depends on the viewport width at the time the check runs; the title
// reflects it.
func (h *Harness) propertyCheck(s *Suite, el dom.Element, e Expectation) {
	var effective string
	c := s.add(func() string {
		effective = Effective(e, h.viewport())
		return fmt.Sprintf("should have %s = %q", e.Property, effective)
	}, nil)
	c.body = func(t assert.TestingT) {
		c.property, c.expected = e.Property, effective
		actual, err := h.reader.ReadProperty(el, e.Property)
		if !assert.NoError(t, err, "reading %s", e.Property) {
			return
		}
		c.actual = actual.String()
		Compare(t, e.Property, effective, actual)
	}
	if h.diagnostics {
		c.diagnostics = func() []style.KeyValue {
			kvs, err := h.reader.ReadAllComputed(el)
			if err != nil {
				tracer().Errorf("no diagnostics for <%s>: %v", el.Tag(), err)
			}
			return kvs
		}
	}
}

// counting counts the failures reported to a TestingT.
type counting struct {
	assert.TestingT
	n int
}

func (c *counting) Errorf(format string, args ...interface{}) {
	c.n++
	c.TestingT.Errorf(format, args...)
}

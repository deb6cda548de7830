package suitefile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/stylecheck/dom"
	"github.com/npillmayer/stylecheck/dom/static"
	"github.com/npillmayer/stylecheck/harness"
	"github.com/npillmayer/stylecheck/reader"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSuite is returned for suite files which cannot be used.
var ErrInvalidSuite = errors.New("invalid suite file")

// Suite is the content of a suite file.
type Suite struct {
	Name     string      `yaml:"name"`
	Targets  []Target    `yaml:"targets"`
	Groups   []Group     `yaml:"groups"`
	Geometry []Placement `yaml:"geometry"`
}

// Target is a selector with expectations.
type Target struct {
	Selector   string    `yaml:"selector"`
	Context    string    `yaml:"context"`
	Categories yaml.Node `yaml:"categories"`
	Unique     []Unique  `yaml:"unique"`
}

// Unique is a builtin unique assertion.
type Unique struct {
	Name      string  `yaml:"name"`
	Predicate string  `yaml:"predicate"` // min-length | border-or-shadow
	Property  string  `yaml:"property"`
	Px        float64 `yaml:"px"`
}

// Group is a check over the elements of several selectors.
type Group struct {
	Check     string   `yaml:"check"` // matching-width | no-overlap | exist
	Title     string   `yaml:"title"`
	Selectors []string `yaml:"selectors"`
}

// Placement sets the geometry of elements of a static document. Either
// Rects or Stack is used.
type Placement struct {
	Selector string      `yaml:"selector"`
	Rects    [][]float64 `yaml:"rects"` // [top, left, width, height]
	Stack    *Stack      `yaml:"stack"`
}

// Stack places matched elements below each other, spanning the viewport
// minus a margin on either side.
type Stack struct {
	Top    float64 `yaml:"top"`
	Margin float64 `yaml:"margin"`
	Height float64 `yaml:"height"`
	Gap    float64 `yaml:"gap"`
}

// Load reads a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse reads a suite from YAML.
func Parse(data []byte) (*Suite, error) {
	s := &Suite{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSuite, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = "stylecheck"
	}
	tracer().Debugf("suite %q has %d targets and %d groups", s.Name, len(s.Targets), len(s.Groups))
	return s, nil
}

func (s *Suite) validate() error {
	for i, t := range s.Targets {
		if strings.TrimSpace(t.Selector) == "" {
			return fmt.Errorf("%w: target %d has no selector", ErrInvalidSuite, i)
		}
		if k := t.Categories.Kind; k != 0 && k != yaml.MappingNode {
			return fmt.Errorf("%w: categories of %q must be a mapping (line %d)",
				ErrInvalidSuite, t.Selector, t.Categories.Line)
		}
		for _, u := range t.Unique {
			if _, err := u.predicate(); err != nil {
				return err
			}
		}
	}
	for i, g := range s.Groups {
		if _, err := groupCheck(g.Check); err != nil {
			return err
		}
		if len(g.Selectors) == 0 {
			return fmt.Errorf("%w: group %d has no selectors", ErrInvalidSuite, i)
		}
	}
	for _, p := range s.Geometry {
		if p.Stack == nil && len(p.Rects) == 0 {
			return fmt.Errorf("%w: placement of %q has neither rects nor stack", ErrInvalidSuite, p.Selector)
		}
		for _, r := range p.Rects {
			if len(r) != 4 {
				return fmt.Errorf("%w: rect %v of %q must be [top, left, width, height]",
					ErrInvalidSuite, r, p.Selector)
			}
		}
	}
	return nil
}

// Table converts the categories of a target to an expectation table.
func (t Target) Table() *harness.Table {
	table := harness.NewTable()
	cats := t.Categories.Content
	for i := 0; i+1 < len(cats); i += 2 {
		label, value := cats[i].Value, cats[i+1]
		rows, err := decodeRows(value)
		if err != nil {
			table.Malformed(label, err)
			continue
		}
		table.Rows(label, rows...)
	}
	return table
}

func decodeRows(n *yaml.Node) ([][]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list of rows", n.Line)
	}
	rows := make([][]string, 0, len(n.Content))
	for _, r := range n.Content {
		var row []string
		if err := r.Decode(&row); err != nil {
			return nil, fmt.Errorf("line %d: expected a row of values", r.Line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (u Unique) predicate() (harness.Predicate, error) {
	switch u.Predicate {
	case "min-length":
		if u.Property == "" {
			return nil, fmt.Errorf("%w: min-length %q needs a property", ErrInvalidSuite, u.Name)
		}
		return harness.MinLength(u.Property, u.Px), nil
	case "border-or-shadow":
		return harness.BorderOrShadow(), nil
	}
	return nil, fmt.Errorf("%w: unknown predicate %q", ErrInvalidSuite, u.Predicate)
}

func (u Unique) title() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Predicate == "min-length" {
		return fmt.Sprintf("should have %s > %gpx", u.Property, u.Px)
	}
	return "should have either border or shadow"
}

type groupFunc func(h *harness.Harness, s *harness.Suite, title string, targets ...reader.Target) error

func groupCheck(kind string) (groupFunc, error) {
	switch kind {
	case "matching-width":
		return (*harness.Harness).MatchingWidth, nil
	case "no-overlap":
		return (*harness.Harness).NoVerticalOverlap, nil
	case "exist":
		return (*harness.Harness).AllExist, nil
	}
	return nil, fmt.Errorf("%w: unknown group check %q", ErrInvalidSuite, kind)
}

func (g Group) title() string {
	if g.Title != "" {
		return g.Title
	}
	sels := strings.Join(g.Selectors, ", ")
	switch g.Check {
	case "matching-width":
		return sels + " should have matching width"
	case "no-overlap":
		return sels + " should not overlap"
	}
	return sels + " should exist"
}

// Build registers the checks of the suite file with root.
func (s *Suite) Build(h *harness.Harness, root *harness.Suite) error {
	for _, t := range s.Targets {
		var opts []harness.CheckOption
		if t.Context != "" {
			opts = append(opts, harness.WithContext(t.Context))
		}
		for _, u := range t.Unique {
			p, err := u.predicate()
			if err != nil {
				return err
			}
			opts = append(opts, harness.WithUnique(u.title(), p))
		}
		if err := h.Styles(root, reader.Selector(t.Selector), t.Table(), opts...); err != nil {
			return err
		}
	}
	for _, g := range s.Groups {
		check, err := groupCheck(g.Check)
		if err != nil {
			return err
		}
		targets := make([]reader.Target, len(g.Selectors))
		for i, sel := range g.Selectors {
			targets[i] = reader.Selector(sel)
		}
		if err := check(h, root, g.title(), targets...); err != nil {
			return err
		}
	}
	return nil
}

// Place applies the geometry of the suite file to a static document.
func (s *Suite) Place(doc *static.Document) error {
	for _, p := range s.Geometry {
		if err := doc.Place(p.Selector, p.layout()); err != nil {
			return err
		}
	}
	return nil
}

func (p Placement) layout() static.LayoutFunc {
	if p.Stack == nil {
		rects := make([]dom.Rect, len(p.Rects))
		for i, r := range p.Rects {
			rects[i] = dom.NewRect(r[0], r[1], r[2], r[3])
		}
		return static.Fixed(rects...)
	}
	st := *p.Stack
	return func(viewport int, i int) dom.Rect {
		top := st.Top + float64(i)*(st.Height+st.Gap)
		return dom.NewRect(top, st.Margin, float64(viewport)-2*st.Margin, st.Height)
	}
}

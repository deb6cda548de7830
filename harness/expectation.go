package harness

import (
	"errors"
	"fmt"

	"github.com/npillmayer/stylecheck/dom/style"
)

// Breakpoint is the viewport width at and above which wide values apply.
const Breakpoint = 768

// Expectation is one row of an expectation table: a property with the
// value expected below the breakpoint and, optionally, a different value
// expected at or above it.
type Expectation struct {
	Property string
	Compact  string
	Wide     string
	HasWide  bool
}

// Expect creates an expectation for a property. If a wide value is given,
// it applies for viewports at least Breakpoint pixels wide. Additional
// values are ignored.
func Expect(property, compact string, wide ...string) Expectation {
	e := Expectation{Property: property, Compact: compact}
	if len(wide) > 0 {
		e.Wide, e.HasWide = wide[0], true
	}
	return e
}

// Effective returns the value expected for a viewport width. Colour values
// are serialized the way computed styles report them, e.g. "#fff" becomes
// "rgb(255, 255, 255)".
func Effective(e Expectation, width int) string {
	v := e.Compact
	if e.HasWide && width >= Breakpoint {
		v = e.Wide
	}
	if style.IsColorKey(style.HyphenKey(e.Property)) {
		return style.NormalizeColor(style.Property(v)).String()
	}
	return v
}

func (e Expectation) String() string {
	if e.HasWide {
		return fmt.Sprintf("%s: %s | %s", e.Property, e.Compact, e.Wide)
	}
	return fmt.Sprintf("%s: %s", e.Property, e.Compact)
}

// ErrMalformedCategory flags a category which is not a list of property
// rows.
var ErrMalformedCategory = errors.New("malformed expectation category")

// Category is a labelled group of expectations, e.g. "Typography".
// A category with Err set is malformed and is reported as a failing check.
type Category struct {
	Label string
	Rows  []Expectation
	Err   error
}

// Table maps category labels to expectations, keeping insertion order.
type Table struct {
	categories []Category
}

// NewTable creates an empty expectation table.
func NewTable() *Table {
	return &Table{}
}

// Add appends expectations to a category, creating it if necessary.
func (t *Table) Add(label string, rows ...Expectation) *Table {
	c := t.category(label)
	c.Rows = append(c.Rows, rows...)
	return t
}

// Rows appends raw rows of the form [property, compact] or
// [property, compact, wide] to a category. A row of any other length makes
// the category malformed.
func (t *Table) Rows(label string, rows ...[]string) *Table {
	c := t.category(label)
	for i, row := range rows {
		switch len(row) {
		case 2:
			c.Rows = append(c.Rows, Expect(row[0], row[1]))
		case 3:
			c.Rows = append(c.Rows, Expect(row[0], row[1], row[2]))
		default:
			if c.Err == nil {
				c.Err = fmt.Errorf("%w: row %d of %q has %d fields", ErrMalformedCategory, i, label, len(row))
			}
		}
	}
	return t
}

// Malformed adds a category which could not be read as a list of rows.
func (t *Table) Malformed(label string, err error) *Table {
	c := t.category(label)
	if err == nil {
		err = ErrMalformedCategory
	}
	if !errors.Is(err, ErrMalformedCategory) {
		err = fmt.Errorf("%w: %v", ErrMalformedCategory, err)
	}
	c.Err = err
	return t
}

// Categories returns the categories in insertion order.
func (t *Table) Categories() []Category {
	if t == nil {
		return nil
	}
	return t.categories
}

// Len returns the number of expectations in all categories.
func (t *Table) Len() int {
	n := 0
	for _, c := range t.Categories() {
		n += len(c.Rows)
	}
	return n
}

func (t *Table) category(label string) *Category {
	for i := range t.categories {
		if t.categories[i].Label == label {
			return &t.categories[i]
		}
	}
	t.categories = append(t.categories, Category{Label: label})
	return &t.categories[len(t.categories)-1]
}

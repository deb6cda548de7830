package reader

import (
	"fmt"

	"github.com/npillmayer/stylecheck/dom"
	"github.com/npillmayer/stylecheck/dom/style"
)

// Reader reads styles from a document.
type Reader struct {
	doc dom.Document
}

// New creates a reader for a document.
func New(doc dom.Document) *Reader {
	return &Reader{doc: doc}
}

// Document returns the document the reader reads from.
func (r *Reader) Document() dom.Document {
	return r.doc
}

// Resolve returns the elements of a target, in document order for
// selectors. Zero elements is not an error; an invalid selector is.
func (r *Reader) Resolve(t Target) ([]dom.Element, error) {
	if t.kind != selectorTarget {
		els := make([]dom.Element, 0, len(t.elements))
		for _, el := range t.elements {
			if el != nil {
				els = append(els, el)
			}
		}
		return els, nil
	}
	els, err := r.doc.QueryAll(t.selector)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("resolved %q to %d elements", t.selector, len(els))
	return els, nil
}

// ReadStyle returns the computed value of a property for the first element
// of a target. If the target resolves to no element, found is false. A
// property without a value yields an empty value with found set.
func (r *Reader) ReadStyle(t Target, property string) (value style.Property, found bool, err error) {
	els, err := r.Resolve(t)
	if err != nil || len(els) == 0 {
		return style.NullStyle, false, err
	}
	value, err = r.ReadProperty(els[0], property)
	return value, err == nil, err
}

// ReadProperty returns the computed value of a property for an element.
func (r *Reader) ReadProperty(el dom.Element, property string) (style.Property, error) {
	pmap, err := r.doc.ComputedStyle(el)
	if err != nil {
		return style.NullStyle, err
	}
	p, _ := pmap.Property(style.HyphenKey(property))
	return p, nil
}

// ReadAllComputed returns the complete computed style of an element,
// sorted by property name.
func (r *Reader) ReadAllComputed(el dom.Element) ([]style.KeyValue, error) {
	pmap, err := r.doc.ComputedStyle(el)
	if err != nil {
		return nil, err
	}
	return pmap.Properties(), nil
}

// ReadGeometry returns the bounding box of an element. It is re-read from
// the document for every call.
func (r *Reader) ReadGeometry(el dom.Element) (dom.Rect, error) {
	return r.doc.BoundingRect(el)
}

// Filter restricts the properties of a style diff. An empty include list
// means all properties.
type Filter struct {
	Include []string
	Exclude []string
}

func (f Filter) admits(key string) bool {
	for _, x := range f.Exclude {
		if style.HyphenKey(x) == key {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, in := range f.Include {
		if style.HyphenKey(in) == key {
			return true
		}
	}
	return false
}

// ReadDiffFromDefault returns the computed properties of el which differ
// from those of an unstyled element with the same tag, placed as el's next
// sibling. The scratch element is removed before ReadDiffFromDefault
// returns or panics.
func (r *Reader) ReadDiffFromDefault(el dom.Element, filter Filter) (diff []style.KeyValue, err error) {
	scratch, err := r.doc.InsertScratch(el)
	if err != nil {
		return nil, fmt.Errorf("inserting scratch element: %w", err)
	}
	defer func() {
		if rerr := r.doc.RemoveScratch(scratch); rerr != nil {
			tracer().Errorf("scratch element not removed: %v", rerr)
			if err == nil {
				err = rerr
			}
		}
	}()
	styled, err := r.doc.ComputedStyle(el)
	if err != nil {
		return nil, err
	}
	baseline, err := r.doc.ComputedStyle(scratch)
	if err != nil {
		return nil, err
	}
	for _, kv := range styled.Properties() {
		if !filter.admits(kv.Key) {
			continue
		}
		if base, _ := baseline.Property(kv.Key); base != kv.Value {
			diff = append(diff, kv)
		}
	}
	tracer().Debugf("<%s> differs from default in %d properties", el.Tag(), len(diff))
	return diff, nil
}

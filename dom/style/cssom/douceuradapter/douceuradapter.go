/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/npillmayer/stylecheck/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'stylecheck.css'.
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.css")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	rules []Rule
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper. Rules nested in `@media`
// blocks are flattened and tagged with their media condition; other
// at-rules (@font-face, @keyframes, …) are dropped.
func Wrap(sheet *css.Stylesheet) *CSSStyles {
	styles := &CSSStyles{}
	if sheet != nil {
		styles.collect(sheet.Rules, cssom.Media{})
	}
	return styles
}

func (sheet *CSSStyles) collect(rules []*css.Rule, media cssom.Media) {
	for _, r := range rules {
		switch {
		case r.Kind == css.QualifiedRule:
			sheet.rules = append(sheet.rules, Rule{rule: r, media: media})
		case r.Kind == css.AtRule && r.Name == "@media":
			sheet.collect(r.Rules, cssom.ParseMedia(r.Prelude))
		default:
			tracer().Debugf("dropping at-rule %s", r.Name)
		}
	}
}

// Parse parses CSS source text into a stylesheet.
func Parse(source string) (*CSSStyles, error) {
	sheet, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	for _, r := range other.Rules() {
		if dr, ok := r.(Rule); ok {
			sheet.rules = append(sheet.rules, dr)
		}
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.rules))
	for i := range sheet.rules {
		rules[i] = sheet.rules[i]
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule  *css.Rule
	media cssom.Media
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	if len(r.rule.Selectors) > 0 {
		return strings.Join(r.rule.Selectors, ", ")
	}
	return r.rule.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	return declarationKeys(r.rule.Declarations)
}

// Value returns the property values for given key with this rule, e.g. "15px"
// A key declared twice resolves to the last declaration.
func (r Rule) Value(key string) style.Property {
	return declarationValue(r.rule.Declarations, key)
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	var important bool
	for _, d := range r.rule.Declarations {
		if d.Property == key {
			important = d.Important
		}
	}
	return important
}

// Media returns the `@media` condition this rule was nested in.
func (r Rule) Media() cssom.Media {
	return r.media
}

var _ cssom.Rule = Rule{}

// --- Inline styles ---------------------------------------------------------

// Declarations is a list of parsed declarations of a `style` attribute.
type Declarations []*css.Declaration

// ParseInline parses the content of an HTML `style` attribute.
func ParseInline(text string) (Declarations, error) {
	decl, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("parsing inline style %q: %w", text, err)
	}
	return Declarations(decl), nil
}

// Properties returns the declared property keys.
func (d Declarations) Properties() []string {
	return declarationKeys(d)
}

// Value returns the value declared for key.
func (d Declarations) Value(key string) style.Property {
	return declarationValue(d, key)
}

// IsImportant returns true if key is declared `!important`.
func (d Declarations) IsImportant(key string) bool {
	for _, decl := range d {
		if decl.Property == key && decl.Important {
			return true
		}
	}
	return false
}

func declarationKeys(decl []*css.Declaration) []string {
	props := make([]string, 0, len(decl))
	seen := make(map[string]bool, len(decl))
	for _, d := range decl {
		if !seen[d.Property] {
			props = append(props, d.Property)
			seen[d.Property] = true
		}
	}
	return props
}

func declarationValue(decl []*css.Declaration, key string) style.Property {
	value := style.NullStyle
	for _, d := range decl {
		if d.Property == key {
			value = style.Property(d.Value)
		}
	}
	return value
}

// --- Embedded stylesheets --------------------------------------------------

// ExtractStyleElements visits the HTML parse tree and searches for
// embedded <style>s. It returns the content of style-elements as style
// sheets, in document order. Unparsable sheets are skipped and traced.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		if h.Type == html.ElementNode && h.DataAtom == atom.Style {
			if h.FirstChild != nil {
				sheet, err := Parse(h.FirstChild.Data)
				if err != nil {
					tracer().Errorf("skipping <style>: %v", err)
				} else {
					sheets = append(sheets, sheet)
				}
			}
			return
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if htmldoc != nil {
		walk(htmldoc)
	}
	return sheets
}

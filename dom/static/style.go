package static

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/npillmayer/stylecheck/dom/style/css"
	"github.com/npillmayer/stylecheck/dom/style/cssom"
	"github.com/npillmayer/stylecheck/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/stylecheck/dom/styledtree"
	"github.com/npillmayer/stylecheck/tree"
	"golang.org/x/net/html"
)

// compiledRule is a stylesheet rule with its selectors parsed once.
type compiledRule struct {
	rule  cssom.Rule
	sels  cascadia.SelectorGroup
	order int
}

// specificity returns the highest specificity of the rule's selectors
// matching n, and false if none matches.
func (r compiledRule) specificity(n *html.Node) ([3]int, bool) {
	var spec cascadia.Specificity
	matched := false
	for _, sel := range r.sels {
		if sel.Match(n) && (!matched || spec.Less(sel.Specificity())) {
			spec, matched = sel.Specificity(), true
		}
	}
	return [3]int(spec), matched
}

func (d *Document) compileRules() error {
	var sheet cssom.StyleSheet = douceuradapter.Wrap(nil)
	for _, embedded := range douceuradapter.ExtractStyleElements(d.root) {
		sheet.AppendRules(embedded)
	}
	for _, source := range d.sheets {
		extra, err := douceuradapter.Parse(source)
		if err != nil {
			return err
		}
		sheet.AppendRules(extra)
	}
	for i, rule := range sheet.Rules() {
		group, err := cascadia.ParseGroupWithPseudoElements(rule.Selector())
		if err != nil {
			tracer().Debugf("skipping rule %q: %v", rule.Selector(), err)
			continue
		}
		var sels cascadia.SelectorGroup
		for _, sel := range group {
			if sel.PseudoElement() == "" {
				sels = append(sels, sel)
			}
		}
		if len(sels) > 0 {
			d.rules = append(d.rules, compiledRule{rule: rule, sels: sels, order: i})
		}
	}
	tracer().Debugf("compiled %d style rules", len(d.rules))
	return nil
}

// restyle runs the cascade for every element, respecting media conditions
// for the current viewport width.
func (d *Document) restyle() {
	if d.styled == nil {
		return
	}
	d.styled.TopDown(func(n *tree.Node[*styledtree.StyNode]) bool {
		sn := styledtree.Node(n)
		sn.SetStyles(css.Specify(d.declarationsFor(sn.HTMLNode())))
		return true
	})
}

func (d *Document) declarationsFor(h *html.Node) []css.Declared {
	var decls []css.Declared
	for _, r := range d.rules {
		if !r.rule.Media().Matches(d.width) {
			continue
		}
		spec, ok := r.specificity(h)
		if !ok {
			continue
		}
		for _, key := range r.rule.Properties() {
			decls = append(decls, css.Declared{
				Key:         key,
				Value:       r.rule.Value(key),
				Important:   r.rule.IsImportant(key),
				Specificity: spec,
				Order:       r.order,
			})
		}
	}
	for _, a := range h.Attr {
		if a.Key != "style" {
			continue
		}
		inline, err := douceuradapter.ParseInline(a.Val)
		if err != nil {
			tracer().Errorf("<%s>: %v", h.Data, err)
			break
		}
		for _, key := range inline.Properties() {
			decls = append(decls, css.Declared{
				Key:       key,
				Value:     inline.Value(key),
				Important: inline.IsImportant(key),
				Inline:    true,
				Order:     len(d.rules),
			})
		}
	}
	return decls
}

func getProperty(sn *styledtree.StyNode, key string) (style.Property, error) {
	p, err := css.GetProperty(sn, key)
	if err != nil {
		return style.NullStyle, fmt.Errorf("<%s>: %w", sn.HTMLNode().Data, err)
	}
	return p, nil
}

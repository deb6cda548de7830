package css

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/npillmayer/stylecheck/dom/styledtree"
	"golang.org/x/net/html"
)

// Declared is a single declaration competing in the cascade for a node.
type Declared struct {
	Key         string
	Value       style.Property
	Important   bool
	Inline      bool   // from the node's style attribute
	Specificity [3]int // id, class, type counts of the matching selector
	Order       int    // source order across all stylesheets
}

// precedes reports whether d loses against other in the cascade.
func (d Declared) precedes(other Declared) bool {
	if d.Important != other.Important {
		return !d.Important
	}
	if d.Inline != other.Inline {
		return !d.Inline
	}
	for i := 0; i < 3; i++ {
		if d.Specificity[i] != other.Specificity[i] {
			return d.Specificity[i] < other.Specificity[i]
		}
	}
	return d.Order < other.Order
}

// Specify runs the cascade over all declarations matching a node and
// returns the resulting specified values. Shorthand properties are split
// into their long-hand components before they compete.
func Specify(decls []Declared) *style.PropertyMap {
	expanded := make([]Declared, 0, len(decls))
	for _, d := range decls {
		key := style.HyphenKey(d.Key)
		if !style.IsCompoundProperty(key) {
			d.Key = key
			expanded = append(expanded, d)
			continue
		}
		kvs, err := style.SplitCompoundProperty(key, d.Value)
		if err != nil {
			tracer().Debugf("ignoring declaration %s: %v", key, err)
			continue
		}
		for _, kv := range kvs {
			part := d
			part.Key, part.Value = kv.Key, kv.Value
			expanded = append(expanded, part)
		}
	}
	sort.SliceStable(expanded, func(i, j int) bool {
		return expanded[i].precedes(expanded[j])
	})
	pmap := style.NewPropertyMap()
	for _, d := range expanded {
		pmap.Set(d.Key, d.Value)
	}
	return pmap
}

// GetLocalProperty returns a style property value, if it is set locally
// for a styled node's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key string) style.Property {
	p, _ := pmap.Property(key)
	return p
}

// GetCascadedProperty gets the computed value a node inherits for a
// property from its parent, or the user-agent default at the root.
func GetCascadedProperty(node *styledtree.StyNode, key string) (style.Property, error) {
	if node == nil {
		return style.NullStyle, fmt.Errorf("no styled node to get %s from", key)
	}
	if parent := node.ParentNode(); parent != nil {
		return GetProperty(parent, key)
	}
	return computeValue(node, key, style.GetUserAgentDefaultProperty(node.HTMLNode(), key))
}

// GetProperty gets the computed value of a property: the specified value,
// or the inherited value for inheritable properties, or the user-agent
// default, serialized the way getComputedStyle would report it.
//
// The call to GetProperty will flag an error if the style property cannot
// be resolved to a value.
func GetProperty(node *styledtree.StyNode, key string) (style.Property, error) {
	if node == nil {
		return style.NullStyle, fmt.Errorf("no styled node to get %s from", key)
	}
	key = style.HyphenKey(key)
	p := GetLocalProperty(node.Styles(), key)
	switch {
	case key == "line-height" && (p.IsEmpty() || p.IsInherit() || p == "unset"):
		// unitless line heights are inherited as numbers, not as lengths
		if ancestor := nearestSpecified(node, key); ancestor != nil {
			p = GetLocalProperty(ancestor.Styles(), key)
			if !isUnitless(p.String()) && ancestor != node {
				return GetProperty(ancestor, key)
			}
		} else {
			p = style.GetUserAgentDefaultProperty(node.HTMLNode(), key)
		}
	case p.IsInherit(), p == "unset" && style.IsCascading(key), p.IsEmpty() && style.IsCascading(key):
		return GetCascadedProperty(node, key)
	case p.IsInitial(), p == "unset", p.IsEmpty():
		p = style.GetUserAgentDefaultProperty(node.HTMLNode(), key)
	}
	if p.IsEmpty() {
		return style.NullStyle, fmt.Errorf("property %s has no value for <%s>", key, tagOf(node))
	}
	return computeValue(node, key, p)
}

func tagOf(node *styledtree.StyNode) string {
	if h := node.HTMLNode(); h != nil {
		return h.Data
	}
	return "?"
}

// computeValue turns a specified value into its computed serialization.
func computeValue(node *styledtree.StyNode, key string, p style.Property) (style.Property, error) {
	switch {
	case strings.EqualFold(p.String(), "currentcolor"):
		if key == "color" {
			return GetCascadedProperty(node, "color")
		}
		return GetProperty(node, "color")
	case style.IsColorKey(key):
		return style.NormalizeColor(p), nil
	case strings.HasPrefix(key, "border-") && strings.HasSuffix(key, "-width"):
		return borderWidth(node, key, p)
	case key == "font-weight":
		return fontWeight(p), nil
	case key == "font-size":
		return fontSize(node, p)
	case key == "line-height":
		return lineHeight(node, p)
	}
	return resolveLengths(node, key, p)
}

// nearestSpecified finds the closest node, starting with node itself,
// which specifies a value for key other than inherit/unset.
func nearestSpecified(node *styledtree.StyNode, key string) *styledtree.StyNode {
	for n := node; n != nil; n = n.ParentNode() {
		p := GetLocalProperty(n.Styles(), key)
		if !p.IsEmpty() && !p.IsInherit() && p != "unset" {
			return n
		}
	}
	return nil
}

func isUnitless(s string) bool {
	return !math.IsNaN(ParseFloat(s)) && strings.IndexFunc(s, unicode.IsLetter) < 0 && !strings.HasSuffix(s, "%")
}

func borderWidth(node *styledtree.StyNode, key string, p style.Property) (style.Property, error) {
	styleKey := strings.TrimSuffix(key, "-width") + "-style"
	if bs, err := GetProperty(node, styleKey); err == nil && (bs == "none" || bs == "hidden") {
		return "0px", nil
	}
	switch p {
	case "thin":
		return "1px", nil
	case "medium":
		return "3px", nil
	case "thick":
		return "5px", nil
	}
	return resolveLengths(node, key, p)
}

func fontWeight(p style.Property) style.Property {
	switch p {
	case "normal":
		return "400"
	case "bold":
		return "700"
	}
	return p
}

func fontSize(node *styledtree.StyNode, p style.Property) (style.Property, error) {
	s := p.String()
	if strings.HasSuffix(s, "em") && !strings.HasSuffix(s, "rem") || strings.HasSuffix(s, "%") {
		base := 16.0
		if parent := node.ParentNode(); parent != nil {
			if pf, err := GetProperty(parent, "font-size"); err == nil {
				base = ParseFloat(pf.String())
			}
		}
		n := ParseFloat(s)
		if strings.HasSuffix(s, "%") {
			n /= 100
		}
		return style.Property(FormatPx(n * base)), nil
	}
	return resolveLengths(node, "font-size", p)
}

func lineHeight(node *styledtree.StyNode, p style.Property) (style.Property, error) {
	s := p.String()
	n := ParseFloat(s)
	if s == "normal" || math.IsNaN(n) {
		return p, nil
	}
	if isUnitless(s) || strings.HasSuffix(s, "%") || strings.HasSuffix(s, "em") && !strings.HasSuffix(s, "rem") {
		fs, err := GetProperty(node, "font-size")
		if err != nil {
			return p, err
		}
		if strings.HasSuffix(s, "%") {
			n /= 100
		}
		return style.Property(FormatPx(n * ParseFloat(fs.String()))), nil
	}
	return resolveLengths(node, "line-height", p)
}

// resolveLengths converts every rem/em length inside a value to px, and a
// bare zero of a length property to 0px. Other tokens are kept verbatim.
func resolveLengths(node *styledtree.StyNode, key string, p style.Property) (style.Property, error) {
	fields := strings.Fields(p.String())
	if len(fields) == 0 {
		return p, nil
	}
	changed := false
	for i, f := range fields {
		trail := ""
		if strings.HasSuffix(f, ",") {
			f, trail = strings.TrimSuffix(f, ","), ","
		}
		n := ParseFloat(f)
		if math.IsNaN(n) {
			continue
		}
		var px float64
		switch {
		case f == "0" && isLengthKey(key):
			px = 0
		case strings.HasSuffix(f, "rem"):
			px = n * rootFontSize(node)
		case strings.HasSuffix(f, "em"):
			fs, err := GetProperty(node, "font-size")
			if err != nil {
				return p, err
			}
			px = n * ParseFloat(fs.String())
		default:
			continue
		}
		fields[i] = FormatPx(px) + trail
		changed = true
	}
	if !changed {
		return p, nil
	}
	return style.Property(strings.Join(fields, " ")), nil
}

func isLengthKey(key string) bool {
	switch key {
	case "width", "height", "min-width", "min-height", "max-width", "max-height",
		"top", "right", "bottom", "left", "letter-spacing", "word-spacing",
		"text-indent", "gap", "row-gap", "column-gap", "font-size":
		return true
	}
	return strings.HasPrefix(key, "margin-") || strings.HasPrefix(key, "padding-") ||
		strings.HasSuffix(key, "-radius") || strings.HasSuffix(key, "-width")
}

// rootFontSize is the font size specified for the root element, which
// rem units refer to.
func rootFontSize(node *styledtree.StyNode) float64 {
	root := node
	for p := root.ParentNode(); p != nil && p.HTMLNode() != nil && p.HTMLNode().Type == html.ElementNode; p = p.ParentNode() {
		root = p
	}
	if fs := GetLocalProperty(root.Styles(), "font-size"); !fs.IsEmpty() && strings.HasSuffix(fs.String(), "px") {
		return ParseFloat(fs.String())
	}
	return 16
}

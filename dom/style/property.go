package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecheck.dom'
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
//
// Computed values are kept verbatim: font stacks and shadow lists are
// compared character by character, so no case folding takes place.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// SortKeyValues sorts a slice of key-value pairs by key, in place.
func SortKeyValues(kvs []KeyValue) []KeyValue {
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
	return kvs
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	Parent    *PropertyGroup
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction, property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for _, kv := range pg.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	return s
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	return SortKeyValues(r)
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
func (pg *PropertyGroup) Set(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = Property(strings.TrimSpace(string(p)))
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	if _, exists := pg.propsDict[key]; !exists {
		pg.propsDict[key] = p
	}
}

// Cascade finds the ancesting PropertyGroup containing the given property-key.
// It returns nil if no group in the chain has the key set.
func (pg *PropertyGroup) Cascade(key string) *PropertyGroup {
	it := pg
	for it != nil && !it.IsSet(key) {
		it = it.Parent
	}
	return it
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGFont      = "Font"
	PGText      = "Text"
	PGEffects   = "Effects"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":                 PGMargins, // Margins
	"margin-left":                PGMargins,
	"margin-right":               PGMargins,
	"margin-bottom":              PGMargins,
	"padding-top":                PGPadding, // Padding
	"padding-left":               PGPadding,
	"padding-right":              PGPadding,
	"padding-bottom":             PGPadding,
	"border-top-color":           PGBorder, // Border
	"border-left-color":          PGBorder,
	"border-right-color":         PGBorder,
	"border-bottom-color":        PGBorder,
	"border-top-width":           PGBorder,
	"border-left-width":          PGBorder,
	"border-right-width":         PGBorder,
	"border-bottom-width":        PGBorder,
	"border-top-style":           PGBorder,
	"border-left-style":          PGBorder,
	"border-right-style":         PGBorder,
	"border-bottom-style":        PGBorder,
	"border-top-left-radius":     PGBorder,
	"border-top-right-radius":    PGBorder,
	"border-bottom-left-radius":  PGBorder,
	"border-bottom-right-radius": PGBorder,
	"width":                      PGDimension, // Dimension
	"height":                     PGDimension,
	"min-width":                  PGDimension,
	"min-height":                 PGDimension,
	"max-width":                  PGDimension,
	"max-height":                 PGDimension,
	"display":                    PGDisplay, // Display
	"float":                      PGDisplay,
	"visibility":                 PGDisplay,
	"position":                   PGDisplay,
	"color":                      PGColor, // Color
	"background-color":           PGColor,
	"font-family":                PGFont, // Font
	"font-size":                  PGFont,
	"font-style":                 PGFont,
	"font-weight":                PGFont,
	"line-height":                PGFont,
	"direction":                  PGText, // Text
	"text-align":                 PGText,
	"white-space":                PGText,
	"word-spacing":               PGText,
	"letter-spacing":             PGText,
	"word-break":                 PGText,
	"overflow-wrap":              PGText,
	"box-shadow":                 PGEffects, // Effects
	"opacity":                    PGEffects,
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "font-") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "quotes", "visibility", "white-space":
		return true
	case "letter-spacing", "line-height", "text-align", "text-indent", "text-transform":
		return true
	case "word-spacing", "word-break", "overflow-wrap":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left  " => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	case "border":
		return splitBorder(fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// IsCompoundProperty is true for the shortcut keys SplitCompoundProperty
// knows how to distribute.
func IsCompoundProperty(key string) bool {
	switch key {
	case "margin", "padding", "border", "border-color", "border-width", "border-style", "border-radius":
		return true
	}
	return false
}

// JoinCompoundProperty is the reverse of SplitCompoundProperty for the
// four-sided shortcuts: it serializes the long-hand values of pmap into the
// shortest shortcut form, e.g. "16px 32px" for equal top/bottom and
// left/right paddings. It returns false if a component is missing.
// "border" is not joinable.
func JoinCompoundProperty(key string, pmap *PropertyMap) (Property, bool) {
	var pre, suf string
	dirs := fourDirs
	switch key {
	case "margin", "padding":
		pre = key
	case "border-color", "border-width", "border-style":
		pre, suf = "border", strings.TrimPrefix(key, "border-")
	case "border-radius":
		pre, suf, dirs = "border", "radius", fourCorners
	default:
		return NullStyle, false
	}
	var v [4]string
	for i, dir := range dirs {
		value, ok := pmap.Property(p(pre, suf, dir))
		if !ok || value.IsEmpty() {
			return NullStyle, false
		}
		v[i] = value.String()
	}
	switch {
	case v[0] == v[1] && v[0] == v[2] && v[0] == v[3]:
		return Property(v[0]), true
	case v[0] == v[2] && v[1] == v[3]:
		return Property(v[0] + " " + v[1]), true
	case v[1] == v[3]:
		return Property(v[0] + " " + v[1] + " " + v[2]), true
	}
	return Property(strings.Join(v[:], " ")), true
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

// splitBorder distributes `border: 1px solid #ccc` to all four sides.
// Fields are classified by shape: a border style keyword, a length, or else
// a colour.
func splitBorder(fields []string) ([]KeyValue, error) {
	if len(fields) == 0 || len(fields) > 3 {
		return nil, fmt.Errorf("expecting 1-3 values for border")
	}
	var r []KeyValue
	for _, f := range fields {
		suffix := "color"
		switch {
		case borderStyles[f]:
			suffix = "style"
		case f == "0" || f == "thin" || f == "medium" || f == "thick" || startsNumeric(f):
			suffix = "width"
		}
		for _, dir := range fourDirs {
			r = append(r, KeyValue{p("border", suffix, dir), Property(f)})
		}
	}
	return r, nil
}

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

func startsNumeric(s string) bool {
	return s != "" && (s[0] >= '0' && s[0] <= '9' || s[0] == '.')
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a DOM node: a DOM node links to a property map,
// which contains zero or more property groups. Property maps may share property groups.
type PropertyMap struct {
	// As CSS defines a whole lot of properties, we segment them into logical groups.
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, kv := range pmap.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
// No cascading is performed
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Properties returns every property of every group, sorted by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap == nil {
		return nil
	}
	var r []KeyValue
	for _, g := range pmap.m {
		for k, v := range g.propsDict {
			r = append(r, KeyValue{k, v})
		}
	}
	return SortKeyValues(r)
}

// AddAllFromGroup transfers all style properties from a property group
// to a property map. If overwrite is set, existing style property values
// will be overwritten, otherwise only new values are set.
//
// If the property map does not yet contain a group of this kind, it will
// simply set this group (instead of copying values).
func (pmap *PropertyMap) AddAllFromGroup(group *PropertyGroup, overwrite bool) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	g := pmap.Group(group.name)
	if g == nil {
		pmap.m[group.name] = group
	} else {
		for k, v := range group.propsDict {
			if overwrite {
				g.Set(k, v)
			} else {
				g.Add(k, v)
			}
		}
	}
	return pmap
}

// Set puts a property into this property map, overwriting a previous
// value, e.g.,
//
//    pm.Set("funny-margin", "big")
//
func (pmap *PropertyMap) Set(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

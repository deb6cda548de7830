package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestHyphenKey(t *testing.T) {
	for _, x := range []struct{ in, out string }{
		{"paddingTop", "padding-top"},
		{"padding-top", "padding-top"},
		{"boxShadow", "box-shadow"},
		{"color", "color"},
		{"WebkitTransform", "-webkit-transform"},
		{"cssFloat", "float"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"--accent", "--accent"},
	} {
		if k := HyphenKey(x.in); k != x.out {
			t.Errorf("expected HyphenKey(%q) to be %q, is %q", x.in, x.out, k)
		}
	}
}

func TestCamelKey(t *testing.T) {
	if k := CamelKey("box-shadow"); k != "boxShadow" {
		t.Errorf("expected boxShadow, is %q", k)
	}
	if k := CamelKey("maxWidth"); k != "maxWidth" {
		t.Errorf("expected camel keys to pass unchanged, have %q", k)
	}
}

func TestSplitCompoundPadding(t *testing.T) {
	kvs, err := SplitCompoundProperty("padding", "16px 32px")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]Property{
		"padding-top":    "16px",
		"padding-right":  "32px",
		"padding-bottom": "16px",
		"padding-left":   "32px",
	}
	for _, kv := range kvs {
		if want[kv.Key] != kv.Value {
			t.Errorf("expected %s = %s, is %s", kv.Key, want[kv.Key], kv.Value)
		}
	}
}

func TestSplitCompoundRadius(t *testing.T) {
	kvs, err := SplitCompoundProperty("border-radius", "12px")
	if err != nil {
		t.Fatal(err)
	}
	if kvs[0].Key != "border-top-left-radius" || kvs[0].Value != "12px" {
		t.Errorf("expected border-top-left-radius = 12px, is %v", kvs[0])
	}
}

func TestSplitBorder(t *testing.T) {
	kvs, err := SplitCompoundProperty("border", "1px solid #ccc")
	if err != nil {
		t.Fatal(err)
	}
	if len(kvs) != 12 {
		t.Fatalf("expected 12 long-hand properties, have %d", len(kvs))
	}
	pmap := NewPropertyMap()
	for _, kv := range kvs {
		pmap.Set(kv.Key, kv.Value)
	}
	if w, _ := pmap.Property("border-left-width"); w != "1px" {
		t.Errorf("expected border-left-width 1px, is %q", w)
	}
	if s, _ := pmap.Property("border-bottom-style"); s != "solid" {
		t.Errorf("expected border-bottom-style solid, is %q", s)
	}
}

func TestSplitUnknownCompound(t *testing.T) {
	if _, err := SplitCompoundProperty("font", "12px serif"); err == nil {
		t.Error("expected font shorthand to be rejected")
	}
}

func TestPropertyMapKeepsCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.dom")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Set("font-family", "Inter, sans-serif")
	p, ok := pmap.Property("font-family")
	if !ok || p != "Inter, sans-serif" {
		t.Errorf("expected font stack to be kept verbatim, is %q", p)
	}
	if g := pmap.Group(PGFont); g == nil {
		t.Error("expected font-family to live in group Font")
	}
}

func TestPropertyMapUnknownKey(t *testing.T) {
	pmap := NewPropertyMap()
	pmap.Set("accent-color", "auto")
	if p, ok := pmap.Property("accent-color"); !ok || p != "auto" {
		t.Errorf("expected extension property to be stored in group X, is %q", p)
	}
	var nilmap *PropertyMap
	if _, ok := nilmap.Property("color"); ok {
		t.Error("expected nil property map to be empty")
	}
}

func TestPropertyGroupCascade(t *testing.T) {
	root := NewPropertyGroup(PGColor)
	root.Set("color", "rgb(0, 0, 0)")
	child := NewPropertyGroup(PGColor)
	child.Parent = root
	if g := child.Cascade("color"); g != root {
		t.Errorf("expected cascade to find root group, found %v", g)
	}
	if g := child.Cascade("background-color"); g != nil {
		t.Errorf("expected cascade to fail for unset key, found %v", g)
	}
}

func TestNormalizeColor(t *testing.T) {
	for _, x := range []struct{ in, out Property }{
		{"#1e293b", "rgb(30, 41, 59)"},
		{"#fff", "rgb(255, 255, 255)"},
		{"rgb(30,41,59)", "rgb(30, 41, 59)"},
		{"rgba(0,0,0,0.1)", "rgba(0, 0, 0, 0.1)"},
		{"rgba(0, 0, 0, 1)", "rgb(0, 0, 0)"},
		{"transparent", "rgba(0, 0, 0, 0)"},
		{"#00000080", "rgba(0, 0, 0, 0.5)"},
		{"16px", "16px"},
	} {
		if c := NormalizeColor(x.in); c != x.out {
			t.Errorf("expected %q to normalize to %q, is %q", x.in, x.out, c)
		}
	}
}

func TestUserAgentDefaults(t *testing.T) {
	if d := GetUserAgentDefaultProperty(nil, "display"); d != "none" {
		t.Errorf("expected display of nil node to be none, is %q", d)
	}
	if p := GetUserAgentDefaultProperty(nil, "box-shadow"); p != "none" {
		t.Errorf("expected box-shadow initial value none, is %q", p)
	}
	keys := KnownKeys()
	if len(keys) == 0 || keys[0] > keys[len(keys)-1] {
		t.Errorf("expected a sorted non-empty key list, have %v", keys)
	}
}

func TestJoinCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecheck.dom")
	defer teardown()
	//
	for _, x := range []struct {
		value Property
		out   Property
	}{
		{"12px", "12px"},
		{"16px 32px", "16px 32px"},
		{"1px 2px 3px", "1px 2px 3px"},
		{"1px 2px 3px 4px", "1px 2px 3px 4px"},
	} {
		pmap := NewPropertyMap()
		kvs, _ := SplitCompoundProperty("padding", x.value)
		for _, kv := range kvs {
			pmap.Set(kv.Key, kv.Value)
		}
		if p, ok := JoinCompoundProperty("padding", pmap); !ok || p != x.out {
			t.Errorf("expected padding %q to join to %q, is %q", x.value, x.out, p)
		}
	}
	pmap := NewPropertyMap()
	pmap.Set("margin-top", "0px")
	if _, ok := JoinCompoundProperty("margin", pmap); ok {
		t.Errorf("expected incomplete margins not to join")
	}
	if _, ok := JoinCompoundProperty("border", pmap); ok {
		t.Errorf("expected border not to be joinable")
	}
}

package style

import (
	"strings"
	"unicode"
)

// HyphenKey normalizes a property name to the hyphenated form computed-style
// lookups are keyed by. Camel-cased names as used by scripting APIs are
// accepted:
//
//    HyphenKey("paddingTop")      => "padding-top"
//    HyphenKey("WebkitTransform") => "-webkit-transform"
//    HyphenKey("cssFloat")        => "float"
//    HyphenKey("margin-left")     => "margin-left"
//
func HyphenKey(name string) string {
	name = strings.TrimSpace(name)
	if name == "cssFloat" {
		return "float"
	}
	if strings.HasPrefix(name, "--") || strings.ContainsRune(name, '-') {
		return strings.ToLower(name)
	}
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 || isVendorPrefixed(name) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isVendorPrefixed(name string) bool {
	for _, v := range []string{"Webkit", "Moz", "Ms", "O"} {
		if strings.HasPrefix(name, v) && len(name) > len(v) && unicode.IsUpper(rune(name[len(v)])) {
			return true
		}
	}
	return false
}

// CamelKey is the inverse of HyphenKey, for display purposes.
//
//    CamelKey("box-shadow") => "boxShadow"
//
func CamelKey(key string) string {
	key = HyphenKey(key)
	if strings.HasPrefix(key, "--") {
		return key
	}
	key = strings.TrimPrefix(key, "-")
	parts := strings.Split(key, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

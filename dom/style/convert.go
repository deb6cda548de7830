package style

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]Property{
	"black":       "rgb(0, 0, 0)",
	"white":       "rgb(255, 255, 255)",
	"red":         "rgb(255, 0, 0)",
	"green":       "rgb(0, 128, 0)",
	"blue":        "rgb(0, 0, 255)",
	"gray":        "rgb(128, 128, 128)",
	"grey":        "rgb(128, 128, 128)",
	"transparent": "rgba(0, 0, 0, 0)",
}

// NormalizeColor serializes a colour value the way getComputedStyle does:
// hex notation and a few keywords become `rgb(r, g, b)`, and functional
// notation is re-spaced. Values which are not colours are returned unchanged.
func NormalizeColor(p Property) Property {
	s := strings.TrimSpace(p.String())
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") {
		if len(s) == 9 || len(s) == 5 { // #rrggbbaa, #rgba
			return normalizeHexAlpha(s, p)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			tracer().Debugf("not a hex colour: %q", s)
			return p
		}
		r, g, b := c.RGB255()
		return Property(fmt.Sprintf("rgb(%d, %d, %d)", r, g, b))
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return respaceFunctional(s)
	}
	return p
}

func normalizeHexAlpha(s string, p Property) Property {
	var hex, alpha string
	if len(s) == 9 {
		hex, alpha = s[:7], s[7:]
	} else {
		hex = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		alpha = strings.Repeat(s[4:5], 2)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return p
	}
	a, err := strconv.ParseUint(alpha, 16, 8)
	if err != nil {
		return p
	}
	r, g, b := c.RGB255()
	if a == 255 {
		return Property(fmt.Sprintf("rgb(%d, %d, %d)", r, g, b))
	}
	return Property(fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b,
		strconv.FormatFloat(float64(a)/255, 'g', 2, 64)))
}

// respaceFunctional turns "rgb(30,41,59)" into "rgb(30, 41, 59)".
func respaceFunctional(s string) Property {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return Property(s)
	}
	args := strings.Split(s[open+1:end], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	fn := strings.ToLower(s[:open])
	if fn == "rgba" && len(args) == 4 && args[3] == "1" {
		fn, args = "rgb", args[:3]
	}
	return Property(fn + "(" + strings.Join(args, ", ") + ")")
}

// IsColorKey is true for properties holding a single colour value.
func IsColorKey(key string) bool {
	return key == "color" || strings.HasSuffix(key, "-color")
}

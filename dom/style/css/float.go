package css

import (
	"math"
	"strconv"
	"strings"
)

// ParseFloat reads the longest numeric prefix of s, after leading white
// space, the way JavaScript's parseFloat does: "13.6px" is 13.6, "-5px" is
// -5, ".5em" is 0.5. Strings without a numeric prefix yield NaN.
func ParseFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\f")
	end, digits := 0, 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && isDigit(s[end]) {
		end, digits = end+1, digits+1
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end, digits = end+1, digits+1
		}
	}
	if digits == 0 {
		if strings.HasPrefix(strings.TrimLeft(s, "+-"), "Infinity") {
			if strings.HasPrefix(s, "-") {
				return math.Inf(-1)
			}
			return math.Inf(1)
		}
		return math.NaN()
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if exp < len(s) && isDigit(s[exp]) {
			for exp < len(s) && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package harness

import (
	"testing"

	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	for _, x := range []struct {
		property string
		expected string
		actual   style.Property
		ok       bool
	}{
		{"fontSize", "13.6px", "13.4px", true},
		{"fontSize", "13.6px", "13.6px", true},
		{"fontSize", "13.6px", "12.9px", false},
		{"paddingTop", "16px", "16.5px", true},
		{"paddingTop", "16px", "16.6px", true},
		{"paddingTop", "16px", "15.4px", true},
		{"paddingTop", "16px", "16.61px", false},
		{"paddingTop", "16px", "auto", false},
		{"color", "rgb(30, 41, 59)", "rgb(30, 41, 59)", true},
		{"color", "rgb(30, 41, 59)", "rgb(30, 41, 60)", false},
		{"fontFamily", "Inter, sans-serif", "Inter, sans-serif", true},
		{"boxShadow", "rgba(0, 0, 0, 0.1) 0px 20px 25px -5px", "rgba(0, 0, 0, 0.1) 0px 20px 25px -5px", true},
		{"boxShadow", "0px", "0.2px", false},
		{"box-shadow", "0px", "0.2px", false},
	} {
		rec := &recorder{}
		ok := Compare(rec, x.property, x.expected, x.actual)
		assert.Equal(t, x.ok, ok, "%s: %q vs %q", x.property, x.expected, x.actual)
		assert.Equal(t, x.ok, len(rec.messages) == 0)
	}
}

func TestCompareMissingValue(t *testing.T) {
	rec := &recorder{}
	assert.False(t, Compare(rec, "color", "rgb(30, 41, 59)", style.NullStyle))
	if assert.Len(t, rec.messages, 1) {
		assert.Equal(t, "property color did not return a value", firstLine(rec.messages[0]))
	}
}

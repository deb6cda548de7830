package harness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveValue(t *testing.T) {
	responsive := Expect("paddingTop", "16px", "32px")
	fixed := Expect("maxWidth", "1280px")
	color := Expect("color", "rgb(30,41,59)", "#fff")
	for _, x := range []struct {
		e     Expectation
		width int
		want  string
	}{
		{responsive, 500, "16px"},
		{responsive, 767, "16px"},
		{responsive, 768, "32px"},
		{responsive, 1280, "32px"},
		{fixed, 500, "1280px"},
		{fixed, 900, "1280px"},
		{color, 500, "rgb(30, 41, 59)"},
		{color, 900, "rgb(255, 255, 255)"},
		{Expect("backgroundColor", "RGBA(0,0,0,1)"), 500, "rgb(0, 0, 0)"},
		{Expect("boxShadow", "rgba(0,0,0,0.1) 0px 1px"), 500, "rgba(0,0,0,0.1) 0px 1px"},
	} {
		assert.Equal(t, x.want, Effective(x.e, x.width), "%v at %d", x.e, x.width)
	}
	assert.Equal(t, "paddingTop: 16px | 32px", responsive.String())
}

func TestTableKeepsOrder(t *testing.T) {
	table := NewTable().
		Add("Typography", Expect("color", "rgb(30, 41, 59)")).
		Rows("Layout", []string{"paddingTop", "16px", "32px"}, []string{"maxWidth", "1280px"}).
		Add("Typography", Expect("fontSize", "13.6px"))
	cats := table.Categories()
	if assert.Len(t, cats, 2) {
		assert.Equal(t, "Typography", cats[0].Label)
		assert.Equal(t, "Layout", cats[1].Label)
		assert.Equal(t, "fontSize", cats[0].Rows[1].Property)
		assert.True(t, cats[1].Rows[0].HasWide)
		assert.False(t, cats[1].Rows[1].HasWide)
	}
	assert.Equal(t, 4, table.Len())
}

func TestMalformedCategories(t *testing.T) {
	table := NewTable().
		Rows("Layout", []string{"paddingTop"}, []string{"maxWidth", "1280px"}).
		Malformed("Appearance", errors.New("expected a list"))
	cats := table.Categories()
	assert.True(t, errors.Is(cats[0].Err, ErrMalformedCategory))
	assert.Len(t, cats[0].Rows, 1, "well-formed rows are kept")
	assert.True(t, errors.Is(cats[1].Err, ErrMalformedCategory))
	assert.Contains(t, cats[1].Err.Error(), "expected a list")
	var nilTable *Table
	assert.Empty(t, nilTable.Categories())
}

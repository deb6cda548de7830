package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeElement struct {
	tag     string
	classes []string
	id      string
	text    string
}

func (e fakeElement) Tag() string       { return e.tag }
func (e fakeElement) Classes() []string { return e.classes }
func (e fakeElement) ID() string        { return e.id }
func (e fakeElement) Text() string      { return e.text }

func TestLabel(t *testing.T) {
	card := fakeElement{tag: "ARTICLE", classes: []string{"tile", "card"}, text: "\n  Layout\n  Blocks stack vertically  "}
	bare := fakeElement{tag: "main", id: "content"}
	long := fakeElement{tag: "p", text: "One type scale for the whole page, inherited from the body"}
	for _, x := range []struct {
		label string
		want  string
	}{
		{Label(card, ".card", 0, 3, ""), `card (1 of 3) "Layout Blocks stack vertically"`},
		{Label(card, ".card:hover", 2, 3, ""), `card (3 of 3) "Layout Blocks stack vertically"`},
		{Label(card, "article", 0, 1, ""), `tile "Layout Blocks stack vertically"`},
		{Label(card, ".other", 0, 1, "Cards"), `Cards: tile "Layout Blocks stack vertically"`},
		{Label(bare, "main", 0, 1, ""), `main #content`},
		{Label(fakeElement{tag: "HR"}, "hr", 1, 2, ""), `hr (2 of 2)`},
		{Label(long, "p", 0, 1, ""), `p "One type scale for the whole p…"`},
	} {
		assert.Equal(t, x.want, x.label)
	}
}

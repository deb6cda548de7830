/*
Package dom abstracts the rendered document a style check runs against.

A Document answers the questions a browser's DOM and CSSOM would answer:
which elements match a selector, what is the computed style of an element,
where is it placed on screen and how wide is the viewport. Implementations
are an in-memory document of parsed HTML and CSS (package dom/static) and
a live browser page (package browser).

Elements are opaque handles. They are only meaningful for the document
which produced them; handing an element to a different document results
in ErrForeignElement.

Scratch elements

For diffing an element's computed style against an unstyled baseline, a
document is able to insert a bare element of the same tag directly after
a given element, so that it shares the cascade context of its sibling.
Every call to InsertScratch has to be paired with a call to RemoveScratch.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecheck.dom'
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.dom")
}

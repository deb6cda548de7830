/*
Package static implements an in-memory dom.Document from an HTML page and
its stylesheets.

A static document parses the HTML with golang.org/x/net/html, collects the
author styles from embedded <style> elements, `style` attributes and
additional stylesheets, and runs the cascade for every element. Media
conditions on viewport width are evaluated against a viewport width which
clients may change at any time with SetViewportWidth; the document will
restyle itself accordingly.

Static documents do not perform layout. Element geometry has to be placed
by the client, either as fixed rectangles or as a function of viewport
width:

    doc.Place(".card", static.Fixed(dom.NewRect(0, 0, 300, 120)))

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package static

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecheck.dom'
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.dom")
}

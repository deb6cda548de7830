/*
Package cssom provides functionality for CSS styling.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
The static document platform needs just enough of it to compute the
values a browser would report from getComputedStyle for plain utility
stylesheets: qualified rules, their declarations, and `@media` blocks
conditioned on the viewport width.

CSS handling is de-coupled by introducing interfaces StyleSheet and Rule.
Concrete implementations may be found in sub-packages (see package
douceuradapter). Selector matching is left to the cascade, which
relies on https://godoc.org/github.com/andybalholm/cascadia.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecheck.css'.
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.css")
}

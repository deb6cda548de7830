/*
Package browser implements dom.Document for a page loaded into a live
browser.

All questions about the page are answered by evaluating small JavaScript
functions in the page, through an Evaluator. Sub-packages provide
evaluators for Chrome DevTools (package browser/cdp) and for Playwright
(package browser/pw).

Element handles refer to the n-th match of the selector which produced
them. They are not stable against changes of the DOM other than the
scratch elements this package inserts itself.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package browser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecheck.browser'
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.browser")
}

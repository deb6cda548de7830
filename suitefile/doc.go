/*
Package suitefile reads style check suites from YAML files.

A suite file names the targets to check, their expectation tables and
unique assertions, and group checks over several targets:

	name: Supblocks
	targets:
	  - selector: .supblock--header
	    categories:
	      Layout:
	        - [maxWidth, 1280px]
	        - [paddingTop, 16px, 32px]
	    unique:
	      - name: should have inner padding > 10px
	        predicate: min-length
	        property: padding
	        px: 10
	groups:
	  - check: matching-width
	    selectors: [.supblock--header, .supblock--main]

Rows of a category are [property, compact] or [property, compact, wide].
A category which is not a list of rows is kept as a malformed category; it
fails as a single check instead of preventing the suite from loading.

For static documents, which do no layout, a suite file may place elements
with fixed rectangles or a vertical stack spanning the viewport.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package suitefile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecheck.harness'
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.harness")
}

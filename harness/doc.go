/*
Package harness turns declarative style expectations into a tree of named
pass/fail checks.

A Harness is created for a document. For a target (a selector or resolved
elements) and a Table of expected computed values, Harness.Styles registers
a sub-suite per element: an existence check, one check per expected
property, grouped by category, and checks for unique assertions supplied
by the caller.

    root := harness.NewSuite("Supblocks")
    h := harness.New(doc)
    layout := harness.NewTable().Add("Layout",
        harness.Expect("paddingTop", "16px", "32px"),
        harness.Expect("maxWidth", "1280px"),
    )
    err := h.Styles(root, reader.Selector(".supblock"), layout)
    summary := root.Run(reporter)

Expectations may be responsive: the wide value applies for viewport widths
at or above Breakpoint. The viewport width is read when a check is run,
not when it is registered, so a suite may be registered once and run at
different viewport widths.

Values ending in "px" are compared with a tolerance of 0.6 pixels, every
other value (and box shadows in any case) must match exactly.

Failures are local to a check. A failing or panicking check never
prevents its siblings from running.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package harness

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecheck.harness'
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.harness")
}

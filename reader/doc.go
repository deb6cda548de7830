/*
Package reader reads computed styles and geometry from a document.

A Reader translates a Target, i.e. a selector, a single element or a
collection of elements, into concrete elements and reads style values from
them. It never asserts anything.

    r := reader.New(doc)
    color, found, err := r.ReadStyle(reader.Selector("body"), "color")

Property names are accepted in hyphenated form ("padding-top") as well as
in camel case ("paddingTop").

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reader

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecheck.reader'
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.reader")
}

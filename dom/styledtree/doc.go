/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

Every element of an HTML parse tree gets a styled node, linking the HTML
node to the property map of values specified for it by the cascade.
Computed values are derived lazily from the specified values by package
dom/style/css, walking up the styled tree for inherited properties.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecheck.dom'.
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.dom")
}

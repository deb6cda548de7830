/*
Package report contains reporters for style check suites.

Reporters receive the events of harness.Suite.Run. Console prints failures
as they occur and a summary line per element suite, Tree prints the
complete suite tree with outcomes, and JSON writes a machine readable
summary. Multi fans events out to several reporters.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecheck.harness'
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.harness")
}

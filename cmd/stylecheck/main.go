/*
Command stylecheck checks the computed styles of a page against the
expectations of a suite file.

	stylecheck check suite.yaml page.html --width 500
	stylecheck check suite.yaml --url http://localhost:8080 --browser playwright
	stylecheck diff page.html .supblock --include padding,margin

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecheck.cli'
func tracer() tracing.Trace {
	return tracing.Select("stylecheck.cli")
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stylecheck:", err)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitCommandError)
	}
}

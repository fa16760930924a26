/*
Command cctk is a command-line front end for the compiler-construction toolkit.

It reports grammar analysis results and parser tables for grammar files,
parses token streams, compiles token definitions into DFAs, and offers an
interactive shell for regular expressions:

	cctk grammar expr.grammar
	cctk slr expr.grammar --dot cfsm.dot
	cctk parse expr.grammar input.tok
	cctk lex tokens.lex
	cctk repl

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// tracer traces with key 'cctk.cli'.
func tracer() tracing.Trace {
	return tracing.Select("cctk.cli")
}

func main() {
	if err := Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

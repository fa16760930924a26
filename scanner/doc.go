/*
Package scanner defines an interface for scanners to be used with the parsers of
this module, together with a reader for pre-tokenized input.

Token streams are plain text files with one token per line:

    <type> [value]

The token type names a terminal symbol of a grammar, the optional value is the
token's lexeme. An end-of-input token of type `$` is appended implicitly.

    stream, err := scanner.ReadTokenStream("input.tok", reader)
    parser.MakeTree(stream)

For quick experiments with source text, GoTokenizer wraps text/scanner and
produces tokens similar to the Go language. An adapter for lexmachine lives in
sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cctk.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cctk.scanner")
}

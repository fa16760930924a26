/*
Package lexer compiles token definitions into deterministic finite automata
and uses them for scanning input.

Token definitions are read from a line-oriented source of the form

	<name> <regex>

with one definition per line. Blank lines and lines starting with '#' are
ignored. Regular expressions must not contain white space; use '\s' for a
space character.

Scanning uses the longest match. If more than one definition matches the
longest prefix, the one defined first wins. Tokens of definitions with names
starting with '_' are matched but not reported, which is useful for white space.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cctk.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("cctk.lexer")
}

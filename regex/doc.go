/*
Package regex parses regular expressions into abstract syntax trees.

The regular expressions understood are deliberately simple. The alphabet
consists of literal characters, grouping with '(' and ')', alternation '|',
Kleene star '*', one-or-more '+' and character ranges like 'a-z'. A backslash
forces the next character to be taken literally; '\s', '\t' and '\n' denote
a space, a tab and a newline, respectively.

Parsing is done by an LL(1) parser (package ll) for a small regex grammar.
The resulting parse tree is simplified into an AST, which is the input for
the automaton construction of packages fa/nfa and fa/dfa:

	ast, err := regex.Compile("(a|b)*c")
	n := nfa.Build(ast)
	d := dfa.Build(n)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package regex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cctk.regex'.
func tracer() tracing.Trace {
	return tracing.Select("cctk.regex")
}

/*
Package ll provides a table-driven LL(1) parser, creating parse trees.

Clients have to use the tools of package lr to prepare the prediction table:

	g, err := lr.ReadGrammar("my.grammar", reader)
	ga := lr.Analysis(g)
	table := ga.LLTable()
	if table.Warning() != nil { … }   // grammar is not LL(1)

Finally parse some input:

	p := ll.NewParser(table)
	tokens, err := scanner.ReadTokenStream("input", reader)
	tree, err := p.MakeTree(tokens)

MakeTree returns the subtree for the goal symbol. Every non-terminal node
records the alternative it has been expanded with, every terminal leaf holds
its input token.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cctk.ll'.
func tracer() tracing.Trace {
	return tracing.Select("cctk.ll")
}

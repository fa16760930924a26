/*
Package lr implements grammars and grammar analysis for LL(1) and SLR(1) parsing.

Building a Grammar

Grammars are either read from a definition file or specified using a grammar
builder object. Grammar definitions look like this:

    S   -> A $
    A   -> T A
        |  lambda
    T   -> VAR equal E

Every symbol occuring on the left hand side of a rule is a non-terminal, every
other symbol is a terminal. `$` is the end-of-input marker, and the goal symbol
of the grammar is the LHS of the first rule containing it. `lambda` denotes an
empty production.

    g, err := lr.ReadGrammar("my.grammar", reader)

The same grammar may be specified with a builder:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").EOF()                  // S  ->  A $
    b.LHS("A").N("T").N("A").End()           // A  ->  T A
    b.LHS("A").Epsilon()                     // A  ->  lambda
    b.LHS("T").N("VAR").T("equal").N("E").End()
    …
    g, err := b.Grammar()

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to a GrammarAnalysis object, which determines all
lambda-deriving non-terminals and computes FIRST and FOLLOW sets as fixed points.

    ga := lr.Analysis(g)
    ga.Grammar().EachNonTerminal(
        func(A *Symbol) interface{} {
            fmt.Printf("FIRST(%s) = %v", A, ga.First(A))
            return nil
        })

PREDICT sets are derived from these, and are the basis for the LL(1) table:

    ok, warning := ga.DisjointCheck()  // false if the grammar is not LL(1)
    table := ga.LLTable()              // always created, check table.Warning()

Parser Construction

Using grammar analysis as input, a bottom-up parser table can be constructed.
First a characteristic finite state machine (CFSM) is built from the
grammar: the canonical collection of LR(0) item sets. The CFSM will then be
transformed into an SLR(1) table. The CFSM will not be thrown away,
but is made available to the client.  This is intended
for debugging purposes, but may be useful for error recovery, too.
It can be exported to Graphviz's Dot-format.

    lrgen := lr.NewTableGenerator(ga)
    table, err := lrgen.SLRTable()     // err is a *GrammarConflictError for non-SLR grammars

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cctk.lr'.
func tracer() tracing.Trace {
	return tracing.Select("cctk.lr")
}

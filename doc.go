/*
Package cctk is a compiler-construction toolkit.

It bundles two automata generators which are frequently needed when building
small languages and DSLs: parser-table generation for context-free grammars
and a regular-expression compiler producing finite automata. Package
structure is as follows:

■ lr: Package lr holds the grammar model, the grammar analysis (FIRST, FOLLOW,
PREDICT), LL(1) tables and the SLR(1) table generator.

■ ll: Package ll implements a table-driven LL(1) parser producing parse trees.

■ automaton: Package automaton provides a labeled state graph with
de-duplication of states, shared by the CFSM and DFA construction.

■ regex: Package regex parses regular expressions into an abstract syntax tree,
which is turned into automata by packages fa/nfa and fa/dfa.

■ lexer: Package lexer compiles named token definitions into DFAs.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cctk

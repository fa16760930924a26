/*
Package fa is the parent package for finite automata constructed from regular
expressions.

Sub-package nfa builds a non-deterministic automaton from the AST of a regular
expression (package regex) with a Thompson-style construction. Sub-package dfa
converts it into a deterministic automaton by subset construction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fa

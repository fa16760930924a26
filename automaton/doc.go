/*
Package automaton implements a labeled state graph for automata construction.

Both the characteristic finite state machine (CFSM) of an LR grammar and the
DFA of a regular expression are built by a worklist algorithm which discovers
states, checks whether an equal state has been seen before, and connects
states by labeled edges. Graph captures this pattern: states are registered
under a canonical key and receive dense integer IDs in order of discovery.

    g := automaton.New()
    s0, _ := g.Add(key0, payload0)
    s1, isNew := g.Add(key1, payload1)   // returns existing state for known key
    err := g.Connect(s0, s1, "a")        // ErrEdgeConflict on relabeling

Canonical keys may be computed from any value with KeyOf.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cctk.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("cctk.automaton")
}

/*
Package dfa converts NFAs into deterministic finite automata.

Conversion is done by subset construction: every DFA state is a lambda-closed
set of NFA states. DFA states are registered in a state graph (package
automaton), keyed by the ordered set of NFA states. The ID of a state in the
graph is its discovery index and serves as its name in reports.

There is no DFA minimization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dfa

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/cctk/automaton"
	"github.com/npillmayer/cctk/fa/nfa"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cctk.fa'.
func tracer() tracing.Trace {
	return tracing.Select("cctk.fa")
}

// DFA is a deterministic finite automaton. State payloads are the ordered
// NFA states a DFA state stands for.
type DFA struct {
	nfa   *nfa.NFA
	graph *automaton.Graph
	start *automaton.State
}

type stateSetKey struct {
	States []int
}

// Build constructs the DFA for an NFA.
//
// The start state is the lambda-closure of the NFA's start state. Starting
// from there, for every discovered state and every character of the
// alphabet, the lambda-closure of the character transitions is computed. A
// non-empty result which has not been seen before is a new state. A state is
// accepting if it contains the NFA's accepting state.
func Build(n *nfa.NFA) *DFA {
	d := &DFA{nfa: n, graph: automaton.New()}
	d.start, _ = d.register(n.LambdaClosure(n.Start()))
	work := arraystack.New()
	work.Push(d.start)
	for !work.Empty() {
		x, _ := work.Pop()
		s := x.(*automaton.State)
		for _, c := range n.Alphabet() {
			next := n.LambdaClosure(n.Move(s.Payload.([]int), c)...)
			if len(next) == 0 {
				continue
			}
			t, isNew := d.register(next)
			if isNew {
				tracer().Debugf("DFA state %d = %v", t.ID, next)
				work.Push(t)
			}
			if err := d.graph.Connect(s, t, string(c)); err != nil {
				tracer().Errorf("DFA: %v", err) // cannot happen: one target per char
			}
		}
	}
	tracer().Infof("DFA has %d states", d.graph.Size())
	return d
}

func (d *DFA) register(states []int) (*automaton.State, bool) {
	key, err := automaton.KeyOf(stateSetKey{States: states})
	if err != nil {
		panic(err) // structhash handles all plain structs
	}
	s, isNew := d.graph.Add(key, states)
	if isNew {
		for _, ns := range states {
			if ns == d.nfa.Accepting() {
				s.Accept = true
			}
		}
	}
	return s, isNew
}

// NFA returns the NFA the DFA has been built from.
func (d *DFA) NFA() *nfa.NFA {
	return d.nfa
}

// Graph returns the state graph of the DFA.
func (d *DFA) Graph() *automaton.Graph {
	return d.graph
}

// Size returns the number of states.
func (d *DFA) Size() int {
	return d.graph.Size()
}

// Start returns the ID of the start state.
func (d *DFA) Start() int {
	return d.start.ID
}

// IsAccepting is true if state no. id is accepting.
func (d *DFA) IsAccepting(id int) bool {
	s := d.graph.State(id)
	return s != nil && s.Accept
}

// AcceptingStates returns the IDs of all accepting states, ordered.
func (d *DFA) AcceptingStates() []int {
	var acc []int
	for _, s := range d.graph.States() {
		if s.Accept {
			acc = append(acc, s.ID)
		}
	}
	return acc
}

// NFAStates returns the NFA states a DFA state stands for.
func (d *DFA) NFAStates(id int) []int {
	if s := d.graph.State(id); s != nil {
		return s.Payload.([]int)
	}
	return nil
}

// Alphabet returns the input characters, ordered.
func (d *DFA) Alphabet() []rune {
	return d.nfa.Alphabet()
}

// Step returns the state reached from state no. id on reading c.
func (d *DFA) Step(id int, c rune) (int, bool) {
	s := d.graph.State(id)
	if s == nil {
		return 0, false
	}
	if t, ok := d.graph.Target(s, string(c)); ok {
		return t.ID, true
	}
	return 0, false
}

// Accepts runs the DFA on an input string.
func (d *DFA) Accepts(input string) bool {
	s := d.Start()
	for _, c := range input {
		var ok bool
		if s, ok = d.Step(s, c); !ok {
			return false
		}
	}
	return d.IsAccepting(s)
}

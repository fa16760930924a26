/*
Package nfa builds non-deterministic finite automata from regular expressions.

Construction follows Thompson: every node of a regex AST is wired between an
entry and an exit state. Sequences chain their children through fresh
intermediate states, alternations wire all children between the same pair of
states, and a Kleene star loops on a fresh state, which is connected to entry
and exit by lambda transitions. Nondeterminism stems from lambda transitions
and from characters leading to more than one state.

The start state is always 0, the single accepting state is the state with the
highest index.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nfa

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/cctk/regex"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cctk.fa'.
func tracer() tracing.Trace {
	return tracing.Select("cctk.fa")
}

// NFA is a non-deterministic finite automaton.
type NFA struct {
	chars    []map[rune]*treeset.Set // character transitions, per state
	lambdas  []*treeset.Set          // lambda transitions, per state
	alphabet *treeset.Set            // runes used by character transitions
}

// Build constructs an NFA for a regex AST.
func Build(ast *regex.AST) *NFA {
	nfa := &NFA{alphabet: treeset.NewWith(utils.RuneComparator)}
	start, accept := nfa.newState(), nfa.newState()
	nfa.process(ast, start, accept)
	nfa.swap(accept, len(nfa.lambdas)-1)
	tracer().Debugf("NFA for %v has %d states", ast, nfa.Size())
	return nfa
}

func (nfa *NFA) newState() int {
	nfa.chars = append(nfa.chars, make(map[rune]*treeset.Set))
	nfa.lambdas = append(nfa.lambdas, treeset.NewWith(utils.IntComparator))
	return len(nfa.lambdas) - 1
}

func (nfa *NFA) addChar(from int, c rune, to int) {
	targets, ok := nfa.chars[from][c]
	if !ok {
		targets = treeset.NewWith(utils.IntComparator)
		nfa.chars[from][c] = targets
	}
	targets.Add(to)
	nfa.alphabet.Add(c)
}

func (nfa *NFA) addLambda(from, to int) {
	nfa.lambdas[from].Add(to)
}

func (nfa *NFA) process(node *regex.AST, entry, exit int) {
	switch node.Op {
	case regex.Literal:
		nfa.addChar(entry, node.Char, exit)
	case regex.Lambda:
		nfa.addLambda(entry, exit)
	case regex.Alternation:
		for _, ch := range node.Children {
			nfa.process(ch, entry, exit)
		}
	case regex.Sequence:
		from := entry
		for i, ch := range node.Children {
			to := exit
			if i < len(node.Children)-1 {
				to = nfa.newState()
			}
			nfa.process(ch, from, to)
			from = to
		}
		if len(node.Children) == 0 {
			nfa.addLambda(entry, exit)
		}
	case regex.KleeneStar:
		loop := nfa.newState()
		nfa.addLambda(entry, loop)
		nfa.addLambda(loop, exit)
		nfa.process(node.Children[0], loop, loop)
	}
}

// swap exchanges the indices of two states.
func (nfa *NFA) swap(i, j int) {
	if i == j {
		return
	}
	rename := func(s int) int {
		switch s {
		case i:
			return j
		case j:
			return i
		}
		return s
	}
	renameSet := func(set *treeset.Set) *treeset.Set {
		r := treeset.NewWith(utils.IntComparator)
		for _, s := range set.Values() {
			r.Add(rename(s.(int)))
		}
		return r
	}
	for s := range nfa.lambdas {
		nfa.lambdas[s] = renameSet(nfa.lambdas[s])
		for c, targets := range nfa.chars[s] {
			nfa.chars[s][c] = renameSet(targets)
		}
	}
	nfa.lambdas[i], nfa.lambdas[j] = nfa.lambdas[j], nfa.lambdas[i]
	nfa.chars[i], nfa.chars[j] = nfa.chars[j], nfa.chars[i]
}

// Size returns the number of states.
func (nfa *NFA) Size() int {
	return len(nfa.lambdas)
}

// Start returns the start state, which is always 0.
func (nfa *NFA) Start() int {
	return 0
}

// Accepting returns the accepting state, which is the state with the highest index.
func (nfa *NFA) Accepting() int {
	return len(nfa.lambdas) - 1
}

// Alphabet returns the characters of all character transitions, ordered.
func (nfa *NFA) Alphabet() []rune {
	runes := make([]rune, 0, nfa.alphabet.Size())
	for _, c := range nfa.alphabet.Values() {
		runes = append(runes, c.(rune))
	}
	return runes
}

// Transitions returns the states reachable from a state by reading c.
func (nfa *NFA) Transitions(state int, c rune) []int {
	if state < 0 || state >= nfa.Size() {
		return nil
	}
	if targets, ok := nfa.chars[state][c]; ok {
		return ints(targets)
	}
	return nil
}

// LambdaTransitions returns the states reachable from a state by a single
// lambda transition.
func (nfa *NFA) LambdaTransitions(state int) []int {
	if state < 0 || state >= nfa.Size() {
		return nil
	}
	return ints(nfa.lambdas[state])
}

// LambdaClosure returns the states reachable from a set of states by zero
// or more lambda transitions, ordered.
func (nfa *NFA) LambdaClosure(states ...int) []int {
	closure := treeset.NewWith(utils.IntComparator)
	work := arraystack.New()
	for _, s := range states {
		if !closure.Contains(s) {
			closure.Add(s)
			work.Push(s)
		}
	}
	for !work.Empty() {
		s, _ := work.Pop()
		for _, t := range nfa.lambdas[s.(int)].Values() {
			if !closure.Contains(t) {
				closure.Add(t)
				work.Push(t)
			}
		}
	}
	return ints(closure)
}

// Move returns the states reachable from a set of states by reading c, without
// following lambda transitions.
func (nfa *NFA) Move(states []int, c rune) []int {
	targets := treeset.NewWith(utils.IntComparator)
	for _, s := range states {
		for _, t := range nfa.Transitions(s, c) {
			targets.Add(t)
		}
	}
	return ints(targets)
}

// Accepts simulates the NFA on an input string.
func (nfa *NFA) Accepts(input string) bool {
	current := nfa.LambdaClosure(nfa.Start())
	for _, c := range input {
		current = nfa.LambdaClosure(nfa.Move(current, c)...)
		if len(current) == 0 {
			return false
		}
	}
	for _, s := range current {
		if s == nfa.Accepting() {
			return true
		}
	}
	return false
}

func ints(set *treeset.Set) []int {
	r := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		r = append(r, v.(int))
	}
	return r
}

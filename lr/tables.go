package lr

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/cctk"
	"github.com/npillmayer/cctk/automaton"
	"github.com/npillmayer/cctk/lr/sparse"
	"github.com/npillmayer/schuko/gconf"
)

// https://www.cs.bgu.ac.il/~comp151/wiki.files/ps6.html#sec-2-7-3

// ActionKind is the kind of an SLR(1) table entry.
type ActionKind int8

// Kinds of parser actions. Goto entries are stored for non-terminals, shift
// entries for terminals.
const (
	NoAction ActionKind = iota
	ShiftAction
	GotoAction
	ReduceAction
	AcceptAction
)

// Action is an entry of an SLR(1) table.
type Action struct {
	Kind  ActionKind
	State int   // target state of shift and goto actions
	Rule  *Rule // rule of reduce actions
}

func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("s%d", a.State)
	case GotoAction:
		return fmt.Sprintf("g%d", a.State)
	case ReduceAction:
		return fmt.Sprintf("r(%s,%d)", a.Rule.LHS, a.Rule.Alt)
	case AcceptAction:
		return "accept"
	}
	return ""
}

// Actions are encoded as int32 values in a sparse matrix: shift and goto as
// the target state, accept as -1, reducing rule no. k as -2-k.
const acceptValue int32 = -1

func encodeAction(a Action) int32 {
	switch a.Kind {
	case ShiftAction, GotoAction:
		return int32(a.State)
	case ReduceAction:
		return -2 - int32(a.Rule.Serial)
	case AcceptAction:
		return acceptValue
	}
	return sparse.DefaultNullValue
}

// GrammarConflictError is returned when two actions compete for the same
// SLR(1) table cell.
type GrammarConflictError struct {
	State       int
	Symbol      *Symbol
	Existing    Action
	Conflicting Action
}

func (e *GrammarConflictError) Error() string {
	return fmt.Sprintf("grammar conflict in state %d on %v: %v vs. %v",
		e.State, e.Symbol, e.Existing, e.Conflicting)
}

// === CFSM ==================================================================

// CFSM is the characteristic finite state machine of a grammar, i.e. the
// canonical collection of LR(0) item sets. State payloads are *ItemSet.
type CFSM struct {
	g     *Grammar
	graph *automaton.Graph
	S0    *automaton.State
}

// Graph returns the underlying state graph.
func (c *CFSM) Graph() *automaton.Graph {
	return c.graph
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.graph.Size()
}

// ItemSet returns the items of state no. id.
func (c *CFSM) ItemSet(id int) *ItemSet {
	if s := c.graph.State(id); s != nil {
		return s.Payload.(*ItemSet)
	}
	return nil
}

// Goto returns the successor state of state no. id on symbol A.
func (c *CFSM) Goto(id int, A *Symbol) (int, bool) {
	s := c.graph.State(id)
	if s == nil || A == nil {
		return 0, false
	}
	if t, ok := c.graph.Target(s, A.Name); ok {
		return t.ID, true
	}
	return 0, false
}

// ToGraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) ToGraphViz(w io.Writer) error {
	return c.graph.ToGraphViz(w, func(s *automaton.State) string {
		items := s.Payload.(*ItemSet).Items()
		lines := make([]string, len(items))
		for k, i := range items {
			lines[k] = automaton.DotEscape(i.String())
		}
		return strings.Join(lines, `\l`) + `\l`
	})
}

func stateComparator(s1, s2 interface{}) int {
	return s1.(*automaton.State).ID - s2.(*automaton.State).ID
}

// TableGenerator is a generator object to construct the CFSM and the SLR(1)
// table of a grammar.
type TableGenerator struct {
	ga   *GrammarAnalysis
	g    *Grammar
	cfsm *CFSM
}

// NewTableGenerator creates a new TableGenerator for an analysed grammar.
func NewTableGenerator(ga *GrammarAnalysis) *TableGenerator {
	return &TableGenerator{ga: ga, g: ga.g}
}

// ErrEmptyGrammar is returned when creating tables for a grammar without rules.
var ErrEmptyGrammar = errors.New("grammar has no rules")

// CFSM returns the characteristic finite state machine, building it on first call.
func (lrgen *TableGenerator) CFSM() (*CFSM, error) {
	if lrgen.cfsm == nil {
		if lrgen.g.goal == nil {
			return nil, ErrEmptyGrammar
		}
		lrgen.cfsm = lrgen.buildCFSM()
	}
	return lrgen.cfsm, nil
}

// Construct the characteristic finite state machine CFSM for a grammar.
// Start state is the closure of the start items of every alternative of the goal.
// States are discovered in ID order; all terminals are tried before the
// non-terminals.
func (lrgen *TableGenerator) buildCFSM() *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	G := lrgen.g
	var start []Item
	for _, r := range G.Alternatives(G.goal) {
		start = append(start, StartItem(r))
	}
	closure0 := lrgen.ga.Closure(NewItemSet(start...))
	cfsm := &CFSM{g: G, graph: automaton.New()}
	cfsm.S0, _ = cfsm.graph.Add(closure0.Key(), closure0)
	tracer().Debugf("S0 = %v", closure0)
	S := treeset.NewWith(stateComparator)
	S.Add(cfsm.S0)
	for S.Size() > 0 {
		s := S.Values()[0].(*automaton.State)
		S.Remove(s)
		items := s.Payload.(*ItemSet)
		markAccept(G, s, items)
		G.EachSymbol(func(A *Symbol) interface{} {
			gotoset, ok := lrgen.ga.Goto(items, A)
			if !ok {
				return nil
			}
			snew, isNew := cfsm.graph.Add(gotoset.Key(), gotoset)
			if isNew {
				tracer().Debugf("goto(%v, %v) = new state %v = %v", s, A, snew, gotoset)
				S.Add(snew)
			}
			if err := cfsm.graph.Connect(s, snew, A.Name); err != nil {
				tracer().Errorf("CFSM: %v", err)
			}
			return nil
		})
	}
	tracer().Infof("CFSM for %s has %d states", G.Name, cfsm.graph.Size())
	return cfsm
}

func markAccept(G *Grammar, s *automaton.State, items *ItemSet) {
	for _, i := range items.Items() {
		if i.rule.LHS == G.goal && i.IsComplete() {
			s.Accept = true
		}
	}
}

// === SLR(1) table ==========================================================

// SLRTable is an SLR(1) parser table, combining the ACTION and GOTO tables.
// Rows are CFSM states, columns are grammar symbols.
type SLRTable struct {
	g      *Grammar
	cfsm   *CFSM
	matrix *sparse.IntMatrix
}

// SLRTable builds the SLR(1) table for the grammar. Shift and goto entries
// are taken from the CFSM's transitions. For every complete item of a state a
// reduce entry is created for each terminal in FOLLOW(LHS). The cell for the
// start state and the goal symbol is set to accept.
//
// If a cell would receive a second action, SLRTable fails with a
// *GrammarConflictError and no table is returned.
func (lrgen *TableGenerator) SLRTable() (*SLRTable, error) {
	cfsm, err := lrgen.CFSM()
	if err != nil {
		return nil, err
	}
	G := lrgen.g
	t := &SLRTable{
		g:      G,
		cfsm:   cfsm,
		matrix: sparse.NewIntMatrix(cfsm.Size(), G.Size(), sparse.DefaultNullValue),
	}
	for _, e := range cfsm.graph.Edges() {
		A := G.Symbol(e.Label)
		a := Action{Kind: GotoAction, State: e.To}
		if A.IsTerminal() {
			a.Kind = ShiftAction
		}
		t.matrix.Set(e.From, A.Value, encodeAction(a))
	}
	for _, s := range cfsm.graph.States() {
		for _, i := range s.Payload.(*ItemSet).Items() {
			if !i.IsComplete() {
				continue
			}
			reduce := Action{Kind: ReduceAction, Rule: i.rule}
			for _, la := range lrgen.ga.Follow(i.rule.LHS).Values() {
				if err := t.setAction(s.ID, la, reduce); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := t.setAction(cfsm.S0.ID, G.goal, Action{Kind: AcceptAction}); err != nil {
		return nil, err
	}
	tracer().Infof("SLR(1) table for %s has %d entries", G.Name, t.matrix.ValueCount())
	return t, nil
}

func (t *SLRTable) setAction(state int, A *Symbol, a Action) error {
	if existing := t.Action(state, A); existing.Kind != NoAction {
		err := &GrammarConflictError{State: state, Symbol: A, Existing: existing, Conflicting: a}
		tracer().Errorf("%v", err)
		if gconf.GetBool("panic-on-grammar-conflict") {
			panic(err)
		}
		return err
	}
	t.matrix.Set(state, A.Value, encodeAction(a))
	return nil
}

// Grammar returns the table's grammar.
func (t *SLRTable) Grammar() *Grammar {
	return t.g
}

// CFSM returns the CFSM the table has been built from.
func (t *SLRTable) CFSM() *CFSM {
	return t.cfsm
}

// Action returns the entry for a state and a symbol.
func (t *SLRTable) Action(state int, A *Symbol) Action {
	if A == nil || A.Value < 0 {
		return Action{}
	}
	v := t.matrix.Value(state, A.Value)
	switch {
	case v == t.matrix.NullValue():
		return Action{}
	case v == acceptValue:
		return Action{Kind: AcceptAction}
	case v < acceptValue:
		return Action{Kind: ReduceAction, Rule: t.g.Rule(int(-2 - v))}
	case A.IsTerminal():
		return Action{Kind: ShiftAction, State: int(v)}
	}
	return Action{Kind: GotoAction, State: int(v)}
}

// ActionForToken returns the entry for a state and a token type.
func (t *SLRTable) ActionForToken(state int, tt cctk.TokType) Action {
	return t.Action(state, t.g.Symbol(string(tt)))
}

// Each calls f for every non-empty cell, in order of states and symbols.
func (t *SLRTable) Each(f func(state int, A *Symbol, a Action)) {
	t.matrix.Each(func(i, j int, v int32) {
		A := t.g.symbolAt(j)
		f(i, A, t.Action(i, A))
	})
}

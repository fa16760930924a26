package lr

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "prefix.grammar")
	r := g.Alternatives(g.Symbol("E"))[0] // E -> plus E E
	i := StartItem(r)
	assert.Equal(t, "E -> . plus E E", i.String())
	assert.Equal(t, g.Symbol("plus"), i.PeekSymbol())
	i = i.Advance().Advance().Advance()
	assert.True(t, i.IsComplete())
	assert.Nil(t, i.PeekSymbol())
	assert.Equal(t, "E -> plus E E .", i.String())
	assert.Len(t, i.Prefix(), 3)
}

func TestItemSetIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "prefix.grammar")
	r0, r1 := g.Rule(0), g.Rule(1)
	S := NewItemSet(StartItem(r1), StartItem(r0), StartItem(r1))
	T := NewItemSet(StartItem(r0), StartItem(r1))
	assert.Equal(t, 2, S.Size())
	assert.True(t, S.Equals(T))
	assert.Equal(t, S.Key(), T.Key())
	U := NewItemSet(StartItem(r0), StartItem(r1).Advance())
	assert.False(t, S.Equals(U))
	assert.NotEqual(t, S.Key(), U.Key())
	byLHS := S.ByLHS()
	assert.Len(t, byLHS[g.Symbol("Start")], 1)
	assert.Len(t, byLHS[g.Symbol("E")], 1)
}

func TestClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "assignments.grammar")
	ga := Analysis(g)
	C := ga.Closure(NewItemSet(StartItem(g.Rule(0))))
	t.Logf("closure = %v", C)
	assert.Equal(t, 10, C.Size())
	byLHS := C.ByLHS()
	assert.Len(t, byLHS[g.Symbol("A")], 2)
	assert.Len(t, byLHS[g.Symbol("T")], 1)
	assert.Len(t, byLHS[g.Symbol("VAR")], 6)
	assert.Empty(t, byLHS[g.Symbol("E")])
	lambdaRule := g.Alternatives(g.Symbol("A"))[1]
	assert.True(t, C.Contains(StartItem(lambdaRule)))
	assert.True(t, ga.Closure(C).Equals(C), "closure must be idempotent")
}

func TestGoto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "prefix.grammar")
	ga := Analysis(g)
	E := g.Symbol("E")
	S := NewItemSet(StartItem(g.Rule(0)), StartItem(g.Rule(1)), StartItem(g.Rule(2)))
	G, ok := ga.Goto(S, g.Symbol("plus"))
	if !ok {
		t.Fatalf("expected goto on plus to exist")
	}
	expected := NewItemSet(StartItem(g.Alternatives(E)[0]).Advance(),
		StartItem(g.Rule(1)), StartItem(g.Rule(2)))
	assert.True(t, G.Equals(expected), "goto(S, plus) = %v", G)
	_, ok = ga.Goto(S, g.Symbol("$"))
	assert.False(t, ok)
}

func TestGotoSetsAreClosed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	for _, name := range []string{"assignments.grammar", "prefix.grammar", "leftrec.grammar"} {
		g := loadGrammar(t, name)
		ga := Analysis(g)
		cfsm, err := NewTableGenerator(ga).CFSM()
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range cfsm.Graph().States() {
			S := cfsm.ItemSet(s.ID)
			assert.True(t, ga.Closure(S).Equals(S), "%s: state %d not closed", name, s.ID)
			g.EachSymbol(func(A *Symbol) interface{} {
				G, ok := ga.Goto(S, A)
				if !ok {
					return nil
				}
				assert.True(t, ga.Closure(G).Equals(G), "%s: goto(%d, %v) not closed", name, s.ID, A)
				to, ok := cfsm.Goto(s.ID, A)
				if assert.True(t, ok, "%s: missing edge %d --%v-->", name, s.ID, A) {
					assert.True(t, cfsm.ItemSet(to).Equals(G))
				}
				return nil
			})
		}
	}
}

func TestCFSM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "prefix.grammar")
	lrgen := NewTableGenerator(Analysis(g))
	cfsm, err := lrgen.CFSM()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 7, cfsm.Size())
	to, ok := cfsm.Goto(0, g.Symbol("plus"))
	assert.True(t, ok)
	assert.Equal(t, 1, to)
	to, _ = cfsm.Goto(1, g.Symbol("plus"))
	assert.Equal(t, 1, to, "expected loop on plus")
	var keys = make(map[string]bool)
	for _, s := range cfsm.Graph().States() {
		assert.False(t, keys[s.Key], "duplicate state %v", s)
		keys[s.Key] = true
	}
	var dot bytes.Buffer
	assert.NoError(t, cfsm.ToGraphViz(&dot))
	assert.True(t, strings.HasPrefix(dot.String(), "digraph"))
}

func TestSLRTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "prefix.grammar")
	table, err := NewTableGenerator(Analysis(g)).SLRTable()
	if err != nil {
		t.Fatal(err)
	}
	accepts := 0
	table.Each(func(state int, A *Symbol, a Action) {
		if a.Kind == AcceptAction {
			accepts++
			assert.Equal(t, 0, state)
			assert.Equal(t, g.Goal(), A)
		}
	})
	assert.Equal(t, 1, accepts, "expected exactly one accept entry")
	assert.Equal(t, Action{Kind: ShiftAction, State: 1}, table.ActionForToken(0, "plus"))
	assert.Equal(t, Action{Kind: GotoAction, State: 3}, table.Action(0, g.Symbol("E")))
	reduce := table.ActionForToken(2, "$")
	assert.Equal(t, ReduceAction, reduce.Kind)
	assert.Equal(t, "E -> num", reduce.Rule.String())
	assert.Equal(t, NoAction, table.ActionForToken(5, "$").Kind)
	var out bytes.Buffer
	assert.NoError(t, table.Render(&out))
	assert.Contains(t, out.String(), "accept")
}

func TestSLRConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "ambiguous.grammar")
	table, err := NewTableGenerator(Analysis(g)).SLRTable()
	assert.Nil(t, table, "no partial table on conflict")
	var conflict *GrammarConflictError
	if assert.True(t, errors.As(err, &conflict)) {
		assert.Equal(t, "plus", conflict.Symbol.Name)
	}
	//
	g = loadGrammar(t, "goal-recursive.grammar")
	_, err = NewTableGenerator(Analysis(g)).SLRTable()
	if assert.True(t, errors.As(err, &conflict)) {
		assert.Equal(t, 0, conflict.State)
		assert.Equal(t, GotoAction, conflict.Existing.Kind)
		assert.Equal(t, AcceptAction, conflict.Conflicting.Kind)
	}
	//
	empty, _ := NewGrammarBuilder("empty").Grammar()
	_, err = NewTableGenerator(Analysis(empty)).SLRTable()
	assert.True(t, errors.Is(err, ErrEmptyGrammar))
}

func TestReports(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "leftrec.grammar")
	ga := Analysis(g)
	var out bytes.Buffer
	assert.NoError(t, ReportGrammar(ga, &out))
	assert.Contains(t, out.String(), "warning")
	out.Reset()
	assert.NoError(t, ga.LLTable().Render(&out))
	assert.Contains(t, out.String(), "unreliable")
}

package lr

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var allVars = []string{"e", "f", "g", "h", "j", "k"}

func TestDerivesToLambda(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "assignments.grammar")
	ga := Analysis(g)
	expected := map[string]bool{"S": false, "A": true, "T": false, "VAR": false, "E": false,
		"equal": false, "$": false, "lambda": true}
	for name, nullable := range expected {
		if ga.DerivesToLambda(g.Symbol(name)) != nullable {
			t.Errorf("expected DerivesToLambda(%s) = %v", name, nullable)
		}
	}
}

func TestDerivesToLambdaRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("self-recursive")
	b.LHS("S").N("A").EOF()
	b.LHS("A").N("A").End() // A derives no sentence at all
	b.LHS("B").N("C").End()
	b.LHS("C").N("B").End()
	b.LHS("C").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga := Analysis(g)
	assert.False(t, ga.DerivesToLambda(g.Symbol("A")))
	assert.True(t, ga.DerivesToLambda(g.Symbol("B")))
	assert.True(t, ga.DerivesToLambda(g.Symbol("C")))
	empty, _ := NewGrammarBuilder("empty").Grammar()
	ga = Analysis(empty)
	assert.False(t, ga.DerivesToLambda(&Symbol{Name: "X", Kind: NonTerminalSymbol}))
}

func TestFirstSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "assignments.grammar")
	ga := Analysis(g)
	assert.ElementsMatch(t, append([]string{"$"}, allVars...), ga.First(g.Symbol("S")).Names())
	assert.ElementsMatch(t, allVars, ga.First(g.Symbol("A")).Names())
	assert.ElementsMatch(t, append([]string{"a", "s", "zero"}, allVars...), ga.First(g.Symbol("E")).Names())
	assert.Equal(t, []string{"equal"}, ga.First(g.Symbol("equal")).Names())
	assert.True(t, ga.First(g.Lambda()).Empty())
	seq := []*Symbol{g.Symbol("A"), g.Symbol("equal")}
	assert.ElementsMatch(t, append([]string{"equal"}, allVars...), ga.FirstOfSequence(seq).Names())
}

func TestFollowSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "assignments.grammar")
	ga := Analysis(g)
	assert.True(t, ga.Follow(g.Symbol("S")).Empty(), "goal has no implicit follow")
	assert.Equal(t, []string{"$"}, ga.Follow(g.Symbol("A")).Names())
	assert.ElementsMatch(t, append([]string{"$"}, allVars...), ga.Follow(g.Symbol("T")).Names())
	assert.ElementsMatch(t, append([]string{"$"}, allVars...), ga.Follow(g.Symbol("E")).Names())
	assert.ElementsMatch(t, append([]string{"$", "equal"}, allVars...), ga.Follow(g.Symbol("VAR")).Names())
}

func TestPredictAndDisjointness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "assignments.grammar")
	ga := Analysis(g)
	P := ga.Predict(g.Symbol("A"))
	if assert.Len(t, P, 2) {
		assert.ElementsMatch(t, allVars, P[0].Names())
		assert.Equal(t, []string{"$"}, P[1].Names())
	}
	ok, w := ga.DisjointCheck()
	assert.True(t, ok)
	assert.Nil(t, w)
	//
	g = loadGrammar(t, "leftrec.grammar")
	ga = Analysis(g)
	ok, w = ga.DisjointCheck()
	assert.False(t, ok)
	if assert.NotNil(t, w) && assert.Len(t, w.Overlaps, 1) {
		o := w.Overlaps[0]
		assert.Equal(t, "E", o.NonTerminal.Name)
		assert.Equal(t, []string{"num"}, o.Symbols.Names())
	}
}

func TestLLTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "assignments.grammar")
	table := Analysis(g).LLTable()
	assert.NoError(t, table.Warning())
	row := func(alt int, names ...string) map[string]int {
		m := make(map[string]int)
		for _, n := range names {
			m[n] = alt
		}
		return m
	}
	assert.Equal(t, row(0, append([]string{"$"}, allVars...)...), table.Entries(g.Symbol("S")))
	A := row(0, allVars...)
	A["$"] = 1
	assert.Equal(t, A, table.Entries(g.Symbol("A")))
	assert.Equal(t, row(0, allVars...), table.Entries(g.Symbol("T")))
	E := row(3, allVars...)
	E["a"], E["s"], E["zero"] = 0, 1, 2
	assert.Equal(t, E, table.Entries(g.Symbol("E")))
	VAR := make(map[string]int)
	for i, v := range allVars {
		VAR[v] = i
	}
	assert.Equal(t, VAR, table.Entries(g.Symbol("VAR")))
	r, ok := table.LookupToken(g.Symbol("E"), "zero")
	assert.True(t, ok)
	assert.Equal(t, "E -> zero", r.String())
	_, ok = table.LookupToken(g.Symbol("E"), "equal")
	assert.False(t, ok)
}

func TestLLTableLastWriteWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "leftrec.grammar")
	table := Analysis(g).LLTable()
	var w *AmbiguousGrammarWarning
	assert.True(t, errors.As(table.Warning(), &w))
	assert.Equal(t, map[string]int{"num": 1}, table.Entries(g.Symbol("E")))
}

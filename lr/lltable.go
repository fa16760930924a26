package lr

import (
	"github.com/npillmayer/cctk"
	"github.com/npillmayer/cctk/lr/sparse"
)

// LLTable is an LL(1) prediction table, mapping (non-terminal, terminal) to
// the alternative to expand. If the grammar is not LL(1), later alternatives
// overwrite earlier ones in the table, and Warning reports the overlaps.
type LLTable struct {
	g       *Grammar
	matrix  *sparse.IntMatrix // rows: non-terminals, columns: terminals
	warning *AmbiguousGrammarWarning
}

// LLTable creates the LL(1) prediction table for the grammar.
func (ga *GrammarAnalysis) LLTable() *LLTable {
	g := ga.g
	t := &LLTable{
		g:      g,
		matrix: sparse.NewIntMatrix(len(g.nonterminals), len(g.terminals), sparse.DefaultNullValue),
	}
	if ok, w := ga.DisjointCheck(); !ok {
		tracer().Infof("warning: LL(1) table for %s is unreliable", g.Name)
		t.warning = w
	}
	for _, A := range g.nonterminals {
		for i, P := range ga.Predict(A) {
			for _, a := range P.Values() {
				t.matrix.Set(g.ntIndex(A), a.Value, int32(i))
			}
		}
	}
	return t
}

// Grammar returns the table's grammar.
func (t *LLTable) Grammar() *Grammar {
	return t.g
}

// Warning returns an *AmbiguousGrammarWarning if the grammar is not LL(1), nil otherwise.
func (t *LLTable) Warning() error {
	if t.warning == nil {
		return nil
	}
	return t.warning
}

// Lookup returns the rule to expand for non-terminal A and lookahead a.
func (t *LLTable) Lookup(A, a *Symbol) (*Rule, bool) {
	if A == nil || a == nil || !A.IsNonTerminal() || !a.IsTerminal() {
		return nil, false
	}
	v := t.matrix.Value(t.g.ntIndex(A), a.Value)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.Alternatives(A)[v], true
}

// LookupToken returns the rule to expand for non-terminal A and a lookahead
// token type.
func (t *LLTable) LookupToken(A *Symbol, tt cctk.TokType) (*Rule, bool) {
	a := t.g.Symbol(string(tt))
	return t.Lookup(A, a)
}

// Entries returns the row of A as a map from terminal names to alternatives.
func (t *LLTable) Entries(A *Symbol) map[string]int {
	row := make(map[string]int)
	for _, a := range t.g.terminals {
		if v := t.matrix.Value(t.g.ntIndex(A), a.Value); v != t.matrix.NullValue() {
			row[a.Name] = int(v)
		}
	}
	return row
}

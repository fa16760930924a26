package lr

import (
	"fmt"
	"strings"
)

// GrammarAnalysis computes the nullable, FIRST and FOLLOW information for a
// grammar. All sets are computed eagerly by Analysis as least fixed points,
// which keeps the computation safe for (mutually) recursive grammars.
type GrammarAnalysis struct {
	g        *Grammar
	nullable map[*Symbol]bool
	first    map[*Symbol]*SymbolSet
	follow   map[*Symbol]*SymbolSet
}

// Analysis creates an analyser for a grammar.
func Analysis(g *Grammar) *GrammarAnalysis {
	ga := &GrammarAnalysis{
		g:        g,
		nullable: make(map[*Symbol]bool),
		first:    make(map[*Symbol]*SymbolSet),
		follow:   make(map[*Symbol]*SymbolSet),
	}
	ga.markNullable()
	ga.initFirstSets()
	ga.initFollowSets()
	return ga
}

// Grammar returns the grammar under analysis.
func (ga *GrammarAnalysis) Grammar() *Grammar {
	return ga.g
}

// --- Derives to lambda -----------------------------------------------------

// markNullable iterates over all rules until no more non-terminals are found
// to derive lambda.
func (ga *GrammarAnalysis) markNullable() {
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			if ga.nullable[r.LHS] {
				continue
			}
			if ga.SequenceDerivesToLambda(r.rhs) {
				ga.nullable[r.LHS] = true
				changed = true
			}
		}
	}
}

// DerivesToLambda is true if X is lambda or if X is a non-terminal with a rule
// X → Y1 … Yn where every Yi derives lambda. Terminals, the end marker and
// non-terminals without rules never derive lambda.
func (ga *GrammarAnalysis) DerivesToLambda(X *Symbol) bool {
	if X == nil {
		return false
	}
	if X.Kind == LambdaSymbol {
		return true
	}
	return ga.nullable[X]
}

// SequenceDerivesToLambda is true if every symbol of seq derives lambda.
// The empty sequence derives lambda.
func (ga *GrammarAnalysis) SequenceDerivesToLambda(seq []*Symbol) bool {
	for _, A := range seq {
		if !ga.DerivesToLambda(A) {
			return false
		}
	}
	return true
}

// --- FIRST -----------------------------------------------------------------

func (ga *GrammarAnalysis) initFirstSets() {
	for _, A := range ga.g.nonterminals {
		ga.first[A] = NewSymbolSet()
	}
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			if ga.first[r.LHS].Union(ga.FirstOfSequence(r.rhs)) {
				changed = true
			}
		}
	}
}

// First returns FIRST(X). For a terminal this is {X}. FIRST sets never contain
// lambda; use DerivesToLambda to check for nullability. The end marker is
// contained iff X can derive it.
func (ga *GrammarAnalysis) First(X *Symbol) *SymbolSet {
	if X == nil || X.Kind == LambdaSymbol {
		return NewSymbolSet()
	}
	if X.IsTerminal() {
		return NewSymbolSet(X)
	}
	F := NewSymbolSet()
	F.Union(ga.first[X])
	return F
}

// FirstOfSequence computes FIRST(X1 … Xn): terminals contribute themselves and
// stop the walk, nullable non-terminals contribute their FIRST set and continue.
func (ga *GrammarAnalysis) FirstOfSequence(seq []*Symbol) *SymbolSet {
	F := NewSymbolSet()
	for _, A := range seq {
		if A.Kind == LambdaSymbol {
			continue
		}
		if A.IsTerminal() {
			F.Add(A)
			return F
		}
		F.Union(ga.first[A])
		if !ga.nullable[A] {
			return F
		}
	}
	return F
}

// --- FOLLOW ----------------------------------------------------------------

func (ga *GrammarAnalysis) initFollowSets() {
	ga.g.EachSymbol(func(A *Symbol) interface{} {
		ga.follow[A] = NewSymbolSet()
		return nil
	})
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			for i, X := range r.rhs {
				suffix := r.rhs[i+1:]
				if ga.follow[X].Union(ga.FirstOfSequence(suffix)) {
					changed = true
				}
				if ga.SequenceDerivesToLambda(suffix) && ga.follow[X].Union(ga.follow[r.LHS]) {
					changed = true
				}
			}
		}
	}
}

// Follow returns FOLLOW(X): the terminals which may immediately follow X in a
// sentential form. The end marker is contained only if it is reachable through
// the grammar's own rules.
func (ga *GrammarAnalysis) Follow(X *Symbol) *SymbolSet {
	F := NewSymbolSet()
	if X != nil {
		F.Union(ga.follow[X])
	}
	return F
}

// --- PREDICT ---------------------------------------------------------------

// PredictRule returns the predict set of a rule A → α: FIRST(α), plus FOLLOW(A)
// if α derives lambda.
func (ga *GrammarAnalysis) PredictRule(r *Rule) *SymbolSet {
	P := ga.FirstOfSequence(r.rhs)
	if ga.SequenceDerivesToLambda(r.rhs) {
		P.Union(ga.follow[r.LHS])
	}
	return P
}

// Predict returns the predict sets for all alternatives of A, in order of
// the alternatives.
func (ga *GrammarAnalysis) Predict(A *Symbol) []*SymbolSet {
	alts := ga.g.Alternatives(A)
	P := make([]*SymbolSet, len(alts))
	for i, r := range alts {
		P[i] = ga.PredictRule(r)
	}
	return P
}

// Overlap describes two alternatives of a non-terminal with intersecting
// predict sets.
type Overlap struct {
	NonTerminal *Symbol
	Alt1, Alt2  int
	Symbols     *SymbolSet
}

func (o Overlap) String() string {
	return fmt.Sprintf("%v: alternatives %d and %d overlap on %v", o.NonTerminal, o.Alt1, o.Alt2, o.Symbols)
}

// AmbiguousGrammarWarning reports that a grammar is not LL(1). It is a
// non-fatal condition.
type AmbiguousGrammarWarning struct {
	Grammar  string
	Overlaps []Overlap
}

func (w *AmbiguousGrammarWarning) Error() string {
	msgs := make([]string, len(w.Overlaps))
	for i, o := range w.Overlaps {
		msgs[i] = o.String()
	}
	return fmt.Sprintf("grammar %s is not LL(1): %s", w.Grammar, strings.Join(msgs, "; "))
}

// DisjointCheck checks the predict sets of the alternatives of every
// non-terminal for pairwise disjointness. It returns false and a warning
// listing all overlaps if the grammar is not LL(1). Checking never aborts.
func (ga *GrammarAnalysis) DisjointCheck() (bool, *AmbiguousGrammarWarning) {
	var overlaps []Overlap
	for _, A := range ga.g.nonterminals {
		P := ga.Predict(A)
		for i := 0; i < len(P); i++ {
			for j := i + 1; j < len(P); j++ {
				if common := P[i].Intersection(P[j]); !common.Empty() {
					o := Overlap{NonTerminal: A, Alt1: i, Alt2: j, Symbols: common}
					tracer().Infof("warning: %v", o)
					overlaps = append(overlaps, o)
				}
			}
		}
	}
	if len(overlaps) == 0 {
		return true, nil
	}
	return false, &AmbiguousGrammarWarning{Grammar: ga.g.Name, Overlaps: overlaps}
}

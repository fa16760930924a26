package lr

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cctk"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/tools/txtar"
)

// loadGrammar reads a grammar from the test archive.
func loadGrammar(t *testing.T, name string) *Grammar {
	t.Helper()
	archive, err := txtar.ParseFile("testdata/grammars.txtar")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range archive.Files {
		if f.Name == name {
			g, err := ReadGrammar(name, bytes.NewReader(f.Data))
			if err != nil {
				t.Fatalf("cannot read grammar %s: %v", name, err)
			}
			return g
		}
	}
	t.Fatalf("no grammar %s in test archive", name)
	return nil
}

func TestReadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "assignments.grammar")
	g.Dump()
	if g.Goal().Name != "S" {
		t.Errorf("expected goal S, have %v", g.Goal())
	}
	if len(g.Rules()) != 14 {
		t.Errorf("expected 14 rules, have %d", len(g.Rules()))
	}
	A := g.Symbol("A")
	if A == nil || !A.IsNonTerminal() {
		t.Fatalf("expected A to be a non-terminal")
	}
	alts := g.Alternatives(A)
	if len(alts) != 2 || !alts[1].IsLambda() || alts[1].Alt != 1 {
		t.Errorf("expected A to have a lambda rule as second alternative, have %v", alts)
	}
	if E := g.Symbol("E"); len(g.Alternatives(E)) != 4 {
		t.Errorf("expected E to have 4 alternatives, have %d", len(g.Alternatives(E)))
	}
	if eq := g.Symbol("equal"); eq == nil || eq.Kind != TerminalSymbol {
		t.Errorf("expected 'equal' to be a terminal")
	}
	if eof := g.Symbol("$"); eof == nil || eof.Kind != EndMarkerSymbol || !eof.IsTerminal() {
		t.Errorf("expected '$' to be the end marker")
	}
	if len(g.Terminals()) != 15 || len(g.NonTerminals()) != 5 {
		t.Errorf("expected 15 terminals and 5 non-terminals, have %d and %d",
			len(g.Terminals()), len(g.NonTerminals()))
	}
}

func TestSymbolValuesAreDense(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	g := loadGrammar(t, "prefix.grammar")
	values := g.EachSymbol(func(A *Symbol) interface{} {
		return A.Value
	})
	for i, v := range values {
		if v.(int) != i {
			t.Errorf("expected symbol #%d to have value %d, has %d", i, i, v)
		}
	}
	if g.symbolAt(g.Symbol("E").Value).Name != "E" {
		t.Errorf("symbolAt does not match symbol values")
	}
}

func TestGrammarDefinitionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	inputs := map[string]int{
		"| a b\n":            1,
		"S -> a $\n-> b\n":   2,
		"S -> a $\nX a b\n":  2,
		"S -> a -> b $\n":    1,
		"# nothing\n\n":      0,
		"S -> a\nA -> b\n":   0,
		"S -> a $\n$ -> b\n": 0,
	}
	for input, line := range inputs {
		_, err := ReadGrammar("test", strings.NewReader(input))
		var cerr *cctk.ConfigurationError
		if !errors.As(err, &cerr) {
			t.Errorf("expected configuration error for %q, have %v", input, err)
			continue
		}
		if cerr.Line != line {
			t.Errorf("expected error for %q in line %d, have %d", input, line, cerr.Line)
		}
	}
	_, err := ReadGrammar("nil", nil)
	if !errors.Is(err, cctk.ErrMissingSource) {
		t.Errorf("expected missing source error, have %v", err)
	}
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").EOF()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d").End()
	b.LHS("D").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Goal() != g.Symbol("S") || len(g.Rules()) != 6 {
		t.Errorf("unexpected grammar structure")
	}
	if r := g.Rule(3); r.String() != "B -> lambda" {
		t.Errorf("expected rule 3 to be B -> lambda, is %v", r)
	}
	b = NewGrammarBuilder("no goal")
	b.LHS("S").T("a").End()
	if _, err = b.Grammar(); !errors.Is(err, ErrNoGoal) {
		t.Errorf("expected ErrNoGoal, have %v", err)
	}
	b = NewGrammarBuilder("contradiction")
	b.LHS("S").T("A").EOF()
	b.LHS("A").T("a").End()
	if _, err = b.Grammar(); err == nil {
		t.Errorf("expected error for non-terminal A used as terminal")
	}
	g, err = NewGrammarBuilder("empty").Grammar()
	if err != nil || g.Goal() != nil || len(g.Rules()) != 0 {
		t.Errorf("expected empty grammar to be valid")
	}
}

func TestVerify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	if err := loadGrammar(t, "assignments.grammar").Verify(); err != nil {
		t.Errorf("expected assignments grammar to verify, have %v", err)
	}
	err := loadGrammar(t, "unreachable.grammar").Verify()
	if err == nil || !strings.Contains(err.Error(), "X") {
		t.Errorf("expected unreachable X to be reported, have %v", err)
	}
	b := NewGrammarBuilder("undefined")
	b.LHS("S").N("Y").EOF()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	err = g.Verify()
	if err == nil || !strings.Contains(err.Error(), "Y") {
		t.Errorf("expected undefined Y to be reported, have %v", err)
	}
}

func TestEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	src, names := loadGrammar(t, "assignments.grammar").EBNF()
	t.Logf("\n%s", src)
	if names["P0001"] != "A" {
		t.Errorf("expected P0001 to denote A, is %q", names["P0001"])
	}
	if !strings.Contains(src, `P0001 = [ P0002 P0001 ] .`) {
		t.Errorf("expected optional rendering of A")
	}
}

func TestGrammarLexerTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lr")
	defer teardown()
	//
	lm, err := grammarLexer()
	if err != nil {
		t.Fatal(err)
	}
	toks, err := tokenizeLine(lm, "E -> a|b->c  lambda")
	if err != nil {
		t.Fatal(err)
	}
	var types []cctk.TokType
	for _, tok := range toks {
		types = append(types, tok.TokType())
	}
	expected := []cctk.TokType{tokSymbol, tokArrow, tokSymbol, tokPipe, tokSymbol, tokSymbol}
	if len(types) != len(expected) {
		t.Fatalf("expected token types %v, have %v", expected, types)
	}
	for i := range expected {
		if types[i] != expected[i] {
			t.Errorf("token #%d: expected %q, have %q", i, expected[i], types[i])
		}
	}
	if toks[4].Lexeme() != "b->c" {
		t.Errorf("expected symbol b->c, have %q", toks[4].Lexeme())
	}
}

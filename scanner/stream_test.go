package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cctk"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReadTokenStream(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.scanner")
	defer teardown()
	//
	input := "e\nequal\n\na\nplus\nb x\n"
	ts, err := ReadTokenStream("test", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"e", "equal", "a", "plus", "b", "$"}
	toks := ts.Tokens()
	if len(toks) != len(expected) {
		t.Fatalf("expected %d tokens, have %d", len(expected), len(toks))
	}
	for i, tok := range toks {
		if string(tok.TokType()) != expected[i] {
			t.Errorf("token #%d: expected type %s, have %s", i, expected[i], tok.TokType())
		}
	}
	if toks[4].Lexeme() != "x" || toks[4].Value() != "x" {
		t.Errorf("expected value x for token b, have %q", toks[4].Lexeme())
	}
	if toks[2].Span().From() != 4 {
		t.Errorf("expected token a to be in line 4, is %v", toks[2].Span())
	}
}

func TestTokenStreamStaysAtEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.scanner")
	defer teardown()
	//
	ts := NewTokenStream([]cctk.Token{MakeDefaultToken("a", "", cctk.Span{})})
	if tok := ts.NextToken(); tok.TokType() != "a" {
		t.Errorf("expected token a, have %v", tok)
	}
	for i := 0; i < 3; i++ {
		if tok := ts.NextToken(); tok.TokType() != cctk.EOF {
			t.Errorf("expected EOF, have %v", tok)
		}
	}
}

func TestMalformedTokenLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.scanner")
	defer teardown()
	//
	_, err := ReadTokenStream("bad", strings.NewReader("a\nb c d\n"))
	var cerr *cctk.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected configuration error, have %v", err)
	}
	if cerr.Line != 2 {
		t.Errorf("expected error in line 2, have %d", cerr.Line)
	}
}

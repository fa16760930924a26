package lexer

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/cctk"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadLexer(t *testing.T) *Lexer {
	f, err := os.Open("testdata/tokens.lex")
	require.NoError(t, err)
	defer f.Close()
	defs, err := ReadDefinitions("tokens.lex", f)
	require.NoError(t, err)
	require.Len(t, defs, 7)
	automata, err := CompileAll(defs)
	require.NoError(t, err)
	return New(automata)
}

func TestReadDefinitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lexer")
	defer teardown()
	//
	defs, err := ReadDefinitions("test", strings.NewReader("\n# comment\nA a*\n\nB b|c\n"))
	require.NoError(t, err)
	assert.Equal(t, []Definition{{"A", "a*", 3}, {"B", "b|c", 5}}, defs)
	//
	var cerr *cctk.ConfigurationError
	_, err = ReadDefinitions("test", strings.NewReader("A a\nB b c\n"))
	if assert.True(t, errors.As(err, &cerr)) {
		assert.Equal(t, 2, cerr.Line)
	}
	_, err = ReadDefinitions("test", strings.NewReader("A a\nA b\n"))
	assert.True(t, errors.As(err, &cerr))
	_, err = ReadDefinitions("test", nil)
	assert.True(t, errors.Is(err, cctk.ErrMissingSource))
}

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lexer")
	defer teardown()
	//
	a, err := Compile(Definition{Name: "AB", Regex: "ab"})
	require.NoError(t, err)
	assert.Equal(t, "AB", a.Name)
	assert.Equal(t, 3, a.DFA.Size())
	_, err = Compile(Definition{Name: "BAD", Regex: "(ab"})
	assert.Error(t, err)
}

func TestScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lexer")
	defer teardown()
	//
	lx := loadLexer(t)
	sc := lx.Scanner("if x1 == (42+ifx)\n")
	var types []cctk.TokType
	var lexemes []string
	for tok := sc.NextToken(); tok.TokType() != cctk.EOF; tok = sc.NextToken() {
		types = append(types, tok.TokType())
		lexemes = append(lexemes, tok.Lexeme())
	}
	assert.Equal(t, []cctk.TokType{"IF", "ID", "OP", "LPAREN", "NUM", "OP", "ID", "RPAREN"}, types)
	assert.Equal(t, []string{"if", "x1", "==", "(", "42", "+", "ifx", ")"}, lexemes)
	assert.Equal(t, cctk.EOF, sc.NextToken().TokType())
}

func TestScannerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.lexer")
	defer teardown()
	//
	lx := loadLexer(t)
	sc := lx.Scanner("a ; b")
	var errs []error
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	tok := sc.NextToken()
	assert.Equal(t, "a", tok.Lexeme())
	tok = sc.NextToken()
	assert.Equal(t, "b", tok.Lexeme())
	assert.Equal(t, cctk.Span{4, 5}, tok.Span())
	if assert.Len(t, errs, 1) {
		assert.True(t, errors.Is(errs[0], ErrNoMatch))
	}
}

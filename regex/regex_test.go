package regex

import (
	"errors"
	"testing"

	"github.com/npillmayer/cctk"
	"github.com/npillmayer/cctk/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.regex")
	defer teardown()
	//
	tokens, err := Tokenize("(a|b)*\\+\\s-\n+")
	require.NoError(t, err)
	var types []cctk.TokType
	for _, tok := range tokens {
		types = append(types, tok.TokType())
	}
	assert.Equal(t, []cctk.TokType{OpenToken, CharToken, PipeToken, CharToken, CloseToken,
		KleeneToken, CharToken, CharToken, DashToken, PlusToken, cctk.EOF}, types)
	assert.Equal(t, '+', tokens[6].Value())
	assert.Equal(t, ' ', tokens[7].Value())
	//
	_, err = Tokenize(`ab\`)
	var cerr *cctk.ConfigurationError
	assert.True(t, errors.As(err, &cerr))
}

func TestGrammarIsLL1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.regex")
	defer teardown()
	//
	table, err := Grammar()
	require.NoError(t, err)
	assert.Equal(t, "RE", table.Grammar().Goal().Name)
}

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.regex")
	defer teardown()
	//
	cases := []struct {
		regex string
		ast   string
	}{
		{"a", "'a'"},
		{"ab", "(seq 'a' 'b')"},
		{"a|bc", "(alt 'a' (seq 'b' 'c'))"},
		{"a*", "(star 'a')"},
		{"a+", "(seq 'a' (star 'a'))"},
		{"(ab)+c", "(seq 'a' 'b' (star (seq 'a' 'b')) 'c')"},
		{"a-c", "(alt 'a' 'b' 'c')"},
		{"x|a-b", "(alt 'x' 'a' 'b')"},
		{`\t\(`, `(seq '\t' '(')`},
		{"", "lambda"},
		{"a|", "(alt 'a' lambda)"},
		{"()", "lambda"},
	}
	for _, c := range cases {
		ast, err := Compile(c.regex)
		if assert.NoError(t, err, c.regex) {
			assert.Equal(t, c.ast, ast.String(), c.regex)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.regex")
	defer teardown()
	//
	_, err := Compile("c-a")
	assert.True(t, errors.Is(err, ErrInvalidRange))
	var perr *ll.ParseError
	_, err = Compile("(ab")
	assert.True(t, errors.As(err, &perr))
	_, err = Compile("*a")
	assert.True(t, errors.As(err, &perr))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cctk.regex")
	defer teardown()
	//
	nested := Seq(Seq(Lit('a')), Alt(Alt(Lit('b'), Lit('c'))), Seq(), Star(Seq(Lit('d'))))
	n := nested.Normalize()
	assert.Equal(t, "(seq 'a' (alt 'b' 'c') lambda (star 'd'))", n.String())
	assert.True(t, n.Equal(n.Normalize()))
	for _, re := range []string{"(a|(b|c))d*", "a+b+|(x-z)"} {
		ast, err := Compile(re)
		require.NoError(t, err)
		assert.True(t, ast.Equal(ast.Normalize()), re)
	}
}

func TestCopyIsDeep(t *testing.T) {
	a := Seq(Lit('a'), Star(Lit('b')))
	b := a.Copy()
	assert.True(t, a.Equal(b))
	b.Children[1].Children[0].Char = 'x'
	assert.False(t, a.Equal(b))
}

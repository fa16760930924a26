package lr

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/cctk"
	"github.com/npillmayer/cctk/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Grammar definitions are line-oriented:
//
//    # comment
//    S  -> A $
//    A  -> T A
//       |  lambda
//
// A line starting with '|' continues the rule of the previous line.
// Symbols are separated by white space. Within a line, lines are split into
// tokens by a lexmachine scanner.

// Token types of the grammar lexer. Arrow and pipe are literals, every other
// run of non-blank characters is a symbol.
const (
	tokArrow  = "->"
	tokPipe   = "|"
	tokSymbol = "SYMBOL"
)

var (
	dslLiterals = []string{tokArrow, tokPipe}
	dslTokenIds = map[string]int{tokArrow: 1, tokPipe: 2, tokSymbol: 3}
)

var (
	dslLexer     *lexmach.LMAdapter
	dslLexerErr  error
	dslLexerOnce sync.Once
)

func grammarLexer() (*lexmach.LMAdapter, error) {
	dslLexerOnce.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`[^ \t\r\n|]+`), lexmach.MakeToken(tokSymbol, dslTokenIds[tokSymbol]))
			lexer.Add([]byte(`( |\t|\r)+`), lexmach.Skip)
		}
		dslLexer, dslLexerErr = lexmach.NewLMAdapter(init, dslLiterals, nil, dslTokenIds)
	})
	return dslLexer, dslLexerErr
}

// ReadGrammar reads a grammar definition from r. sourceName is used for
// error messages. Errors are of type *cctk.ConfigurationError.
func ReadGrammar(sourceName string, r io.Reader) (*Grammar, error) {
	if r == nil {
		return nil, &cctk.ConfigurationError{Cause: cctk.ErrMissingSource, SourceName: sourceName}
	}
	lm, err := grammarLexer()
	if err != nil {
		return nil, &cctk.ConfigurationError{Cause: err, SourceName: sourceName}
	}
	b := NewGrammarBuilder(sourceName)
	var lhs string
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		toks, err := tokenizeLine(lm, line)
		if err != nil {
			return nil, cctk.ConfigError(sourceName, lineno, "%v", err)
		}
		var alts [][]string
		if toks[0].TokType() == tokPipe {
			if lhs == "" {
				return nil, cctk.ConfigError(sourceName, lineno, "continuation line without preceding rule")
			}
			alts = splitAlternatives(toks[1:])
		} else {
			if len(toks) < 2 || toks[0].TokType() != tokSymbol || toks[1].TokType() != tokArrow {
				return nil, cctk.ConfigError(sourceName, lineno, "expected 'LHS -> RHS', have %q", line)
			}
			lhs = toks[0].Lexeme()
			alts = splitAlternatives(toks[2:])
		}
		for _, alt := range alts {
			rb := b.LHS(lhs)
			for _, name := range alt {
				rb.Sym(name)
			}
			rb.End()
		}
	}
	if err := lines.Err(); err != nil {
		return nil, &cctk.ConfigurationError{Cause: err, SourceName: sourceName, Line: lineno}
	}
	if len(b.rules) == 0 {
		return nil, cctk.ConfigError(sourceName, 0, "grammar has no rules")
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, &cctk.ConfigurationError{Cause: err, SourceName: sourceName}
	}
	tracer().Infof("read grammar %s with %d rules, goal %v", sourceName, len(g.rules), g.goal)
	return g, nil
}

func tokenizeLine(lm *lexmach.LMAdapter, line string) ([]cctk.Token, error) {
	sc, err := lm.Scanner(line)
	if err != nil {
		return nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	var toks []cctk.Token
	for tok := sc.NextToken(); tok.TokType() != cctk.EOF; tok = sc.NextToken() {
		if tok.TokType() == tokArrow && len(toks) != 1 {
			return nil, fmt.Errorf("unexpected '->' at column %d", tok.Span().From())
		}
		toks = append(toks, tok)
	}
	return toks, scanErr
}

// splitAlternatives splits a RHS at '|' tokens. An empty alternative or an
// alternative consisting of `lambda` denotes an empty production.
func splitAlternatives(toks []cctk.Token) [][]string {
	alts := [][]string{{}}
	for _, tok := range toks {
		if tok.TokType() == tokPipe {
			alts = append(alts, []string{})
			continue
		}
		last := len(alts) - 1
		alts[last] = append(alts[last], tok.Lexeme())
	}
	return alts
}

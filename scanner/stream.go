package scanner

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/cctk"
)

// TokenStream is a Tokenizer over a pre-computed sequence of tokens. The
// sequence always ends with an end-of-input token; after the end has been
// reached, NextToken continues to return it.
type TokenStream struct {
	tokens []cctk.Token
	pos    int
	Error  func(error)
}

var _ Tokenizer = (*TokenStream)(nil)

// NewTokenStream wraps a slice of tokens. If the last token is not an end-of-input
// token, one is appended.
func NewTokenStream(tokens []cctk.Token) *TokenStream {
	ts := &TokenStream{
		tokens: append([]cctk.Token(nil), tokens...),
		Error:  logError,
	}
	if n := len(ts.tokens); n == 0 || ts.tokens[n-1].TokType() != cctk.EOF {
		var pos uint64
		if n > 0 {
			pos = ts.tokens[n-1].Span().To()
		}
		ts.tokens = append(ts.tokens, EOFToken(pos))
	}
	return ts
}

// ReadTokenStream reads tokens in the format
//
//    <type> [value]
//
// with one token per line. Blank lines are skipped. Lines with more than
// two fields are rejected with a *cctk.ConfigurationError. Spans of tokens
// denote line numbers.
func ReadTokenStream(sourceName string, r io.Reader) (*TokenStream, error) {
	if r == nil {
		return nil, &cctk.ConfigurationError{Cause: cctk.ErrMissingSource, SourceName: sourceName}
	}
	var tokens []cctk.Token
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		fields := strings.Fields(lines.Text())
		switch len(fields) {
		case 0:
			continue
		case 1, 2:
			tok := DefaultToken{
				kind: cctk.TokType(fields[0]),
				span: cctk.Span{uint64(lineno), uint64(lineno + 1)},
			}
			if len(fields) == 2 {
				tok.lexeme = fields[1]
				tok.Val = fields[1]
			}
			tokens = append(tokens, tok)
		default:
			return nil, cctk.ConfigError(sourceName, lineno,
				"token line has %d fields, expected '<type> [value]'", len(fields))
		}
	}
	if err := lines.Err(); err != nil {
		return nil, &cctk.ConfigurationError{Cause: err, SourceName: sourceName, Line: lineno}
	}
	tracer().Debugf("read %d tokens from %s", len(tokens), sourceName)
	return NewTokenStream(tokens), nil
}

// SetErrorHandler sets an error handler for the scanner.
func (ts *TokenStream) SetErrorHandler(h func(error)) {
	if h == nil {
		ts.Error = logError
		return
	}
	ts.Error = h
}

// NextToken is part of the Tokenizer interface.
func (ts *TokenStream) NextToken() cctk.Token {
	tok := ts.tokens[ts.pos]
	if ts.pos < len(ts.tokens)-1 {
		ts.pos++
	}
	return tok
}

// Tokens returns all tokens of the stream, including the end-of-input token.
func (ts *TokenStream) Tokens() []cctk.Token {
	return append([]cctk.Token(nil), ts.tokens...)
}

// Reset moves the stream back to the first token.
func (ts *TokenStream) Reset() {
	ts.pos = 0
}

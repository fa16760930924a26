package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/cctk"
)

// Token types produced by the Go tokenizer. Any other token is a single
// character, its token type is the character itself, e.g. "+".
const (
	Ident     cctk.TokType = "ident"
	Int       cctk.TokType = "int"
	Float     cctk.TokType = "float"
	Char      cctk.TokType = "char"
	String    cctk.TokType = "string"
	RawString cctk.TokType = "rawstring"
	Comment   cctk.TokType = "comment"
)

var goTokenTypes = map[rune]cctk.TokType{
	scanner.EOF:       cctk.EOF,
	scanner.Ident:     Ident,
	scanner.Int:       Int,
	scanner.Float:     Float,
	scanner.Char:      Char,
	scanner.String:    String,
	scanner.RawString: RawString,
	scanner.Comment:   Comment,
}

// DefaultTokenizer is a tokenizer for input similar to the Go language,
// backed by text/scanner. Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	Error        func(error) // error handler
	unifyStrings bool        // convert single chars and raw strings to strings
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a tokenizer accepting tokens similar to the Go language.
// Comments are skipped unless option SkipComments(false) is given.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() cctk.Token {
	r := t.Scan()
	tt, ok := goTokenTypes[r]
	if !ok {
		tt = cctk.TokType(string(r))
	}
	if t.unifyStrings && (tt == RawString || tt == Char) {
		tt = String
	}
	if tt == cctk.EOF {
		tracer().Debugf("Go tokenizer reached end of input")
		return EOFToken(uint64(t.Pos().Offset))
	}
	return DefaultToken{
		kind:   tt,
		lexeme: t.TokenText(),
		span:   cctk.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// --- Options for the Go tokenizer ------------------------------------------

// Option configures a Go tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears skipping of comments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

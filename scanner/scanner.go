package scanner

import (
	"fmt"

	"github.com/npillmayer/cctk"
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() cctk.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for token
// streams as well as for the LexMachine scanner.
type DefaultToken struct {
	kind   cctk.TokType
	lexeme string
	Val    interface{}
	span   cctk.Span
}

var _ cctk.Token = DefaultToken{}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ cctk.TokType, lexeme string, span cctk.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// EOFToken creates an end-of-input token at a given position.
func EOFToken(pos uint64) DefaultToken {
	return MakeDefaultToken(cctk.EOF, "", cctk.Span{pos, pos})
}

func (t DefaultToken) TokType() cctk.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() cctk.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.lexeme == "" {
		return string(t.kind)
	}
	return fmt.Sprintf("%s(%s)", t.kind, t.lexeme)
}

package regex

import (
	"github.com/npillmayer/cctk"
	"github.com/npillmayer/cctk/scanner"
)

// Token types of regular expressions. Every character which is not a control
// symbol is a CharToken, carrying the character as its value.
const (
	CharToken   cctk.TokType = "char"
	DashToken   cctk.TokType = "dash"
	OpenToken   cctk.TokType = "open"
	CloseToken  cctk.TokType = "close"
	PipeToken   cctk.TokType = "pipe"
	KleeneToken cctk.TokType = "kleene"
	PlusToken   cctk.TokType = "plus"
)

var controlSymbols = map[rune]cctk.TokType{
	'-': DashToken,
	'(': OpenToken,
	')': CloseToken,
	'|': PipeToken,
	'*': KleeneToken,
	'+': PlusToken,
}

var escapes = map[rune]rune{
	's': ' ',
	't': '\t',
	'n': '\n',
}

// Tokenize splits a regular expression into tokens. The token sequence is
// terminated by an end-of-input token. Newline characters in the input are
// skipped. A dangling backslash at the end of the input is an error.
func Tokenize(text string) ([]cctk.Token, error) {
	var tokens []cctk.Token
	forceChar := false
	var pos uint64
	for _, c := range text {
		pos++
		span := cctk.Span{pos - 1, pos}
		switch {
		case c == '\n':
			continue
		case c == '\\' && !forceChar:
			forceChar = true
			continue
		case forceChar:
			if e, ok := escapes[c]; ok {
				c = e
			}
			tokens = append(tokens, charToken(c, span))
		default:
			if tt, ok := controlSymbols[c]; ok {
				tokens = append(tokens, scanner.MakeDefaultToken(tt, string(c), span))
			} else {
				tokens = append(tokens, charToken(c, span))
			}
		}
		forceChar = false
	}
	if forceChar {
		return nil, cctk.ConfigError("regex", 0, "dangling backslash at end of %q", text)
	}
	tokens = append(tokens, scanner.EOFToken(pos))
	tracer().Debugf("regex %q has %d tokens", text, len(tokens))
	return tokens, nil
}

func charToken(c rune, span cctk.Span) cctk.Token {
	tok := scanner.MakeDefaultToken(CharToken, string(c), span)
	tok.Val = c
	return tok
}

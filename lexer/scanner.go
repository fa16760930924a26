package lexer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cctk"
	"github.com/npillmayer/cctk/scanner"
)

// ErrNoMatch is reported for input which no token definition matches.
var ErrNoMatch = errors.New("no token matches input")

// Lexer scans input with a list of compiled token definitions.
type Lexer struct {
	automata []*Automaton
}

// New creates a lexer. The order of the automata decides between definitions
// matching input of the same length.
func New(automata []*Automaton) *Lexer {
	return &Lexer{automata: automata}
}

// Automata returns the automata of the lexer.
func (l *Lexer) Automata() []*Automaton {
	return l.automata
}

// Scanner is a tokenizer for an input string.
type Scanner struct {
	lexer *Lexer
	input []rune
	pos   int
	Error func(error)
}

var _ scanner.Tokenizer = (*Scanner)(nil)

// Scanner creates a tokenizer for an input string.
func (l *Lexer) Scanner(input string) *Scanner {
	return &Scanner{
		lexer: l,
		input: []rune(input),
		Error: logError,
	}
}

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// SetErrorHandler sets an error handler for the scanner. Input which no
// token definition matches is reported to it and skipped, one character at
// a time.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken returns the next token of the input. Token types are the names of
// the token definitions. After the input is exhausted, NextToken returns
// end-of-input tokens.
func (s *Scanner) NextToken() cctk.Token {
	for s.pos < len(s.input) {
		a, n := s.longestMatch()
		if a == nil {
			s.Error(fmt.Errorf("%w at position %d: %q", ErrNoMatch, s.pos, string(s.input[s.pos])))
			s.pos++
			continue
		}
		span := cctk.Span{uint64(s.pos), uint64(s.pos + n)}
		lexeme := string(s.input[s.pos : s.pos+n])
		s.pos += n
		if strings.HasPrefix(a.Name, "_") {
			continue
		}
		tok := scanner.MakeDefaultToken(cctk.TokType(a.Name), lexeme, span)
		tracer().Debugf("token %v", tok)
		return tok
	}
	return scanner.EOFToken(uint64(len(s.input)))
}

// longestMatch runs all DFAs from the current position and returns the one
// with the longest non-empty match, together with the match length.
func (s *Scanner) longestMatch() (*Automaton, int) {
	var best *Automaton
	bestLen := 0
	for _, a := range s.lexer.automata {
		d := a.DFA
		state, matched := d.Start(), 0
		for i := s.pos; i < len(s.input); i++ {
			var ok bool
			if state, ok = d.Step(state, s.input[i]); !ok {
				break
			}
			if d.IsAccepting(state) {
				matched = i - s.pos + 1
			}
		}
		if matched > bestLen {
			best, bestLen = a, matched
		}
	}
	return best, bestLen
}

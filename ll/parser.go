package ll

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/cctk"
	"github.com/npillmayer/cctk/lr"
	"github.com/npillmayer/cctk/parsetree"
	"github.com/npillmayer/cctk/scanner"
	"github.com/npillmayer/schuko/gconf"
)

// ParseError is returned if the input does not match the grammar. It names the
// offending token and the non-terminal being expanded.
type ParseError struct {
	NonTerminal string     // non-terminal being expanded
	Expected    []string   // terminals which would have been accepted
	Token       cctk.Token // offending lookahead token
}

func (e *ParseError) Error() string {
	var tok string
	if e.Token.TokType() == cctk.EOF {
		tok = "end of input"
	} else {
		tok = fmt.Sprintf("%s %q", e.Token.TokType(), e.Token.Lexeme())
	}
	return fmt.Sprintf("syntax error at %v: unexpected %s while expanding %s, expected one of [%s]",
		e.Token.Span(), tok, e.NonTerminal, strings.Join(e.Expected, " "))
}

// Parser is an LL(1) parser. Create one with NewParser.
type Parser struct {
	g     *lr.Grammar
	table *lr.LLTable
}

// NewParser creates a parser for an LL(1) prediction table.
func NewParser(table *lr.LLTable) *Parser {
	return &Parser{g: table.Grammar(), table: table}
}

// Entries of the parser's work stack: grammar symbols to match, and
// scope-close markers for moving the tree cursor up.
type stackEntry struct {
	sym   *lr.Symbol
	close bool
}

// MakeTree parses the tokens delivered by a tokenizer and returns the parse tree
// for the goal symbol. The parent of the result is a node of kind parsetree.Root.
//
// The parser keeps a work stack of grammar symbols, initially holding the goal.
// A non-terminal on top of the stack is replaced by the RHS of the rule the
// prediction table selects for the current lookahead; a terminal has to match
// the lookahead.
func (p *Parser) MakeTree(tokens scanner.Tokenizer) (*parsetree.Node, error) {
	if p.g.Goal() == nil {
		return nil, lr.ErrEmptyGrammar
	}
	root := parsetree.NewRoot()
	cursor := parsetree.NewCursor(root)
	stack := arraystack.New()
	stack.Push(stackEntry{sym: p.g.Goal()})
	la := tokens.NextToken()
	for !stack.Empty() {
		x, _ := stack.Pop()
		e := x.(stackEntry)
		switch {
		case e.close:
			if err := cursor.Up(); err != nil {
				return nil, err
			}
		case e.sym.IsNonTerminal():
			rule, ok := p.table.LookupToken(e.sym, la.TokType())
			if !ok {
				return nil, p.stuck(e.sym.Name, p.expected(e.sym), la)
			}
			tracer().Debugf("expand %v on %s", rule, la.TokType())
			stack.Push(stackEntry{close: true})
			cursor.Descend(parsetree.NewNonTerminal(e.sym.Name, rule.Alt))
			if rule.IsLambda() {
				cursor.Attach(parsetree.NewLambda())
				continue
			}
			rhs := rule.RHS()
			for i := len(rhs) - 1; i >= 0; i-- {
				stack.Push(stackEntry{sym: rhs[i]})
			}
		default:
			if string(la.TokType()) != e.sym.Name {
				return nil, p.stuck(cursor.Current().Symbol, []string{e.sym.Name}, la)
			}
			tracer().Debugf("match %v", la)
			cursor.Attach(parsetree.NewTerminal(la))
			la = tokens.NextToken()
		}
	}
	// tokenizers keep delivering EOF after the end of input, anything else is
	// trailing input
	if la.TokType() != cctk.EOF {
		return nil, p.stuck(p.g.Goal().Name, nil, la)
	}
	return root.Child(0), nil
}

func (p *Parser) expected(A *lr.Symbol) []string {
	entries := p.table.Entries(A)
	var exp []string
	for _, a := range p.g.Terminals() {
		if _, ok := entries[a.Name]; ok {
			exp = append(exp, a.Name)
		}
	}
	return exp
}

func (p *Parser) stuck(nonterm string, expected []string, la cctk.Token) error {
	err := &ParseError{NonTerminal: nonterm, Expected: expected, Token: la}
	tracer().Errorf("%v", err)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(err)
	}
	return err
}

/*
Package slr provides an SLR(1)-parser. Clients have to use the tools
of package lr to prepare the necessary parse table. The SLR parser
utilizes this table to create a right derivation for a given input,
provided through a tokenizer interface.

This parser is intended for small to moderate grammars, e.g. for configuration
input or small domain-specific languages. It is *not* intended for full-fledged
programming languages.

Clients are able to construct the parse table from a grammar and use the
parser directly, without a code-generation or compile step.

Usage

Clients construct a grammar, usually by reading it from a grammar definition:

	g, err := lr.ReadGrammar("prefix", strings.NewReader(`
	    Start -> E $
	    E     -> plus E E | num
	`))

This grammar is subjected to grammar analysis and table generation.

	ga := lr.Analysis(g)
	table, err := lr.NewTableGenerator(ga).SLRTable()
	if err != nil { ... }  // cannot use an SLR parser

Finally parse some input:

	p := slr.NewParser(table)
	tree, err := p.MakeTree(tokens)

The goal rule is reduced as soon as its handle is complete and the input is
exhausted. The table entry for the start state and the goal symbol then
accepts the input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cctk"
	"github.com/npillmayer/cctk/lr"
	"github.com/npillmayer/cctk/parsetree"
	"github.com/npillmayer/cctk/scanner"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cctk.lr'.
func tracer() tracing.Trace {
	return tracing.Select("cctk.lr")
}

// ParseError is returned if the parser cannot find an action for the current
// state and lookahead token.
type ParseError struct {
	State    int        // CFSM state on top of the parse stack
	Expected []string   // terminals which would have been accepted
	Token    cctk.Token // offending lookahead token
}

func (e *ParseError) Error() string {
	var tok string
	if e.Token.TokType() == cctk.EOF {
		tok = "end of input"
	} else {
		tok = fmt.Sprintf("%s %q", e.Token.TokType(), e.Token.Lexeme())
	}
	return fmt.Sprintf("syntax error at %v: unexpected %s in state %d, expected one of [%s]",
		e.Token.Span(), tok, e.State, strings.Join(e.Expected, " "))
}

// Parser is an SLR(1)-parser type. Create and initialize one with slr.NewParser(...)
type Parser struct {
	G     *lr.Grammar
	table *lr.SLRTable
	stack []stackitem // parser stack
}

// We store pairs of state-IDs and parse tree nodes on the parse stack.
type stackitem struct {
	stateID int
	node    *parsetree.Node // terminal leaf or reduced non-terminal
}

// NewParser creates an SLR(1) parser.
func NewParser(table *lr.SLRTable) *Parser {
	return &Parser{
		G:     table.Grammar(),
		table: table,
		stack: make([]stackitem, 0, 512),
	}
}

// Parse starts a new parse, reading tokens from a tokenizer. It returns true
// if the input string has been accepted.
func (p *Parser) Parse(tokens scanner.Tokenizer) (bool, error) {
	_, err := p.MakeTree(tokens)
	return err == nil, err
}

// MakeTree parses the input and returns the parse tree for the goal symbol.
// The parent of the result is a node of kind parsetree.Root.
func (p *Parser) MakeTree(tokens scanner.Tokenizer) (*parsetree.Node, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.G.Goal() == nil {
		return nil, lr.ErrEmptyGrammar
	}
	cfsm := p.table.CFSM()
	p.stack = append(p.stack[:0], stackitem{stateID: cfsm.S0.ID})
	token := tokens.NextToken()
	eofShifted := false
	for {
		state := p.tos().stateID
		var action lr.Action
		if !eofShifted {
			action = p.table.ActionForToken(state, token.TokType())
			tracer().Debugf("action(%d,%s) = %v", state, token.TokType(), action)
		}
		switch action.Kind {
		case lr.ShiftAction:
			tracer().Debugf("shifting %v, next state = %d", token, action.State)
			p.stack = append(p.stack, stackitem{action.State, parsetree.NewTerminal(token)})
			if token.TokType() == cctk.EOF {
				eofShifted = true
			}
			token = tokens.NextToken()
		case lr.ReduceAction:
			if err := p.reduce(action.Rule, token); err != nil {
				return nil, err
			}
		default:
			if eofShifted || token.TokType() == cctk.EOF {
				if rule := p.completedGoal(state); rule != nil {
					if token.TokType() != cctk.EOF { // trailing input after $
						return nil, p.stuck(state, token)
					}
					return p.accept(rule, token)
				}
			}
			return nil, p.stuck(state, token)
		}
	}
}

func (p *Parser) tos() stackitem {
	return p.stack[len(p.stack)-1]
}

// reduce performs a reduce action for a rule
//
//    LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn are represented on the stack as states
//
//    [TOS]  Sn(Xn) ... S1(X1)  ...
//
// and are replaced by the LHS, i.e. the goto-state for LHS.
func (p *Parser) reduce(rule *lr.Rule, la cctk.Token) error {
	tracer().Infof("reduce %v", rule)
	node := p.handle(rule)
	goTo := p.table.Action(p.tos().stateID, rule.LHS)
	if goTo.Kind != lr.GotoAction {
		return p.stuck(p.tos().stateID, la)
	}
	p.stack = append(p.stack, stackitem{goTo.State, node})
	return nil
}

// handle pops the RHS of a rule off the stack and collects it in a new node.
func (p *Parser) handle(rule *lr.Rule) *parsetree.Node {
	n := len(rule.RHS())
	node := parsetree.NewNonTerminal(rule.LHS.Name, rule.Alt)
	if n == 0 {
		node.Add(parsetree.NewLambda())
		return node
	}
	for _, item := range p.stack[len(p.stack)-n:] {
		node.Add(item.node)
	}
	p.stack = p.stack[:len(p.stack)-n]
	return node
}

// accept reduces the goal rule and checks the result against the accept
// entry of the table.
func (p *Parser) accept(rule *lr.Rule, la cctk.Token) (*parsetree.Node, error) {
	tracer().Infof("reduce goal %v", rule)
	node := p.handle(rule)
	state := p.tos().stateID
	if len(p.stack) != 1 || p.table.Action(state, rule.LHS).Kind != lr.AcceptAction {
		return nil, p.stuck(state, la)
	}
	root := parsetree.NewRoot()
	root.Add(node)
	tracer().Infof("input accepted")
	return node, nil
}

// completedGoal returns the goal rule if state holds a complete goal item.
func (p *Parser) completedGoal(state int) *lr.Rule {
	s := p.table.CFSM().Graph().State(state)
	if s == nil || !s.Accept {
		return nil
	}
	for _, i := range p.table.CFSM().ItemSet(state).Items() {
		if i.IsComplete() && i.Rule().LHS == p.G.Goal() {
			return i.Rule()
		}
	}
	return nil
}

func (p *Parser) expected(state int) []string {
	var exp []string
	for _, a := range p.G.Terminals() {
		if p.table.Action(state, a).Kind != lr.NoAction {
			exp = append(exp, a.Name)
		}
	}
	return exp
}

func (p *Parser) stuck(state int, la cctk.Token) error {
	err := &ParseError{State: state, Expected: p.expected(state), Token: la}
	tracer().Errorf("%v", err)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(err)
	}
	return err
}

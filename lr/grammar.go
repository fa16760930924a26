package lr

import (
	"errors"
	"fmt"
	"strings"
)

// Rule is a grammar production LHS → RHS. Serial is the number of the rule
// within its grammar, Alt the number of the alternative within the LHS's rules.
// A lambda-production has an empty RHS.
type Rule struct {
	Serial int
	LHS    *Symbol
	Alt    int
	rhs    []*Symbol
}

// RHS returns the right hand side symbols of a rule.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsLambda is true for an empty production.
func (r *Rule) IsLambda() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.LHS, rhsString(r.rhs))
}

func rhsString(rhs []*Symbol) string {
	if len(rhs) == 0 {
		return LambdaName
	}
	names := make([]string, len(rhs))
	for i, A := range rhs {
		names[i] = A.Name
	}
	return strings.Join(names, " ")
}

// Grammar is a context-free grammar. Grammars are immutable once built; create
// them with a GrammarBuilder or ReadGrammar.
type Grammar struct {
	Name         string
	goal         *Symbol
	lambda       *Symbol
	terminals    []*Symbol
	nonterminals []*Symbol
	symbols      map[string]*Symbol
	rules        []*Rule
	alts         map[*Symbol][]*Rule
}

// Goal returns the goal symbol, i.e. the LHS of the first rule containing
// the end marker. It is nil for an empty grammar.
func (g *Grammar) Goal() *Symbol {
	return g.goal
}

// Lambda returns the grammar's lambda symbol.
func (g *Grammar) Lambda() *Symbol {
	return g.lambda
}

// Symbol finds a symbol by name, or returns nil.
func (g *Grammar) Symbol(name string) *Symbol {
	if name == LambdaName {
		return g.lambda
	}
	return g.symbols[name]
}

// Terminals returns the terminals, including the end marker, in order of appearance.
func (g *Grammar) Terminals() []*Symbol {
	return g.terminals
}

// NonTerminals returns the non-terminals in order of appearance.
func (g *Grammar) NonTerminals() []*Symbol {
	return g.nonterminals
}

// Rules returns all rules, ordered by serial number.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Rule returns rule no. serial.
func (g *Grammar) Rule(serial int) *Rule {
	if serial < 0 || serial >= len(g.rules) {
		return nil
	}
	return g.rules[serial]
}

// Alternatives returns the rules for a non-terminal A, ordered by alternative index.
func (g *Grammar) Alternatives(A *Symbol) []*Rule {
	return g.alts[A]
}

// Size returns the number of symbols (terminals and non-terminals).
func (g *Grammar) Size() int {
	return len(g.terminals) + len(g.nonterminals)
}

// EachSymbol iterates over all terminals, followed by all non-terminals.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.terminals {
		r = append(r, mapper(A))
	}
	for _, A := range g.nonterminals {
		r = append(r, mapper(A))
	}
	return r
}

// EachNonTerminal iterates over all non-terminals.
func (g *Grammar) EachNonTerminal(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.nonterminals {
		r = append(r, mapper(A))
	}
	return r
}

// symbolAt returns the symbol with a given value.
func (g *Grammar) symbolAt(value int) *Symbol {
	if value < len(g.terminals) {
		return g.terminals[value]
	}
	return g.nonterminals[value-len(g.terminals)]
}

// ntIndex returns the row index of a non-terminal in tables.
func (g *Grammar) ntIndex(A *Symbol) int {
	return A.Value - len(g.terminals)
}

// Dump is a debugging helper, tracing the rules of a grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s, goal %v ---", g.Name, g.goal)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %v", r.Serial, r)
	}
	tracer().Debugf("-----------------------------------------")
}

// === Grammar Builder =======================================================

// ErrNoGoal is returned for a non-empty grammar without a rule containing the end marker.
var ErrNoGoal = errors.New("no rule contains the end marker $, cannot determine goal symbol")

type symbolRef struct {
	name string
	kind SymbolKind // hint given by the builder client
	hint bool
}

type ruleDef struct {
	lhs string
	rhs []symbolRef
}

// GrammarBuilder is used to construct a Grammar.
//
//    b := lr.NewGrammarBuilder("G")
//    b.LHS("S").N("A").EOF()       // S  ->  A $
//    b.LHS("A").T("a").N("A").End() // A  ->  a A
//    b.LHS("A").Epsilon()          // A  ->  lambda
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	name  string
	rules []*ruleDef
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{name: gname}
}

// RuleBuilder is a builder type for a single rule.
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *ruleDef
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	return &RuleBuilder{gb: gb, rule: &ruleDef{lhs: s}}
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, symbolRef{name: s, kind: NonTerminalSymbol, hint: true})
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(s string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, symbolRef{name: s, kind: TerminalSymbol, hint: true})
	return rb
}

// Sym appends a symbol without a hint; it will be classified by whether it
// occurs as the LHS of a rule.
func (rb *RuleBuilder) Sym(s string) *RuleBuilder {
	if s == LambdaName {
		return rb
	}
	rb.rule.rhs = append(rb.rule.rhs, symbolRef{name: s})
	return rb
}

// End a rule.
func (rb *RuleBuilder) End() {
	rb.gb.rules = append(rb.gb.rules, rb.rule)
}

// EOF appends the end marker and ends the rule.
func (rb *RuleBuilder) EOF() {
	rb.rule.rhs = append(rb.rule.rhs, symbolRef{name: EndMarkerName, kind: EndMarkerSymbol, hint: true})
	rb.End()
}

// Epsilon sets lambda as the RHS of a production and ends the rule.
func (rb *RuleBuilder) Epsilon() {
	rb.rule.rhs = nil
	rb.End()
}

// Grammar returns the grammar constructed by the builder. A grammar without
// rules is valid. Otherwise, Grammar returns ErrNoGoal if no rule contains the
// end marker, or an error if builder hints contradict the classification of
// a symbol.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	g := &Grammar{
		Name:    gb.name,
		lambda:  &Symbol{Name: LambdaName, Kind: LambdaSymbol, Value: -1},
		symbols: make(map[string]*Symbol),
		alts:    make(map[*Symbol][]*Rule),
	}
	if len(gb.rules) == 0 {
		return g, nil
	}
	isLHS := make(map[string]bool)
	for _, r := range gb.rules {
		if r.lhs == EndMarkerName || r.lhs == LambdaName {
			return nil, fmt.Errorf("reserved symbol %q cannot be LHS of a rule", r.lhs)
		}
		if !isLHS[r.lhs] {
			isLHS[r.lhs] = true
			A := &Symbol{Name: r.lhs, Kind: NonTerminalSymbol}
			g.nonterminals = append(g.nonterminals, A)
			g.symbols[r.lhs] = A
		}
	}
	for _, r := range gb.rules {
		for _, ref := range r.rhs {
			if _, known := g.symbols[ref.name]; known {
				if ref.hint && ref.kind == TerminalSymbol && isLHS[ref.name] {
					return nil, fmt.Errorf("symbol %q used as terminal, but has rules", ref.name)
				}
				continue
			}
			A := &Symbol{Name: ref.name, Kind: TerminalSymbol}
			switch {
			case ref.name == EndMarkerName:
				A.Kind = EndMarkerSymbol
			case ref.hint && ref.kind == NonTerminalSymbol:
				tracer().Infof("warning: non-terminal %s has no rules", ref.name)
				A.Kind = NonTerminalSymbol
				g.nonterminals = append(g.nonterminals, A)
				g.symbols[ref.name] = A
				continue
			}
			g.terminals = append(g.terminals, A)
			g.symbols[ref.name] = A
		}
	}
	for i, A := range g.terminals {
		A.Value = i
	}
	for i, A := range g.nonterminals {
		A.Value = len(g.terminals) + i
	}
	for serial, r := range gb.rules {
		lhs := g.symbols[r.lhs]
		rule := &Rule{
			Serial: serial,
			LHS:    lhs,
			Alt:    len(g.alts[lhs]),
			rhs:    make([]*Symbol, len(r.rhs)),
		}
		for i, ref := range r.rhs {
			rule.rhs[i] = g.symbols[ref.name]
			if g.goal == nil && rule.rhs[i].Kind == EndMarkerSymbol {
				g.goal = lhs
			}
		}
		g.rules = append(g.rules, rule)
		g.alts[lhs] = append(g.alts[lhs], rule)
	}
	if g.goal == nil {
		return nil, ErrNoGoal
	}
	return g, nil
}

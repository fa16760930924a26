package regex

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cctk"
	"github.com/npillmayer/cctk/parsetree"
)

// ErrInvalidRange is returned for character ranges with start > end.
var ErrInvalidRange = errors.New("invalid character range")

// Simplify turns the parse tree of a regular expression into a normalized AST.
// The parse tree is walked bottom-up, every non-terminal is replaced by a
// rewrite specific to the non-terminal and the alternative it has been
// expanded with. A one-or-more construct X+ is rewritten to X X*, a range
// a-z to an alternation of all the characters in the range.
func Simplify(tree *parsetree.Node) (*AST, error) {
	v, err := parsetree.Walk(tree, simplifier{})
	if err != nil {
		return nil, err
	}
	ast, ok := v.(*AST)
	if !ok {
		return nil, fmt.Errorf("parse tree %v is not a regular expression", tree)
	}
	return ast.Normalize(), nil
}

// Intermediate values of the rewrite.
type (
	astList  []*AST
	modifier cctk.TokType
	rangeEnd rune
)

type rewrite func(n *parsetree.Node, ch []interface{}) (interface{}, error)

var rewrites map[string]rewrite

func init() {
	rewrites = map[string]rewrite{
		"RE":      rewriteRE,
		"ALT":     rewriteALT,
		"ALTLIST": rewriteALTLIST,
		"SEQ":     rewriteSEQ,
		"SEQLIST": rewriteSEQLIST,
		"ATOM":    rewriteATOM,
		"ATOMMOD": rewriteATOMMOD,
		"NUCLEUS": rewriteNUCLEUS,
		"CHARRNG": rewriteCHARRNG,
	}
}

type simplifier struct{}

func (simplifier) Terminal(n *parsetree.Node) (interface{}, error) {
	if n.Kind == parsetree.Lambda {
		return nil, nil
	}
	return n.Token, nil
}

func (simplifier) Reduce(n *parsetree.Node, ch []interface{}) (interface{}, error) {
	r, ok := rewrites[n.Symbol]
	if !ok {
		return nil, fmt.Errorf("unknown regex parse tree node %v", n)
	}
	v, err := r(n, ch)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("%v => %v", n, v)
	return v, nil
}

// RE -> ALT $
func rewriteRE(n *parsetree.Node, ch []interface{}) (interface{}, error) {
	return ch[0], nil
}

// ALT -> SEQ ALTLIST
func rewriteALT(n *parsetree.Node, ch []interface{}) (interface{}, error) {
	alts := append(astList{ch[0].(*AST)}, ch[1].(astList)...)
	return Alt(alts...).Normalize(), nil
}

// ALTLIST -> pipe SEQ ALTLIST | lambda
func rewriteALTLIST(n *parsetree.Node, ch []interface{}) (interface{}, error) {
	if n.Alt == 1 {
		return astList(nil), nil
	}
	return append(astList{ch[1].(*AST)}, ch[2].(astList)...), nil
}

// SEQ -> ATOM SEQLIST | lambda
func rewriteSEQ(n *parsetree.Node, ch []interface{}) (interface{}, error) {
	if n.Alt == 1 {
		return Empty(), nil
	}
	seq := append(astList{ch[0].(*AST)}, ch[1].(astList)...)
	return Seq(seq...).Normalize(), nil
}

// SEQLIST -> ATOM SEQLIST | lambda
func rewriteSEQLIST(n *parsetree.Node, ch []interface{}) (interface{}, error) {
	if n.Alt == 1 {
		return astList(nil), nil
	}
	return append(astList{ch[0].(*AST)}, ch[1].(astList)...), nil
}

// ATOM -> NUCLEUS ATOMMOD
func rewriteATOM(n *parsetree.Node, ch []interface{}) (interface{}, error) {
	nucleus := ch[0].(*AST)
	switch cctk.TokType(ch[1].(modifier)) {
	case KleeneToken:
		return Star(nucleus), nil
	case PlusToken:
		return Seq(nucleus, Star(nucleus.Copy())), nil
	}
	return nucleus, nil
}

// ATOMMOD -> kleene | plus | lambda
func rewriteATOMMOD(n *parsetree.Node, ch []interface{}) (interface{}, error) {
	if tok, ok := ch[0].(cctk.Token); ok {
		return modifier(tok.TokType()), nil
	}
	return modifier(""), nil
}

// NUCLEUS -> open ALT close | char CHARRNG
func rewriteNUCLEUS(n *parsetree.Node, ch []interface{}) (interface{}, error) {
	if n.Alt == 0 {
		return ch[1], nil
	}
	from := ch[0].(cctk.Token).Value().(rune)
	to, ok := ch[1].(rangeEnd)
	if !ok {
		return Lit(from), nil
	}
	if from > rune(to) {
		return nil, fmt.Errorf("%w: %c-%c", ErrInvalidRange, from, rune(to))
	}
	var chars astList
	for c := from; c <= rune(to); c++ {
		chars = append(chars, Lit(c))
	}
	return Alt(chars...).Normalize(), nil
}

// CHARRNG -> dash char | lambda
func rewriteCHARRNG(n *parsetree.Node, ch []interface{}) (interface{}, error) {
	if n.Alt == 1 {
		return nil, nil
	}
	return rangeEnd(ch[1].(cctk.Token).Value().(rune)), nil
}

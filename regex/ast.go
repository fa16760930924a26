package regex

import (
	"fmt"
	"strings"
)

// Op is the kind of an AST node.
type Op int8

// Kinds of AST nodes. Literal and Lambda nodes are leaves, KleeneStar nodes
// have exactly one child.
const (
	Literal Op = iota
	Lambda
	Sequence
	Alternation
	KleeneStar
)

func (op Op) String() string {
	switch op {
	case Literal:
		return "lit"
	case Lambda:
		return "lambda"
	case Sequence:
		return "seq"
	case Alternation:
		return "alt"
	case KleeneStar:
		return "star"
	}
	return "?"
}

// AST is a node of the abstract syntax tree of a regular expression.
type AST struct {
	Op       Op
	Char     rune // character of Literal nodes
	Children []*AST
}

// Lit creates a literal node.
func Lit(c rune) *AST {
	return &AST{Op: Literal, Char: c}
}

// Empty creates a node matching the empty string.
func Empty() *AST {
	return &AST{Op: Lambda}
}

// Seq creates a sequence node.
func Seq(children ...*AST) *AST {
	return &AST{Op: Sequence, Children: children}
}

// Alt creates an alternation node.
func Alt(children ...*AST) *AST {
	return &AST{Op: Alternation, Children: children}
}

// Star creates a Kleene star node.
func Star(child *AST) *AST {
	return &AST{Op: KleeneStar, Children: []*AST{child}}
}

// Copy returns a deep copy of a node.
func (a *AST) Copy() *AST {
	if a == nil {
		return nil
	}
	c := &AST{Op: a.Op, Char: a.Char}
	if a.Children != nil {
		c.Children = make([]*AST, len(a.Children))
		for i, ch := range a.Children {
			c.Children[i] = ch.Copy()
		}
	}
	return c
}

// Equal compares two trees structurally.
func (a *AST) Equal(b *AST) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Op != b.Op || a.Char != b.Char || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !a.Children[i].Equal(b.Children[i]) {
			return false
		}
	}
	return true
}

// Normalize returns a normalized copy of a tree: nested sequences and
// alternations are flattened into their parent, sequences and alternations
// with a single child are replaced by the child, and an empty sequence
// becomes Lambda. Normalizing a normalized tree does not change it.
func (a *AST) Normalize() *AST {
	if a == nil {
		return nil
	}
	switch a.Op {
	case Literal, Lambda:
		return &AST{Op: a.Op, Char: a.Char}
	case KleeneStar:
		return Star(a.Children[0].Normalize())
	}
	var children []*AST
	for _, ch := range a.Children {
		ch = ch.Normalize()
		if ch.Op == a.Op {
			children = append(children, ch.Children...)
		} else {
			children = append(children, ch)
		}
	}
	switch len(children) {
	case 0:
		return Empty()
	case 1:
		return children[0]
	}
	return &AST{Op: a.Op, Children: children}
}

var charNames = map[rune]string{
	' ':  `\s`,
	'\t': `\t`,
	'\n': `\n`,
}

// CharString returns a printable representation of a character, showing
// whitespace as escape sequence.
func CharString(c rune) string {
	if s, ok := charNames[c]; ok {
		return s
	}
	return string(c)
}

// String returns a tree in Lisp-like notation, e.g. "(seq 'a' (star 'b'))".
func (a *AST) String() string {
	if a == nil {
		return "<nil>"
	}
	switch a.Op {
	case Literal:
		return fmt.Sprintf("'%s'", CharString(a.Char))
	case Lambda:
		return "lambda"
	}
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(a.Op.String())
	for _, ch := range a.Children {
		b.WriteString(" ")
		b.WriteString(ch.String())
	}
	b.WriteString(")")
	return b.String()
}

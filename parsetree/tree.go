package parsetree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cctk"
)

// Kind is the kind of a parse tree node.
type Kind int8

// Kinds of nodes.
const (
	NonTerminal Kind = iota
	Terminal
	Lambda
	Root
)

// Symbol names of special nodes.
const (
	LambdaSymbol = "lambda"
	RootSymbol   = "root"
)

// Node is a node of a parse tree.
type Node struct {
	Kind     Kind
	Symbol   string     // name of the grammar symbol
	Alt      int        // alternative a non-terminal has been expanded with
	Token    cctk.Token // input token of terminal leaves
	parent   *Node
	children []*Node
}

// NewRoot creates the root node for a new tree.
func NewRoot() *Node {
	return &Node{Kind: Root, Symbol: RootSymbol}
}

// NewNonTerminal creates an inner node for a non-terminal, expanded by an alternative.
func NewNonTerminal(symbol string, alt int) *Node {
	return &Node{Kind: NonTerminal, Symbol: symbol, Alt: alt}
}

// NewTerminal creates a leaf for a consumed input token.
func NewTerminal(tok cctk.Token) *Node {
	return &Node{Kind: Terminal, Symbol: string(tok.TokType()), Token: tok}
}

// NewLambda creates a leaf for an empty production.
func NewLambda() *Node {
	return &Node{Kind: Lambda, Symbol: LambdaSymbol}
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children of a node, in order.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns child no. i, or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// IsLeaf is true for terminal and lambda nodes.
func (n *Node) IsLeaf() bool {
	return n.Kind == Terminal || n.Kind == Lambda
}

// Add appends a child to n.
func (n *Node) Add(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return n
}

// Span returns the input span covered by the terminals below n.
func (n *Node) Span() cctk.Span {
	var span cctk.Span
	for _, leaf := range n.Leaves() {
		span = span.Extend(leaf.Token.Span())
	}
	return span
}

// Leaves returns the terminal leaves below n in pre-order, i.e. the input
// consumed for n. Lambda leaves are not included.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	stack := []*Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == Terminal {
			leaves = append(leaves, top)
		}
		for i := len(top.children) - 1; i >= 0; i-- {
			stack = append(stack, top.children[i])
		}
	}
	return leaves
}

func (n *Node) String() string {
	switch n.Kind {
	case Terminal:
		if n.Token != nil && n.Token.Lexeme() != "" {
			return fmt.Sprintf("%s(%s)", n.Symbol, n.Token.Lexeme())
		}
	case NonTerminal:
		return fmt.Sprintf("%s/%d", n.Symbol, n.Alt)
	}
	return n.Symbol
}

// --- Cursor ----------------------------------------------------------------

// ErrAtRoot is returned when a cursor is moved above the root.
var ErrAtRoot = errors.New("cursor is at root of tree")

// Cursor is a position within a tree under construction.
type Cursor struct {
	root, current *Node
}

// NewCursor creates a cursor positioned at root.
func NewCursor(root *Node) *Cursor {
	return &Cursor{root: root, current: root}
}

// Current returns the node the cursor is positioned at.
func (c *Cursor) Current() *Node {
	return c.current
}

// Root returns the root of the cursor's tree.
func (c *Cursor) Root() *Node {
	return c.root
}

// Descend attaches child to the current node and moves the cursor to it.
func (c *Cursor) Descend(child *Node) *Node {
	c.current.Add(child)
	c.current = child
	return child
}

// Attach attaches a child to the current node without moving the cursor.
func (c *Cursor) Attach(child *Node) *Node {
	c.current.Add(child)
	return child
}

// Up moves the cursor to the parent of the current node.
func (c *Cursor) Up() error {
	if c.current == c.root || c.current.parent == nil {
		return ErrAtRoot
	}
	c.current = c.current.parent
	return nil
}

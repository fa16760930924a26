package parsetree

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cctk/automaton"
	"github.com/pterm/pterm"
)

// LeveledList flattens a tree into a pterm leveled list, in pre-order.
func LeveledList(n *Node) pterm.LeveledList {
	var ll pterm.LeveledList
	type entry struct {
		node  *Node
		level int
	}
	stack := []entry{{n, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ll = append(ll, pterm.LeveledListItem{Level: top.level, Text: top.node.String()})
		for i := len(top.node.children) - 1; i >= 0; i-- {
			stack = append(stack, entry{top.node.children[i], top.level + 1})
		}
	}
	return ll
}

// Render writes an indented tree representation of n.
func Render(w io.Writer, n *Node) error {
	root := pterm.NewTreeFromLeveledList(LeveledList(n))
	s, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// ToGraphViz exports a tree to the Graphviz Dot format.
func ToGraphViz(w io.Writer, n *Node) error {
	var b strings.Builder
	b.WriteString(`digraph {
graph [fontname=Helvetica, fontsize=10];
node [shape=box, style=rounded, fontname=Helvetica, fontsize=10];

`)
	ids := make(map[*Node]int)
	stack := []*Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := len(ids)
		ids[top] = id
		shape := ""
		if top.IsLeaf() {
			shape = ", shape=plaintext"
		}
		fmt.Fprintf(&b, "n%04d [label=\"%s\"%s]\n", id, automaton.DotEscape(top.String()), shape)
		if top.parent != nil && top != n {
			fmt.Fprintf(&b, "n%04d -> n%04d\n", ids[top.parent], id)
		}
		for i := len(top.children) - 1; i >= 0; i-- {
			stack = append(stack, top.children[i])
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

package parsetree

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Listener receives callbacks during a post-order walk of a parse tree.
// Values returned for the children of a node are handed to the node's Reduce
// call, in order of the children.
type Listener interface {
	Terminal(n *Node) (interface{}, error)                       // terminal or lambda leaf
	Reduce(n *Node, children []interface{}) (interface{}, error) // inner node
}

type frame struct {
	node   *Node
	values []interface{}
}

// Walk traverses the tree below n in post-order and returns the value computed
// for n. The walk stops at the first error returned by the listener.
// Walk uses an explicit stack, so deep trees are no problem.
func Walk(n *Node, l Listener) (interface{}, error) {
	var result interface{}
	stack := arraystack.New()
	stack.Push(&frame{node: n})
	deliver := func(v interface{}) {
		stack.Pop()
		if top, ok := stack.Peek(); ok {
			f := top.(*frame)
			f.values = append(f.values, v)
		} else {
			result = v
		}
	}
	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)
		if f.node.IsLeaf() {
			v, err := l.Terminal(f.node)
			if err != nil {
				return nil, err
			}
			deliver(v)
		} else if len(f.values) < len(f.node.children) {
			stack.Push(&frame{node: f.node.children[len(f.values)]})
		} else {
			tracer().Debugf("reduce %v with %d values", f.node, len(f.values))
			v, err := l.Reduce(f.node, f.values)
			if err != nil {
				return nil, err
			}
			deliver(v)
		}
	}
	return result, nil
}

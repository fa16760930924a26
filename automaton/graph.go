package automaton

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/hashmap"
)

// ErrEdgeConflict is returned when an edge would re-label an existing
// transition to a different target.
var ErrEdgeConflict = errors.New("edge conflict")

// State is a node of an automaton. States are identified by a canonical key.
// Payload holds the client's state content, e.g. an LR item set.
type State struct {
	ID      int
	Key     string
	Payload interface{}
	Accept  bool
}

func (s *State) String() string {
	return fmt.Sprintf("s%d", s.ID)
}

// Edge is a labeled transition between two states.
type Edge struct {
	From, To int
	Label    string
}

// Graph is a directed graph of states with labeled edges. No two states
// share a key, and no state has two outgoing edges with the same label.
type Graph struct {
	states *arraylist.List // of *State, index == ID
	index  *hashmap.Map    // key → *State
	edges  *arraylist.List // of Edge, in insertion order
	out    []map[string]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		states: arraylist.New(),
		index:  hashmap.New(),
		edges:  arraylist.New(),
	}
}

// KeyOf computes a canonical key for a value. Structurally equal values
// produce equal keys. Only exported struct fields are considered.
func KeyOf(v interface{}) (string, error) {
	return structhash.Hash(v, 1)
}

// Add registers a state with a given key and payload. If a state with an equal
// key is already present, this state is returned and the payload is discarded.
// The second return value is true if the state is new.
func (g *Graph) Add(key string, payload interface{}) (*State, bool) {
	if s := g.Find(key); s != nil {
		return s, false
	}
	s := &State{
		ID:      g.states.Size(),
		Key:     key,
		Payload: payload,
	}
	g.states.Add(s)
	g.index.Put(key, s)
	g.out = append(g.out, make(map[string]int))
	tracer().Debugf("new state %s", s)
	return s, true
}

// Find returns the state registered with key, or nil.
func (g *Graph) Find(key string) *State {
	if s, found := g.index.Get(key); found {
		return s.(*State)
	}
	return nil
}

// State returns the state with a given ID, or nil.
func (g *Graph) State(id int) *State {
	if s, ok := g.states.Get(id); ok {
		return s.(*State)
	}
	return nil
}

// Size returns the number of states.
func (g *Graph) Size() int {
	return g.states.Size()
}

// States returns all states in order of their IDs.
func (g *Graph) States() []*State {
	r := make([]*State, g.states.Size())
	it := g.states.Iterator()
	for it.Next() {
		r[it.Index()] = it.Value().(*State)
	}
	return r
}

// Connect adds an edge from → to with a label. Connecting the same states again
// is a no-op. If from already has an edge with label to a different state,
// Connect returns an error wrapping ErrEdgeConflict.
func (g *Graph) Connect(from, to *State, label string) error {
	if old, exists := g.out[from.ID][label]; exists {
		if old == to.ID {
			return nil
		}
		return fmt.Errorf("%w: %s already has transition on %q to s%d, cannot connect to %s",
			ErrEdgeConflict, from, label, old, to)
	}
	g.out[from.ID][label] = to.ID
	g.edges.Add(Edge{From: from.ID, To: to.ID, Label: label})
	return nil
}

// Target returns the state reached from s by an edge with label.
func (g *Graph) Target(s *State, label string) (*State, bool) {
	if id, ok := g.out[s.ID][label]; ok {
		return g.State(id), true
	}
	return nil, false
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	r := make([]Edge, 0, g.edges.Size())
	it := g.edges.Iterator()
	for it.Next() {
		r = append(r, it.Value().(Edge))
	}
	return r
}

// OutEdges returns the outgoing edges of s in insertion order.
func (g *Graph) OutEdges(s *State) []Edge {
	r := make([]Edge, 0, len(g.out[s.ID]))
	it := g.edges.Iterator()
	for it.Next() {
		if e := it.Value().(Edge); e.From == s.ID {
			r = append(r, e)
		}
	}
	return r
}

// Children returns the distinct targets of outgoing edges of s.
func (g *Graph) Children(s *State) []*State {
	return g.collect(func(e Edge) (int, bool) { return e.To, e.From == s.ID })
}

// Parents returns the distinct sources of incoming edges of s.
func (g *Graph) Parents(s *State) []*State {
	return g.collect(func(e Edge) (int, bool) { return e.From, e.To == s.ID })
}

func (g *Graph) collect(sel func(Edge) (int, bool)) []*State {
	seen := make(map[int]bool)
	var r []*State
	it := g.edges.Iterator()
	for it.Next() {
		if id, ok := sel(it.Value().(Edge)); ok && !seen[id] {
			seen[id] = true
			r = append(r, g.State(id))
		}
	}
	return r
}

// Table returns the transitions as a table, indexed by state ID.
func (g *Graph) Table() []map[string]int {
	t := make([]map[string]int, len(g.out))
	for i, m := range g.out {
		t[i] = make(map[string]int, len(m))
		for l, to := range m {
			t[i][l] = to
		}
	}
	return t
}

// ToGraphViz exports the graph to the Graphviz Dot format. Function label
// provides the node labels; if it is nil, state IDs are used.
func (g *Graph) ToGraphViz(w io.Writer, label func(*State) string) error {
	var b strings.Builder
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range g.States() {
		l := fmt.Sprintf("%03d", s.ID)
		if label != nil {
			l = fmt.Sprintf("{%03d | %s}", s.ID, label(s))
		}
		fmt.Fprintf(&b, "s%03d [fillcolor=%s label=\"%s\"]\n", s.ID, nodecolor(s), l)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To, dotEscape(e.Label))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor(s *State) string {
	if s.Accept {
		return "lightgray"
	}
	return "white"
}

var labelEscaper = strings.NewReplacer(`"`, `\"`, `\`, `\\`, "\n", `\n`)

var recordEscaper = strings.NewReplacer(`"`, `\"`, `\`, `\\`, "\n", `\n`,
	"|", `\|`, "{", `\{`, "}", `\}`, "<", `\<`, ">", `\>`)

func dotEscape(s string) string {
	return labelEscaper.Replace(s)
}

// DotEscape escapes a string for use in a record label of a Dot file.
func DotEscape(s string) string {
	return recordEscaper.Replace(s)
}

package lr

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// SymbolKind classifies grammar symbols. Classification is fixed when a grammar
// is built: a name is a non-terminal iff it occurs as the LHS of a rule.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	NonTerminalSymbol SymbolKind = iota
	TerminalSymbol
	LambdaSymbol
	EndMarkerSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case NonTerminalSymbol:
		return "non-terminal"
	case TerminalSymbol:
		return "terminal"
	case LambdaSymbol:
		return "lambda"
	case EndMarkerSymbol:
		return "end-marker"
	}
	return "?"
}

// Names of the reserved symbols in grammar definitions.
const (
	LambdaName    = "lambda"
	EndMarkerName = "$"
)

// Symbol is a grammar symbol. Value is a dense serial number within a grammar:
// terminals (including the end marker) are numbered first, then non-terminals.
// The lambda symbol has value -1.
type Symbol struct {
	Name  string
	Kind  SymbolKind
	Value int
}

// IsTerminal returns true for terminals and the end marker.
func (A *Symbol) IsTerminal() bool {
	return A.Kind == TerminalSymbol || A.Kind == EndMarkerSymbol
}

// IsNonTerminal returns true for non-terminals.
func (A *Symbol) IsNonTerminal() bool {
	return A.Kind == NonTerminalSymbol
}

func (A *Symbol) String() string {
	return A.Name
}

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is an ordered set of grammar symbols, ordered by symbol value.
type SymbolSet struct {
	set *treeset.Set
}

func symbolComparator(s1, s2 interface{}) int {
	return s1.(*Symbol).Value - s2.(*Symbol).Value
}

// NewSymbolSet creates a set containing syms.
func NewSymbolSet(syms ...*Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, A := range syms {
		S.set.Add(A)
	}
	return S
}

// Add inserts symbols and returns true if the set has grown.
func (S *SymbolSet) Add(syms ...*Symbol) bool {
	n := S.set.Size()
	for _, A := range syms {
		S.set.Add(A)
	}
	return S.set.Size() > n
}

// Union adds all members of T to S and returns true if S has grown.
func (S *SymbolSet) Union(T *SymbolSet) bool {
	if T == nil {
		return false
	}
	return S.Add(T.Values()...)
}

// Contains checks set membership.
func (S *SymbolSet) Contains(A *Symbol) bool {
	return S.set.Contains(A)
}

// Size returns the number of members.
func (S *SymbolSet) Size() int {
	return S.set.Size()
}

// Empty is true for the empty set.
func (S *SymbolSet) Empty() bool {
	return S.set.Empty()
}

// Values returns the members, ordered by symbol value.
func (S *SymbolSet) Values() []*Symbol {
	r := make([]*Symbol, 0, S.set.Size())
	for _, x := range S.set.Values() {
		r = append(r, x.(*Symbol))
	}
	return r
}

// Names returns the names of the members, ordered by symbol value.
func (S *SymbolSet) Names() []string {
	r := make([]string, 0, S.set.Size())
	for _, A := range S.Values() {
		r = append(r, A.Name)
	}
	return r
}

// Intersection returns a new set with members of both S and T.
func (S *SymbolSet) Intersection(T *SymbolSet) *SymbolSet {
	R := NewSymbolSet()
	for _, A := range S.Values() {
		if T.Contains(A) {
			R.Add(A)
		}
	}
	return R
}

// Equals compares two sets by their members.
func (S *SymbolSet) Equals(T *SymbolSet) bool {
	if S.Size() != T.Size() {
		return false
	}
	for _, A := range S.Values() {
		if !T.Contains(A) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	return fmt.Sprintf("{%s}", strings.Join(S.Names(), " "))
}

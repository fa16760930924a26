package lr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/cctk/automaton"
)

// Item is an LR(0) item, i.e. a rule with a marker position. The marker is
// in front of RHS symbol no. Dot, or behind the RHS if Dot == len(RHS).
type Item struct {
	rule *Rule
	dot  int
}

// StartItem returns the item for a rule with the marker at the start.
func StartItem(r *Rule) Item {
	return Item{rule: r}
}

// Rule returns the item's rule.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the marker position.
func (i Item) Dot() int {
	return i.dot
}

// PeekSymbol returns the symbol after the marker, or nil for a complete item.
func (i Item) PeekSymbol() *Symbol {
	if i.dot >= len(i.rule.rhs) {
		return nil
	}
	return i.rule.rhs[i.dot]
}

// IsComplete is true if the marker is behind the RHS.
func (i Item) IsComplete() bool {
	return i.dot >= len(i.rule.rhs)
}

// Advance moves the marker over the next symbol.
func (i Item) Advance() Item {
	if i.IsComplete() {
		return i
	}
	return Item{rule: i.rule, dot: i.dot + 1}
}

// Prefix returns the symbols in front of the marker.
func (i Item) Prefix() []*Symbol {
	return i.rule.rhs[:i.dot]
}

func (i Item) String() string {
	var b strings.Builder
	b.WriteString(i.rule.LHS.Name)
	b.WriteString(" ->")
	for k, A := range i.rule.rhs {
		if k == i.dot {
			b.WriteString(" .")
		}
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	if i.IsComplete() {
		b.WriteString(" .")
	}
	return b.String()
}

// --- Item sets -------------------------------------------------------------

// ItemSet is an immutable set of items. Items are kept in canonical order
// (by rule serial, then marker), and two item sets are equal iff they contain
// the same items.
type ItemSet struct {
	items []Item
	key   string
}

type itemSetKey struct {
	Rules []int
	Dots  []int
}

// NewItemSet creates an item set from a list of items. Duplicates are removed.
func NewItemSet(items ...Item) *ItemSet {
	S := &ItemSet{items: make([]Item, 0, len(items))}
	seen := make(map[Item]bool, len(items))
	for _, i := range items {
		if !seen[i] {
			seen[i] = true
			S.items = append(S.items, i)
		}
	}
	sort.Slice(S.items, func(a, b int) bool {
		ia, ib := S.items[a], S.items[b]
		if ia.rule.Serial != ib.rule.Serial {
			return ia.rule.Serial < ib.rule.Serial
		}
		return ia.dot < ib.dot
	})
	k := itemSetKey{Rules: make([]int, len(S.items)), Dots: make([]int, len(S.items))}
	for n, i := range S.items {
		k.Rules[n], k.Dots[n] = i.rule.Serial, i.dot
	}
	var err error
	if S.key, err = automaton.KeyOf(k); err != nil {
		tracer().Errorf("cannot hash item set: %v", err)
		S.key = fmt.Sprintf("%v", k)
	}
	return S
}

// Items returns the items in canonical order.
func (S *ItemSet) Items() []Item {
	return S.items
}

// Size returns the number of items.
func (S *ItemSet) Size() int {
	return len(S.items)
}

// Empty is true for an empty item set.
func (S *ItemSet) Empty() bool {
	return len(S.items) == 0
}

// Contains checks for an item.
func (S *ItemSet) Contains(i Item) bool {
	for _, x := range S.items {
		if x == i {
			return true
		}
	}
	return false
}

// Key returns a canonical key for the item set's content.
func (S *ItemSet) Key() string {
	return S.key
}

// Equals compares item sets by content.
func (S *ItemSet) Equals(T *ItemSet) bool {
	if len(S.items) != len(T.items) {
		return false
	}
	for k := range S.items {
		if S.items[k] != T.items[k] {
			return false
		}
	}
	return true
}

// ByLHS groups the items by the LHS of their rules.
func (S *ItemSet) ByLHS() map[*Symbol][]Item {
	m := make(map[*Symbol][]Item)
	for _, i := range S.items {
		m[i.rule.LHS] = append(m[i.rule.LHS], i)
	}
	return m
}

func (S *ItemSet) String() string {
	s := make([]string, len(S.items))
	for k, i := range S.items {
		s[k] = i.String()
	}
	return "{" + strings.Join(s, ", ") + "}"
}

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Closure computes the closure of an item set: for every item with the marker
// in front of a non-terminal B, items B → . γ are added for all rules of B,
// until no new items appear.
func (ga *GrammarAnalysis) Closure(S *ItemSet) *ItemSet {
	C := append([]Item(nil), S.items...)
	seen := make(map[Item]bool, len(C))
	for _, i := range C {
		seen[i] = true
	}
	for k := 0; k < len(C); k++ { // C grows while iterating
		B := C[k].PeekSymbol()
		if B == nil || !B.IsNonTerminal() {
			continue
		}
		for _, r := range ga.g.Alternatives(B) {
			if i := StartItem(r); !seen[i] {
				seen[i] = true
				C = append(C, i)
			}
		}
	}
	return NewItemSet(C...)
}

// Goto advances the marker over A for every item of S with A after the marker
// and returns the closure of the result. If no item of S expects A, Goto
// returns false.
func (ga *GrammarAnalysis) Goto(S *ItemSet, A *Symbol) (*ItemSet, bool) {
	if A == nil {
		return nil, false
	}
	var moved []Item
	for _, i := range S.items {
		if i.PeekSymbol() == A {
			moved = append(moved, i.Advance())
		}
	}
	if len(moved) == 0 {
		return nil, false
	}
	return ga.Closure(NewItemSet(moved...)), true
}

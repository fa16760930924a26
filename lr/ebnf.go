package lr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

// EBNF renders the grammar in the EBNF notation of package golang.org/x/exp/ebnf.
// Non-terminals are renamed to P0000, P0001, …, as EBNF requires production names
// to be identifiers; terminals become quoted tokens. The returned map translates
// production names back to symbol names.
func (g *Grammar) EBNF() (string, map[string]string) {
	names := make(map[string]string, len(g.nonterminals))
	pname := func(A *Symbol) string {
		return fmt.Sprintf("P%04d", g.ntIndex(A))
	}
	var b strings.Builder
	for _, A := range g.nonterminals {
		names[pname(A)] = A.Name
		if len(g.alts[A]) == 0 {
			continue // undefined, will be reported as missing
		}
		var alts []string
		optional := false
		for _, r := range g.alts[A] {
			if r.IsLambda() {
				optional = true
				continue
			}
			terms := make([]string, len(r.rhs))
			for k, X := range r.rhs {
				if X.IsNonTerminal() {
					terms[k] = pname(X)
				} else {
					terms[k] = strconv.Quote(X.Name)
				}
			}
			alts = append(alts, strings.Join(terms, " "))
		}
		expr := strings.Join(alts, " | ")
		if optional && expr != "" {
			expr = "[ " + expr + " ]"
		}
		fmt.Fprintf(&b, "%s = %s .\n", pname(A), expr)
	}
	return b.String(), names
}

// Verify checks that every non-terminal used in a rule has rules of its own and
// that every non-terminal is reachable from the goal symbol.
func (g *Grammar) Verify() error {
	if g.goal == nil {
		return nil
	}
	src, names := g.EBNF()
	tracer().Debugf("EBNF for %s:\n%s", g.Name, src)
	grammar, err := ebnf.Parse(g.Name, strings.NewReader(src))
	if err != nil {
		return fmt.Errorf("internal EBNF rendering of %s: %w", g.Name, err)
	}
	goal := fmt.Sprintf("P%04d", g.ntIndex(g.goal))
	if err = ebnf.Verify(grammar, goal); err != nil {
		pairs := make([]string, 0, 2*len(names))
		for p, n := range names {
			pairs = append(pairs, p, n)
		}
		msg := strings.NewReplacer(pairs...).Replace(err.Error())
		return fmt.Errorf("grammar %s: %s", g.Name, msg)
	}
	return nil
}

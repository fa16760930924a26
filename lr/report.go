package lr

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
)

// Reports are for display only; they render tables with pterm.

func renderTable(w io.Writer, title string, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n\n", title, s)
	return err
}

// ReportGrammar writes the rules of a grammar, followed by the nullable
// property, FIRST and FOLLOW set of each non-terminal and the predict sets
// of all rules.
func ReportGrammar(ga *GrammarAnalysis, w io.Writer) error {
	g := ga.g
	rules := pterm.TableData{{"#", "LHS", "RHS", "PREDICT"}}
	for _, r := range g.rules {
		rules = append(rules, []string{strconv.Itoa(r.Serial), r.LHS.Name,
			rhsString(r.rhs), ga.PredictRule(r).String()})
	}
	if err := renderTable(w, fmt.Sprintf("Grammar %s, goal %v", g.Name, g.goal), rules); err != nil {
		return err
	}
	sets := pterm.TableData{{"Non-terminal", "Lambda", "FIRST", "FOLLOW"}}
	for _, A := range g.nonterminals {
		sets = append(sets, []string{A.Name, strconv.FormatBool(ga.DerivesToLambda(A)),
			ga.First(A).String(), ga.Follow(A).String()})
	}
	if err := renderTable(w, "Symbol sets", sets); err != nil {
		return err
	}
	if ok, warning := ga.DisjointCheck(); !ok {
		for _, o := range warning.Overlaps {
			if _, err := fmt.Fprintf(w, "warning: %v\n", o); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "Grammar %s is LL(1)\n", g.Name)
	return err
}

// Render writes the LL(1) table. Cells hold alternative numbers.
func (t *LLTable) Render(w io.Writer) error {
	header := []string{""}
	for _, a := range t.g.terminals {
		header = append(header, a.Name)
	}
	data := pterm.TableData{header}
	for _, A := range t.g.nonterminals {
		row := []string{A.Name}
		entries := t.Entries(A)
		for _, a := range t.g.terminals {
			if alt, ok := entries[a.Name]; ok {
				row = append(row, strconv.Itoa(alt))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	title := fmt.Sprintf("LL(1) table for %s", t.g.Name)
	if t.warning != nil {
		title += " (not LL(1), table is unreliable)"
	}
	return renderTable(w, title, data)
}

// Render writes the SLR(1) table with one row per CFSM state.
func (t *SLRTable) Render(w io.Writer) error {
	header := []string{"state"}
	t.g.EachSymbol(func(A *Symbol) interface{} {
		header = append(header, A.Name)
		return nil
	})
	data := pterm.TableData{header}
	for id := 0; id < t.cfsm.Size(); id++ {
		row := []string{strconv.Itoa(id)}
		t.g.EachSymbol(func(A *Symbol) interface{} {
			row = append(row, t.Action(id, A).String())
			return nil
		})
		data = append(data, row)
	}
	return renderTable(w, fmt.Sprintf("SLR(1) table for %s", t.g.Name), data)
}

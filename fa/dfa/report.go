package dfa

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/cctk/automaton"
	"github.com/npillmayer/cctk/regex"
	"github.com/pterm/pterm"
)

// Report writes the transition table of a DFA, followed by its accepting states.
func (d *DFA) Report(w io.Writer) error {
	alphabet := d.Alphabet()
	header := []string{"state"}
	for _, c := range alphabet {
		header = append(header, regex.CharString(c))
	}
	data := pterm.TableData{header}
	for id := 0; id < d.Size(); id++ {
		row := []string{strconv.Itoa(id)}
		for _, c := range alphabet {
			if t, ok := d.Step(id, c); ok {
				row = append(row, strconv.Itoa(t))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	acc := make([]string, 0, d.Size())
	for _, id := range d.AcceptingStates() {
		acc = append(acc, strconv.Itoa(id))
	}
	_, err = fmt.Fprintf(w, "DFA:\n%s\nAccepting states: %s\n", table, strings.Join(acc, " "))
	return err
}

// ToGraphViz exports a DFA to the Graphviz Dot format. Nodes are labeled with
// the NFA states they stand for.
func (d *DFA) ToGraphViz(w io.Writer) error {
	return d.graph.ToGraphViz(w, func(s *automaton.State) string {
		states := s.Payload.([]int)
		names := make([]string, len(states))
		for i, ns := range states {
			names[i] = strconv.Itoa(ns)
		}
		return automaton.DotEscape("{" + strings.Join(names, ",") + "}")
	})
}

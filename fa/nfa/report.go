package nfa

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/cctk/regex"
	"github.com/pterm/pterm"
)

// Report writes the transition table of an NFA. Every row lists the targets of
// a state per character, followed by its lambda transitions.
func (nfa *NFA) Report(w io.Writer) error {
	alphabet := nfa.Alphabet()
	header := []string{"state"}
	for _, c := range alphabet {
		header = append(header, regex.CharString(c))
	}
	header = append(header, "lambda")
	data := pterm.TableData{header}
	for s := 0; s < nfa.Size(); s++ {
		row := []string{strconv.Itoa(s)}
		for _, c := range alphabet {
			row = append(row, joinStates(nfa.Transitions(s, c)))
		}
		row = append(row, joinStates(nfa.LambdaTransitions(s)))
		data = append(data, row)
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "NFA transitions:\n%s\nAccepting state: %d\n", table, nfa.Accepting())
	return err
}

func joinStates(states []int) string {
	s := make([]string, len(states))
	for i, st := range states {
		s[i] = strconv.Itoa(st)
	}
	return strings.Join(s, ",")
}

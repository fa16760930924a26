package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cctk"
	"github.com/npillmayer/cctk/fa/dfa"
	"github.com/npillmayer/cctk/fa/nfa"
	"github.com/npillmayer/cctk/regex"
)

// Definition is a named regular expression.
type Definition struct {
	Name  string
	Regex string
	Line  int // line of the definition in its source, if any
}

// ReadDefinitions reads token definitions, one per line.
func ReadDefinitions(sourceName string, r io.Reader) ([]Definition, error) {
	if r == nil {
		return nil, &cctk.ConfigurationError{Cause: cctk.ErrMissingSource, SourceName: sourceName}
	}
	var defs []Definition
	seen := make(map[string]bool)
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, cctk.ConfigError(sourceName, lineno,
				"expected '<name> <regex>', have %d fields", len(fields))
		}
		if seen[fields[0]] {
			return nil, cctk.ConfigError(sourceName, lineno, "token %s defined twice", fields[0])
		}
		seen[fields[0]] = true
		defs = append(defs, Definition{Name: fields[0], Regex: fields[1], Line: lineno})
	}
	if err := lines.Err(); err != nil {
		return nil, &cctk.ConfigurationError{Cause: err, SourceName: sourceName, Line: lineno}
	}
	tracer().Debugf("read %d token definitions from %s", len(defs), sourceName)
	return defs, nil
}

// Automaton holds the compiled automata of a token definition.
type Automaton struct {
	Definition
	AST *regex.AST
	NFA *nfa.NFA
	DFA *dfa.DFA
}

// Compile compiles the regular expression of a token definition into a DFA.
func Compile(def Definition) (*Automaton, error) {
	ast, err := regex.Compile(def.Regex)
	if err != nil {
		return nil, fmt.Errorf("token %s: %w", def.Name, err)
	}
	n := nfa.Build(ast)
	return &Automaton{
		Definition: def,
		AST:        ast,
		NFA:        n,
		DFA:        dfa.Build(n),
	}, nil
}

// CompileAll compiles a list of token definitions, in order.
func CompileAll(defs []Definition) ([]*Automaton, error) {
	automata := make([]*Automaton, 0, len(defs))
	for _, def := range defs {
		a, err := Compile(def)
		if err != nil {
			return nil, err
		}
		tracer().Infof("token %s: DFA with %d states", def.Name, a.DFA.Size())
		automata = append(automata, a)
	}
	return automata, nil
}

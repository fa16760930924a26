package regex

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/cctk/ll"
	"github.com/npillmayer/cctk/lr"
	"github.com/npillmayer/cctk/parsetree"
	"github.com/npillmayer/cctk/scanner"
)

// grammarDefinition is the LL(1) grammar for regular expressions.
const grammarDefinition = `
RE       -> ALT $
ALT      -> SEQ ALTLIST
ALTLIST  -> pipe SEQ ALTLIST
          | lambda
SEQ      -> ATOM SEQLIST
          | lambda
SEQLIST  -> ATOM SEQLIST
          | lambda
ATOM     -> NUCLEUS ATOMMOD
ATOMMOD  -> kleene
          | plus
          | lambda
NUCLEUS  -> open ALT close
          | char CHARRNG
CHARRNG  -> dash char
          | lambda
`

var regexGrammar struct {
	once  sync.Once
	table *lr.LLTable
	err   error
}

// Grammar returns the LL(1) table of the regex grammar. The grammar is read
// and analysed on first call.
func Grammar() (*lr.LLTable, error) {
	regexGrammar.once.Do(func() {
		g, err := lr.ReadGrammar("regex-grammar", strings.NewReader(grammarDefinition))
		if err != nil {
			regexGrammar.err = err
			return
		}
		table := lr.Analysis(g).LLTable()
		if w := table.Warning(); w != nil {
			regexGrammar.err = w
			return
		}
		regexGrammar.table = table
	})
	return regexGrammar.table, regexGrammar.err
}

// Parse tokenizes a regular expression and returns its parse tree.
func Parse(text string) (*parsetree.Node, error) {
	table, err := Grammar()
	if err != nil {
		return nil, err
	}
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	tree, err := ll.NewParser(table).MakeTree(scanner.NewTokenStream(tokens))
	if err != nil {
		return nil, fmt.Errorf("regex %q: %w", text, err)
	}
	return tree, nil
}

// Compile parses a regular expression and simplifies its parse tree into an AST.
func Compile(text string) (*AST, error) {
	tree, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Simplify(tree)
}

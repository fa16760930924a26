package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cctk/fa/dfa"
	"github.com/npillmayer/cctk/fa/nfa"
	"github.com/npillmayer/cctk/parsetree"
	"github.com/npillmayer/cctk/regex"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Interactively compile regular expressions",
		Long: `Start an interactive shell. Every line entered is compiled as a regular
expression and its DFA is printed. Commands are:
  :tree <regex>   print the parse tree of a regex
  :nfa <regex>    print the NFA of a regex
  :q              quit`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	})
}

func runREPL(cmd *cobra.Command, args []string) error {
	repl, err := readline.New("cctk> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to the cctk regex shell, quit with :q or <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if line == ":q" {
			break
		}
		if err := eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func eval(line string) error {
	switch {
	case strings.HasPrefix(line, ":tree "):
		tree, err := regex.Parse(strings.TrimSpace(line[6:]))
		if err != nil {
			return err
		}
		return parsetree.Render(os.Stdout, tree)
	case strings.HasPrefix(line, ":nfa "):
		ast, err := regex.Compile(strings.TrimSpace(line[5:]))
		if err != nil {
			return err
		}
		return nfa.Build(ast).Report(os.Stdout)
	}
	ast, err := regex.Compile(line)
	if err != nil {
		return err
	}
	pterm.Info.Println(ast.String())
	return dfa.Build(nfa.Build(ast)).Report(os.Stdout)
}

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/npillmayer/cctk"
	"github.com/npillmayer/cctk/lexer"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var lexFlags = struct {
	input *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "lex <definitions file path>",
		Short: "Compile token definitions into DFAs",
		Long: `Compile token definitions of the form '<name> <regex>' into DFAs and print
them. If an input file is given, it is tokenized with the definitions.`,
		Example: `  cctk lex tokens.lex --input program.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runLex,
	}
	lexFlags.input = cmd.Flags().StringP("input", "i", "", "tokenize an input file")
	rootCmd.AddCommand(cmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("cannot open token definitions: %w", err)
	}
	defer f.Close()
	defs, err := lexer.ReadDefinitions(args[0], f)
	if err != nil {
		return err
	}
	automata, err := lexer.CompileAll(defs)
	if err != nil {
		return err
	}
	if *lexFlags.input == "" {
		for _, a := range automata {
			pterm.Info.Printf("Expression %s: %s\n", a.Name, a.AST)
			if err := a.DFA.Report(os.Stdout); err != nil {
				return err
			}
			fmt.Println(strings.Repeat("#", 80))
		}
		return nil
	}
	input, err := ioutil.ReadFile(*lexFlags.input)
	if err != nil {
		return err
	}
	sc := lexer.New(automata).Scanner(string(input))
	sc.SetErrorHandler(func(e error) {
		pterm.Error.Println(e.Error())
	})
	data := pterm.TableData{{"Token", "Lexeme", "Span"}}
	for tok := sc.NextToken(); tok.TokType() != cctk.EOF; tok = sc.NextToken() {
		data = append(data, []string{string(tok.TokType()), fmt.Sprintf("%q", tok.Lexeme()),
			tok.Span().String()})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

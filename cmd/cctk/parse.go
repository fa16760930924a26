package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/cctk/ll"
	"github.com/npillmayer/cctk/lr"
	"github.com/npillmayer/cctk/lr/slr"
	"github.com/npillmayer/cctk/parsetree"
	"github.com/npillmayer/cctk/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	dot  *string
	slr  *bool
	text *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse <grammar file path> <token file path>",
		Short: "Parse a token stream and print the parse tree",
		Long: `Parse a token stream with an LL(1) parser, or with an SLR(1) parser if
--slr is set. The token file holds one token per line, given as
'<type> [value]'. With --text, the input file is tokenized like Go source
instead; token types are ident, int, float, string, comment, or the
operator character itself.`,
		Example: `  cctk parse expr.grammar input.tok --dot tree.dot`,
		Args:    cobra.ExactArgs(2),
		RunE:    runParse,
	}
	parseFlags.dot = cmd.Flags().String("dot", "", "write the parse tree to a GraphViz file")
	parseFlags.slr = cmd.Flags().Bool("slr", false, "use the SLR(1) parser")
	parseFlags.text = cmd.Flags().Bool("text", false, "tokenize input as Go-like source text")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	ga, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	f, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("cannot open token stream: %w", err)
	}
	defer f.Close()
	var tokens scanner.Tokenizer
	if *parseFlags.text {
		tokens = scanner.GoTokenizer(args[1], f, scanner.UnifyStrings(true))
	} else if tokens, err = scanner.ReadTokenStream(args[1], f); err != nil {
		return err
	}
	var tree *parsetree.Node
	if *parseFlags.slr {
		table, err := lr.NewTableGenerator(ga).SLRTable()
		if err != nil {
			return err
		}
		tree, err = slr.NewParser(table).MakeTree(tokens)
		if err != nil {
			return err
		}
	} else {
		table := ga.LLTable()
		if w := table.Warning(); w != nil {
			pterm.Warning.Println(w.Error())
		}
		if tree, err = ll.NewParser(table).MakeTree(tokens); err != nil {
			return err
		}
	}
	pterm.Success.Println("Input accepted")
	if err := parsetree.Render(os.Stdout, tree); err != nil {
		return err
	}
	if *parseFlags.dot != "" {
		return writeDot(*parseFlags.dot, func(f *os.File) error {
			return parsetree.ToGraphViz(f, tree)
		})
	}
	return nil
}

package main

import (
	"os"

	"github.com/npillmayer/cctk/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var slrFlags = struct {
	dot *string
}{}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:     "grammar <grammar file path>",
		Short:   "Report symbols, rules and FIRST/FOLLOW/PREDICT sets of a grammar",
		Example: `  cctk grammar expr.grammar`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGrammar,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:     "ll <grammar file path>",
		Short:   "Print the LL(1) table of a grammar",
		Example: `  cctk ll expr.grammar`,
		Args:    cobra.ExactArgs(1),
		RunE:    runLL,
	})
	cmd := &cobra.Command{
		Use:     "slr <grammar file path>",
		Short:   "Print the SLR(1) table of a grammar",
		Example: `  cctk slr expr.grammar --dot cfsm.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runSLR,
	}
	slrFlags.dot = cmd.Flags().String("dot", "", "write the CFSM to a GraphViz file")
	rootCmd.AddCommand(cmd)
}

func runGrammar(cmd *cobra.Command, args []string) error {
	ga, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	ga.Grammar().Dump()
	if err := lr.ReportGrammar(ga, os.Stdout); err != nil {
		return err
	}
	if err := ga.Grammar().Verify(); err != nil {
		pterm.Warning.Println(err.Error())
	}
	if ok, warning := ga.DisjointCheck(); ok {
		pterm.Success.Println("Predict sets are disjoint, grammar is LL(1)")
	} else {
		pterm.Warning.Println(warning.Error())
	}
	return nil
}

func runLL(cmd *cobra.Command, args []string) error {
	ga, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	table := ga.LLTable()
	if w := table.Warning(); w != nil {
		pterm.Warning.Println(w.Error())
	}
	return table.Render(os.Stdout)
}

func runSLR(cmd *cobra.Command, args []string) error {
	ga, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	table, err := lr.NewTableGenerator(ga).SLRTable()
	if err != nil {
		return err
	}
	if err := table.Render(os.Stdout); err != nil {
		return err
	}
	if *slrFlags.dot != "" {
		return writeDot(*slrFlags.dot, func(f *os.File) error {
			return table.CFSM().ToGraphViz(f)
		})
	}
	return nil
}

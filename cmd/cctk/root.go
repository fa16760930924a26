package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/cctk/lr"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace *string
}{}

var rootCmd = &cobra.Command{
	Use:   "cctk",
	Short: "Generate parser tables and finite automata",
	Long: `cctk provides two automata generators:
- LL(1) and SLR(1) parser tables for context-free grammars.
- DFAs for regular expressions, via Thompson NFAs and subset construction.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// traceKeys are the tracing keys of all packages of the toolkit.
var traceKeys = []string{
	"cctk.cli", "cctk.lr", "cctk.ll", "cctk.scanner", "cctk.automaton",
	"cctk.parsetree", "cctk.regex", "cctk.fa", "cctk.lexer",
}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", *rootFlags.trace)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadGrammar reads a grammar file and analyses the grammar.
func loadGrammar(path string) (*lr.GrammarAnalysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar: %w", err)
	}
	defer f.Close()
	g, err := lr.ReadGrammar(path, f)
	if err != nil {
		return nil, err
	}
	return lr.Analysis(g), nil
}

// writeDot creates a file and hands it to a GraphViz exporter.
func writeDot(path string, export func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	pterm.Info.Printf("GraphViz output written to %s\n", path)
	return nil
}

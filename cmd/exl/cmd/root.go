package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "exl",
	Short: "exl reads a program from stdin, evaluates it, and prints its result",
	Long: `exl is the reference CLI for the exl expression language.

It reads the entirety of stdin, either as exl source text or — with
--ast — as a pre-parsed JSON-shaped AST document, evaluates it, and
prints the display form of the final value to stdout.

Examples:
  echo '{ let x 1; add(x, 2) }' | exl
  echo '{"Application":[{"Identifier":"add"},1,2]}' | exl --ast
  echo 'def f lambda() { i }' | exl --dynamic-scope`,
	RunE:          runStdin,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostics with extra detail")
}

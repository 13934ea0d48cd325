package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/exlang/exl/internal/ast"
	"github.com/exlang/exl/internal/interp"
	"github.com/exlang/exl/internal/parser"
	"github.com/spf13/cobra"
)

var (
	astInput     bool
	dynamicScope bool
	dumpAST      bool
)

func init() {
	rootCmd.Flags().BoolVar(&astInput, "ast", false, "treat stdin as a pre-parsed JSON-shaped AST instead of source text")
	rootCmd.Flags().BoolVar(&dynamicScope, "dynamic-scope", false, "apply user functions under dynamic scope instead of lexical scope")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before evaluating")
}

func runStdin(_ *cobra.Command, _ []string) error {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	input := string(raw)
	if strings.TrimSpace(input) == "" {
		return nil
	}

	var exprJSON string
	if astInput {
		exprJSON = input
	} else {
		parsed, diag := parser.Parse("<stdin>", input)
		if diag != nil {
			fmt.Fprint(os.Stderr, diag.Format(true))
			return fmt.Errorf("parsing failed")
		}
		exprJSON = parsed
	}

	expr, err := ast.Decode(exprJSON)
	if err != nil {
		return fmt.Errorf("failed to decode AST: %w", err)
	}
	if dumpAST {
		fmt.Fprintln(os.Stderr, expr.String())
	}

	it := interp.New(os.Stdout)
	it.Global.LexicalScope = !dynamicScope

	value, evalErr := interp.Eval(expr, it)
	if evalErr != nil {
		if verbose {
			return fmt.Errorf("%s (%s)", evalErr.Message, evalErr.Kind)
		}
		return fmt.Errorf("%s", evalErr.Error())
	}

	fmt.Println(value.String())
	return nil
}

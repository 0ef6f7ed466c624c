package cmd

import (
	"fmt"

	"github.com/go-expr/expr/compile"
	"github.com/go-expr/expr/compilers"
	"github.com/go-expr/expr/dialect"
	"github.com/go-expr/expr/parser"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile an expression with the built-in Identity compiler",
	Long: `Compile an expression with compilers.Identity and print the
resulting tagged-record tree. exprctl never evaluates expressions; this
shows what a real Compiler implementation would be handed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "compile inline text instead of reading from file")
}

func runCompile(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	elements, err := parser.Parse(input, dialect.Default())
	if err != nil {
		exitWithError("%v", err)
	}

	result, err := (&compile.Driver{}).Run(elements, compilers.Identity{})
	if err != nil {
		exitWithError("%v", err)
	}

	fmt.Printf("%#v\n", result)
	return nil
}

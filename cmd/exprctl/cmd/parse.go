package cmd

import (
	"fmt"

	"github.com/go-expr/expr/dialect"
	"github.com/go-expr/expr/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an expression and print its postfix element stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline text instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	elements, err := parser.Parse(input, dialect.Default())
	if err != nil {
		exitWithError("%v", err)
	}

	for _, el := range elements {
		switch el.Type {
		case parser.FUNCTION, parser.OPERATOR:
			fmt.Printf("%s %v argc=%d\n", el.Type, el.Value, el.Argc)
		default:
			fmt.Printf("%s %v\n", el.Type, el.Value)
		}
	}
	return nil
}

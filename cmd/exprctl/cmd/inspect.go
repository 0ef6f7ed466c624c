package cmd

import (
	"fmt"
	"sort"

	"github.com/go-expr/expr/expr"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "List the variables and functions an expression references",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "inspect inline text instead of reading from file")
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	vars, funcs, err := expr.InspectVariables(input)
	if err != nil {
		exitWithError("%v", err)
	}

	fmt.Println("variables:")
	for _, name := range sortedKeys(vars) {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("functions:")
	for _, name := range sortedKeys(funcs) {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

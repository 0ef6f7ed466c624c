package cmd

import (
	"fmt"
	"os"

	"github.com/go-expr/expr/dialect"
	"github.com/go-expr/expr/lexer"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	showPos  bool
	showType bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize an expression and print the resulting tokens",
	Long: `Tokenize an expression under the default dialect and print the
resulting tokens, one per line.

Examples:
  exprctl tokenize -e "1 + 2 * x"
  exprctl tokenize --show-type --show-pos expr.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline text instead of reading from file")
	tokenizeCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	tokenizeCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func readInput(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e/--eval for inline text")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(input, dialect.Default())
	if err != nil {
		exitWithError("%v", err)
	}

	for _, tok := range tokens {
		printToken(tok)
	}
	return nil
}

func printToken(tok lexer.Token) {
	var line string
	if showType {
		line = fmt.Sprintf("[%-10s]", tok.Type)
	}
	line += fmt.Sprintf(" %v", tok.Literal())
	if showPos {
		line += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(line)
}

// Command exprctl is a debugging and exploration front-end for the expr
// library: tokenize, parse, compile and inspect subcommands over arithmetic
// expressions.
package main

import (
	"os"

	"github.com/go-expr/expr/cmd/exprctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package expr is the public facade over dialect, lexer, parser, compile
// and compilers: Tokenize/Parse convenience wrappers, dialect registry
// wrappers, a generic Compile helper and InspectVariables.
package expr

import (
	"fmt"

	"github.com/go-expr/expr/compile"
	"github.com/go-expr/expr/compilers"
	"github.com/go-expr/expr/dialect"
	"github.com/go-expr/expr/lexer"
	"github.com/go-expr/expr/parser"
)

// Tokenize scans text under d (dialect.Default() if d is nil) into a Token
// stream.
func Tokenize(text string, d *dialect.Dialect) ([]lexer.Token, error) {
	if d == nil {
		d = dialect.Default()
	}
	return lexer.Tokenize(text, d)
}

// Parse tokenizes and parses textOrTokens (a string or an existing
// []lexer.Token) under d (dialect.Default() if d is nil) into a postfix
// Element stream.
func Parse(textOrTokens any, d *dialect.Dialect) ([]parser.Element, error) {
	if d == nil {
		d = dialect.Default()
	}
	return parser.Parse(textOrTokens, d)
}

// RegisterDialect adds d to the process-wide default registry under name.
func RegisterDialect(name string, d *dialect.Dialect) error {
	return dialect.DefaultRegistry.Register(name, d)
}

// GetDialect looks up a dialect previously registered with RegisterDialect.
func GetDialect(name string) (*dialect.Dialect, error) {
	return dialect.DefaultRegistry.Get(name)
}

// UnregisterDialect removes name from the process-wide default registry.
func UnregisterDialect(name string) {
	dialect.DefaultRegistry.Unregister(name)
}

// Compile parses text under ctx (a *dialect.Dialect, or nil for
// dialect.Default()) and drives c over the result, asserting Finalize's
// return value to T. ctx is typed any rather than *dialect.Dialect because
// callers only ever pass a dialect or nil; the wider signature keeps this
// helper from growing a second overload if a future caller needs to pass
// through something else alongside the dialect.
func Compile[T any](c compile.Compiler, text string, ctx any) (T, error) {
	var zero T

	d := dialect.Default()
	if ctx != nil {
		dd, ok := ctx.(*dialect.Dialect)
		if !ok {
			return zero, fmt.Errorf("expr: ctx must be a *dialect.Dialect or nil, got %T", ctx)
		}
		d = dd
	}

	elements, err := parser.Parse(text, d)
	if err != nil {
		return zero, err
	}

	result, err := (&compile.Driver{}).Run(elements, c)
	if err != nil {
		return zero, err
	}

	v, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("expr: Finalize returned %T, want %T", result, zero)
	}
	return v, nil
}

// InspectVariables parses text under dialect.Default() and returns the set
// of variable and function names it references, without evaluating it.
func InspectVariables(text string) (vars, funcs map[string]struct{}, err error) {
	elements, err := parser.Parse(text, dialect.Default())
	if err != nil {
		return nil, nil, err
	}

	insp := compilers.NewInspector()
	if _, err := (&compile.Driver{}).Run(elements, insp); err != nil {
		return nil, nil, err
	}
	return insp.Variables, insp.Functions, nil
}

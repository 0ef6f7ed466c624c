package compilers

import "github.com/go-expr/expr/compile"

// Inspector collects every variable and function name an expression
// references, without evaluating it. Construct with NewInspector.
type Inspector struct {
	BaseCompiler
	Variables map[string]struct{}
	Functions map[string]struct{}
}

// NewInspector returns a ready-to-use Inspector with both maps allocated.
func NewInspector() *Inspector {
	return &Inspector{
		Variables: make(map[string]struct{}),
		Functions: make(map[string]struct{}),
	}
}

func (i *Inspector) CompileVariable(name string) (any, error) {
	i.Variables[name] = struct{}{}
	return name, nil
}

func (i *Inspector) CompileFunction(name string, args []any) (any, error) {
	i.Functions[name] = struct{}{}
	return name, nil
}

func (i *Inspector) CompileUnary(op string, operand any) (any, error) {
	return operand, nil
}

func (i *Inspector) CompileBinary(op string, left, right any) (any, error) {
	return nil, nil
}

var _ compile.Compiler = (*Inspector)(nil)

package compilers

import "github.com/go-expr/expr/compile"

// Literal, Variable, Unary, Binary and Call are the tagged records Identity
// reconstructs an expression into.
type Literal struct{ Value any }

type Variable struct{ Name string }

type Unary struct {
	Op      string
	Operand any
}

type Binary struct {
	Op          string
	Left, Right any
}

type Call struct {
	Name string
	Args []any
}

// Identity compiles an expression back into a tree of tagged records
// instead of evaluating it. Useful for pretty-printing, or as a starting
// point for a caller's own transformation pass over the parsed structure.
type Identity struct {
	BaseCompiler
}

func (Identity) CompileLiteral(value any) (any, error) {
	return Literal{Value: value}, nil
}

func (Identity) CompileVariable(name string) (any, error) {
	return Variable{Name: name}, nil
}

func (Identity) CompileUnary(op string, operand any) (any, error) {
	return Unary{Op: op, Operand: operand}, nil
}

func (Identity) CompileBinary(op string, left, right any) (any, error) {
	return Binary{Op: op, Left: left, Right: right}, nil
}

func (Identity) CompileFunction(name string, args []any) (any, error) {
	return Call{Name: name, Args: args}, nil
}

var _ compile.Compiler = Identity{}

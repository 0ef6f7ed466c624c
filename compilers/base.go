// Package compilers provides ready-to-use compile.Compiler implementations:
// BaseCompiler (embeddable no-op defaults), Identity (tree reconstruction)
// and Inspector (identifier collection).
package compilers

import "github.com/go-expr/expr/compile"

// BaseCompiler implements compile.Compiler with no-op defaults. Embed it in
// your own type and override only the methods your use case needs.
type BaseCompiler struct{}

func (BaseCompiler) CompileLiteral(value any) (any, error) { return value, nil }

func (BaseCompiler) CompileVariable(name string) (any, error) { return nil, nil }

func (BaseCompiler) CompileUnary(op string, operand any) (any, error) { return nil, nil }

func (BaseCompiler) CompileBinary(op string, left, right any) (any, error) { return nil, nil }

func (BaseCompiler) CompileFunction(name string, args []any) (any, error) { return nil, nil }

func (BaseCompiler) Finalize(result any) (any, error) { return result, nil }

var _ compile.Compiler = BaseCompiler{}

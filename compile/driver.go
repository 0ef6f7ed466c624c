package compile

import (
	"fmt"

	"github.com/go-expr/expr/parser"
)

// Driver walks a postfix parser.Element stream against a value stack. The
// zero value is ready to use.
type Driver struct{}

// Run drives c over elements and returns whatever c.Finalize returns, or
// the first error encountered (either returned by c itself, passed through
// unchanged, or an *InternalError if elements is malformed).
func (d *Driver) Run(elements []parser.Element, c Compiler) (any, error) {
	var stack []any

	for _, el := range elements {
		var (
			value any
			err   error
		)

		switch el.Type {
		case parser.LITERAL:
			value, err = c.CompileLiteral(el.Value)

		case parser.VARIABLE:
			value, err = c.CompileVariable(el.Value.(string))

		case parser.OPERATOR:
			name := el.Value.(string)
			switch el.Argc {
			case 1:
				if len(stack) < 1 {
					return nil, &InternalError{Message: fmt.Sprintf("unary operator %q has no operand on the stack", name)}
				}
				operand := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				value, err = c.CompileUnary(name, operand)

			case 2:
				if len(stack) < 2 {
					return nil, &InternalError{Message: fmt.Sprintf("binary operator %q has fewer than 2 operands on the stack", name)}
				}
				right := stack[len(stack)-1]
				left := stack[len(stack)-2]
				stack = stack[:len(stack)-2]
				value, err = c.CompileBinary(name, left, right)

			default:
				return nil, &InternalError{Message: fmt.Sprintf("operator %q has invalid Argc %d", name, el.Argc)}
			}

		case parser.FUNCTION:
			name := el.Value.(string)
			if len(stack) < el.Argc {
				return nil, &InternalError{Message: fmt.Sprintf("function %q expects %d arguments, only %d on the stack", name, el.Argc, len(stack))}
			}
			args := append([]any(nil), stack[len(stack)-el.Argc:]...)
			stack = stack[:len(stack)-el.Argc]
			value, err = c.CompileFunction(name, args)

		default:
			return nil, &InternalError{Message: fmt.Sprintf("unexpected element type %s in postfix stream", el.Type)}
		}

		if err != nil {
			return nil, err
		}
		stack = append(stack, value)
	}

	if len(stack) != 1 {
		return nil, &InternalError{Message: fmt.Sprintf("postfix stream left %d values on the stack, want 1", len(stack))}
	}

	return c.Finalize(stack[0])
}

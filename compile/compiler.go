// Package compile walks a postfix parser.Element stream against a value
// stack, calling into a caller-supplied Compiler. The driver never
// evaluates an expression itself: every literal, variable, operator and
// function call is handed to the Compiler, and whatever opaque value it
// returns becomes an operand for the elements above it.
package compile

// Compiler is implemented by callers to give meaning to a postfix element
// stream. Each method receives already-compiled operands (the values
// previous calls returned) and returns a new opaque value, or an error to
// abort the walk. Embed compilers.BaseCompiler to implement only a subset.
type Compiler interface {
	// CompileLiteral is called for every LITERAL element, with the token's
	// decoded value (int64, float64 or string).
	CompileLiteral(value any) (any, error)

	// CompileVariable is called for every VARIABLE element, with the
	// identifier's spelling.
	CompileVariable(name string) (any, error)

	// CompileUnary is called for an OPERATOR element used in unary
	// position, with the single already-compiled operand.
	CompileUnary(op string, operand any) (any, error)

	// CompileBinary is called for an OPERATOR element used in binary
	// position, with the already-compiled left and right operands.
	CompileBinary(op string, left, right any) (any, error)

	// CompileFunction is called for every FUNCTION element, with the
	// already-compiled arguments in source order.
	CompileFunction(name string, args []any) (any, error)

	// Finalize is called once, after the whole stream has been walked and
	// exactly one value remains on the stack, and its return value becomes
	// the driver's result.
	Finalize(result any) (any, error)
}

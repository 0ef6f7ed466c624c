package parser

// Visitor is a lighter alternative to implementing compile.Compiler: Walk
// calls the matching method for every element in postfix order, with no
// value-stack bookkeeping. Useful for callers that just want to observe the
// stream (pretty-printing, linting) rather than build up a result value.
type Visitor interface {
	VisitLiteral(value any)
	VisitVariable(name string)
	VisitOperator(name string, argc int)
	VisitFunction(name string, argc int)
}

// Walk calls the Visitor method matching each element's Type, in order.
func Walk(elements []Element, v Visitor) {
	for _, el := range elements {
		switch el.Type {
		case LITERAL:
			v.VisitLiteral(el.Value)
		case VARIABLE:
			v.VisitVariable(el.Value.(string))
		case OPERATOR:
			v.VisitOperator(el.Value.(string), el.Argc)
		case FUNCTION:
			v.VisitFunction(el.Value.(string), el.Argc)
		}
	}
}

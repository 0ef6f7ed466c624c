package compile

import (
	"errors"
	"fmt"
)

// ErrRejected is a sentinel a Compiler may wrap (via fmt.Errorf("...: %w",
// compile.ErrRejected)) to reject a variable or function name it does not
// allow, the idiomatic stand-in for the Python original's dedicated
// ExpressionError exception. The driver never constructs or checks this
// itself; it is a convention for Compiler authors, surfaced so callers can
// distinguish a deliberate rejection from an arbitrary Compiler error via
// errors.Is(err, compile.ErrRejected).
var ErrRejected = errors.New("compile: identifier rejected")

// InternalError reports a malformed postfix Element stream: an operator or
// function with too few operands on the stack, or more than one value left
// after the walk completes. It is returned for a hand-built malformed
// []parser.Element, and also for parser output from text with missing
// operands (such as "1 +" or an empty expression), since parser.Parse does
// not check operand counts.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("compile: internal error: %s", e.Message)
}

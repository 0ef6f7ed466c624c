package parser

import (
	"fmt"

	"github.com/go-expr/expr/lexer"
)

// Error code constants for programmatic error handling, following the
// teacher's E_-prefixed convention.
const (
	ErrMismatchedParen = "E_MISMATCHED_PAREN"
	ErrMisplacedComma  = "E_MISPLACED_COMMA"
	ErrUnexpectedToken = "E_UNEXPECTED_TOKEN"
	ErrUnknownOperator = "E_UNKNOWN_OPERATOR"
	ErrTrailingComma   = "E_TRAILING_COMMA"
)

// Error reports a malformed token sequence: mismatched parentheses, a
// misplaced or trailing comma, an operator the dialect does not define, or
// a token the parser does not accept. See spec.md §7. The parser does not
// check that an operator has enough operands: input such as "1 +" parses
// without error, and compile.Driver reports the resulting stream as an
// *compile.InternalError.
type Error struct {
	Message    string
	Code       string
	Pos        lexer.Position
	TokenIndex int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at token %d (%s): %s", e.Code, e.TokenIndex, e.Pos, e.Message)
}

func newError(pos lexer.Position, tokenIndex int, code, format string, args ...any) *Error {
	return &Error{
		Message:    fmt.Sprintf(format, args...),
		Code:       code,
		Pos:        pos,
		TokenIndex: tokenIndex,
	}
}

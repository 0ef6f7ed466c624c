// Package diagnostics renders expr's error types with source context and a
// caret pointing at the offending position, the way a CLI or editor
// integration would want to show them.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/go-expr/expr/compile"
	"github.com/go-expr/expr/dialect"
	"github.com/go-expr/expr/lexer"
	"github.com/go-expr/expr/parser"
)

// FormatWithSource renders err against source, producing a line/column
// header, the offending source line, a caret under the error column, and
// the error message. Errors without a position (e.g. *compile.InternalError)
// fall back to a header-less rendering of err.Error().
func FormatWithSource(err error, source string) string {
	pos, ok := positionOf(err)
	if !ok {
		return err.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Error at %d:%d\n", pos.Line, pos.Column)

	if line := sourceLine(source, pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+pos.Column-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(err.Error())
	return sb.String()
}

func positionOf(err error) (lexer.Position, bool) {
	switch e := err.(type) {
	case *lexer.SyntaxError:
		return e.Pos, true
	case *parser.Error:
		return e.Pos, true
	case *dialect.ConfigError:
		return lexer.Position{}, false
	case *compile.InternalError:
		return lexer.Position{}, false
	default:
		return lexer.Position{}, false
	}
}

// sourceLine returns the 1-indexed line of source, or "" if out of range.
func sourceLine(source string, lineNum int) string {
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

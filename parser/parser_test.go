package parser

import (
	"errors"
	"testing"

	"github.com/go-expr/expr/dialect"
)

func elementsEqual(t *testing.T, got []Element, want []Element) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d elements, want %d: %+v", len(got), len(want), got)
	}
	for i := range got {
		if got[i].Type != want[i].Type {
			t.Errorf("element %d: Type = %s, want %s", i, got[i].Type, want[i].Type)
		}
		if got[i].Value != want[i].Value {
			t.Errorf("element %d: Value = %v, want %v", i, got[i].Value, want[i].Value)
		}
		if got[i].Argc != want[i].Argc {
			t.Errorf("element %d: Argc = %d, want %d", i, got[i].Argc, want[i].Argc)
		}
	}
}

// TestLiteralAndVariable covers the simplest possible postfix streams.
func TestLiteralAndVariable(t *testing.T) {
	d := dialect.Default()

	elems, err := Parse("42", d)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elementsEqual(t, elems, []Element{{Type: LITERAL, Value: int64(42), Argc: 0}})

	elems, err = Parse("x", d)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elementsEqual(t, elems, []Element{{Type: VARIABLE, Value: "x", Argc: 0}})
}

// TestBinaryPrecedence checks S1-style precedence: 1 + 2 * 3 should place
// the multiplication before the addition in postfix order.
func TestBinaryPrecedence(t *testing.T) {
	d := dialect.Default()
	elems, err := Parse("1 + 2 * 3", d)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elementsEqual(t, elems, []Element{
		{Type: LITERAL, Value: int64(1), Argc: 0},
		{Type: LITERAL, Value: int64(2), Argc: 0},
		{Type: LITERAL, Value: int64(3), Argc: 0},
		{Type: OPERATOR, Value: "*", Argc: 2},
		{Type: OPERATOR, Value: "+", Argc: 2},
	})
}

// TestParenthesesOverridePrecedence checks (1 + 2) * 3.
func TestParenthesesOverridePrecedence(t *testing.T) {
	d := dialect.Default()
	elems, err := Parse("(1 + 2) * 3", d)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elementsEqual(t, elems, []Element{
		{Type: LITERAL, Value: int64(1), Argc: 0},
		{Type: LITERAL, Value: int64(2), Argc: 0},
		{Type: OPERATOR, Value: "+", Argc: 2},
		{Type: LITERAL, Value: int64(3), Argc: 0},
		{Type: OPERATOR, Value: "*", Argc: 2},
	})
}

// TestRightAssociativeExponent pins ^'s right-associativity: 2 ^ 3 ^ 2 is
// 2 ^ (3 ^ 2), so the inner 3 ^ 2 must be computed first.
func TestRightAssociativeExponent(t *testing.T) {
	d := dialect.Default()
	elems, err := Parse("2 ^ 3 ^ 2", d)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elementsEqual(t, elems, []Element{
		{Type: LITERAL, Value: int64(2), Argc: 0},
		{Type: LITERAL, Value: int64(3), Argc: 0},
		{Type: LITERAL, Value: int64(2), Argc: 0},
		{Type: OPERATOR, Value: "^", Argc: 2},
		{Type: OPERATOR, Value: "^", Argc: 2},
	})
}

// TestUnaryMinusBindsToNextValue checks that '-' before a value with no
// preceding value is treated as unary, not binary.
func TestUnaryMinusBindsToNextValue(t *testing.T) {
	d := dialect.Default()
	elems, err := Parse("-1 + 2", d)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elementsEqual(t, elems, []Element{
		{Type: LITERAL, Value: int64(1), Argc: 0},
		{Type: OPERATOR, Value: "-", Argc: 1},
		{Type: LITERAL, Value: int64(2), Argc: 0},
		{Type: OPERATOR, Value: "+", Argc: 2},
	})
}

// TestFunctionCallArgc checks that argument counts are discovered correctly
// for 0, 1 and multiple arguments.
func TestFunctionCallArgc(t *testing.T) {
	d := dialect.Default()

	tests := []struct {
		input string
		argc  int
	}{
		{"f()", 0},
		{"f(1)", 1},
		{"f(1, 2, 3)", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			elems, err := Parse(tt.input, d)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			last := elems[len(elems)-1]
			if last.Type != FUNCTION {
				t.Fatalf("last element = %s, want FUNCTION", last.Type)
			}
			if last.Value != "f" {
				t.Errorf("Value = %v, want f", last.Value)
			}
			if last.Argc != tt.argc {
				t.Errorf("Argc = %d, want %d", last.Argc, tt.argc)
			}
		})
	}
}

// TestNestedFunctionCall checks f(g(1), 2) produces argument counts for
// both the inner and outer calls.
func TestNestedFunctionCall(t *testing.T) {
	d := dialect.Default()
	elems, err := Parse("f(g(1), 2)", d)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elementsEqual(t, elems, []Element{
		{Type: LITERAL, Value: int64(1), Argc: 0},
		{Type: FUNCTION, Value: "g", Argc: 1},
		{Type: LITERAL, Value: int64(2), Argc: 0},
		{Type: FUNCTION, Value: "f", Argc: 2},
	})
}

// TestMismatchedParenErrors checks that both excess '(' and excess ')'
// produce an E_MISMATCHED_PAREN error.
func TestMismatchedParenErrors(t *testing.T) {
	d := dialect.Default()

	for _, input := range []string{"(1 + 2", "1 + 2)", "f(1"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input, d)
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error = %v, want *parser.Error", input, err)
			}
			if perr.Code != ErrMismatchedParen {
				t.Errorf("Code = %s, want %s", perr.Code, ErrMismatchedParen)
			}
		})
	}
}

// TestMisplacedCommaErrors checks a comma outside any call's argument list.
func TestMisplacedCommaErrors(t *testing.T) {
	d := dialect.Default()
	_, err := Parse("1, 2", d)
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("Parse error = %v, want *parser.Error", err)
	}
	if perr.Code != ErrMisplacedComma {
		t.Errorf("Code = %s, want %s", perr.Code, ErrMisplacedComma)
	}
}

// TestTrailingCommaRejected checks f(1,) is rejected rather than silently
// treated as a one-argument call (see DESIGN.md).
func TestTrailingCommaRejected(t *testing.T) {
	d := dialect.Default()
	_, err := Parse("f(1,)", d)
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("Parse error = %v, want *parser.Error", err)
	}
	if perr.Code != ErrTrailingComma {
		t.Errorf("Code = %s, want %s", perr.Code, ErrTrailingComma)
	}
}

// TestUnknownOperatorErrors checks that a bare '+' is reported as an
// unknown operator when the dialect only registers it as the first
// character of the composed operator "+-", never on its own.
func TestUnknownOperatorErrors(t *testing.T) {
	d, err := dialect.New(dialect.Config{
		Operators: map[string]dialect.OperatorConfig{
			"-":  {Precedence: 500, Arity: dialect.Binary},
			"+-": {Precedence: 500, Arity: dialect.Binary},
		},
		IdentifierStartCharacters: "_",
		IdentifierStartCategory:   "L",
	})
	if err != nil {
		t.Fatalf("dialect.New: %v", err)
	}

	_, err = Parse("1 + 2", d)
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("Parse error = %v, want *parser.Error", err)
	}
	if perr.Code != ErrUnknownOperator {
		t.Errorf("Code = %s, want %s", perr.Code, ErrUnknownOperator)
	}
}

// TestStringLiteral checks that string tokens survive as LITERAL elements.
func TestStringLiteral(t *testing.T) {
	d := dialect.Default()
	elems, err := Parse(`"hello"`, d)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elementsEqual(t, elems, []Element{{Type: LITERAL, Value: "hello", Argc: 0}})
}

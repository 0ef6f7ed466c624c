package expr_test

import (
	"testing"

	"github.com/go-expr/expr/expr"
	"github.com/go-expr/expr/compilers"
	"github.com/go-expr/expr/dialect"
)

func TestTokenizeAndParseDefaultToDefaultDialect(t *testing.T) {
	tokens, err := expr.Tokenize("1 + 2", nil)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("Tokenize returned no tokens")
	}

	elements, err := expr.Parse("1 + 2", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(elements) != 3 {
		t.Fatalf("len(elements) = %d, want 3", len(elements))
	}
}

func TestCompileGenericHelper(t *testing.T) {
	result, err := expr.Compile[compilers.Literal](compilers.Identity{}, "42", nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if result.Value != int64(42) {
		t.Errorf("result.Value = %v, want 42", result.Value)
	}
}

func TestCompileRejectsWrongResultType(t *testing.T) {
	_, err := expr.Compile[string](compilers.Identity{}, "42", nil)
	if err == nil {
		t.Fatal("Compile: want error for mismatched result type, got nil")
	}
}

func TestCompileWithExplicitDialect(t *testing.T) {
	d := dialect.Default()
	result, err := expr.Compile[compilers.Literal](compilers.Identity{}, "1", d)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if result.Value != int64(1) {
		t.Errorf("result.Value = %v, want 1", result.Value)
	}
}

func TestInspectVariables(t *testing.T) {
	vars, funcs, err := expr.InspectVariables("f(x) + y")
	if err != nil {
		t.Fatalf("InspectVariables: %v", err)
	}
	if _, ok := vars["x"]; !ok {
		t.Errorf("vars missing x: %v", vars)
	}
	if _, ok := vars["y"]; !ok {
		t.Errorf("vars missing y: %v", vars)
	}
	if _, ok := funcs["f"]; !ok {
		t.Errorf("funcs missing f: %v", funcs)
	}
}

func TestRegisterAndUnregisterDialect(t *testing.T) {
	d := dialect.Default()
	if err := expr.RegisterDialect("test-expr-dialect", d); err != nil {
		t.Fatalf("RegisterDialect: %v", err)
	}
	defer expr.UnregisterDialect("test-expr-dialect")

	got, err := expr.GetDialect("test-expr-dialect")
	if err != nil {
		t.Fatalf("GetDialect: %v", err)
	}
	if got != d {
		t.Error("GetDialect returned a different dialect than registered")
	}
}

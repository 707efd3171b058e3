package interpreter

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tinylang/internal/ast"
	"tinylang/internal/parser"
)

func testRun(t *testing.T, in *Interpreter, input string) ([]Outcome, error) {
	t.Helper()
	prog, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return in.Run(prog)
}

func testEval(t *testing.T, input string) Value {
	t.Helper()
	outcomes, err := testRun(t, New(), input)
	if err != nil {
		t.Fatalf("Run(%q): %v", input, err)
	}
	if len(outcomes) == 0 {
		t.Fatalf("Run(%q) produced no outcomes", input)
	}
	return outcomes[len(outcomes)-1].Value
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5;", 5},
		{"007;", 7},
		{"2 + 3 * 4;", 14},
		{"(2 + 3) * 4;", 20},
		{"10 - 2 - 3;", 5},
		{"100 / 10 / 2;", 5},
		{"5 + 5 + 5 + 5 - 10;", 10},
		{"2 * 2 * 2 * 2 * 2;", 32},
		{"50 / 2 * 2 + 10;", 60},
		{"(5 + 10 * 2 + 15 / 3) * 2 - 10;", 50},
		{"0 - 7;", -7},
		{"7 / 2;", 3},
		{"a = 1; b = 0 - 2; a / b;", 0},
		{"a = 0 - 7; a / 2;", -3},
		{"x = 10; y = 5; z = x + y * 2;", 20},
		{"a = 10; b = 2; c = (a + b) * 3 - 4 / 2;", 34},
		{"9223372036854775807;", math.MaxInt64},
		{"m = 0 - 9223372036854775807 - 1; m;", math.MinInt64},
	}

	for _, tt := range tests {
		if got := testEval(t, tt.input); got != Value(tt.expected) {
			t.Errorf("%q = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestSequentialOutcomes(t *testing.T) {
	outcomes, err := testRun(t, New(), "a = 3; b = a + 2; b;")
	if err != nil {
		t.Fatal(err)
	}
	expected := []Outcome{
		{Kind: Bound, Name: "a", Value: 3},
		{Kind: Bound, Name: "b", Value: 5},
		{Kind: Computed, Value: 5},
	}
	if diff := cmp.Diff(expected, outcomes); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}
	if s := outcomes[0].String(); s != "a = 3" {
		t.Errorf("Outcome.String() = %q", s)
	}
	if s := outcomes[2].String(); s != "5" {
		t.Errorf("Outcome.String() = %q", s)
	}
}

func TestAssignmentOverwrites(t *testing.T) {
	in := New()
	if _, err := testRun(t, in, "x = 1; x = x + 41;"); err != nil {
		t.Fatal(err)
	}
	if v, _ := in.Env().Get("x"); v != 42 {
		t.Errorf("x = %d, want 42", v)
	}
	if in.Env().Len() != 1 {
		t.Errorf("env = %s", in.Env())
	}
}

func TestUndefinedVariable(t *testing.T) {
	in := New()
	_, err := testRun(t, in, "y = x + 1;")

	var uve *UndefinedVariableError
	if !errors.As(err, &uve) {
		t.Fatalf("error = %v, want *UndefinedVariableError", err)
	}
	if uve.Name != "x" {
		t.Errorf("name = %q, want x", uve.Name)
	}
	if _, ok := in.Env().Get("y"); ok {
		t.Error("y must not be bound")
	}
}

func TestDivisionByZero(t *testing.T) {
	in := New()
	outcomes, err := testRun(t, in, "b = 1; a = 5 / 0; c = 2;")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("error = %v, want ErrDivisionByZero", err)
	}

	var se *StatementError
	if !errors.As(err, &se) || se.Index != 1 {
		t.Errorf("statement error = %+v", se)
	}
	if len(outcomes) != 1 {
		t.Errorf("outcomes = %v, want only the first", outcomes)
	}
	if _, ok := in.Env().Get("a"); ok {
		t.Error("a must not be bound")
	}
	if _, ok := in.Env().Get("c"); ok {
		t.Error("execution must stop at the failing statement")
	}
	if v, ok := in.Env().Get("b"); !ok || v != 1 {
		t.Error("b must stay bound without rollback")
	}
}

func TestErrorPrecedence(t *testing.T) {
	_, err := testRun(t, New(), "x / 0 + 1 / 0;")
	var uve *UndefinedVariableError
	if !errors.As(err, &uve) {
		t.Fatalf("left operand error must win, got %v", err)
	}

	_, err = testRun(t, New(), "1 / 0 + x;")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("left operand error must win, got %v", err)
	}
}

func TestOverflow(t *testing.T) {
	tests := []struct {
		input string
		op    ast.Op
	}{
		{"x = 9223372036854775807; x + 1;", ast.Add},
		{"m = 0 - 9223372036854775807 - 1; m - 1;", ast.Sub},
		{"x = 9223372036854775807; 0 - x - 2;", ast.Sub},
		{"4611686018427387904 * 2;", ast.Mul},
		{"m = 0 - 9223372036854775807 - 1; m * (0 - 1);", ast.Mul},
		{"m = 0 - 9223372036854775807 - 1; m / (0 - 1);", ast.Div},
	}

	for _, tt := range tests {
		_, err := testRun(t, New(), tt.input)
		var oe *OverflowError
		if !errors.As(err, &oe) {
			t.Errorf("%q: error = %v, want *OverflowError", tt.input, err)
			continue
		}
		if oe.Op != tt.op {
			t.Errorf("%q: op = %s, want %s", tt.input, oe.Op, tt.op)
		}
	}
}

func TestApplyEdges(t *testing.T) {
	tests := []struct {
		op       ast.Op
		l, r     Value
		expected Value
	}{
		{ast.Add, math.MaxInt64, 0, math.MaxInt64},
		{ast.Add, math.MinInt64, math.MaxInt64, -1},
		{ast.Sub, math.MinInt64, math.MinInt64, 0},
		{ast.Sub, -1, math.MaxInt64, math.MinInt64},
		{ast.Mul, math.MinInt64, 1, math.MinInt64},
		{ast.Mul, 0, math.MinInt64, 0},
		{ast.Mul, -3, 4, -12},
		{ast.Div, math.MinInt64, 1, math.MinInt64},
		{ast.Div, -7, 2, -3},
	}
	for _, tt := range tests {
		got, err := apply(tt.op, tt.l, tt.r)
		if err != nil {
			t.Errorf("%d %s %d: unexpected error %v", tt.l, tt.op, tt.r, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("%d %s %d = %d, want %d", tt.l, tt.op, tt.r, got, tt.expected)
		}
	}

	_, err := apply(ast.Op(42), 1, 1)
	var uoe *UnknownOperatorError
	if !errors.As(err, &uoe) || uoe.Op != ast.Op(42) {
		t.Errorf("unknown operator: error = %v", err)
	}
}

func TestRollback(t *testing.T) {
	in := New(WithRollback(true))
	if _, err := testRun(t, in, "a = 1;"); err != nil {
		t.Fatal(err)
	}
	_, err := testRun(t, in, "a = 2; b = 3; c = d;")
	if err == nil {
		t.Fatal("expected an error")
	}
	if diff := cmp.Diff(map[string]Value{"a": 1}, in.Env().Map()); diff != "" {
		t.Errorf("environment was not restored (-want +got):\n%s", diff)
	}
}

func TestEnvironmentCarriedAcrossRuns(t *testing.T) {
	env := NewEnvironment()
	prog, _ := parser.Parse("a = 2;")
	if _, err := Run(prog, env); err != nil {
		t.Fatal(err)
	}
	prog, _ = parser.Parse("a * 3;")
	outcomes, err := Run(prog, env)
	if err != nil {
		t.Fatal(err)
	}
	if outcomes[0].Value != 6 {
		t.Errorf("a * 3 = %d, want 6", outcomes[0].Value)
	}

	prog, _ = parser.Parse("a;")
	if _, err := Run(prog, nil); err == nil {
		t.Error("a nil environment must start empty")
	}
}

func TestDeterminism(t *testing.T) {
	input := "a = 3; b = a * (a + 4) - 1; c = b / 2; c - a;"
	first, err := testRun(t, New(), input)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := testRun(t, New(), input)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs:\n%s", i, diff)
		}
	}
}

func TestEnvironment(t *testing.T) {
	env := NewEnvironment()
	env.Set("zeta", 1)
	env.Set("alpha", -2)
	env.Set("mid", 3)

	if diff := cmp.Diff([]string{"alpha", "mid", "zeta"}, env.Names()); diff != "" {
		t.Errorf("Names() mismatch:\n%s", diff)
	}
	if s := env.String(); s != "{alpha: -2, mid: 3, zeta: 1}" {
		t.Errorf("String() = %q", s)
	}

	clone := env.Clone()
	clone.Set("alpha", 100)
	if v, _ := env.Get("alpha"); v != -2 {
		t.Error("Clone must not share storage")
	}
}

// Package interpreter evaluates parsed programs by walking the AST against an
// Environment.
package interpreter

import (
	"fmt"

	"tinylang/internal/ast"
)

// OutcomeKind tells an assignment's outcome from a bare expression's.
type OutcomeKind int

const (
	Bound OutcomeKind = iota
	Computed
)

func (k OutcomeKind) String() string {
	if k == Bound {
		return "bound"
	}
	return "computed"
}

// Outcome is the result of one statement. Name is set only for Bound.
type Outcome struct {
	Kind  OutcomeKind
	Name  string
	Value Value
}

func (o Outcome) String() string {
	if o.Kind == Bound {
		return fmt.Sprintf("%s = %d", o.Name, o.Value)
	}
	return o.Value.String()
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithEnvironment makes the interpreter run against env instead of a fresh
// environment.
func WithEnvironment(env *Environment) Option {
	return func(in *Interpreter) {
		in.env = env
	}
}

// WithRollback restores the environment to its state at the start of Run
// when Run fails. Without it the bindings made by statements before the
// failing one are kept.
func WithRollback(enabled bool) Option {
	return func(in *Interpreter) {
		in.rollback = enabled
	}
}

// Interpreter owns an Environment and threads it through successive runs.
// It is not safe for concurrent use.
type Interpreter struct {
	env      *Environment
	rollback bool
}

func New(opts ...Option) *Interpreter {
	in := &Interpreter{}
	for _, opt := range opts {
		opt(in)
	}
	if in.env == nil {
		in.env = NewEnvironment()
	}
	return in
}

func (in *Interpreter) Env() *Environment {
	return in.env
}

// Run executes the statements of prog in order and stops at the first
// failure. The outcomes of the statements that completed are returned with
// the error, which is a *StatementError.
func (in *Interpreter) Run(prog *ast.Program) ([]Outcome, error) {
	var snapshot *Environment
	if in.rollback {
		snapshot = in.env.Clone()
	}

	outcomes := make([]Outcome, 0, len(prog.Statements))
	for i, stmt := range prog.Statements {
		out, err := EvalStatement(stmt, in.env)
		if err != nil {
			if snapshot != nil {
				in.env.restore(snapshot)
			}
			return outcomes, &StatementError{Index: i, Err: err}
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

// Run executes prog against env, or a fresh environment when env is nil.
func Run(prog *ast.Program, env *Environment) ([]Outcome, error) {
	return New(WithEnvironment(env)).Run(prog)
}

// EvalStatement executes a single statement. An assignment binds only after
// its expression evaluated successfully.
func EvalStatement(stmt ast.Statement, env *Environment) (Outcome, error) {
	switch s := stmt.(type) {
	case *ast.Assignment:
		val, err := Eval(s.Value, env)
		if err != nil {
			return Outcome{}, err
		}
		env.Set(s.Name, val)
		return Outcome{Kind: Bound, Name: s.Name, Value: val}, nil
	case *ast.ExpressionStatement:
		val, err := Eval(s.Expr, env)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: Computed, Value: val}, nil
	}
	return Outcome{}, fmt.Errorf("invalid statement %T", stmt)
}

// Eval computes the value of expr. The left operand of a binary operation is
// evaluated before the right one, so its error wins.
func Eval(expr ast.Expression, env *Environment) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return Value(e.Value), nil
	case *ast.Variable:
		v, ok := env.Get(e.Name)
		if !ok {
			return 0, &UndefinedVariableError{Name: e.Name}
		}
		return v, nil
	case *ast.BinaryOp:
		l, err := Eval(e.Left, env)
		if err != nil {
			return 0, err
		}
		r, err := Eval(e.Right, env)
		if err != nil {
			return 0, err
		}
		return apply(e.Op, l, r)
	}
	return 0, fmt.Errorf("invalid expression %T", expr)
}

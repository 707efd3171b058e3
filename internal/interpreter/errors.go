package interpreter

import (
	"errors"
	"fmt"

	"tinylang/internal/ast"
)

// ErrDivisionByZero is returned when the right operand of "/" is zero.
var ErrDivisionByZero = errors.New("division by zero")

// UndefinedVariableError is returned when a variable is read before it is
// bound.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}

// OverflowError is returned when an operation leaves the int64 range.
type OverflowError struct {
	Op          ast.Op
	Left, Right Value
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("arithmetic overflow in %d %s %d", e.Left, e.Op, e.Right)
}

// UnknownOperatorError is returned for an ast.Op outside Add..Div.
type UnknownOperatorError struct {
	Op ast.Op
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator %d", int(e.Op))
}

// StatementError reports which statement of a run failed.
type StatementError struct {
	Index int // zero-based
	Err   error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement %d: %v", e.Index+1, e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

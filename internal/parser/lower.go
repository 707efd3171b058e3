package parser

import (
	"errors"
	"fmt"
	"strconv"

	"tinylang/internal/ast"
)

func lower(tree *program) (*ast.Program, error) {
	prog := &ast.Program{Statements: make([]ast.Statement, 0, len(tree.Statements))}
	for _, s := range tree.Statements {
		stmt, err := lowerStatement(s)
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func lowerStatement(s *statement) (ast.Statement, error) {
	if s.Assignment != nil {
		value, err := lowerExpression(s.Assignment.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Name: s.Assignment.Name, Value: value}, nil
	}
	expr, err := lowerExpression(s.Expression)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expr: expr}, nil
}

// lowerExpression and lowerTerm fold "head (op operand)*" to the left, so
// a - b - c becomes (a - b) - c.
func lowerExpression(e *expression) (ast.Expression, error) {
	left, err := lowerTerm(e.Head)
	if err != nil {
		return nil, err
	}
	for _, suffix := range e.Tail {
		right, err := lowerTerm(suffix.Operand)
		if err != nil {
			return nil, err
		}
		if left, err = binary(suffix.Operator, left, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func lowerTerm(t *term) (ast.Expression, error) {
	left, err := lowerFactor(t.Head)
	if err != nil {
		return nil, err
	}
	for _, suffix := range t.Tail {
		right, err := lowerFactor(suffix.Operand)
		if err != nil {
			return nil, err
		}
		if left, err = binary(suffix.Operator, left, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func lowerFactor(f *factor) (ast.Expression, error) {
	switch {
	case f.Number != nil:
		n, err := strconv.ParseInt(*f.Number, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return nil, &LiteralOverflowError{Literal: *f.Number, Pos: positionOf(f.Pos)}
		}
		if err != nil {
			return nil, err
		}
		return &ast.Literal{Value: n}, nil
	case f.Variable != nil:
		return &ast.Variable{Name: *f.Variable}, nil
	case f.Group != nil:
		return lowerExpression(f.Group)
	}
	return nil, fmt.Errorf("%s: empty factor", positionOf(f.Pos))
}

func binary(symbol string, left, right ast.Expression) (ast.Expression, error) {
	op, ok := ast.OpFromSymbol(symbol)
	if !ok {
		return nil, fmt.Errorf("unknown operator %q", symbol)
	}
	return &ast.BinaryOp{Op: op, Left: left, Right: right}, nil
}

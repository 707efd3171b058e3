package interpreter

import (
	"math"
	"strconv"

	"tinylang/internal/ast"
)

// Value is the only runtime datum: a signed 64-bit integer.
type Value int64

func (v Value) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// apply performs checked arithmetic. Division truncates toward zero.
func apply(op ast.Op, l, r Value) (Value, error) {
	overflow := &OverflowError{Op: op, Left: l, Right: r}
	switch op {
	case ast.Add:
		if (r > 0 && l > math.MaxInt64-r) || (r < 0 && l < math.MinInt64-r) {
			return 0, overflow
		}
		return l + r, nil
	case ast.Sub:
		if (r < 0 && l > math.MaxInt64+r) || (r > 0 && l < math.MinInt64+r) {
			return 0, overflow
		}
		return l - r, nil
	case ast.Mul:
		if l == 0 || r == 0 {
			return 0, nil
		}
		p := l * r
		if p/r != l || (l == -1 && r == math.MinInt64) || (r == -1 && l == math.MinInt64) {
			return 0, overflow
		}
		return p, nil
	case ast.Div:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		if l == math.MinInt64 && r == -1 {
			return 0, overflow
		}
		return l / r, nil
	}
	return 0, &UnknownOperatorError{Op: op}
}

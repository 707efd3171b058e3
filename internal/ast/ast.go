// Package ast defines the abstract syntax tree produced by the parser and
// walked by the interpreter.
package ast

// Node is implemented by every tree node.
type Node interface {
	node()
}

// Statement is either an *Assignment or an *ExpressionStatement.
type Statement interface {
	Node
	statement()
}

// Expression is a *Literal, a *Variable or a *BinaryOp.
type Expression interface {
	Node
	expression()
}

// Program is the ordered list of statements of one parse unit.
type Program struct {
	Statements []Statement
}

// Assignment binds the value of an expression to a name.
type Assignment struct {
	Name  string
	Value Expression
}

// ExpressionStatement evaluates an expression for its value.
type ExpressionStatement struct {
	Expr Expression
}

// Literal is an integer constant.
type Literal struct {
	Value int64
}

// Variable references a binding by name.
type Variable struct {
	Name string
}

// BinaryOp applies Op to two operands. Both operands are always set.
type BinaryOp struct {
	Op    Op
	Left  Expression
	Right Expression
}

// Op is an arithmetic operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
)

var opSymbols = [...]string{Add: "+", Sub: "-", Mul: "*", Div: "/"}

// String returns the operator's source symbol.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opSymbols) {
		return "?"
	}
	return opSymbols[o]
}

// OpFromSymbol maps "+", "-", "*" and "/" to their operator.
func OpFromSymbol(s string) (Op, bool) {
	for i, sym := range opSymbols {
		if sym == s {
			return Op(i), true
		}
	}
	return 0, false
}

func (*Program) node()             {}
func (*Assignment) node()          {}
func (*ExpressionStatement) node() {}
func (*Literal) node()             {}
func (*Variable) node()            {}
func (*BinaryOp) node()            {}

func (*Assignment) statement()          {}
func (*ExpressionStatement) statement() {}

func (*Literal) expression()  {}
func (*Variable) expression() {}
func (*BinaryOp) expression() {}

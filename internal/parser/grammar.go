package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// The structs below are the concrete parse tree. Each one mirrors a rule:
//
//	program    = statement* EOF
//	statement  = (assignment | expression) ";"
//	assignment = identifier "=" expression
//	expression = term (("+" | "-") term)*
//	term       = factor (("*" | "/") factor)*
//	factor     = number | identifier | "(" expression ")"

type program struct {
	Statements []*statement `parser:"@@*"`
}

type statement struct {
	Assignment *assignment `parser:"( @@"`
	Expression *expression `parser:"| @@ )"`
	End        *terminator `parser:"@@"`
}

type assignment struct {
	Name  string      `parser:"@Ident '='"`
	Value *expression `parser:"@@"`
}

type expression struct {
	Head *term         `parser:"@@"`
	Tail []*termSuffix `parser:"@@*"`
}

type termSuffix struct {
	Operator string `parser:"@( '+' | '-' )"`
	Operand  *term  `parser:"@@"`
}

type term struct {
	Head *factor         `parser:"@@"`
	Tail []*factorSuffix `parser:"@@*"`
}

type factorSuffix struct {
	Operator string  `parser:"@( '*' | '/' )"`
	Operand  *factor `parser:"@@"`
}

type factor struct {
	Pos lexer.Position

	Number   *string     `parser:"  @Int"`
	Variable *string     `parser:"| @Ident"`
	Group    *expression `parser:"| '(' @@ ')'"`
}

// terminator exists to record where a statement ends.
type terminator struct {
	Pos lexer.Position

	Semicolon string `parser:"@';'"`
}

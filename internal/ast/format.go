package ast

import (
	"strconv"
	"strings"
)

// Format renders a node as canonical source text. Every binary operation is
// parenthesized, so the output re-parses to the same tree.
func Format(n Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func write(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Program:
		for i, stmt := range n.Statements {
			if i > 0 {
				sb.WriteByte('\n')
			}
			write(sb, stmt)
		}
	case *Assignment:
		sb.WriteString(n.Name)
		sb.WriteString(" = ")
		write(sb, n.Value)
		sb.WriteByte(';')
	case *ExpressionStatement:
		write(sb, n.Expr)
		sb.WriteByte(';')
	case *Literal:
		sb.WriteString(strconv.FormatInt(n.Value, 10))
	case *Variable:
		sb.WriteString(n.Name)
	case *BinaryOp:
		sb.WriteByte('(')
		write(sb, n.Left)
		sb.WriteByte(' ')
		sb.WriteString(n.Op.String())
		sb.WriteByte(' ')
		write(sb, n.Right)
		sb.WriteByte(')')
	}
}

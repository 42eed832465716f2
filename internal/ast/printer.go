package ast

import "fmt"

// Print renders an expression tree in prefix notation, e.g. "(+ 1 (* 2 3))".
// Assignment expressions are not part of the printable subset and render as
// the empty string.
func Print(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value.String()
	case *GroupingExpr:
		return fmt.Sprintf("(grouping %s)", Print(e.Expression))
	case *UnaryExpr:
		return fmt.Sprintf("(%s %s)", e.Operator.Lexeme, Print(e.Right))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, Print(e.Left), Print(e.Right))
	case *VariableExpr:
		return e.Name.Lexeme
	default:
		return ""
	}
}

// Package ast defines the abstract syntax tree for golox.
package ast

import (
	"golox/internal/token"
	"golox/internal/value"
)

// ============================================================
// Node interfaces
// ============================================================

// Node is the interface implemented by all AST nodes.
type Node interface {
	nodeNode()
	GetLine() int
}

// Expr is the interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// ============================================================
// Base types (embedded to provide common fields)
// ============================================================

// NodeBase provides the common Line field for all AST nodes.
type NodeBase struct {
	Line int
}

func (n NodeBase) nodeNode()    {}
func (n NodeBase) GetLine() int { return n.Line }

// ExprBase is embedded by all expression nodes.
type ExprBase struct{ NodeBase }

func (ExprBase) exprNode() {}

// StmtBase is embedded by all statement nodes.
type StmtBase struct{ NodeBase }

func (StmtBase) stmtNode() {}

// ============================================================
// Expressions
// ============================================================

// LiteralExpr represents a literal: a number, string, boolean, or nil.
type LiteralExpr struct {
	ExprBase
	Value value.Value
}

// GroupingExpr represents a parenthesized expression: (expr).
type GroupingExpr struct {
	ExprBase
	Expression Expr
}

// UnaryExpr represents a unary operation: !x, -x.
type UnaryExpr struct {
	ExprBase
	Operator token.Token
	Right    Expr
}

// BinaryExpr represents a binary operation: a + b, x == y.
type BinaryExpr struct {
	ExprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

// VariableExpr represents a variable reference.
type VariableExpr struct {
	ExprBase
	Name token.Token
}

// AssignExpr represents an assignment: name = value.
type AssignExpr struct {
	ExprBase
	Name  token.Token
	Value Expr
}

// ============================================================
// Statements
// ============================================================

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	StmtBase
	Expression Expr
}

// PrintStmt represents a print statement: print expr;.
type PrintStmt struct {
	StmtBase
	Expression Expr
}

// VarDeclStmt represents a variable declaration: var x = expr;.
type VarDeclStmt struct {
	StmtBase
	Name        token.Token
	Initializer Expr // may be nil if no initializer
}

// BlockStmt represents a block of statements: { ... };.
type BlockStmt struct {
	StmtBase
	Stmts []Stmt
}

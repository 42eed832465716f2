// Package runtime implements the tree-walking interpreter for golox.
package runtime

import (
	"fmt"
	"io"

	"golox/internal/ast"
	"golox/internal/token"
	"golox/internal/value"
)

// Interpreter walks the AST and executes it.
type Interpreter struct {
	global *Environment
	env    *Environment
	output io.Writer
}

// NewInterpreter creates a new interpreter writing print output to output.
func NewInterpreter(output io.Writer) *Interpreter {
	global := NewEnvironment(nil)
	return &Interpreter{
		global: global,
		env:    global,
		output: output,
	}
}

// Interpret executes one statement and returns the value it evaluated to.
// An expression statement evaluates to its expression's value; print,
// variable declarations, and blocks evaluate to nil.
func (i *Interpreter) Interpret(stmt ast.Stmt) (value.Value, error) {
	return i.execStmt(stmt)
}

// ============================================================
// Statement execution
// ============================================================

func (i *Interpreter) execStmt(stmt ast.Stmt) (value.Value, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return i.evalExpr(s.Expression)

	case *ast.PrintStmt:
		val, err := i.evalExpr(s.Expression)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(i.output, val)
		return value.NilVal{}, nil

	case *ast.VarDeclStmt:
		var val value.Value = value.NilVal{}
		if s.Initializer != nil {
			v, err := i.evalExpr(s.Initializer)
			if err != nil {
				return nil, err
			}
			val = v
		}
		i.env.Define(s.Name.Lexeme, val)
		return value.NilVal{}, nil

	case *ast.BlockStmt:
		return i.execBlock(s, NewEnvironment(i.env))

	default:
		return nil, runtimeErr(stmt.GetLine(), "unhandled statement type: %T", stmt)
	}
}

// execBlock runs the block's statements against blockEnv. The previous
// environment is restored on every exit path, including error returns.
func (i *Interpreter) execBlock(block *ast.BlockStmt, blockEnv *Environment) (value.Value, error) {
	prevEnv := i.env
	i.env = blockEnv
	defer func() { i.env = prevEnv }()

	for _, stmt := range block.Stmts {
		if _, err := i.execStmt(stmt); err != nil {
			return nil, err
		}
	}
	return value.NilVal{}, nil
}

// ============================================================
// Expression evaluation
// ============================================================

func (i *Interpreter) evalExpr(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return i.evalExpr(e.Expression)

	case *ast.VariableExpr:
		val, ok := i.env.Get(e.Name.Lexeme)
		if !ok {
			return nil, &UndefinedVariableError{Name: e.Name.Lexeme, Line: e.Name.Line}
		}
		return val, nil

	case *ast.AssignExpr:
		val, err := i.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if !i.env.Assign(e.Name.Lexeme, val) {
			return nil, &UndefinedVariableError{Name: e.Name.Lexeme, Line: e.Name.Line}
		}
		return val, nil

	case *ast.UnaryExpr:
		return i.evalUnary(e)

	case *ast.BinaryExpr:
		return i.evalBinary(e)

	default:
		return nil, runtimeErr(expr.GetLine(), "unhandled expression type: %T", expr)
	}
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) (value.Value, error) {
	operand, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.MINUS:
		n, err := asNumber(operand, e.Operator.Line)
		if err != nil {
			return nil, err
		}
		return value.NumberVal(-n), nil
	case token.BANG:
		b, err := asBool(operand, e.Operator.Line)
		if err != nil {
			return nil, err
		}
		return value.BoolVal(!b), nil
	default:
		return nil, runtimeErr(e.Operator.Line, "unknown unary operator '%s'", e.Operator.Lexeme)
	}
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (value.Value, error) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	line := e.Operator.Line
	switch e.Operator.Kind {
	case token.PLUS:
		return evalAdd(left, right, line)
	case token.MINUS:
		l, r, err := asNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.NumberVal(l - r), nil
	case token.STAR:
		l, r, err := asNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.NumberVal(l * r), nil
	case token.SLASH:
		l, r, err := asNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.NumberVal(l / r), nil
	case token.GT:
		l, r, err := asNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.BoolVal(l > r), nil
	case token.GTE:
		l, r, err := asNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.BoolVal(l >= r), nil
	case token.LT:
		l, r, err := asNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.BoolVal(l < r), nil
	case token.LTE:
		l, r, err := asNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.BoolVal(l <= r), nil
	case token.EQ:
		return value.BoolVal(value.Equal(left, right)), nil
	case token.NEQ:
		return value.BoolVal(!value.Equal(left, right)), nil
	default:
		return nil, runtimeErr(line, "unknown binary operator '%s'", e.Operator.Lexeme)
	}
}

// evalAdd implements the overloaded '+'. The left operand decides the
// dispatch: if it coerces to number the right must too, otherwise both
// operands must be strings. Mixed operands fail with a type error.
func evalAdd(left, right value.Value, line int) (value.Value, error) {
	if l, err := asNumber(left, line); err == nil {
		r, err := asNumber(right, line)
		if err != nil {
			return nil, err
		}
		return value.NumberVal(l + r), nil
	}
	l, err := asString(left, line)
	if err != nil {
		return nil, err
	}
	r, err := asString(right, line)
	if err != nil {
		return nil, err
	}
	return value.StringVal(l + r), nil
}

// ============================================================
// Coercions
// ============================================================

func asNumber(v value.Value, line int) (float32, error) {
	if n, ok := v.(value.NumberVal); ok {
		return float32(n), nil
	}
	return 0, &TypeError{Expected: "number", Actual: v.TypeName(), Line: line}
}

func asNumbers(left, right value.Value, line int) (float32, float32, error) {
	l, err := asNumber(left, line)
	if err != nil {
		return 0, 0, err
	}
	r, err := asNumber(right, line)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

func asString(v value.Value, line int) (string, error) {
	if s, ok := v.(value.StringVal); ok {
		return string(s), nil
	}
	return "", &TypeError{Expected: "string", Actual: v.TypeName(), Line: line}
}

// asBool coerces a value to boolean: booleans pass through and nil is
// false. Numbers and strings are not coercible.
func asBool(v value.Value, line int) (bool, error) {
	switch b := v.(type) {
	case value.BoolVal:
		return bool(b), nil
	case value.NilVal:
		return false, nil
	default:
		return false, &TypeError{Expected: "boolean", Actual: v.TypeName(), Line: line}
	}
}

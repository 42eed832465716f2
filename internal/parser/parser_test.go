package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golox/internal/ast"
	"golox/internal/diag"
	"golox/internal/lexer"
	"golox/internal/token"
)

func parseSource(t *testing.T, src string) (ast.Stmt, []diag.Diagnostic) {
	t.Helper()
	tokens, lexDiags := lexer.New(src).Tokenize()
	require.Empty(t, lexDiags, "source %q", src)
	return New(tokens).Parse()
}

// parseExpr parses src as an expression statement and returns the expression.
func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	stmt, diags := parseSource(t, src+";")
	require.Empty(t, diags, "source %q", src)
	es, ok := stmt.(*ast.ExprStmt)
	require.True(t, ok, "expected expression statement, got %T", stmt)
	return es.Expression
}

func TestPrecedence(t *testing.T) {
	testCases := []struct {
		src      string
		expected string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"1 + 2 < 3 == true", "(== (< (+ 1 2) 3) true)"},
		{"-1 * 2", "(* (- 1) 2)"},
		{"!true == false", "(== (! true) false)"},
		{"(1 + 2) * 3", "(* (grouping (+ 1 2)) 3)"},
		{"-(2 + 3)", "(- (grouping (+ 2 3)))"},
		{"!!false", "(! (! false))"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.expected, ast.Print(parseExpr(t, tc.src)), "source %q", tc.src)
	}
}

func TestLeftAssociativity(t *testing.T) {
	testCases := []struct {
		src      string
		expected string
	}{
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"8 / 4 / 2", "(/ (/ 8 4) 2)"},
		{"1 < 2 < 3", "(< (< 1 2) 3)"},
		{"1 == 2 == 3", "(== (== 1 2) 3)"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.expected, ast.Print(parseExpr(t, tc.src)), "source %q", tc.src)
	}
}

func TestBinaryOperators(t *testing.T) {
	ops := []string{"+", "-", "*", "/", "==", "!=", "<", "<=", ">", ">="}

	assert := assert.New(t)
	for _, op := range ops {
		expr := parseExpr(t, "1 "+op+" 2")
		assert.Equal("("+op+" 1 2)", ast.Print(expr))
	}
}

func TestLiterals(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("32.5", ast.Print(parseExpr(t, "32.50")))
	assert.Equal("hello", ast.Print(parseExpr(t, `"hello"`)))
	assert.Equal("true", ast.Print(parseExpr(t, "true")))
	assert.Equal("false", ast.Print(parseExpr(t, "false")))
	assert.Equal("nil", ast.Print(parseExpr(t, "nil")))
	assert.Equal("x", ast.Print(parseExpr(t, "x")))
}

func TestCommentsAndWhitespaceIgnored(t *testing.T) {
	plain := parseExpr(t, "1 + 2")
	commented := parseExpr(t, "1 //c\n+ 2")
	assert.Equal(t, ast.Print(plain), ast.Print(commented))
}

func TestVarDecl(t *testing.T) {
	stmt, diags := parseSource(t, "var x = 5;")
	require.Empty(t, diags)

	decl, ok := stmt.(*ast.VarDeclStmt)
	require.True(t, ok, "got %T", stmt)
	assert.Equal(t, "x", decl.Name.Lexeme)
	assert.Equal(t, "5", ast.Print(decl.Initializer))
}

func TestVarDeclWithoutInitializer(t *testing.T) {
	stmt, diags := parseSource(t, "var x;")
	require.Empty(t, diags)

	decl, ok := stmt.(*ast.VarDeclStmt)
	require.True(t, ok, "got %T", stmt)
	assert.Nil(t, decl.Initializer)
}

func TestVarDeclErrors(t *testing.T) {
	stmt, diags := parseSource(t, "var = 5;")
	assert.Nil(t, stmt)
	require.Len(t, diags, 1)
	assert.Equal(t, "E2001", diags[0].Code)
	assert.Contains(t, diags[0].Message, "expected 'IDENT'")

	stmt, diags = parseSource(t, "var x = 5")
	assert.Nil(t, stmt)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "expected ';'")
}

func TestPrintStatement(t *testing.T) {
	stmt, diags := parseSource(t, "print 1 + 2;")
	require.Empty(t, diags)

	ps, ok := stmt.(*ast.PrintStmt)
	require.True(t, ok, "got %T", stmt)
	assert.Equal(t, "(+ 1 2)", ast.Print(ps.Expression))
}

func TestBlockStatement(t *testing.T) {
	stmt, diags := parseSource(t, "{ var x = 1; print x; };")
	require.Empty(t, diags)

	block, ok := stmt.(*ast.BlockStmt)
	require.True(t, ok, "got %T", stmt)
	require.Len(t, block.Stmts, 2)
}

func TestBlockRequiresTrailingSemicolon(t *testing.T) {
	stmt, diags := parseSource(t, "{ var x = 1; }")
	assert.Nil(t, stmt)
	require.Len(t, diags, 1)
	assert.Equal(t, "E2001", diags[0].Code)
	assert.Contains(t, diags[0].Message, "expected ';'")
	assert.Equal(t, "a block statement ends with ';'", diags[0].Hint)
}

func TestNestedBlocks(t *testing.T) {
	stmt, diags := parseSource(t, "{ { 1; }; };")
	require.Empty(t, diags)

	outer, ok := stmt.(*ast.BlockStmt)
	require.True(t, ok, "got %T", stmt)
	require.Len(t, outer.Stmts, 1)
	_, ok = outer.Stmts[0].(*ast.BlockStmt)
	assert.True(t, ok)
}

func TestAssignment(t *testing.T) {
	expr := parseExpr(t, "a = b = 3")

	outer, ok := expr.(*ast.AssignExpr)
	require.True(t, ok, "got %T", expr)
	assert.Equal(t, "a", outer.Name.Lexeme)

	inner, ok := outer.Value.(*ast.AssignExpr)
	require.True(t, ok, "got %T", outer.Value)
	assert.Equal(t, "b", inner.Name.Lexeme)
	assert.Equal(t, "3", ast.Print(inner.Value))
}

func TestInvalidAssignmentTarget(t *testing.T) {
	for _, src := range []string{"1 = 2;", "(a) = 3;", "a + b = 3;"} {
		stmt, diags := parseSource(t, src)
		assert.Nil(t, stmt, "source %q", src)
		require.Len(t, diags, 1, "source %q", src)
		assert.Equal(t, "E2003", diags[0].Code)
		assert.Contains(t, diags[0].Message, "invalid assignment target")
	}
}

func TestInvalidAssignmentTargetLine(t *testing.T) {
	// The error points at the '=' token's line.
	_, diags := parseSource(t, "a + b\n= 3;")
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Line)
}

func TestMissingCloseParenLine(t *testing.T) {
	// The error points at the opening paren's line, not the current token.
	stmt, diags := parseSource(t, "(1 +\n2;")
	assert.Nil(t, stmt)
	require.Len(t, diags, 1)
	assert.Equal(t, "E2001", diags[0].Code)
	assert.Contains(t, diags[0].Message, "expected ')'")
	assert.Equal(t, 1, diags[0].Line)
}

func TestRecoveryParsesLaterStatement(t *testing.T) {
	// The first attempt fails at '+'; after synchronizing past the ';' the
	// print statement parses and becomes the result.
	stmt, diags := parseSource(t, "+ 1; print 2;")

	require.Len(t, diags, 1)
	assert.Equal(t, "E2002", diags[0].Code)
	assert.Contains(t, diags[0].Message, "expect expression")

	ps, ok := stmt.(*ast.PrintStmt)
	require.True(t, ok, "got %T", stmt)
	assert.Equal(t, "2", ast.Print(ps.Expression))
}

func TestNoStatementParses(t *testing.T) {
	stmt, diags := parseSource(t, "1 +")
	assert.Nil(t, stmt)
	require.Len(t, diags, 1)
	assert.Equal(t, "E2002", diags[0].Code)
}

func TestEmptyInput(t *testing.T) {
	stmt, diags := parseSource(t, "")
	assert.Nil(t, stmt)
	assert.Empty(t, diags)
}

func TestExpectExpressionWithoutLine(t *testing.T) {
	// Tokens built by hand carry no line; the diagnostic falls back to 0.
	p := New([]token.Token{{Kind: token.PLUS, Lexeme: "+"}})
	stmt, diags := p.Parse()
	assert.Nil(t, stmt)
	require.Len(t, diags, 1)
	assert.Equal(t, 0, diags[0].Line)
}

// Package parser implements the syntax analysis for golox.
// It uses recursive descent, one method per grammar rule:
//
//	declaration := "var" IDENT ( "=" expression )? ";"
//	             | statement
//	statement   := "print" expression ";"
//	             | "{" declaration* "}" ";"
//	             | expression ";"
//	expression  := assignment
//	assignment  := IDENT "=" assignment | equality
//	equality    := comparison ( ( "==" | "!=" ) comparison )*
//	comparison  := term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term        := factor ( ( "+" | "-" ) factor )*
//	factor      := unary ( ( "*" | "/" ) unary )*
//	unary       := ( "!" | "-" ) unary | primary
//	primary     := NUMBER | STRING | "true" | "false" | "nil"
//	             | "(" expression ")" | IDENT
package parser

import (
	"errors"

	"golox/internal/ast"
	"golox/internal/diag"
	"golox/internal/token"
	"golox/internal/value"
)

// Parser performs syntax analysis on a stream of tokens.
type Parser struct {
	tokens []token.Token
	pos    int
	diags  []diag.Diagnostic
}

// New creates a new parser from a token slice. Comment and whitespace
// tokens carry no semantic value and are filtered out up front so they
// never disturb lookahead.
func New(tokens []token.Token) *Parser {
	clean := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.COMMENT || tok.Kind == token.WHITESPACE {
			continue
		}
		clean = append(clean, tok)
	}
	return &Parser{tokens: clean}
}

// Parse repeatedly attempts to parse one declaration, recovering from
// errors by synchronizing to the next statement boundary. The first
// declaration that parses successfully becomes the result; when every
// attempt fails the result is nil. All errors recorded along the way are
// returned as diagnostics.
func (p *Parser) Parse() (ast.Stmt, []diag.Diagnostic) {
	var final ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err == nil {
			final = stmt
			break
		}
		p.addErr(err)
		if !p.synchronize() {
			break
		}
	}
	return final, p.diags
}

// ---- navigation helpers ----

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekKind() token.Kind {
	return p.peek().Kind
}

func (p *Parser) previous() token.Token {
	if p.pos == 0 {
		return token.Token{}
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peekKind() == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	tok := p.peek()
	return tok, diag.Errorf("E2001", tok.Line, "expected '%s', got '%s'", kind, tok.Kind)
}

func (p *Parser) isAtEnd() bool {
	return p.peekKind() == token.EOF
}

func (p *Parser) addErr(err error) {
	var d diag.Diagnostic
	if errors.As(err, &d) {
		p.diags = append(p.diags, d)
		return
	}
	p.diags = append(p.diags, diag.Errorf("E2000", 0, "%s", err))
}

// ============================================================
// Error recovery
// ============================================================

// synchronize discards tokens until just past a semicolon or sitting on a
// keyword that starts a new statement. It reports whether a plausible
// resume point was found before end of input.
func (p *Parser) synchronize() bool {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return true
		}
		switch p.peekKind() {
		case token.KW_CLASS, token.KW_FUN, token.KW_VAR, token.KW_FOR,
			token.KW_IF, token.KW_WHILE, token.KW_PRINT, token.KW_RETURN:
			return true
		}
		p.advance()
	}
	return false
}

// ============================================================
// Declaration and statement parsing
// ============================================================

func (p *Parser) declaration() (ast.Stmt, error) {
	if p.check(token.KW_VAR) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *Parser) varDecl() (ast.Stmt, error) {
	kw := p.advance() // var
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.check(token.ASSIGN) {
		p.advance()
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.VarDeclStmt{
		StmtBase:    makeStmtBase(kw.Line),
		Name:        name,
		Initializer: init,
	}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch p.peekKind() {
	case token.KW_PRINT:
		return p.printStmt()
	case token.LBRACE:
		return p.blockStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) printStmt() (ast.Stmt, error) {
	kw := p.advance() // print
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{StmtBase: makeStmtBase(kw.Line), Expression: expr}, nil
}

func (p *Parser) blockStmt() (ast.Stmt, error) {
	lbrace := p.advance() // {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	if !p.check(token.SEMICOLON) {
		d := diag.Errorf("E2001", p.peek().Line, "expected ';', got '%s'", p.peekKind())
		d.Hint = "a block statement ends with ';'"
		return nil, d
	}
	p.advance()
	return &ast.BlockStmt{StmtBase: makeStmtBase(lbrace.Line), Stmts: stmts}, nil
}

func (p *Parser) exprStmt() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{StmtBase: makeStmtBase(expr.GetLine()), Expression: expr}, nil
}

// ============================================================
// Expression parsing
// ============================================================

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses an equality-or-higher expression and, when an '='
// follows, requires it to be a bare variable reference. Any other target
// is a syntax error reported at the '=' token's line.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	if p.check(token.ASSIGN) {
		eq := p.advance()
		val, err := p.assignment()
		if err != nil {
			return nil, err
		}
		target, ok := expr.(*ast.VariableExpr)
		if !ok {
			return nil, diag.Errorf("E2003", eq.Line, "invalid assignment target")
		}
		return &ast.AssignExpr{
			ExprBase: makeExprBase(target.Name.Line),
			Name:     target.Name,
			Value:    val,
		}, nil
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.EQ, token.NEQ) {
		op := p.advance()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{
			ExprBase: makeExprBase(op.Line),
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.GT, token.GTE, token.LT, token.LTE) {
		op := p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{
			ExprBase: makeExprBase(op.Line),
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.PLUS, token.MINUS) {
		op := p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{
			ExprBase: makeExprBase(op.Line),
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.STAR, token.SLASH) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{
			ExprBase: makeExprBase(op.Line),
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.BANG, token.MINUS) {
		op := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{
			ExprBase: makeExprBase(op.Line),
			Operator: op,
			Right:    operand,
		}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		return &ast.LiteralExpr{ExprBase: makeExprBase(tok.Line), Value: value.NumberVal(tok.Num)}, nil
	case token.STRING:
		p.advance()
		return &ast.LiteralExpr{ExprBase: makeExprBase(tok.Line), Value: value.StringVal(tok.Lexeme)}, nil
	case token.KW_TRUE:
		p.advance()
		return &ast.LiteralExpr{ExprBase: makeExprBase(tok.Line), Value: value.BoolVal(true)}, nil
	case token.KW_FALSE:
		p.advance()
		return &ast.LiteralExpr{ExprBase: makeExprBase(tok.Line), Value: value.BoolVal(false)}, nil
	case token.KW_NIL:
		p.advance()
		return &ast.LiteralExpr{ExprBase: makeExprBase(tok.Line), Value: value.NilVal{}}, nil
	case token.IDENT:
		p.advance()
		return &ast.VariableExpr{ExprBase: makeExprBase(tok.Line), Name: tok}, nil
	case token.LPAREN:
		lparen := p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		// A missing ')' is reported at the opening paren's line.
		if !p.check(token.RPAREN) {
			return nil, diag.Errorf("E2001", lparen.Line, "expected ')', got '%s'", p.peekKind())
		}
		p.advance()
		return &ast.GroupingExpr{ExprBase: makeExprBase(lparen.Line), Expression: inner}, nil
	default:
		return nil, diag.Errorf("E2002", tok.Line, "expect expression")
	}
}

// ---- node base helpers ----

func makeExprBase(line int) ast.ExprBase {
	return ast.ExprBase{NodeBase: ast.NodeBase{Line: line}}
}

func makeStmtBase(line int) ast.StmtBase {
	return ast.StmtBase{NodeBase: ast.NodeBase{Line: line}}
}

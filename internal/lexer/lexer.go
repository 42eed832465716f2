// Package lexer implements the lexical analysis (tokenization) for golox.
package lexer

import (
	"strconv"

	"golox/internal/diag"
	"golox/internal/token"
)

// Lexer tokenizes source code into a sequence of tokens.
type Lexer struct {
	source string

	pos  int // current read position in source
	line int // current line (1-based)

	tokens []token.Token
	diags  []diag.Diagnostic
}

// New creates a new Lexer for the given source text.
func New(source string) *Lexer {
	return &Lexer{source: source, line: 1}
}

// Tokenize scans the entire source and returns all tokens and diagnostics.
// Unrecognized characters and unterminated strings are recorded as
// diagnostics and scanning resumes with the next character; no token is
// emitted for them. An EOF token carrying the last line is always appended.
func (l *Lexer) Tokenize() ([]token.Token, []diag.Diagnostic) {
	for l.pos < len(l.source) {
		l.scanToken()
	}
	l.add(token.Token{Kind: token.EOF, Line: l.line})
	return l.tokens, l.diags
}

// ---- internal helpers ----

// peek returns the current character without advancing, or 0 if at end.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

// peekNext returns the character after current, or 0 if at end.
func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	return l.source[l.pos+1]
}

// advance consumes the current character and returns it.
func (l *Lexer) advance() byte {
	ch := l.source[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
	}
	return ch
}

// match consumes the current character if it equals expected.
func (l *Lexer) match(expected byte) bool {
	if l.pos >= len(l.source) || l.source[l.pos] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) add(tok token.Token) {
	l.tokens = append(l.tokens, tok)
}

// addError records a diagnostic error.
func (l *Lexer) addError(code string, line int, format string, args ...interface{}) {
	l.diags = append(l.diags, diag.Errorf(code, line, format, args...))
}

// ---- token reading ----

func (l *Lexer) scanToken() {
	ch := l.peek()
	switch {
	case isSpace(ch):
		l.readWhitespace()
	case ch == '/' && l.peekNext() == '/':
		l.readComment()
	case ch == '"':
		l.readString()
	case isDigit(ch):
		l.readNumber()
	case isIdentStart(ch):
		l.readIdentifier()
	default:
		l.readOperator()
	}
}

// readWhitespace reads a maximal run of whitespace into a single token.
// Whitespace tokens carry no line number.
func (l *Lexer) readWhitespace() {
	start := l.pos
	for l.pos < len(l.source) && isSpace(l.peek()) {
		l.advance()
	}
	l.add(token.Token{Kind: token.WHITESPACE, Lexeme: l.source[start:l.pos]})
}

// readComment reads from // to end of line. The newline itself is left for
// the following whitespace token. Comment tokens carry no line number.
func (l *Lexer) readComment() {
	start := l.pos
	for l.pos < len(l.source) && l.peek() != '\n' {
		l.advance()
	}
	l.add(token.Token{Kind: token.COMMENT, Lexeme: l.source[start:l.pos]})
}

// readString reads a string literal (double-quoted). The lexeme is the
// enclosed text without the quotes. Strings may span lines; the token
// carries the line on which the string ends.
func (l *Lexer) readString() {
	l.advance() // skip opening "
	start := l.pos
	for l.pos < len(l.source) && l.peek() != '"' {
		l.advance()
	}
	if l.pos >= len(l.source) {
		l.addError("E1002", l.line, "unterminated string")
		return
	}
	lexeme := l.source[start:l.pos]
	l.advance() // skip closing "
	l.add(token.Token{Kind: token.STRING, Lexeme: lexeme, Line: l.line})
}

// readNumber reads a number literal. A decimal point is consumed only when
// the character after it is a digit, so "32." scans as NUMBER(32) DOT.
func (l *Lexer) readNumber() {
	line := l.line
	start := l.pos

	for l.pos < len(l.source) && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // skip '.'
		for l.pos < len(l.source) && isDigit(l.peek()) {
			l.advance()
		}
	}

	lexeme := l.source[start:l.pos]
	f, err := strconv.ParseFloat(lexeme, 32)
	if err != nil {
		l.addError("E1003", line, "invalid number literal %q", lexeme)
		return
	}
	l.add(token.Token{Kind: token.NUMBER, Lexeme: lexeme, Num: float32(f), Line: line})
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier() {
	line := l.line
	start := l.pos

	l.advance()
	for l.pos < len(l.source) && isIdentPart(l.peek()) {
		l.advance()
	}

	lexeme := l.source[start:l.pos]
	l.add(token.Token{Kind: token.LookupIdent(lexeme), Lexeme: lexeme, Line: line})
}

// readOperator reads an operator or delimiter token.
func (l *Lexer) readOperator() {
	line := l.line
	ch := l.advance()

	switch ch {
	case '(':
		l.add(token.Token{Kind: token.LPAREN, Lexeme: "(", Line: line})
	case ')':
		l.add(token.Token{Kind: token.RPAREN, Lexeme: ")", Line: line})
	case '{':
		l.add(token.Token{Kind: token.LBRACE, Lexeme: "{", Line: line})
	case '}':
		l.add(token.Token{Kind: token.RBRACE, Lexeme: "}", Line: line})
	case ',':
		l.add(token.Token{Kind: token.COMMA, Lexeme: ",", Line: line})
	case '.':
		l.add(token.Token{Kind: token.DOT, Lexeme: ".", Line: line})
	case ';':
		l.add(token.Token{Kind: token.SEMICOLON, Lexeme: ";", Line: line})
	case '+':
		l.add(token.Token{Kind: token.PLUS, Lexeme: "+", Line: line})
	case '-':
		l.add(token.Token{Kind: token.MINUS, Lexeme: "-", Line: line})
	case '*':
		l.add(token.Token{Kind: token.STAR, Lexeme: "*", Line: line})
	case '/':
		l.add(token.Token{Kind: token.SLASH, Lexeme: "/", Line: line})
	case '!':
		if l.match('=') {
			l.add(token.Token{Kind: token.NEQ, Lexeme: "!=", Line: line})
		} else {
			l.add(token.Token{Kind: token.BANG, Lexeme: "!", Line: line})
		}
	case '=':
		if l.match('=') {
			l.add(token.Token{Kind: token.EQ, Lexeme: "==", Line: line})
		} else {
			l.add(token.Token{Kind: token.ASSIGN, Lexeme: "=", Line: line})
		}
	case '<':
		if l.match('=') {
			l.add(token.Token{Kind: token.LTE, Lexeme: "<=", Line: line})
		} else {
			l.add(token.Token{Kind: token.LT, Lexeme: "<", Line: line})
		}
	case '>':
		if l.match('=') {
			l.add(token.Token{Kind: token.GTE, Lexeme: ">=", Line: line})
		} else {
			l.add(token.Token{Kind: token.GT, Lexeme: ">", Line: line})
		}
	default:
		l.addError("E1001", line, "unknown token '%c'", ch)
	}
}

// ---- character classification ----

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isIdentPart classifies identifier continuation characters. An underscore
// may start an identifier but does not continue one.
func isIdentPart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || isDigit(ch)
}

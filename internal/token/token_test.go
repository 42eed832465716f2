package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	assert := assert.New(t)

	for lexeme, kind := range keywords {
		assert.Equal(kind, LookupIdent(lexeme), "keyword %q", lexeme)
	}
	assert.Equal(IDENT, LookupIdent("foo"))
	assert.Equal(IDENT, LookupIdent("printer"))
	assert.Equal(IDENT, LookupIdent("Var"))
}

func TestIsKeyword(t *testing.T) {
	assert := assert.New(t)

	assert.True(KW_AND.IsKeyword())
	assert.True(KW_PRINT.IsKeyword())
	assert.True(KW_WHILE.IsKeyword())

	assert.False(EOF.IsKeyword())
	assert.False(IDENT.IsKeyword())
	assert.False(ASSIGN.IsKeyword())
	assert.False(SEMICOLON.IsKeyword())
}

func TestKindString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("NUMBER", NUMBER.String())
	assert.Equal("=", ASSIGN.String())
	assert.Equal("==", EQ.String())
	assert.Equal("print", KW_PRINT.String())
	assert.Equal("EOF", EOF.String())
	assert.Equal("Kind(999)", Kind(999).String())
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: NUMBER, Lexeme: "32", Num: 32, Line: 1}
	assert.Equal(t, `NUMBER "32" line 1`, tok.String())
}

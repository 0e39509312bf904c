package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeOperatorsAndDelimiters(t *testing.T) {
	source := `let x = 1 + 2 * 3 ** 2 / 4 % 5 - 6; x == 1 != 2 <= 3 >= 4 and not false`
	tokens, err := Tokenize(source)
	require.NoError(t, err)

	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}

	assert.Equal(t, []Kind{
		LET, IDENTIFIER, ASSIGN, INTEGER, PLUS, INTEGER, ASTERISK, INTEGER, POWER,
		INTEGER, SLASH, INTEGER, PERCENT, INTEGER, MINUS, INTEGER, SEMICOLON,
		IDENTIFIER, EQ, INTEGER, NOT_EQ, INTEGER, LT_EQ, INTEGER, GT_EQ, INTEGER,
		AND, NOT, FALSE, EOF,
	}, kinds)
}

func TestTokenizeStringEscapes(t *testing.T) {
	tokens, err := Tokenize(`"hi\nthere\t\"q\""`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, STRING, tokens[0].Kind)
	assert.Equal(t, "hi\nthere\t\"q\"", tokens[0].Value)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated string literal")
}

func TestTokenizeNumberGrammar(t *testing.T) {
	tokens, err := Tokenize(`3.14 42 7.`)
	require.NoError(t, err)
	require.Len(t, tokens, 5) // FLOAT INTEGER INTEGER DOT EOF
	assert.Equal(t, FLOAT, tokens[0].Kind)
	assert.Equal(t, 3.14, tokens[0].Value)
	assert.Equal(t, INTEGER, tokens[1].Kind)
	assert.Equal(t, INTEGER, tokens[2].Kind)
	assert.Equal(t, DOT, tokens[3].Kind)
}

func TestTokenizeKeywordsAndIdentifiers(t *testing.T) {
	tokens, err := Tokenize(`fn return if else while for in break continue true false null letx`)
	require.NoError(t, err)
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{
		FN, RETURN, IF, ELSE, WHILE, FOR, IN, BREAK, CONTINUE, TRUE, FALSE, NULL,
		IDENTIFIER, EOF,
	}, kinds)
}

func TestTokenizeComment(t *testing.T) {
	tokens, err := Tokenize("1 # a comment\n+ 2")
	require.NoError(t, err)
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{INTEGER, PLUS, INTEGER, EOF}, kinds)
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("let x\n= 1")
	require.NoError(t, err)
	require.True(t, len(tokens) >= 4)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)
	assert.Equal(t, 2, tokens[2].Line) // ASSIGN on the second line
	assert.Equal(t, 1, tokens[2].Column)
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("1 @ 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected character")
}

func TestTokenizeMultiCharOperators(t *testing.T) {
	tokens, err := Tokenize("+= -= -> ** == != <= >=")
	require.NoError(t, err)
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{
		PLUS_ASSIGN, MINUS_ASSIGN, ARROW, POWER, EQ, NOT_EQ, LT_EQ, GT_EQ, EOF,
	}, kinds)
}

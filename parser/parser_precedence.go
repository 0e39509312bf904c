package parser

import "github.com/limem01/kira-lang/lexer"

type precedence int

const (
	LOWEST precedence = iota
	OR_PREC
	AND_PREC
	EQUALS
	COMPARE
	SUM
	PRODUCT
	POWER_PREC
	PREFIX
	CALL
	INDEX
)

var precedences = map[lexer.Kind]precedence{
	lexer.OR:       OR_PREC,
	lexer.AND:      AND_PREC,
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       COMPARE,
	lexer.GT:       COMPARE,
	lexer.LT_EQ:    COMPARE,
	lexer.GT_EQ:    COMPARE,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.ASTERISK: PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.PERCENT:  PRODUCT,
	lexer.POWER:    POWER_PREC,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
}

// getPrecedence returns the infix binding power of kind, or LOWEST if
// kind has no infix role.
func getPrecedence(kind lexer.Kind) precedence {
	if p, ok := precedences[kind]; ok {
		return p
	}
	return LOWEST
}

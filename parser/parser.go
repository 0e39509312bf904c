package parser

import (
	"fmt"

	"github.com/limem01/kira-lang/lexer"
)

type (
	prefixParseFunc func() (Expression, error)
	infixParseFunc  func(left Expression) (Expression, error)
)

// Parser is a Pratt (top-down operator precedence) parser: it consumes
// tokens one at a time with a single token of lookahead and dispatches
// through per-kind prefix/infix function tables.
type Parser struct {
	tokens []lexer.Token
	pos    int

	curr lexer.Token
	peek lexer.Token

	prefixFuncs map[lexer.Kind]prefixParseFunc
	infixFuncs  map[lexer.Kind]infixParseFunc
}

// Parse tokenizes nothing itself; it consumes an already-tokenized
// source and produces a Program.
func Parse(tokens []lexer.Token) (*Program, error) {
	p := &Parser{tokens: tokens}
	p.prefixFuncs = make(map[lexer.Kind]prefixParseFunc)
	p.infixFuncs = make(map[lexer.Kind]infixParseFunc)
	p.registerPrefixFuncs()
	p.registerInfixFuncs()

	if len(tokens) == 0 {
		tokens = []lexer.Token{{Kind: lexer.EOF}}
		p.tokens = tokens
	}
	p.pos = 0
	p.curr = p.tokenAt(0)
	p.peek = p.tokenAt(1)

	program := &Program{}
	for p.curr.Kind != lexer.EOF {
		if p.curr.Kind == lexer.SEMICOLON {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

func (p *Parser) tokenAt(offset int) lexer.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.tokens[i]
}

func (p *Parser) advance() {
	p.pos++
	p.curr = p.tokenAt(0)
	p.peek = p.tokenAt(1)
}

func (p *Parser) curIs(kind lexer.Kind) bool  { return p.curr.Kind == kind }
func (p *Parser) peekIs(kind lexer.Kind) bool { return p.peek.Kind == kind }

// expect checks that curr is kind, advances past it, and errors
// otherwise with an expected-kind message naming the offending token.
func (p *Parser) expect(kind lexer.Kind) error {
	if !p.curIs(kind) {
		return p.errorf("expected %s, got %s (%q)", kind, p.curr.Kind, p.curr.Literal)
	}
	p.advance()
	return nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...), Line: p.curr.Line, Column: p.curr.Column}
}

func (p *Parser) registerPrefixFuncs() {
	p.prefixFuncs[lexer.INTEGER] = p.parseIntegerLiteral
	p.prefixFuncs[lexer.FLOAT] = p.parseFloatLiteral
	p.prefixFuncs[lexer.STRING] = p.parseStringLiteral
	p.prefixFuncs[lexer.TRUE] = p.parseBooleanLiteral
	p.prefixFuncs[lexer.FALSE] = p.parseBooleanLiteral
	p.prefixFuncs[lexer.NULL] = p.parseNullLiteral
	p.prefixFuncs[lexer.IDENTIFIER] = p.parseIdentifier
	p.prefixFuncs[lexer.LPAREN] = p.parseGroupedExpression
	p.prefixFuncs[lexer.LBRACKET] = p.parseArrayLiteral
	p.prefixFuncs[lexer.LBRACE] = p.parseDictLiteral
	p.prefixFuncs[lexer.IF] = p.parseIfExpression
	p.prefixFuncs[lexer.FN] = p.parseFunctionLiteral
	p.prefixFuncs[lexer.MINUS] = p.parseUnaryExpression
	p.prefixFuncs[lexer.NOT] = p.parseUnaryExpression
}

func (p *Parser) registerInfixFuncs() {
	binaryKinds := []lexer.Kind{
		lexer.PLUS, lexer.MINUS, lexer.ASTERISK, lexer.SLASH, lexer.PERCENT,
		lexer.POWER, lexer.EQ, lexer.NOT_EQ, lexer.LT, lexer.GT, lexer.LT_EQ,
		lexer.GT_EQ, lexer.AND, lexer.OR,
	}
	for _, k := range binaryKinds {
		p.infixFuncs[k] = p.parseBinaryExpression
	}
	p.infixFuncs[lexer.LPAREN] = p.parseCallExpression
	p.infixFuncs[lexer.LBRACKET] = p.parseIndexExpression
}

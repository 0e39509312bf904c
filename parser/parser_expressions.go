package parser

import (
	"strconv"

	"github.com/limem01/kira-lang/lexer"
)

// parseExpression is the Pratt engine: parse a prefix form, then
// repeatedly fold in infix operators whose precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec precedence) (Expression, error) {
	prefix, ok := p.prefixFuncs[p.curr.Kind]
	if !ok {
		return nil, p.errorf("unexpected token %s (%q), expected an expression", p.curr.Kind, p.curr.Literal)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for !p.curIs(lexer.SEMICOLON) && minPrec < getPrecedence(p.curr.Kind) {
		infix, ok := p.infixFuncs[p.curr.Kind]
		if !ok {
			return left, nil
		}
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseIntegerLiteral() (Expression, error) {
	tok := p.curr
	v, ok := tok.Value.(int64)
	if !ok {
		parsed, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid integer literal %q", tok.Literal)
		}
		v = parsed
	}
	p.advance()
	return &IntegerLiteral{Token: tok, Value: v}, nil
}

func (p *Parser) parseFloatLiteral() (Expression, error) {
	tok := p.curr
	v, ok := tok.Value.(float64)
	if !ok {
		parsed, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, p.errorf("invalid float literal %q", tok.Literal)
		}
		v = parsed
	}
	p.advance()
	return &FloatLiteral{Token: tok, Value: v}, nil
}

func (p *Parser) parseStringLiteral() (Expression, error) {
	tok := p.curr
	v, _ := tok.Value.(string)
	p.advance()
	return &StringLiteral{Token: tok, Value: v}, nil
}

func (p *Parser) parseBooleanLiteral() (Expression, error) {
	tok := p.curr
	p.advance()
	return &BooleanLiteral{Token: tok, Value: tok.Kind == lexer.TRUE}, nil
}

func (p *Parser) parseNullLiteral() (Expression, error) {
	tok := p.curr
	p.advance()
	return &NullLiteral{Token: tok}, nil
}

func (p *Parser) parseIdentifier() (Expression, error) {
	tok := p.curr
	p.advance()
	return &Identifier{Token: tok, Name: tok.Literal}, nil
}

func (p *Parser) parseGroupedExpression() (Expression, error) {
	p.advance() // consume '('
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseUnaryExpression() (Expression, error) {
	tok := p.curr
	op := tok.Literal
	p.advance()
	operand, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	return &UnaryExpression{Token: tok, Operator: op, Operand: operand}, nil
}

func (p *Parser) parseBinaryExpression(left Expression) (Expression, error) {
	tok := p.curr
	op := tok.Literal
	prec := getPrecedence(tok.Kind)
	p.advance()
	// ** is right-associative: recurse at (prec - 1) so a following **
	// binds to the right operand instead of folding leftward.
	rightMinPrec := prec
	if tok.Kind == lexer.POWER {
		rightMinPrec = prec - 1
	}
	right, err := p.parseExpression(rightMinPrec)
	if err != nil {
		return nil, err
	}
	return &BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}, nil
}

func (p *Parser) parseCallExpression(callee Expression) (Expression, error) {
	tok := p.curr
	args, err := p.parseExpressionList(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	return &CallExpression{Token: tok, Callee: callee, Args: args}, nil
}

func (p *Parser) parseIndexExpression(left Expression) (Expression, error) {
	tok := p.curr
	p.advance() // consume '['
	index, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &IndexExpression{Token: tok, Left: left, Index: index}, nil
}

// parseExpressionList parses a comma-separated list up to and
// including end, accepting a trailing comma before end.
func (p *Parser) parseExpressionList(end lexer.Kind) ([]Expression, error) {
	p.advance() // consume the opening delimiter
	var list []Expression
	if p.curIs(end) {
		p.advance()
		return list, nil
	}
	for {
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
		if p.curIs(lexer.COMMA) {
			p.advance()
			if p.curIs(end) {
				p.advance()
				return list, nil
			}
			continue
		}
		break
	}
	if err := p.expect(end); err != nil {
		return nil, err
	}
	return list, nil
}

func (p *Parser) parseArrayLiteral() (Expression, error) {
	tok := p.curr
	elems, err := p.parseExpressionList(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}
	return &ArrayLiteral{Token: tok, Elements: elems}, nil
}

func (p *Parser) parseDictLiteral() (Expression, error) {
	tok := p.curr
	p.advance() // consume '{'
	var pairs []DictPair
	if p.curIs(lexer.RBRACE) {
		p.advance()
		return &DictLiteral{Token: tok, Pairs: pairs}, nil
	}
	for {
		key, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, DictPair{Key: key, Value: value})
		if p.curIs(lexer.COMMA) {
			p.advance()
			if p.curIs(lexer.RBRACE) {
				p.advance()
				return &DictLiteral{Token: tok, Pairs: pairs}, nil
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &DictLiteral{Token: tok, Pairs: pairs}, nil
}

func (p *Parser) parseIfExpression() (Expression, error) {
	tok := p.curr
	p.advance() // consume 'if'
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	consequence, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	ifExpr := &IfExpression{Token: tok, Condition: cond, Consequence: consequence}
	if p.curIs(lexer.ELSE) {
		p.advance()
		alt, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		ifExpr.Alternative = alt
	}
	return ifExpr, nil
}

func (p *Parser) parseFunctionLiteral() (Expression, error) {
	tok := p.curr
	p.advance() // consume 'fn'
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &FunctionLiteral{Token: tok, Params: params, Body: body}, nil
}

func (p *Parser) parseParamList() ([]string, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	if p.curIs(lexer.RPAREN) {
		p.advance()
		return params, nil
	}
	seen := make(map[string]bool)
	for {
		if !p.curIs(lexer.IDENTIFIER) {
			return nil, p.errorf("expected parameter name, got %s (%q)", p.curr.Kind, p.curr.Literal)
		}
		if seen[p.curr.Literal] {
			return nil, p.errorf("duplicate parameter name %q", p.curr.Literal)
		}
		seen[p.curr.Literal] = true
		params = append(params, p.curr.Literal)
		p.advance()
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

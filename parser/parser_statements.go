package parser

import "github.com/limem01/kira-lang/lexer"

func (p *Parser) parseStatement() (Statement, error) {
	switch p.curr.Kind {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.CONST:
		return p.parseConstStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.BREAK:
		tok := p.curr
		p.advance()
		p.skipSemicolons()
		return &BreakStatement{Token: tok}, nil
	case lexer.CONTINUE:
		tok := p.curr
		p.advance()
		p.skipSemicolons()
		return &ContinueStatement{Token: tok}, nil
	case lexer.FN:
		if p.peekIs(lexer.IDENTIFIER) {
			return p.parseFunctionDeclaration()
		}
		return p.parseExpressionOrAssignStatement()
	default:
		return p.parseExpressionOrAssignStatement()
	}
}

func (p *Parser) skipSemicolons() {
	for p.curIs(lexer.SEMICOLON) {
		p.advance()
	}
}

func (p *Parser) parseLetStatement() (Statement, error) {
	tok := p.curr
	p.advance() // consume 'let'
	if !p.curIs(lexer.IDENTIFIER) {
		return nil, p.errorf("expected identifier after let, got %s (%q)", p.curr.Kind, p.curr.Literal)
	}
	name := p.curr.Literal
	p.advance()
	if err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolons()
	return &LetStatement{Token: tok, Name: name, Value: value}, nil
}

func (p *Parser) parseConstStatement() (Statement, error) {
	tok := p.curr
	p.advance() // consume 'const'
	if !p.curIs(lexer.IDENTIFIER) {
		return nil, p.errorf("expected identifier after const, got %s (%q)", p.curr.Kind, p.curr.Literal)
	}
	name := p.curr.Literal
	p.advance()
	if err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolons()
	return &ConstStatement{Token: tok, Name: name, Value: value}, nil
}

func (p *Parser) parseReturnStatement() (Statement, error) {
	tok := p.curr
	p.advance() // consume 'return'
	if p.curIs(lexer.RBRACE) || p.curIs(lexer.SEMICOLON) || p.curIs(lexer.EOF) {
		p.skipSemicolons()
		return &ReturnStatement{Token: tok}, nil
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolons()
	return &ReturnStatement{Token: tok, Value: value}, nil
}

func (p *Parser) parseWhileStatement() (Statement, error) {
	tok := p.curr
	p.advance() // consume 'while'
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &WhileStatement{Token: tok, Condition: cond, Body: body}, nil
}

func (p *Parser) parseForStatement() (Statement, error) {
	tok := p.curr
	p.advance() // consume 'for'
	if !p.curIs(lexer.IDENTIFIER) {
		return nil, p.errorf("expected identifier after for, got %s (%q)", p.curr.Kind, p.curr.Literal)
	}
	name := p.curr.Literal
	p.advance()
	if err := p.expect(lexer.IN); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &ForStatement{Token: tok, Name: name, Iterable: iterable, Body: body}, nil
}

func (p *Parser) parseFunctionDeclaration() (Statement, error) {
	tok := p.curr
	p.advance() // consume 'fn'
	name := p.curr.Literal
	p.advance() // consume identifier
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &FunctionDeclaration{Token: tok, Name: name, Params: params, Body: body}, nil
}

// parseBlockStatement parses `{` stmt* `}`. Used only by the statement
// forms that expect a block (if/while/for/fn); a bare `{` in any other
// position is a dict literal, per the disambiguation rule.
func (p *Parser) parseBlockStatement() (*BlockStatement, error) {
	tok := p.curr
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	block := &BlockStatement{Token: tok}
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.SEMICOLON) {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

// parseExpressionOrAssignStatement parses an expression, then decides
// whether the current token turns it into an assignment (plain or
// index) or leaves it as a bare expression-statement.
func (p *Parser) parseExpressionOrAssignStatement() (Statement, error) {
	tok := p.curr
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	switch p.curr.Kind {
	case lexer.ASSIGN, lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN:
		op := p.curr.Literal
		p.advance()
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		p.skipSemicolons()
		switch target := expr.(type) {
		case *Identifier:
			return &AssignStatement{Token: tok, Name: target.Name, Operator: op, Value: value}, nil
		case *IndexExpression:
			return &IndexAssignStatement{Token: tok, Left: target.Left, Index: target.Index, Operator: op, Value: value}, nil
		default:
			return nil, &Error{Message: "invalid assignment target", Line: tok.Line, Column: tok.Column}
		}
	default:
		p.skipSemicolons()
		return &ExpressionStatement{Token: tok, Expression: expr}, nil
	}
}

package parser

import "github.com/glint-lang/glint/internal/lexer"

func (p *Parser) parseExpression() (Expr, error) {
	return p.parseAssignment()
}

var assignOps = map[lexer.Kind]bool{
	lexer.ASSIGN:     true,
	lexer.PLUS_EQ:    true,
	lexer.MINUS_EQ:   true,
	lexer.STAR_EQ:    true,
	lexer.SLASH_EQ:   true,
	lexer.PERCENT_EQ: true,
	lexer.CARET_EQ:   true,
}

func (p *Parser) parseAssignment() (Expr, error) {
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !assignOps[p.cur.Kind] {
		return expr, nil
	}
	op := p.cur.Kind
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	variable, ok := expr.(*VariableExpr)
	if !ok {
		return nil, newError(tok.Line, tok.Column, "invalid assignment target")
	}
	return &AssignExpr{pos: variable.pos, Name: variable.Name, Op: op, Right: rhs}, nil
}

func (p *Parser) parseOr() (Expr, error) {
	return p.parseBinaryLevel(p.parseAnd, lexer.OR)
}

func (p *Parser) parseAnd() (Expr, error) {
	return p.parseBinaryLevel(p.parseEquality, lexer.AND)
}

func (p *Parser) parseEquality() (Expr, error) {
	return p.parseBinaryLevel(p.parseComparison, lexer.EQ, lexer.NEQ)
}

func (p *Parser) parseComparison() (Expr, error) {
	return p.parseBinaryLevel(p.parseTerm, lexer.LT, lexer.LE, lexer.GT, lexer.GE)
}

func (p *Parser) parseTerm() (Expr, error) {
	return p.parseBinaryLevel(p.parseFactor, lexer.PLUS, lexer.MINUS)
}

func (p *Parser) parseFactor() (Expr, error) {
	return p.parseBinaryLevel(p.parseUnary, lexer.STAR, lexer.SLASH, lexer.PERCENT, lexer.CARET)
}

// parseBinaryLevel implements one left-associative precedence level: it
// parses one operand via next, then repeatedly consumes an operator in ops
// followed by another operand.
func (p *Parser) parseBinaryLevel(next func() (Expr, error), ops ...lexer.Kind) (Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.isOneOf(ops) {
		op := p.cur.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.EOF {
			return nil, p.errorf("unexpected end of input")
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left := expr
		line, column := left.Position()
		expr = &BinaryExpr{pos: pos{Line: line, Column: column}, Op: op, Left: left, Right: right}
	}
	return expr, nil
}

func (p *Parser) isOneOf(kinds []lexer.Kind) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

var unaryOps = map[lexer.Kind]bool{
	lexer.NOT:   true,
	lexer.MINUS: true,
	lexer.PLUS:  true,
}

func (p *Parser) parseUnary() (Expr, error) {
	if unaryOps[p.cur.Kind] {
		op := p.cur.Kind
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{pos: posOf(tok), Op: op, Operand: operand}, nil
	}
	return p.parseCallable()
}

// parseCallable parses a primary expression followed by any number of call,
// index, and slice suffixes.
func (p *Parser) parseCallable() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Kind {
		case lexer.LPAREN:
			expr, err = p.finishCall(expr)
		case lexer.LBRACK:
			expr, err = p.finishIndexOrSlice(expr)
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil { // consume "("
		return nil, err
	}
	var args []Expr
	if p.cur.Kind != lexer.RPAREN {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.cur.Kind == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return &CallExpr{pos: posOf(tok), Callee: callee, Args: args}, nil
}

// finishIndexOrSlice parses "[expr]", "[expr:expr?]", or "[:expr]" following
// an already-parsed object expression.
func (p *Parser) finishIndexOrSlice(object Expr) (Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil { // consume "["
		return nil, err
	}

	if p.cur.Kind == lexer.COLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var to Expr
		if p.cur.Kind != lexer.RBRACK {
			var err error
			to, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(lexer.RBRACK); err != nil {
			return nil, err
		}
		return &SliceExpr{pos: posOf(tok), Object: object, To: to}, nil
	}

	from, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == lexer.COLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var to Expr
		if p.cur.Kind != lexer.RBRACK {
			to, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(lexer.RBRACK); err != nil {
			return nil, err
		}
		return &SliceExpr{pos: posOf(tok), Object: object, From: from, To: to}, nil
	}

	if _, err := p.expect(lexer.RBRACK); err != nil {
		return nil, err
	}
	return &IndexExpr{pos: posOf(tok), Object: object, Index: from}, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.cur
	switch tok.Kind {
	case lexer.NUMBER:
		val, err := parseNumberLiteral(tok.Lexeme)
		if err != nil {
			return nil, newError(tok.Line, tok.Column, "invalid number literal %q", tok.Lexeme)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &NumberExpr{pos: posOf(tok), Value: val}, nil
	case lexer.STRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &StringExpr{pos: posOf(tok), Value: tok.Lexeme}, nil
	case lexer.BOOL:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoolExpr{pos: posOf(tok), Value: tok.Lexeme == "true"}, nil
	case lexer.NIL:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &NilExpr{pos: posOf(tok)}, nil
	case lexer.IDENT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &VariableExpr{pos: posOf(tok), Name: tok.Lexeme}, nil
	case lexer.EOF:
		return nil, p.errorf("unexpected end of input")
	default:
		return p.parseComplexPrimary()
	}
}

// parseComplexPrimary handles the primary forms that span more than one
// token: array literals, function literals, and parenthesized expressions.
func (p *Parser) parseComplexPrimary() (Expr, error) {
	tok := p.cur
	switch tok.Kind {
	case lexer.LBRACK:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var elements []Expr
		for p.cur.Kind != lexer.RBRACK {
			el, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
			if p.cur.Kind != lexer.COMMA {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(lexer.RBRACK); err != nil {
			return nil, err
		}
		return &ListExpr{pos: posOf(tok), Elements: elements}, nil

	case lexer.FUNCTION:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		var params []string
		if p.cur.Kind != lexer.RPAREN {
			for {
				if p.cur.Kind != lexer.IDENT {
					return nil, p.errorf("expected parameter name, got %s %q", p.cur.Kind, p.cur.Lexeme)
				}
				params = append(params, p.cur.Lexeme)
				if err := p.advance(); err != nil {
					return nil, err
				}
				if p.cur.Kind != lexer.COMMA {
					break
				}
				if err := p.advance(); err != nil {
					return nil, err
				}
			}
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		body, err := p.parseBlock(lexer.END)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.END); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.FUNCTION); err != nil {
			return nil, err
		}
		return &FunctionExpr{pos: posOf(tok), Params: params, Body: body}, nil

	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.errorf("unexpected token %s %q", tok.Kind, tok.Lexeme)
	}
}

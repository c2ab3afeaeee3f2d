package parser

import "github.com/glint-lang/glint/internal/lexer"

// parseStatement dispatches on the current token's keyword; anything else is
// parsed as a bare expression statement.
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.cur.Kind {
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.BREAK:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BreakStmt{}, nil
	case lexer.CONTINUE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ContinueStmt{}, nil
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ExprStmt{X: expr}, nil
	}
}

// parseBlock parses statements until the current token is one of stop, which
// is never consumed. Running off the end of input is a SyntaxError.
func (p *Parser) parseBlock(stop ...lexer.Kind) ([]Stmt, error) {
	var stmts []Stmt
	for !p.atStop(stop) {
		if p.cur.Kind == lexer.EOF {
			return nil, p.errorf("unexpected end of input")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) atStop(stop []lexer.Kind) bool {
	for _, k := range stop {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

// parseIf parses "if cond then block (else if cond then block)* (else
// block)? end if". Chained "else if" arms are represented as a single nested
// IfStmt inside the parent's Else slice.
func (p *Parser) parseIf() (Stmt, error) {
	if err := p.advance(); err != nil { // consume "if"
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.THEN); err != nil {
		return nil, err
	}
	thenBranch, err := p.parseBlock(lexer.ELSE, lexer.END)
	if err != nil {
		return nil, err
	}

	head := &IfStmt{Cond: cond, Then: thenBranch}
	current := head

	for p.cur.Kind == lexer.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.IF {
			if err := p.advance(); err != nil {
				return nil, err
			}
			elseCond, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.THEN); err != nil {
				return nil, err
			}
			elseThen, err := p.parseBlock(lexer.ELSE, lexer.END)
			if err != nil {
				return nil, err
			}
			nested := &IfStmt{Cond: elseCond, Then: elseThen}
			current.Else = []Stmt{nested}
			current = nested
		} else {
			elseBranch, err := p.parseBlock(lexer.END)
			if err != nil {
				return nil, err
			}
			current.Else = elseBranch
			break
		}
	}

	if _, err := p.expect(lexer.END); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IF); err != nil {
		return nil, err
	}
	return head, nil
}

func (p *Parser) parseWhile() (Stmt, error) {
	if err := p.advance(); err != nil { // consume "while"
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock(lexer.END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.WHILE); err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (Stmt, error) {
	if err := p.advance(); err != nil { // consume "for"
		return nil, err
	}
	if p.cur.Kind != lexer.IDENT {
		return nil, p.errorf("expected identifier after 'for', got %s %q", p.cur.Kind, p.cur.Lexeme)
	}
	name := p.cur.Lexeme
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock(lexer.END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.FOR); err != nil {
		return nil, err
	}
	return &ForStmt{Var: name, Iterable: iterable, Body: body}, nil
}

// parseReturn parses "return expr?". A following "end" or end-of-input means
// the value is omitted; anything else starts a value expression.
func (p *Parser) parseReturn() (Stmt, error) {
	if err := p.advance(); err != nil { // consume "return"
		return nil, err
	}
	if p.cur.Kind == lexer.END || p.cur.Kind == lexer.EOF {
		return &ReturnStmt{}, nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ReturnStmt{Value: value}, nil
}

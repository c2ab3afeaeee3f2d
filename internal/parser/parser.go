package parser

import (
	"strconv"

	"github.com/glint-lang/glint/internal/lexer"
)

// Parser is a one-token-lookahead recursive-descent parser over a
// lexer.Lexer. It fails fast on the first unrecoverable problem with a
// classified *Error (SyntaxError).
type Parser struct {
	lex *lexer.Lexer
	cur lexer.Token
}

// New creates a Parser over src. It also constructs the Lexer, so a
// LexicalError surfacing before any token is produced is returned here.
func New(src string) (*Parser, error) {
	lex, err := lexer.New(src)
	if err != nil {
		return nil, err
	}
	return &Parser{lex: lex, cur: lex.PeekCurrent()}, nil
}

// Parse consumes the whole token stream and returns the top-level statement
// list (program := statement*).
func (p *Parser) Parse() ([]Stmt, error) {
	var stmts []Stmt
	for p.cur.Kind != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Advance()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.cur.Kind == kind
}

// expect verifies the current token has the given kind, consumes it, and
// returns it; otherwise it fails with a SyntaxError.
func (p *Parser) expect(kind lexer.Kind) (lexer.Token, error) {
	if p.cur.Kind != kind {
		return lexer.Token{}, newError(p.cur.Line, p.cur.Column,
			"expected %s, got %s %q", kind, p.cur.Kind, p.cur.Lexeme)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return newError(p.cur.Line, p.cur.Column, format, args...)
}

func parseNumberLiteral(lit string) (float64, error) {
	return strconv.ParseFloat(lit, 64)
}

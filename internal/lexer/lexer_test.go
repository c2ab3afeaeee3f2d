package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains a Lexer into a slice of (Kind, Lexeme) pairs, stopping at EOF.
func collect(t *testing.T, src string) []Token {
	t.Helper()
	lex, err := New(src)
	require.NoError(t, err)

	var toks []Token
	tok := lex.PeekCurrent()
	for tok.Kind != EOF {
		toks = append(toks, tok)
		tok, err = lex.Advance()
		require.NoError(t, err)
	}
	return toks
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexer_Operators(t *testing.T) {
	tests := []struct {
		input string
		want  []Kind
	}{
		{"+ - * / %", []Kind{PLUS, MINUS, STAR, SLASH, PERCENT}},
		{"= == != <= >= < > ^", []Kind{ASSIGN, EQ, NEQ, LE, GE, LT, GT, CARET}},
		{"+= -= *= /= %= ^=", []Kind{PLUS_EQ, MINUS_EQ, STAR_EQ, SLASH_EQ, PERCENT_EQ, CARET_EQ}},
		{"( ) [ ] , :", []Kind{LPAREN, RPAREN, LBRACK, RBRACK, COMMA, COLON}},
	}
	for _, tt := range tests {
		toks := collect(t, tt.input)
		assert.Equal(t, tt.want, kinds(toks), tt.input)
	}
}

func TestLexer_Keywords(t *testing.T) {
	toks := collect(t, "if then else end while for in function return and or not break continue true false nil")
	want := []Kind{IF, THEN, ELSE, END, WHILE, FOR, IN, FUNCTION, RETURN, AND, OR, NOT, BREAK, CONTINUE, BOOL, BOOL, NIL}
	assert.Equal(t, want, kinds(toks))
}

func TestLexer_Identifiers(t *testing.T) {
	toks := collect(t, "abc a12 _x __a19bcd_aa90")
	require.Len(t, toks, 4)
	for _, tok := range toks {
		assert.Equal(t, IDENT, tok.Kind)
	}
	assert.Equal(t, "__a19bcd_aa90", toks[3].Lexeme)
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123", "123"},
		{"3.14", "3.14"},
		{"1e9", "1e9"},
		{"1.4e9", "1.4e9"},
		{"12E-2", "12E-2"},
	}
	for _, tt := range tests {
		toks := collect(t, tt.input)
		require.Len(t, toks, 1, tt.input)
		assert.Equal(t, NUMBER, toks[0].Kind)
		assert.Equal(t, tt.want, toks[0].Lexeme)
	}
}

func TestLexer_NumberLoneDotIsError(t *testing.T) {
	_, err := New("1.")
	require.Error(t, err)
}

func TestLexer_Strings(t *testing.T) {
	toks := collect(t, `"hello" "a\nb" "a\tb" "lit\xeral"`)
	require.Len(t, toks, 4)
	assert.Equal(t, "hello", toks[0].Lexeme)
	assert.Equal(t, "a\nb", toks[1].Lexeme)
	assert.Equal(t, "a\tb", toks[2].Lexeme)
	assert.Equal(t, "literal", toks[3].Lexeme)
}

func TestLexer_UnterminatedString(t *testing.T) {
	_, err := New(`"abc`)
	require.Error(t, err)
}

func TestLexer_Comments(t *testing.T) {
	toks := collect(t, "1 // a comment\n2")
	require.Len(t, toks, 2)
	assert.Equal(t, "1", toks[0].Lexeme)
	assert.Equal(t, "2", toks[1].Lexeme)
}

func TestLexer_LineColumnTracking(t *testing.T) {
	lex, err := New("a\n  bb")
	require.NoError(t, err)
	first := lex.PeekCurrent()
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 1, first.Column)

	second, err := lex.Advance()
	require.NoError(t, err)
	assert.Equal(t, 2, second.Line)
	assert.Equal(t, 3, second.Column)
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	_, err := New("@")
	require.Error(t, err)
}

func TestLexer_MaximalMunch(t *testing.T) {
	toks := collect(t, "a==b")
	assert.Equal(t, []Kind{IDENT, EQ, IDENT}, kinds(toks))
}

func TestLexer_EmptyInput(t *testing.T) {
	lex, err := New("")
	require.NoError(t, err)
	assert.Equal(t, EOF, lex.PeekCurrent().Kind)
}

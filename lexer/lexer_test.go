/*
File    : interpreter/lexer/lexer_test.go
Package   lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextToken_OperatorsAndDelimiters(t *testing.T) {
	input := `=+(){},;[]:`

	expected := []Token{
		{ASSIGN, "="},
		{PLUS, "+"},
		{LPAREN, "("},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RBRACE, "}"},
		{COMMA, ","},
		{SEMICOLON, ";"},
		{LBRACKET, "["},
		{RBRACKET, "]"},
		{COLON, ":"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		assert.Equal(t, want.Type, got.Type, "token %d type", i)
		assert.Equal(t, want.Literal, got.Literal, "token %d literal", i)
	}
}

func TestNextToken_Program(t *testing.T) {
	input := `
let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
"foobar"
"foo bar"
[1, 2];
{"foo": "bar"}
`

	expected := []Token{
		{LET, "let"}, {IDENT, "five"}, {ASSIGN, "="}, {INT, "5"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "ten"}, {ASSIGN, "="}, {INT, "10"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "add"}, {ASSIGN, "="}, {FUNCTION, "fn"}, {LPAREN, "("},
		{IDENT, "x"}, {COMMA, ","}, {IDENT, "y"}, {RPAREN, ")"}, {LBRACE, "{"},
		{IDENT, "x"}, {PLUS, "+"}, {IDENT, "y"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "result"}, {ASSIGN, "="}, {IDENT, "add"}, {LPAREN, "("},
		{IDENT, "five"}, {COMMA, ","}, {IDENT, "ten"}, {RPAREN, ")"}, {SEMICOLON, ";"},
		{BANG, "!"}, {MINUS, "-"}, {SLASH, "/"}, {ASTERISK, "*"}, {INT, "5"}, {SEMICOLON, ";"},
		{INT, "5"}, {LT, "<"}, {INT, "10"}, {GT, ">"}, {INT, "5"}, {SEMICOLON, ";"},
		{IF, "if"}, {LPAREN, "("}, {INT, "5"}, {LT, "<"}, {INT, "10"}, {RPAREN, ")"}, {LBRACE, "{"},
		{RETURN, "return"}, {TRUE, "true"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {ELSE, "else"}, {LBRACE, "{"},
		{RETURN, "return"}, {FALSE, "false"}, {SEMICOLON, ";"},
		{RBRACE, "}"},
		{INT, "10"}, {EQ, "=="}, {INT, "10"}, {SEMICOLON, ";"},
		{INT, "10"}, {NOT_EQ, "!="}, {INT, "9"}, {SEMICOLON, ";"},
		{STRING, "foobar"},
		{STRING, "foo bar"},
		{LBRACKET, "["}, {INT, "1"}, {COMMA, ","}, {INT, "2"}, {RBRACKET, "]"}, {SEMICOLON, ";"},
		{LBRACE, "{"}, {STRING, "foo"}, {COLON, ":"}, {STRING, "bar"}, {RBRACE, "}"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		assert.Equal(t, want.Type, got.Type, "token %d (%q) type", i, got.Literal)
		assert.Equal(t, want.Literal, got.Literal, "token %d literal", i)
	}
}

func TestNextToken_IllegalByte(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
	assert.Equal(t, "@", tok.Literal)
}

func TestNextToken_EOFIsSticky(t *testing.T) {
	l := New("")
	for i := 0; i < 3; i++ {
		tok := l.NextToken()
		assert.Equal(t, EOF, tok.Type)
	}
}

func TestNextToken_StringHasNoEscapeProcessing(t *testing.T) {
	l := New(`"a\nb"`)
	tok := l.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, `a\nb`, tok.Literal)
}

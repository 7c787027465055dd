/*
File    : interpreter/parser/precedence.go
Package   parser
*/
package parser

import "github.com/monkeylang/interpreter/lexer"

// Operator precedence constants, lowest to highest. Higher value binds
// tighter. Example: in "a + b * c", MUL_PRIORITY > PLUS_PRIORITY, so
// the multiplication is parsed as the right operand of the addition:
// "(a + (b * c))".
const (
	LOWEST_PRIORITY = iota + 1
	EQUALS_PRIORITY      // ==, !=
	RELATIONAL_PRIORITY  // <, >
	PLUS_PRIORITY        // +, -
	MUL_PRIORITY         // *, /
	PREFIX_PRIORITY      // -x, !x
	CALL_PRIORITY        // myFunction(x)
	INDEX_PRIORITY       // myArray[x]
)

// precedences maps each infix-capable token to its binding strength.
// Tokens absent from this map are not infix operators and parseExpression
// falls back to LOWEST_PRIORITY for them.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS_PRIORITY,
	lexer.NOT_EQ:   EQUALS_PRIORITY,
	lexer.LT:       RELATIONAL_PRIORITY,
	lexer.GT:       RELATIONAL_PRIORITY,
	lexer.PLUS:     PLUS_PRIORITY,
	lexer.MINUS:    PLUS_PRIORITY,
	lexer.SLASH:    MUL_PRIORITY,
	lexer.ASTERISK: MUL_PRIORITY,
	lexer.LPAREN:   CALL_PRIORITY,
	lexer.LBRACKET: INDEX_PRIORITY,
}

// getPrecedence returns the binding strength of tok, or LOWEST_PRIORITY
// if tok never appears as an infix operator.
func getPrecedence(tok lexer.TokenType) int {
	if p, ok := precedences[tok]; ok {
		return p
	}
	return LOWEST_PRIORITY
}

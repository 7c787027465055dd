/*
File    : interpreter/parser/parser.go
Package   parser
*/

// Package parser implements a Pratt parser (top-down operator
// precedence parser) that turns a lexer.Lexer's token stream into an
// ast.Program.
//
// The parser maintains two-token lookahead (curToken/peekToken) and
// dispatches expression parsing through two function-pointer tables —
// unaryFuncs for tokens that can start an expression (literals,
// identifiers, prefix operators, grouping) and binaryFuncs for tokens
// that continue one (infix operators, call, index). It never panics:
// malformed input is recorded in Errors and parsing continues on a
// best-effort basis so a REPL or file run can report every problem in
// one pass.
package parser

import (
	"fmt"
	"strconv"

	"github.com/monkeylang/interpreter/ast"
	"github.com/monkeylang/interpreter/lexer"
)

type (
	unaryParseFunction  func() ast.Expression
	binaryParseFunction func(ast.Expression) ast.Expression
)

// Parser holds all state needed to turn a token stream into an
// ast.Program.
type Parser struct {
	lex *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	unaryFuncs  map[lexer.TokenType]unaryParseFunction
	binaryFuncs map[lexer.TokenType]binaryParseFunction

	errors []string
}

// New creates a Parser reading from lex and primes the two-token
// lookahead so curToken and peekToken are both valid before the first
// call to Parse.
func New(lex *lexer.Lexer) *Parser {
	par := &Parser{
		lex:    lex,
		errors: []string{},
	}

	par.unaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.registerUnaryFuncs(par.parseIdentifier, lexer.IDENT)
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING)
	par.registerUnaryFuncs(par.parseBoolean, lexer.TRUE, lexer.FALSE)
	par.registerUnaryFuncs(par.parsePrefixExpression, lexer.BANG, lexer.MINUS)
	par.registerUnaryFuncs(par.parseGroupedExpression, lexer.LPAREN)
	par.registerUnaryFuncs(par.parseIfExpression, lexer.IF)
	par.registerUnaryFuncs(par.parseFunctionLiteral, lexer.FUNCTION)
	par.registerUnaryFuncs(par.parseArrayLiteral, lexer.LBRACKET)
	par.registerUnaryFuncs(par.parseHashLiteral, lexer.LBRACE)

	par.binaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.registerBinaryFuncs(par.parseInfixExpression,
		lexer.PLUS, lexer.MINUS, lexer.SLASH, lexer.ASTERISK,
		lexer.EQ, lexer.NOT_EQ, lexer.LT, lexer.GT)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LPAREN)
	par.registerBinaryFuncs(par.parseIndexExpression, lexer.LBRACKET)

	par.advance()
	par.advance()

	return par
}

// registerUnaryFuncs associates f with every tok in toks.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, toks ...lexer.TokenType) {
	for _, tok := range toks {
		par.unaryFuncs[tok] = f
	}
}

// registerBinaryFuncs associates f with every tok in toks.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, toks ...lexer.TokenType) {
	for _, tok := range toks {
		par.binaryFuncs[tok] = f
	}
}

// Errors returns every parse error collected so far.
func (par *Parser) Errors() []string {
	return par.errors
}

// HasErrors reports whether any parse error has been recorded.
func (par *Parser) HasErrors() bool {
	return len(par.errors) > 0
}

func (par *Parser) addError(format string, args ...interface{}) {
	par.errors = append(par.errors, fmt.Sprintf(format, args...))
}

// advance shifts curToken to peekToken and reads a fresh peekToken
// from the lexer.
func (par *Parser) advance() {
	par.curToken = par.peekToken
	par.peekToken = par.lex.NextToken()
}

func (par *Parser) curTokenIs(tok lexer.TokenType) bool {
	return par.curToken.Type == tok
}

func (par *Parser) peekTokenIs(tok lexer.TokenType) bool {
	return par.peekToken.Type == tok
}

// expectPeek advances past peekToken if it matches tok, else records
// an error and leaves the cursor unmoved.
func (par *Parser) expectPeek(tok lexer.TokenType) bool {
	if par.peekTokenIs(tok) {
		par.advance()
		return true
	}
	par.addError("expected next token to be %s, got %s instead", tok, par.peekToken.Type)
	return false
}

func (par *Parser) peekPrecedence() int {
	return getPrecedence(par.peekToken.Type)
}

func (par *Parser) curPrecedence() int {
	return getPrecedence(par.curToken.Type)
}

// Parse consumes the entire token stream and returns the resulting
// ast.Program. Parse errors do not stop traversal; check Errors()
// after calling Parse to know whether the result is trustworthy.
func (par *Parser) Parse() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !par.curTokenIs(lexer.EOF) {
		stmt := par.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		par.advance()
	}

	return program
}

func (par *Parser) parseStatement() ast.Statement {
	switch par.curToken.Type {
	case lexer.LET:
		return par.parseLetStatement()
	case lexer.RETURN:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

func (par *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: par.curToken}

	if !par.expectPeek(lexer.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: par.curToken, Value: par.curToken.Literal}

	if !par.expectPeek(lexer.ASSIGN) {
		return nil
	}

	par.advance()

	stmt.Value = par.parseExpression(LOWEST_PRIORITY)

	if par.peekTokenIs(lexer.SEMICOLON) {
		par.advance()
	}

	return stmt
}

func (par *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: par.curToken}

	par.advance()

	stmt.ReturnValue = par.parseExpression(LOWEST_PRIORITY)

	if par.peekTokenIs(lexer.SEMICOLON) {
		par.advance()
	}

	return stmt
}

func (par *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: par.curToken}

	stmt.Expression = par.parseExpression(LOWEST_PRIORITY)

	if par.peekTokenIs(lexer.SEMICOLON) {
		par.advance()
	}

	return stmt
}

// parseExpression is the Pratt-parsing core: parse the unary (prefix)
// form rooted at curToken, then keep folding in binary (infix)
// operators while the next operator binds tighter than precedence.
func (par *Parser) parseExpression(precedence int) ast.Expression {
	unary, ok := par.unaryFuncs[par.curToken.Type]
	if !ok {
		par.addError("no prefix parse function for %s found", par.curToken.Type)
		return nil
	}
	left := unary()

	for !par.peekTokenIs(lexer.SEMICOLON) && precedence < par.peekPrecedence() {
		binary, ok := par.binaryFuncs[par.peekToken.Type]
		if !ok {
			return left
		}
		par.advance()
		left = binary(left)
	}

	return left
}

func (par *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: par.curToken, Value: par.curToken.Literal}
}

func (par *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: par.curToken}

	value, err := strconv.ParseInt(par.curToken.Literal, 10, 64)
	if err != nil {
		par.addError("could not parse %q as integer", par.curToken.Literal)
		return nil
	}

	lit.Value = value
	return lit
}

func (par *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: par.curToken, Value: par.curToken.Literal}
}

func (par *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: par.curToken, Value: par.curTokenIs(lexer.TRUE)}
}

func (par *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{
		Token:    par.curToken,
		Operator: par.curToken.Literal,
	}

	par.advance()
	expr.Right = par.parseExpression(PREFIX_PRIORITY)

	return expr
}

func (par *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    par.curToken,
		Left:     left,
		Operator: par.curToken.Literal,
	}

	precedence := par.curPrecedence()
	par.advance()
	expr.Right = par.parseExpression(precedence)

	return expr
}

func (par *Parser) parseGroupedExpression() ast.Expression {
	par.advance()

	expr := par.parseExpression(LOWEST_PRIORITY)

	if !par.expectPeek(lexer.RPAREN) {
		return nil
	}

	return expr
}

func (par *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: par.curToken}

	if !par.expectPeek(lexer.LPAREN) {
		return nil
	}

	par.advance()
	expr.Condition = par.parseExpression(LOWEST_PRIORITY)

	if !par.expectPeek(lexer.RPAREN) {
		return nil
	}

	if !par.expectPeek(lexer.LBRACE) {
		return nil
	}

	expr.Consequence = par.parseBlockStatement()

	if par.peekTokenIs(lexer.ELSE) {
		par.advance()

		if !par.expectPeek(lexer.LBRACE) {
			return nil
		}

		expr.Alternative = par.parseBlockStatement()
	}

	return expr
}

func (par *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: par.curToken, Statements: []ast.Statement{}}

	par.advance()

	for !par.curTokenIs(lexer.RBRACE) && !par.curTokenIs(lexer.EOF) {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}

	return block
}

func (par *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: par.curToken}

	if !par.expectPeek(lexer.LPAREN) {
		return nil
	}

	lit.Parameters = par.parseFunctionParameters()

	if !par.expectPeek(lexer.LBRACE) {
		return nil
	}

	lit.Body = par.parseBlockStatement()

	return lit
}

func (par *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if par.peekTokenIs(lexer.RPAREN) {
		par.advance()
		return identifiers
	}

	par.advance()
	identifiers = append(identifiers, &ast.Identifier{Token: par.curToken, Value: par.curToken.Literal})

	for par.peekTokenIs(lexer.COMMA) {
		par.advance()
		par.advance()
		identifiers = append(identifiers, &ast.Identifier{Token: par.curToken, Value: par.curToken.Literal})
	}

	if !par.expectPeek(lexer.RPAREN) {
		return nil
	}

	return identifiers
}

func (par *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: par.curToken, Function: function}
	expr.Arguments = par.parseExpressionList(lexer.RPAREN)
	return expr
}

func (par *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: par.curToken}
	arr.Elements = par.parseExpressionList(lexer.RBRACKET)
	return arr
}

// parseExpressionList parses a comma-separated list of expressions up
// to and including end, shared by call arguments and array elements.
func (par *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if par.peekTokenIs(end) {
		par.advance()
		return list
	}

	par.advance()
	list = append(list, par.parseExpression(LOWEST_PRIORITY))

	for par.peekTokenIs(lexer.COMMA) {
		par.advance()
		par.advance()
		list = append(list, par.parseExpression(LOWEST_PRIORITY))
	}

	if !par.expectPeek(end) {
		return nil
	}

	return list
}

func (par *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: par.curToken, Left: left}

	par.advance()
	expr.Index = par.parseExpression(LOWEST_PRIORITY)

	if !par.expectPeek(lexer.RBRACKET) {
		return nil
	}

	return expr
}

func (par *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{Token: par.curToken}

	for !par.peekTokenIs(lexer.RBRACE) {
		par.advance()
		key := par.parseExpression(LOWEST_PRIORITY)

		if !par.expectPeek(lexer.COLON) {
			return nil
		}

		par.advance()
		value := par.parseExpression(LOWEST_PRIORITY)

		hash.Pairs = append(hash.Pairs, ast.HashPair{Key: key, Value: value})

		if !par.peekTokenIs(lexer.RBRACE) && !par.expectPeek(lexer.COMMA) {
			return nil
		}
	}

	if !par.expectPeek(lexer.RBRACE) {
		return nil
	}

	return hash
}

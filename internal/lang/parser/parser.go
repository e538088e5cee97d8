package parser

import (
	"fmt"
	"strconv"

	"github.com/monkey-lang/monkey/internal/lang/ast"
	"github.com/monkey-lang/monkey/internal/lang/lexer"
	"github.com/monkey-lang/monkey/internal/lang/token"
)

// Precedence levels for Pratt parsing
const (
	_ int = iota
	PrecLowest
	PrecEquals      // ==, !=
	PrecLessGreater // <, >
	PrecSum         // +, -
	PrecProduct     // *, /
	PrecPrefix      // -x, !x
	PrecCall        // add(x)
)

// Map tokens to precedence levels. Tokens without an entry rank PrecLowest.
var precedences = map[token.TokenType]int{
	token.TokenEq:       PrecEquals,
	token.TokenNotEq:    PrecEquals,
	token.TokenLT:       PrecLessGreater,
	token.TokenGT:       PrecLessGreater,
	token.TokenPlus:     PrecSum,
	token.TokenMinus:    PrecSum,
	token.TokenAsterisk: PrecProduct,
	token.TokenSlash:    PrecProduct,
	token.TokenLParen:   PrecCall, // a '(' in infix position is a call
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser consumes the lexer's token stream through a two-token lookahead
// window and builds the AST with precedence climbing. Errors accumulate in
// an append-only list; there is no abort path.
type Parser struct {
	l       *lexer.Lexer
	curTok  token.Token
	peekTok token.Token

	errors []ParseError

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []ParseError{},
	}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.TokenIdent:    p.parseIdentifier,
		token.TokenInt:      p.parseIntegerLiteral,
		token.TokenBang:     p.parsePrefixExpression,
		token.TokenMinus:    p.parsePrefixExpression,
		token.TokenTrue:     p.parseBoolean,
		token.TokenFalse:    p.parseBoolean,
		token.TokenLParen:   p.parseGroupedExpression,
		token.TokenIf:       p.parseIfExpression,
		token.TokenFunction: p.parseFunctionLiteral,
	}
	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.TokenPlus:     p.parseInfixExpression,
		token.TokenMinus:    p.parseInfixExpression,
		token.TokenSlash:    p.parseInfixExpression,
		token.TokenAsterisk: p.parseInfixExpression,
		token.TokenEq:       p.parseInfixExpression,
		token.TokenNotEq:    p.parseInfixExpression,
		token.TokenLT:       p.parseInfixExpression,
		token.TokenGT:       p.parseInfixExpression,
		token.TokenLParen:   p.parseCallExpression,
	}

	// Preload the two-slot lookahead window.
	p.nextToken()
	p.nextToken()

	return p
}

// --- Token handling ---

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curTok.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekTok.Type == t
}

// expectPeek advances when the peek token matches. On a mismatch it records
// a diagnostic at the peek token and stays put, leaving the caller to
// abandon the current construct.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError(p.peekTok, "expected next token to be %s, got %s", t, p.peekTok.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}
	return PrecLowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curTok.Type]; ok {
		return prec
	}
	return PrecLowest
}

// --- Error handling ---

func (p *Parser) addError(tok token.Token, format string, args ...any) {
	p.errors = append(p.errors, ParseError{
		Line:   tok.Line,
		Column: tok.Column,
		Msg:    fmt.Sprintf(format, args...),
	})
}

// Errors returns the diagnostics collected so far, in the order they were
// recorded. Callers must inspect it explicitly; ParseProgram always returns
// a Program, complete or not.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// --- Program parsing ---

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(token.TokenEOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

// parseStatement yields nil for a malformed statement; the diagnostic was
// already recorded and the main loop resumes at the next token.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Type {
	case token.TokenLet:
		if stmt := p.parseLetStatement(); stmt != nil {
			return stmt
		}
		return nil
	case token.TokenReturn:
		if stmt := p.parseReturnStatement(); stmt != nil {
			return stmt
		}
		return nil
	default:
		if stmt := p.parseExpressionStatement(); stmt != nil {
			return stmt
		}
		return nil
	}
}

func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{Token: p.curTok}

	if !p.expectPeek(token.TokenIdent) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}

	if !p.expectPeek(token.TokenAssign) {
		return nil
	}

	p.nextToken()
	stmt.Value = p.parseExpression(PrecLowest)
	if stmt.Value == nil {
		return nil
	}

	// Trailing semicolon is optional.
	if p.peekTokenIs(token.TokenSemicolon) {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curTok}

	p.nextToken()
	stmt.ReturnValue = p.parseExpression(PrecLowest)
	if stmt.ReturnValue == nil {
		return nil
	}

	if p.peekTokenIs(token.TokenSemicolon) {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curTok}

	stmt.Expression = p.parseExpression(PrecLowest)
	if stmt.Expression == nil {
		return nil
	}

	if p.peekTokenIs(token.TokenSemicolon) {
		p.nextToken()
	}

	return stmt
}

// --- Expression parsing (precedence climbing) ---

// parseExpression builds the left operand with the prefix handler for the
// current token, then keeps folding infix operators as long as the operator
// to the right binds strictly tighter than the given precedence. Passing an
// operator's own precedence down for its right operand is what makes
// same-precedence operators left-associative.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curTok.Type]
	if prefix == nil {
		p.addError(p.curTok, "no prefix parse function for %s found", p.curTok.Type)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for !p.peekTokenIs(token.TokenSemicolon) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekTok.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

// --- Prefix handlers ---

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curTok}

	value, err := strconv.ParseInt(p.curTok.Literal, 10, 64)
	if err != nil {
		p.addError(p.curTok, "could not parse %q as integer", p.curTok.Literal)
		return nil
	}
	lit.Value = value

	return lit
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.curTok, Value: p.curTokenIs(token.TokenTrue)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curTok, Operator: p.curTok.Literal}

	p.nextToken()
	expr.Right = p.parseExpression(PrecPrefix)
	if expr.Right == nil {
		return nil
	}

	return expr
}

// parseGroupedExpression has no AST node of its own; the parentheses only
// reset the recursion level.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(PrecLowest)
	if exp == nil {
		return nil
	}

	if !p.expectPeek(token.TokenRParen) {
		return nil
	}

	return exp
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curTok}

	if !p.expectPeek(token.TokenLParen) {
		return nil
	}

	p.nextToken()
	expr.Condition = p.parseExpression(PrecLowest)
	if expr.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.TokenRParen) {
		return nil
	}
	if !p.expectPeek(token.TokenLBrace) {
		return nil
	}

	expr.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.TokenElse) {
		p.nextToken()

		if !p.expectPeek(token.TokenLBrace) {
			return nil
		}

		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

// parseBlockStatement consumes the opening '{' and statements up to the
// matching '}'. A missing closing brace is tolerated: parsing simply stops
// at EOF and the inner statements keep whatever diagnostics they produced.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curTok, Statements: []ast.Statement{}}

	p.nextToken()

	for !p.curTokenIs(token.TokenRBrace) && !p.curTokenIs(token.TokenEOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curTok}

	if !p.expectPeek(token.TokenLParen) {
		return nil
	}

	lit.Parameters = p.parseFunctionParameters()
	if lit.Parameters == nil {
		return nil
	}

	if !p.expectPeek(token.TokenLBrace) {
		return nil
	}

	lit.Body = p.parseBlockStatement()

	return lit
}

// parseFunctionParameters returns a possibly empty identifier list, or nil
// after recording a diagnostic. An empty list is never nil.
func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	params := []*ast.Identifier{}

	if p.peekTokenIs(token.TokenRParen) {
		p.nextToken()
		return params
	}

	p.nextToken()
	ident := p.parseFunctionParameter()
	if ident == nil {
		return nil
	}
	params = append(params, ident)

	for p.peekTokenIs(token.TokenComma) {
		p.nextToken()
		p.nextToken()
		ident := p.parseFunctionParameter()
		if ident == nil {
			return nil
		}
		params = append(params, ident)
	}

	if !p.expectPeek(token.TokenRParen) {
		return nil
	}

	return params
}

func (p *Parser) parseFunctionParameter() *ast.Identifier {
	if !p.curTokenIs(token.TokenIdent) {
		p.addError(p.curTok, "expected parameter name to be %s, got %s", token.TokenIdent, p.curTok.Type)
		return nil
	}
	return &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}
}

// --- Infix handlers ---

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curTok,
		Operator: p.curTok.Literal,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}

	return expr
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curTok, Function: function}

	expr.Arguments = p.parseCallArguments()
	if expr.Arguments == nil {
		return nil
	}

	return expr
}

// parseCallArguments returns a possibly empty argument list, or nil after
// a diagnostic. Arguments are parsed at lowest precedence; commas separate.
func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peekTokenIs(token.TokenRParen) {
		p.nextToken()
		return args
	}

	p.nextToken()
	arg := p.parseExpression(PrecLowest)
	if arg == nil {
		return nil
	}
	args = append(args, arg)

	for p.peekTokenIs(token.TokenComma) {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(PrecLowest)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}

	if !p.expectPeek(token.TokenRParen) {
		return nil
	}

	return args
}

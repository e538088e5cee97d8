package lexer

import "github.com/monkey-lang/monkey/internal/lang/token"

// Lexer turns raw source text into a stream of tokens, one per NextToken
// call. It owns nothing but its own cursor; once the input is exhausted it
// keeps returning EOF tokens.
type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// readChar advances the lexer's position and updates the current character.
// It handles EOF and tracks line/column numbers.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0 // the next character starts the new line at column 1
	} else if l.ch != 0 {
		l.column++
	}
}

// peekChar returns the next character without consuming it.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	startLine := l.line
	startCol := l.column

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			literal := string(ch) + string(l.ch)
			tok = l.newToken(token.TokenEq, literal, startLine, startCol)
		} else {
			tok = l.newToken(token.TokenAssign, string(l.ch), startLine, startCol)
		}
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			literal := string(ch) + string(l.ch)
			tok = l.newToken(token.TokenNotEq, literal, startLine, startCol)
		} else {
			tok = l.newToken(token.TokenBang, string(l.ch), startLine, startCol)
		}
	case '+':
		tok = l.newToken(token.TokenPlus, string(l.ch), startLine, startCol)
	case '-':
		tok = l.newToken(token.TokenMinus, string(l.ch), startLine, startCol)
	case '*':
		tok = l.newToken(token.TokenAsterisk, string(l.ch), startLine, startCol)
	case '/':
		tok = l.newToken(token.TokenSlash, string(l.ch), startLine, startCol)
	case '<':
		tok = l.newToken(token.TokenLT, string(l.ch), startLine, startCol)
	case '>':
		tok = l.newToken(token.TokenGT, string(l.ch), startLine, startCol)
	case ',':
		tok = l.newToken(token.TokenComma, string(l.ch), startLine, startCol)
	case ';':
		tok = l.newToken(token.TokenSemicolon, string(l.ch), startLine, startCol)
	case '(':
		tok = l.newToken(token.TokenLParen, string(l.ch), startLine, startCol)
	case ')':
		tok = l.newToken(token.TokenRParen, string(l.ch), startLine, startCol)
	case '{':
		tok = l.newToken(token.TokenLBrace, string(l.ch), startLine, startCol)
	case '}':
		tok = l.newToken(token.TokenRBrace, string(l.ch), startLine, startCol)
	case 0:
		// EOF. Do NOT advance; every further call lands here again.
		if startCol == 0 {
			startCol = 1 // empty input or EOF right after a newline
		}
		return l.newToken(token.TokenEOF, "", startLine, startCol)
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return l.newToken(token.LookupIdent(ident), ident, startLine, startCol)
		} else if isDigit(l.ch) {
			return l.newToken(token.TokenInt, l.readNumber(), startLine, startCol)
		}
		// Unrecognized character: emit ILLEGAL and keep going.
		tok = l.newToken(token.TokenIllegal, string(l.ch), startLine, startCol)
	}

	l.readChar()
	return tok
}

// newToken is a helper to create a token.Token struct.
func (l *Lexer) newToken(tokenType token.TokenType, literal string, line, col int) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier consumes a maximal letter/underscore/digit run starting at
// the current character and returns the source substring.
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber consumes a maximal run of decimal digits. No sign, no floats;
// a leading '-' is the parser's prefix operator, not part of the literal.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

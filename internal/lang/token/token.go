package token

type TokenType string

const (
	// Special
	TokenIllegal TokenType = "ILLEGAL"
	TokenEOF     TokenType = "EOF"

	// Identifiers and literals
	TokenIdent TokenType = "IDENT" // add, foobar, x, y
	TokenInt   TokenType = "INT"   // 1343456

	// Operators
	TokenAssign   TokenType = "="
	TokenPlus     TokenType = "+"
	TokenMinus    TokenType = "-"
	TokenBang     TokenType = "!"
	TokenAsterisk TokenType = "*"
	TokenSlash    TokenType = "/"

	TokenLT TokenType = "<"
	TokenGT TokenType = ">"

	TokenEq    TokenType = "=="
	TokenNotEq TokenType = "!="

	// Delimiters
	TokenComma     TokenType = ","
	TokenSemicolon TokenType = ";"

	TokenLParen TokenType = "("
	TokenRParen TokenType = ")"
	TokenLBrace TokenType = "{"
	TokenRBrace TokenType = "}"

	// Keywords
	TokenFunction TokenType = "FUNCTION"
	TokenLet      TokenType = "LET"
	TokenTrue     TokenType = "TRUE"
	TokenFalse    TokenType = "FALSE"
	TokenIf       TokenType = "IF"
	TokenElse     TokenType = "ELSE"
	TokenReturn   TokenType = "RETURN"
)

// Token is a single lexical unit. Literal holds the exact source substring,
// Line and Column are 1-based and point at the token's first character.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// keywords maps identifier strings to their corresponding token types.
var keywords = map[string]TokenType{
	"fn":     TokenFunction,
	"let":    TokenLet,
	"true":   TokenTrue,
	"false":  TokenFalse,
	"if":     TokenIf,
	"else":   TokenElse,
	"return": TokenReturn,
}

// LookupIdent checks if an identifier is a keyword, returning the keyword's
// token type or TokenIdent if it's not a keyword.
func LookupIdent(ident string) TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return TokenIdent
}

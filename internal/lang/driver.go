// Package lang wires the lexer and parser together so callers (CLI, REPL)
// never touch the token window machinery directly.
package lang

import (
	"github.com/monkey-lang/monkey/internal/lang/ast"
	"github.com/monkey-lang/monkey/internal/lang/lexer"
	"github.com/monkey-lang/monkey/internal/lang/parser"
)

// Parse runs src through the lexer and parser and returns the program
// together with any diagnostics the parser collected. The program is always
// non-nil; callers decide what to do when the error list isn't empty.
func Parse(src string) (*ast.Program, []parser.ParseError) {
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	return program, p.Errors()
}

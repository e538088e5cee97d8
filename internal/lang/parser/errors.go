package parser

import "fmt"

// ParseError is one recorded diagnostic. Parsing never aborts; malformed
// input produces one of these per construct and the parse continues at the
// next statement boundary. Line and Column come from the offending token.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

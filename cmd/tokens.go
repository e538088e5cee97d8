package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monkey-lang/monkey/internal/lang/lexer"
	"github.com/monkey-lang/monkey/internal/lang/token"
)

// tokens: dump the raw token stream, one token per line
var TokensCmd = &cobra.Command{
	Use:   "tokens <file.monkey>",
	Short: "Dump the token stream for a Monkey source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}

		l := lexer.New(src)
		for tok := l.NextToken(); tok.Type != token.TokenEOF; tok = l.NextToken() {
			fmt.Printf("%d:%d\t%-10s %q\n", tok.Line, tok.Column, tok.Type, tok.Literal)
		}
		return nil
	},
}

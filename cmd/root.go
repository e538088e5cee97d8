package cmd

import (
	"github.com/spf13/cobra"

	"github.com/monkey-lang/monkey/internal/repl"
)

var rootCmd = &cobra.Command{
	Use:   "monkey",
	Short: "Monkey CLI — lexer, parser, and interactive shell",
	Long: `Monkey is the front end for the Monkey programming language.

Commands:
  repl    Start the interactive shell (also the default)
  run     Parse a Monkey source file and print its AST
  tokens  Dump the token stream for a Monkey source file
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Run()
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(ReplCmd, RunCmd, TokensCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/monkey-lang/monkey/internal/repl"
)

// repl: interactive shell
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Monkey shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Run()
	},
}

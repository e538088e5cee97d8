package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/monkey-lang/monkey/internal/lang"
	"github.com/monkey-lang/monkey/internal/lang/diag"
)

// run: parse a source file and print the rendered AST
var RunCmd = &cobra.Command{
	Use:   "run <file.monkey>",
	Short: "Parse a Monkey source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}

		program, errs := lang.Parse(src)
		if len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprint(os.Stderr, diag.Render(src, e.Line, e.Column, e.Msg))
				fmt.Fprintln(os.Stderr)
			}
			return fmt.Errorf("%d parse error(s) in %s", len(errs), args[0])
		}

		fmt.Println(program.String())
		return nil
	},
}

func readSource(path string) (string, error) {
	if filepath.Ext(path) != ".monkey" {
		return "", fmt.Errorf("source must have .monkey extension")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

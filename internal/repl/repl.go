// Package repl is the interactive shell: read a line, lex and parse it,
// print the rendered AST or the diagnostics. It only consumes
// lang.Parse and the parser's error list.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/monkey-lang/monkey/internal/lang"
	"github.com/monkey-lang/monkey/internal/lang/diag"
)

const (
	prompt      = ">> "
	historyFile = ".monkey_history"
)

const logo = `    .--.  .-"-----"-.  .--.
   / .. \/  .-. .-.  \/ .. \
  | |  '|  /   Y   \  |'  | |
  | \   \  \ 0 | 0 /  /   / |
   \ '- ,\.-"""""""-./, -' /
    ''-' /_   ^ ^   _\ '-''
        |  \._   _./  |
        \   \ '~' /   /
         '._ '-=-' _.'
            '-----'`

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Run starts the shell and blocks until the user exits with Ctrl+D or
// :quit. Each input line is parsed independently; parse state never leaks
// between lines.
func Run() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Println(bannerStyle.Render(logo))
	fmt.Println(hintStyle.Render("Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit."))

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == ":quit" {
			return nil
		}
		ln.AppendHistory(line)

		program, errs := lang.Parse(line)
		if len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprint(os.Stderr, errorStyle.Render(diag.Render(line, e.Line, e.Column, e.Msg)))
				fmt.Fprintln(os.Stderr)
			}
			continue
		}

		fmt.Println(program.String())
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

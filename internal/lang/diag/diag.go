// Package diag renders parser diagnostics as caret-annotated source
// snippets, e.g.
//
//	parse error at 2:8: expected next token to be ), got ;
//
//	   1 | let x = (1 + 2
//	   2 | let y = 3;
//	     |        ^
//
// Output is plain text; callers add color if they want it.
package diag

import (
	"fmt"
	"strings"
)

// Render formats one diagnostic against the source it came from. Line and
// column are 1-based; out-of-range coordinates are clamped so rendering
// never panics on truncated or empty input. Shows at most one line of
// context before and after the offending line.
func Render(src string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "parse error at %d:%d: %s\n\n", line, col, msg)

	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}

	return b.String()
}

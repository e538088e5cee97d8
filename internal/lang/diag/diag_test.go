package diag

import (
	"strings"
	"testing"
)

func TestRenderCaretPosition(t *testing.T) {
	src := "let x = (1 + 2\nlet y = 3;"
	out := Render(src, 1, 9, "expected next token to be ), got LET")

	if !strings.Contains(out, "parse error at 1:9: expected next token to be ), got LET") {
		t.Errorf("header wrong. got:\n%s", out)
	}
	if !strings.Contains(out, "   1 | let x = (1 + 2") {
		t.Errorf("offending line missing. got:\n%s", out)
	}
	// Caret sits under column 9: 8 spaces of padding after the gutter.
	if !strings.Contains(out, "     | "+strings.Repeat(" ", 8)+"^") {
		t.Errorf("caret misplaced. got:\n%s", out)
	}
	// One line of following context.
	if !strings.Contains(out, "   2 | let y = 3;") {
		t.Errorf("context line missing. got:\n%s", out)
	}
}

func TestRenderPreviousContext(t *testing.T) {
	src := "let a = 1;\nlet b = ;\nlet c = 3;"
	out := Render(src, 2, 9, "no prefix parse function for ; found")

	for _, want := range []string{
		"   1 | let a = 1;",
		"   2 | let b = ;",
		"   3 | let c = 3;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q. got:\n%s", want, out)
		}
	}
}

func TestRenderClampsOutOfRange(t *testing.T) {
	// Coordinates past the end of the source must not panic.
	out := Render("x", 99, 99, "boom")
	if !strings.Contains(out, "   1 | x") {
		t.Errorf("clamped line missing. got:\n%s", out)
	}

	out = Render("", 0, 0, "boom")
	if !strings.Contains(out, "parse error at 1:1: boom") {
		t.Errorf("clamped header wrong. got:\n%s", out)
	}
}

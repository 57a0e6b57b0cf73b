package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '●', core.ColorBrightRed)
	s.DrawTextColored(0, 1, "xyz", core.ColorCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}

	want := []string{"ab●   ", "xyz   "}
	for i, line := range lines {
		// Width ignores escape sequences
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, expected 6", i, w)
		}
		if !strings.Contains(stripStyles(line), want[i]) {
			t.Errorf("line %d = %q, expected text %q", i, stripStyles(line), want[i])
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("unknown colour rendered %q, expected plain text", got)
	}
}

// stripStyles removes ANSI escape sequences.
func stripStyles(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}

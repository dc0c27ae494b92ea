package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel draws a framed box around lines using the theme's border.
// A width of 0 lets the content decide.
func Panel(t Theme, width int, lines ...string) string {
	s := t.box(false)
	if width > 0 {
		s = s.Width(width - s.GetHorizontalBorderSize())
	}
	return s.Render(strings.Join(lines, "\n"))
}

// truncate cuts s to w visible cells, ending in "…".
func truncate(s string, w int) string {
	return ansi.Truncate(s, w, "…")
}

// rightAlign pads s on the left so it ends at column width.
func rightAlign(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

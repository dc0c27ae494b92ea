package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// Fail prints a red "✖ msg" line.
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, errorStyle.Render("✖ "+msg)) }

// TermSize reports the terminal size of stdout, 80x24 when unknown.
func TermSize() (int, int) {
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 {
		w, h = tw, th
	}
	return w, h
}

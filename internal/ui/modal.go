package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/notepad/internal/config"
	"github.com/idilsaglam/notepad/internal/i18n"
	"github.com/idilsaglam/notepad/internal/model"
)

// markdown renders text for the dialog body, falling back to plain wrapping
// if glamour fails.
func markdown(e Env, text string, width int) string {
	style := "dark"
	if e.Theme.Name == "mono" {
		style = "ascii"
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(width))
	if err == nil {
		var out string
		if out, err = r.Render(text); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	e.log().Warn("markdown render failed", zap.Error(err))
	return lipgloss.NewStyle().Width(width).Render(text)
}

// dialog frames a title, subtitle and body at 80% of the available width.
func dialog(e Env, width int, title, subtitle, body string) string {
	t := e.Theme
	w := clamp(width*8/10, 30, width)
	s := t.box(true).Padding(1, 2)
	s = s.Width(w - s.GetHorizontalBorderSize())
	inner := w - s.GetHorizontalFrameSize()

	hint := t.Muted.Render(e.Tr.T(i18n.MsgClose))
	head := t.Title.Render(truncate(title, inner-lipgloss.Width(hint)-1))
	head += strings.Repeat(" ", max(inner-lipgloss.Width(head)-lipgloss.Width(hint), 1)) + hint

	parts := []string{head}
	if subtitle != "" {
		parts = append(parts, t.Muted.Render(subtitle))
	}
	parts = append(parts, "", body)
	return s.Render(strings.Join(parts, "\n"))
}

// CardDetail is the expanded view of one card: name, posted label and the
// full text.
func CardDetail(e Env, it model.Item, width int) string {
	inner := clamp(width*8/10, 30, width) - 8
	sub := PostedLabel(it, e.now()) + " · " + it.Date.Format(shortDateLayout)
	return dialog(e, width, it.Name, sub, markdown(e, it.Text, inner))
}

// AboutDialog names the application and its version.
func AboutDialog(e Env, width int) string {
	body := e.Tr.Tf(i18n.MsgAboutBody, map[string]any{"App": config.AppName, "Version": config.Version})
	return dialog(e, width, e.Tr.T(i18n.MsgAbout), "", body)
}

package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/idilsaglam/notepad/internal/config"
	"github.com/idilsaglam/notepad/internal/i18n"
	"github.com/idilsaglam/notepad/internal/model"
)

const excerptLen = 100

// Env is what every renderer needs besides the data itself.
type Env struct {
	Theme Theme
	Tr    *i18n.Translator
	Clock config.Clock
	Log   *zap.Logger
}

func (e Env) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

func (e Env) log() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// PostedLabel is the card's own label, or its age relative to now.
func PostedLabel(it model.Item, now time.Time) string {
	if it.Posted != "" {
		return it.Posted
	}
	return humanize.RelTime(it.Date, now, "ago", "from now")
}

// renderCard draws the compact card used by both the timeline and the grid.
func renderCard(e Env, it model.Item, width int, selected bool) string {
	t := e.Theme
	s := t.box(selected)
	inner := width - s.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}
	name := t.Title.Render(truncate(it.Name, inner))
	if selected {
		name = t.Focused.Render(truncate(it.Name, inner))
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		name,
		t.Muted.Render(PostedLabel(it, e.now())),
		"",
		lipgloss.NewStyle().Width(inner).Render(it.Excerpt(excerptLen)),
	)
	return s.Width(width - s.GetHorizontalBorderSize()).Render(body)
}

package ui

import (
	"strings"

	"github.com/idilsaglam/notepad/internal/i18n"
	"github.com/idilsaglam/notepad/internal/timeline"
)

const (
	shortDateLayout = "1/2/2006"
	maxCardWidth    = 80
)

// Layout is rendered content plus, for each card in display order, the
// line it starts on and the line after it ends.
type Layout struct {
	Content string
	Spans   [][2]int
}

// RenderTimeline draws month sections newest first. selected indexes the
// flattened display order; -1 selects nothing.
func RenderTimeline(e Env, groups []timeline.MonthGroup, width, selected int) Layout {
	t := e.Theme
	if len(groups) == 0 {
		return Layout{Content: t.Muted.Render(e.Tr.T(i18n.MsgNoCards))}
	}
	rail := t.Muted.Render(t.Rail)
	cardWidth := clamp(width-4, 20, maxCardWidth)

	var lines []string
	var spans [][2]int
	idx := 0
	for _, g := range groups {
		lines = append(lines, t.Accent.Render(t.Dot)+" "+t.Title.Render(g.Key.Label(e.Tr)))
		for _, it := range g.Items {
			start := len(lines)
			lines = append(lines, rail+" "+t.Muted.Render(t.SubDot+" "+it.Date.Format(shortDateLayout)))
			for _, ln := range strings.Split(renderCard(e, it, cardWidth, idx == selected), "\n") {
				lines = append(lines, rail+"  "+ln)
			}
			spans = append(spans, [2]int{start, len(lines)})
			idx++
		}
		lines = append(lines, rail)
	}
	return Layout{Content: strings.Join(lines, "\n"), Spans: spans}
}

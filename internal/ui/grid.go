package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/notepad/internal/i18n"
	"github.com/idilsaglam/notepad/internal/model"
)

const gridGap = 2

// Columns mirrors the 1/2/3 column breakpoints of the grid.
func Columns(width int) int {
	switch {
	case width < 80:
		return 1
	case width < 120:
		return 2
	default:
		return 3
	}
}

// RenderGrid lays cards out in input order, row by row.
func RenderGrid(e Env, cards []model.Item, width, selected int) Layout {
	if len(cards) == 0 {
		return Layout{Content: e.Theme.Muted.Render(e.Tr.T(i18n.MsgNoCards))}
	}
	cols := Columns(width)
	cardWidth := (width - gridGap*(cols-1)) / cols
	gap := strings.Repeat(" ", gridGap)

	var rows []string
	var spans [][2]int
	line := 0
	for i := 0; i < len(cards); i += cols {
		end := min(i+cols, len(cards))
		var cells []string
		for j := i; j < end; j++ {
			if j > i {
				cells = append(cells, gap)
			}
			cells = append(cells, renderCard(e, cards[j], cardWidth, j == selected))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		h := lipgloss.Height(row)
		for j := i; j < end; j++ {
			spans = append(spans, [2]int{line, line + h})
		}
		rows = append(rows, row)
		line += h + 1
	}
	return Layout{Content: strings.Join(rows, "\n\n"), Spans: spans}
}

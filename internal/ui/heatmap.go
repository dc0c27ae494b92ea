package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/notepad/internal/calendar"
	"github.com/idilsaglam/notepad/internal/i18n"
)

const tooltipLayout = "Mon Jan 02 2006"

// RenderHeatmap draws one row per month of ref's year with one cell per
// day up to ref. Months after ref keep their label but draw no cells.
func RenderHeatmap(e Env, counts calendar.Counts, ref time.Time, width int) string {
	t := e.Theme
	label := lipgloss.NewStyle().Width(6)

	lines := make([]string, 0, 14)
	for m := time.January; m <= time.December; m++ {
		var row strings.Builder
		row.WriteString(t.Muted.Render(label.Render(e.Tr.ShortMonth(m))))
		for i, k := range calendar.MonthDays(ref, m) {
			if i > 0 {
				row.WriteByte(' ')
			}
			row.WriteString(t.Band(calendar.Band(counts.Get(k))))
		}
		lines = append(lines, row.String())
	}

	legend := []string{t.Muted.Render(e.Tr.T(i18n.MsgLess))}
	for l := calendar.Empty; l <= calendar.High; l++ {
		legend = append(legend, t.Band(l))
	}
	legend = append(legend, t.Muted.Render(e.Tr.T(i18n.MsgMore)))
	lines = append(lines, "", strings.Join(legend, " "))

	return Panel(t, width, lines...)
}

// DayTooltips describes every day in the window that has cards, oldest first,
// e.g. "Tue Oct 15 2024: 2 contributions".
func DayTooltips(e Env, counts calendar.Counts, ref time.Time) []string {
	var out []string
	for _, k := range calendar.DayKeysInYear(ref) {
		n := counts.Get(k)
		if n == 0 {
			continue
		}
		out = append(out, DayTooltip(e, k, n, ref.Location()))
	}
	return out
}

// DayTooltip describes one day, falling back to the raw key if it does not parse.
func DayTooltip(e Env, k calendar.DayKey, count int, loc *time.Location) string {
	day := string(k)
	if d, err := k.Time(loc); err == nil {
		day = d.Format(tooltipLayout)
	}
	return e.Tr.Plural(i18n.MsgDayTooltip, count, map[string]any{"Day": day})
}

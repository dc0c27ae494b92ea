package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/notepad/internal/calendar"
	"github.com/idilsaglam/notepad/internal/config"
	"github.com/idilsaglam/notepad/internal/i18n"
	"github.com/idilsaglam/notepad/internal/model"
	"github.com/idilsaglam/notepad/internal/store"
	"github.com/idilsaglam/notepad/internal/timeline"
)

var refDay = time.Date(2024, time.October, 16, 12, 0, 0, 0, time.Local)

func testEnv(t *testing.T) Env {
	t.Helper()
	tr, err := i18n.New("en", nil)
	require.NoError(t, err)
	return Env{Theme: NewTheme("mono"), Tr: tr, Clock: config.FixedClock(refDay)}
}

func plain(s string) string { return ansi.Strip(s) }

func TestColumns(t *testing.T) {
	assert.Equal(t, 1, Columns(40))
	assert.Equal(t, 1, Columns(79))
	assert.Equal(t, 2, Columns(80))
	assert.Equal(t, 2, Columns(119))
	assert.Equal(t, 3, Columns(120))
	assert.Equal(t, 3, Columns(300))
}

func TestNewTheme_UnknownFallsBackToClassic(t *testing.T) {
	assert.Equal(t, "classic", NewTheme("sparkly").Name)
	assert.Equal(t, "neon", NewTheme("NEON").Name)
}

func TestPostedLabel(t *testing.T) {
	d := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2h ago", PostedLabel(model.Item{Posted: "2h ago", Date: d}, d))
	assert.Equal(t, "3 days ago", PostedLabel(model.Item{Date: d}, d.Add(72*time.Hour)))
}

func TestRenderHeatmap(t *testing.T) {
	e := testEnv(t)
	ref := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.Local)
	items := []model.Item{{ID: 1, Name: "a", Date: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)}}

	out := plain(RenderHeatmap(e, calendar.Aggregate(items), ref, 0))
	lines := strings.Split(out, "\n")

	find := func(prefix string) string {
		for _, ln := range lines {
			body := strings.Trim(ln, "│ ")
			if strings.HasPrefix(body, prefix) {
				return body
			}
		}
		t.Fatalf("no %s row in\n%s", prefix, out)
		return ""
	}
	assert.Equal(t, 31, strings.Count(find("Jan"), "."))
	assert.Equal(t, 29, strings.Count(find("Feb"), "."))
	assert.Equal(t, "Mar   - .", find("Mar"))
	assert.Equal(t, "Apr", find("Apr"))
	assert.Contains(t, out, "Less . - + # More")
}

func TestDayTooltips(t *testing.T) {
	e := testEnv(t)
	items := []model.Item{
		{ID: 1, Name: "a", Date: time.Date(2024, time.October, 15, 9, 0, 0, 0, time.Local)},
		{ID: 2, Name: "b", Date: time.Date(2024, time.October, 15, 18, 0, 0, 0, time.Local)},
		{ID: 3, Name: "c", Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)},
		{ID: 4, Name: "old", Date: time.Date(2023, time.May, 1, 0, 0, 0, 0, time.Local)},
		{ID: 5, Name: "future", Date: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.Local)},
	}
	got := DayTooltips(e, calendar.Aggregate(items), refDay)
	assert.Equal(t, []string{
		"Thu Feb 01 2024: 1 contribution",
		"Tue Oct 15 2024: 2 contributions",
	}, got)
}

func TestRenderTimeline(t *testing.T) {
	e := testEnv(t)
	groups := timeline.Group(store.DefaultCards())
	l := RenderTimeline(e, groups, 100, 0)
	out := plain(l.Content)

	require.Len(t, l.Spans, 6)
	for i := 1; i < len(l.Spans); i++ {
		assert.Less(t, l.Spans[i-1][1], l.Spans[i][1]+1)
		assert.Greater(t, l.Spans[i][0], l.Spans[i-1][0])
	}

	oct := strings.Index(out, "October 2024")
	sep := strings.Index(out, "September 2024")
	jul := strings.Index(out, "July 2024")
	require.True(t, oct >= 0 && sep > oct && jul > sep, out)

	assert.Contains(t, out, "10/15/2024")
	assert.Contains(t, out, "2h ago")
	// first line of the span is the date line
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[l.Spans[0][0]], "10/15/2024")
	assert.Contains(t, lines[l.Spans[5][0]], "7/30/2024")
}

func TestRenderTimeline_Empty(t *testing.T) {
	e := testEnv(t)
	l := RenderTimeline(e, nil, 80, -1)
	assert.Equal(t, "No cards yet", plain(l.Content))
	assert.Empty(t, l.Spans)
}

func TestRenderGrid(t *testing.T) {
	e := testEnv(t)
	cards := store.DefaultCards()

	l := RenderGrid(e, cards, 130, -1)
	require.Len(t, l.Spans, 6)
	// three per row: the first three share a span
	assert.Equal(t, l.Spans[0], l.Spans[2])
	assert.NotEqual(t, l.Spans[2], l.Spans[3])
	assert.Equal(t, l.Spans[2][1]+1, l.Spans[3][0])

	narrow := RenderGrid(e, cards, 60, -1)
	for i := 1; i < len(narrow.Spans); i++ {
		assert.NotEqual(t, narrow.Spans[i-1], narrow.Spans[i])
	}
	for _, ln := range strings.Split(plain(narrow.Content), "\n") {
		assert.LessOrEqual(t, len([]rune(ln)), 60)
	}
}

func TestRenderCard_Excerpt(t *testing.T) {
	e := testEnv(t)
	it := model.Item{ID: 1, Name: "Short", Posted: "now", Text: strings.Repeat("x", 150)}
	out := plain(renderCard(e, it, 200, false))
	assert.Contains(t, out, strings.Repeat("x", 100)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 101))
}

func TestTree(t *testing.T) {
	tr := NewTree(store.DefaultTree())
	require.Len(t, tr.Rows(), 1, "folders start collapsed")

	tr.Toggle()
	rows := tr.Rows()
	require.Len(t, rows, 5)
	assert.Equal(t, "project/src", rows[1].Path)
	assert.Equal(t, 1, rows[1].Depth)

	tr.Move(3) // package.json
	tr.Toggle()
	assert.Len(t, tr.Rows(), 5, "toggling a file does nothing")

	tr.Move(-100)
	assert.Equal(t, 0, tr.Cursor())
	tr.Move(100)
	assert.Equal(t, 4, tr.Cursor())

	tr.ExpandAll()
	assert.Len(t, tr.Rows(), 14)

	e := testEnv(t)
	lines := tr.RenderLines(e, false)
	require.Len(t, lines, 14)
	assert.Equal(t, "v [d] project", plain(lines[0]))
	assert.Equal(t, "        [f] Button.tsx", plain(lines[3]))
}

func TestTree_SetRootsClampsCursor(t *testing.T) {
	tr := NewTree(store.DefaultTree())
	tr.ExpandAll()
	tr.Move(13)
	tr.SetRoots([]model.Node{{Name: "solo", Kind: model.KindFile}})
	assert.Equal(t, 0, tr.Cursor())
}

func TestCardDetail(t *testing.T) {
	e := testEnv(t)
	it := store.DefaultCards()[2]
	out := plain(CardDetail(e, it, 100))
	assert.Contains(t, out, "Card 3")
	assert.Contains(t, out, "4h ago")
	assert.Contains(t, out, "esc to close")
	assert.Contains(t, out, "pariatur")
}

func TestAboutDialog(t *testing.T) {
	out := plain(AboutDialog(testEnv(t), 80))
	assert.Contains(t, out, config.AppName)
	assert.Contains(t, out, config.Version)
}

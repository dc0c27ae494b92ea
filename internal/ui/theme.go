package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/notepad/internal/calendar"
)

// Theme bundles palette + glyphs + box borders.
// Every renderer pulls its styles from the Theme it is handed.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Selected, Focused, Button            lipgloss.Style
	Bar                                  lipgloss.Style // top bar and status bar background

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor
	AccentColor lipgloss.TerminalColor

	// heatmap cells, indexed by calendar.Level
	Bands     [4]lipgloss.Style
	BandGlyph [4]string

	FolderOpen, FolderClosed, Folder, File string
	Dot, SubDot, Rail                      string
	MenuIcon, UserIcon, SearchIcon         string
}

func (t Theme) Band(l calendar.Level) string {
	return t.Bands[l].Render(t.BandGlyph[l])
}

// NewTheme returns the named theme; unknown names get "classic".
func NewTheme(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
			Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Padding(0, 1),
			Bar:         lipgloss.NewStyle().Background(lipgloss.Color("235")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("5"),
			AccentColor: lipgloss.Color("14"),
			Bands: [4]lipgloss.Style{
				lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
				lipgloss.NewStyle().Foreground(lipgloss.Color("53")),
				lipgloss.NewStyle().Foreground(lipgloss.Color("127")),
				lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
			},
			BandGlyph:    [4]string{"■", "■", "■", "■"},
			FolderOpen:   "▾",
			FolderClosed: "▸",
			Folder:       "◆",
			File:         "◇",
			Dot:          "◉",
			SubDot:       "○",
			Rail:         "│",
			MenuIcon:     "☰",
			UserIcon:     "◎",
			SearchIcon:   "⌕",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:         "mono",
			Title:        plain.Bold(true),
			Muted:        plain,
			Accent:       plain,
			Success:      plain,
			Error:        plain,
			Selected:     plain.Reverse(true),
			Focused:      plain.Underline(true),
			Button:       plain.Padding(0, 1),
			Bar:          plain,
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.NoColor{},
			AccentColor:  lipgloss.NoColor{},
			Bands:        [4]lipgloss.Style{plain, plain, plain, plain},
			BandGlyph:    [4]string{".", "-", "+", "#"},
			FolderOpen:   "v",
			FolderClosed: ">",
			Folder:       "[d]",
			File:         "[f]",
			Dot:          "*",
			SubDot:       "o",
			Rail:         "|",
			MenuIcon:     "=",
			UserIcon:     "@",
			SearchIcon:   "?",
		}
	default: // classic
		return Theme{
			Name:        "classic",
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Padding(0, 1),
			Bar:         lipgloss.NewStyle().Background(lipgloss.Color("236")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			AccentColor: lipgloss.Color("12"),
			Bands: [4]lipgloss.Style{
				lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // gray
				lipgloss.NewStyle().Foreground(lipgloss.Color("22")),  // dark green
				lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
				lipgloss.NewStyle().Foreground(lipgloss.Color("40")), // bright green
			},
			BandGlyph:    [4]string{"■", "■", "■", "■"},
			FolderOpen:   "▾",
			FolderClosed: "▸",
			Folder:       "▣",
			File:         "▢",
			Dot:          "●",
			SubDot:       "○",
			Rail:         "│",
			MenuIcon:     "☰",
			UserIcon:     "◉",
			SearchIcon:   "⌕",
		}
	}
}

// box is the framed container used by panels, cards and dialogs.
func (t Theme) box(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	if focused {
		s = s.BorderForeground(t.AccentColor)
		if t.Name == "mono" {
			s = s.Border(lipgloss.DoubleBorder())
		}
	}
	return s
}

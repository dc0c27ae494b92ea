package ui

import (
	"strings"

	"github.com/idilsaglam/notepad/internal/i18n"
)

// MenuItem is an entry of the user menu.
type MenuItem int

const (
	MenuProfile MenuItem = iota
	MenuAbout
	MenuLogin
)

var menuItems = []MenuItem{MenuProfile, MenuAbout, MenuLogin}

func (m MenuItem) label(e Env) string {
	switch m {
	case MenuAbout:
		return e.Tr.T(i18n.MsgAbout)
	case MenuLogin:
		return e.Tr.T(i18n.MsgLogin)
	default:
		return e.Tr.T(i18n.MsgProfile)
	}
}

func renderMenu(e Env, cursor int) string {
	t := e.Theme
	lines := make([]string, 0, len(menuItems))
	for i, it := range menuItems {
		ln := " " + it.label(e) + " "
		if i == cursor {
			ln = t.Selected.Render(ln)
		}
		lines = append(lines, ln)
	}
	return t.box(true).Width(20).Render(strings.Join(lines, "\n"))
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/notepad/internal/calendar"
	"github.com/idilsaglam/notepad/internal/i18n"
	"github.com/idilsaglam/notepad/internal/model"
	"github.com/idilsaglam/notepad/internal/store/jsonstore"
	"github.com/idilsaglam/notepad/internal/timeline"
)

type viewMode int

const (
	timelineMode viewMode = iota
	gridMode
)

type focusArea int

const (
	focusContent focusArea = iota
	focusSidebar
	focusSearch
	focusMenu
)

type dialogKind int

const (
	noDialog dialogKind = iota
	cardDialog
	aboutDialog
)

// reloadMsg carries a re-read dataset from the file watcher.
type reloadMsg jsonstore.Reload

// Dashboard is the Bubble Tea model for the whole screen. All presentation
// state lives here; the card views are recomputed from cards on every change.
type Dashboard struct {
	env  Env
	keys keyMap
	help help.Model

	cards  []model.Item
	groups []timeline.MonthGroup
	counts calendar.Counts

	tree        Tree
	sidebarOpen bool
	hovered     bool // sidebar opened by the mouse, closes when it leaves
	focus       focusArea
	mode        viewMode
	selected    int

	search     textinput.Model
	menuCursor int

	dialog     dialogKind
	dialogCard model.Item
	dialogBody string

	vp     viewport.Model
	layout Layout
	header int // viewport lines above the first card

	width, height int
	status        string
	statusStyle   lipgloss.Style

	reloads <-chan jsonstore.Reload
}

// NewDashboard builds the model for ds at a default 80x24 size; the first
// WindowSizeMsg replaces it.
func NewDashboard(env Env, ds model.Dataset) Dashboard {
	ti := textinput.New()
	ti.Prompt = env.Theme.SearchIcon + " "
	ti.Placeholder = env.Tr.T(i18n.MsgSearchPlaceholder)
	ti.CharLimit = 200

	w, h := 80, 24
	m := Dashboard{
		env:    env,
		keys:   defaultKeys(),
		help:   help.New(),
		tree:   NewTree(ds.Tree),
		search: ti,
		vp:     viewport.New(w, h),
		width:  w,
		height: h,
	}
	m.setCards(ds.Cards)
	m.resize()
	return m
}

// WithReloads feeds dataset changes from a watcher into the dashboard.
func (m Dashboard) WithReloads(ch <-chan jsonstore.Reload) Dashboard {
	m.reloads = ch
	return m
}

func waitReload(ch <-chan jsonstore.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

func (m Dashboard) Init() tea.Cmd { return waitReload(m.reloads) }

func (m *Dashboard) setCards(cards []model.Item) {
	var keep int
	hadSel := m.selected >= 0 && m.selected < len(m.order())
	if hadSel {
		keep = m.order()[m.selected].ID
	}
	m.cards = cards
	m.groups = timeline.Group(cards)
	m.counts = calendar.Aggregate(cards)
	m.selected = 0
	if hadSel {
		m.selectID(keep)
	}
	if m.dialog != cardDialog {
		return
	}
	if it, ok := model.Find(cards, m.dialogCard.ID); ok {
		m.dialogCard = it
		m.dialogBody = CardDetail(m.env, it, m.width)
	} else {
		m.dialog, m.dialogBody = noDialog, ""
	}
}

// order is the display order of the current view.
func (m Dashboard) order() []model.Item {
	if m.mode == gridMode {
		return m.cards
	}
	return timeline.Flatten(m.groups)
}

func (m *Dashboard) selectID(id int) {
	for i, it := range m.order() {
		if it.ID == id {
			m.selected = i
			return
		}
	}
}

func (m Dashboard) contentWidth() int {
	w := m.width - 1
	if m.sidebarOpen {
		w -= sidebarWidth + 1
	}
	return max(w, 20)
}

func (m Dashboard) menuHeight() int {
	if m.focus != focusMenu {
		return 0
	}
	return len(menuItems) + 2
}

// resize recomputes the viewport size and its content.
func (m *Dashboard) resize() {
	m.help.Width = m.width
	m.vp.Width = m.contentWidth()
	m.vp.Height = max(m.height-3-m.menuHeight(), 1) // top bar, status, help
	m.search.Width = clamp(m.width/3, 10, 60)
	m.rebuild()
}

func (m Dashboard) toggleLabel() string {
	if m.mode == gridMode {
		return m.env.Tr.T(i18n.MsgTimelineView)
	}
	return m.env.Tr.T(i18n.MsgGridView)
}

func (m *Dashboard) rebuild() {
	w := m.contentWidth()
	heat := RenderHeatmap(m.env, m.counts, m.env.now(), min(w, 80))
	toggle := rightAlign(m.env.Theme.Button.Render("["+m.toggleLabel()+"]"), w)

	sel := -1
	if m.focus == focusContent || m.dialog == cardDialog {
		sel = m.selected
	}
	if m.mode == gridMode {
		m.layout = RenderGrid(m.env, m.cards, w, sel)
	} else {
		m.layout = RenderTimeline(m.env, m.groups, w, sel)
	}
	m.header = lipgloss.Height(heat) + 2
	m.vp.SetContent(heat + "\n" + toggle + "\n\n" + m.layout.Content)
}

func (m *Dashboard) ensureVisible() {
	if m.selected < 0 || m.selected >= len(m.layout.Spans) {
		return
	}
	sp := m.layout.Spans[m.selected]
	start, end := m.header+sp[0], m.header+sp[1]
	switch {
	case start < m.vp.YOffset:
		m.vp.SetYOffset(start)
	case end > m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(min(end-m.vp.Height, start))
	}
}

func (m *Dashboard) moveSelection(delta int) {
	n := len(m.order())
	if n == 0 {
		return
	}
	m.selected = clamp(m.selected+delta, 0, n-1)
	m.rebuild()
	m.ensureVisible()
}

func (m *Dashboard) toggleView() {
	var id int
	order := m.order()
	ok := m.selected < len(order)
	if ok {
		id = order[m.selected].ID
	}
	if m.mode == gridMode {
		m.mode = timelineMode
	} else {
		m.mode = gridMode
	}
	if ok {
		m.selectID(id)
	}
	m.env.log().Debug("view toggled", zap.Bool("grid", m.mode == gridMode))
	m.rebuild()
	m.ensureVisible()
}

func (m *Dashboard) toggleSidebar() {
	m.sidebarOpen = !m.sidebarOpen
	m.hovered = false
	if !m.sidebarOpen && m.focus == focusSidebar {
		m.focus = focusContent
	}
	m.resize()
}

func (m *Dashboard) cycleFocus() {
	switch m.focus {
	case focusContent:
		if m.sidebarOpen {
			m.focus = focusSidebar
		} else {
			m.focus = focusSearch
		}
	case focusSidebar:
		m.focus = focusSearch
	default:
		m.focus = focusContent
	}
	if m.focus == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
	m.rebuild()
}

func (m *Dashboard) openCard() {
	order := m.order()
	if m.selected >= len(order) {
		return
	}
	m.dialog = cardDialog
	m.dialogCard = order[m.selected]
	m.dialogBody = CardDetail(m.env, m.dialogCard, m.width)
	m.env.log().Debug("card opened", zap.Int("id", m.dialogCard.ID))
}

func (m *Dashboard) activateMenu() {
	item := menuItems[m.menuCursor]
	m.focus = focusContent
	switch item {
	case MenuAbout:
		m.dialog = aboutDialog
		m.dialogBody = AboutDialog(m.env, m.width)
	case MenuLogin:
		m.setStatus(m.env.Theme.Accent, m.env.Tr.T(i18n.MsgLoginStatus))
	default:
		m.setStatus(m.env.Theme.Accent, m.env.Tr.T(i18n.MsgProfileStatus))
	}
	m.env.log().Debug("menu item", zap.String("item", item.label(m.env)))
	m.resize()
}

func (m Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		if m.dialog == cardDialog {
			m.dialogBody = CardDetail(m.env, m.dialogCard, m.width)
		} else if m.dialog == aboutDialog {
			m.dialogBody = AboutDialog(m.env, m.width)
		}
		return m, nil

	case reloadMsg:
		if msg.Err != nil {
			m.setStatus(m.env.Theme.Error, msg.Err.Error())
			m.env.log().Warn("reload failed", zap.Error(msg.Err))
		} else {
			m.setCards(msg.Dataset.Cards)
			m.tree.SetRoots(msg.Dataset.Tree)
			m.setStatus(m.env.Theme.Success, m.env.Tr.Tf(i18n.MsgReloaded, map[string]any{"Count": len(m.cards)}))
			m.rebuild()
		}
		return m, waitReload(m.reloads)

	case tea.MouseMsg:
		return m.updateMouse(msg), nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

// updateMouse opens the explorer while the pointer rests on the left edge.
func (m Dashboard) updateMouse(msg tea.MouseMsg) Dashboard {
	if msg.Action != tea.MouseActionMotion || m.dialog != noDialog {
		return m
	}
	switch {
	case !m.sidebarOpen && msg.X == 0:
		m.sidebarOpen, m.hovered = true, true
		m.resize()
	case m.hovered && msg.X >= sidebarWidth:
		m.sidebarOpen, m.hovered = false, false
		if m.focus == focusSidebar {
			m.focus = focusContent
		}
		m.resize()
	}
	return m
}

func (m Dashboard) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.dialog != noDialog {
		if key.Matches(msg, m.keys.Close, m.keys.Open) || msg.String() == "q" {
			m.dialog = noDialog
			m.dialogBody = ""
		}
		return m, nil
	}

	switch m.focus {
	case focusSearch:
		switch msg.String() {
		case "esc", "enter", "tab":
			m.search.Blur()
			m.focus = focusContent
			m.rebuild()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd

	case focusMenu:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.menuCursor = clamp(m.menuCursor-1, 0, len(menuItems)-1)
		case key.Matches(msg, m.keys.Down):
			m.menuCursor = clamp(m.menuCursor+1, 0, len(menuItems)-1)
		case key.Matches(msg, m.keys.Open):
			m.activateMenu()
		case key.Matches(msg, m.keys.Close, m.keys.Menu):
			m.focus = focusContent
			m.resize()
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Sidebar):
		m.toggleSidebar()
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		m.rebuild()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Menu):
		m.focus = focusMenu
		m.menuCursor = 0
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.View):
		m.toggleView()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus()
		if m.focus == focusSearch {
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.vp.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.vp.PageDown()
		return m, nil
	}

	if m.focus == focusSidebar {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.tree.Move(-1)
		case key.Matches(msg, m.keys.Down):
			m.tree.Move(1)
		case key.Matches(msg, m.keys.Open, m.keys.Left, m.keys.Right):
			m.tree.Toggle()
		case key.Matches(msg, m.keys.Close):
			m.focus = focusContent
			m.rebuild()
		}
		return m, nil
	}

	step := 1
	if m.mode == gridMode {
		step = Columns(m.contentWidth())
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-step)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(step)
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Open):
		m.openCard()
	}
	return m, nil
}

func (m Dashboard) topBar() string {
	t := m.env.Theme
	menu := t.Button.Render(t.MenuIcon)
	if m.sidebarOpen {
		menu = t.Focused.Render(" " + t.MenuIcon + " ")
	}
	search := m.search.View()
	if m.focus == focusSearch {
		search = t.Focused.Render("[") + search + t.Focused.Render("]")
	} else {
		search = t.Muted.Render("[") + search + t.Muted.Render("]")
	}
	user := t.Button.Render(t.UserIcon)
	if m.focus == focusMenu {
		user = t.Focused.Render(" " + t.UserIcon + " ")
	}
	left := menu + " " + search
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(user), 1)
	return t.Bar.Render(left + strings.Repeat(" ", gap) + user)
}

func (m *Dashboard) setStatus(s lipgloss.Style, msg string) {
	m.status, m.statusStyle = msg, s
}

func (m Dashboard) statusLine() string {
	t := m.env.Theme
	if m.status != "" {
		return m.statusStyle.Render(truncate(m.status, m.width))
	}
	order := m.order()
	if m.focus != focusContent || m.selected >= len(order) {
		return ""
	}
	it := order[m.selected]
	k := calendar.KeyOf(it.Date)
	if !calendar.InWindow(k, m.env.now()) {
		return ""
	}
	return t.Muted.Render(truncate(DayTooltip(m.env, k, m.counts.Get(k), it.Date.Location()), m.width))
}

func (m Dashboard) View() string {
	if m.dialog != noDialog {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialogBody)
	}

	parts := []string{m.topBar()}
	if m.focus == focusMenu {
		parts = append(parts, rightAlign(renderMenu(m.env, m.menuCursor), m.width))
	}

	body := m.vp.View()
	if m.sidebarOpen {
		side := m.tree.RenderSidebar(m.env, m.vp.Height, m.focus == focusSidebar)
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, " ", body)
	}
	parts = append(parts, body, m.statusLine(), m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

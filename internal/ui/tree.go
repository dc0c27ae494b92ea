package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/notepad/internal/i18n"
	"github.com/idilsaglam/notepad/internal/model"
)

const sidebarWidth = 32

// TreeRow is one visible line of the explorer.
type TreeRow struct {
	Node  model.Node
	Path  string
	Depth int
	Open  bool
}

// Tree is the explorer state: which folders are open and where the cursor is.
// Folders start closed.
type Tree struct {
	roots  []model.Node
	open   map[string]bool
	cursor int
}

// NewTree starts with every folder closed and the cursor on the first row.
func NewTree(roots []model.Node) Tree {
	return Tree{roots: roots, open: map[string]bool{}}
}

// SetRoots swaps the tree contents, keeping open folders that still exist.
func (t *Tree) SetRoots(roots []model.Node) {
	t.roots = roots
	t.cursor = clamp(t.cursor, 0, max(len(t.Rows())-1, 0))
}

func (t Tree) Rows() []TreeRow {
	var out []TreeRow
	var walk func(nodes []model.Node, prefix string, depth int)
	walk = func(nodes []model.Node, prefix string, depth int) {
		for _, n := range nodes {
			p := prefix + n.Name
			open := n.IsFolder() && t.open[p]
			out = append(out, TreeRow{Node: n, Path: p, Depth: depth, Open: open})
			if open {
				walk(n.Children, p+"/", depth+1)
			}
		}
	}
	walk(t.roots, "", 0)
	return out
}

func (t Tree) Cursor() int { return t.cursor }

func (t *Tree) Move(delta int) {
	t.cursor = clamp(t.cursor+delta, 0, max(len(t.Rows())-1, 0))
}

// Toggle opens or closes the folder under the cursor. Files are left alone.
func (t *Tree) Toggle() {
	rows := t.Rows()
	if t.cursor >= len(rows) || !rows[t.cursor].Node.IsFolder() {
		return
	}
	p := rows[t.cursor].Path
	t.open[p] = !t.open[p]
}

// ExpandAll opens every folder.
func (t *Tree) ExpandAll() {
	var walk func(nodes []model.Node, prefix string)
	walk = func(nodes []model.Node, prefix string) {
		for _, n := range nodes {
			if n.IsFolder() {
				t.open[prefix+n.Name] = true
				walk(n.Children, prefix+n.Name+"/")
			}
		}
	}
	walk(t.roots, "")
}

// RenderLines draws the visible rows; the cursor is highlighted only when
// the tree has focus.
func (t Tree) RenderLines(e Env, focused bool) []string {
	th := e.Theme
	var lines []string
	for i, r := range t.Rows() {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", r.Depth))
		if r.Node.IsFolder() {
			if r.Open {
				b.WriteString(th.FolderOpen + " ")
			} else {
				b.WriteString(th.FolderClosed + " ")
			}
			b.WriteString(th.Accent.Render(th.Folder) + " ")
		} else {
			b.WriteString("  " + th.Muted.Render(th.File) + " ")
		}
		b.WriteString(r.Node.Name)
		ln := b.String()
		if focused && i == t.cursor {
			ln = th.Selected.Render(ln)
		}
		lines = append(lines, ln)
	}
	return lines
}

// RenderSidebar is the "Explorer" panel, height rows tall.
func (t Tree) RenderSidebar(e Env, height int, focused bool) string {
	th := e.Theme
	title := th.Title.Render(e.Tr.T(i18n.MsgExplorer))
	body := append([]string{title, ""}, t.RenderLines(e, focused)...)
	for i := range body {
		body[i] = truncate(body[i], sidebarWidth-4)
	}
	s := th.box(focused).Width(sidebarWidth - 2)
	if height > 2 {
		s = s.Height(height - 2)
	}
	return lipgloss.NewStyle().MaxHeight(height).Render(s.Render(strings.Join(body, "\n")))
}

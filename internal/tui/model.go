// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zimsendapi/docs/internal/nav"
)

// Loader rebuilds the navigation tree.
type Loader func() (*nav.Tree, error)

// LoadedMsg carries a freshly built tree.
type LoadedMsg struct {
	Tree *nav.Tree
}

// LoadErrorMsg reports a failed rebuild. The previous tree stays on screen.
type LoadErrorMsg struct {
	Err error
}

// row is one visible line of the browser.
type row struct {
	depth int
	// key is the label path of the row, stable across rebuilds.
	key string
	// node is nil for sidebar headers.
	node    nav.Node
	sidebar string
}

// Model is the interactive sidebar browser.
type Model struct {
	Load    Loader
	Tree    *nav.Tree
	ShowIDs bool

	Cursor int
	Width  int
	Height int
	Err    string

	// open holds the expansion state of sidebars and categories by label path.
	open map[string]bool
	rows []row
}

// NewModel creates a browser that fills itself with load on Init.
func NewModel(load Loader) Model {
	return Model{Load: load, open: make(map[string]bool)}
}

// Init loads the first tree.
func (m Model) Init() tea.Cmd {
	return m.reload()
}

func (m Model) reload() tea.Cmd {
	load := m.Load
	return func() tea.Msg {
		t, err := load()
		if err != nil {
			return LoadErrorMsg{Err: err}
		}
		return LoadedMsg{Tree: t}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		var current string
		if m.Cursor < len(m.rows) {
			current = m.rows[m.Cursor].key
		}
		m.Tree = msg.Tree
		m.Err = ""
		m.seedOpen()
		m.layout()
		m.moveTo(current)

	case LoadErrorMsg:
		m.Err = msg.Err.Error()

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.rows)-1 {
				m.Cursor++
			}
		case "g", "home":
			m.Cursor = 0
		case "G", "end":
			m.Cursor = max(len(m.rows)-1, 0)
		case "enter", " ":
			m.toggle()
		case "right", "l":
			m.setOpen(true)
		case "left", "h":
			m.setOpen(false)
		case "i":
			m.ShowIDs = !m.ShowIDs
		case "r":
			return m, m.reload()
		}
	}
	return m, nil
}

// childKey returns the key of a node labelled label below parent. Repeated
// sibling labels are numbered by occurrence.
func childKey(parent, label string, seen map[string]int) string {
	seen[label]++
	key := parent + "\x00" + label
	if n := seen[label]; n > 1 {
		key += "#" + strconv.Itoa(n)
	}
	return key
}

// seedOpen opens sidebars and the categories marked as expanded. Entries
// already known keep the state the user gave them.
func (m *Model) seedOpen() {
	seen := make(map[string]int)
	for _, sb := range m.Tree.Sidebars {
		key := childKey("", sb.Name, seen)
		if _, known := m.open[key]; !known {
			m.open[key] = true
		}
		seedCategories(m.open, key, sb.Items)
	}
}

func seedCategories(open map[string]bool, parent string, nodes []nav.Node) {
	seen := make(map[string]int)
	for _, n := range nodes {
		c, ok := n.(*nav.Category)
		if !ok {
			continue
		}
		key := childKey(parent, c.Label, seen)
		if _, known := open[key]; !known {
			open[key] = c.Collapsed != nil && !*c.Collapsed
		}
		seedCategories(open, key, c.Items)
	}
}

// layout flattens the open part of the tree into rows.
func (m *Model) layout() {
	m.rows = m.rows[:0]
	if m.Tree != nil {
		seen := make(map[string]int)
		for _, sb := range m.Tree.Sidebars {
			key := childKey("", sb.Name, seen)
			m.rows = append(m.rows, row{key: key, sidebar: sb.Name})
			if m.open[key] {
				m.addRows(key, sb.Items, 1)
			}
		}
	}
	if m.Cursor >= len(m.rows) {
		m.Cursor = max(len(m.rows)-1, 0)
	}
}

func (m *Model) addRows(parent string, nodes []nav.Node, depth int) {
	seen := make(map[string]int)
	for _, n := range nodes {
		key := childKey(parent, nodeLabel(n), seen)
		m.rows = append(m.rows, row{depth: depth, key: key, node: n})
		if c, ok := n.(*nav.Category); ok && m.open[key] {
			m.addRows(key, c.Items, depth+1)
		}
	}
}

// moveTo puts the cursor on the row with key, if it is still visible.
func (m *Model) moveTo(key string) {
	if key == "" {
		return
	}
	for i, r := range m.rows {
		if r.key == key {
			m.Cursor = i
			return
		}
	}
}

func nodeLabel(n nav.Node) string {
	switch n := n.(type) {
	case *nav.DocRef:
		return "doc:" + n.ID
	case *nav.Category:
		return n.Label
	case *nav.Link:
		return "link:" + n.Label
	default:
		panic(fmt.Sprintf("tui: unknown node type %T", n))
	}
}

func (m *Model) expandable() (row, bool) {
	if m.Cursor >= len(m.rows) {
		return row{}, false
	}
	r := m.rows[m.Cursor]
	if r.node == nil {
		return r, true
	}
	_, ok := r.node.(*nav.Category)
	return r, ok
}

func (m *Model) toggle() {
	if r, ok := m.expandable(); ok {
		m.open[r.key] = !m.open[r.key]
		m.layout()
	}
}

func (m *Model) setOpen(open bool) {
	if r, ok := m.expandable(); ok {
		m.open[r.key] = open
		m.layout()
	}
}

// View renders the browser
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("navgen") + StyleSubtle.Render("  sidebar browser") + "\n\n")

	if m.Tree == nil {
		if m.Err != "" {
			sb.WriteString(lipgloss.NewStyle().Foreground(ColorWarn).Render("⚠ "+m.Err) + "\n")
		} else {
			sb.WriteString(StyleSubtle.Render("Building navigation...") + "\n")
		}
		return sb.String()
	}

	start, end := m.window()
	for i := start; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = StyleHeader.Render("› ")
		}
		sb.WriteString(cursor + m.renderRow(m.rows[i]) + "\n")
	}

	sb.WriteString("\n")
	if m.Err != "" {
		sb.WriteString(lipgloss.NewStyle().Foreground(ColorWarn).Render("⚠ reload failed: "+m.Err) + "\n")
	}
	sb.WriteString(StyleSubtle.Render("↑/↓ move • enter toggle • i ids • r rebuild • q quit"))
	return sb.String()
}

// window returns the row range that fits the terminal height.
func (m Model) window() (int, int) {
	visible := m.Height - 5
	if m.Height == 0 || visible >= len(m.rows) {
		return 0, len(m.rows)
	}
	visible = max(visible, 1)
	start := max(m.Cursor-visible/2, 0)
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
		start = end - visible
	}
	return start, end
}

func (m Model) renderRow(r row) string {
	indent := strings.Repeat("  ", r.depth)
	if r.node == nil {
		return StyleHeader.Render(m.marker(r.key)+r.sidebar) + StyleSubtle.Render(fmt.Sprintf("  %d entries", m.sidebarCount(r.sidebar)))
	}
	switch n := r.node.(type) {
	case *nav.DocRef:
		return indent + "  " + docLine(n, TreeOptions{ShowIDs: m.ShowIDs})
	case *nav.Category:
		line := indent + StyleCategory.Render(m.marker(r.key)+n.Label)
		if n.Link != nil {
			line += StyleSubtle.Render(" → " + n.Link.ID)
		}
		return line
	case *nav.Link:
		return indent + "  " + StyleLink.Render(n.Label) + StyleSubtle.Render(" ↗ "+n.Href)
	default:
		panic(fmt.Sprintf("tui: unknown node type %T", n))
	}
}

func (m Model) marker(key string) string {
	if m.open[key] {
		return "▾ "
	}
	return "▸ "
}

func (m Model) sidebarCount(name string) int {
	sb, _ := m.Tree.Sidebar(name)
	return nav.Count(sb.Items)
}

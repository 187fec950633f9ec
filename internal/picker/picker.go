// Package picker provides the interactive hook selector used by `micbot use`.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/samhoang/micbot/internal/db"
)

const maxVisibleItems = 10 // Maximum items to show before scrolling

// Item represents a selectable item
type Item struct {
	ID       string
	Label    string
	Selected bool
}

// HookItems builds picker items from store entries, preselecting the active hook
func HookItems(entries []db.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		label := fmt.Sprintf("%-16s %s", e.Name, lipgloss.NewStyle().Faint(true).Render(e.URL))
		if e.Active {
			label += " (ACTIVE)"
		}
		items = append(items, Item{ID: e.Name, Label: label, Selected: e.Active})
	}
	return items
}

// Model is the Bubble Tea model for the single-select picker
type Model struct {
	title       string
	items       []Item
	cursor      int
	offset      int // scroll offset
	done        bool
	quitting    bool
	searchInput textinput.Model
	searching   bool
}

// New creates a picker with the cursor on the first preselected item
func New(title string, items []Item) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to search..."
	ti.CharLimit = 50
	ti.Width = 40

	cursor := 0
	for i, item := range items {
		if item.Selected {
			cursor = i
			break
		}
	}

	m := Model{
		title:       title,
		items:       items,
		cursor:      cursor,
		searchInput: ti,
	}
	m.adjustScroll()
	return m
}

// Selected returns the ID under the cursor
func (m Model) Selected() string {
	filtered := m.filtered()
	if len(filtered) > 0 && m.cursor < len(filtered) {
		return filtered[m.cursor].ID
	}
	return ""
}

// IsQuitting returns true if the user quit without confirming
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) filtered() []Item {
	if m.searchInput.Value() == "" {
		return m.items
	}

	query := strings.ToLower(m.searchInput.Value())
	var out []Item
	for _, item := range m.items {
		if strings.Contains(strings.ToLower(item.ID), query) {
			out = append(out, item)
		}
	}
	return out
}

// adjustScroll keeps the cursor inside the viewport
func (m *Model) adjustScroll() {
	count := len(m.filtered())

	m.cursor = min(m.cursor, count-1)
	m.cursor = max(m.cursor, 0)

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxVisibleItems {
		m.offset = m.cursor - maxVisibleItems + 1
	}

	m.offset = min(m.offset, max(count-maxVisibleItems, 0))
	m.offset = max(m.offset, 0)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.searchInput.SetValue("")
				m.searchInput.Blur()
				m.cursor, m.offset = 0, 0
				return m, nil
			case "enter":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			default:
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.cursor, m.offset = 0, 0
				return m, cmd
			}
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Search):
			m.searching = true
			cmd = m.searchInput.Focus()
			return m, cmd

		case key.Matches(msg, keys.Up):
			n := len(m.filtered())
			if m.cursor > 0 {
				m.cursor--
			} else if n > 0 {
				m.cursor = n - 1
			}
			m.adjustScroll()

		case key.Matches(msg, keys.Down):
			n := len(m.filtered())
			if m.cursor < n-1 {
				m.cursor++
			} else {
				m.cursor, m.offset = 0, 0
			}
			m.adjustScroll()

		case key.Matches(msg, keys.Confirm):
			if m.Selected() == "" {
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	faint := lipgloss.NewStyle().Faint(true)

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	if m.searching {
		b.WriteString("\n/ ")
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	} else if m.searchInput.Value() != "" {
		b.WriteString("\n")
		b.WriteString(faint.Render("Filter: " + m.searchInput.Value() + " (press / to edit, esc to clear)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	items := m.filtered()
	if len(items) == 0 {
		if m.searchInput.Value() != "" {
			b.WriteString(faint.Render("  (no matching hooks)"))
		} else {
			b.WriteString(faint.Render("  (no hooks)"))
		}
		b.WriteString("\n")
	} else {
		if m.offset > 0 {
			b.WriteString(faint.Render(fmt.Sprintf("  ↑ %d more above", m.offset)))
			b.WriteString("\n")
		}

		end := min(m.offset+maxVisibleItems, len(items))
		for i := m.offset; i < end; i++ {
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> "))
				b.WriteString(selectedStyle.Render(items[i].Label))
			} else {
				b.WriteString("  ")
				b.WriteString(items[i].Label)
			}
			b.WriteString("\n")
		}

		if remaining := len(items) - end; remaining > 0 {
			b.WriteString(faint.Render(fmt.Sprintf("  ↓ %d more below", remaining)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(faint.Render("↑/↓: navigate • /: search • enter: select • q: quit"))

	return b.String()
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Search  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
	),
}

// Run runs the picker and returns the selected ID, or "" if the user quit
func Run(title string, items []Item) (string, error) {
	p := tea.NewProgram(New(title, items))

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	fm := finalModel.(Model)
	if fm.IsQuitting() {
		return "", nil
	}

	return fm.Selected(), nil
}

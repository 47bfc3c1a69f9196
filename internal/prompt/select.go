package prompt

import (
	"strings"

	"github.com/wahlandcase/attuned.commitprompt/internal/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// maxVisibleItems bounds the menu height
const maxVisibleItems = 10

type selectModel struct {
	label  string
	items  []string
	filter textinput.Model

	// matches is the filtered view; Index points back into items
	matches []fuzzy.Match
	cursor  int
	offset  int

	chosen   int
	done     bool
	canceled bool
}

func newSelectModel(label string, items []string, defaultIndex int) selectModel {
	filter := textinput.New()
	filter.Prompt = ""
	filter.Placeholder = "type to filter"
	filter.PlaceholderStyle = ui.MutedStyle
	filter.CharLimit = 0
	filter.Focus()

	m := selectModel{
		label:  label,
		items:  items,
		filter: filter,
	}
	m.refilter()
	if defaultIndex >= 0 && defaultIndex < len(items) {
		m.cursor = defaultIndex
	}
	m.scroll()
	return m
}

// refilter ranks items against the filter text. An empty filter keeps the
// original order.
func (m *selectModel) refilter() {
	pattern := m.filter.Value()
	if pattern == "" {
		m.matches = make([]fuzzy.Match, len(m.items))
		for i, item := range m.items {
			m.matches[i] = fuzzy.Match{Str: item, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(pattern, m.items)
	}
	m.cursor = 0
	m.offset = 0
}

// scroll keeps the cursor inside the visible window
func (m *selectModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxVisibleItems {
		m.offset = m.cursor - maxVisibleItems + 1
	}
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			if len(m.matches) == 0 {
				return m, nil
			}
			m.chosen = m.matches[m.cursor].Index
			m.done = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if len(m.matches) > 0 {
				if m.cursor > 0 {
					m.cursor--
				} else {
					m.cursor = len(m.matches) - 1 // Wrap to bottom
				}
				m.scroll()
			}
			return m, nil
		case "down", "ctrl+n":
			if len(m.matches) > 0 {
				if m.cursor < len(m.matches)-1 {
					m.cursor++
				} else {
					m.cursor = 0 // Wrap to top
				}
				m.scroll()
			}
			return m, nil
		}
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m selectModel) View() string {
	if m.done {
		return ui.Answered(m.label, m.items[m.chosen]) + "\n"
	}
	if m.canceled {
		return ui.Question(m.label) + ui.MutedStyle.Render("canceled") + "\n"
	}

	var b strings.Builder
	b.WriteString(ui.Question(m.label))
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	if len(m.matches) == 0 {
		b.WriteString(ui.MutedStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	end := min(m.offset+maxVisibleItems, len(m.matches))
	for i := m.offset; i < end; i++ {
		match := m.matches[i]
		b.WriteString(ui.MenuItem(match.Str, match.MatchedIndexes, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString(ui.KeyHints("↑/↓", "move", "enter", "select", "esc", "cancel"))
	b.WriteString("\n")
	return b.String()
}

package prompt

import (
	"github.com/wahlandcase/attuned.commitprompt/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel waits for Enter after y/n so a stray key never answers
type confirmModel struct {
	label    string
	value    bool
	done     bool
	canceled bool
}

func newConfirmModel(label string, defaultValue bool) confirmModel {
	return confirmModel{label: label, value: defaultValue}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit
	case "y", "Y":
		m.value = true
	case "n", "N":
		m.value = false
	case "left", "right", "tab", "h", "l":
		m.value = !m.value
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ui.Answered(m.label, ui.BoolAnswer(m.value)) + "\n"
	}
	if m.canceled {
		return ui.Question(m.label) + ui.MutedStyle.Render("canceled") + "\n"
	}
	return ui.Question(m.label) + ui.YesNo(m.value) + "\n" +
		ui.KeyHints("y/n", "choose", "enter", "confirm") + "\n"
}

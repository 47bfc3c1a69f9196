package prompt

import (
	"strings"

	"github.com/wahlandcase/attuned.commitprompt/internal/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	label      string
	input      textinput.Model
	validate   func(string) error
	allowEmpty bool

	history *History
	histPos int // -1 while editing the draft
	draft   string

	errorLine string
	value     string
	done      bool
	canceled  bool
}

func newInputModel(opts InputOptions) inputModel {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0
	input.SetValue(opts.Initial)
	input.CursorEnd()
	input.Focus()

	return inputModel{
		label:      opts.Label,
		input:      input,
		validate:   opts.Validate,
		allowEmpty: opts.AllowEmpty,
		history:    opts.History,
		histPos:    -1,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "up":
			m.recall(m.histPos + 1)
			return m, nil
		case "down":
			m.recall(m.histPos - 1)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.errorLine = ""
	}
	return m, cmd
}

func (m inputModel) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	if value == "" && !m.allowEmpty {
		return m, nil
	}

	// Every attempt is recallable, accepted or not
	if m.history != nil {
		m.history.Write(value)
	}
	m.histPos = -1

	if m.validate != nil {
		if err := m.validate(value); err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
	}

	m.value = value
	m.done = true
	return m, tea.Quit
}

// recall moves through history; pos -1 restores the draft typed before
// navigation started
func (m *inputModel) recall(pos int) {
	if m.history == nil || pos < -1 {
		return
	}

	if pos == -1 {
		if m.histPos != -1 {
			m.histPos = -1
			m.input.SetValue(m.draft)
			m.input.CursorEnd()
		}
		return
	}

	entry, ok := m.history.Get(pos)
	if !ok {
		return
	}
	if m.histPos == -1 {
		m.draft = m.input.Value()
	}
	m.histPos = pos
	m.input.SetValue(entry)
	m.input.CursorEnd()
}

func (m inputModel) View() string {
	if m.done {
		return ui.Answered(m.label, m.value) + "\n"
	}
	if m.canceled {
		return ui.Question(m.label) + ui.MutedStyle.Render("canceled") + "\n"
	}

	var b strings.Builder
	b.WriteString(ui.Question(m.label))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errorLine != "" {
		b.WriteString(ui.ErrorLine(m.errorLine))
		b.WriteString("\n")
	}
	return b.String()
}

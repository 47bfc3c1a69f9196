// Package prompt implements the terminal questions used to collect a commit
// message: a fuzzy-filterable select, a validated text input with history and
// a yes/no confirm. Each question runs as its own short bubbletea program.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCanceled is returned when the user dismisses a question (esc / ctrl+c).
var ErrCanceled = errors.New("prompt canceled")

// InputOptions configures a free-text question.
type InputOptions struct {
	Label string
	// Initial pre-fills the editable line.
	Initial string
	// AllowEmpty accepts an empty submission; otherwise Enter is ignored until
	// something is typed.
	AllowEmpty bool
	// Validate may reject a submission; its message is shown under the input
	// and the question stays open.
	Validate func(string) error
	// History records submissions and lets up/down recall them.
	History *History
}

// Terminal asks questions on a real terminal.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminal draws on stderr so stdout stays free for the final message.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stderr}
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("terminal interaction failed: %w", err)
	}
	return final, nil
}

// Select shows a fuzzy-searchable menu and returns the chosen index into items.
func (t *Terminal) Select(ctx context.Context, label string, items []string, defaultIndex int) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%s: no options to choose from", label)
	}

	final, err := t.run(ctx, newSelectModel(label, items, defaultIndex))
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	if m.canceled {
		return 0, ErrCanceled
	}
	return m.chosen, nil
}

// Input asks for one line of text.
func (t *Terminal) Input(ctx context.Context, opts InputOptions) (string, error) {
	final, err := t.run(ctx, newInputModel(opts))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.canceled {
		return "", ErrCanceled
	}
	return m.value, nil
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(ctx context.Context, label string, defaultValue bool) (bool, error) {
	final, err := t.run(ctx, newConfirmModel(label, defaultValue))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.canceled {
		return false, ErrCanceled
	}
	return m.value, nil
}

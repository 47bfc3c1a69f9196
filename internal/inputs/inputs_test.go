package inputs

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wahlandcase/attuned.commitprompt/internal/config"
	"github.com/wahlandcase/attuned.commitprompt/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type selectAnswer struct {
	index int
	err   error
}

// inputAnswer lists what the user submits, in order, until one validates
type inputAnswer struct {
	submissions []string
	err         error
}

type fakePrompter struct {
	selects    []selectAnswer
	inputs     []inputAnswer
	confirms   []bool
	confirmErr error

	asked      []string
	inputOpts  []prompt.InputOptions
	rejections []string
}

func (f *fakePrompter) Select(_ context.Context, label string, items []string, defaultIndex int) (int, error) {
	f.asked = append(f.asked, label)
	a := f.selects[0]
	f.selects = f.selects[1:]
	return a.index, a.err
}

func (f *fakePrompter) Input(_ context.Context, opts prompt.InputOptions) (string, error) {
	f.asked = append(f.asked, opts.Label)
	f.inputOpts = append(f.inputOpts, opts)
	a := f.inputs[0]
	f.inputs = f.inputs[1:]
	if a.err != nil {
		return "", a.err
	}

	for _, s := range a.submissions {
		if opts.History != nil {
			opts.History.Write(s)
		}
		if opts.Validate == nil {
			return s, nil
		}
		if err := opts.Validate(s); err != nil {
			f.rejections = append(f.rejections, err.Error())
			continue
		}
		return s, nil
	}
	return "", errors.New("no submission accepted")
}

func (f *fakePrompter) Confirm(_ context.Context, label string, defaultValue bool) (bool, error) {
	f.asked = append(f.asked, label)
	if f.confirmErr != nil {
		return false, f.confirmErr
	}
	v := f.confirms[0]
	f.confirms = f.confirms[1:]
	return v, nil
}

type fakeEditor struct {
	result   string
	err      error
	calls    int
	template string
}

func (f *fakeEditor) Edit(_ context.Context, template string) (string, error) {
	f.calls++
	f.template = template
	return f.result, f.err
}

type fakeBranch struct {
	name  string
	calls int
}

func (f *fakeBranch) CurrentBranch() string {
	f.calls++
	return f.name
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ChangeTypes.Items = []string{"feat", "fix"}
	cfg.Scopes.Items = []string{"none", "api"}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestCollectEndToEnd(t *testing.T) {
	desc39 := strings.Repeat("a", 39)
	desc40 := strings.Repeat("b", 40)

	t.Run("39 chars accepted first time", func(t *testing.T) {
		p := &fakePrompter{
			selects:  []selectAnswer{{index: 0}, {index: 1}},
			inputs:   []inputAnswer{{submissions: []string{desc39}}, {submissions: []string{"ABC-123"}}},
			confirms: []bool{false},
		}
		ed := &fakeEditor{}

		got, err := Collect(context.Background(), testConfig(t), p, ed, &fakeBranch{name: "feature/ABC-123-fix"})
		require.NoError(t, err)

		assert.Equal(t, "feat", got.ChangeType)
		assert.Equal(t, "api", got.Scope)
		assert.False(t, got.DefaultScope)
		assert.Equal(t, desc39, got.Description)
		assert.Empty(t, got.LongDescription)
		assert.Empty(t, got.BreakingChanges)
		assert.Equal(t, "ABC-123", got.Ticket)
		assert.Empty(t, p.rejections)
		assert.Equal(t, []string{"Type", "Scope", "Description", "Longer description (optional)", "Ticket (optional)"}, p.asked)
	})

	t.Run("40 chars forced on identical resubmission", func(t *testing.T) {
		p := &fakePrompter{
			selects:  []selectAnswer{{index: 0}, {index: 1}},
			inputs:   []inputAnswer{{submissions: []string{desc40, desc40}}, {submissions: []string{""}}},
			confirms: []bool{false},
		}

		got, err := Collect(context.Background(), testConfig(t), p, &fakeEditor{}, &fakeBranch{})
		require.NoError(t, err)

		assert.Equal(t, desc40, got.Description)
		require.Len(t, p.rejections, 1)
		assert.Contains(t, p.rejections[0], "you can only write 39 chars and you wrote: 40")
	})
}

func TestCollectDescriptionPromptOptions(t *testing.T) {
	p := &fakePrompter{
		selects:  []selectAnswer{{index: 1}, {index: 0}},
		inputs:   []inputAnswer{{submissions: []string{"x", "x"}}, {submissions: []string{""}}},
		confirms: []bool{false},
	}

	got, err := Collect(context.Background(), testConfig(t), p, &fakeEditor{}, &fakeBranch{name: "main"})
	require.NoError(t, err)
	assert.True(t, got.DefaultScope)
	assert.Equal(t, "fix", got.ChangeType)
	assert.Equal(t, "none", got.Scope)

	desc := p.inputOpts[0]
	assert.False(t, desc.AllowEmpty)
	require.NotNil(t, desc.History)
	assert.Equal(t, []string{"x"}, desc.History.Entries())
	require.NoError(t, desc.Validate(strings.Repeat("c", 45)), "budget is 50-(3+2) with the default scope")

	ticket := p.inputOpts[1]
	assert.True(t, ticket.AllowEmpty)
	assert.Empty(t, ticket.Initial, "main has no ticket")
}

func TestCollectLongDescription(t *testing.T) {
	t.Run("accepted goes through the editor", func(t *testing.T) {
		p := &fakePrompter{
			selects:  []selectAnswer{{index: 0}, {index: 0}},
			inputs:   []inputAnswer{{submissions: []string{"add"}}, {submissions: []string{""}}},
			confirms: []bool{true},
		}
		ed := &fakeEditor{result: "# hint\nbody1\n#also comment\nbody2"}

		got, err := Collect(context.Background(), testConfig(t), p, ed, &fakeBranch{})
		require.NoError(t, err)

		assert.Equal(t, 1, ed.calls)
		assert.Equal(t, LongDescriptionTemplate(), ed.template)
		assert.Equal(t, "body1\nbody2\n", got.LongDescription)
	})

	t.Run("declined never opens the editor", func(t *testing.T) {
		p := &fakePrompter{
			selects:  []selectAnswer{{index: 0}, {index: 0}},
			inputs:   []inputAnswer{{submissions: []string{"add"}}, {submissions: []string{""}}},
			confirms: []bool{false},
		}
		ed := &fakeEditor{}

		got, err := Collect(context.Background(), testConfig(t), p, ed, &fakeBranch{})
		require.NoError(t, err)

		assert.Zero(t, ed.calls)
		assert.Equal(t, "", got.LongDescription)
	})

	t.Run("editor failure aborts the pipeline", func(t *testing.T) {
		p := &fakePrompter{
			selects:  []selectAnswer{{index: 0}, {index: 0}},
			inputs:   []inputAnswer{{submissions: []string{"add"}}},
			confirms: []bool{true},
		}
		ed := &fakeEditor{err: errors.New("no editor found")}
		branch := &fakeBranch{name: "ABC-1"}

		_, err := Collect(context.Background(), testConfig(t), p, ed, branch)

		var qerr *QuestionError
		require.ErrorAs(t, err, &qerr)
		assert.Equal(t, "failed to edit longer description: no editor found", err.Error())
		assert.Zero(t, branch.calls, "ticket stage never runs")
	})
}

func TestCollectSelectionCanceled(t *testing.T) {
	tests := []struct {
		name    string
		selects []selectAnswer
		asked   []string
	}{
		{"type menu", []selectAnswer{{err: prompt.ErrCanceled}}, []string{"Type"}},
		{"scope menu", []selectAnswer{{index: 0}, {err: prompt.ErrCanceled}}, []string{"Type", "Scope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePrompter{selects: tt.selects}
			ed := &fakeEditor{}
			branch := &fakeBranch{name: "feature/ABC-123"}

			got, err := Collect(context.Background(), testConfig(t), p, ed, branch)

			assert.ErrorIs(t, err, ErrAborted)
			assert.Zero(t, got)
			assert.Equal(t, tt.asked, p.asked)
			assert.Zero(t, ed.calls)
			assert.Zero(t, branch.calls)
		})
	}
}

func TestCollectSelectionTerminalError(t *testing.T) {
	boom := errors.New("tty gone")
	p := &fakePrompter{selects: []selectAnswer{{err: boom}}}

	_, err := Collect(context.Background(), testConfig(t), p, &fakeEditor{}, &fakeBranch{})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrAborted)
	assert.Equal(t, "failed to present change type selection: tty gone", err.Error())
}

func TestCollectSelectionOutOfRange(t *testing.T) {
	p := &fakePrompter{selects: []selectAnswer{{index: 0}, {index: 7}}}

	_, err := Collect(context.Background(), testConfig(t), p, &fakeEditor{}, &fakeBranch{})

	var qerr *QuestionError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "present scope selection", qerr.Question)
}

func TestCollectTextPromptFailuresAreWrapped(t *testing.T) {
	boom := errors.New("read error")

	t.Run("description", func(t *testing.T) {
		p := &fakePrompter{
			selects: []selectAnswer{{index: 0}, {index: 0}},
			inputs:  []inputAnswer{{err: boom}},
		}
		_, err := Collect(context.Background(), testConfig(t), p, &fakeEditor{}, &fakeBranch{})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "failed to ask for description: read error", err.Error())
	})

	t.Run("confirm", func(t *testing.T) {
		p := &fakePrompter{
			selects:    []selectAnswer{{index: 0}, {index: 0}},
			inputs:     []inputAnswer{{submissions: []string{"x"}}},
			confirmErr: prompt.ErrCanceled,
		}
		_, err := Collect(context.Background(), testConfig(t), p, &fakeEditor{}, &fakeBranch{})
		assert.ErrorIs(t, err, prompt.ErrCanceled)
		assert.NotErrorIs(t, err, ErrAborted)
		assert.Equal(t, "failed to ask for longer description: prompt canceled", err.Error())
	})

	t.Run("ticket", func(t *testing.T) {
		p := &fakePrompter{
			selects:  []selectAnswer{{index: 0}, {index: 0}},
			inputs:   []inputAnswer{{submissions: []string{"x"}}, {err: boom}},
			confirms: []bool{false},
		}
		_, err := Collect(context.Background(), testConfig(t), p, &fakeEditor{}, &fakeBranch{})
		assert.Equal(t, "failed to ask for ticket: read error", err.Error())
	})
}

func TestCollectTicketCandidate(t *testing.T) {
	tests := []struct {
		branch string
		want   string
	}{
		{"feature/ABC-123-fix", "ABC-123"},
		{"main", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			p := &fakePrompter{
				selects:  []selectAnswer{{index: 0}, {index: 0}},
				inputs:   []inputAnswer{{submissions: []string{"x"}}, {submissions: []string{"kept"}}},
				confirms: []bool{false},
			}

			got, err := Collect(context.Background(), testConfig(t), p, &fakeEditor{}, &fakeBranch{name: tt.branch})
			require.NoError(t, err)

			assert.Equal(t, tt.want, p.inputOpts[1].Initial)
			assert.Equal(t, "kept", got.Ticket, "the user's final answer wins")
		})
	}
}

func TestCollectWithoutBranchSource(t *testing.T) {
	p := &fakePrompter{
		selects:  []selectAnswer{{index: 0}, {index: 0}},
		inputs:   []inputAnswer{{submissions: []string{"x"}}, {submissions: []string{""}}},
		confirms: []bool{false},
	}

	got, err := Collect(context.Background(), testConfig(t), p, &fakeEditor{}, nil)
	require.NoError(t, err)
	assert.Empty(t, p.inputOpts[1].Initial)
	assert.Empty(t, got.Ticket)
}

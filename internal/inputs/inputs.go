// Package inputs runs the question sequence that produces the fields of a
// commit message: change type, scope, description, optional long
// description and optional ticket.
package inputs

import (
	"context"
	"errors"
	"fmt"

	"github.com/wahlandcase/attuned.commitprompt/internal/config"
	"github.com/wahlandcase/attuned.commitprompt/internal/git"
	"github.com/wahlandcase/attuned.commitprompt/internal/logger"
	"github.com/wahlandcase/attuned.commitprompt/internal/models"
	"github.com/wahlandcase/attuned.commitprompt/internal/prompt"
)

// ErrAborted means a required selection was canceled. Callers exit with
// status 1 without printing anything.
var ErrAborted = errors.New("selection aborted")

// Prompter asks the questions. prompt.Terminal is the real implementation.
type Prompter interface {
	Select(ctx context.Context, label string, items []string, defaultIndex int) (int, error)
	Input(ctx context.Context, opts prompt.InputOptions) (string, error)
	Confirm(ctx context.Context, label string, defaultValue bool) (bool, error)
}

// Editor round-trips text through the user's editor.
type Editor interface {
	Edit(ctx context.Context, template string) (string, error)
}

// BranchSource reports the current branch name, "" on any failure.
type BranchSource interface {
	CurrentBranch() string
}

// QuestionError tells which question failed.
type QuestionError struct {
	Question string
	Err      error
}

func (e *QuestionError) Error() string {
	return "failed to " + e.Question + ": " + e.Err.Error()
}

func (e *QuestionError) Unwrap() error {
	return e.Err
}

// Collect asks every question in order and bundles the answers. It returns
// ErrAborted when a selection menu is canceled and a *QuestionError for any
// other failure; no partial result is returned in either case.
func Collect(ctx context.Context, cfg *config.Config, p Prompter, ed Editor, branches BranchSource) (models.Inputs, error) {
	log := logger.FromContext(ctx)

	typeIndex, err := selectOption(ctx, p, "Type", "present change type selection", cfg.ChangeTypes.Items)
	if err != nil {
		return models.Inputs{}, err
	}
	scopeIndex, err := selectOption(ctx, p, "Scope", "present scope selection", cfg.Scopes.Items)
	if err != nil {
		return models.Inputs{}, err
	}

	changeType := cfg.ChangeTypes.Items[typeIndex]
	scope := cfg.Scopes.Items[scopeIndex]
	log.Debug("selections made", "type", changeType, "scope", scope, "scope_index", scopeIndex)

	description, err := askDescription(ctx, p, changeType, scope, scopeIndex)
	if err != nil {
		return models.Inputs{}, err
	}

	longDescription, err := askLongDescription(ctx, p, ed)
	if err != nil {
		return models.Inputs{}, err
	}

	ticket, err := askTicket(ctx, p, cfg, branches)
	if err != nil {
		return models.Inputs{}, err
	}

	return models.Inputs{
		ChangeType:      changeType,
		Scope:           scope,
		DefaultScope:    scopeIndex == 0,
		Description:     description,
		LongDescription: longDescription,
		BreakingChanges: "",
		Ticket:          ticket,
	}, nil
}

func selectOption(ctx context.Context, p Prompter, label, question string, items []string) (int, error) {
	index, err := p.Select(ctx, label, items, 0)
	if err != nil {
		if errors.Is(err, prompt.ErrCanceled) {
			logger.FromContext(ctx).Debug("selection canceled", "question", label)
			return 0, ErrAborted
		}
		return 0, &QuestionError{Question: question, Err: err}
	}
	if index < 0 || index >= len(items) {
		return 0, &QuestionError{Question: question, Err: fmt.Errorf("selection %d out of range", index)}
	}
	return index, nil
}

func askDescription(ctx context.Context, p Prompter, changeType, scope string, scopeIndex int) (string, error) {
	budget := DescriptionBudget(changeType, scope, scopeIndex)
	logger.FromContext(ctx).Debug("description budget", "budget", budget)

	description, err := p.Input(ctx, prompt.InputOptions{
		Label:    "Description",
		Validate: NewDescriptionValidator(budget),
		History:  prompt.NewHistory(descriptionHistorySize),
	})
	if err != nil {
		return "", &QuestionError{Question: "ask for description", Err: err}
	}
	return description, nil
}

func askLongDescription(ctx context.Context, p Prompter, ed Editor) (string, error) {
	wanted, err := p.Confirm(ctx, "Longer description (optional)", false)
	if err != nil {
		return "", &QuestionError{Question: "ask for longer description", Err: err}
	}
	if !wanted {
		return "", nil
	}

	edited, err := ed.Edit(ctx, LongDescriptionTemplate())
	if err != nil {
		return "", &QuestionError{Question: "edit longer description", Err: err}
	}
	return StripComments(edited), nil
}

func askTicket(ctx context.Context, p Prompter, cfg *config.Config, branches BranchSource) (string, error) {
	var candidate string
	if branches != nil {
		branch := branches.CurrentBranch()
		candidate = git.ExtractTicket(branch, cfg.TicketRegex())
		logger.FromContext(ctx).Debug("ticket candidate", "branch", branch, "ticket", candidate)
	}

	ticket, err := p.Input(ctx, prompt.InputOptions{
		Label:      "Ticket (optional)",
		Initial:    candidate,
		AllowEmpty: true,
	})
	if err != nil {
		return "", &QuestionError{Question: "ask for ticket", Err: err}
	}
	return ticket, nil
}

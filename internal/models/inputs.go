package models

import "strings"

// Inputs holds the answers collected for one commit message
type Inputs struct {
	// ChangeType is the selected change type label (e.g., "feat")
	ChangeType string
	// Scope is the selected scope label
	Scope string
	// DefaultScope is true when the first scope option was picked; the
	// header then carries no scope
	DefaultScope bool
	// Description is the short summary, accepted as typed
	Description string
	// LongDescription is the editor text with comment lines removed
	LongDescription string
	// BreakingChanges is reserved and always empty
	BreakingChanges string
	// Ticket is the optional issue reference (e.g., "ABC-123")
	Ticket string
}

// Header returns the first line: type(scope): description
func (in Inputs) Header() string {
	var b strings.Builder
	b.WriteString(in.ChangeType)
	if !in.DefaultScope && in.Scope != "" {
		b.WriteString("(")
		b.WriteString(in.Scope)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(in.Description)
	return b.String()
}

// Message renders the full commit message with body and footers
func (in Inputs) Message() string {
	sections := []string{in.Header()}

	if body := strings.TrimRight(in.LongDescription, "\n"); strings.TrimSpace(body) != "" {
		sections = append(sections, body)
	}

	var footers []string
	if in.BreakingChanges != "" {
		footers = append(footers, "BREAKING CHANGE: "+in.BreakingChanges)
	}
	if ticket := strings.TrimSpace(in.Ticket); ticket != "" {
		footers = append(footers, "Refs: "+ticket)
	}
	if len(footers) > 0 {
		sections = append(sections, strings.Join(footers, "\n"))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

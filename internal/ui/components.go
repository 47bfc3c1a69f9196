package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Question renders the prompt line of an unanswered question: "? Label: "
func Question(label string) string {
	return QuestionMark.Render("?") + " " + LabelStyle.Render(label) + ": "
}

// Answered renders a finished question: "✔ Label: answer"
func Answered(label, answer string) string {
	return DoneMark.Render("✔") + " " + LabelStyle.Render(label) + ": " + AnswerStyle.Render(answer)
}

// Arrow returns an arrow indicator for selection
func Arrow(selected bool) string {
	if selected {
		return "▶ "
	}
	return "  "
}

// MenuItem renders one row of a select menu. matched holds byte offsets of
// fuzzy hits to highlight.
func MenuItem(label string, matched []int, highlighted bool) string {
	base := lipgloss.NewStyle()
	if highlighted {
		base = ActiveStyle
	}

	hits := make(map[int]bool, len(matched))
	for _, i := range matched {
		hits[i] = true
	}

	var b strings.Builder
	b.WriteString(base.Render(Arrow(highlighted)))
	for i, r := range label {
		if hits[i] {
			b.WriteString(MatchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// YesNo renders an inline yes/no choice with the current selection marked
func YesNo(yes bool) string {
	selected := ActiveStyle.Underline(true)
	if yes {
		return selected.Render("Yes") + MutedStyle.Render(" / ") + MutedStyle.Render("No")
	}
	return MutedStyle.Render("Yes") + MutedStyle.Render(" / ") + selected.Render("No")
}

// BoolAnswer formats a confirm result for the answered line
func BoolAnswer(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	return fmt.Sprintf("%s %s", keyStyle.Render(key), MutedStyle.Render(description))
}

// KeyHints joins key/description pairs into one hint line
func KeyHints(pairs ...string) string {
	var hints []string
	for i := 0; i+1 < len(pairs); i += 2 {
		hints = append(hints, KeyBinding(pairs[i], pairs[i+1]))
	}
	return "  " + strings.Join(hints, MutedStyle.Render(" · "))
}

// ErrorLine renders a validation message under an input
func ErrorLine(msg string) string {
	return ErrorStyle.Render("  ✘ " + msg)
}

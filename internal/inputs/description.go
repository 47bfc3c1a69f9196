package inputs

import (
	_ "embed"
	"fmt"
	"strings"
)

const (
	// maxHeaderLength is the conventional limit for the whole header line
	maxHeaderLength = 50
	// descriptionHistorySize is how many distinct attempts stay recallable
	descriptionHistorySize = 4
	// commentMarker starts lines dropped from the editor result
	commentMarker = "#"
)

//go:embed long_desc.template
var longDescTemplate string

// LongDescriptionTemplate returns the text handed to the editor
func LongDescriptionTemplate() string {
	return longDescTemplate
}

// DescriptionBudget returns how many bytes the description may use so that
// "type(scope): description" stays within 50. The type costs its length plus
// ": ", the scope its length plus "()" unless the default (first) scope was
// picked. Lengths are byte counts.
func DescriptionBudget(changeType, scope string, scopeIndex int) int {
	budget := maxHeaderLength - (len(changeType) + 2)
	if scopeIndex != 0 {
		budget -= len(scope) + 2
	}
	return budget
}

// NewDescriptionValidator rejects descriptions longer than budget. A rejected
// value is remembered; submitting exactly that value again accepts it. Any
// other over-budget value replaces the remembered one.
func NewDescriptionValidator(budget int) func(string) error {
	var forced string
	armed := false

	return func(input string) error {
		length := len(input)
		if length <= budget || (armed && forced == input) {
			return nil
		}

		forced = input
		armed = true
		return fmt.Errorf("you can only write %d chars and you wrote: %d; type the same value again to force use", budget, length)
	}
}

// StripComments drops every line starting with '#' and terminates each
// remaining line with a newline. A final newline does not produce an extra
// empty line and "\r\n" endings are accepted.
func StripComments(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, commentMarker) {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

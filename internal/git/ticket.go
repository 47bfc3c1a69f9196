package git

import "regexp"

// ExtractTicket returns the first ticket id found in a branch name, or "".
// A nil regex disables extraction.
func ExtractTicket(branch string, ticketRegex *regexp.Regexp) string {
	if branch == "" || ticketRegex == nil {
		return ""
	}
	return ticketRegex.FindString(branch)
}

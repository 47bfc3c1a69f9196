package prompt

// History is a bounded, newest-first list of submitted values
type History struct {
	max          int
	noDuplicates bool
	entries      []string
}

// NewHistory keeps at most max distinct entries
func NewHistory(max int) *History {
	return &History{max: max, noDuplicates: true}
}

// Write records value as the most recent entry. An existing equal entry is
// moved to the front instead of being stored twice.
func (h *History) Write(value string) {
	if h.max <= 0 {
		return
	}

	if h.noDuplicates {
		for i, e := range h.entries {
			if e == value {
				h.entries = append(h.entries[:i], h.entries[i+1:]...)
				break
			}
		}
	}

	h.entries = append([]string{value}, h.entries...)
	if len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}
}

// Get returns the entry pos steps back (0 = most recent)
func (h *History) Get(pos int) (string, bool) {
	if pos < 0 || pos >= len(h.entries) {
		return "", false
	}
	return h.entries[pos], true
}

// Len returns the number of stored entries
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy, newest first
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

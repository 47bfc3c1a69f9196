// Package termfix adjusts terminal environment variables before lipgloss
// detects the color profile. Import it FIRST in main:
//
//	_ "github.com/wahlandcase/attuned.commitprompt/internal/termfix"
package termfix

import "os"

func init() {
	switch os.Getenv("TERM_PROGRAM") {
	case "WarpTerminal":
		// Warp stalls on terminfo queries; keep truecolor without them
		os.Setenv("TERM", "dumb")
		os.Setenv("COLORTERM", "truecolor")
	}

	if os.Getenv("ATTCM_NO_COLOR") != "" {
		os.Setenv("NO_COLOR", "1")
	}
}

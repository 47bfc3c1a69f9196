package ui

import "github.com/charmbracelet/lipgloss"

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

var (
	QuestionMark = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	DoneMark     = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	LabelStyle   = lipgloss.NewStyle().Bold(true)
	AnswerStyle  = lipgloss.NewStyle().Foreground(ColorCyan)
	ActiveStyle  = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	MatchStyle   = lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorRed)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorDarkGray)
)

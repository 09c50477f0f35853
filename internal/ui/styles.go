package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for CLI output
var (
	PrimaryColor = lipgloss.Color("#D97706") // Amber - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	MaxContentWidth  = 96 // Maximum content width before capping
)

// Shared styles
var (
	// TitleStyle is for section titles (e.g., "Installed 3 components")
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// KeyStyle is for detail keys (e.g., "Components dir:")
	KeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ValueStyle is for detail values
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// PathStyle is for file paths in listings
	PathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// MutedStyle is for secondary lines (skipped files, hints)
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// RemedyStyle is for the "what to do next" line under errors
	RemedyStyle = lipgloss.NewStyle().
			Foreground(WarningColor)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// IsInteractive reports whether stdout is a terminal. Non-interactive runs
// (CI, pipes) must never launch the wizard or prompt.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

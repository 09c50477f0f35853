package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette, shared with the non-interactive output in internal/ui.
var (
	PrimaryColor   = lipgloss.Color("#D97706") // Amber
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF5555") // Red
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	StepStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	PromptStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SelectedChoiceStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	ChoiceStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			PaddingLeft(2)

	SummaryKeyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(18)

	SummaryValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	ContainerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)
)

// RenderChoice renders a select option with a selection indicator.
func RenderChoice(text string, selected bool) string {
	if selected {
		return SelectedChoiceStyle.Render("→ " + text)
	}
	return ChoiceStyle.Render(text)
}

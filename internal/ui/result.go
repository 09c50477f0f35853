package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// InstallSummary renders the outcome of an install run: files written,
// files skipped, and the package install hint when npm dependencies are
// needed.
type InstallSummary struct {
	Written    []string // project-relative paths that were written
	Skipped    []string // paths left untouched
	InstallCmd string   // package manager command for npm deps, "" if none
}

// Render returns the styled summary.
func (s *InstallSummary) Render() string {
	var b strings.Builder

	title := fmt.Sprintf("Installed %d file(s)", len(s.Written))
	b.WriteString(SuccessTitleStyle.Render("✓ " + title))
	b.WriteString("\n")

	for _, path := range s.Written {
		b.WriteString("  " + PathStyle.Render(path) + "\n")
	}

	if len(s.Skipped) > 0 {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("Skipped %d existing file(s) (use --force to overwrite):", len(s.Skipped))))
		b.WriteString("\n")
		for _, path := range s.Skipped {
			b.WriteString(MutedStyle.Render("  "+path) + "\n")
		}
	}

	if s.InstallCmd != "" {
		b.WriteString("\n")
		b.WriteString(ValueStyle.Render("Install the required packages:") + "\n")
		b.WriteString("  " + PathStyle.Render(s.InstallCmd) + "\n")
	}

	return b.String()
}

// ErrorBox renders a hard failure with its remedy, if one is known.
func ErrorBox(err error, remedy string) string {
	var lines []string
	lines = append(lines, ErrorTitleStyle.Render("✗ "+err.Error()))
	if remedy != "" {
		lines = append(lines, RemedyStyle.Render(remedy))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ErrorColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

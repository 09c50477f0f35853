// Package ui provides terminal output components for the rafters CLI.
//
// This package uses Lipgloss to render styled output for commands that run
// once and exit: install summaries, error boxes with remedies, confirmation
// prompts. The interactive init wizard lives in internal/wizard/tui; the
// components here never take over the terminal.
package ui

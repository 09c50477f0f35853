// Package tui implements the interactive setup wizard for rafters init.
//
// The wizard walks a user through the handful of choices that end up in
// .rafters/config.json, seeded from whatever project detection found so
// that accepting every default is always a valid answer. Built with the
// Bubble Tea framework using the standard Model-Update-View pattern.
//
// # Steps
//
// The wizard is a linear sequence of steps:
//
//  1. Components directory: text input, pre-filled from the detected
//     framework's conventional location
//  2. Stories directory: text input, only shown when Storybook was
//     detected or enabled
//  3. Storybook: yes/no toggle
//  4. Token format: pick css, tailwind, or react-native
//  5. Summary: review everything and confirm
//
// Enter accepts the current step, esc steps back (or cancels from the
// first step), and ctrl+c aborts from anywhere. A cancelled wizard
// writes nothing.
//
// # Framework Components
//
//   - bubbles/textinput: directory entry fields
//   - bubbles/help: context-aware key hints in the footer
//   - bubbles/key: key binding definitions
//   - lipgloss: styling and layout
//
// # Usage
//
//	cfg, ok, err := tui.Run(detected)
//	if err != nil {
//	    return err
//	}
//	if !ok {
//	    return nil // user cancelled
//	}
//	// cfg is ready to Save
package tui

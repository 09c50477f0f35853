package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafters-ui/rafters/internal/config"
)

// step identifies the current wizard step
type step int

const (
	stepComponentsDir step = iota
	stepStorybook
	stepStoriesDir
	stepTokenFormat
	stepSummary
)

// keyMap defines the wizard key bindings
type keyMap struct {
	Accept key.Binding
	Back   key.Binding
	Move   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Back, k.Move, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Accept, k.Back, k.Move, k.Quit},
	}
}

var tokenFormats = []config.TokenFormat{
	config.TokenFormatCSS,
	config.TokenFormatTailwind,
	config.TokenFormatReactNative,
}

// Model is the wizard state. It starts from a detection-seeded Config and
// mutates a copy of it as the user advances through the steps.
type Model struct {
	cfg config.Config

	step   step
	input  textinput.Model
	choice int
	errMsg string

	// Set when the wizard ends
	Done      bool
	Cancelled bool

	Width  int
	Height int

	Help help.Model
	Keys keyMap
}

// NewModel creates a wizard seeded from a detected configuration.
func NewModel(detected config.Config) Model {
	ti := textinput.New()
	ti.SetValue(detected.ComponentsDir)
	ti.CharLimit = 128
	ti.Width = 48
	ti.Focus()

	keys := keyMap{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "choose"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}

	return Model{
		cfg:   detected,
		step:  stepComponentsDir,
		input: ti,
		Help:  help.New(),
		Keys:  keys,
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all wizard messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.Cancelled = true
			return m, tea.Quit

		case "esc":
			return m.stepBack()

		case "enter":
			return m.accept()
		}

		return m.updateStep(msg)
	}

	return m, nil
}

// updateStep routes remaining key input to the active step's widget.
func (m Model) updateStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.step {
	case stepComponentsDir, stepStoriesDir:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case stepStorybook:
		switch msg.String() {
		case "up", "down", "tab", "left", "right":
			m.choice = 1 - m.choice
		case "y":
			m.choice = 0
			return m.accept()
		case "n":
			m.choice = 1
			return m.accept()
		}

	case stepTokenFormat:
		switch msg.String() {
		case "up":
			if m.choice > 0 {
				m.choice--
			}
		case "down":
			if m.choice < len(tokenFormats)-1 {
				m.choice++
			}
		}
	}

	return m, nil
}

// accept commits the current step and advances (or finishes).
func (m Model) accept() (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch m.step {
	case stepComponentsDir:
		dir := strings.TrimSpace(m.input.Value())
		if dir == "" {
			m.errMsg = "components directory cannot be empty"
			return m, nil
		}
		m.cfg.ComponentsDir = dir
		m.choice = boolChoice(m.cfg.HasStorybook)
		m.step = stepStorybook

	case stepStorybook:
		m.cfg.HasStorybook = m.choice == 0
		if m.cfg.HasStorybook {
			m.input.SetValue(storiesDefault(m.cfg))
			m.input.CursorEnd()
			m.step = stepStoriesDir
		} else {
			m.cfg.StoriesDir = ""
			m.choice = tokenChoice(m.cfg.TokenFormat)
			m.step = stepTokenFormat
		}

	case stepStoriesDir:
		dir := strings.TrimSpace(m.input.Value())
		if dir == "" {
			m.errMsg = "stories directory cannot be empty"
			return m, nil
		}
		m.cfg.StoriesDir = dir
		m.choice = tokenChoice(m.cfg.TokenFormat)
		m.step = stepTokenFormat

	case stepTokenFormat:
		m.cfg.TokenFormat = tokenFormats[m.choice]
		m.step = stepSummary

	case stepSummary:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// stepBack returns to the previous step, or cancels from the first one.
func (m Model) stepBack() (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch m.step {
	case stepComponentsDir:
		m.Cancelled = true
		return m, tea.Quit

	case stepStorybook:
		m.input.SetValue(m.cfg.ComponentsDir)
		m.input.CursorEnd()
		m.step = stepComponentsDir

	case stepStoriesDir:
		m.choice = boolChoice(m.cfg.HasStorybook)
		m.step = stepStorybook

	case stepTokenFormat:
		if m.cfg.HasStorybook {
			m.input.SetValue(storiesDefault(m.cfg))
			m.input.CursorEnd()
			m.step = stepStoriesDir
		} else {
			m.choice = boolChoice(m.cfg.HasStorybook)
			m.step = stepStorybook
		}

	case stepSummary:
		m.choice = tokenChoice(m.cfg.TokenFormat)
		m.step = stepTokenFormat
	}

	return m, nil
}

// Config returns the configuration assembled by the wizard.
func (m Model) Config() config.Config {
	return m.cfg
}

// View renders the active step.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Rafters project setup"))
	b.WriteString("\n")
	b.WriteString(StepStyle.Render(fmt.Sprintf("Step %d of %d", m.stepNumber(), m.stepCount())))
	b.WriteString("\n\n")

	switch m.step {
	case stepComponentsDir:
		b.WriteString(PromptStyle.Render("Where should components be installed?"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(HintStyle.Render("Relative to the project root"))

	case stepStorybook:
		b.WriteString(PromptStyle.Render("Install Storybook stories alongside components?"))
		b.WriteString("\n\n")
		b.WriteString(RenderChoice("Yes", m.choice == 0))
		b.WriteString("\n")
		b.WriteString(RenderChoice("No", m.choice == 1))

	case stepStoriesDir:
		b.WriteString(PromptStyle.Render("Where should stories be installed?"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())

	case stepTokenFormat:
		b.WriteString(PromptStyle.Render("Which design token format does this project use?"))
		b.WriteString("\n\n")
		for i, tf := range tokenFormats {
			b.WriteString(RenderChoice(string(tf), m.choice == i))
			b.WriteString("\n")
		}

	case stepSummary:
		b.WriteString(PromptStyle.Render("Ready to write .rafters/config.json"))
		b.WriteString("\n\n")
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
		b.WriteString(HintStyle.Render("Press enter to save, esc to go back"))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(ErrorStyle.Render("✗ " + m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.Help.View(m.Keys))

	return ContainerStyle.Render(b.String())
}

// renderSummary renders the confirmation table on the final step.
func (m Model) renderSummary() string {
	rows := []struct {
		key   string
		value string
	}{
		{"Components dir", m.cfg.ComponentsDir},
		{"Storybook", yesNo(m.cfg.HasStorybook)},
		{"Stories dir", orDash(m.cfg.StoriesDir)},
		{"Token format", orDash(string(m.cfg.TokenFormat))},
		{"Package manager", string(m.cfg.PackageManager)},
		{"CSS file", orDash(m.cfg.CSSFile)},
		{"Registry", m.cfg.Registry},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(SummaryKeyStyle.Render(row.key))
		b.WriteString(SummaryValueStyle.Render(row.value))
		b.WriteString("\n")
	}
	return b.String()
}

// stepNumber returns the 1-based position of the current step for display.
func (m Model) stepNumber() int {
	n := int(m.step) + 1
	if !m.cfg.HasStorybook && m.step > stepStoriesDir {
		n--
	}
	return n
}

// stepCount returns the number of steps on the current path.
func (m Model) stepCount() int {
	if m.cfg.HasStorybook {
		return 5
	}
	return 4
}

// Run executes the wizard and returns the assembled configuration. The
// second return value is false when the user cancelled.
func Run(detected config.Config) (config.Config, bool, error) {
	program := tea.NewProgram(NewModel(detected))

	final, err := program.Run()
	if err != nil {
		return config.Config{}, false, fmt.Errorf("wizard failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok || !m.Done {
		return config.Config{}, false, nil
	}
	return m.Config(), true, nil
}

func boolChoice(b bool) int {
	if b {
		return 0
	}
	return 1
}

func tokenChoice(tf config.TokenFormat) int {
	for i, candidate := range tokenFormats {
		if candidate == tf {
			return i
		}
	}
	return 0
}

func storiesDefault(cfg config.Config) string {
	if cfg.StoriesDir != "" {
		return cfg.StoriesDir
	}
	return cfg.ComponentsDir
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

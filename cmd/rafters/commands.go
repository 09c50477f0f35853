package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/rafters-ui/rafters/internal/config"
	"github.com/rafters-ui/rafters/internal/installer"
	"github.com/rafters-ui/rafters/internal/registry"
	"github.com/rafters-ui/rafters/internal/server"
	"github.com/rafters-ui/rafters/internal/sitecfg"
	"github.com/rafters-ui/rafters/internal/ui"
	"github.com/rafters-ui/rafters/internal/wizard/tui"
)

// Command flags
var (
	initComponentsDir string
	initStoriesDir    string
	initStorybook     bool
	initTokenFormat   string
	initForce         bool
	initYes           bool

	addForce bool

	servePort     int
	serveHost     string
	serveDir      string
	serveAnnounce bool
)

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(serveCmd)
}

// initCmd sets up a project for Rafters
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up this project for Rafters",
	Long: `Set up the current project for Rafters components.

Detects the package manager, framework, import alias and CSS entry point,
then writes .rafters/config.json. In a terminal this runs an interactive
wizard seeded with the detected values; use --yes (or pipe the command) to
accept every detected default without prompting.`,
	Example: `  # Interactive setup
  rafters init

  # Accept all detected defaults
  rafters init --yes

  # Script-friendly setup with explicit choices
  rafters init --yes --components-dir ./src/ui --token-format tailwind`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initComponentsDir, "components-dir", "", "Directory components are installed into")
	initCmd.Flags().StringVar(&initStoriesDir, "stories-dir", "", "Directory Storybook stories are installed into")
	initCmd.Flags().BoolVar(&initStorybook, "storybook", false, "Install Storybook stories alongside components")
	initCmd.Flags().StringVar(&initTokenFormat, "token-format", "", "Design token format (css, tailwind, react-native)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration")
	initCmd.Flags().BoolVar(&initYes, "yes", false, "Skip the wizard and accept detected defaults")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	if config.Exists(cwd) {
		if !initForce {
			return fmt.Errorf("project already initialized (%s exists) - use --force to start over", config.Path(cwd))
		}
		if ui.IsInteractive() && !initYes && !ui.Confirm("Overwrite the existing configuration?") {
			fmt.Println("Setup cancelled, nothing written.")
			return nil
		}
	}

	if !config.IsNodeProject(cwd) {
		fmt.Println("Warning: no package.json found - is this the project root?")
	}

	detected := detectProject(cwd)
	applyInitFlags(cmd, detected)

	cfg := *detected
	if ui.IsInteractive() && !initYes {
		result, ok, err := tui.Run(cfg)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Setup cancelled, nothing written.")
			return nil
		}
		cfg = result
	}

	if err := cfg.Validate(); err != nil {
		return config.NewInvalidConfigError("configuration is not valid", err)
	}
	if err := config.Save(&cfg, cwd); err != nil {
		return err
	}

	fmt.Println(ui.SuccessTitleStyle.Render("✓ Project initialized"))
	fmt.Printf("  Config:     %s\n", ui.PathStyle.Render(config.Path(cwd)))
	fmt.Printf("  Components: %s\n", cfg.ComponentsDir)
	if cfg.HasStorybook {
		fmt.Printf("  Stories:    %s\n", cfg.StoriesDir)
	}
	fmt.Println()
	fmt.Println("Add your first component with 'rafters add button'")
	return nil
}

// detectProject builds a config seeded from what the project tree reveals.
func detectProject(cwd string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.PackageManager = config.DetectPackageManager(cwd)

	framework := config.DetectFramework(cwd)
	if css := config.FindCSSFile(cwd); css != "" {
		cfg.CSSFile = css
	} else if framework != "" {
		cfg.CSSFile = config.DefaultCSSFile(framework)
	}

	if hasStorybook(cwd) {
		cfg.HasStorybook = true
		cfg.StoriesDir = cfg.ComponentsDir
	}

	return cfg
}

// hasStorybook reports whether the project carries a Storybook setup.
func hasStorybook(cwd string) bool {
	_, err := os.Stat(filepath.Join(cwd, ".storybook"))
	return err == nil
}

// applyInitFlags overlays explicit flag values on the detected config.
func applyInitFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("components-dir") {
		cfg.ComponentsDir = initComponentsDir
	}
	if cmd.Flags().Changed("storybook") {
		cfg.HasStorybook = initStorybook
		if !initStorybook {
			cfg.StoriesDir = ""
		} else if cfg.StoriesDir == "" {
			cfg.StoriesDir = cfg.ComponentsDir
		}
	}
	if cmd.Flags().Changed("stories-dir") {
		cfg.StoriesDir = initStoriesDir
	}
	if cmd.Flags().Changed("token-format") {
		cfg.TokenFormat = config.TokenFormat(initTokenFormat)
	}
}

// addCmd copies components into the project
var addCmd = &cobra.Command{
	Use:   "add <component>...",
	Short: "Copy components into this project",
	Long: `Copy one or more components from the registry into this project.

Each component's source files are written under componentsDir with imports
rewritten to match your project's alias, and its Storybook stories go to
storiesDir when Storybook is enabled. Components a requested component
depends on are installed too. Existing files are left alone unless --force
is given.

Npm packages the components need are not installed; the right install
command for your package manager is printed instead.`,
	Example: `  # Add a single component
  rafters add button

  # Add several at once
  rafters add button dialog tooltip

  # Overwrite locally modified copies
  rafters add button --force`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVar(&addForce, "force", false, "Overwrite files that already exist")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	client := registry.NewClient(cfg.Registry)
	inst := installer.New(client, cfg, cwd)
	inst.Force = addForce

	report, err := inst.Install(cmd.Context(), args)
	if err != nil {
		if registry.IsNotFound(err) {
			return fmt.Errorf("%w\n\nRun 'rafters list' to see available components", err)
		}
		return err
	}

	summary := ui.InstallSummary{
		InstallCmd: report.InstallCommand(cfg.PackageManager),
	}
	for _, comp := range report.Components {
		summary.Written = append(summary.Written, comp.Written...)
		summary.Skipped = append(summary.Skipped, comp.Skipped...)
	}

	fmt.Print(summary.Render())
	return nil
}

// listCmd lists the registry contents
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available components",
	Long:  `List every component the configured registry offers, with its cognitive load grade and a short description.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	client, _, err := registryClient()
	if err != nil {
		return err
	}

	index, err := client.Index(cmd.Context())
	if err != nil {
		return err
	}

	if len(index.Components) == 0 {
		fmt.Println("The registry has no components.")
		return nil
	}

	fmt.Printf("%d component(s) available:\n\n", len(index.Components))
	for _, entry := range index.Components {
		load := string(entry.Intent.CognitiveLoad)
		if load == "" {
			load = "-"
		}
		fmt.Printf("  %s %s\n", ui.KeyStyle.Render(fmt.Sprintf("%-16s", entry.Name)), ui.MutedStyle.Render(load))
		if entry.Description != "" {
			fmt.Printf("    %s\n", entry.Description)
		}
	}

	fmt.Println("\nUse 'rafters info <component>' for usage guidance")
	return nil
}

// infoCmd shows one component's design intent
var infoCmd = &cobra.Command{
	Use:   "info <component>",
	Short: "Show a component's design intent and usage guidance",
	Long: `Show everything the registry knows about a component: its description,
cognitive load grade, accessibility notes, dependencies, and the full
usage guidance rendered as formatted markdown.`,
	Example: `  rafters info button
  rafters info dialog`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	client, _, err := registryClient()
	if err != nil {
		return err
	}

	comp, err := client.Component(cmd.Context(), args[0])
	if err != nil {
		if registry.IsNotFound(err) {
			return fmt.Errorf("%w\n\nRun 'rafters list' to see available components", err)
		}
		return err
	}

	fmt.Println(ui.TitleStyle.Render(comp.Name))
	if comp.Description != "" {
		fmt.Println(comp.Description)
	}
	fmt.Println()

	if comp.Intent.CognitiveLoad != "" {
		fmt.Printf("%s %s\n", ui.KeyStyle.Render("Cognitive load:"), comp.Intent.CognitiveLoad)
	}
	if len(comp.RegistryDependencies) > 0 {
		fmt.Printf("%s %s\n", ui.KeyStyle.Render("Uses components:"), strings.Join(comp.RegistryDependencies, ", "))
	}
	if len(comp.Dependencies) > 0 {
		fmt.Printf("%s %s\n", ui.KeyStyle.Render("Npm packages:"), strings.Join(comp.Dependencies, ", "))
	}
	if len(comp.Intent.Accessibility) > 0 {
		fmt.Println(ui.KeyStyle.Render("Accessibility:"))
		for _, note := range comp.Intent.Accessibility {
			fmt.Printf("  • %s\n", note)
		}
	}

	if comp.Intent.UsageGuidance != "" {
		rendered, err := renderMarkdown(comp.Intent.UsageGuidance)
		if err != nil {
			// Fall back to the raw markdown rather than failing the command
			rendered = "\n" + comp.Intent.UsageGuidance + "\n"
		}
		fmt.Print(rendered)
	}

	return nil
}

// renderMarkdown renders usage guidance for the terminal.
func renderMarkdown(md string) (string, error) {
	width := ui.GetTerminalWidth()
	if width > ui.MaxContentWidth {
		width = ui.MaxContentWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

// registryClient loads the project config and returns a client for its
// registry. Commands that only read the registry still require an
// initialized project so they talk to the right one.
func registryClient() (*registry.Client, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, nil, err
	}

	return registry.NewClient(cfg.Registry), cfg, nil
}

// doctorCmd reports what detection sees in the current project
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose project detection",
	Long: `Show what Rafters detects about the current project: package manager,
framework, import alias, CSS entry point, Storybook, and the state of the
configuration file. Useful when 'rafters init' guessed wrong.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	printCheck := func(label, value string) {
		if value == "" {
			value = ui.MutedStyle.Render("not detected")
		}
		fmt.Printf("  %s %s\n", ui.KeyStyle.Render(fmt.Sprintf("%-16s", label)), value)
	}

	fmt.Printf("Project: %s\n\n", cwd)

	printCheck("Node project", yesNo(config.IsNodeProject(cwd)))
	printCheck("React", yesNo(config.HasReact(cwd)))
	printCheck("Package manager", string(config.DetectPackageManager(cwd)))
	printCheck("Framework", config.DetectFramework(cwd))
	printCheck("Import alias", config.DetectImportAlias(cwd))
	printCheck("CSS file", config.FindCSSFile(cwd))
	printCheck("Storybook", yesNo(hasStorybook(cwd)))

	fmt.Println()

	cfg, err := config.Load(cwd)
	switch {
	case err == nil:
		fmt.Println(ui.SuccessTitleStyle.Render("✓ Configuration is valid"))
		fmt.Printf("  Components install to %s\n", cfg.ComponentsDir)
	case config.IsNotInitialized(err):
		fmt.Println(ui.MutedStyle.Render("Not initialized - run 'rafters init'"))
	default:
		fmt.Println(ui.ErrorBox(err, config.Remedy(err)))
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// serveCmd runs the docs dev server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built docs site with live reload",
	Long: `Serve the built documentation site over HTTP with live reload.

The directory to serve comes from docs.yaml at the project root (default
"dist"); connected browsers reload automatically whenever a file in it
changes. With --announce the server is published over mDNS so other
machines on the LAN can find it.`,
	Example: `  # Serve ./dist on the default port
  rafters serve

  # Serve a different build output on all interfaces
  rafters serve --dir build --host 0.0.0.0 --port 8080

  # Make the site discoverable on the LAN
  rafters serve --host 0.0.0.0 --announce`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 4173, "Port to listen on")
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&serveDir, "dir", "", "Docs directory to serve (overrides docs.yaml)")
	serveCmd.Flags().BoolVar(&serveAnnounce, "announce", false, "Announce the server over mDNS")
}

func runServe(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	site := sitecfg.Load(cwd)

	dir := site.Docs.Dir
	if serveDir != "" {
		dir = serveDir
	}

	srv, err := server.New(&server.Config{
		Host:     serveHost,
		Port:     servePort,
		Dir:      dir,
		Title:    site.Docs.Title,
		BaseURL:  site.Docs.BaseURL,
		Announce: serveAnnounce,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Serving %s at %s\n", dir, srv.URL())
	fmt.Println("Press Ctrl+C to stop")

	return srv.Start()
}

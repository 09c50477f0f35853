package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory created inside the consumer project root.
	ConfigDir = ".rafters"

	// ConfigFile is the configuration file name inside ConfigDir.
	ConfigFile = "config.json"

	// SchemaVersion is the config schema version written by this build.
	SchemaVersion = "1.0"

	// DefaultComponentsDir is where components are installed unless the
	// user chooses otherwise during init.
	DefaultComponentsDir = "./src/components/ui"

	// DefaultRegistry is the public Rafters component registry.
	DefaultRegistry = "https://registry.rafters.dev"
)

// PackageManager identifies the package manager the consumer project uses.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
)

// InstallHint returns the shell command that installs the given packages
// with this package manager.
func (pm PackageManager) InstallHint(packages ...string) string {
	verb := "install"
	if pm == Yarn || pm == PNPM {
		verb = "add"
	}
	cmd := string(pm) + " " + verb
	for _, p := range packages {
		cmd += " " + p
	}
	return cmd
}

// TailwindVersion identifies the major Tailwind CSS version in use.
type TailwindVersion string

const (
	TailwindV3 TailwindVersion = "v3"
	TailwindV4 TailwindVersion = "v4"
)

// TokenFormat identifies the styling/theming convention of the consumer
// project, recorded so copied components can be adapted appropriately.
type TokenFormat string

const (
	TokenFormatCSS         TokenFormat = "css"
	TokenFormatTailwind    TokenFormat = "tailwind"
	TokenFormatReactNative TokenFormat = "react-native"
)

// Config is the persisted per-project settings record.
//
// Version, ComponentsDir, HasStorybook, PackageManager and Registry are
// always present; the remaining fields are optional and absent until
// detected.
type Config struct {
	Version         string          `json:"version"`
	ComponentsDir   string          `json:"componentsDir"`
	StoriesDir      string          `json:"storiesDir,omitempty"`
	HasStorybook    bool            `json:"hasStorybook"`
	PackageManager  PackageManager  `json:"packageManager"`
	Registry        string          `json:"registry"`
	CSSFile         string          `json:"cssFile,omitempty"`
	TailwindVersion TailwindVersion `json:"tailwindVersion,omitempty"`
	TokenFormat     TokenFormat     `json:"tokenFormat,omitempty"`
}

// DefaultConfig returns a new Config seeded with the stock defaults.
// Callers typically overlay detection results before saving.
func DefaultConfig() *Config {
	return &Config{
		Version:        SchemaVersion,
		ComponentsDir:  DefaultComponentsDir,
		HasStorybook:   false,
		PackageManager: NPM,
		Registry:       DefaultRegistry,
	}
}

// Path returns the full path to the configuration file for a project root.
func Path(cwd string) string {
	return filepath.Join(cwd, ConfigDir, ConfigFile)
}

// Exists reports whether a configuration file exists for the project root.
func Exists(cwd string) bool {
	_, err := os.Stat(Path(cwd))
	return err == nil
}

// Load reads, parses and validates the configuration file for a project
// root.
//
// A missing file yields a NotInitialized error whose message tells the user
// to run 'rafters init'. A file that is present but unparseable or invalid
// yields an InvalidConfig error wrapping the underlying failure. Unknown
// keys in the file are silently dropped.
func Load(cwd string) (*Config, error) {
	data, err := os.ReadFile(Path(cwd))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotInitializedError(cwd)
		}
		return nil, NewInvalidConfigError("failed to read config file", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, NewInvalidConfigError("config file is not valid JSON", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, NewInvalidConfigError("config file failed validation", err)
	}

	return &cfg, nil
}

// Save serializes the config as pretty-printed JSON and writes it to the
// project's config path, creating the .rafters directory if needed.
//
// No validation is performed on write; validation is enforced only on read
// so that hand-edited files are always re-checked.
func Save(cfg *Config, cwd string) error {
	configPath := Path(cwd)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	// Write to a temporary file first, then rename (atomic on all platforms)
	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Validate checks required fields, enum membership and registry URL
// well-formedness. It is called by Load and may be used by callers that
// construct Config values by hand.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("missing required field %q", "version")
	}
	if c.ComponentsDir == "" {
		return fmt.Errorf("missing required field %q", "componentsDir")
	}
	if c.Registry == "" {
		return fmt.Errorf("missing required field %q", "registry")
	}

	switch c.PackageManager {
	case NPM, Yarn, PNPM:
	case "":
		return fmt.Errorf("missing required field %q", "packageManager")
	default:
		return fmt.Errorf("packageManager must be one of npm, yarn, pnpm; got %q", c.PackageManager)
	}

	u, err := url.Parse(c.Registry)
	if err != nil {
		return fmt.Errorf("registry is not a valid URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("registry must be an absolute URL, got %q", c.Registry)
	}

	switch c.TailwindVersion {
	case "", TailwindV3, TailwindV4:
	default:
		return fmt.Errorf("tailwindVersion must be v3 or v4; got %q", c.TailwindVersion)
	}

	switch c.TokenFormat {
	case "", TokenFormatCSS, TokenFormatTailwind, TokenFormatReactNative:
	default:
		return fmt.Errorf("tokenFormat must be one of css, tailwind, react-native; got %q", c.TokenFormat)
	}

	return nil
}

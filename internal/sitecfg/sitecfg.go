// Package sitecfg loads the optional docs.yaml site configuration used by
// the docs dev server.
//
// docs.yaml lives at the project root and is entirely optional: a missing
// or malformed file degrades to defaults with a logged warning, never an
// error. The file describes where the built docs live and how the site is
// titled, not how it is built; building is out of the CLI's hands.
package sitecfg

import (
	"os"
	"path/filepath"

	"github.com/rafters-ui/rafters/internal/logging"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FileName is the site config file looked up at the project root.
const FileName = "docs.yaml"

// Site is the docs site configuration.
type Site struct {
	Docs struct {
		// Dir is the built docs directory served by 'rafters serve'
		Dir string `yaml:"dir"`
		// Title is shown in log output and the mDNS announcement
		Title string `yaml:"title"`
		// BaseURL is the path prefix the site is served under
		BaseURL string `yaml:"base_url"`
	} `yaml:"docs"`
	Components struct {
		// Dir overrides where component sources are read from, when set
		Dir string `yaml:"dir"`
	} `yaml:"components"`
}

// Default returns the stock site configuration.
func Default() *Site {
	var s Site
	s.Docs.Dir = "dist"
	s.Docs.Title = "Documentation"
	s.Docs.BaseURL = "/"
	return &s
}

// Load reads docs.yaml from the project root. Absent or malformed files
// yield the defaults; a parse failure is logged but never fatal.
func Load(cwd string) *Site {
	path := filepath.Join(cwd, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	site := Default()
	if err := yaml.Unmarshal(data, site); err != nil {
		logging.Warn("Failed to parse docs.yaml, using defaults",
			zap.String("path", path),
			zap.Error(err),
		)
		return Default()
	}

	// Partial files keep defaults for omitted fields, but an explicit
	// empty string would break serving; refill those.
	if site.Docs.Dir == "" {
		site.Docs.Dir = "dist"
	}
	if site.Docs.BaseURL == "" {
		site.Docs.BaseURL = "/"
	}
	if site.Docs.Title == "" {
		site.Docs.Title = "Documentation"
	}

	return site
}

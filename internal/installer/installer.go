package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rafters-ui/rafters/internal/config"
	"github.com/rafters-ui/rafters/internal/logging"
	"github.com/rafters-ui/rafters/internal/registry"
	"go.uber.org/zap"
)

// Source fetches component payloads. Satisfied by *registry.Client.
type Source interface {
	Component(ctx context.Context, name string) (*registry.Component, error)
}

// Installer writes registry components into one consumer project.
type Installer struct {
	Source Source
	Config *config.Config
	// Root is the consumer project root (the directory holding .rafters/)
	Root string
	// Force overwrites files that already exist in the project
	Force bool
}

// New creates an installer for a loaded project config.
func New(source Source, cfg *config.Config, root string) *Installer {
	return &Installer{
		Source: source,
		Config: cfg,
		Root:   root,
	}
}

// ComponentReport records what happened for one installed component.
type ComponentReport struct {
	Name    string
	Written []string // project-relative paths written
	Skipped []string // project-relative paths left untouched (already exist)
}

// Report summarizes one Install run.
type Report struct {
	Components []ComponentReport
	// Packages are npm dependencies the installed components need,
	// deduplicated and sorted.
	Packages []string
}

// InstallCommand returns the package-manager command that installs the
// report's npm packages, or "" when nothing is needed.
func (r *Report) InstallCommand(pm config.PackageManager) string {
	if len(r.Packages) == 0 {
		return ""
	}
	return pm.InstallHint(r.Packages...)
}

// Install resolves the named components plus their registry dependencies
// and writes them into the project. Resolution is depth-first, cycle-safe
// and deduplicated; requested components install before their dependencies'
// dependents so the report reads in request order.
func (i *Installer) Install(ctx context.Context, names []string) (*Report, error) {
	resolved, err := i.resolve(ctx, names)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	packages := make(map[string]struct{})

	for _, comp := range resolved {
		cr, err := i.installOne(comp)
		if err != nil {
			return nil, fmt.Errorf("failed to install %q: %w", comp.Name, err)
		}
		report.Components = append(report.Components, *cr)

		for _, pkg := range comp.Dependencies {
			packages[pkg] = struct{}{}
		}
	}

	for pkg := range packages {
		report.Packages = append(report.Packages, pkg)
	}
	sort.Strings(report.Packages)

	return report, nil
}

// resolve fetches the requested components and, transitively, every
// registry dependency, keeping first-seen order and visiting each name
// once.
func (i *Installer) resolve(ctx context.Context, names []string) ([]*registry.Component, error) {
	var ordered []*registry.Component
	seen := make(map[string]struct{})

	var visit func(name string) error
	visit = func(name string) error {
		if _, ok := seen[name]; ok {
			return nil
		}
		seen[name] = struct{}{}

		comp, err := i.Source.Component(ctx, name)
		if err != nil {
			return err
		}
		ordered = append(ordered, comp)

		for _, dep := range comp.RegistryDependencies {
			if err := visit(dep); err != nil {
				return fmt.Errorf("resolving dependency %q of %q: %w", dep, name, err)
			}
		}
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}

	return ordered, nil
}

// installOne writes a single component's files into the project.
func (i *Installer) installOne(comp *registry.Component) (*ComponentReport, error) {
	cr := &ComponentReport{Name: comp.Name}

	for _, file := range comp.Files {
		destDir, ok := i.destinationDir(file)
		if !ok {
			// Story file for a project without Storybook
			continue
		}

		relPath := filepath.Join(destDir, filepath.FromSlash(file.Path))
		absPath := filepath.Join(i.Root, relPath)

		if _, err := os.Stat(absPath); err == nil && !i.Force {
			cr.Skipped = append(cr.Skipped, relPath)
			continue
		}

		content := file.Content
		if isSourceFile(file.Path) {
			content = config.TransformImports(content, i.Config.ComponentsDir, i.Root)
		}

		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(relPath), err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", relPath, err)
		}

		cr.Written = append(cr.Written, relPath)
	}

	logging.Info("Component installed",
		zap.String("component", comp.Name),
		zap.Int("written", len(cr.Written)),
		zap.Int("skipped", len(cr.Skipped)),
	)

	return cr, nil
}

// destinationDir picks the install root for a file by type. The second
// return is false when the file should not be installed at all.
func (i *Installer) destinationDir(file registry.File) (string, bool) {
	if file.Type == registry.FileTypeStory || strings.Contains(file.Path, ".stories.") {
		if !i.Config.HasStorybook || i.Config.StoriesDir == "" {
			return "", false
		}
		return cleanDir(i.Config.StoriesDir), true
	}
	return cleanDir(i.Config.ComponentsDir), true
}

// cleanDir normalizes a configured directory like "./src/components/ui"
// into a project-relative path.
func cleanDir(dir string) string {
	return filepath.FromSlash(strings.TrimPrefix(dir, "./"))
}

// isSourceFile reports whether import rewriting applies to a file.
func isSourceFile(path string) bool {
	switch filepath.Ext(path) {
	case ".ts", ".tsx", ".js", ".jsx":
		return true
	default:
		return false
	}
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Framework identifiers returned by DetectFramework.
const (
	FrameworkNext  = "nextjs"
	FrameworkRemix = "remix"
	FrameworkAstro = "astro"
	FrameworkVite  = "vite"
	FrameworkReact = "react"
)

// frameworkPackages maps package.json dependency names to framework
// identifiers, in priority order. Meta-frameworks win over their building
// blocks (a Next.js app also depends on react; a Remix app may use vite).
var frameworkPackages = []struct {
	pkg       string
	framework string
}{
	{"next", FrameworkNext},
	{"@remix-run/react", FrameworkRemix},
	{"astro", FrameworkAstro},
	{"vite", FrameworkVite},
	{"react", FrameworkReact},
}

// packageJSON holds the subset of package.json the detectors care about.
type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// readPackageJSON parses <cwd>/package.json. The second return is false if
// the file is missing or unparseable; detectors treat that as "no data"
// rather than an error.
func readPackageJSON(cwd string) (*packageJSON, bool) {
	data, err := os.ReadFile(filepath.Join(cwd, "package.json"))
	if err != nil {
		return nil, false
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, false
	}

	return &pkg, true
}

// allDependencies merges dependencies and devDependencies into one map.
func (p *packageJSON) allDependencies() map[string]string {
	merged := make(map[string]string, len(p.Dependencies)+len(p.DevDependencies))
	for name, version := range p.Dependencies {
		merged[name] = version
	}
	for name, version := range p.DevDependencies {
		merged[name] = version
	}
	return merged
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DetectPackageManager sniffs the project's package manager from its
// lockfile. pnpm-lock.yaml takes priority over yarn.lock; npm is the
// fallback when no lockfile is found. This never fails.
func DetectPackageManager(cwd string) PackageManager {
	if fileExists(filepath.Join(cwd, "pnpm-lock.yaml")) {
		return PNPM
	}
	if fileExists(filepath.Join(cwd, "yarn.lock")) {
		return Yarn
	}
	return NPM
}

// IsNodeProject reports whether the directory contains a package.json.
func IsNodeProject(cwd string) bool {
	return fileExists(filepath.Join(cwd, "package.json"))
}

// HasReact reports whether package.json lists react in dependencies or
// devDependencies. Missing or malformed package.json yields false.
func HasReact(cwd string) bool {
	pkg, ok := readPackageJSON(cwd)
	if !ok {
		return false
	}
	_, found := pkg.allDependencies()["react"]
	return found
}

// DetectFramework classifies the host project by inspecting package.json
// dependencies. It returns one of the Framework* identifiers or "" when
// nothing is recognized. Best-effort: malformed input yields "".
func DetectFramework(cwd string) string {
	pkg, ok := readPackageJSON(cwd)
	if !ok {
		return ""
	}

	deps := pkg.allDependencies()
	for _, candidate := range frameworkPackages {
		if _, found := deps[candidate.pkg]; found {
			return candidate.framework
		}
	}
	return ""
}

package config

import "path/filepath"

// cssSearchPaths lists conventional global-stylesheet locations, in priority
// order. Earlier entries win when multiple candidates exist.
var cssSearchPaths = []string{
	"src/index.css",
	"src/styles/globals.css",
	"src/app/globals.css",
	"app/globals.css",
	"app/app.css",
	"styles/globals.css",
	"src/global.css",
}

// defaultCSSFiles maps a detected framework to its conventional global
// stylesheet path, used when FindCSSFile finds nothing.
var defaultCSSFiles = map[string]string{
	FrameworkNext:  "app/globals.css",
	FrameworkRemix: "app/app.css",
	FrameworkAstro: "src/styles/global.css",
	FrameworkVite:  "src/index.css",
	FrameworkReact: "src/index.css",
}

// genericCSSFile is the fallback for an unrecognized or empty framework.
const genericCSSFile = "src/index.css"

// FindCSSFile searches conventional locations for an existing global
// stylesheet and returns the first match, relative to cwd, or "" when none
// exists.
func FindCSSFile(cwd string) string {
	for _, candidate := range cssSearchPaths {
		if fileExists(filepath.Join(cwd, candidate)) {
			return candidate
		}
	}
	return ""
}

// DefaultCSSFile returns the conventional global stylesheet path for a
// detected framework, falling back to a generic default for "" or an
// unrecognized identifier.
func DefaultCSSFile(framework string) string {
	if path, ok := defaultCSSFiles[framework]; ok {
		return path
	}
	return genericCSSFile
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// tsconfigFiles are checked in order; jsconfig.json only matters when no
// tsconfig.json exists.
var tsconfigFiles = []string{"tsconfig.json", "jsconfig.json"}

// tsconfig holds the subset of tsconfig.json/jsconfig.json the alias
// detector cares about.
type tsconfig struct {
	CompilerOptions struct {
		BaseURL string              `json:"baseUrl"`
		Paths   map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

var (
	lineCommentRE  = regexp.MustCompile(`(?m)^\s*//.*$`)
	blockCommentRE = regexp.MustCompile(`(?s)/\*.*?\*/`)
	trailingComma  = regexp.MustCompile(`,\s*([}\]])`)
)

// stripJSONC removes comments and trailing commas so that tsconfig files,
// which are JSONC in practice, parse with encoding/json. Comment markers
// inside string values are rare enough in compiler configs to ignore.
func stripJSONC(data []byte) []byte {
	data = blockCommentRE.ReplaceAll(data, nil)
	data = lineCommentRE.ReplaceAll(data, nil)
	data = trailingComma.ReplaceAll(data, []byte("$1"))
	return data
}

// DetectImportAlias parses tsconfig.json (or jsconfig.json if absent) and
// returns the import alias prefix mapped to the project's source root,
// conventionally "@" for a "@/*" paths entry. Malformed or absent config
// files yield "", never an error.
func DetectImportAlias(cwd string) string {
	for _, name := range tsconfigFiles {
		data, err := os.ReadFile(filepath.Join(cwd, name))
		if err != nil {
			continue
		}

		var tc tsconfig
		if err := json.Unmarshal(stripJSONC(data), &tc); err != nil {
			continue
		}

		if alias := aliasFromPaths(tc.CompilerOptions.Paths); alias != "" {
			return alias
		}
	}
	return ""
}

// aliasFromPaths picks the alias entry that maps to the project source
// root. "@/*" is the convention and wins outright; otherwise entries are
// tried in sorted order so detection is deterministic.
func aliasFromPaths(paths map[string][]string) string {
	if len(paths) == 0 {
		return ""
	}

	if targets, ok := paths["@/*"]; ok && mapsToSourceRoot(targets) {
		return "@"
	}

	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, pattern := range keys {
		alias, ok := strings.CutSuffix(pattern, "/*")
		if !ok || alias == "" {
			continue
		}
		if mapsToSourceRoot(paths[pattern]) {
			return alias
		}
	}
	return ""
}

// mapsToSourceRoot reports whether any path target resolves to the
// project's source root.
func mapsToSourceRoot(targets []string) bool {
	for _, target := range targets {
		trimmed := strings.TrimSuffix(strings.TrimPrefix(target, "./"), "/*")
		switch trimmed {
		case "src", "app", ".", "", "*":
			return true
		}
	}
	return false
}

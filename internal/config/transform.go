package config

import (
	"path"
	"regexp"
	"strings"
)

// registryAlias is the canonical import alias used by component source in
// the registry. Every payload imports siblings and utilities through it,
// e.g. "@/components/ui/button" or "@/lib/utils".
const registryAlias = "@"

// componentsImportPrefix is the registry-side path of installed components
// under the alias root. Imports beneath it are siblings in componentsDir.
const componentsImportPrefix = "components/ui/"

// importSpecRE matches the module specifier of import/export statements
// that reference the registry alias, including side-effect imports.
var importSpecRE = regexp.MustCompile(`((?:from|import)\s*['"])@/([^'"]+)(['"])`)

// TransformImports rewrites the import statements inside a component's
// source text so that sibling and utility imports resolve once the file is
// copied into the consumer's componentsDir.
//
// If the consumer project configures an import alias, registry imports are
// rewritten onto that alias. Otherwise they become relative paths computed
// from componentsDir's depth below the project's source root. The transform
// is pure text-in, text-out; only the alias probe touches the filesystem.
func TransformImports(content, componentsDir, cwd string) string {
	alias := DetectImportAlias(cwd)
	if alias == registryAlias {
		// Project already uses the registry convention
		return content
	}

	if alias != "" {
		return importSpecRE.ReplaceAllString(content, "${1}"+alias+"/${2}${3}")
	}

	up := strings.Repeat("../", relativeDepth(componentsDir))
	return importSpecRE.ReplaceAllStringFunc(content, func(match string) string {
		sub := importSpecRE.FindStringSubmatch(match)
		target := sub[2]
		if sibling, ok := strings.CutPrefix(target, componentsImportPrefix); ok {
			return sub[1] + "./" + sibling + sub[3]
		}
		return sub[1] + up + target + sub[3]
	})
}

// relativeDepth returns how many directories deep componentsDir sits below
// the project's source root, which is how many "../" segments a relative
// import needs to climb back out. A leading src/ or app/ element is the
// source root itself and does not count.
func relativeDepth(componentsDir string) int {
	cleaned := path.Clean(strings.TrimPrefix(componentsDir, "./"))
	if cleaned == "." || cleaned == "" {
		return 0
	}

	parts := strings.Split(cleaned, "/")
	if parts[0] == "src" || parts[0] == "app" {
		return len(parts) - 1
	}
	return len(parts)
}

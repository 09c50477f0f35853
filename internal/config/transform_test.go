package config

import (
	"strings"
	"testing"
)

const buttonSource = `import * as React from "react"
import { cn } from "@/lib/utils"
import { Slot } from "@/components/ui/slot"
import "@/styles/tokens.css"

export { badgeVariants } from "@/components/ui/badge"
`

func TestTransformImportsKeepsRegistryAlias(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tsconfig.json", `{"compilerOptions":{"paths":{"@/*":["./src/*"]}}}`)

	got := TransformImports(buttonSource, "./src/components/ui", dir)
	if got != buttonSource {
		t.Errorf("content should pass through unchanged when project uses @ alias:\n%s", got)
	}
}

func TestTransformImportsRewritesToProjectAlias(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tsconfig.json", `{"compilerOptions":{"paths":{"~/*":["./app/*"]}}}`)

	got := TransformImports(buttonSource, "./app/components/ui", dir)

	for _, want := range []string{
		`from "~/lib/utils"`,
		`from "~/components/ui/slot"`,
		`import "~/styles/tokens.css"`,
		`from "~/components/ui/badge"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("transformed source missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, `"@/`) {
		t.Errorf("registry alias should be fully rewritten:\n%s", got)
	}
}

func TestTransformImportsRelativeFallback(t *testing.T) {
	// No tsconfig: imports become relative to componentsDir's depth.
	dir := t.TempDir()

	got := TransformImports(buttonSource, "./src/components/ui", dir)

	for _, want := range []string{
		`from "../../lib/utils"`,
		`from "./slot"`,
		`import "../../styles/tokens.css"`,
		`from "./badge"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("transformed source missing %q:\n%s", want, got)
		}
	}
}

func TestTransformImportsRelativeDepthOutsideSrc(t *testing.T) {
	dir := t.TempDir()

	got := TransformImports(`import { cn } from "@/lib/utils"`, "./components/ui", dir)
	if !strings.Contains(got, `from "../../lib/utils"`) {
		t.Errorf("componentsDir outside src should count every segment:\n%s", got)
	}
}

func TestTransformImportsLeavesOtherImportsAlone(t *testing.T) {
	dir := t.TempDir()
	src := `import * as React from "react"
import { clsx } from "clsx"
import local from "./local"
`

	if got := TransformImports(src, "./src/components/ui", dir); got != src {
		t.Errorf("non-alias imports must not change:\n%s", got)
	}
}

func TestRelativeDepth(t *testing.T) {
	tests := []struct {
		dir  string
		want int
	}{
		{"./src/components/ui", 2},
		{"src/components/ui", 2},
		{"./app/components/ui", 2},
		{"./components/ui", 2},
		{"./components", 1},
		{"./src", 0},
		{".", 0},
	}

	for _, tt := range tests {
		if got := relativeDepth(tt.dir); got != tt.want {
			t.Errorf("relativeDepth(%q) = %d, want %d", tt.dir, got, tt.want)
		}
	}
}

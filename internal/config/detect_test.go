package config

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
		t.Fatalf("touch %s: %v", name, err)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestDetectPackageManager(t *testing.T) {
	tests := []struct {
		name      string
		lockfiles []string
		want      PackageManager
	}{
		{"pnpm lockfile", []string{"pnpm-lock.yaml"}, PNPM},
		{"yarn lockfile", []string{"yarn.lock"}, Yarn},
		{"both lockfiles prefers pnpm", []string{"pnpm-lock.yaml", "yarn.lock"}, PNPM},
		{"npm lockfile", []string{"package-lock.json"}, NPM},
		{"no lockfile defaults to npm", nil, NPM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, lf := range tt.lockfiles {
				touch(t, dir, lf)
			}
			if got := DetectPackageManager(dir); got != tt.want {
				t.Errorf("DetectPackageManager() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNodeProject(t *testing.T) {
	dir := t.TempDir()
	if IsNodeProject(dir) {
		t.Error("IsNodeProject() = true without package.json")
	}

	touch(t, dir, "package.json")
	if !IsNodeProject(dir) {
		t.Error("IsNodeProject() = false with package.json present")
	}
}

func TestHasReact(t *testing.T) {
	tests := []struct {
		name        string
		packageJSON string
		want        bool
	}{
		{"react in dependencies", `{"dependencies":{"react":"^18.0.0"}}`, true},
		{"react in devDependencies", `{"devDependencies":{"react":"^19.0.0"}}`, true},
		{"no react", `{"dependencies":{"vue":"^3.0.0"}}`, false},
		{"empty package.json", `{}`, false},
		{"malformed JSON", `{broken`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "package.json", tt.packageJSON)
			if got := HasReact(dir); got != tt.want {
				t.Errorf("HasReact() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasReactNoPackageJSON(t *testing.T) {
	if HasReact(t.TempDir()) {
		t.Error("HasReact() = true for a directory with no package.json")
	}
}

func TestDetectFramework(t *testing.T) {
	tests := []struct {
		name        string
		packageJSON string
		want        string
	}{
		{"nextjs", `{"dependencies":{"next":"14.0.0","react":"^18.0.0"}}`, FrameworkNext},
		{"vite react", `{"dependencies":{"react":"^18.0.0"},"devDependencies":{"vite":"^5.0.0"}}`, FrameworkVite},
		{"remix wins over vite", `{"dependencies":{"@remix-run/react":"^2.0.0"},"devDependencies":{"vite":"^5.0.0"}}`, FrameworkRemix},
		{"astro", `{"dependencies":{"astro":"^4.0.0"}}`, FrameworkAstro},
		{"plain react", `{"dependencies":{"react":"^18.0.0"}}`, FrameworkReact},
		{"unrecognized", `{"dependencies":{"svelte":"^4.0.0"}}`, ""},
		{"malformed", `not json`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "package.json", tt.packageJSON)
			if got := DetectFramework(dir); got != tt.want {
				t.Errorf("DetectFramework() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectFrameworkNoPackageJSON(t *testing.T) {
	if got := DetectFramework(t.TempDir()); got != "" {
		t.Errorf("DetectFramework() = %q, want empty string", got)
	}
}

// Scenario from the installer's point of view: a pnpm React project.
func TestPnpmReactProject(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "pnpm-lock.yaml")
	writeFile(t, dir, "package.json", `{"devDependencies":{"react":"^18.2.0"}}`)

	if got := DetectPackageManager(dir); got != PNPM {
		t.Errorf("DetectPackageManager() = %v, want pnpm", got)
	}
	if !HasReact(dir) {
		t.Error("HasReact() = false, want true")
	}
}

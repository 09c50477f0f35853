package sitecfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	site := Load(t.TempDir())

	if site.Docs.Dir != "dist" {
		t.Errorf("Docs.Dir = %v, want dist", site.Docs.Dir)
	}
	if site.Docs.BaseURL != "/" {
		t.Errorf("Docs.BaseURL = %v, want /", site.Docs.BaseURL)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "docs:\n  title: Rafters\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	site := Load(dir)
	if site.Docs.Title != "Rafters" {
		t.Errorf("Docs.Title = %v, want Rafters", site.Docs.Title)
	}
	if site.Docs.Dir != "dist" {
		t.Errorf("Docs.Dir = %v, want default dist", site.Docs.Dir)
	}
}

func TestLoadFullFile(t *testing.T) {
	dir := t.TempDir()
	content := `docs:
  dir: build/docs
  title: Rafters UI
  base_url: /rafters/
components:
  dir: packages/ui/src
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	site := Load(dir)
	if site.Docs.Dir != "build/docs" {
		t.Errorf("Docs.Dir = %v", site.Docs.Dir)
	}
	if site.Components.Dir != "packages/ui/src" {
		t.Errorf("Components.Dir = %v", site.Components.Dir)
	}
}

func TestLoadMalformedFileDegradesToDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("docs: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	site := Load(dir)
	if site.Docs.Dir != "dist" {
		t.Errorf("malformed docs.yaml should fall back to defaults, got %+v", site)
	}
}

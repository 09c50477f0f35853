package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestRegistry(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/index.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"version": "1.0",
			"components": [
				{
					"name": "button",
					"description": "Clickable action trigger",
					"intent": {
						"cognitiveLoad": "low",
						"accessibility": ["focus ring meets WCAG 2.2"],
						"usageGuidance": "# Button\nUse for primary actions."
					},
					"registryDependencies": ["slot"],
					"dependencies": ["class-variance-authority"]
				},
				{"name": "slot"}
			]
		}`))
	})
	mux.HandleFunc("/components/button.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "button",
			"registryDependencies": ["slot"],
			"files": [
				{"path": "button.tsx", "type": "component", "content": "export const Button = null"},
				{"path": "button.stories.tsx", "type": "story", "content": "export default {}"}
			]
		}`))
	})
	mux.HandleFunc("/components/broken.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestIndex(t *testing.T) {
	srv := newTestRegistry(t)
	client := NewClient(srv.URL)

	index, err := client.Index(context.Background())
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}

	if len(index.Components) != 2 {
		t.Fatalf("Index() returned %d components, want 2", len(index.Components))
	}

	button := index.Components[0]
	if button.Name != "button" {
		t.Errorf("Name = %v, want button", button.Name)
	}
	if button.Intent.CognitiveLoad != LoadLow {
		t.Errorf("CognitiveLoad = %v, want low", button.Intent.CognitiveLoad)
	}
	if len(button.RegistryDependencies) != 1 || button.RegistryDependencies[0] != "slot" {
		t.Errorf("RegistryDependencies = %v, want [slot]", button.RegistryDependencies)
	}
}

func TestComponent(t *testing.T) {
	srv := newTestRegistry(t)
	client := NewClient(srv.URL)

	comp, err := client.Component(context.Background(), "button")
	if err != nil {
		t.Fatalf("Component() error = %v", err)
	}

	if len(comp.Files) != 2 {
		t.Fatalf("Component() returned %d files, want 2", len(comp.Files))
	}
	if comp.Files[0].Type != FileTypeComponent {
		t.Errorf("Files[0].Type = %v, want component", comp.Files[0].Type)
	}
	if comp.Files[1].Type != FileTypeStory {
		t.Errorf("Files[1].Type = %v, want story", comp.Files[1].Type)
	}
}

func TestComponentNotFound(t *testing.T) {
	srv := newTestRegistry(t)
	client := NewClient(srv.URL)

	_, err := client.Component(context.Background(), "does-not-exist")
	if err == nil {
		t.Fatal("Component() should fail for unknown name")
	}
	if !IsNotFound(err) {
		t.Errorf("error should be NotFound, got: %v", err)
	}
}

func TestComponentDecodeError(t *testing.T) {
	srv := newTestRegistry(t)
	client := NewClient(srv.URL)

	_, err := client.Component(context.Background(), "broken")
	if err == nil {
		t.Fatal("Component() should fail on malformed JSON")
	}
	if IsNotFound(err) {
		t.Errorf("decode failure must not classify as NotFound: %v", err)
	}
}

func TestTransportError(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Index(context.Background())
	if err == nil {
		t.Fatal("Index() should fail when the registry is unreachable")
	}
	if IsNotFound(err) {
		t.Errorf("transport failure must not classify as NotFound: %v", err)
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client := NewClient("https://registry.rafters.dev/")
	if client.BaseURL != "https://registry.rafters.dev" {
		t.Errorf("BaseURL = %v, trailing slash should be trimmed", client.BaseURL)
	}
}

package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func writeDocs(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestInjectReloadScript(t *testing.T) {
	t.Run("before closing body tag", func(t *testing.T) {
		page := []byte("<html><body><h1>Docs</h1></body></html>")
		got := string(injectReloadScript(page))

		scriptIdx := strings.Index(got, "<script>")
		bodyIdx := strings.Index(got, "</body>")
		if scriptIdx < 0 {
			t.Fatal("script not injected")
		}
		if bodyIdx < scriptIdx {
			t.Errorf("script should come before </body>:\n%s", got)
		}
	})

	t.Run("no body tag appends", func(t *testing.T) {
		got := string(injectReloadScript([]byte("<h1>fragment</h1>")))
		if !strings.HasSuffix(got, "</script>") {
			t.Errorf("script should be appended:\n%s", got)
		}
	})
}

func TestDocsHandler(t *testing.T) {
	dir := t.TempDir()
	writeDocs(t, dir, map[string]string{
		"index.html":            "<html><body>home</body></html>",
		"components/index.html": "<html><body>components</body></html>",
		"assets/site.css":       "body {}",
	})

	handler := &docsHandler{dir: dir, baseURL: "/"}
	srv := httptest.NewServer(handler)
	defer srv.Close()

	t.Run("root serves index with reload script", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "home") {
			t.Errorf("index content missing:\n%s", body)
		}
		if !strings.Contains(string(body), reloadEndpoint) {
			t.Errorf("reload script missing:\n%s", body)
		}
	})

	t.Run("directory serves its index", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/components/")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "components") {
			t.Errorf("directory index missing:\n%s", body)
		}
	})

	t.Run("assets served without injection", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/assets/site.css")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if strings.Contains(string(body), "<script>") {
			t.Error("non-HTML responses must not get the reload script")
		}
	})

	t.Run("missing file is 404", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/nope.html")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return hub.Count() == 1 })

	hub.Broadcast("dist/index.html")

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("reading broadcast: %v", err)
	}
	if string(msg) != reloadMessage {
		t.Errorf("broadcast = %q, want %q", msg, reloadMessage)
	}
}

func TestHubClose(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return hub.Count() == 1 })

	hub.Close()
	if hub.Count() != 0 {
		t.Errorf("Count() = %d after Close(), want 0", hub.Count())
	}
}

func TestWatcherDebounce(t *testing.T) {
	dir := t.TempDir()
	changes := make(chan string, 16)

	w, err := NewWatcher(dir, func(path string) { changes <- path })
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	// A burst of writes should collapse into one callback.
	for i := 0; i < 5; i++ {
		writeDocs(t, dir, map[string]string{"page.html": strings.Repeat("x", i+1)})
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change callback after writes")
	}

	select {
	case path := <-changes:
		t.Errorf("burst produced a second callback for %q", path)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestNewRequiresDocsDir(t *testing.T) {
	_, err := New(&Config{Dir: filepath.Join(t.TempDir(), "missing"), BaseURL: "/"})
	if err == nil {
		t.Fatal("New() should fail for a missing docs directory")
	}
}

func TestServerURL(t *testing.T) {
	dir := t.TempDir()
	srv, err := New(&Config{Host: "0.0.0.0", Port: 4173, Dir: dir, BaseURL: "/"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if srv.URL() != "http://localhost:4173/" {
		t.Errorf("URL() = %v", srv.URL())
	}
}

package server

import (
	"bytes"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rafters-ui/rafters/internal/logging"
)

// reloadEndpoint is the WebSocket path the injected client connects to.
const reloadEndpoint = "/__rafters_reload"

// reloadScript is injected before </body> of every served HTML page. It
// reconnects with a short backoff so a server restart picks clients back up.
const reloadScript = `<script>
(function () {
  function connect() {
    var ws = new WebSocket("ws://" + location.host + "` + reloadEndpoint + `");
    ws.onmessage = function (ev) {
      if (ev.data === "reload") location.reload();
    };
    ws.onclose = function () {
      setTimeout(connect, 1000);
    };
  }
  connect();
})();
</script>`

// docsHandler serves static files from the docs directory, injecting the
// live-reload script into HTML responses.
type docsHandler struct {
	dir     string
	baseURL string
}

func (h *docsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urlPath := strings.TrimPrefix(r.URL.Path, strings.TrimSuffix(h.baseURL, "/"))
	if urlPath == "" || urlPath == "/" {
		urlPath = "/index.html"
	}

	filePath := filepath.Join(h.dir, filepath.FromSlash(path.Clean("/"+urlPath)))

	info, err := os.Stat(filePath)
	if err == nil && info.IsDir() {
		filePath = filepath.Join(filePath, "index.html")
		info, err = os.Stat(filePath)
	}
	if err != nil {
		http.NotFound(w, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, http.StatusNotFound)
		return
	}

	if strings.HasSuffix(filePath, ".html") {
		h.serveHTML(w, r, filePath)
		return
	}

	http.ServeFile(w, r, filePath)
	logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, http.StatusOK)
}

// serveHTML reads an HTML file and injects the reload script before the
// closing body tag, or appends it when no such tag exists.
func (h *docsHandler) serveHTML(w http.ResponseWriter, r *http.Request, filePath string) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		http.Error(w, "failed to read page", http.StatusInternalServerError)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, http.StatusInternalServerError)
		return
	}

	data = injectReloadScript(data)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
	logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, http.StatusOK)
}

func injectReloadScript(page []byte) []byte {
	marker := []byte("</body>")
	if idx := bytes.LastIndex(page, marker); idx >= 0 {
		var buf bytes.Buffer
		buf.Grow(len(page) + len(reloadScript))
		buf.Write(page[:idx])
		buf.WriteString(reloadScript)
		buf.Write(page[idx:])
		return buf.Bytes()
	}
	return append(page, []byte(reloadScript)...)
}

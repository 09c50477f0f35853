package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafters-ui/rafters/internal/discovery"
	"github.com/rafters-ui/rafters/internal/logging"
	"go.uber.org/zap"
)

// Config holds the docs dev server configuration
type Config struct {
	Host    string
	Port    int
	Dir     string // Built docs directory to serve
	Title   string // Site title (from docs.yaml)
	BaseURL string // Path prefix the site is served under
	// Announce publishes the server over mDNS so other machines on the
	// LAN can find the docs site
	Announce bool
}

// Server is the docs dev server: static files, live reload, optional mDNS.
type Server struct {
	config   *Config
	hub      *Hub
	watcher  *Watcher
	httpSrv  *http.Server
	announce *discovery.Announcer
}

// New creates a new Server instance. The docs directory must exist.
func New(config *Config) (*Server, error) {
	if _, err := os.Stat(config.Dir); err != nil {
		return nil, fmt.Errorf("docs directory %q does not exist - build the docs site first: %w", config.Dir, err)
	}

	hub := NewHub()

	mux := http.NewServeMux()
	mux.HandleFunc(reloadEndpoint, hub.HandleWebSocket)
	mux.Handle("/", &docsHandler{dir: config.Dir, baseURL: config.BaseURL})

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)

	return &Server{
		config: config,
		hub:    hub,
		httpSrv: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}, nil
}

// Start starts the server and blocks until shutdown
func (s *Server) Start() error {
	watcher, err := NewWatcher(s.config.Dir, s.hub.Broadcast)
	if err != nil {
		return fmt.Errorf("failed to watch docs directory: %w", err)
	}
	s.watcher = watcher

	if s.config.Announce {
		announcer, err := discovery.Announce(s.config.Title, s.config.Port)
		if err != nil {
			logging.Warn("mDNS announcement failed, continuing without it",
				zap.Error(err),
			)
		} else {
			s.announce = announcer
		}
	}

	logging.Info("Docs server listening",
		zap.String("addr", s.httpSrv.Addr),
		zap.String("dir", s.config.Dir),
		zap.String("title", s.config.Title),
		zap.Bool("announce", s.announce != nil),
	)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	select {
	case sig := <-sigChan:
		logging.Info("Received shutdown signal", zap.String("signal", sig.String()))
		return s.Shutdown()
	case err := <-errChan:
		if err != nil {
			s.cleanup()
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}
}

// Shutdown stops the server gracefully: watcher first so no reloads fire
// mid-shutdown, then WebSocket clients, then the HTTP listener.
func (s *Server) Shutdown() error {
	s.cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logging.Info("Server stopped")
	return nil
}

func (s *Server) cleanup() {
	if s.watcher != nil {
		_ = s.watcher.Close()
		s.watcher = nil
	}
	if s.announce != nil {
		s.announce.Shutdown()
		s.announce = nil
	}
	s.hub.Close()
}

// URL returns the address users should open in a browser.
func (s *Server) URL() string {
	host := s.config.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d%s", host, s.config.Port, s.config.BaseURL)
}

// Package server implements the docs dev server behind 'rafters serve'.
//
// The server does three things:
//
//   - Serves a built docs directory as static files, injecting a small
//     live-reload client script into every HTML page.
//   - Watches the docs directory for changes (fsnotify) and broadcasts a
//     reload message over WebSocket to every connected browser, debouncing
//     bursts from build tools that rewrite many files at once.
//   - Optionally announces itself over mDNS so the docs site can be opened
//     from other machines on the LAN.
//
// It serves an already-built docs directory; it never builds. Lifecycle
// follows the CLI convention: Start blocks until SIGINT/SIGTERM, then shuts
// down gracefully, closing the watcher and every WebSocket client.
package server

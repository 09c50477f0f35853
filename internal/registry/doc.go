// Package registry provides the HTTP client for the remote Rafters
// component registry.
//
// The registry is a static JSON tree served over HTTP(S):
//
//	<base>/index.json             - list of component entries with metadata
//	<base>/components/<name>.json - full payload for one component
//
// Each entry carries the design-intent metadata Rafters attaches to every
// component (cognitive load, accessibility notes, usage guidance) alongside
// its file payloads and dependency lists. The client performs one-shot,
// context-aware GETs with no retry logic; the CLI surfaces failures
// immediately rather than masking a bad registry URL.
//
// # Usage Example
//
//	client := registry.NewClient(cfg.Registry)
//	comp, err := client.Component(ctx, "button")
//	if registry.IsNotFound(err) {
//	    // unknown component name
//	}
package registry

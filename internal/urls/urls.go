// Package urls provides centralized constants for all documentation URLs
// used throughout the CLI.
//
// All documentation links shown to users live here as exported constants so
// they can be updated in a single location before release.
package urls

// GettingStarted is the quick start guide covering installation and
// first-time project setup with 'rafters init'.
const GettingStarted = "https://rafters.dev/docs/getting-started/"

// Configuration documents every field of .rafters/config.json and how the
// detection heuristics fill them in.
const Configuration = "https://rafters.dev/docs/configuration/"

// Registry explains the component registry layout and how to point the CLI
// at a private registry.
const Registry = "https://rafters.dev/docs/registry/"

// DesignIntent describes the cognitive-load and accessibility metadata
// attached to every component.
const DesignIntent = "https://rafters.dev/docs/design-intent/"

// Troubleshooting provides solutions to common installation and detection
// issues.
const Troubleshooting = "https://rafters.dev/docs/troubleshooting/"

// Package logging provides structured logging for the rafters CLI.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the CLI and the docs dev server. Logging is silent by
// default: a normal CLI run produces only the command's own output. Setting
// RAFTERS_LOG_LEVEL enables diagnostics.
//
// # Log Levels
//
//   - Debug: Detection probe results, import rewrites, watcher events
//   - Info: Normal operations (installs, server requests, reload broadcasts)
//   - Warn: Non-fatal issues (malformed docs.yaml, dropped clients)
//   - Error: Failures worth reporting even when the command continues
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Component installed",
//	    zap.String("component", "button"),
//	    zap.Int("files", 3),
//	)
//
// # Configuration
//
// CLI commands initialize from the environment so they stay silent unless
// asked:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging

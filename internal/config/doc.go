// Package config manages the per-project Rafters configuration and answers
// heuristic questions about the host project's toolchain.
//
// The configuration lives at <project>/.rafters/config.json and records where
// components are installed, which package manager the project uses, the
// remote registry URL, and optional styling conventions. It is written once
// by 'rafters init' and read on every subsequent CLI invocation.
//
// # Validation
//
// Validation is enforced on read only. Save writes whatever it is given, so a
// hand-edited config file is always re-checked the next time it is loaded.
// Unknown keys in the file are accepted and dropped.
//
// # Detection helpers
//
// The Detect* and Find* functions are best-effort probes against the host
// project's filesystem (lockfiles, package.json, tsconfig.json, conventional
// stylesheet locations). They never return an error: any failure mode
// (missing file, malformed JSON, no match) collapses to a zero value so a
// single broken input file cannot abort an otherwise-successful detection
// pass.
//
// # Usage Example
//
//	cfg := config.DefaultConfig()
//	cfg.PackageManager = config.DetectPackageManager(cwd)
//	if css := config.FindCSSFile(cwd); css != "" {
//	    cfg.CSSFile = css
//	}
//	if err := config.Save(cfg, cwd); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// The config file is a single-process, single-writer artifact. Save performs
// an atomic temp+rename write so a crashed process never leaves a torn file,
// but concurrent invocations racing on the same file are last-writer-wins.
package config

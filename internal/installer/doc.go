// Package installer copies registry components into a consumer project.
//
// Given a set of component names, the installer resolves their registry
// dependencies transitively, fetches each payload, rewrites import paths to
// match the project's conventions (see config.TransformImports), and writes
// the files under the configured componentsDir. Story files go to storiesDir
// when the project has Storybook; otherwise they are dropped.
//
// Existing files are skipped rather than overwritten unless Force is set,
// so local edits to an installed component survive a re-run. npm packages a
// component needs are never installed by the CLI; the report lists them with
// the right install command for the detected package manager.
package installer

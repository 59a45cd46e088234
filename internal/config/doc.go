// Package config loads and persists the application settings.
//
// Settings live in a single TOML file. A missing file is not an error:
// defaults apply until something is saved. The draft-mode flag is
// written back on toggle when mode.persist is set, so the mode survives
// restarts. A watcher reloads the file when it changes on disk.
package config

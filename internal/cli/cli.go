// Package cli implements the gridtable command-line interface.
//
// This package provides commands for rendering CSV and JSON data as framed
// text tables, browsing them interactively, serving renders over HTTP, and
// listing the built-in border styles. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a CSV or JSON file as a text table
//   - view: Browse a table interactively in the terminal
//   - serve: Run the HTTP render service
//   - styles: Preview the built-in border styles
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/gridtable/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "gridtable"

// newCache returns the render cache: file-based under the XDG cache
// directory, or a null cache when disabled or the directory is unusable.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/gridtable/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

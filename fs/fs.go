// Package fs resolves filesystem locations for diffnav state.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultCacheDir returns the default cache directory for diffnav.
// Uses XDG_CACHE_HOME if set, otherwise falls back to ~/.cache/diffnav,
// or system temp directory if home is unavailable.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "diffnav")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "diffnav")
	}
	return filepath.Join(home, ".cache", "diffnav")
}

// HistoryPath returns the default location of the session history file.
func HistoryPath() string {
	return filepath.Join(DefaultCacheDir(), "history.jsonl")
}

// Package xdg provides helpers to resolve XDG Base Directory paths for batchtsocmd.
// It implements the XDG Base Directory specification for determining appropriate
// locations for configuration files and other application-specific directories
// on Unix-like systems, including z/OS UNIX System Services.
//
// The package handles fallback to traditional locations when XDG environment
// variables are not set and ensures proper permissions for the configuration
// directory.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for batchtsocmd.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/batchtsocmd when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "batchtsocmd")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

// Package paths provides centralized path handling for benv.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for benv
	EnvDataDir = "BENV_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for benv
	EnvConfigDir = "BENV_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for benv
	EnvStateDir = "BENV_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: These constants define benv's on-disk layout and are NOT
// user-configurable. They must remain consistent across installations so
// that databases written by one version are found by the next.
const (
	// BenvDirName is the directory name for benv-specific files
	BenvDirName = "benv"

	// DatabaseFileName is the name of the profile database
	DatabaseFileName = "benv.db"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "benv.log"
)

// DataDir returns the directory holding the profile database.
// BENV_DATA_DIR takes priority over the XDG data home.
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.DataHome, BenvDirName)
}

// ConfigDir returns the directory holding the configuration file.
// BENV_CONFIG_DIR takes priority over the XDG config home.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, BenvDirName)
}

// StateDir returns the directory holding logs and other state that is
// neither data nor configuration. BENV_STATE_DIR takes priority over the
// XDG state home.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.StateHome, BenvDirName)
}

// DatabaseFile returns the full path to the profile database.
func DatabaseFile() string {
	return filepath.Join(DataDir(), DatabaseFileName)
}

// ConfigFile returns the full path to the configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// LogFile returns the full path to the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// Ensure creates dir (and any missing parents) with owner-only
// permissions. Existing directories are left untouched.
func Ensure(dir string) error {
	return os.MkdirAll(dir, 0o700)
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if path == "~" {
			return homeDir
		}

		if len(path) > 1 && path[1] == '/' {
			return filepath.Join(homeDir, path[2:])
		}
	}

	return path
}

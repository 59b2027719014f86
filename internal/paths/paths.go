// Package paths locates the configuration and data directories used by
// the rentbook CLI. Every command resolves both through this package so
// that flags, environment variables, and platform conventions stack the
// same way everywhere.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the per-application directory under the platform base.
const appDirName = "rentbook"

// CWD-relative directory names used when no override is active.
const (
	DefaultConfigDirName = ".rentbook"
	DefaultDataDirName   = ".rentbook-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "RENTBOOK_CONFIG_DIR"
	EnvDataDir   = "RENTBOOK_DATA_DIR"
)

// xdgDir resolves a Linux base directory: the XDG variable when set,
// otherwise the conventional fallback under the home directory.
func xdgDir(envVar string, fallback ...string) (string, error) {
	if base := os.Getenv(envVar); base != "" {
		return filepath.Join(base, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, fallback...)
	parts = append(parts, appDirName)
	return filepath.Join(parts...), nil
}

// userDir is the non-Linux base. os.UserConfigDir yields
// ~/Library/Application Support on macOS and %APPDATA% on Windows; both
// platforms keep config and data together.
func userDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// DefaultConfigDir returns the platform default configuration directory:
// $XDG_CONFIG_HOME/rentbook on Linux (falling back to ~/.config/rentbook),
// the user config directory elsewhere.
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_CONFIG_HOME", ".config")
	}
	return userDir()
}

// DefaultDataDir returns the platform default data directory:
// $XDG_DATA_HOME/rentbook on Linux (falling back to ~/.local/share/rentbook),
// the user config directory elsewhere.
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_DATA_HOME", ".local", "share")
	}
	return userDir()
}

// ResolveConfigDir applies the configuration directory precedence:
// the flag value, then RENTBOOK_CONFIG_DIR, then the platform default.
// Flag and environment values are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	for _, candidate := range []string{flag, os.Getenv(EnvConfigDir)} {
		if candidate != "" {
			return filepath.Abs(candidate)
		}
	}
	return DefaultConfigDir()
}

// ResolveDataDir applies the data directory precedence: the flag value,
// then the config file value, then RENTBOOK_DATA_DIR, then .rentbook-db
// under the working directory. The working-directory default keeps each
// bookkeeping directory self-contained next to the records it holds.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, candidate := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if candidate != "" {
			return filepath.Abs(candidate)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

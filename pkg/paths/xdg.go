// Package paths resolves svcman's XDG directories.
//
// Resolution order:
// 1. SVCMAN_HOME (portable root) → $SVCMAN_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/svcman
// 3. Defaults → ~/.config/svcman, ~/.local/state/svcman
package paths

import (
	"os"
	"path/filepath"
)

const appName = "svcman"

func getConfigHome() string {
	if home := os.Getenv("SVCMAN_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

func getStateHome() string {
	if home := os.Getenv("SVCMAN_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the directory holding the global svcman.yml.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	if os.Getenv("SVCMAN_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// StateDir returns the directory for runtime state such as logs.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	if os.Getenv("SVCMAN_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// LogsDir returns the default log file directory.
func LogsDir() string {
	return filepath.Join(StateDir(), "logs")
}

package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// UserConfigPath returns the per-user configuration file path under
// the XDG config home.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "rofigo", "config.json")
}

// ProjectConfigPath returns the project-local configuration file path
// under dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ".rofigo.json")
}

// DefaultPaths returns the configuration file paths in ascending
// precedence order: user config first, then the project-local file in
// the current directory.
func DefaultPaths() []string {
	return []string{
		UserConfigPath(),
		ProjectConfigPath("."),
	}
}

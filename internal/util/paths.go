package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the per-user configuration directory for app.
func ConfigDir(app string) string {
	return filepath.Join(userDir("XDG_CONFIG_HOME", ".config"), app)
}

// ReportsDir is where exported reports go when only a file name is given.
func ReportsDir(app string) string {
	return filepath.Join(userDir("XDG_DOCUMENTS_DIR", "Documents"), app)
}

// userDir returns $env when set, otherwise rel under the home directory.
func userDir(env, rel string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return base
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, rel)
}

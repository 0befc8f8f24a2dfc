package config

import (
	"os"
	"path/filepath"
)

// FindConfigPath resolves the configuration path.
//
// Precedence:
//  1. explicit argument
//  2. LX_CONFIG env var
//  3. lx/config.yaml under the user config directory
//
// It returns "" when no candidate can be formed; Load treats that as a
// missing file.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv("LX_CONFIG"); v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lx", "config.yaml")
}

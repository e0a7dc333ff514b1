package storage

import (
	"os"
	"path/filepath"
)

const appName = ".accordion"

// DefaultStoragePath returns the default storage location for accordion state
// Platform-specific paths:
//   - macOS/Linux: ~/.accordion
//   - Windows: %USERPROFILE%\.accordion
func DefaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appName), nil
}

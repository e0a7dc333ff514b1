package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	stateDir       = "state"
	filePermission = 0644
	dirPermission  = 0755
)

// JSONRepository implements Repository with one JSON file per key
type JSONRepository struct {
	basePath string
	logger   *slog.Logger
}

// NewJSONRepository creates a new file-based storage repository rooted at basePath
func NewJSONRepository(basePath string, logger *slog.Logger) *JSONRepository {
	return &JSONRepository{
		basePath: basePath,
		logger:   logger,
	}
}

// Get reads the blob stored under key
func (r *JSONRepository) Get(key string) ([]byte, bool, error) {
	if err := validateKeyName(key); err != nil {
		return nil, false, fmt.Errorf("invalid key: %w", err)
	}
	path := r.keyPath(key)
	if err := r.verifyPathInStateDir(path); err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debug("no stored blob", slog.String("key", key))
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read state file: %w", err)
	}

	r.logger.Debug("loaded blob",
		slog.String("key", key),
		slog.String("path", path),
		slog.Int("bytes", len(data)))

	return data, true, nil
}

// Set writes blob under key, replacing any previous content atomically
func (r *JSONRepository) Set(key string, blob []byte) error {
	if err := validateKeyName(key); err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}
	if err := r.ensureStateDir(); err != nil {
		return fmt.Errorf("ensure state directory: %w", err)
	}

	path := r.keyPath(key)
	if err := r.verifyPathInStateDir(path); err != nil {
		return err
	}

	if err := atomicWriteFile(path, blob, filePermission); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	r.logger.Debug("saved blob",
		slog.String("key", key),
		slog.String("path", path))

	return nil
}

// Delete removes the file stored under key
func (r *JSONRepository) Delete(key string) error {
	if err := validateKeyName(key); err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}
	path := r.keyPath(key)
	if err := r.verifyPathInStateDir(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			// Already gone, not an error
			return nil
		}
		return fmt.Errorf("delete state file: %w", err)
	}

	r.logger.Debug("deleted blob", slog.String("key", key))
	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// in the same directory, syncing, then renaming over the target path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	// Clean up temp file on any failure
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// validateKeyName checks that a key is safe for use as a filename.
func validateKeyName(key string) error {
	if key == "" {
		return fmt.Errorf("key must not be empty")
	}
	if strings.Contains(key, "..") {
		return fmt.Errorf("key must not contain %q", "..")
	}
	if strings.ContainsAny(key, "/\\") {
		return fmt.Errorf("key must not contain path separators")
	}
	if strings.ContainsRune(key, 0) {
		return fmt.Errorf("key must not contain null bytes")
	}
	return nil
}

// Helper methods

func (r *JSONRepository) ensureStateDir() error {
	path := filepath.Join(r.basePath, stateDir)
	if err := os.MkdirAll(path, dirPermission); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	return nil
}

func (r *JSONRepository) keyPath(key string) string {
	return filepath.Join(r.basePath, stateDir, key+".json")
}

// verifyPathInStateDir checks that the resolved path is within the state directory.
func (r *JSONRepository) verifyPathInStateDir(path string) error {
	base := filepath.Join(r.basePath, stateDir)
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return fmt.Errorf("path outside state directory: %w", err)
	}
	if strings.HasPrefix(rel, "..") {
		return fmt.Errorf("path %q escapes state directory", path)
	}
	return nil
}

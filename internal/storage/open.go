package storage

import (
	"fmt"
	"io"
	"log/slog"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendMemory, BackendJSON, BackendSQLite}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open creates the repository for backend rooted at basePath. The closer
// must be called when the repository is no longer used.
func Open(backend, basePath string, logger *slog.Logger) (Repository, io.Closer, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryRepository(), nopCloser{}, nil
	case BackendJSON, "":
		return NewJSONRepository(basePath, logger), nopCloser{}, nil
	case BackendSQLite:
		repo, err := OpenSQLiteRepository(basePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q (want one of %v)", backend, Backends)
}

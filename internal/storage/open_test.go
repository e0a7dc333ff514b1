package storage

import (
	"testing"

	"github.com/shhac/accordion/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		backend string
		want    any
	}{
		{BackendMemory, &MemoryRepository{}},
		{BackendJSON, &JSONRepository{}},
		{"", &JSONRepository{}},
		{BackendSQLite, &SQLiteRepository{}},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			repo, closer, err := Open(tt.backend, t.TempDir(), logging.NewNopLogger())
			require.NoError(t, err)
			defer closer.Close()

			assert.IsType(t, tt.want, repo)

			require.NoError(t, repo.Set("componentState", []byte(`{}`)))
			blob, ok, err := repo.Get("componentState")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{}`, string(blob))
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, _, err := Open("redis", t.TempDir(), logging.NewNopLogger())
	assert.ErrorContains(t, err, "unknown storage backend")
}

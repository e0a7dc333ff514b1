package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shhac/accordion/internal/accordion"
	"github.com/shhac/accordion/internal/logging"
	"github.com/shhac/accordion/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Backend = backend
	cfg.StoragePath = t.TempDir()
	return cfg
}

func TestNew_WiresDefaultCatalog(t *testing.T) {
	a, err := New(testConfig(t, storage.BackendMemory), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	defer a.Close()

	assert.Len(t, a.Catalog().Panels, 5)
	assert.Equal(t, 5, a.Accordion().PanelCount())
	assert.Equal(t, []int{0}, a.Accordion().State().OpenIndices())
	assert.False(t, a.Strict())
}

func TestNew_PersistsAcrossRestarts(t *testing.T) {
	for _, backend := range []string{storage.BackendJSON, storage.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t, backend)

			first, err := New(cfg, WithLogger(logging.NewNopLogger()))
			require.NoError(t, err)
			require.NoError(t, first.Accordion().ToggleMultiSelect(true))
			require.NoError(t, first.Accordion().TogglePanel(3))
			require.NoError(t, first.Close())

			second, err := New(cfg, WithLogger(logging.NewNopLogger()))
			require.NoError(t, err)
			defer second.Close()

			state := second.Accordion().State()
			assert.Equal(t, []int{0, 3}, state.OpenIndices())
			assert.True(t, state.MultiSelect)
		})
	}
}

func TestNew_CustomCatalogAndKey(t *testing.T) {
	cfg := testConfig(t, storage.BackendMemory)
	cfg.Key = "shipping"
	cfg.PanelsFile = filepath.Join(t.TempDir(), "panels.yaml")
	require.NoError(t, os.WriteFile(cfg.PanelsFile, []byte(`
name: shipping
default_open: 2
panels:
  - title: A
  - title: B
  - title: C
`), 0644))

	a, err := New(cfg, WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, []int{2}, a.Accordion().State().OpenIndices())
	_, ok, err := a.Storage().Get("shipping")
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, _ = a.Storage().Get(accordion.DefaultKey)
	assert.False(t, ok)
}

func TestNew_BadCatalog(t *testing.T) {
	cfg := testConfig(t, storage.BackendMemory)
	cfg.PanelsFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := New(cfg, WithLogger(logging.NewNopLogger()))
	assert.ErrorContains(t, err, "failed to load panels")
}

func TestNew_FileLogger(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	a, err := New(testConfig(t, storage.BackendMemory))
	require.NoError(t, err)
	assert.NotNil(t, a.Logger())
	assert.NoError(t, a.Close())
}

func TestNew_HeadlessActionsWithoutFyneApp(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	cfg := testConfig(t, storage.BackendJSON)

	var a *App
	require.NotPanics(t, func() {
		var err error
		a, err = New(cfg, WithConsole(io.Discard))
		require.NoError(t, err)
	})
	defer a.Close()

	require.NotPanics(t, func() {
		require.NoError(t, a.Accordion().TogglePanel(2))
		require.NoError(t, a.Accordion().ToggleMultiSelect(true))
		require.NoError(t, a.Accordion().TogglePanel(4))
	})
	assert.Equal(t, []int{2, 4}, a.Accordion().State().OpenIndices())

	require.NoError(t, a.Accordion().Reset())
	assert.Equal(t, []int{0}, a.Accordion().State().OpenIndices())
}

package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shhac/accordion/internal/accordion"
	"github.com/shhac/accordion/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig points HOME at an empty directory so no real config is read.
func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ACCORDION_CONFIG", "")
	return home
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Debug)
	assert.Equal(t, storage.BackendJSON, cfg.Backend)
	assert.Equal(t, accordion.DefaultKey, cfg.Key)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_NoFile(t *testing.T) {
	isolateConfig(t)

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnv_EnvOverrides(t *testing.T) {
	isolateConfig(t)
	t.Setenv("ACCORDION_DEBUG", "true")
	t.Setenv("ACCORDION_BACKEND", "sqlite")
	t.Setenv("ACCORDION_STORAGE_PATH", "/tmp/acc")
	t.Setenv("ACCORDION_KEY", "faq")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, storage.BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/acc", cfg.StoragePath)
	assert.Equal(t, "faq", cfg.Key)
}

func TestLoadConfig_DefaultLocation(t *testing.T) {
	home := isolateConfig(t)
	dir := filepath.Join(home, ".config", "accordion")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("backend: memory\nstrict: true\npanels_file: /etc/panels.yaml\n"), 0644))

	cfg, err := LoadConfig(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, storage.BackendMemory, cfg.Backend)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "/etc/panels.yaml", cfg.PanelsFile)
}

func TestLoadConfig_EnvBeatsFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "accordion.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\nkey: fromfile\n"), 0644))
	t.Setenv("ACCORDION_KEY", "fromenv")

	cfg, err := LoadConfig(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "fromenv", cfg.Key)
}

func TestLoadConfig_ExplicitFileMustExist(t *testing.T) {
	isolateConfig(t)

	_, err := LoadConfig(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Backend = "redis" }},
		{"empty key", func(c *Config) { c.Key = " " }},
		{"unknown theme", func(c *Config) { c.Theme = "sepia" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

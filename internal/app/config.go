package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/shhac/accordion/internal/accordion"
	"github.com/shhac/accordion/internal/storage"
)

// EnvPrefix prefixes every environment override, e.g. ACCORDION_DEBUG.
const EnvPrefix = "ACCORDION"

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool `mapstructure:"debug"`

	// Strict makes out-of-range panel indices fail instead of being ignored
	Strict bool `mapstructure:"strict"`

	// StoragePath is the directory where state is stored
	StoragePath string `mapstructure:"storage_path"`

	// Backend selects the repository: memory, json or sqlite
	Backend string `mapstructure:"backend"`

	// Key is the storage key the snapshot is written under
	Key string `mapstructure:"key"`

	// PanelsFile is an optional YAML panel catalog
	PanelsFile string `mapstructure:"panels_file"`

	// Theme is "system", "light" or "dark"; empty keeps the saved preference
	Theme string `mapstructure:"theme"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		Strict:      false,
		StoragePath: "", // Will use DefaultStoragePath() from storage package
		Backend:     storage.BackendJSON,
		Key:         accordion.DefaultKey,
	}
}

// NewViper returns a viper instance with defaults and ACCORDION_ env overrides.
// Flags may be bound to it before LoadConfig is called.
func NewViper() *viper.Viper {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("storage_path", d.StoragePath)
	v.SetDefault("backend", d.Backend)
	v.SetDefault("key", d.Key)
	v.SetDefault("panels_file", d.PanelsFile)
	v.SetDefault("theme", d.Theme)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig reads the optional config file and unmarshals the result.
// An explicit path must exist; otherwise ACCORDION_CONFIG or
// ~/.config/accordion/config.yaml is used when present.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	v.SetConfigType("yaml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPrefix + "_CONFIG")
		explicit = path != ""
	}

	if explicit {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "accordion"))
		}
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFromEnv loads configuration from defaults, the default config file
// location and environment variables.
func ConfigFromEnv() (*Config, error) {
	return LoadConfig(NewViper(), "")
}

// Validate rejects values the rest of the app cannot work with.
func (c *Config) Validate() error {
	if !slices.Contains(storage.Backends, c.Backend) {
		return fmt.Errorf("backend %q: want one of %v", c.Backend, storage.Backends)
	}
	if strings.TrimSpace(c.Key) == "" {
		return fmt.Errorf("key must not be empty")
	}
	switch c.Theme {
	case "", "system", "light", "dark":
	default:
		return fmt.Errorf("theme %q: want system, light or dark", c.Theme)
	}
	return nil
}

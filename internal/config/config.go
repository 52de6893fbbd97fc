// Package config handles MRU configuration loading.
//
// Values come from three layers, later ones winning: built-in defaults,
// an optional YAML file, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donghojung/mru/internal/constants"
	"github.com/donghojung/mru/internal/mru"
)

// Config represents the MRU configuration.
type Config struct {
	StorePath  string `yaml:"store_path"`
	MaxEntries int    `yaml:"max_entries"`
	Editor     string `yaml:"editor"` // Overrides $EDITOR and $VISUAL
	Debug      bool   `yaml:"debug"`
	Quiet      bool   `yaml:"quiet"`
}

// Getenv looks up an environment variable. os.Getenv satisfies it.
type Getenv func(key string) string

// Default returns the built-in configuration.
func Default(getenv Getenv) (*Config, error) {
	storePath, err := DefaultStorePath(getenv)
	if err != nil {
		return nil, err
	}
	return &Config{
		StorePath:  storePath,
		MaxEntries: constants.DefaultMaxEntries,
	}, nil
}

// DefaultStorePath returns $XDG_DATA_HOME/mru/files, falling back to
// ~/.local/share/mru/files.
func DefaultStorePath(getenv Getenv) (string, error) {
	if dir := getenv("XDG_DATA_HOME"); dir != "" && filepath.IsAbs(dir) {
		return filepath.Join(dir, constants.AppDirName, constants.StoreFileName), nil
	}
	home, err := homeDir(getenv)
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", constants.AppDirName, constants.StoreFileName), nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/mru/config.yaml, falling back
// to ~/.config/mru/config.yaml.
func DefaultConfigPath(getenv Getenv) (string, error) {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" && filepath.IsAbs(dir) {
		return filepath.Join(dir, constants.AppDirName, constants.ConfigFileName), nil
	}
	home, err := homeDir(getenv)
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", constants.AppDirName, constants.ConfigFileName), nil
}

func homeDir(getenv Getenv) (string, error) {
	if home := getenv("HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return home, nil
}

// Load builds the configuration from defaults, the YAML file at path (if it
// exists), and the environment. The result is validated.
func Load(path string, getenv Getenv) (*Config, error) {
	cfg, err := Default(getenv)
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's config file
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No config file; defaults apply.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}

	cfg.StorePath, err = expandHome(cfg.StorePath, getenv)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from MRU_FILE, MRU_MAX and MRU_DEBUG.
func (c *Config) ApplyEnv(getenv Getenv) error {
	if v := getenv(constants.EnvStoreFile); v != "" {
		c.StorePath = v
	}
	if v := getenv(constants.EnvMaxSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", constants.EnvMaxSize, v, err)
		}
		c.MaxEntries = n
	}
	if getenv(constants.EnvDebug) == "1" {
		c.Debug = true
	}
	return nil
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.MaxEntries < 1 {
		return fmt.Errorf("max_entries must be at least 1, got %d", c.MaxEntries)
	}
	if !filepath.IsAbs(c.StorePath) {
		return fmt.Errorf("store_path must be absolute, got %q", c.StorePath)
	}
	return nil
}

// LogPath returns the log file location, next to the store.
func (c *Config) LogPath() string {
	return filepath.Join(filepath.Dir(c.StorePath), constants.LogFileName)
}

// Store returns the store settings.
func (c *Config) Store() mru.Config {
	return mru.Config{
		Path:       c.StorePath,
		MaxEntries: c.MaxEntries,
	}
}

func expandHome(path string, getenv Getenv) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := homeDir(getenv)
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

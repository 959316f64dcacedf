package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppName is the application name used for the config directory.
const AppName = "sitenav"

// DefaultMenuCollection is used when neither flag, env, nor config
// names the menu collection.
const DefaultMenuCollection = "menu"

// Config holds CLI configuration.
type Config struct {
	ContentDir     string `yaml:"content_dir,omitempty"`
	MenuCollection string `yaml:"menu_collection,omitempty"`
	OutputFormat   string `yaml:"output_format,omitempty"` // text, json, ndjson, table, yaml
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ReadConfig reads the config file from the default location.
func ReadConfig() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Load loads config from the given path. A missing file yields a zero
// config, not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save saves config to the given path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Set assigns a named config field. Unknown keys are an error so
// typos in `config set` surface instead of writing dead fields.
func (c *Config) Set(key, value string) error {
	switch key {
	case "content_dir":
		c.ContentDir = value
	case "menu_collection":
		c.MenuCollection = value
	case "output_format":
		c.OutputFormat = value
	default:
		return fmt.Errorf("unknown config key %q (expected content_dir|menu_collection|output_format)", key)
	}
	return nil
}

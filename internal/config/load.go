package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Load builds the config from defaults, then the config file, then the
// command-line flags, and validates the result.
func Load() (*Config, error) {
	return load(cli)
}

func load(o *overrides) (*Config, error) {
	cfg := Default()

	path := o.path
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	o.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config.yaml in the working
// directory or the user config directory, or "".
func findConfigFile() string {
	for _, path := range []string{fileName, filepath.Join(ConfigDir(), fileName)} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user directory holding the viewer's config.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "heliscene")
}

// mergeFile overlays the YAML file at path onto c. Keys missing from the
// file keep their current values.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config file not found: %w", err)
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return nil
}

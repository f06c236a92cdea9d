package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"todo/internal/config/colors"
)

// DefaultStoreFile is the working-directory-relative store path used when
// neither the config file nor the --file flag names one.
const DefaultStoreFile = "tasks.json"

// Config represents the application configuration
type Config struct {
	StoreFile   string             `yaml:"store_file"`
	ExportDir   string             `yaml:"export_dir"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist or the config path
// cannot be determined.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return Default(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.StoreFile == "" {
		c.StoreFile = DefaultStoreFile
	}
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	c.ColorScheme.ApplyDefaults()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todo", "config.yaml"), nil
}

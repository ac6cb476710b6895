package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	// Driver selects the key-value backend: "sqlite" or "bolt".
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type ExportConfig struct {
	// Dir is where workspace backup files are written.
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   "zenith.db",
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("ZENITH_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if driver := os.Getenv("ZENITH_STORAGE_DRIVER"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if path := os.Getenv("ZENITH_STORAGE_PATH"); path != "" {
		cfg.Storage.Path = path
	}
	if dir := os.Getenv("ZENITH_EXPORT_DIR"); dir != "" {
		cfg.Export.Dir = dir
	}
	if level := os.Getenv("ZENITH_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

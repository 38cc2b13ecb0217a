package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	ScaleFactor float64      `json:"scale_factor"`
	RadiusRatio float64      `json:"radius_ratio"`
	Output      OutputConfig `json:"output"`
}

// OutputConfig holds configuration for output encoding
type OutputConfig struct {
	Format   string `json:"format"`
	Quality  int    `json:"quality"`
	Lossless bool   `json:"lossless"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		ScaleFactor: 0.9,
		RadiusRatio: 0.225,
		Output: OutputConfig{
			Format:   "png",
			Quality:  100,
			Lossless: true,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields omitted from the file keep their defaults
	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ScaleFactor <= 0 || c.ScaleFactor > 1 {
		return fmt.Errorf("scale_factor must be in (0, 1]")
	}

	if c.RadiusRatio < 0 || c.RadiusRatio > 0.5 {
		return fmt.Errorf("radius_ratio must be between 0 and 0.5")
	}

	if c.Output.Format != "png" && c.Output.Format != "webp" {
		return fmt.Errorf("output.format must be png or webp")
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "icon-masker", "config.json")
}

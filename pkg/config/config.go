package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the wibblr configuration
type Config struct {
	Port     int      `yaml:"port"`
	Bind     string   `yaml:"bind"`
	Codec    Codec    `yaml:"codec"`
	Security Security `yaml:"security"`
	Logging  Logging  `yaml:"logging"`
}

// Codec holds the default partial-unit options and request limits
type Codec struct {
	IgnorePartialSymbol bool `yaml:"ignore_partial_symbol"`
	IgnorePartialByte   bool `yaml:"ignore_partial_byte"`
	MaxInputBytes       int  `yaml:"max_input_bytes"`
}

// Security contains security-related configuration
type Security struct {
	APIKey string `yaml:"api_key"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Port: 8032,
		Bind: "127.0.0.1",
		Codec: Codec{
			MaxInputBytes: 1 << 20,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	if c.Codec.MaxInputBytes < 0 {
		return fmt.Errorf("invalid max_input_bytes: %d", c.Codec.MaxInputBytes)
	}
	return nil
}

// LoadConfig loads configuration from the specified path. Fields missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file holds the API key.
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new default configuration with a generated API key
// and writes it to configPath
func BootstrapConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	apiKey, err := GenerateSecureKey(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Security.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./wibblr.yaml"
	}

	// ~/.config/wibblr/config.yaml
	return filepath.Join(homeDir, ".config", "wibblr", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	DataDir       string `toml:"data_dir"`
	DefaultLocale string `toml:"default_locale"`
	Mode          string `toml:"mode"`
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "pocketdb", "config.toml")
}

// DefaultDataDir returns the card database that ships next to the
// installation: <install root>/data/card-database, where the install root
// is the parent of the directory holding the executable.
func DefaultDataDir() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("data", "card-database")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(filepath.Dir(exe)), "data", "card-database")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir()
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = "en"
	}
	if c.Mode == "" {
		c.Mode = "local"
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := &Config{}
	config.applyDefaults()

	if err := saveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func saveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDataDir returns the card database root from config
func GetDataDir() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DataDir, nil
}

// GetDefaultLocale returns the default locale from config
func GetDefaultLocale() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DefaultLocale, nil
}

// SetDefaultLocale sets the default locale in the config
func SetDefaultLocale(locale string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultLocale = locale
	return saveConfig(config)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	Path string `mapstructure:"path"` // BoltDB file; empty keeps items in memory only
}

// UIConfig holds UI configuration
type UIConfig struct {
	Title        string `mapstructure:"title"`
	ShowTime     bool   `mapstructure:"show_time"`     // Include time of day in the Date Created column
	DateLocation string `mapstructure:"date_location"` // IANA zone name, or "Local"
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: filepath.Join(defaultDataPath(), "listman.db"),
		},
		UI: UIConfig{
			Title:        "List Management",
			ShowTime:     true,
			DateLocation: "Local",
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "listman.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "listman")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "listman")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "listman")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "listman")
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit file must exist; otherwise the default locations are searched
// and a missing config file just means defaults.
func LoadConfig(file string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("ui.title", cfg.UI.Title)
	v.SetDefault("ui.show_time", cfg.UI.ShowTime)
	v.SetDefault("ui.date_location", cfg.UI.DateLocation)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. LISTMAN_STORAGE_PATH
	v.SetEnvPrefix("LISTMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	return cfg, nil
}

// Location resolves DateLocation, falling back to the local zone
func (c UIConfig) Location() *time.Location {
	if c.DateLocation == "" || strings.EqualFold(c.DateLocation, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.DateLocation)
	if err != nil {
		return time.Local
	}
	return loc
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

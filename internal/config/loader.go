package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".colorscan"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .colorscan configuration file.
// Every field is optional; unset fields keep their default or flag value.
type File struct {
	// DBPath overrides the default colors.db location.
	DBPath string `yaml:"dbPath,omitempty"`

	// RecentLimit overrides the number of recent records shown.
	RecentLimit int `yaml:"recentLimit,omitempty"`

	// PendingLimit overrides the number of pending files listed.
	PendingLimit int `yaml:"pendingLimit,omitempty"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply copies the file's set fields onto the config.
// Unset (zero) fields leave the config untouched, so flag values and
// defaults survive.
func (cf *File) Apply(cfg *Config) {
	if cf.DBPath != "" {
		cfg.DBPath = cf.DBPath
	}
	if cf.RecentLimit != 0 {
		cfg.RecentLimit = cf.RecentLimit
	}
	if cf.PendingLimit != 0 {
		cfg.PendingLimit = cf.PendingLimit
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .colorscan in the current directory
// 3. Look for .colorscan in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

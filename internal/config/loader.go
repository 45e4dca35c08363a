package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the
// current directory.
const DefaultConfigFile = ".genstandards.yaml"

// xdgConfigFile is the configuration file name inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the configuration file.
// Empty fields leave the corresponding setting untouched.
type File struct {
	// SourceURL overrides the index page URL.
	SourceURL string `yaml:"source_url,omitempty"`

	// Cache overrides the cache file path.
	Cache string `yaml:"cache,omitempty"`

	// Checklist overrides the checklist output path.
	Checklist string `yaml:"checklist,omitempty"`

	// WorkingGroups overrides the working group output path.
	WorkingGroups string `yaml:"working_groups,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Timeout overrides the request timeout, in time.ParseDuration syntax (e.g. "30s").
	Timeout string `yaml:"timeout,omitempty"`
}

// LoadConfigFile loads a configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
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
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cf, nil
}

// ApplyTo overrides the fields of cfg with the non-empty values of the file.
func (cf *File) ApplyTo(cfg *Config) error {
	if cf.SourceURL != "" {
		cfg.SourceURL = cf.SourceURL
	}
	if cf.Cache != "" {
		cfg.CachePath = cf.Cache
	}
	if cf.Checklist != "" {
		cfg.ChecklistPath = cf.Checklist
	}
	if cf.WorkingGroups != "" {
		cfg.WorkingGroupPath = cf.WorkingGroups
	}
	if cf.UserAgent != "" {
		cfg.UserAgent = cf.UserAgent
	}
	if cf.Timeout != "" {
		d, err := time.ParseDuration(cf.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", cf.Timeout, err)
		}
		cfg.Timeout = d
	}
	return nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .genstandards.yaml in the current directory
// 3. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), xdgConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

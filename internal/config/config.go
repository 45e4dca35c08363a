package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values. They reproduce the fixed locations the
// tool has always used, relative to the working directory.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "genstandards"

	// DefaultSourceURL is the W3C technical reports index page.
	DefaultSourceURL = "https://www.w3.org/TR/"

	// DefaultCachePath is where the fetched index page is kept.
	DefaultCachePath = "./standards.html"

	// DefaultChecklistPath is where the standards checklist is written.
	DefaultChecklistPath = "../STANDARDS.md"

	// DefaultWorkingGroupPath is where the working group list is written.
	DefaultWorkingGroupPath = "../WORKING-GROUPS.md"

	// DefaultTimeout of zero leaves the HTTP transport without a timeout.
	DefaultTimeout time.Duration = 0

	// DefaultUserAgent identifies the tool in HTTP requests.
	DefaultUserAgent = "genstandards/1.0 (+https://github.com/nao1215/genstandards)"
)

// Config holds all configuration options for genstandards.
// It is populated from defaults, an optional configuration file and CLI
// flags, in that order of precedence.
type Config struct {
	// SourceURL is the URL of the technical reports index page.
	SourceURL string

	// CachePath is the file the fetched index page is stored in.
	// When the file exists it is used instead of fetching.
	CachePath string

	// ChecklistPath is the output file for the standards checklist.
	ChecklistPath string

	// WorkingGroupPath is the output file for the working group list.
	WorkingGroupPath string

	// Timeout bounds the HTTP request. Zero means no timeout.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent when fetching.
	UserAgent string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the configuration file that was loaded, if any.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		SourceURL:        DefaultSourceURL,
		CachePath:        DefaultCachePath,
		ChecklistPath:    DefaultChecklistPath,
		WorkingGroupPath: DefaultWorkingGroupPath,
		Timeout:          DefaultTimeout,
		UserAgent:        DefaultUserAgent,
	}
}

// XDGConfigDir returns the XDG config directory for genstandards.
// On Linux: ~/.config/genstandards
// On macOS: ~/Library/Application Support/genstandards
// On Windows: %APPDATA%\genstandards
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.SourceURL == "" {
		return ErrEmptySourceURL
	}
	u, err := url.Parse(c.SourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidSourceURL
	}

	if c.CachePath == "" {
		return ErrEmptyCachePath
	}

	if c.ChecklistPath == "" || c.WorkingGroupPath == "" {
		return ErrEmptyOutputPath
	}

	checklist := filepath.Clean(c.ChecklistPath)
	groups := filepath.Clean(c.WorkingGroupPath)
	cache := filepath.Clean(c.CachePath)
	if checklist == groups || checklist == cache || groups == cache {
		return ErrSameOutputPath
	}

	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}

	return nil
}

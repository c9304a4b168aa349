package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These match the gallery application's conventions where applicable so
// that running colorscan with no arguments inspects the real database.
const (
	// AppName is the name of this tool, used for its own config lookup.
	AppName = "colorscan"

	// GalleryBundleID is the gallery application's bundle identifier.
	// The app stores its data under this directory name in the
	// platform's application-data location.
	GalleryBundleID = "com.aurora.gallery"

	// DBFileName is the name of the dominant-color database file the
	// gallery application maintains.
	DBFileName = "colors.db"

	// DefaultRecentLimit is how many recently updated records the
	// inspect report shows. Five is enough to eyeball whether the
	// extraction worker is making progress without flooding the
	// terminal.
	DefaultRecentLimit = 5

	// DefaultPendingLimit is how many queued files the pending command
	// lists. The worker drains the queue oldest-first, so the head of
	// the list is what it processes next.
	DefaultPendingLimit = 20
)

// Config holds all configuration options for colorscan.
// This struct is populated from CLI flags and the optional config file,
// then passed through the application explicitly rather than living in
// global state.
type Config struct {
	// DBPath is the path to the colors.db file to inspect.
	// Defaults to the gallery application's data directory.
	DBPath string

	// RecentLimit is the number of recently updated records to show
	// in the inspect report.
	RecentLimit int

	// PendingLimit is the number of queued files the pending command lists.
	PendingLimit int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of human-readable text.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable text. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file in addition to stdout.
	ReportFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .colorscan in the current
	// directory and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DBPath:       DefaultDBPath(),
		RecentLimit:  DefaultRecentLimit,
		PendingLimit: DefaultPendingLimit,
	}
}

// Validate checks the configuration for invalid combinations.
// It returns one of the sentinel errors from errors.go.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return ErrNoDBPath
	}
	if c.RecentLimit <= 0 {
		return ErrInvalidRecentLimit
	}
	if c.PendingLimit <= 0 {
		return ErrInvalidPendingLimit
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// DefaultDBPath returns the gallery application's colors.db location.
// This follows the platform's application-data convention:
// On Linux: ~/.local/share/com.aurora.gallery/colors.db
// On macOS: ~/Library/Application Support/com.aurora.gallery/colors.db
// On Windows: %LOCALAPPDATA%\com.aurora.gallery\colors.db
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, GalleryBundleID, DBFileName)
}

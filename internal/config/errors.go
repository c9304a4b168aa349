package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoDBPath is returned when no database path is configured.
	// This only happens when the config file explicitly sets an empty
	// path, since the default always resolves to the gallery data dir.
	ErrNoDBPath = errors.New("no database path specified")

	// ErrInvalidRecentLimit is returned when the recent-record limit is
	// not positive. A limit of zero would make the recent section
	// silently empty, which reads like a broken report.
	ErrInvalidRecentLimit = errors.New("invalid recent limit: must be positive")

	// ErrInvalidPendingLimit is returned when the pending-list limit is
	// not positive.
	ErrInvalidPendingLimit = errors.New("invalid pending limit: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)

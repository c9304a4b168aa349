// Package log provides logging helpers for colorscan, built on top of
// the standard slog package.
//
// The colors column of the gallery database can hold palette blobs of
// tens of kilobytes, and file paths on some systems run long as well.
// Logging such values verbatim in debug mode makes the output unreadable
// and can dwarf the useful lines around it. The TruncateHandler caps
// every string attribute at a fixed length before it reaches the
// underlying handler, so verbose runs stay scannable.
//
// # Usage
//
//	// Create a truncating logger
//	logger := log.NewTruncateLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("record scanned",
//	    "path", record.FilePath,
//	    "colors", record.RawColors, // capped at MaxValueLen runes
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log

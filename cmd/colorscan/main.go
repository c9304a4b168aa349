// Package main provides the entry point for the colorscan CLI.
//
// colorscan is a diagnostic tool for the gallery application's
// dominant-color database (colors.db). It reports the database schema,
// record counts, extraction progress, and recent activity.
//
// Usage:
//
//	colorscan inspect [db-path]
//	colorscan colors <file-path>
//	colorscan pending
//
// See --help for all available options.
package main

// main is the entry point for colorscan.
func main() {
	Execute()
}

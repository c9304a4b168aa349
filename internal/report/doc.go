// Package report renders an InspectReport in the supported output
// formats: human-readable text, JSON, and Markdown.
//
// All writers implement the same Writer interface over an io.Writer
// destination, so the inspect command can target stdout, a file, or
// both (via MultiWriter) with any format.
package report

package report

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aurora-gallery/colorscan/internal/model"
)

// RawColorPreviewLen is how many runes of an undecodable colors value
// the report shows before cutting it off.
const RawColorPreviewLen = 50

// NoColorData is printed for records without any stored palette.
const NoColorData = "no color data"

// Writer defines the interface for report output.
// Implementations write inspection results in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or both with
// the same API.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.InspectReport) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(report *model.InspectReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// statusTitle renders a status value as a display label, e.g.
// "extracted" becomes "Extracted". Unclassified values get the same
// treatment so foreign databases still read naturally.
var statusTitle = cases.Title(language.English)

// statusLabel returns the display label for a status.
func statusLabel(s model.Status) string {
	return statusTitle.String(string(s))
}

// paletteSummary describes a record's colors value in one line:
// the color count and primary hex for a decodable palette, the
// NoColorData placeholder for an empty one, and a truncated raw
// preview when the value does not decode.
func paletteSummary(rec *model.ColorRecord) string {
	palette, err := rec.Palette()
	switch {
	case err == nil:
		return fmt.Sprintf("%d color(s), primary %s", len(palette), palette.Primary())
	case errors.Is(err, model.ErrEmptyPalette):
		return NoColorData
	default:
		return "unreadable: " + truncateRaw(rec.RawColors)
	}
}

// truncateRaw cuts a raw colors value to RawColorPreviewLen runes and
// marks the cut with an ellipsis. Cutting on runes keeps multibyte
// content intact.
func truncateRaw(raw string) string {
	runes := []rune(raw)
	if len(runes) > RawColorPreviewLen {
		runes = runes[:RawColorPreviewLen]
	}
	return string(runes) + "..."
}

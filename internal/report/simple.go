package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aurora-gallery/colorscan/internal/model"
)

// PercentUndefined is printed where a percentage has no defined value,
// i.e. when the table holds no rows at all.
const PercentUndefined = "N/A"

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display, keeping the section
// order stable so operators can diff two runs.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in human-readable format.
// The sections appear in a fixed order: header, schema, total count,
// status breakdown, file size, recent records, extraction summary.
func (w *SimpleWriter) Write(report *model.InspectReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSchema(&sb, report)
	w.writeCounts(&sb, report)
	w.writeRecent(&sb, report)
	w.writeSummary(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with database information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.InspectReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                COLORS DATABASE REPORT\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Database:  %s\n", report.DBPath))
	sb.WriteString(fmt.Sprintf("Generated: %s\n", report.GeneratedAt.Format(model.TimestampFormat)))
	sb.WriteString("\n")
}

// writeSchema writes the table listing with column definitions.
func (w *SimpleWriter) writeSchema(sb *strings.Builder, report *model.InspectReport) {
	sb.WriteString("Schema:\n")
	if len(report.Tables) == 0 {
		sb.WriteString("  (no tables)\n")
	}
	for _, table := range report.Tables {
		sb.WriteString(fmt.Sprintf("  - %s\n", table.Name))
		for _, col := range table.Columns {
			sb.WriteString(fmt.Sprintf("    * %s (%s)\n", col.Name, col.Type))
		}
	}
	sb.WriteString("\n")
}

// writeCounts writes the total count, the status breakdown, and the
// database file size.
func (w *SimpleWriter) writeCounts(sb *strings.Builder, report *model.InspectReport) {
	sb.WriteString(fmt.Sprintf("Total records: %d\n\n", report.TotalRecords))

	sb.WriteString("Records by status:\n")
	if len(report.StatusCounts) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, sc := range report.StatusCounts {
		sb.WriteString(fmt.Sprintf("  - %s: %d file(s)\n", sc.Status, sc.Count))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Database file size: %.2f KB\n\n", report.FileSizeKiB()))
}

// writeRecent writes the most recently updated records.
func (w *SimpleWriter) writeRecent(sb *strings.Builder, report *model.InspectReport) {
	sb.WriteString(fmt.Sprintf("Recently updated records (%d):\n", len(report.Recent)))

	for i := range report.Recent {
		rec := &report.Recent[i]
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  File:    %s\n", rec.FilePath))
		sb.WriteString(fmt.Sprintf("  Status:  %s\n", statusLabel(rec.Status)))
		sb.WriteString(fmt.Sprintf("  Created: %s\n", rec.CreatedTime().Format(model.TimestampFormat)))
		sb.WriteString(fmt.Sprintf("  Updated: %s\n", rec.UpdatedTime().Format(model.TimestampFormat)))
		sb.WriteString(fmt.Sprintf("  Colors:  %s\n", paletteSummary(rec)))
	}
	sb.WriteString("\n")
}

// writeSummary writes the extraction success-rate section.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.InspectReport) {
	s := report.Summary

	sb.WriteString("Extraction summary:\n")
	sb.WriteString(fmt.Sprintf("  Extracted: %d (%s)\n", s.Extracted, w.percent(s, s.Extracted)))
	sb.WriteString(fmt.Sprintf("  Pending:   %d (%s)\n", s.Pending, w.percent(s, s.Pending)))
	sb.WriteString(fmt.Sprintf("  Error:     %d (%s)\n", s.Errored, w.percent(s, s.Errored)))
}

// percent formats a count as a percentage of the summary total,
// or PercentUndefined when the table is empty.
func (w *SimpleWriter) percent(s model.Summary, count int64) string {
	pct, ok := s.Percent(count)
	if !ok {
		return PercentUndefined
	}
	return fmt.Sprintf("%.1f%%", pct)
}

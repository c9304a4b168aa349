package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/aurora-gallery/colorscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. attaching
// a database health snapshot to an issue.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. Mermaid diagrams for the status distribution
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.InspectReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSchema(md, report)
	w.writeStatusBreakdown(md, report)
	w.writeRecent(md, report)
	w.writeSummary(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with database information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.InspectReport) {
	md.H1("Colors Database Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Database", "`" + report.DBPath + "`"},
			{"Generated", report.GeneratedAt.Format(model.TimestampFormat)},
			{"Total Records", strconv.FormatInt(report.TotalRecords, 10)},
			{"File Size", fmt.Sprintf("%.2f KB", report.FileSizeKiB())},
		},
	})
	md.PlainText("")
}

// writeSchema writes one column table per catalog table.
func (w *MarkdownWriter) writeSchema(md *markdown.Markdown, report *model.InspectReport) {
	md.H2("Schema")

	for _, table := range report.Tables {
		md.H3("`" + table.Name + "`")

		rows := make([][]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			rows = append(rows, []string{col.Name, col.Type})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Column", "Type"},
			Rows:   rows,
		})
	}
	md.PlainText("")
}

// writeStatusBreakdown writes the per-status counts with a pie chart.
func (w *MarkdownWriter) writeStatusBreakdown(md *markdown.Markdown, report *model.InspectReport) {
	md.H2("Records by Status")

	rows := make([][]string, 0, len(report.StatusCounts))
	for _, sc := range report.StatusCounts {
		rows = append(rows, []string{statusLabel(sc.Status), strconv.FormatInt(sc.Count, 10)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Status", "Files"},
		Rows:   rows,
	})

	w.writePieChart(md, report)
}

// writePieChart writes a mermaid pie chart of the status distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.InspectReport) {
	if len(report.StatusCounts) == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Status Distribution"),
		piechart.WithShowData(true),
	)

	for _, sc := range report.StatusCounts {
		if sc.Count > 0 {
			chart.LabelAndIntValue(statusLabel(sc.Status), uint64(sc.Count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeRecent writes the most recently updated records.
func (w *MarkdownWriter) writeRecent(md *markdown.Markdown, report *model.InspectReport) {
	md.H2("Recently Updated Records")

	if len(report.Recent) == 0 {
		md.PlainText("No records found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Recent))
	for i := range report.Recent {
		rec := &report.Recent[i]
		rows = append(rows, []string{
			"`" + rec.FilePath + "`",
			statusLabel(rec.Status),
			rec.UpdatedTime().Format(model.TimestampFormat),
			paletteSummary(rec),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"File", "Status", "Updated", "Colors"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSummary writes the extraction success-rate table.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.InspectReport) {
	md.H2("Extraction Summary")

	s := report.Summary
	md.Table(markdown.TableSet{
		Header: []string{"Status", "Count", "Share"},
		Rows: [][]string{
			{"Extracted", strconv.FormatInt(s.Extracted, 10), w.percent(s, s.Extracted)},
			{"Pending", strconv.FormatInt(s.Pending, 10), w.percent(s, s.Pending)},
			{"Error", strconv.FormatInt(s.Errored, 10), w.percent(s, s.Errored)},
		},
	})
}

// percent formats a count as a percentage of the summary total,
// or PercentUndefined when the table is empty.
func (w *MarkdownWriter) percent(s model.Summary, count int64) string {
	pct, ok := s.Percent(count)
	if !ok {
		return PercentUndefined
	}
	return fmt.Sprintf("%.1f%%", pct)
}

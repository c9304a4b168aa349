package model

import "time"

// TimestampFormat is the layout used for record timestamps in reports.
const TimestampFormat = "2006-01-02 15:04:05"

// ColumnInfo describes one column of a table, as reported by the
// database catalog (PRAGMA table_info).
type ColumnInfo struct {
	// Name is the column name.
	Name string `json:"name"`

	// Type is the declared column type, e.g. "TEXT" or "INTEGER".
	// May be empty for columns declared without a type.
	Type string `json:"type"`
}

// TableSchema describes one table found in the database catalog.
type TableSchema struct {
	// Name is the table name.
	Name string `json:"name"`

	// Columns lists the table's columns in declaration order.
	Columns []ColumnInfo `json:"columns"`
}

// StatusCount is one row of the per-status breakdown.
type StatusCount struct {
	// Status is the raw status value, including unclassified ones.
	Status Status `json:"status"`

	// Count is the number of rows carrying this status.
	Count int64 `json:"count"`
}

// Summary holds the extraction success-rate figures.
// Percentages are derived from Total, which is the full row count of
// dominant_colors, not the sum of the three classified statuses: rows
// with unclassified status values dilute all three percentages.
type Summary struct {
	// Total is the full row count of dominant_colors.
	Total int64 `json:"total"`

	// Extracted is the number of rows with status "extracted".
	Extracted int64 `json:"extracted"`

	// Pending is the number of rows with status "pending".
	Pending int64 `json:"pending"`

	// Errored is the number of rows with status "error".
	Errored int64 `json:"errored"`
}

// Percent returns count as a percentage of the summary total.
// The second return value is false when the total is zero, in which
// case the percentage is undefined and callers should print a
// placeholder instead of a number.
func (s Summary) Percent(count int64) (float64, bool) {
	if s.Total == 0 {
		return 0, false
	}
	return float64(count) / float64(s.Total) * 100, true
}

// InspectReport is the complete result of one database inspection.
// The inspector fills it section by section; report writers render it.
//
// Design decision: We collect everything into one structure instead of
// printing as we query because it lets a single inspection feed multiple
// output formats (text, JSON, Markdown) and makes the inspector testable
// without capturing stdout.
type InspectReport struct {
	// DBPath is the path of the inspected database file.
	DBPath string `json:"db_path"`

	// GeneratedAt is when the inspection ran.
	GeneratedAt time.Time `json:"generated_at"`

	// Tables lists every table in the database with its columns.
	Tables []TableSchema `json:"tables"`

	// TotalRecords is the row count of dominant_colors.
	TotalRecords int64 `json:"total_records"`

	// StatusCounts is the per-status breakdown, one entry per distinct
	// status value found in the table.
	StatusCounts []StatusCount `json:"status_counts"`

	// FileSizeBytes is the byte size of the database file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// Recent holds the most recently updated records, newest first.
	Recent []ColorRecord `json:"recent"`

	// Summary holds the success-rate figures.
	Summary Summary `json:"summary"`
}

// NewInspectReport creates an empty report for the given database path.
func NewInspectReport(dbPath string) *InspectReport {
	return &InspectReport{
		DBPath:      dbPath,
		GeneratedAt: time.Now(),
	}
}

// FileSizeKiB returns the database file size in kibibytes.
func (r *InspectReport) FileSizeKiB() float64 {
	return float64(r.FileSizeBytes) / 1024
}

package inspect

import (
	"context"

	"github.com/aurora-gallery/colorscan/internal/database"
	"github.com/aurora-gallery/colorscan/internal/model"
)

// schemaSection lists every table and its columns from the catalog.
// It runs first so a report of a foreign or outdated database still
// shows what the file actually contains before the dominant_colors
// queries fail.
type schemaSection struct{}

// Name returns the section name.
func (s *schemaSection) Name() string { return "schema" }

// Do queries the catalog and records the table schemas.
func (s *schemaSection) Do(ctx context.Context, db *database.ColorDB, report *model.InspectReport) error {
	tables, err := db.Tables(ctx)
	if err != nil {
		return err
	}
	report.Tables = tables
	return nil
}

// totalSection counts all dominant_colors rows.
type totalSection struct{}

// Name returns the section name.
func (s *totalSection) Name() string { return "total count" }

// Do records the total row count.
func (s *totalSection) Do(ctx context.Context, db *database.ColorDB, report *model.InspectReport) error {
	total, err := db.TotalCount(ctx)
	if err != nil {
		return err
	}
	report.TotalRecords = total
	return nil
}

// statusSection breaks the rows down by status value.
type statusSection struct{}

// Name returns the section name.
func (s *statusSection) Name() string { return "status breakdown" }

// Do records the per-status counts.
func (s *statusSection) Do(ctx context.Context, db *database.ColorDB, report *model.InspectReport) error {
	counts, err := db.StatusCounts(ctx)
	if err != nil {
		return err
	}
	report.StatusCounts = counts
	return nil
}

// fileSizeSection reads the database file's size from the filesystem.
type fileSizeSection struct{}

// Name returns the section name.
func (s *fileSizeSection) Name() string { return "file size" }

// Do records the file size in bytes.
func (s *fileSizeSection) Do(_ context.Context, db *database.ColorDB, report *model.InspectReport) error {
	size, err := db.FileSize()
	if err != nil {
		return err
	}
	report.FileSizeBytes = size
	return nil
}

// recentSection fetches the most recently updated records.
type recentSection struct {
	// limit is how many records to fetch.
	limit int
}

// Name returns the section name.
func (s *recentSection) Name() string { return "recent records" }

// Do records the newest records, most recent first.
func (s *recentSection) Do(ctx context.Context, db *database.ColorDB, report *model.InspectReport) error {
	records, err := db.RecentRecords(ctx, s.limit)
	if err != nil {
		return err
	}
	report.Recent = records
	return nil
}

// summarySection gathers the success-rate figures. It issues one count
// query per classified status; the total comes from the earlier total
// section so the percentages use the same base the report printed.
type summarySection struct{}

// Name returns the section name.
func (s *summarySection) Name() string { return "extraction summary" }

// Do records the per-status totals for the summary.
func (s *summarySection) Do(ctx context.Context, db *database.ColorDB, report *model.InspectReport) error {
	extracted, err := db.CountByStatus(ctx, model.StatusExtracted)
	if err != nil {
		return err
	}
	pending, err := db.CountByStatus(ctx, model.StatusPending)
	if err != nil {
		return err
	}
	errored, err := db.CountByStatus(ctx, model.StatusError)
	if err != nil {
		return err
	}

	report.Summary = model.Summary{
		Total:     report.TotalRecords,
		Extracted: extracted,
		Pending:   pending,
		Errored:   errored,
	}
	return nil
}

package inspect

import (
	"context"
	"log/slog"

	"github.com/aurora-gallery/colorscan/internal/config"
	"github.com/aurora-gallery/colorscan/internal/database"
	"github.com/aurora-gallery/colorscan/internal/model"
)

// Section defines one part of the inspection sequence.
// Sections are executed in order, each filling its part of the report.
type Section interface {
	// Do executes the section's queries and records the results.
	// Returning an error aborts the remaining sections.
	Do(ctx context.Context, db *database.ColorDB, report *model.InspectReport) error

	// Name returns the section's name for logging purposes.
	Name() string
}

// Inspector orchestrates the execution of the inspection sections.
type Inspector struct {
	// sections contains the ordered list of sections to execute.
	sections []Section

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures an Inspector.
type Option func(*Inspector)

// WithLogger sets a custom logger for the inspector.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Inspector) {
		i.logger = logger
	}
}

// WithRecentLimit overrides how many recently updated records the
// report includes.
func WithRecentLimit(limit int) Option {
	return func(i *Inspector) {
		for _, s := range i.sections {
			if rs, ok := s.(*recentSection); ok {
				rs.limit = limit
			}
		}
	}
}

// New creates an Inspector with the standard section sequence.
func New(opts ...Option) *Inspector {
	i := &Inspector{
		sections: []Section{
			&schemaSection{},
			&totalSection{},
			&statusSection{},
			&fileSizeSection{},
			&recentSection{limit: config.DefaultRecentLimit},
			&summarySection{},
		},
	}

	for _, opt := range opts {
		opt(i)
	}

	if i.logger == nil {
		i.logger = slog.Default()
	}

	return i
}

// Run executes all sections in sequence against the given database.
// It returns the report filled up to the first failure, together with
// that failure. Callers classify the error to pick a user-facing
// message; the partially filled report is not printed.
func (i *Inspector) Run(ctx context.Context, db *database.ColorDB) (*model.InspectReport, error) {
	report := model.NewInspectReport(db.Path())

	for _, section := range i.sections {
		// Check for cancellation before starting each section
		select {
		case <-ctx.Done():
			i.logger.Warn("inspection cancelled",
				"section", section.Name(),
				"reason", ctx.Err(),
			)
			return report, ctx.Err()
		default:
		}

		i.logger.Debug("running section",
			"section", section.Name(),
			"db", db.Path(),
		)

		if err := section.Do(ctx, db, report); err != nil {
			i.logger.Error("section failed",
				"section", section.Name(),
				"db", db.Path(),
				"error", err,
			)
			return report, err
		}
	}

	return report, nil
}

// SectionCount returns the number of sections in the sequence.
func (i *Inspector) SectionCount() int {
	return len(i.sections)
}

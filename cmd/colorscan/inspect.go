package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aurora-gallery/colorscan/internal/config"
	"github.com/aurora-gallery/colorscan/internal/database"
	"github.com/aurora-gallery/colorscan/internal/inspect"
	"github.com/aurora-gallery/colorscan/internal/report"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [db-path]",
		Short: "Print a diagnostic report of the colors database",
		Long: `Inspect runs a read-only diagnostic pass over a colors.db file and
prints a report with:
- The database schema (tables and columns)
- Total record count and a per-status breakdown
- The database file size
- The most recently updated records with their palettes
- The extraction success rate

Examples:
  # Inspect the gallery application's database
  colorscan inspect

  # Inspect a specific database file
  colorscan inspect /backups/colors.db

  # Output JSON report
  colorscan inspect --json

  # Write a Markdown report to a file
  colorscan inspect --markdown --output report.md

  # Show the 10 most recently updated records
  colorscan inspect --recent 10

Configuration file (.colorscan) example:
  dbPath: /srv/gallery/colors.db
  recentLimit: 10`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInspectCmd,
	}

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Also write the report to the specified file path (creates directories if needed)")
	cmd.Flags().IntP("recent", "r", config.DefaultRecentLimit,
		"Number of recently updated records to show")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .colorscan in current or home directory)")

	return cmd
}

// runInspectCmd executes the inspect command.
func runInspectCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildInspectConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runInspect(ctx, cfg, logger, cmd.OutOrStdout())
}

// buildInspectConfig creates a Config from cobra command flags.
// Precedence is flag > config file > default.
func buildInspectConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg); err != nil {
		return nil, err
	}

	// Explicit flags override the config file
	if cmd.Flags().Changed("recent") {
		cfg.RecentLimit, err = cmd.Flags().GetInt("recent")
		if err != nil {
			return nil, err
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// A positional argument overrides every other database path source
	if len(args) > 0 {
		cfg.DBPath = args[0]
	}

	return cfg, nil
}

// runInspect executes the inspection and writes the report.
//
// Handled failures (missing file, storage error, anything unexpected)
// print a diagnostic line and return nil: the outcome is the printed
// text, and the exit code does not distinguish a broken database from
// a healthy one. Only report-writing failures propagate.
func runInspect(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	logger.Info("starting inspection",
		"db", cfg.DBPath,
		"recentLimit", cfg.RecentLimit,
	)

	db, err := database.Open(cfg.DBPath, database.DefaultOptions())
	if err != nil {
		return printFailure(out, cfg.DBPath, err)
	}
	defer db.Close()

	inspector := inspect.New(
		inspect.WithLogger(logger),
		inspect.WithRecentLimit(cfg.RecentLimit),
	)

	rep, err := inspector.Run(ctx, db)
	if err != nil {
		return printFailure(out, cfg.DBPath, err)
	}

	writer, cleanup, err := buildReportWriter(cfg, out)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := writer.Write(rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// printFailure prints the user-facing message for a failed inspection.
// The message tier depends on the error: a missing file, a storage-layer
// failure with its detail, or a generic fallback. It always returns nil
// so the command exits cleanly after reporting.
func printFailure(out io.Writer, dbPath string, err error) error {
	var storageErr *database.StorageError
	switch {
	case errors.Is(err, database.ErrNotFound):
		fmt.Fprintf(out, "database file not found: %s\n", dbPath)
	case errors.As(err, &storageErr):
		fmt.Fprintf(out, "database error: %v\n", storageErr.Err)
	default:
		fmt.Fprintf(out, "unknown error: %v\n", err)
	}
	return nil
}

// buildReportWriter assembles the report writer for the configured
// format and destinations. The returned cleanup closes any opened file.
func buildReportWriter(cfg *config.Config, out io.Writer) (report.Writer, func(), error) {
	newWriter := func(w io.Writer) report.Writer {
		switch {
		case cfg.JSONReport:
			return report.NewJSONWriter(w, report.WithPrettyPrint())
		case cfg.MarkdownReport:
			return report.NewMarkdownWriter(w)
		default:
			return report.NewSimpleWriter(w)
		}
	}

	if cfg.ReportFile == "" {
		return newWriter(out), func() {}, nil
	}

	if dir := filepath.Dir(cfg.ReportFile); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	file, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create report file: %w", err)
	}

	cleanup := func() { _ = file.Close() }
	return report.NewMultiWriter(newWriter(out), newWriter(file)), cleanup, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aurora-gallery/colorscan/internal/config"
	"github.com/aurora-gallery/colorscan/internal/database"
	"github.com/aurora-gallery/colorscan/internal/model"
)

// NewPendingCmd creates the pending command.
func NewPendingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List files still waiting for color extraction",
		Long: `Pending lists the files whose dominant colors have not been extracted
yet, oldest first. The gallery worker drains its queue in the same
order, so the first file listed is the next one it will process.

Examples:
  # List the 20 oldest pending files
  colorscan pending

  # List the 100 oldest pending files of a specific database
  colorscan pending --limit 100 --db /backups/colors.db`,
		Args: cobra.NoArgs,
		RunE: runPendingCmd,
	}

	cmd.Flags().IntP("limit", "l", config.DefaultPendingLimit,
		"Maximum number of pending files to list")
	cmd.Flags().StringP("db", "d", "",
		"Database file path (default: the gallery application's colors.db)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .colorscan in current or home directory)")

	return cmd
}

// runPendingCmd executes the pending command.
func runPendingCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildLookupConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("limit") {
		cfg.PendingLimit, err = cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	db, err := database.Open(cfg.DBPath, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	total, err := db.CountByStatus(ctx, model.StatusPending)
	if err != nil {
		return err
	}

	records, err := db.PendingFiles(ctx, cfg.PendingLimit)
	if err != nil {
		return err
	}

	logger.Debug("pending queue read", "total", total, "shown", len(records))

	if total == 0 {
		fmt.Fprintln(out, "no pending files")
		return nil
	}

	fmt.Fprintf(out, "Pending files: %d (showing %d, oldest first)\n\n", total, len(records))
	for i := range records {
		rec := &records[i]
		fmt.Fprintf(out, "  %s  %s\n",
			rec.CreatedTime().Format(model.TimestampFormat), rec.FilePath)
	}
	return nil
}

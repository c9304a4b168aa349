package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aurora-gallery/colorscan/internal/config"
	"github.com/aurora-gallery/colorscan/internal/database"
	"github.com/aurora-gallery/colorscan/internal/model"
	"github.com/aurora-gallery/colorscan/internal/report"
)

// NewColorsCmd creates the colors command.
func NewColorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors <file-path>",
		Short: "Show the stored palette for one image file",
		Long: `Colors looks up a single image file in the database and prints its
extraction status and stored palette.

The file path must match the path the gallery application indexed,
usually the absolute path of the image.

Examples:
  # Show the palette of one image
  colorscan colors /photos/2026/sunset.jpg

  # Look it up in a specific database file
  colorscan colors --db /backups/colors.db /photos/2026/sunset.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: runColorsCmd,
	}

	cmd.Flags().StringP("db", "d", "",
		"Database file path (default: the gallery application's colors.db)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .colorscan in current or home directory)")

	return cmd
}

// runColorsCmd executes the colors command.
func runColorsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildLookupConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd)
	out := cmd.OutOrStdout()

	db, err := database.Open(cfg.DBPath, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Debug("looking up record", "db", cfg.DBPath, "path", args[0])

	rec, err := db.ColorsForFile(cmd.Context(), args[0])
	if errors.Is(err, database.ErrNoRecord) {
		fmt.Fprintf(out, "no record for file: %s\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "File:    %s\n", rec.FilePath)
	fmt.Fprintf(out, "Status:  %s\n", rec.Status)
	fmt.Fprintf(out, "Created: %s\n", rec.CreatedTime().Format(model.TimestampFormat))
	fmt.Fprintf(out, "Updated: %s\n", rec.UpdatedTime().Format(model.TimestampFormat))

	printPalette(out, &rec)
	return nil
}

// printPalette prints the record's palette, one color per line, falling
// back to the same placeholder and truncation rules the inspect report uses.
func printPalette(out io.Writer, rec *model.ColorRecord) {
	palette, err := rec.Palette()
	switch {
	case errors.Is(err, model.ErrEmptyPalette):
		fmt.Fprintf(out, "Colors:  %s\n", report.NoColorData)
	case err != nil:
		fmt.Fprintf(out, "Colors:  unreadable, raw value follows\n  %s\n", rec.RawColors)
	default:
		fmt.Fprintf(out, "Colors:  %d\n", len(palette))
		for i, c := range palette {
			shade := "light"
			if c.IsDark {
				shade = "dark"
			}
			fmt.Fprintf(out, "  %2d. %-8s rgb(%d, %d, %d)  %s\n",
				i+1, c.Hex, c.RGB[0], c.RGB[1], c.RGB[2], shade)
		}
	}
}

// buildLookupConfig creates a Config for the single-record commands.
// Precedence is flag > config file > default.
func buildLookupConfig(cmd *cobra.Command) (*config.Config, error) {
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

	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	return cfg, nil
}

// Package main provides the entry point for the colorscan CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aurora-gallery/colorscan/internal/config"
	"github.com/aurora-gallery/colorscan/internal/log"
)

// NewRootCmd creates the root command for colorscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colorscan",
		Short: "Diagnostic tool for the gallery dominant-color database",
		Long: `colorscan inspects the dominant-color database (colors.db) that the
gallery application maintains for its image files.

It reports the database schema, record counts per extraction status,
recent activity, and the extraction success rate. All access is
read-only; colorscan never modifies the database.

By default, colorscan looks for colors.db in the gallery application's
data directory. Pass a path or use a .colorscan config file to inspect
a different database.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewColorsCmd())
	cmd.AddCommand(NewPendingCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting
// and installs it as the default.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	logger := log.NewTruncateLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)
	return logger
}

// applyConfigFile loads the .colorscan file onto cfg.
// If the user explicitly specified a config file path, a missing file is
// an error. If no path was specified, a missing file is silently skipped.
func applyConfigFile(cfg *config.Config) error {
	explicit := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath == "" {
		if explicit {
			return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
		}
		return nil
	}

	cf, err := config.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	cf.Apply(cfg)
	return nil
}

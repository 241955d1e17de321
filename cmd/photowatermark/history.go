package main

import (
	"fmt"
	"time"

	"github.com/LittleExian/PhotoWatermark/internal/config"
	"github.com/LittleExian/PhotoWatermark/internal/history"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent watermarking runs",
		Long: `History lists past watermarking runs recorded in the local database,
newest first. Each line shows when the run started, what was processed,
and how many files succeeded or failed.

Runs are recorded automatically unless --no-history is given.`,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 10,
		"Maximum number of runs to list (0 for all)")
	cmd.Flags().String("data-dir", "",
		"Directory holding the history database (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return err
	}
	if dataDir == "" {
		dataDir = config.XDGDataDir()
	}

	db, err := history.Open(dataDir, history.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	runs, err := db.Runs(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(out, "%s  %s -> %s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.RootPath, run.OutputDir)
		fmt.Fprintf(out, "  total: %d, succeeded: %d, failed: %d (%s)\n",
			run.Total, run.Succeeded, run.Failed,
			run.Duration.Round(time.Millisecond))
	}

	return nil
}

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
	"time"

	"github.com/LittleExian/PhotoWatermark/internal/batch"
	"github.com/LittleExian/PhotoWatermark/internal/config"
	"github.com/LittleExian/PhotoWatermark/internal/history"
	"github.com/LittleExian/PhotoWatermark/internal/model"
	"github.com/LittleExian/PhotoWatermark/internal/report"
	"github.com/LittleExian/PhotoWatermark/internal/watermark"
	"github.com/spf13/cobra"
)

// runRootCmd executes the watermarking run.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	// Build config from flags and the optional config file
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runStamp(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.Path, err = cmd.Flags().GetString("path")
	if err != nil {
		return nil, err
	}

	cfg.FontSize, err = cmd.Flags().GetInt("font-size")
	if err != nil {
		return nil, err
	}

	cfg.Color, err = cmd.Flags().GetString("color")
	if err != nil {
		return nil, err
	}

	position, err := cmd.Flags().GetString("position")
	if err != nil {
		return nil, err
	}
	cfg.Position = model.Position(position)

	cfg.Opacity, err = cmd.Flags().GetInt("opacity")
	if err != nil {
		return nil, err
	}

	cfg.DefaultText, err = cmd.Flags().GetString("default-text")
	if err != nil {
		return nil, err
	}

	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
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

	cfg.NoHistory, err = cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}

	// Load rendering defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		// Flags the user set explicitly take precedence over the file.
		file.Apply(cfg, changedFlags(cmd))
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// changedFlags reports which rendering flags were set on the command line.
// The config file only fills in values the user did not set explicitly.
func changedFlags(cmd *cobra.Command) map[string]bool {
	set := make(map[string]bool)
	for _, name := range []string{"font-size", "color", "position", "opacity", "default-text"} {
		if cmd.Flags().Changed(name) {
			set[name] = true
		}
	}
	return set
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runStamp executes the watermarking run against the configured path.
func runStamp(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	textColor, err := watermark.ParseColor(cfg.Color, cfg.Opacity)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", cfg.Color, err)
	}

	fonts := watermark.NewResolver(
		watermark.WithFontPaths(cfg.FontPaths),
		watermark.WithResolverLogger(logger),
	)
	renderer := watermark.New(cfg.FontSize, textColor, cfg.Position,
		watermark.WithDefaultText(cfg.DefaultText),
		watermark.WithFontResolver(fonts),
		watermark.WithLogger(logger),
	)
	processor := batch.New(renderer, batch.WithLogger(logger))

	logger.Info("starting run",
		"path", cfg.Path,
		"fontSize", cfg.FontSize,
		"color", cfg.Color,
		"position", cfg.Position,
		"opacity", cfg.Opacity,
	)

	startTime := time.Now()

	summary, err := processor.Run(ctx, cfg.Path)
	if err != nil {
		if errors.Is(err, batch.ErrPathNotFound) {
			// A missing input path is reported to the user but does not
			// fail the process.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil
		}
		return err
	}

	// Stdout is reserved for the summary itself so that --json output
	// stays machine-readable; progress goes to the logger on stderr.
	logger.Info("run completed", "elapsed", time.Since(startTime).Round(time.Millisecond))

	// Generate and output summary
	if err := outputReport(cfg, summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	// Record the run in the history database unless disabled
	if !cfg.NoHistory {
		if err := saveRun(ctx, cfg, summary, logger); err != nil {
			// History is best effort; the run itself already succeeded.
			logger.Warn("failed to record run history", "error", err)
		}
	}

	return nil
}

// outputReport outputs the batch summary in the requested format.
func outputReport(cfg *config.Config, summary *model.BatchReport) error {
	if cfg.ReportFile == "" {
		_, err := newReportWriter(cfg, os.Stdout).Write(summary)
		return err
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if _, err := newReportWriter(cfg, f).Write(summary); err != nil {
		_ = f.Close()
		return err
	}

	// A failed close means the report may be truncated on disk; that
	// must not look like success.
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// newReportWriter selects the summary writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		// Human-readable summary (default)
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}

// saveRun records a completed batch run in the local history database.
func saveRun(ctx context.Context, cfg *config.Config, summary *model.BatchReport, logger *slog.Logger) error {
	db, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if err := db.SaveRun(ctx, summary); err != nil {
		return err
	}
	logger.Debug("run recorded", "db", db.Path())
	return nil
}

// Package main provides the entry point for the photowatermark CLI.
package main

import (
	"fmt"
	"os"

	"github.com/LittleExian/PhotoWatermark/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for photowatermark.
//
// The root command itself performs the watermarking run; there is no
// separate "run" subcommand because stamping is the tool's only job.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photowatermark",
		Short: "Stamp date watermarks onto photographs",
		Long: `photowatermark stamps a date-based text watermark onto photographs.

The watermark text comes from the EXIF capture timestamp when present.
Images without one fall back to the --default-text value, or to today's
date as a last resort. A single file or a whole directory tree can be
processed; a directory's structure is mirrored into a sibling
"<name>_watermark" output directory.

Examples:
  # Watermark every image under photos/ into photos_watermark/
  photowatermark --path photos

  # Larger, red, top-left watermark at 50% opacity
  photowatermark -p photos -s 32 --color red --position top-left -o 50

  # Fallback text for scanned images without EXIF data
  photowatermark -p scans -d "Family Archive 1987"

  # Machine-readable summary written to a file
  photowatermark -p photos --json --output reports/run.json

Configuration file (.photowatermark) example:
  font-size: 24
  color: "#ffcc00"
  position: top-left
  opacity: 60
  font-paths:
    - /usr/share/fonts/truetype/dejavu/DejaVuSans.ttf`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Rendering flags
	cmd.Flags().StringP("path", "p", "",
		"Image file or directory to process (required)")
	cmd.Flags().IntP("font-size", "s", config.DefaultFontSize,
		"Watermark font size in points")
	cmd.Flags().String("color", config.DefaultColor,
		"Watermark color: name, #RRGGBB, or R,G,B")
	cmd.Flags().String("position", config.DefaultPosition.String(),
		"Watermark position: top-left, top-right, bottom-left, bottom-right, center")
	cmd.Flags().IntP("opacity", "o", config.DefaultOpacity,
		"Watermark opacity in percent (0-100)")
	cmd.Flags().StringP("default-text", "d", "",
		"Watermark text for images without a capture date")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .photowatermark in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON summary (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown summary (mutually exclusive with --json)")
	cmd.Flags().String("output", "",
		"Write the summary to the specified file path (creates directories if needed)")

	// Behavior flags
	cmd.Flags().Bool("verbose", false, "Enable verbose logging")
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the local history database")

	// Required-flag validation runs after cobra's own --version handling,
	// so "photowatermark --version" still works without --path.
	_ = cmd.MarkFlagRequired("path")

	// Add subcommands
	cmd.AddCommand(NewHistoryCmd())
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

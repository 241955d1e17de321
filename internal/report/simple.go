package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/LittleExian/PhotoWatermark/internal/model"
)

// SimpleWriter outputs human-readable text summaries.
// This is the default format, designed for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because it works in all terminals and pipes cleanly to
// files or other tools.
type SimpleWriter struct {
	baseWriter

	// verbose additionally lists every processed file, not just failures.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables per-file output for successes as well as failures.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the batch summary in human-readable format.
func (w *SimpleWriter) Write(report *model.BatchReport) (int, error) {
	var sb strings.Builder

	sb.WriteString("\nProcessing complete!\n")
	sb.WriteString(fmt.Sprintf("Input:      %s\n", report.RootPath))
	sb.WriteString(fmt.Sprintf("Output dir: %s\n", report.OutputDir))
	sb.WriteString(fmt.Sprintf("Elapsed:    %s\n\n", report.Duration.Round(time.Millisecond)))

	sb.WriteString(fmt.Sprintf("Total files:   %d\n", report.Total))
	sb.WriteString(fmt.Sprintf("Succeeded:     %d\n", report.Succeeded))
	sb.WriteString(fmt.Sprintf("Failed:        %d\n", report.Failed))
	if report.SkippedUnsupported > 0 {
		sb.WriteString(fmt.Sprintf("Skipped:       %d (unsupported file types)\n", report.SkippedUnsupported))
	}

	if w.verbose {
		w.writeFiles(&sb, report)
	} else {
		w.writeFailures(&sb, report)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeFailures lists failed files with their causes.
func (w *SimpleWriter) writeFailures(sb *strings.Builder, report *model.BatchReport) {
	failures := report.Failures()
	if len(failures) == 0 {
		return
	}

	sb.WriteString("\nFailures:\n")
	for _, f := range failures {
		sb.WriteString(fmt.Sprintf("  [!] %s: %s\n", f.Path, f.ErrorMessage))
	}
}

// writeFiles lists every processed file and its outcome.
func (w *SimpleWriter) writeFiles(sb *strings.Builder, report *model.BatchReport) {
	if len(report.Results) == 0 {
		return
	}

	sb.WriteString("\nFiles:\n")
	for _, r := range report.Results {
		if r.Succeeded() {
			sb.WriteString(fmt.Sprintf("  [+] %s -> %s (%q)\n", r.Path, r.OutputPath, r.Text))
		} else {
			sb.WriteString(fmt.Sprintf("  [!] %s: %s\n", r.Path, r.ErrorMessage))
		}
	}
}

package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/LittleExian/PhotoWatermark/internal/model"
)

// MarkdownWriter outputs batch summaries in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent,
// type-safe markdown generation with GitHub-flavored tables.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the batch summary in Markdown format.
func (w *MarkdownWriter) Write(report *model.BatchReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeCounts(md, report)
	w.writeFailures(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the summary header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.BatchReport) {
	md.H1("Watermark Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Input", "`" + report.RootPath + "`"},
			{"Output directory", "`" + report.OutputDir + "`"},
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", report.Duration.String()},
		},
	})
	md.PlainText("")
}

// writeCounts writes the aggregate counters section.
func (w *MarkdownWriter) writeCounts(md *markdown.Markdown, report *model.BatchReport) {
	md.H2("Results")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Total", strconv.Itoa(report.Total)},
			{"Succeeded", strconv.Itoa(report.Succeeded)},
			{"Failed", strconv.Itoa(report.Failed)},
			{"Skipped (unsupported)", strconv.Itoa(report.SkippedUnsupported)},
		},
	})
	md.PlainText("")
}

// writeFailures writes the per-file failure table, omitted when the run
// was fully successful.
func (w *MarkdownWriter) writeFailures(md *markdown.Markdown, report *model.BatchReport) {
	failures := report.Failures()
	if len(failures) == 0 {
		return
	}

	md.H2("Failures")
	md.PlainText("")

	rows := make([][]string, 0, len(failures))
	for _, f := range failures {
		rows = append(rows, []string{"`" + f.Path + "`", f.ErrorMessage})
	}

	md.Table(markdown.TableSet{
		Header: []string{"File", "Error"},
		Rows:   rows,
	})
}

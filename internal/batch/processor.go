package batch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LittleExian/PhotoWatermark/internal/model"
)

// OutputDirSuffix is appended to the input's directory name to form the
// sibling output directory.
const OutputDirSuffix = "_watermark"

// supportedExtensions are the image formats the tool processes.
// Everything else is skipped with a warning and never counted.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".gif":  true,
}

// SupportedExtension reports whether the file's extension is a supported
// image format. The check is case-insensitive.
func SupportedExtension(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Stamper watermarks one image into an output directory.
// watermark.Renderer is the production implementation; tests substitute
// fakes.
type Stamper interface {
	Stamp(ctx context.Context, imagePath, outputDir string) model.FileResult
}

// Processor discovers candidate images under a root path and runs the
// stamper over each one.
//
// Processing is deliberately sequential: one file is fully opened,
// rendered, and saved before the next begins, and each file's failure is
// independent of the others. The workload is small interactive batches,
// so there is nothing to gain from parallelizing it.
type Processor struct {
	// stamper renders and saves each matched image.
	stamper Stamper

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets a custom logger for the processor.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// New creates a Processor driving the given stamper.
func New(stamper Stamper, opts ...Option) *Processor {
	p := &Processor{
		stamper: stamper,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// OutputDir computes the output directory for a root path.
// Directory input: sibling directory "<name>_watermark".
// Single-file input: "<parent-dir-name>_watermark" next to the file.
func OutputDir(root string, isDir bool) string {
	root = filepath.Clean(root)

	if isDir {
		return filepath.Join(filepath.Dir(root), filepath.Base(root)+OutputDirSuffix)
	}

	parent := filepath.Dir(root)
	return filepath.Join(parent, filepath.Base(parent)+OutputDirSuffix)
}

// Run processes the root path (file or directory) and returns the
// aggregate report. The only hard errors are a missing root path and
// context cancellation; per-file failures live inside the report.
func (p *Processor) Run(ctx context.Context, root string) (*model.BatchReport, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return nil, fmt.Errorf("stat input path: %w", err)
	}

	// Resolve to an absolute path so the sibling output directory is
	// well-defined even for inputs like "." or a bare file name.
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve input path: %w", err)
	}

	report := model.NewBatchReport(root)
	report.OutputDir = OutputDir(absRoot, info.IsDir())

	if info.IsDir() {
		err = p.runDirectory(ctx, absRoot, report)
	} else {
		err = p.runSingleFile(ctx, absRoot, report)
	}

	report.Duration = time.Since(report.StartedAt)
	if err != nil {
		return report, err
	}
	return report, nil
}

// runSingleFile processes one explicitly named file.
func (p *Processor) runSingleFile(ctx context.Context, path string, report *model.BatchReport) error {
	if !SupportedExtension(path) {
		p.logger.Warn("skipping unsupported file type", "path", path)
		report.SkippedUnsupported++
		return nil
	}

	report.Add(p.stamper.Stamp(ctx, path, report.OutputDir))
	return nil
}

// runDirectory recursively processes every supported file under root,
// replicating the relative subdirectory structure in the output root.
func (p *Processor) runDirectory(ctx context.Context, root string, report *model.BatchReport) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are logged and skipped; they are not
			// image failures and do not count toward totals.
			p.logger.Warn("skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		// Stop cleanly between files on cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			return nil
		}

		if !SupportedExtension(path) {
			p.logger.Warn("skipping unsupported file type", "path", path)
			report.SkippedUnsupported++
			return nil
		}

		targetDir, err := p.targetDir(root, path, report.OutputDir)
		if err != nil {
			report.Add(model.FileResult{Path: path, Err: err})
			return nil
		}

		report.Add(p.stamper.Stamp(ctx, path, targetDir))
		return nil
	})
}

// targetDir maps a matched file to its output directory, preserving the
// path relative to the walk root.
func (p *Processor) targetDir(root, path, outputRoot string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("compute relative path: %w", err)
	}

	relDir := filepath.Dir(rel)
	if relDir == "." {
		return outputRoot, nil
	}
	return filepath.Join(outputRoot, relDir), nil
}

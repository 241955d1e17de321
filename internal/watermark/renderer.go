package watermark

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/LittleExian/PhotoWatermark/internal/exifdate"
	"github.com/LittleExian/PhotoWatermark/internal/model"
)

// dateLayout is the display form of watermark dates.
const dateLayout = "2006-01-02"

// Renderer stamps date watermarks onto images.
// Text selection priority: EXIF capture date, then the configured default
// text, then the current date at render time.
//
// A Renderer is constructed once per run and is safe to reuse across
// files; each Stamp call opens, draws, and saves one image before
// returning, so no image handle outlives its call.
type Renderer struct {
	// fontSize is the text size in points.
	fontSize int

	// textColor carries the resolved RGB channels and the opacity-derived
	// alpha; the draw is alpha-blended directly onto the image.
	textColor color.NRGBA

	// position is the named anchor for the text box.
	position model.Position

	// defaultText is the watermark used when an image has no capture
	// date. Empty means "use the current date".
	defaultText string

	// fonts resolves the font face for each stamp.
	fonts *Resolver

	// logger for structured logging.
	logger *slog.Logger

	// now is the clock used for the current-date fallback.
	// Overridable in tests.
	now func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDefaultText sets the fallback watermark text for images without
// capture-date metadata.
func WithDefaultText(text string) Option {
	return func(r *Renderer) {
		r.defaultText = text
	}
}

// WithLogger sets a custom logger for the renderer.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithFontResolver sets a custom font resolver.
func WithFontResolver(fonts *Resolver) Option {
	return func(r *Renderer) {
		r.fonts = fonts
	}
}

// WithClock overrides the current-date source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// New creates a Renderer with the given render parameters.
func New(fontSize int, textColor color.NRGBA, position model.Position, opts ...Option) *Renderer {
	r := &Renderer{
		fontSize:  fontSize,
		textColor: textColor,
		position:  position,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.fonts == nil {
		r.fonts = NewResolver(WithResolverLogger(r.logger))
	}

	return r
}

// Stamp watermarks a single image and writes the result into outputDir
// under the input's base name, creating directories as needed.
// Every failure is captured in the returned FileResult rather than
// propagated, so one bad file never aborts a batch.
func (r *Renderer) Stamp(ctx context.Context, imagePath, outputDir string) model.FileResult {
	result := model.FileResult{Path: imagePath}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	text := r.watermarkText(imagePath)
	result.Text = text

	src, err := imaging.Open(imagePath)
	if err != nil {
		result.Err = fmt.Errorf("open image: %w", err)
		return result
	}

	canvas := imaging.Clone(src)
	r.drawText(canvas, text)

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		result.Err = fmt.Errorf("create output directory: %w", err)
		return result
	}

	outputPath := filepath.Join(outputDir, filepath.Base(imagePath))
	if err := imaging.Save(canvas, outputPath); err != nil {
		result.Err = fmt.Errorf("save image: %w", err)
		return result
	}

	result.OutputPath = outputPath
	r.logger.Debug("watermarked image",
		"input", imagePath,
		"output", outputPath,
		"text", text,
	)
	return result
}

// watermarkText selects the text to render for one image.
func (r *Renderer) watermarkText(imagePath string) string {
	captured, err := exifdate.CaptureDate(imagePath)
	if err == nil {
		return captured.Format(dateLayout)
	}
	r.logger.Debug("no capture date in metadata", "path", imagePath, "reason", err)

	if r.defaultText != "" {
		return r.defaultText
	}

	// Surprising for old archives, so always surfaced as a warning.
	r.logger.Warn("image has no capture date and no default text, using current date",
		"path", imagePath,
	)
	return r.now().Format(dateLayout)
}

// drawText composites the text directly onto the canvas with alpha
// blending; no intermediate transparent layer is created.
func (r *Renderer) drawText(canvas *image.NRGBA, text string) {
	face := r.fonts.Face(r.fontSize)

	metrics := face.Metrics()
	textW := font.MeasureString(face, text).Ceil()
	textH := (metrics.Ascent + metrics.Descent).Ceil()

	bounds := canvas.Bounds()
	anchor := AnchorPoint(r.position, bounds.Dx(), bounds.Dy(), textW, textH)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(r.textColor),
		Face: face,
		// Dot is the baseline origin: anchor is the box's top-left, so
		// the baseline sits one ascent below it.
		Dot: fixed.Point26_6{
			X: fixed.I(anchor.X),
			Y: fixed.I(anchor.Y) + metrics.Ascent,
		},
	}
	drawer.DrawString(text)
}

package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/LittleExian/PhotoWatermark/internal/model"
)

// Default configuration values.
// These match the behavior of the original watermark tool so that a bare
// invocation produces the same output users already expect.
const (
	// DefaultFontSize is the watermark text size in points.
	// 16pt is small enough to stay unobtrusive on typical photo sizes
	// while remaining legible at screen resolution.
	DefaultFontSize = 16

	// DefaultColor is the watermark text color.
	// White reads well on the dark bottom edge most photos have.
	DefaultColor = "white"

	// DefaultOpacity is the watermark opacity in percent (0-100).
	// 80 keeps the text clearly visible without fully hiding the
	// underlying pixels.
	DefaultOpacity = 80

	// DefaultPosition is the anchor used when none is specified.
	DefaultPosition = model.PositionBottomRight

	// AppName is the application name used for XDG directory paths.
	AppName = "photowatermark"
)

// Config holds all options for one watermarking run.
// This struct is populated from CLI flags (optionally backed by a config
// file) and passed through the application via dependency injection
// rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., RenderConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant
// benefit.
type Config struct {
	// Path is the input image file or directory to process. Required.
	Path string

	// FontSize is the watermark text size in points. Must be positive.
	FontSize int

	// Color is the watermark color: a CSS color name (e.g., "white"),
	// a hex value ("#RRGGBB" or "#RGB"), or a decimal triple ("R,G,B").
	Color string

	// Position is the named anchor for the watermark text box.
	Position model.Position

	// Opacity is the watermark opacity in percent, 0-100 inclusive.
	// 0 renders fully transparent text, 100 fully opaque.
	Opacity int

	// DefaultText is used as the watermark when an image carries no
	// capture-date metadata. When empty, the current date is used and a
	// warning is logged.
	DefaultText string

	// FontPaths is the ordered list of candidate font files tried before
	// falling back to the embedded font. Populated from the config file;
	// when empty, platform defaults are used.
	FontPaths []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .photowatermark in the current
	// directory and then in the user's home directory.
	ConfigFilePath string

	// JSONReport enables JSON summary output instead of the
	// human-readable format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown summary output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the summary report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// NoHistory disables recording the run in the local history database.
	NoHistory bool

	// HistoryDir is the directory holding the run history database.
	// Defaults to the XDG data directory.
	HistoryDir string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because most defaults are non-zero (font size, opacity,
// color). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		FontSize:   DefaultFontSize,
		Color:      DefaultColor,
		Position:   DefaultPosition,
		Opacity:    DefaultOpacity,
		HistoryDir: XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for the tool.
// On Linux: ~/.local/share/photowatermark
// On macOS: ~/Library/Application Support/photowatermark
// On Windows: %LOCALAPPDATA%\photowatermark
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for the tool.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any processing begins.
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrNoPath
	}

	// Zero or negative point sizes cannot produce a readable face
	if c.FontSize <= 0 {
		return ErrInvalidFontSize
	}

	// Opacity is a percentage
	if c.Opacity < 0 || c.Opacity > 100 {
		return ErrInvalidOpacity
	}

	if !c.Position.Valid() {
		return ErrInvalidPosition
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}

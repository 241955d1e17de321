package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoPath is returned when no input path is specified.
	ErrNoPath = errors.New("no input path specified: use --path to point at an image file or directory")

	// ErrInvalidFontSize is returned when the font size is not positive.
	// A zero or negative point size cannot be rendered.
	ErrInvalidFontSize = errors.New("invalid font size: must be positive")

	// ErrInvalidOpacity is returned when the opacity is outside 0-100.
	// Opacity is a percentage: 0 is fully transparent, 100 fully opaque.
	ErrInvalidOpacity = errors.New("invalid opacity: must be between 0 and 100")

	// ErrInvalidPosition is returned when the position is not one of the
	// five supported anchors (top-left, top-right, bottom-left,
	// bottom-right, center).
	ErrInvalidPosition = errors.New("invalid position: must be one of top-left, top-right, bottom-left, bottom-right, center")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)

package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/LittleExian/PhotoWatermark/internal/model"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".photowatermark"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk YAML configuration.
// It supplies defaults for the render parameters and the font candidate
// list; CLI flags always take precedence over file values.
//
// Example:
//
//	font-size: 24
//	color: "#ffcc00"
//	position: top-left
//	opacity: 60
//	default-text: "family archive"
//	font-paths:
//	  - /usr/share/fonts/truetype/dejavu/DejaVuSans.ttf
type File struct {
	// FontSize overrides the default watermark text size when positive.
	FontSize int `yaml:"font-size"`

	// Color overrides the default watermark color when non-empty.
	Color string `yaml:"color"`

	// Position overrides the default anchor when non-empty.
	Position string `yaml:"position"`

	// Opacity overrides the default opacity when non-nil.
	// A pointer distinguishes "not set" from an explicit 0.
	Opacity *int `yaml:"opacity"`

	// DefaultText overrides the fallback watermark text when non-empty.
	DefaultText string `yaml:"default-text"`

	// FontPaths lists candidate font files tried in order before the
	// embedded fallback.
	FontPaths []string `yaml:"font-paths"`
}

// LoadConfigFile loads render defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .photowatermark in the current directory
// 3. Look for .photowatermark in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply copies file values into the config for every field the caller
// has not set explicitly. The set map holds the names of CLI flags the
// user changed; flag > file > default precedence.
func (f *File) Apply(cfg *Config, set map[string]bool) {
	if f == nil {
		return
	}

	if f.FontSize > 0 && !set["font-size"] {
		cfg.FontSize = f.FontSize
	}
	if f.Color != "" && !set["color"] {
		cfg.Color = f.Color
	}
	if f.Position != "" && !set["position"] {
		cfg.Position = model.Position(f.Position)
	}
	if f.Opacity != nil && !set["opacity"] {
		cfg.Opacity = *f.Opacity
	}
	if f.DefaultText != "" && !set["default-text"] {
		cfg.DefaultText = f.DefaultText
	}
	if len(f.FontPaths) > 0 {
		cfg.FontPaths = f.FontPaths
	}
}

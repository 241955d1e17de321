package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/LittleExian/PhotoWatermark/internal/model"
)

// TestLoadConfigFile verifies YAML parsing of the configuration file.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("parses all fields", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		content := `font-size: 24
color: "#ffcc00"
position: top-left
opacity: 60
default-text: "family archive"
font-paths:
  - /usr/share/fonts/truetype/dejavu/DejaVuSans.ttf
  - /tmp/extra.ttf
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if f.FontSize != 24 {
			t.Errorf("expected FontSize 24, got %d", f.FontSize)
		}
		if f.Color != "#ffcc00" {
			t.Errorf("expected Color '#ffcc00', got %q", f.Color)
		}
		if f.Position != "top-left" {
			t.Errorf("expected Position 'top-left', got %q", f.Position)
		}
		if f.Opacity == nil || *f.Opacity != 60 {
			t.Errorf("expected Opacity 60, got %v", f.Opacity)
		}
		if f.DefaultText != "family archive" {
			t.Errorf("expected DefaultText 'family archive', got %q", f.DefaultText)
		}
		if len(f.FontPaths) != 2 {
			t.Errorf("expected 2 font paths, got %d", len(f.FontPaths))
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nonexistent"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("font-size: [not a number"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected an error for invalid YAML")
		}
	})
}

// TestFindConfigFile verifies explicit-path lookup behavior.
// The cwd/home fallbacks depend on the environment, so only the explicit
// branch is tested here.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("opacity: 50\n"), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path returns empty string", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

// TestFileApply verifies flag > file > default precedence.
func TestFileApply(t *testing.T) {
	t.Parallel()

	opacity := 30
	file := &File{
		FontSize:    40,
		Color:       "black",
		Position:    "center",
		Opacity:     &opacity,
		DefaultText: "vacation",
		FontPaths:   []string{"/tmp/a.ttf"},
	}

	t.Run("file values fill unset fields", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		file.Apply(cfg, map[string]bool{})

		if cfg.FontSize != 40 {
			t.Errorf("expected FontSize 40, got %d", cfg.FontSize)
		}
		if cfg.Color != "black" {
			t.Errorf("expected Color 'black', got %q", cfg.Color)
		}
		if cfg.Position != model.PositionCenter {
			t.Errorf("expected Position center, got %q", cfg.Position)
		}
		if cfg.Opacity != 30 {
			t.Errorf("expected Opacity 30, got %d", cfg.Opacity)
		}
		if cfg.DefaultText != "vacation" {
			t.Errorf("expected DefaultText 'vacation', got %q", cfg.DefaultText)
		}
		if len(cfg.FontPaths) != 1 || cfg.FontPaths[0] != "/tmp/a.ttf" {
			t.Errorf("expected FontPaths [/tmp/a.ttf], got %v", cfg.FontPaths)
		}
	})

	t.Run("explicit flags win over file values", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.FontSize = 12
		cfg.Opacity = 95
		file.Apply(cfg, map[string]bool{"font-size": true, "opacity": true})

		if cfg.FontSize != 12 {
			t.Errorf("expected FontSize 12 (flag), got %d", cfg.FontSize)
		}
		if cfg.Opacity != 95 {
			t.Errorf("expected Opacity 95 (flag), got %d", cfg.Opacity)
		}
		// Fields without explicit flags still come from the file
		if cfg.Color != "black" {
			t.Errorf("expected Color 'black' (file), got %q", cfg.Color)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		var f *File
		f.Apply(cfg, nil)

		if cfg.FontSize != DefaultFontSize {
			t.Errorf("expected FontSize %d, got %d", DefaultFontSize, cfg.FontSize)
		}
	})
}

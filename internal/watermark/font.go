package watermark

import (
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontDPI is the resolution used when sizing faces. 72 DPI makes one
// point equal one pixel, which matches how users think about the
// --font-size flag.
const fontDPI = 72

// DefaultFontPaths returns the candidate font files for the current
// platform, tried in order. The lists favor fonts with CJK coverage so
// that non-ASCII default text renders correctly.
func DefaultFontPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Windows\Fonts\simhei.ttf`,
			`C:\Windows\Fonts\arial.ttf`,
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts/PingFang.ttc",
			"/System/Library/Fonts/Helvetica.ttc",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		}
	}
}

// Resolver loads a usable font face from an ordered list of candidate
// files, falling back to the embedded Go Regular font and, as a last
// resort, to an unstyled bitmap face. Resolution never fails; fallback
// is expected on systems without the candidate fonts and is only logged.
type Resolver struct {
	// paths is the ordered candidate list. The first file that parses wins.
	paths []string

	// logger for structured logging.
	logger *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFontPaths replaces the default candidate font paths.
func WithFontPaths(paths []string) ResolverOption {
	return func(r *Resolver) {
		if len(paths) > 0 {
			r.paths = paths
		}
	}
}

// WithResolverLogger sets a custom logger for the resolver.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver with platform-default candidates.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		paths: DefaultFontPaths(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Face returns a font face at the given point size.
// Candidates are tried in order; the embedded Go Regular font backs any
// system without them, and the fixed-size bitmap face is the terminal
// fallback if even the embedded font cannot be sized.
func (r *Resolver) Face(size int) font.Face {
	for _, path := range r.paths {
		face, err := loadFaceFromFile(path, size)
		if err != nil {
			r.logger.Debug("font candidate unavailable", "path", path, "error", err)
			continue
		}
		return face
	}

	sfnt, err := opentype.Parse(goregular.TTF)
	if err == nil {
		face, err := opentype.NewFace(sfnt, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     fontDPI,
			Hinting: font.HintingFull,
		})
		if err == nil {
			r.logger.Warn("no candidate font found, using embedded Go Regular",
				"candidates", r.paths,
			)
			return face
		}
	}

	r.logger.Warn("falling back to fixed-size bitmap font; watermark size flag has no effect")
	return basicfont.Face7x13
}

// loadFaceFromFile reads and parses one candidate font file.
// Both standalone fonts (.ttf/.otf) and collections (.ttc) are handled;
// collections contribute their first font.
func loadFaceFromFile(path string, size int) (font.Face, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Font paths come from configuration
	if err != nil {
		return nil, err
	}

	sfnt, err := opentype.Parse(data)
	if err != nil {
		collection, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, err
		}
		sfnt, err = collection.Font(0)
		if err != nil {
			return nil, err
		}
	}

	return opentype.NewFace(sfnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}

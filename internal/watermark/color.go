package watermark

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned when a color spec is neither a recognized
// color name, a hex value, nor a decimal R,G,B triple.
var ErrUnknownColor = errors.New("unknown color")

// Alpha converts an opacity percentage (0-100) to an 8-bit alpha value.
// The mapping is linear with rounding: 0 -> 0, 50 -> 128, 100 -> 255.
func Alpha(opacity int) uint8 {
	return uint8(math.Round(255 * float64(opacity) / 100))
}

// ParseColor resolves a color spec and an opacity percentage into a
// non-premultiplied RGBA value ready for alpha-blended drawing.
//
// Accepted spec forms:
//   - SVG 1.1 color names ("white", "orange", case-insensitive)
//   - hex values ("#RRGGBB" or "#RGB")
//   - decimal triples ("255,165,0")
func ParseColor(spec string, opacity int) (color.NRGBA, error) {
	base, err := parseBaseColor(strings.TrimSpace(spec))
	if err != nil {
		return color.NRGBA{}, err
	}

	base.A = Alpha(opacity)
	return base, nil
}

// parseBaseColor resolves the RGB channels of a color spec.
func parseBaseColor(spec string) (color.NRGBA, error) {
	if spec == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty spec", ErrUnknownColor)
	}

	if strings.HasPrefix(spec, "#") {
		return parseHexColor(spec)
	}

	if strings.Contains(spec, ",") {
		return parseTripleColor(spec)
	}

	named, ok := colornames.Map[strings.ToLower(spec)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, spec)
	}
	return color.NRGBA{R: named.R, G: named.G, B: named.B}, nil
}

// parseHexColor parses "#RRGGBB" and the shorthand "#RGB".
func parseHexColor(spec string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(spec, "#")

	switch len(hex) {
	case 3:
		// Expand shorthand: "f0c" -> "ff00cc"
		expanded := make([]byte, 0, 6)
		for i := 0; i < 3; i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	case 6:
		// Already full form
	default:
		return color.NRGBA{}, fmt.Errorf("%w: hex value %q must have 3 or 6 digits", ErrUnknownColor, spec)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, spec)
	}

	return color.NRGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}

// parseTripleColor parses "R,G,B" with each channel in 0-255.
func parseTripleColor(spec string) (color.NRGBA, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return color.NRGBA{}, fmt.Errorf("%w: %q is not an R,G,B triple", ErrUnknownColor, spec)
	}

	var channels [3]uint8
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value < 0 || value > 255 {
			return color.NRGBA{}, fmt.Errorf("%w: channel %q out of range", ErrUnknownColor, part)
		}
		channels[i] = uint8(value)
	}

	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2]}, nil
}

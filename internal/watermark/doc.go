// Package watermark renders date-based text watermarks onto images.
// It resolves colors and fonts, computes anchor placement, and composites
// semi-transparent text directly onto a copy of the source image.
package watermark

// Package batch walks an input path, filters for supported image
// extensions, and drives the watermark renderer over every matched file
// sequentially, mirroring the input structure into a sibling output
// directory and tallying per-file results.
package batch

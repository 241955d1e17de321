// Package main provides the entry point for the photowatermark CLI.
//
// photowatermark stamps a date-based text watermark onto photographs,
// using the EXIF capture date when one is present.
//
// Usage:
//
//	photowatermark --path <file-or-directory>
//	photowatermark --path photos --font-size 32 --position top-left
//
// See --help for all available options.
package main

// main is the entry point for photowatermark.
func main() {
	Execute()
}

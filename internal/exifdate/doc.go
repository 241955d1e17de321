// Package exifdate extracts the capture date embedded in an image's EXIF
// metadata. Every decode failure degrades to "no date available" so that
// a single unreadable image never interrupts a batch.
package exifdate

package exifdate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	exif "github.com/dsoprea/go-exif/v3"
)

// ErrNoCaptureDate is returned when an image carries no usable capture
// date: the file has no EXIF block, the DateTimeOriginal tag is absent,
// or its value cannot be parsed. Callers treat this as an expected
// condition, not a hard error.
var ErrNoCaptureDate = errors.New("no capture date in image metadata")

// captureDateTag is the EXIF tag holding the moment the photo was taken.
// DateTime and DateTimeDigitized are deliberately not consulted; they
// record edits and scans rather than capture.
const captureDateTag = "DateTimeOriginal"

// EXIF datetime layouts. The full form is the conventional
// "YYYY:MM:DD HH:MM:SS"; some cameras write only the date portion.
const (
	exifDatetimeLayout = "2006:01:02 15:04:05"
	exifDateLayout     = "2006:01:02"
)

// CaptureDate reads the EXIF capture date from the image at path.
// It returns ErrNoCaptureDate (possibly wrapped) when no date can be
// extracted; any other failure mode also degrades to that error so the
// caller can fall back to default text.
func CaptureDate(path string) (time.Time, error) {
	rawExif, err := exif.SearchFileAndExtractExif(path)
	if err != nil {
		// Covers both missing files and files without an EXIF block.
		return time.Time{}, fmt.Errorf("%w: %v", ErrNoCaptureDate, err)
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrNoCaptureDate, err)
	}

	for _, entry := range entries {
		if entry.TagName != captureDateTag {
			continue
		}
		return ParseDatetime(entry.Formatted)
	}

	return time.Time{}, ErrNoCaptureDate
}

// ParseDatetime parses an EXIF datetime string. On a format mismatch it
// retries with just the date portion before the first space; any further
// failure returns ErrNoCaptureDate.
func ParseDatetime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(exifDatetimeLayout, value); err == nil {
		return t, nil
	}

	datePart, _, _ := strings.Cut(value, " ")
	if t, err := time.Parse(exifDateLayout, datePart); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: unparseable datetime %q", ErrNoCaptureDate, value)
}

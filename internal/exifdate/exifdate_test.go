package exifdate

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

// buildExifBlock encodes a minimal EXIF block whose Exif IFD carries
// DateTimeOriginal set to datetime.
func buildExifBlock(t *testing.T, datetime string) []byte {
	t.Helper()
	return buildExifBlockWithTag(t, "IFD/Exif", "DateTimeOriginal", datetime)
}

// buildExifBlockWithTag encodes an EXIF block carrying a single tag in
// the named IFD.
func buildExifBlockWithTag(t *testing.T, fqIfdPath, tagName, value string) []byte {
	t.Helper()

	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		t.Fatal(err)
	}
	ti := exif.NewTagIndex()

	rootIb := exif.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder)
	ib, err := exif.GetOrCreateIbFromRootIb(rootIb, fqIfdPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := ib.SetStandardWithName(tagName, value); err != nil {
		t.Fatal(err)
	}

	block, err := exif.NewIfdByteEncoder().EncodeToExif(rootIb)
	if err != nil {
		t.Fatal(err)
	}
	return block
}

// TestParseDatetime covers the two-step parse: full EXIF datetime first,
// then the date portion before the first space.
func TestParseDatetime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "full datetime",
			value: "2023:10:15 14:30:25",
			want:  time.Date(2023, 10, 15, 14, 30, 25, 0, time.UTC),
		},
		{
			name:  "date only",
			value: "2023:10:15",
			want:  time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "date with malformed time portion",
			value: "2021:01:02 garbage",
			want:  time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			value: "  2020:06:07 08:09:10  ",
			want:  time.Date(2020, 6, 7, 8, 9, 10, 0, time.UTC),
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: true,
		},
		{
			name:    "dashes instead of colons",
			value:   "2023-10-15 14:30:25",
			wantErr: true,
		},
		{
			name:    "not a date at all",
			value:   "hello world",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDatetime(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrNoCaptureDate) {
					t.Errorf("expected ErrNoCaptureDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestCaptureDateFromFile covers the extraction happy path: a file whose
// EXIF block carries DateTimeOriginal yields the parsed capture moment.
func TestCaptureDateFromFile(t *testing.T) {
	t.Parallel()

	t.Run("full datetime tag", func(t *testing.T) {
		t.Parallel()

		// The extractor scans for the TIFF byte-order signature, so a
		// bare EXIF block on disk is enough; no JPEG wrapper needed.
		path := filepath.Join(t.TempDir(), "captured.jpg")
		if err := os.WriteFile(path, buildExifBlock(t, "2023:10:15 14:30:25"), 0600); err != nil {
			t.Fatal(err)
		}

		got, err := CaptureDate(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := time.Date(2023, 10, 15, 14, 30, 25, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("other tags are skipped", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "edited.jpg")
		// DateTime records edits, not capture; it must not be consulted.
		if err := os.WriteFile(path, buildExifBlockWithTag(t, "IFD", "DateTime", "2024:01:01 00:00:00"), 0600); err != nil {
			t.Fatal(err)
		}

		_, err := CaptureDate(path)
		if !errors.Is(err, ErrNoCaptureDate) {
			t.Errorf("expected ErrNoCaptureDate, got %v", err)
		}
	})
}

// TestCaptureDateDegradesToNoDate verifies that images without EXIF data
// and unreadable paths both degrade to ErrNoCaptureDate.
func TestCaptureDateDegradesToNoDate(t *testing.T) {
	t.Parallel()

	t.Run("PNG without EXIF block", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "plain.png")
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 4, 4))); err != nil {
			t.Fatal(err)
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}

		_, err = CaptureDate(path)
		if !errors.Is(err, ErrNoCaptureDate) {
			t.Errorf("expected ErrNoCaptureDate, got %v", err)
		}
	})

	t.Run("nonexistent file", func(t *testing.T) {
		t.Parallel()

		_, err := CaptureDate(filepath.Join(t.TempDir(), "missing.jpg"))
		if !errors.Is(err, ErrNoCaptureDate) {
			t.Errorf("expected ErrNoCaptureDate, got %v", err)
		}
	})
}

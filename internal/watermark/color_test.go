package watermark

import (
	"errors"
	"image/color"
	"testing"
)

// TestAlpha verifies the linear opacity-to-alpha mapping with rounding.
func TestAlpha(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opacity int
		want    uint8
	}{
		{"opacity 0 is fully transparent", 0, 0},
		{"opacity 100 is fully opaque", 100, 255},
		{"opacity 80 rounds to 204", 80, 204},
		{"opacity 50 rounds up to 128", 50, 128},
		{"opacity 1 rounds to 3", 1, 3},
		{"opacity 99 rounds to 252", 99, 252},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Alpha(tt.opacity); got != tt.want {
				t.Errorf("Alpha(%d) = %d, want %d", tt.opacity, got, tt.want)
			}
		})
	}
}

// TestParseColor covers all three accepted spec forms plus rejection of
// unknown values.
func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		opacity int
		want    color.NRGBA
		wantErr bool
	}{
		{
			name:    "named color white",
			spec:    "white",
			opacity: 80,
			want:    color.NRGBA{R: 255, G: 255, B: 255, A: 204},
		},
		{
			name:    "named color is case-insensitive",
			spec:    "Orange",
			opacity: 100,
			want:    color.NRGBA{R: 255, G: 165, B: 0, A: 255},
		},
		{
			name:    "full hex",
			spec:    "#ffcc00",
			opacity: 100,
			want:    color.NRGBA{R: 255, G: 204, B: 0, A: 255},
		},
		{
			name:    "short hex expands",
			spec:    "#f0c",
			opacity: 100,
			want:    color.NRGBA{R: 255, G: 0, B: 204, A: 255},
		},
		{
			name:    "decimal triple",
			spec:    "255,165,0",
			opacity: 50,
			want:    color.NRGBA{R: 255, G: 165, B: 0, A: 128},
		},
		{
			name:    "triple with spaces",
			spec:    "10, 20, 30",
			opacity: 100,
			want:    color.NRGBA{R: 10, G: 20, B: 30, A: 255},
		},
		{
			name:    "opacity 0 zeroes the alpha only",
			spec:    "white",
			opacity: 0,
			want:    color.NRGBA{R: 255, G: 255, B: 255, A: 0},
		},
		{"unknown name", "notacolor", 80, color.NRGBA{}, true},
		{"empty spec", "", 80, color.NRGBA{}, true},
		{"bad hex length", "#ffcc", 80, color.NRGBA{}, true},
		{"bad hex digits", "#zzzzzz", 80, color.NRGBA{}, true},
		{"triple channel out of range", "300,0,0", 80, color.NRGBA{}, true},
		{"triple with two channels", "10,20", 80, color.NRGBA{}, true},
		{"triple with garbage", "a,b,c", 80, color.NRGBA{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseColor(tt.spec, tt.opacity)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownColor) {
					t.Errorf("expected ErrUnknownColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q, %d) = %+v, want %+v", tt.spec, tt.opacity, got, tt.want)
			}
		})
	}
}

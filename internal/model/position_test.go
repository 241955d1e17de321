package model

import "testing"

// TestPositionValid verifies the five supported anchors and a few
// rejected spellings.
func TestPositionValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		position Position
		want     bool
	}{
		{"top-left is valid", PositionTopLeft, true},
		{"top-right is valid", PositionTopRight, true},
		{"bottom-left is valid", PositionBottomLeft, true},
		{"bottom-right is valid", PositionBottomRight, true},
		{"center is valid", PositionCenter, true},
		{"empty string is invalid", Position(""), false},
		{"unknown value is invalid", Position("middle"), false},
		{"case matters", Position("Top-Left"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.position.Valid(); got != tt.want {
				t.Errorf("Position(%q).Valid() = %v, want %v", tt.position, got, tt.want)
			}
		})
	}
}

// TestPositions verifies that Positions returns all five anchors and
// that each one is valid.
func TestPositions(t *testing.T) {
	t.Parallel()

	positions := Positions()
	if len(positions) != 5 {
		t.Fatalf("expected 5 positions, got %d", len(positions))
	}

	for _, p := range positions {
		if !p.Valid() {
			t.Errorf("Positions() returned invalid position %q", p)
		}
	}
}

func TestPositionString(t *testing.T) {
	t.Parallel()

	if got := PositionBottomRight.String(); got != "bottom-right" {
		t.Errorf("expected 'bottom-right', got %q", got)
	}
}

package model

// Position identifies the named anchor used to place the watermark text
// box within the image bounds.
//
// Design decision: We use a string-typed enum rather than iota constants
// because the values come directly from CLI input and config files, and
// string values round-trip through JSON and YAML without mapping tables.
type Position string

// Supported anchor positions.
const (
	// PositionTopLeft places the text at the top-left corner.
	PositionTopLeft Position = "top-left"

	// PositionTopRight places the text at the top-right corner.
	PositionTopRight Position = "top-right"

	// PositionBottomLeft places the text at the bottom-left corner.
	PositionBottomLeft Position = "bottom-left"

	// PositionBottomRight places the text at the bottom-right corner.
	// This is the default position; unrecognized values also render here.
	PositionBottomRight Position = "bottom-right"

	// PositionCenter places the text at the center of the image.
	PositionCenter Position = "center"
)

// Positions returns all valid anchor positions in display order.
func Positions() []Position {
	return []Position{
		PositionTopLeft,
		PositionTopRight,
		PositionBottomLeft,
		PositionBottomRight,
		PositionCenter,
	}
}

// Valid reports whether p is one of the five supported anchor positions.
func (p Position) Valid() bool {
	switch p {
	case PositionTopLeft, PositionTopRight, PositionBottomLeft,
		PositionBottomRight, PositionCenter:
		return true
	default:
		return false
	}
}

// String returns the position as its CLI spelling.
func (p Position) String() string {
	return string(p)
}
